// Package analysis implements the financial goal analysis engine: cash-flow
// aggregation, goal classification and the per-archetype analyzers. Analyses
// are pure, read-only projections over (goal, cash flow, exchange rate);
// degraded inputs become UNKNOWN or NEEDS_ACTION statuses, never errors.
package analysis

import (
	"time"

	"github.com/finapp-cl/finance-service/internal/models"
	"github.com/sirupsen/logrus"
)

// Engine dispatches goals to their analyzers.
type Engine struct {
	log *logrus.Logger
	now func() time.Time
}

// NewEngine initializes an analysis engine.
func NewEngine(log *logrus.Logger) *Engine {
	return &Engine{log: log, now: time.Now}
}

// Analyze runs the analyzer selected for the goal. cashFlow is nil when the
// user has no transactions inside the trailing window; ufValue is today's
// resolved UF value. Both are computed once per request so that every goal in
// one response sees identical inputs. HOUSING results are re-tagged here as
// an explicit post-step.
func (e *Engine) Analyze(goal models.FinancialGoal, cashFlow *models.CashFlowSnapshot, ufValue float64) models.Analysis {
	exchangeRate := 1.0
	if goal.Currency == "UF" {
		exchangeRate = ufValue
	}

	var capacity, expenses *float64
	if cashFlow != nil {
		c := cashFlow.Income - cashFlow.Expenses
		capacity = &c
		x := cashFlow.Expenses
		expenses = &x
	}

	now := e.now()

	tag := Classify(goal)
	e.log.Debugf("Goal %s (%s) dispatched to analyzer %d with exchange rate %.2f", goal.ID, goal.Type, tag, exchangeRate)

	switch tag {
	case AnalyzerEmergencyFund:
		return EmergencyFund(emergencyTerms(goal), expenses, exchangeRate)
	case AnalyzerSavings:
		result := SavingsFeasibility(savingsTerms(goal), capacity, exchangeRate, now)
		if goal.Type == models.GoalHousing {
			result.Type = models.AnalysisHousingSaving
		}
		return result
	case AnalyzerDebt:
		result := DebtPayoff(debtTerms(goal), capacity, exchangeRate)
		if goal.Type == models.GoalHousing {
			result.Type = models.AnalysisMortgage
		}
		return result
	case AnalyzerInvestment:
		return InvestmentProjection(investmentTerms(goal), capacity, exchangeRate, now)
	case AnalyzerRealEstate:
		return RealEstateInvestment(rentalTerms(goal), exchangeRate)
	case AnalyzerRetirement:
		return RetirementProjection(investmentTerms(goal), capacity, exchangeRate, now)
	default:
		return &models.ControlAnalysis{
			Result: models.Result{
				Status: models.StatusInfo,
				Advice: "Revisa tu sección de Presupuestos",
			},
		}
	}
}

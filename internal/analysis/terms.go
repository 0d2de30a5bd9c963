package analysis

import (
	"time"

	"github.com/finapp-cl/finance-service/internal/models"
)

// The stored goal record reuses optional numeric fields across archetypes
// (MonthlyQuota is a debt quota or a rental dividend, EstimatedYield is a
// monthly rent). Each analyzer consumes a narrow terms struct built once from
// the generic record instead of probing those fields itself.

// SavingsTerms is the input of the savings feasibility analyzer.
type SavingsTerms struct {
	Target   float64
	Current  float64
	Currency string
	Deadline *time.Time
	Housing  bool
}

// DebtTerms is the input of the debt payoff analyzer.
type DebtTerms struct {
	Target     float64
	Current    float64
	Quota      float64
	AnnualRate float64
}

// InvestmentTerms is the input of the investment and retirement projections.
type InvestmentTerms struct {
	Target     float64
	Current    float64
	AnnualRate float64
	Currency   string
	Deadline   *time.Time
}

// EmergencyTerms is the input of the emergency fund analyzer.
type EmergencyTerms struct {
	Current  float64
	Currency string
}

// RentalTerms is the input of the real-estate investment analyzer.
type RentalTerms struct {
	PropertyValue float64
	MonthlyRent   float64
	Dividend      float64
}

func savingsTerms(goal models.FinancialGoal) SavingsTerms {
	return SavingsTerms{
		Target:   goal.TargetAmount.InexactFloat64(),
		Current:  goal.CurrentAmount.InexactFloat64(),
		Currency: goal.Currency,
		Deadline: goal.Deadline,
		Housing:  goal.Type == models.GoalHousing,
	}
}

func debtTerms(goal models.FinancialGoal) DebtTerms {
	return DebtTerms{
		Target:     goal.TargetAmount.InexactFloat64(),
		Current:    goal.CurrentAmount.InexactFloat64(),
		Quota:      goal.MonthlyQuota.InexactFloat64(),
		AnnualRate: goal.InterestRate.InexactFloat64(),
	}
}

func investmentTerms(goal models.FinancialGoal) InvestmentTerms {
	return InvestmentTerms{
		Target:     goal.TargetAmount.InexactFloat64(),
		Current:    goal.CurrentAmount.InexactFloat64(),
		AnnualRate: goal.InterestRate.InexactFloat64(),
		Currency:   goal.Currency,
		Deadline:   goal.Deadline,
	}
}

func emergencyTerms(goal models.FinancialGoal) EmergencyTerms {
	return EmergencyTerms{
		Current:  goal.CurrentAmount.InexactFloat64(),
		Currency: goal.Currency,
	}
}

func rentalTerms(goal models.FinancialGoal) RentalTerms {
	return RentalTerms{
		PropertyValue: goal.TargetAmount.InexactFloat64(),
		MonthlyRent:   goal.EstimatedYield.InexactFloat64(),
		Dividend:      goal.MonthlyQuota.InexactFloat64(),
	}
}

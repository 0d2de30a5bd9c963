package analysis

import (
	"fmt"
	"time"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// defaultProjectionMonths is the horizon used when a goal has no deadline.
const defaultProjectionMonths = 12

// InvestmentProjection simulates compound growth of the goal's balance month
// by month: the balance grows at the monthly rate, then the contribution is
// added. The iteration is deliberate; it is cross-checked against the closed
// annuity form in tests. A nil capacity projects the existing balance alone
// and yields an UNKNOWN status.
func InvestmentProjection(t InvestmentTerms, capacity *float64, exchangeRate float64, now time.Time) *models.InvestmentProjection {
	annualRate := t.AnnualRate / 100
	monthlyRate := annualRate / 12

	months := defaultProjectionMonths
	if t.Deadline != nil {
		months = monthsBetween(*t.Deadline, now)
		if months < 1 {
			months = 1
		}
	}

	monthlyContribution := 0.0
	if capacity != nil {
		monthlyContribution = *capacity / exchangeRate
	}

	futureValue := t.Current
	totalContributed := t.Current
	for i := 0; i < months; i++ {
		futureValue = futureValue*(1+monthlyRate) + monthlyContribution
		totalContributed += monthlyContribution
	}
	interestEarned := futureValue - totalContributed

	result := &models.InvestmentProjection{
		Result: models.Result{
			Type: models.AnalysisInvestment,
		},
		ProjectedAmount:     round2(futureValue),
		InterestEarned:      round2(interestEarned),
		IsGoalMet:           t.Target <= 0 || futureValue >= t.Target,
		MonthlyContribution: round2(monthlyContribution),
		Currency:            t.Currency,
	}

	switch {
	case capacity == nil:
		result.Status = models.StatusUnknown
		result.Advice = fmt.Sprintf("Calculado solo con el interés de tu saldo actual (%s). Conecta tus cuentas para proyectar aportes mensuales.",
			currency.Format(t.Current, t.Currency))
	case t.Target > 0 && futureValue >= t.Target:
		result.Status = models.StatusOnTrack
		surplus := futureValue - t.Target
		result.Advice = fmt.Sprintf("¡Excelente! Gracias al interés compuesto del %.1f%%, superarás tu meta por %s.",
			annualRate*100, currency.Format(surplus, t.Currency))
	case t.Target > 0:
		result.Status = models.StatusNeedsAction
		percentage := futureValue / t.Target * 100
		result.Advice = fmt.Sprintf("Con tu aporte actual de %s, llegarás al %.0f%% (%s). Necesitas aumentar tu inversión o buscar mayor rentabilidad.",
			currency.Format(monthlyContribution, t.Currency), percentage, currency.Format(futureValue, t.Currency))
	default:
		// Pure projection with no target amount.
		result.Status = models.StatusOnTrack
		result.Advice = fmt.Sprintf("En %d meses, proyectamos que tendrás %s (Ganancia por intereses: %s).",
			months, currency.Format(futureValue, t.Currency), currency.Format(interestEarned, t.Currency))
	}
	return result
}

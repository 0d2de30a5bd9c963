package analysis

import (
	"fmt"
	"time"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// SavingsFeasibility checks whether the monthly savings capacity covers the
// amount needed to reach the goal before its deadline. A nil capacity means
// cash-flow data is unavailable and yields an UNKNOWN status. capacity is in
// the settlement currency; exchangeRate scales it down into the goal
// currency.
func SavingsFeasibility(t SavingsTerms, capacity *float64, exchangeRate float64, now time.Time) *models.SavingsAnalysis {
	remaining := t.Target - t.Current
	if remaining <= 0 {
		return &models.SavingsAnalysis{
			Result: models.Result{
				Type:   models.AnalysisSavings,
				Status: models.StatusCompleted,
				Advice: "¡Meta lograda! Ya tienes el monto total.",
			},
		}
	}

	// A past or current-month deadline is treated as due this month.
	monthsLeft := 1
	if t.Deadline != nil {
		if m := monthsBetween(*t.Deadline, now); m > 0 {
			monthsLeft = m
		}
	}

	requiredMonthly := remaining / float64(monthsLeft)

	if capacity == nil {
		return &models.SavingsAnalysis{
			Result: models.Result{
				Type:   models.AnalysisSavings,
				Status: models.StatusUnknown,
				Advice: fmt.Sprintf("Necesitas ahorrar %s mensuales.", currency.Format(requiredMonthly, t.Currency)),
			},
			MonthsLeft:      monthsLeft,
			RequiredMonthly: round2(requiredMonthly),
			YourCapacity:    0,
		}
	}

	capacityInGoalCurrency := *capacity / exchangeRate
	feasible := capacityInGoalCurrency >= requiredMonthly

	context := "para tu meta"
	if t.Housing {
		context = "para el pie de tu casa"
	}

	result := &models.SavingsAnalysis{
		Result: models.Result{
			Type: models.AnalysisSavings,
		},
		MonthsLeft:      monthsLeft,
		RequiredMonthly: round2(requiredMonthly),
		YourCapacity:    round2(capacityInGoalCurrency),
	}

	if feasible {
		result.Status = models.StatusOnTrack
		result.Advice = fmt.Sprintf("¡Vas excelente! Tu ahorro actual cubre los %s necesarios %s.",
			currency.Format(requiredMonthly, t.Currency), context)
	} else {
		gap := requiredMonthly - capacityInGoalCurrency
		result.Status = models.StatusAtRisk
		result.Gap = round2(gap)
		result.Advice = fmt.Sprintf("Te faltan %s mensuales %s. Intenta ajustar tu presupuesto en pesos.",
			currency.Format(gap, t.Currency), context)
	}
	return result
}

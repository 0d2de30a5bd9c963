package analysis

import (
	"fmt"
	"math"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// DebtPayoff computes how many months it takes to amortize a debt to zero.
// The principal and quota are scaled up into the settlement currency with
// exchangeRate; capacity is already in the settlement currency. A nil
// capacity means no cash-flow data and yields an UNKNOWN status.
func DebtPayoff(t DebtTerms, capacity *float64, exchangeRate float64) *models.DebtAnalysis {
	principal := (t.Target - t.Current) * exchangeRate
	quota := t.Quota * exchangeRate
	monthlyRate := (t.AnnualRate / 100) / 12

	if principal <= 0 {
		return &models.DebtAnalysis{
			Result: models.Result{
				Type:   models.AnalysisDebt,
				Status: models.StatusCompleted,
				Advice: "¡Felicidades! Deuda pagada.",
			},
		}
	}

	if capacity == nil {
		return &models.DebtAnalysis{
			Result: models.Result{
				Type:   models.AnalysisDebt,
				Status: models.StatusUnknown,
				Advice: "Moneda distinta. No podemos calcular el cruce exacto.",
			},
		}
	}

	if quota > 0 && *capacity < quota {
		deficit := quota - *capacity
		return &models.DebtAnalysis{
			Result: models.Result{
				Type:   models.AnalysisDebt,
				Status: models.StatusCritical,
				Advice: fmt.Sprintf("¡ALERTA! Tu flujo disponible (%s) no cubre la cuota del banco (%s). Te faltan %s mensualmente.",
					currency.Format(*capacity, "CLP"), currency.Format(quota, "CLP"), currency.Format(deficit, "CLP")),
			},
			Deficit: round2(deficit),
		}
	}

	effectivePayment := math.Max(*capacity, quota)

	if monthlyRate > 0 {
		interestOnly := principal * monthlyRate
		if effectivePayment <= interestOnly {
			return &models.DebtAnalysis{
				Result: models.Result{
					Type:   models.AnalysisDebt,
					Status: models.StatusImpossible,
					Advice: fmt.Sprintf("Peligro: Tu pago (%s) es menor que los intereses (%s). La deuda nunca bajará.",
						currency.Format(effectivePayment, "CLP"), currency.Format(interestOnly, "CLP")),
				},
				MonthlyPayment: effectivePayment,
			}
		}
	}

	monthsFast := amortizationMonths(principal, effectivePayment, monthlyRate)

	savedMonths := 0
	if quota > 0 && effectivePayment > quota {
		monthsSlow := amortizationMonths(principal, quota, monthlyRate)
		savedMonths = int(math.Max(0, math.Ceil(monthsSlow)-math.Ceil(monthsFast)))
	}

	result := &models.DebtAnalysis{
		Result: models.Result{
			Type: models.AnalysisDebt,
		},
		MonthsToFree:   int(math.Ceil(monthsFast)),
		MonthlyPayment: math.Round(effectivePayment),
		SavedMonths:    savedMonths,
	}

	if savedMonths > 0 {
		result.Status = models.StatusOnTrack
		result.Advice = fmt.Sprintf("¡Excelente estrategia! Al pagar %s extra sobre tu cuota, terminarás %d meses antes.",
			currency.Format(effectivePayment-quota, "CLP"), savedMonths)
	} else {
		result.Status = models.StatusPlanning
		result.Advice = fmt.Sprintf("Estás pagando la cuota mínima de %s. Terminarás en %d meses.",
			currency.Format(quota, "CLP"), result.MonthsToFree)
	}
	return result
}

// amortizationMonths is the closed-form month count to amortize principal p
// with a fixed payment at monthly rate r.
func amortizationMonths(p, payment, r float64) float64 {
	if r == 0 {
		return p / payment
	}
	return -math.Log(1-(r*p)/payment) / math.Log(1+r)
}

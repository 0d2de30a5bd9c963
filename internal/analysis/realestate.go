package analysis

import (
	"fmt"
	"math"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// RealEstateInvestment evaluates a rental property: annualized cap rate over
// the property value and the monthly cash flow of rent against the mortgage
// dividend, scaled into the settlement currency with exchangeRate.
func RealEstateInvestment(t RentalTerms, exchangeRate float64) *models.RealEstateAnalysis {
	if t.PropertyValue == 0 {
		return &models.RealEstateAnalysis{
			Result: models.Result{
				Type:   models.AnalysisRealEstate,
				Status: models.StatusUnknown,
				Advice: "Falta valor propiedad",
			},
		}
	}

	capRate := (t.MonthlyRent * 12 / t.PropertyValue) * 100
	cashFlow := (t.MonthlyRent - t.Dividend) * exchangeRate

	result := &models.RealEstateAnalysis{
		Result: models.Result{
			Type: models.AnalysisRealEstate,
		},
		CapRate:  round2(capRate),
		CashFlow: cashFlow,
	}

	switch {
	case cashFlow > 0:
		result.Status = models.StatusExcellent
		result.Advice = fmt.Sprintf("¡Gran negocio! El arriendo cubre el dividendo y te deja %s de ganancia mensual (Cap Rate: %.1f%%).",
			currency.Format(cashFlow, "CLP"), capRate)
	case cashFlow < 0:
		result.Status = models.StatusAtRisk
		result.Advice = fmt.Sprintf("Cuidado: El arriendo no cubre el dividendo. Tienes un déficit mensual de %s.",
			currency.Format(math.Abs(cashFlow), "CLP"))
	default:
		result.Status = models.StatusOnTrack
		result.Advice = "Break-even: La propiedad se paga sola con el arriendo exacto. Tu ganancia será la plusvalía."
	}
	return result
}

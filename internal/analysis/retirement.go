package analysis

import (
	"time"

	"github.com/finapp-cl/finance-service/internal/models"
)

// RetirementProjection delegates to the investment projection, re-tags the
// result and rewrites the advice for the pension framing. Numeric fields are
// left untouched.
func RetirementProjection(t InvestmentTerms, capacity *float64, exchangeRate float64, now time.Time) *models.InvestmentProjection {
	result := InvestmentProjection(t, capacity, exchangeRate, now)
	result.Type = models.AnalysisRetirement

	switch result.Status {
	case models.StatusOnTrack:
		result.Advice = "¡Vas muy bien! Tu fondo de retiro proyectado superará tu meta. El interés compuesto está trabajando a tu favor."
	case models.StatusNeedsAction:
		result.Advice = "Atención: Con tu aporte actual, podrías tener una brecha pensional. Intenta aumentar tu APV o ahorro voluntario."
	}
	return result
}

package analysis

import (
	"fmt"
	"math"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// Coverage thresholds in months of expenses. Both bounds are inclusive on
// the upper side of each band: exactly 3.0 is ON_TRACK, exactly 6.0 is
// EXCELLENT.
const (
	emergencyExcellentMonths = 6
	emergencySolidMonths     = 3
	emergencyMinimumMonths   = 1
)

// EmergencyFund reports how many months of expenses the fund covers. The
// fund balance is scaled up into the expense currency with exchangeRate. A
// nil or zero monthly expense figure means cash flow is unknown and asks the
// user to register expenses first.
func EmergencyFund(t EmergencyTerms, monthlyExpenses *float64, exchangeRate float64) *models.EmergencyFundAnalysis {
	savingsInExpenseCurrency := t.Current * exchangeRate

	if monthlyExpenses == nil || *monthlyExpenses == 0 {
		return &models.EmergencyFundAnalysis{
			Result: models.Result{
				Type:   models.AnalysisEmergencyFund,
				Status: models.StatusNeedsAction,
				Advice: "Para calcular cuánto dura tu fondo, necesitamos que registres tus gastos o transacciones mensuales primero.",
			},
		}
	}

	monthsCovered := savingsInExpenseCurrency / *monthlyExpenses

	result := &models.EmergencyFundAnalysis{
		Result: models.Result{
			Type: models.AnalysisEmergencyFund,
		},
		MonthsCovered:         round1(monthsCovered),
		RequiredToThreeMonths: math.Max(0, *monthlyExpenses*emergencySolidMonths/exchangeRate-t.Current),
	}

	switch {
	case monthsCovered >= emergencyExcellentMonths:
		result.Status = models.StatusExcellent
		result.Advice = fmt.Sprintf("¡Salud financiera blindada! Tu fondo de %s cubre más de 6 meses de tus gastos actuales.",
			currency.Format(t.Current, t.Currency))
	case monthsCovered >= emergencySolidMonths:
		result.Status = models.StatusOnTrack
		result.Advice = fmt.Sprintf("Tienes una base sólida. Cubres %.1f meses. Lo ideal es llegar a 6 meses para estar totalmente seguro.",
			monthsCovered)
	case monthsCovered >= emergencyMinimumMonths:
		result.Status = models.StatusAtRisk
		result.Advice = fmt.Sprintf("Vas por buen camino, pero %.1f meses es poco margen. Intenta llegar al menos a 3 meses de cobertura.",
			monthsCovered)
	default:
		result.Status = models.StatusCritical
		result.Advice = fmt.Sprintf("Alerta: Tu fondo actual (%s) no cubre ni un mes de gastos. Es prioritario aumentar este ahorro.",
			currency.Format(t.Current, t.Currency))
	}
	return result
}

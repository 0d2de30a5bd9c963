package analysis

import (
	"strings"

	"github.com/finapp-cl/finance-service/internal/models"
)

// AnalyzerTag identifies which analyzer handles a goal.
type AnalyzerTag int

const (
	AnalyzerSavings AnalyzerTag = iota
	AnalyzerEmergencyFund
	AnalyzerDebt
	AnalyzerInvestment
	AnalyzerRealEstate
	AnalyzerRetirement
	AnalyzerControl
)

// emergencyKeywords are the name substrings that mark a saving goal as an
// emergency fund. Matching is case-insensitive.
var emergencyKeywords = []string{
	"emergencia",
	"imprevisto",
	"seguridad",
	"colchón",
	"reserva",
}

// Classify maps a goal to its analyzer. HOUSING goals with a quota amortize
// like debts, otherwise they save like plain goals; INVESTMENT goals with an
// estimated yield are rental properties. Unrecognized types fall back to
// savings feasibility.
func Classify(goal models.FinancialGoal) AnalyzerTag {
	switch goal.Type {
	case models.GoalSaving:
		if IsEmergencyFund(goal.Name) {
			return AnalyzerEmergencyFund
		}
		return AnalyzerSavings
	case models.GoalPurchase:
		return AnalyzerSavings
	case models.GoalDebt:
		return AnalyzerDebt
	case models.GoalHousing:
		if goal.MonthlyQuota.IsPositive() {
			return AnalyzerDebt
		}
		return AnalyzerSavings
	case models.GoalInvestment:
		if goal.EstimatedYield.IsPositive() {
			return AnalyzerRealEstate
		}
		return AnalyzerInvestment
	case models.GoalRetirement:
		return AnalyzerRetirement
	case models.GoalControl:
		return AnalyzerControl
	}
	return AnalyzerSavings
}

// IsEmergencyFund reports whether a goal name marks an emergency fund.
func IsEmergencyFund(name string) bool {
	lower := strings.ToLower(name)
	for _, keyword := range emergencyKeywords {
		if strings.Contains(lower, keyword) {
			return true
		}
	}
	return false
}

package analysis

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finapp-cl/finance-service/internal/models"
)

func TestClassify(t *testing.T) {
	cases := []struct {
		name string
		goal models.FinancialGoal
		want AnalyzerTag
	}{
		{
			name: "plain saving",
			goal: models.FinancialGoal{Type: models.GoalSaving, Name: "Vacaciones en el sur"},
			want: AnalyzerSavings,
		},
		{
			name: "saving with emergency keyword",
			goal: models.FinancialGoal{Type: models.GoalSaving, Name: "Fondo de emergencia"},
			want: AnalyzerEmergencyFund,
		},
		{
			name: "keyword match is case-insensitive",
			goal: models.FinancialGoal{Type: models.GoalSaving, Name: "Mi Colchón financiero"},
			want: AnalyzerEmergencyFund,
		},
		{
			name: "legacy purchase type",
			goal: models.FinancialGoal{Type: models.GoalPurchase, Name: "Auto nuevo"},
			want: AnalyzerSavings,
		},
		{
			name: "debt",
			goal: models.FinancialGoal{Type: models.GoalDebt, Name: "Crédito de consumo"},
			want: AnalyzerDebt,
		},
		{
			name: "housing with quota amortizes",
			goal: models.FinancialGoal{
				Type:         models.GoalHousing,
				Name:         "Departamento",
				MonthlyQuota: decimal.NewFromInt(350000),
			},
			want: AnalyzerDebt,
		},
		{
			name: "housing without quota saves",
			goal: models.FinancialGoal{Type: models.GoalHousing, Name: "Pie del departamento"},
			want: AnalyzerSavings,
		},
		{
			name: "investment with yield is rental",
			goal: models.FinancialGoal{
				Type:           models.GoalInvestment,
				Name:           "Depto para arriendo",
				EstimatedYield: decimal.NewFromFloat(5.5),
			},
			want: AnalyzerRealEstate,
		},
		{
			name: "investment without yield projects",
			goal: models.FinancialGoal{Type: models.GoalInvestment, Name: "Fondo mutuo"},
			want: AnalyzerInvestment,
		},
		{
			name: "retirement",
			goal: models.FinancialGoal{Type: models.GoalRetirement, Name: "Jubilación"},
			want: AnalyzerRetirement,
		},
		{
			name: "control",
			goal: models.FinancialGoal{Type: models.GoalControl, Name: "Gastar menos en delivery"},
			want: AnalyzerControl,
		},
		{
			name: "unknown type falls back to savings",
			goal: models.FinancialGoal{Type: models.GoalType("MYSTERY"), Name: "algo"},
			want: AnalyzerSavings,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Classify(tc.goal); got != tc.want {
				t.Errorf("expected tag %d, got %d", tc.want, got)
			}
		})
	}
}

func TestIsEmergencyFund(t *testing.T) {
	cases := []struct {
		name string
		want bool
	}{
		{"Fondo de emergencia", true},
		{"Para imprevistos", true},
		{"RESERVA familiar", true},
		{"ahorro de seguridad", true},
		{"colchón", true},
		{"Vacaciones", false},
		{"", false},
	}

	for _, tc := range cases {
		if got := IsEmergencyFund(tc.name); got != tc.want {
			t.Errorf("IsEmergencyFund(%q) = %v, want %v", tc.name, got, tc.want)
		}
	}
}

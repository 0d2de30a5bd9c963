package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GoalType is the behavioral category of a financial goal.
type GoalType string

const (
	GoalSaving     GoalType = "SAVING"
	GoalPurchase   GoalType = "PURCHASE" // legacy alias for plain saving goals
	GoalDebt       GoalType = "DEBT"
	GoalHousing    GoalType = "HOUSING"
	GoalInvestment GoalType = "INVESTMENT"
	GoalRetirement GoalType = "RETIREMENT"
	GoalControl    GoalType = "CONTROL"
)

// FinancialGoal represents a user's financial goal.
//
// MonthlyQuota is the contractual minimum payment for DEBT/HOUSING goals and
// the mortgage dividend for rental investments. EstimatedYield is the expected
// monthly rent for rental investments. InterestRate is an annual percentage
// (0-100).
type FinancialGoal struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	Name           string          `json:"name"`
	Type           GoalType        `json:"type"`
	Currency       string          `json:"currency"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
	CurrentAmount  decimal.Decimal `json:"current_amount"`
	MonthlyQuota   decimal.Decimal `json:"monthly_quota"`
	EstimatedYield decimal.Decimal `json:"estimated_yield"`
	InterestRate   decimal.Decimal `json:"interest_rate"`
	Deadline       *time.Time      `json:"deadline"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}

// AnalyzedGoal is a goal merged with its analysis for API responses.
type AnalyzedGoal struct {
	FinancialGoal
	Analysis Analysis `json:"analysis"`
}

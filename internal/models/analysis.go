package models

// AnalysisType tags the archetype of an analysis result.
type AnalysisType string

const (
	AnalysisSavings       AnalysisType = "SAVINGS_ANALYSIS"
	AnalysisDebt          AnalysisType = "DEBT_ANALYSIS"
	AnalysisInvestment    AnalysisType = "INVESTMENT_PROJECTION"
	AnalysisEmergencyFund AnalysisType = "EMERGENCY_FUND_ANALYSIS"
	AnalysisRealEstate    AnalysisType = "REAL_ESTATE_ANALYSIS"
	AnalysisRetirement    AnalysisType = "RETIREMENT_ANALYSIS"
	AnalysisMortgage      AnalysisType = "MORTGAGE_PAYOFF"
	AnalysisHousingSaving AnalysisType = "HOUSING_SAVING"
)

// AnalysisStatus is the per-analyzer status classification.
type AnalysisStatus string

const (
	StatusCompleted   AnalysisStatus = "COMPLETED"
	StatusOnTrack     AnalysisStatus = "ON_TRACK"
	StatusAtRisk      AnalysisStatus = "AT_RISK"
	StatusNeedsAction AnalysisStatus = "NEEDS_ACTION"
	StatusCritical    AnalysisStatus = "CRITICAL"
	StatusImpossible  AnalysisStatus = "IMPOSSIBLE"
	StatusPlanning    AnalysisStatus = "PLANNING"
	StatusExcellent   AnalysisStatus = "EXCELLENT"
	StatusUnknown     AnalysisStatus = "UNKNOWN"
	StatusInfo        AnalysisStatus = "INFO"
)

// Analysis is the common surface of every analyzer result. The engine always
// returns a well-formed analysis; degraded inputs become UNKNOWN or
// NEEDS_ACTION statuses, never errors.
type Analysis interface {
	AnalysisStatus() AnalysisStatus
	AdviceText() string
}

// Result carries the fields shared by all analyzer results.
type Result struct {
	Type   AnalysisType   `json:"type,omitempty"`
	Status AnalysisStatus `json:"status"`
	Advice string         `json:"advice"`
}

func (r *Result) AnalysisStatus() AnalysisStatus { return r.Status }

func (r *Result) AdviceText() string { return r.Advice }

// SavingsAnalysis reports whether the monthly savings capacity covers the
// amount required to reach the goal before its deadline.
type SavingsAnalysis struct {
	Result
	MonthsLeft      int     `json:"months_left"`
	RequiredMonthly float64 `json:"required_monthly"`
	YourCapacity    float64 `json:"your_capacity"`
	Gap             float64 `json:"gap,omitempty"`
}

// DebtAnalysis reports the amortization outlook of a debt goal.
type DebtAnalysis struct {
	Result
	MonthsToFree   int     `json:"months_to_free"`
	MonthlyPayment float64 `json:"monthly_payment"`
	SavedMonths    int     `json:"saved_months,omitempty"`
	Deficit        float64 `json:"deficit,omitempty"`
}

// InvestmentProjection reports a compound-growth simulation of a goal's
// balance plus monthly contributions.
type InvestmentProjection struct {
	Result
	ProjectedAmount     float64 `json:"projected_amount"`
	InterestEarned      float64 `json:"interest_earned"`
	IsGoalMet           bool    `json:"is_goal_met"`
	MonthlyContribution float64 `json:"monthly_contribution"`
	Currency            string  `json:"currency"`
}

// EmergencyFundAnalysis reports how many months of expenses the fund covers.
type EmergencyFundAnalysis struct {
	Result
	MonthsCovered         float64 `json:"months_covered"`
	RequiredToThreeMonths float64 `json:"required_to_three_months"`
}

// RealEstateAnalysis reports cap rate and monthly cash flow of a rental
// property goal.
type RealEstateAnalysis struct {
	Result
	CapRate  float64 `json:"cap_rate"`
	CashFlow float64 `json:"cash_flow"`
}

// ControlAnalysis is the static informational result for CONTROL goals.
type ControlAnalysis struct {
	Result
}

// CashFlowSnapshot holds trailing-window monthly averages of a user's income
// and expenses in their settlement currency.
type CashFlowSnapshot struct {
	Income   float64 `json:"income"`
	Expenses float64 `json:"expenses"`
	Currency string  `json:"currency"`
}

// GoalAlert is one entry of the goal alert digest email.
type GoalAlert struct {
	GoalName string
	Status   AnalysisStatus
	Advice   string
}

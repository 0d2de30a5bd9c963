package analysis

import (
	"math"
	"testing"

	"github.com/finapp-cl/finance-service/internal/models"
)

func TestInvestmentProjection_ZeroRateZeroContributionIdentity(t *testing.T) {
	terms := InvestmentTerms{
		Target:   0,
		Current:  123456.78,
		Currency: "CLP",
		Deadline: tptr(testNow.AddDate(3, 0, 0)),
	}

	result := InvestmentProjection(terms, fptr(0), 1, testNow)

	if result.ProjectedAmount != 123456.78 {
		t.Errorf("expected balance unchanged, got %.2f", result.ProjectedAmount)
	}
	if result.InterestEarned != 0 {
		t.Errorf("expected zero interest, got %.2f", result.InterestEarned)
	}
}

func TestInvestmentProjection_MatchesClosedFormAnnuity(t *testing.T) {
	terms := InvestmentTerms{
		Target:     0,
		Current:    500000,
		AnnualRate: 6,
		Currency:   "CLP",
		Deadline:   tptr(testNow.AddDate(2, 0, 0)),
	}
	capacity := 100000.0

	result := InvestmentProjection(terms, &capacity, 1, testNow)

	// FV = P(1+r)^n + c*((1+r)^n - 1)/r with grow-then-add ordering.
	r := 0.06 / 12
	n := 24.0
	growth := math.Pow(1+r, n)
	want := 500000*growth + 100000*(growth-1)/r

	if math.Abs(result.ProjectedAmount-want) > 0.01 {
		t.Errorf("expected %.2f, got %.2f", want, result.ProjectedAmount)
	}
}

func TestInvestmentProjection_NoDeadlineUsesTwelveMonths(t *testing.T) {
	terms := InvestmentTerms{Target: 0, Current: 1200, Currency: "CLP"}

	result := InvestmentProjection(terms, fptr(100), 1, testNow)

	// 12 contributions of 100 on top of the balance at zero rate.
	if result.ProjectedAmount != 2400 {
		t.Errorf("expected 2400 after 12 months, got %.2f", result.ProjectedAmount)
	}
}

func TestInvestmentProjection_UnknownCapacity(t *testing.T) {
	terms := InvestmentTerms{
		Target:     1000000,
		Current:    100000,
		AnnualRate: 5,
		Currency:   "CLP",
		Deadline:   tptr(testNow.AddDate(1, 0, 0)),
	}

	result := InvestmentProjection(terms, nil, 1, testNow)

	if result.Status != models.StatusUnknown {
		t.Fatalf("expected UNKNOWN, got %s", result.Status)
	}
	if result.MonthlyContribution != 0 {
		t.Errorf("expected zero contribution, got %.2f", result.MonthlyContribution)
	}
}

func TestInvestmentProjection_TargetMet(t *testing.T) {
	terms := InvestmentTerms{
		Target:     1000000,
		Current:    0,
		Currency:   "CLP",
		Deadline:   tptr(testNow.AddDate(1, 0, 0)),
	}

	result := InvestmentProjection(terms, fptr(100000), 1, testNow)

	if result.Status != models.StatusOnTrack {
		t.Fatalf("expected ON_TRACK, got %s", result.Status)
	}
	if !result.IsGoalMet {
		t.Errorf("expected goal met")
	}
}

func TestInvestmentProjection_TargetMissed(t *testing.T) {
	terms := InvestmentTerms{
		Target:   1000000,
		Current:  0,
		Currency: "CLP",
		Deadline: tptr(testNow.AddDate(1, 0, 0)),
	}

	result := InvestmentProjection(terms, fptr(10000), 1, testNow)

	if result.Status != models.StatusNeedsAction {
		t.Fatalf("expected NEEDS_ACTION, got %s", result.Status)
	}
	if result.IsGoalMet {
		t.Errorf("expected goal not met")
	}
}

func TestInvestmentProjection_PureProjectionWithoutTarget(t *testing.T) {
	terms := InvestmentTerms{Target: 0, Current: 100000, AnnualRate: 12, Currency: "CLP"}

	result := InvestmentProjection(terms, fptr(50000), 1, testNow)

	if result.Status != models.StatusOnTrack {
		t.Errorf("expected ON_TRACK for pure projection, got %s", result.Status)
	}
	if !result.IsGoalMet {
		t.Errorf("expected goal met for pure projection")
	}
}

func TestRetirementProjection_RetagsAndRewritesAdvice(t *testing.T) {
	terms := InvestmentTerms{
		Target:   1000000,
		Current:  0,
		Currency: "CLP",
		Deadline: tptr(testNow.AddDate(1, 0, 0)),
	}

	base := InvestmentProjection(terms, fptr(100000), 1, testNow)
	result := RetirementProjection(terms, fptr(100000), 1, testNow)

	if result.Type != models.AnalysisRetirement {
		t.Errorf("expected RETIREMENT_ANALYSIS, got %s", result.Type)
	}
	if result.Advice == base.Advice {
		t.Errorf("expected rewritten advice")
	}
	if result.ProjectedAmount != base.ProjectedAmount || result.InterestEarned != base.InterestEarned {
		t.Errorf("expected numeric fields untouched")
	}
	if result.Status != base.Status {
		t.Errorf("expected status untouched, got %s vs %s", result.Status, base.Status)
	}
}

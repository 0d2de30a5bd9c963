package analysis

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/finapp-cl/finance-service/internal/models"
)

func TestMonthlyCashFlow_AveragesOverWindow(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(900000), Type: models.TransactionIncome, AccountCurrency: "CLP"},
		{Amount: decimal.NewFromInt(600000), Type: models.TransactionIncome, AccountCurrency: "CLP"},
		{Amount: decimal.NewFromInt(450000), Type: models.TransactionExpense, AccountCurrency: "CLP"},
	}

	snapshot := MonthlyCashFlow(transactions, "CLP")

	if snapshot.Income != 500000 {
		t.Errorf("expected income 500000, got %.0f", snapshot.Income)
	}
	if snapshot.Expenses != 150000 {
		t.Errorf("expected expenses 150000, got %.0f", snapshot.Expenses)
	}
	if snapshot.Currency != "CLP" {
		t.Errorf("expected CLP, got %s", snapshot.Currency)
	}
}

func TestMonthlyCashFlow_ConvertsAccountCurrency(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(300), Type: models.TransactionIncome, AccountCurrency: "USD"},
	}

	snapshot := MonthlyCashFlow(transactions, "CLP")

	// 300 USD at 945 CLP each, averaged over three months.
	if snapshot.Income != 300*945.0/3 {
		t.Errorf("expected %.0f, got %.0f", 300*945.0/3, snapshot.Income)
	}
}

func TestMonthlyCashFlow_IgnoresTransfers(t *testing.T) {
	transactions := []models.Transaction{
		{Amount: decimal.NewFromInt(1000000), Type: models.TransactionTransfer, AccountCurrency: "CLP"},
		{Amount: decimal.NewFromInt(300000), Type: models.TransactionExpense, AccountCurrency: "CLP"},
	}

	snapshot := MonthlyCashFlow(transactions, "CLP")

	if snapshot.Income != 0 {
		t.Errorf("expected transfers ignored, got income %.0f", snapshot.Income)
	}
	if snapshot.Expenses != 100000 {
		t.Errorf("expected expenses 100000, got %.0f", snapshot.Expenses)
	}
}

func TestMonthlyCashFlow_EmptySlice(t *testing.T) {
	snapshot := MonthlyCashFlow(nil, "CLP")

	if snapshot.Income != 0 || snapshot.Expenses != 0 {
		t.Errorf("expected zero snapshot, got %+v", snapshot)
	}
}

func TestWindowStart(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	want := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	if got := WindowStart(now); !got.Equal(want) {
		t.Errorf("expected %v, got %v", want, got)
	}
}

package analysis

import (
	"time"

	"github.com/finapp-cl/finance-service/internal/currency"
	"github.com/finapp-cl/finance-service/internal/models"
)

// cashFlowWindowMonths is the trailing window of the cash-flow average. The
// divisor is fixed: a user active for only one month shows deflated averages.
const cashFlowWindowMonths = 3

// WindowStart returns the inclusive lower bound of the cash-flow window.
func WindowStart(now time.Time) time.Time {
	return now.AddDate(0, -cashFlowWindowMonths, 0)
}

// MonthlyCashFlow averages the given transactions into monthly income and
// expenses expressed in the settlement currency. Transaction types other than
// INCOME and EXPENSE are ignored. An empty slice yields a zero snapshot.
func MonthlyCashFlow(transactions []models.Transaction, settlementCurrency string) models.CashFlowSnapshot {
	var totalIncome, totalExpense float64

	for _, tx := range transactions {
		amount := currency.Convert(tx.Amount.InexactFloat64(), tx.AccountCurrency, settlementCurrency)
		switch tx.Type {
		case models.TransactionIncome:
			totalIncome += amount
		case models.TransactionExpense:
			totalExpense += amount
		}
	}

	return models.CashFlowSnapshot{
		Income:   totalIncome / cashFlowWindowMonths,
		Expenses: totalExpense / cashFlowWindowMonths,
		Currency: settlementCurrency,
	}
}

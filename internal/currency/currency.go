package currency

import (
	"fmt"
	"strings"
)

// ratesToCLP is the static table of currency units expressed in Chilean
// pesos. The UF entry is a fixed fallback; live UF values come from the
// indicators client and only affect the goal-relative exchange rate, never
// cash-flow aggregation.
var ratesToCLP = map[string]float64{
	"CLP": 1,
	"USD": 945,
	"EUR": 1020,
	"UF":  38600,
	"CAD": 700,
	"BTC": 90000000,
}

// RateToCLP returns the CLP value of one unit of the given currency. Unknown
// codes convert at 1, which keeps conversion a lenient no-op instead of an
// error.
func RateToCLP(code string) float64 {
	if rate, ok := ratesToCLP[code]; ok {
		return rate
	}
	return 1
}

// Convert converts an amount between two currencies through the CLP table.
func Convert(amount float64, from, to string) float64 {
	return amount * RateToCLP(from) / RateToCLP(to)
}

// Format renders an amount for advice text in the style of each currency:
// UF with two decimals and suffix, USD with two decimals and prefix, BTC
// with six decimals, everything else as a dot-grouped integer peso amount.
func Format(amount float64, code string) string {
	switch code {
	case "UF":
		return fmt.Sprintf("%.2f UF", amount)
	case "USD":
		return fmt.Sprintf("US$ %.2f", amount)
	case "BTC":
		return fmt.Sprintf("₿ %.6f", amount)
	default:
		return "$" + groupThousands(amount)
	}
}

// groupThousands formats a rounded amount with Chilean thousands separators.
func groupThousands(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}
	digits := fmt.Sprintf("%.0f", amount)

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	lead := len(digits) % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
		if len(digits) > lead {
			b.WriteByte('.')
		}
	}
	for i := lead; i < len(digits); i += 3 {
		b.WriteString(digits[i : i+3])
		if i+3 < len(digits) {
			b.WriteByte('.')
		}
	}
	return b.String()
}

package currency

import (
	"math"
	"testing"
)

func TestRateToCLP(t *testing.T) {
	if got := RateToCLP("USD"); got != 945 {
		t.Errorf("expected 945, got %.0f", got)
	}
	if got := RateToCLP("CLP"); got != 1 {
		t.Errorf("expected 1, got %.0f", got)
	}
	if got := RateToCLP("XYZ"); got != 1 {
		t.Errorf("expected unknown code to rate 1, got %.0f", got)
	}
}

func TestConvert(t *testing.T) {
	cases := []struct {
		amount   float64
		from, to string
		want     float64
	}{
		{100, "USD", "CLP", 94500},
		{94500, "CLP", "USD", 100},
		{1, "UF", "CLP", 38600},
		{1020, "CLP", "EUR", 1},
		{1, "BTC", "CLP", 90000000},
		{500, "CLP", "CLP", 500},
		{500, "XYZ", "CLP", 500},
	}

	for _, tc := range cases {
		if got := Convert(tc.amount, tc.from, tc.to); math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("Convert(%.2f, %s, %s) = %.4f, want %.4f", tc.amount, tc.from, tc.to, got, tc.want)
		}
	}
}

func TestFormat(t *testing.T) {
	cases := []struct {
		amount float64
		code   string
		want   string
	}{
		{12.5, "UF", "12.50 UF"},
		{1500.75, "USD", "US$ 1500.75"},
		{0.005, "BTC", "₿ 0.005000"},
		{1234567, "CLP", "$1.234.567"},
		{1234567, "EUR", "$1.234.567"},
		{950, "CLP", "$950"},
		{1000, "CLP", "$1.000"},
		{0, "CLP", "$0"},
		{-45000, "CLP", "$-45.000"},
		{999.6, "CLP", "$1.000"},
	}

	for _, tc := range cases {
		if got := Format(tc.amount, tc.code); got != tc.want {
			t.Errorf("Format(%v, %s) = %q, want %q", tc.amount, tc.code, got, tc.want)
		}
	}
}

package analysis

import (
	"math"
	"time"
)

// monthsBetween returns the number of whole calendar months from `from`
// until `until`. Partial months do not count.
func monthsBetween(until, from time.Time) int {
	months := (until.Year()-from.Year())*12 + int(until.Month()) - int(from.Month())
	if months > 0 && until.Day() < from.Day() {
		months--
	} else if months < 0 && until.Day() > from.Day() {
		months++
	}
	return months
}

func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

func round1(value float64) float64 {
	return math.Round(value*10) / 10
}

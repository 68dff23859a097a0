package utils

import (
	"math"
	"strconv"
)

// RoundWithPrecision rounds f to the given number of decimal places.
// Precision 0 yields whole percentages, the dashboard default.
func RoundWithPrecision(f float64, precision int) float64 {
	if f == 0 {
		return 0
	}

	factor := math.Pow(10, float64(precision))
	return math.Round(f*factor) / factor
}

// ParseIntLoose parses POS numeric fields that arrive as strings and
// may carry a fractional part ("3.0"). Reports ok=false on garbage.
func ParseIntLoose(s string) (int, bool) {
	if s == "" {
		return 0, false
	}

	if v, err := strconv.Atoi(s); err == nil {
		return v, true
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}

	return int(f), true
}

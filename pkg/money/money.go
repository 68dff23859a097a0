// Package money is the single place where upstream monetary values
// enter the system. The POS reports amounts in minor units (kopecks);
// everything past the integrator boundary works in major units.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// FromMinorUnitsString converts a minor-unit amount the POS serialized
// as a string (possibly with a fractional part). Unparseable input
// reports ok=false and must be skipped by the caller.
func FromMinorUnitsString(minor string) (float64, bool) {
	if minor == "" {
		return 0, false
	}

	d, err := decimal.NewFromString(minor)
	if err != nil {
		return 0, false
	}

	f, _ := d.Div(hundred).Float64()
	return f, true
}

// Round2 rounds a major-unit amount to two decimal places for
// presentation.
func Round2(f float64) float64 {
	r, _ := decimal.NewFromFloat(f).Round(2).Float64()
	return r
}

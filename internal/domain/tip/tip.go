// Package tip computes the session tip amount.
//
// The four selection modes (percentage, round-up, custom amount,
// disabled) are mutually exclusive: applying one overwrites whatever
// the previous selection produced.
package tip

import "math"

// DefaultDenomination is the round-up target used when none is
// configured. It assumes a currency where 5 is a meaningful note.
const DefaultDenomination = 5

// Calculator derives tip amounts from the items total.
type Calculator struct {
	denomination float64
}

// NewCalculator creates a calculator that rounds up to multiples of
// the given denomination. Non-positive denominations fall back to the
// default.
func NewCalculator(denomination float64) Calculator {
	if denomination <= 0 || math.IsNaN(denomination) || math.IsInf(denomination, 0) {
		denomination = DefaultDenomination
	}
	return Calculator{denomination: denomination}
}

// Percent returns a tip of p percent of the items total, rounded to
// cents. Invalid percentages coerce to 0.
func (c Calculator) Percent(itemsTotal, p float64) float64 {
	if p < 0 || math.IsNaN(p) || math.IsInf(p, 0) {
		p = 0
	}
	return roundToCents(itemsTotal * p / 100)
}

// RoundUp returns the difference between the items total and the next
// multiple of the denomination, 0 when the total already lands on one.
func (c Calculator) RoundUp(itemsTotal float64) float64 {
	next := math.Ceil(itemsTotal/c.denomination) * c.denomination
	diff := next - itemsTotal
	if diff <= 0 {
		return 0
	}
	return roundToCents(diff)
}

// Custom returns the given amount, coerced to 0 when it is not a valid
// non-negative number.
func Custom(amount float64) float64 {
	if amount < 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0
	}
	return amount
}

// Disabled returns the tip amount for a session with tipping off.
func Disabled() float64 {
	return 0
}

// roundToCents rounds a float to 2 decimal places.
func roundToCents(amount float64) float64 {
	return math.Round(amount*100) / 100
}

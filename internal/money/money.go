// Package money rounds and formats monetary amounts for display. Amounts are
// carried as float64 everywhere else and rounded only here, at the edge.
package money

import "github.com/shopspring/decimal"

// Round2 rounds to two decimal places (standard half-up monetary display; no
// banker's rounding is used anywhere in the product).
func Round2(v float64) float64 {
	f, _ := decimal.NewFromFloat(v).Round(2).Float64()
	return f
}

// Format renders an amount with exactly two decimals, e.g. "2281.40".
func Format(v float64) string {
	return decimal.NewFromFloat(v).StringFixed(2)
}

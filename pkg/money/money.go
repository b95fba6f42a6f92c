// Package money converts between the decimal amounts used on the API surface
// and the integer cents stored everywhere else. All ledger arithmetic happens
// on cents so currency math stays exact; rounding happens exactly once, at
// the request boundary.
package money

import "math"

// ToCents converts a decimal amount to cents, rounding half away from zero.
func ToCents(amount float64) int64 {
	return int64(math.Round(amount * 100))
}

// ToDecimal converts cents to a decimal amount for API responses.
func ToDecimal(cents int64) float64 {
	return float64(cents) / 100
}

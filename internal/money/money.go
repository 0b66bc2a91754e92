// Package money holds the decimal arithmetic shared by pricing and payments.
package money

import (
	"errors"
	"math"

	"github.com/shopspring/decimal"
)

// ErrNotFinite is returned for NaN or infinite amounts.
var ErrNotFinite = errors.New("amount is not a finite number")

var (
	hundred   = decimal.NewFromInt(100)
	tolerance = decimal.New(1, -2)
)

// ToMinorUnits converts a display-currency amount to cents, rounding half
// away from zero on the decimal value (25.995 becomes 2600, not 2599).
func ToMinorUnits(amount float64) (int64, error) {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return 0, ErrNotFinite
	}
	return decimal.NewFromFloat(amount).Mul(hundred).Round(0).IntPart(), nil
}

// RoundCents rounds a display-currency amount to whole cents, half away
// from zero.
func RoundCents(amount float64) float64 {
	f, _ := decimal.NewFromFloat(amount).Round(2).Float64()
	return f
}

// Sum adds amounts without accumulating binary floating point drift.
func Sum(amounts ...float64) float64 {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(decimal.NewFromFloat(a))
	}
	f, _ := total.Float64()
	return f
}

// Equal reports whether two amounts differ by less than one cent.
func Equal(a, b float64) bool {
	diff := decimal.NewFromFloat(a).Sub(decimal.NewFromFloat(b)).Abs()
	return diff.LessThan(tolerance)
}

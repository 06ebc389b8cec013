// Package numeric holds the parsing, clamping and rounding helpers shared by
// the calculation engines and the calculators built on top of them.
package numeric

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MonthsPerYear is the default number of periods per year.
	MonthsPerYear = 12

	// MoneyEpsilon is the smallest currency amount treated as non-zero.
	MoneyEpsilon = 0.01
)

// Sanitize maps NaN and infinities to 0 and returns every other value unchanged.
func Sanitize(x float64) float64 {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return 0
	}
	return x
}

// NonNegative sanitizes x and clamps it at zero.
func NonNegative(x float64) float64 {
	x = Sanitize(x)
	if x < 0 {
		return 0
	}
	return x
}

// Clamp limits x to [lo, hi]. A non-finite x is treated as 0 first.
func Clamp(x, lo, hi float64) float64 {
	x = Sanitize(x)
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// NearlyZero reports whether |x| is below eps.
func NearlyZero(x, eps float64) bool {
	return math.Abs(x) < eps
}

// amountReplacer strips currency symbols and grouping separators that the
// presentation layer may leave in a field.
var amountReplacer = strings.NewReplacer(
	"£", "",
	"$", "",
	"€", "",
	",", "",
	"_", "",
	" ", "",
	"%", "",
)

// ParseAmount parses a user supplied number such as "£1,234.50" or "5%".
// Empty or malformed input yields 0; it never returns an error.
func ParseAmount(s string) float64 {
	cleaned := amountReplacer.Replace(strings.TrimSpace(s))
	if cleaned == "" {
		return 0
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return 0
	}
	f, _ := d.Float64()
	return Sanitize(f)
}

// ParseInt parses a whole number of periods or years, truncating any
// fractional part. Malformed input yields 0.
func ParseInt(s string) int {
	f := ParseAmount(s)
	if f > math.MaxInt32 {
		return math.MaxInt32
	}
	if f < math.MinInt32 {
		return math.MinInt32
	}
	return int(f)
}

// ToMoney converts x to a decimal rounded to pennies.
func ToMoney(x float64) decimal.Decimal {
	return decimal.NewFromFloat(Sanitize(x)).Round(2)
}

// RoundMoney rounds x to pennies, half away from zero.
func RoundMoney(x float64) float64 {
	return Rounding{Mode: RoundHalfUp, Places: 2}.Apply(x)
}

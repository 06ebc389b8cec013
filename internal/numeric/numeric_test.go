package numeric

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, 0.0, Sanitize(math.NaN()))
	assert.Equal(t, 0.0, Sanitize(math.Inf(1)))
	assert.Equal(t, 0.0, Sanitize(math.Inf(-1)))
	assert.Equal(t, -3.5, Sanitize(-3.5))
	assert.Equal(t, 0.0, NonNegative(-3.5))
	assert.Equal(t, 12.0, NonNegative(12))
}

func TestClamp(t *testing.T) {
	assert.Equal(t, 5.0, Clamp(3, 5, 10))
	assert.Equal(t, 10.0, Clamp(30, 5, 10))
	assert.Equal(t, 7.0, Clamp(7, 5, 10))
	assert.Equal(t, 5.0, Clamp(math.NaN(), 5, 10), "NaN is treated as zero before clamping")
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"1234.5", 1234.5},
		{"£1,234.50", 1234.5},
		{" 250000 ", 250000},
		{"5%", 5},
		{"-12", -12},
		{"", 0},
		{"abc", 0},
		{"1.2.3", 0},
		{"1_000", 1000},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestParseInt(t *testing.T) {
	assert.Equal(t, 25, ParseInt("25"))
	assert.Equal(t, 25, ParseInt("25.9"))
	assert.Equal(t, 0, ParseInt("years"))
}

func TestRoundingApply(t *testing.T) {
	tests := []struct {
		name string
		r    Rounding
		in   float64
		want float64
	}{
		{"none keeps value", Rounding{Mode: RoundNone}, 1.23456, 1.23456},
		{"empty mode keeps value", Rounding{}, 1.23456, 1.23456},
		{"half up pennies", Rounding{Mode: RoundHalfUp, Places: 2}, 1.005, 1.01},
		{"half up negative", Rounding{Mode: RoundHalfUp, Places: 0}, -2.5, -3},
		{"floor pounds", Rounding{Mode: RoundFloor, Places: 0}, 4999.99, 4999},
		{"ceil pounds", Rounding{Mode: RoundCeil, Places: 0}, 4999.01, 5000},
		{"bankers to even", Rounding{Mode: RoundBankers, Places: 0}, 2.5, 2},
		{"nan becomes zero", Rounding{Mode: RoundFloor}, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, tt.r.Apply(tt.in), 1e-9)
		})
	}
}

func TestParseRoundingMode(t *testing.T) {
	m, err := ParseRoundingMode("Floor")
	assert.NoError(t, err)
	assert.Equal(t, RoundFloor, m)

	m, err = ParseRoundingMode("")
	assert.NoError(t, err)
	assert.Equal(t, RoundNone, m)

	_, err = ParseRoundingMode("sideways")
	assert.Error(t, err)
}

func TestMoneyHelpers(t *testing.T) {
	assert.Equal(t, 1342.05, RoundMoney(1342.0540))
	assert.Equal(t, "1342.05", ToMoney(1342.0540).StringFixed(2))
	assert.Equal(t, "0.00", ToMoney(math.NaN()).StringFixed(2))
	assert.True(t, NearlyZero(0.004, MoneyEpsilon))
	assert.False(t, NearlyZero(0.02, MoneyEpsilon))
}

func TestRates(t *testing.T) {
	assert.InDelta(t, 0.05/12, MonthlyRate(5), 1e-15)
	assert.InDelta(t, 0.05/52, PeriodRate(5, 52), 1e-15)
	assert.InDelta(t, 0.05/12, PeriodRate(5, 0), 1e-15, "zero periods per year falls back to monthly")

	monthly := EffectivePeriodRate(6, 12)
	assert.InDelta(t, 0.06, math.Pow(1+monthly, 12)-1, 1e-12)
	assert.Equal(t, -1.0, EffectivePeriodRate(-150, 12))
	assert.Equal(t, 0.25, Percent(25))
}

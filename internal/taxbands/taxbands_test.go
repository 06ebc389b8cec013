package taxbands

import (
	"testing"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func englandRules() domain.IncomeTaxRules {
	return domain.IncomeTaxRules{
		PersonalAllowance: 12570,
		Taper: domain.TaperRule{
			Threshold: 100000,
			Rate:      0.5,
			Rounding:  numeric.Rounding{Mode: numeric.RoundFloor},
		},
		Bands: []domain.Band{
			domain.NewBand("basic", 0, 37700, 0.20),
			domain.NewBand("higher", 37700, 125140, 0.40),
			domain.OpenBand("additional", 125140, 0.45),
		},
	}
}

func dividendRules() domain.DividendRules {
	return domain.DividendRules{
		Allowance: 500,
		Bands: []domain.Band{
			domain.NewBand("basic", 0, 37700, 0.0875),
			domain.NewBand("higher", 37700, 125140, 0.3375),
			domain.OpenBand("additional", 125140, 0.3935),
		},
	}
}

func stampDutyRules() domain.StampDutyRules {
	return domain.StampDutyRules{
		Standard: []domain.Band{
			domain.NewBand("nil", 0, 125000, 0),
			domain.NewBand("2%", 125000, 250000, 0.02),
			domain.NewBand("5%", 250000, 925000, 0.05),
			domain.NewBand("10%", 925000, 1500000, 0.10),
			domain.OpenBand("12%", 1500000, 0.12),
		},
		FirstTimeBuyer: []domain.Band{
			domain.NewBand("nil", 0, 300000, 0),
			domain.OpenBand("5%", 300000, 0.05),
		},
		FirstTimeBuyerMaxPrice:      500000,
		AdditionalPropertySurcharge: 0.05,
		NonResidentSurcharge:        0.02,
	}
}

func TestShift(t *testing.T) {
	original := englandRules().Bands
	shifted := Shift(original, 12570)

	require.Len(t, shifted, 3)
	assert.Equal(t, 12570.0, shifted[0].Lower)
	assert.Equal(t, 50270.0, *shifted[0].Upper)
	assert.Equal(t, 50270.0, shifted[1].Lower)
	assert.Nil(t, shifted[2].Upper)
	assert.Equal(t, 37700.0, *original[0].Upper, "Shift must not touch its input")
}

func TestClipFrom(t *testing.T) {
	clipped := ClipFrom(dividendRules().Bands, 40000)

	require.Len(t, clipped, 2)
	assert.Equal(t, 40000.0, clipped[0].Lower)
	assert.Equal(t, 125140.0, *clipped[0].Upper)
	assert.Equal(t, 0.3375, clipped[0].Rate)

	onBoundary := ClipFrom(dividendRules().Bands, 37700)
	require.Len(t, onBoundary, 2, "A band ending exactly at start is dropped")
	assert.Equal(t, 37700.0, onBoundary[0].Lower)
}

func TestReducedAllowance(t *testing.T) {
	rules := englandRules()

	tests := []struct {
		income   float64
		expected float64
	}{
		{50000, 12570},
		{100000, 12570},
		{100001, 12570},
		{100002, 12569},
		{110000, 7570},
		{125140, 0},
		{200000, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, ReducedAllowance(rules, tt.income), "income %.0f", tt.income)
	}
}

func TestReducedAllowance_RoundingIsAParameter(t *testing.T) {
	rules := englandRules()
	rules.Taper.Rounding = numeric.Rounding{Mode: numeric.RoundCeil}
	assert.Equal(t, 12569.0, ReducedAllowance(rules, 100001), "Ceil rounds the 0.50 reduction up to 1")

	rules.Taper.Rounding = numeric.Rounding{Mode: numeric.RoundNone}
	assert.Equal(t, 12569.5, ReducedAllowance(rules, 100001))
}

func TestIncomeTaxBands(t *testing.T) {
	bands := IncomeTaxBands(englandRules(), 60000)
	require.NoError(t, calculation.ValidateBands(bands))

	result, err := calculation.AllocateBands(60000, bands)
	require.NoError(t, err)
	expected := 37700*0.20 + (60000-50270)*0.40
	assert.InDelta(t, expected, result.TotalDue, 1e-9)
	assert.Equal(t, 0.40, result.MarginalRate)
}

func TestIncomeTaxBands_FullyTapered(t *testing.T) {
	bands := IncomeTaxBands(englandRules(), 150000)
	require.NoError(t, calculation.ValidateBands(bands), "A zero-width allowance band is still valid")

	assert.Equal(t, 0.0, bands[0].Width())
	result, err := calculation.AllocateBands(150000, bands)
	require.NoError(t, err)
	expected := 37700*0.20 + (125140-37700)*0.40 + (150000-125140)*0.45
	assert.InDelta(t, expected, result.TotalDue, 1e-9)
}

func TestIncomeTaxBands_TaperTrap(t *testing.T) {
	bands := IncomeTaxBands(englandRules(), 110000)
	result, err := calculation.AllocateBands(110000, bands)
	require.NoError(t, err)

	// 7,570 allowance, basic band to 45,270, higher from there.
	expected := 37700*0.20 + (110000-45270)*0.40
	assert.InDelta(t, expected, result.TotalDue, 1e-9)
}

func TestDividendBands(t *testing.T) {
	rules := dividendRules()

	// 30,000 of other taxable income and 10,000 of dividends: 500 covered by
	// the allowance, 7,200 still in the basic band, 2,300 in the higher band.
	bands := DividendBands(rules, 30000, 10000)
	require.NoError(t, calculation.ValidateBands(bands))

	result, err := calculation.AllocateBands(40000, bands)
	require.NoError(t, err)
	expected := 7200*0.0875 + 2300*0.3375
	assert.InDelta(t, expected, result.TotalDue, 1e-9)
	assert.Equal(t, 500.0, DividendAllowanceUsed(rules, 10000))
	assert.Equal(t, 200.0, DividendAllowanceUsed(rules, 200))
}

func TestDividendBands_AllWithinAllowance(t *testing.T) {
	bands := DividendBands(dividendRules(), 20000, 400)
	result, err := calculation.AllocateBands(20400, bands)
	require.NoError(t, err)
	assert.Equal(t, 0.0, result.TotalDue)
}

func TestNationalInsuranceBands(t *testing.T) {
	rules := domain.NIRules{Bands: []domain.Band{
		domain.NewBand("primary_threshold", 0, 12570, 0),
		domain.NewBand("main", 12570, 50270, 0.08),
		domain.OpenBand("upper", 50270, 0.02),
	}}

	bands := NationalInsuranceBands(rules)
	result, err := calculation.AllocateBands(60000, bands)
	require.NoError(t, err)
	assert.InDelta(t, 37700*0.08+9730*0.02, result.TotalDue, 1e-9)

	*bands[0].Upper = 1
	assert.Equal(t, 12570.0, *rules.Bands[0].Upper, "Returned table is a copy")
}

func TestStampDutyBands(t *testing.T) {
	rules := stampDutyRules()

	tests := []struct {
		name        string
		buyer       BuyerType
		price       float64
		nonResident bool
		expected    float64
	}{
		{"standard 300k", BuyerStandard, 300000, false, 2500 + 2500},
		{"first time 300k", BuyerFirstTime, 300000, false, 0},
		{"first time 450k", BuyerFirstTime, 450000, false, 7500},
		{"first time over cap", BuyerFirstTime, 550000, false, 2500 + 15000},
		{"additional 300k", BuyerAdditional, 300000, false, 5000 + 15000},
		{"non-resident 300k", BuyerStandard, 300000, true, 5000 + 6000},
		{"additional non-resident 200k", BuyerAdditional, 200000, true, 125000*0.07 + 75000*0.09},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bands, err := StampDutyBands(rules, tt.buyer, tt.price, tt.nonResident)
			require.NoError(t, err)
			result, err := calculation.AllocateBands(tt.price, bands)
			require.NoError(t, err)
			assert.InDelta(t, tt.expected, result.TotalDue, 1e-6)
		})
	}

	_, err := StampDutyBands(rules, BuyerType("company"), 100000, false)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Equal(t, 0.02, rules.Standard[1].Rate, "Surcharges must not leak into the rule set")
}

func TestParseBuyerType(t *testing.T) {
	for input, expected := range map[string]BuyerType{
		"":                 BuyerStandard,
		"first-time":       BuyerFirstTime,
		"FTB":              BuyerFirstTime,
		"additional":       BuyerAdditional,
		"buy-to-let":       BuyerAdditional,
		" standard ":       BuyerStandard,
		"first_time_buyer": BuyerFirstTime,
	} {
		got, err := ParseBuyerType(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, got, input)
	}

	_, err := ParseBuyerType("company")
	assert.Error(t, err)
}

func TestDescribe(t *testing.T) {
	out := Describe([]domain.Band{domain.NewBand("a", 0, 10, 0.1), domain.OpenBand("b", 10, 0.2)})
	assert.Contains(t, out, "a [0.00, 10.00)")
	assert.Contains(t, out, "b [10.00, ∞)")
}

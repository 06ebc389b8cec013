package compare

import (
	"testing"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleFor(t *testing.T, deal LoanDeal) ComparisonResult {
	t.Helper()
	schedule, err := calculation.GenerateSchedule(deal.Terms())
	require.NoError(t, err)
	return NewMetricsCalculator().CalculateMetrics(deal, schedule)
}

func TestLoanDeal_Terms(t *testing.T) {
	deal := LoanDeal{Principal: 200000, AnnualRatePercent: 5, TermYears: 25, MonthlyOverpayment: 100}
	terms := deal.Terms()

	assert.Equal(t, 300, terms.TermPeriods)
	assert.Equal(t, 12, terms.PeriodsPerYear)
	assert.Equal(t, 100.0, terms.ExtraPaymentPerPeriod)
	assert.Equal(t, 200000.0, terms.Principal)
}

func TestMetricsCalculator_CalculateMetrics(t *testing.T) {
	deal := LoanDeal{
		Name:              "Five Year Fix",
		Principal:         200000,
		AnnualRatePercent: 5,
		TermYears:         25,
		Fees:              999,
		FixedPeriodYears:  5,
	}
	result := scheduleFor(t, deal)

	assert.Equal(t, "Five Year Fix", result.DealName)
	assert.Equal(t, "1169.18", result.MonthlyPayment.StringFixed(2))
	assert.Equal(t, 300, result.Months)
	assert.Equal(t, 60, result.FixedPeriodMonths)
	assert.True(t, result.TotalCost.Equal(result.TotalInterest.Add(decimal.NewFromInt(999))))

	// 60 level payments plus fees
	assert.InDelta(t, 1169.18*60+999, result.CostOverFixed.InexactFloat64(), 1.0)
	assert.True(t, result.BalanceAfterFixed.GreaterThan(decimal.Zero))
	assert.True(t, result.BalanceAfterFixed.LessThan(decimal.NewFromInt(200000)))
}

func TestMetricsCalculator_CalculateMetrics_FixedPeriodDefaultsToTerm(t *testing.T) {
	deal := LoanDeal{Name: "Tracker", Principal: 10000, AnnualRatePercent: 6, TermYears: 2}
	result := scheduleFor(t, deal)

	assert.Equal(t, 24, result.FixedPeriodMonths)
	assert.True(t, result.BalanceAfterFixed.IsZero())
	assert.InDelta(t, result.Schedule.Totals.TotalPaid, result.CostOverFixed.InexactFloat64(), 0.01)
}

func TestMetricsCalculator_CalculateComparison(t *testing.T) {
	mc := NewMetricsCalculator()
	base := ComparisonResult{
		DealName:       "Base",
		MonthlyPayment: decimal.NewFromInt(1000),
		TotalCost:      decimal.NewFromInt(100000),
		CostOverFixed:  decimal.NewFromInt(25000),
		Months:         300,
	}
	alt := ComparisonResult{
		DealName:       "Alt",
		MonthlyPayment: decimal.NewFromInt(950),
		TotalCost:      decimal.NewFromInt(90000),
		CostOverFixed:  decimal.NewFromInt(26000),
		Months:         280,
	}

	got := mc.CalculateComparison(alt, base)

	assert.Equal(t, "-50", got.PaymentDiffFromBase.String())
	assert.Equal(t, "-10000", got.CostDiffFromBase.String())
	assert.Equal(t, "-10.00", got.CostPctFromBase.StringFixed(2))
	assert.Equal(t, "1000", got.FixedCostDiffFromBase.String())
	assert.Equal(t, -20, got.MonthsDiff)
}

func TestMetricsCalculator_CalculateComparison_ZeroBaseCost(t *testing.T) {
	got := NewMetricsCalculator().CalculateComparison(
		ComparisonResult{TotalCost: decimal.NewFromInt(10)},
		ComparisonResult{},
	)
	assert.True(t, got.CostPctFromBase.IsZero())
}

func TestGenerateRecommendations(t *testing.T) {
	compSet := &ComparisonSet{
		BaseDealName: "Base",
		BaseResult: &ComparisonResult{
			DealName:       "Base",
			MonthlyPayment: decimal.NewFromInt(1000),
			TotalCost:      decimal.NewFromInt(100000),
			CostOverFixed:  decimal.NewFromInt(25000),
		},
		AlternativeResults: []ComparisonResult{
			{
				DealName:       "Cheap Overall",
				MonthlyPayment: decimal.NewFromInt(1050),
				TotalCost:      decimal.NewFromInt(90000),
				CostOverFixed:  decimal.NewFromInt(26000),
			},
			{
				DealName:       "Cheap Fix",
				MonthlyPayment: decimal.NewFromInt(900),
				TotalCost:      decimal.NewFromInt(95000),
				CostOverFixed:  decimal.NewFromInt(24000),
				Months:         360,
			},
		},
	}

	recs := GenerateRecommendations(compSet)

	require.Len(t, recs, 3)
	assert.Contains(t, recs[0], "Lowest Total Cost: Cheap Overall saves £10000")
	assert.Contains(t, recs[1], "Cheapest Fixed Period: Cheap Fix costs £1000 less")
	assert.Contains(t, recs[2], "Lowest Monthly Payment: Cheap Fix is £100.00 a month cheaper (360 months to repay)")
}

func TestGenerateRecommendations_EmptyAlternatives(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{DealName: "Base", TotalCost: decimal.NewFromInt(1)},
	}
	assert.Empty(t, GenerateRecommendations(compSet))
	assert.Empty(t, GenerateRecommendations(&ComparisonSet{}))
}

func TestGenerateRecommendations_NoBetterThanBase(t *testing.T) {
	compSet := &ComparisonSet{
		BaseResult: &ComparisonResult{
			DealName:       "Base",
			MonthlyPayment: decimal.NewFromInt(900),
			TotalCost:      decimal.NewFromInt(80000),
			CostOverFixed:  decimal.NewFromInt(20000),
		},
		AlternativeResults: []ComparisonResult{
			{
				DealName:       "Worse",
				MonthlyPayment: decimal.NewFromInt(1000),
				TotalCost:      decimal.NewFromInt(90000),
				CostOverFixed:  decimal.NewFromInt(22000),
			},
		},
	}
	assert.Empty(t, GenerateRecommendations(compSet))
}

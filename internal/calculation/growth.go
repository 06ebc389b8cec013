package calculation

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// MaxProjectionPeriods bounds a projection (500 years of monthly periods).
const MaxProjectionPeriods = 6000

// Project grows plan.OpeningBalance period by period: the contribution is
// escalated at each year boundary, added, and then the period's return is
// applied. A snapshot is taken at the end of every full year.
func Project(plan domain.GrowthPlan) (*domain.GrowthProjectionResult, error) {
	const op = "project"

	if plan.Periods > MaxProjectionPeriods {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"%d periods exceeds the projection limit of %d", plan.Periods, MaxProjectionPeriods)
	}

	inflation := numeric.Sanitize(plan.InflationRatePerPeriod)
	if inflation <= -1 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"inflation rate per period must be above -100%%, got %.4f", inflation)
	}

	periodsPerYear := plan.PeriodsPerYear
	if periodsPerYear <= 0 {
		periodsPerYear = numeric.MonthsPerYear
	}

	opening := numeric.NonNegative(plan.OpeningBalance)
	contribution := numeric.NonNegative(plan.PeriodicContribution)
	escalation := floorAtMinusOne(numeric.Sanitize(plan.ContributionEscalationRate))
	returnRate := floorAtMinusOne(numeric.Sanitize(plan.PeriodicReturnRate))

	result := &domain.GrowthProjectionResult{
		FinalBalance:     opening,
		RealFinalBalance: opening,
		Snapshots:        []domain.GrowthSnapshot{},
	}
	if plan.Periods <= 0 {
		return result, nil
	}
	result.Snapshots = make([]domain.GrowthSnapshot, 0, plan.Periods/periodsPerYear)

	balance := opening
	deflator := 1.0
	var contributed float64

	for period := 1; period <= plan.Periods; period++ {
		if period > 1 && (period-1)%periodsPerYear == 0 {
			contribution *= 1 + escalation
		}
		balance += contribution
		contributed += contribution
		balance *= 1 + returnRate
		deflator *= 1 + inflation

		if period%periodsPerYear == 0 {
			result.Snapshots = append(result.Snapshots, domain.GrowthSnapshot{
				Period:              period,
				Year:                period / periodsPerYear,
				Balance:             balance,
				RealBalance:         balance / deflator,
				ContributionsToDate: contributed,
			})
		}
	}

	result.FinalBalance = balance
	result.RealFinalBalance = balance / deflator
	result.TotalContributions = contributed
	result.TotalGrowth = balance - opening - contributed
	return result, nil
}

func floorAtMinusOne(rate float64) float64 {
	if rate < -1 {
		return -1
	}
	return rate
}

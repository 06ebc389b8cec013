package calculation

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
)

// CalculationEngine fronts the three numeric engines with logging. It holds no
// calculation state, so one engine can serve any number of goroutines once
// its logger is set.
type CalculationEngine struct {
	Logger Logger
	Debug  bool // Log every allocation, schedule and projection summary
}

// NewCalculationEngine creates an engine that logs nowhere.
func NewCalculationEngine() *CalculationEngine {
	return &CalculationEngine{Logger: NopLogger{}}
}

// SetLogger replaces the engine logger; nil restores NopLogger.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		l = NopLogger{}
	}
	ce.Logger = l
}

func (ce *CalculationEngine) logger() Logger {
	if ce == nil || ce.Logger == nil {
		return NopLogger{}
	}
	return ce.Logger
}

// AllocateBands runs the band allocator.
func (ce *CalculationEngine) AllocateBands(amount float64, bands []domain.Band) (domain.BandAllocationResult, error) {
	result, err := AllocateBands(amount, bands)
	if err != nil {
		ce.logger().Warnf("band allocation of %.2f rejected: %v", amount, err)
		return result, err
	}
	if ce != nil && ce.Debug {
		ce.logger().Debugf("allocated %.2f across %d bands: due=%.2f marginal=%.4f effective=%.4f",
			result.Amount, len(result.Lines), result.TotalDue, result.MarginalRate, result.EffectiveRate)
	}
	return result, nil
}

// GenerateSchedule runs the amortization engine.
func (ce *CalculationEngine) GenerateSchedule(terms domain.LoanTerms) (*domain.Schedule, error) {
	schedule, err := GenerateSchedule(terms)
	if err != nil {
		ce.logger().Warnf("schedule for %.2f at %.4f%% over %d periods rejected: %v",
			terms.Principal, terms.AnnualRatePercent, terms.TermPeriods, err)
		return nil, err
	}
	if ce != nil && ce.Debug {
		ce.logger().Debugf("schedule: %d periods, payment=%.2f interest=%.2f saved=%d",
			schedule.Totals.Periods, schedule.Totals.ScheduledPayment, schedule.Totals.TotalInterest, schedule.Totals.PeriodsSaved)
	}
	return schedule, nil
}

// Project runs the growth projector.
func (ce *CalculationEngine) Project(plan domain.GrowthPlan) (*domain.GrowthProjectionResult, error) {
	result, err := Project(plan)
	if err != nil {
		ce.logger().Warnf("projection over %d periods rejected: %v", plan.Periods, err)
		return nil, err
	}
	if ce != nil && ce.Debug {
		ce.logger().Debugf("projection: %d periods, final=%.2f real=%.2f contributed=%.2f",
			plan.Periods, result.FinalBalance, result.RealFinalBalance, result.TotalContributions)
	}
	return result, nil
}

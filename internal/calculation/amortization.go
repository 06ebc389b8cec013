package calculation

import (
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// DefaultMaxPeriods caps every schedule unless LoanTerms.MaxPeriods says
// otherwise. A requested term longer than the cap raises the cap to the term.
const DefaultMaxPeriods = 1000

// MaxSchedulePeriods is the absolute ceiling on a schedule (100 years of
// monthly periods). Neither the term nor MaxPeriods can raise it.
const MaxSchedulePeriods = 1200

// LevelPayment returns the fixed periodic payment that repays principal over
// periods at periodicRate. A zero rate falls back to straight-line repayment.
func LevelPayment(principal, periodicRate float64, periods int) float64 {
	if periods <= 0 {
		return 0
	}
	n := float64(periods)
	if periodicRate == 0 {
		return principal / n
	}
	return principal * periodicRate / (1 - math.Pow(1+periodicRate, -n))
}

// GenerateSchedule builds the period-by-period repayment schedule for terms.
// The returned schedule always ends on a zero balance; anything else is
// reported as a *domain.CalcError and no schedule is returned.
func GenerateSchedule(terms domain.LoanTerms) (*domain.Schedule, error) {
	const op = "generate_schedule"

	principal := numeric.Sanitize(terms.Principal)
	if principal <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "principal must be positive, got %.2f", principal)
	}
	if terms.TermPeriods <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "term must be at least one period, got %d", terms.TermPeriods)
	}
	if terms.TermPeriods > MaxSchedulePeriods {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"term of %d periods exceeds the schedule limit of %d", terms.TermPeriods, MaxSchedulePeriods)
	}
	if terms.MaxPeriods > MaxSchedulePeriods {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"period cap of %d exceeds the schedule limit of %d", terms.MaxPeriods, MaxSchedulePeriods)
	}
	annualRate := numeric.Sanitize(terms.AnnualRatePercent)
	if annualRate < 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "annual rate cannot be negative, got %.4f%%", annualRate)
	}

	periodsPerYear := terms.PeriodsPerYear
	if periodsPerYear <= 0 {
		periodsPerYear = numeric.MonthsPerYear
	}
	rate := numeric.PeriodRate(annualRate, periodsPerYear)
	extra := numeric.NonNegative(terms.ExtraPaymentPerPeriod)

	payment := numeric.NonNegative(terms.ScheduledPayment)
	levelMode := payment == 0
	if levelMode {
		payment = LevelPayment(principal, rate, terms.TermPeriods)
	}

	maxPeriods := DefaultMaxPeriods
	if terms.MaxPeriods > 0 {
		maxPeriods = terms.MaxPeriods
	}
	maxPeriods = min(max(maxPeriods, terms.TermPeriods), MaxSchedulePeriods)

	entries := make([]domain.ScheduleEntry, 0, min(terms.TermPeriods, maxPeriods))

	balance := principal
	var cumulativeInterest, totalPaid, totalPrincipal float64

	for period := 1; balance > 0; period++ {
		if period > maxPeriods {
			return nil, domain.NewCalcError(domain.KindPayoffHorizonExceeded, op,
				"balance of %.2f remains after %d periods", balance, maxPeriods)
		}

		interest := balance * rate
		outlay := payment + extra
		if outlay <= interest {
			return nil, domain.NewCalcError(domain.KindNonAmortizingPayment, op,
				"payment of %.2f does not cover interest of %.2f in period %d", outlay, interest, period)
		}

		// A residue under a penny is folded into this period only when it is
		// also under half of what this period repays, so sub-penny payments
		// keep one entry per period.
		principalPortion := outlay - interest
		residue := balance - principalPortion
		finalPeriod := levelMode && period == terms.TermPeriods
		if finalPeriod || residue <= 0 || (residue < numeric.MoneyEpsilon && residue < principalPortion/2) {
			principalPortion = balance
			balance = 0
		} else {
			balance -= principalPortion
		}

		cumulativeInterest += interest
		paid := interest + principalPortion
		totalPaid += paid
		totalPrincipal += principalPortion

		entries = append(entries, domain.ScheduleEntry{
			PeriodIndex:        period,
			PaymentAmount:      paid,
			InterestPortion:    interest,
			PrincipalPortion:   principalPortion,
			RemainingBalance:   balance,
			CumulativeInterest: cumulativeInterest,
		})
	}

	totals := domain.ScheduleTotals{
		Periods:          len(entries),
		ScheduledPayment: payment,
		TotalPaid:        totalPaid,
		TotalInterest:    cumulativeInterest,
		TotalPrincipal:   totalPrincipal,
	}
	if levelMode && len(entries) < terms.TermPeriods {
		totals.PeriodsSaved = terms.TermPeriods - len(entries)
	}

	return &domain.Schedule{Terms: terms, Entries: entries, Totals: totals}, nil
}

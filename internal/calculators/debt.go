package calculators

import (
	"errors"
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// DebtPayoffInput describes a revolving debt paid down at a fixed amount.
type DebtPayoffInput struct {
	Balance        float64 `json:"balance"`
	APR            float64 `json:"apr"`
	MonthlyPayment float64 `json:"monthlyPayment"`
}

// DebtPayoffResult is how long the debt takes to clear.
type DebtPayoffResult struct {
	Input         DebtPayoffInput  `json:"input"`
	Months        int              `json:"months"`
	Years         int              `json:"years"`
	ExtraMonths   int              `json:"extraMonths"`
	TotalInterest float64          `json:"totalInterest"`
	TotalPaid     float64          `json:"totalPaid"`
	Schedule      *domain.Schedule `json:"schedule"`
}

// DebtPayoffError is returned when the payment never clears the debt. It
// carries the smallest sensible payment so callers can suggest one.
type DebtPayoffError struct {
	MinimumPaymentHint float64
	Cause              error
}

func (e *DebtPayoffError) Error() string {
	return e.Cause.Error()
}

func (e *DebtPayoffError) Unwrap() error {
	return e.Cause
}

// MinimumPaymentHint returns the first month's interest plus 1% of the
// balance, rounded up to the penny.
func MinimumPaymentHint(balance, apr float64) float64 {
	balance = numeric.NonNegative(balance)
	interest := balance * numeric.MonthlyRate(numeric.NonNegative(apr))
	return math.Ceil((interest+balance*0.01)*100) / 100
}

// DebtPayoff runs the fixed payment through the amortization engine.
func (c *Calculator) DebtPayoff(in DebtPayoffInput) (*DebtPayoffResult, error) {
	const op = "debt_payoff"

	payment := numeric.NonNegative(in.MonthlyPayment)
	if payment <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "monthly payment must be positive")
	}

	schedule, err := c.Engine.GenerateSchedule(domain.LoanTerms{
		Principal:         in.Balance,
		AnnualRatePercent: in.APR,
		TermPeriods:       1,
		ScheduledPayment:  payment,
	})
	if err != nil {
		if errors.Is(err, domain.ErrNonAmortizingPayment) || errors.Is(err, domain.ErrPayoffHorizonExceeded) {
			return nil, &DebtPayoffError{MinimumPaymentHint: MinimumPaymentHint(in.Balance, in.APR), Cause: err}
		}
		return nil, err
	}

	months := schedule.Totals.Periods
	return &DebtPayoffResult{
		Input:         in,
		Months:        months,
		Years:         months / numeric.MonthsPerYear,
		ExtraMonths:   months % numeric.MonthsPerYear,
		TotalInterest: schedule.Totals.TotalInterest,
		TotalPaid:     schedule.Totals.TotalPaid,
		Schedule:      schedule,
	}, nil
}

package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// MortgageInput describes a repayment mortgage.
type MortgageInput struct {
	PropertyPrice      float64 `json:"propertyPrice"`
	Deposit            float64 `json:"deposit"`
	AnnualRatePercent  float64 `json:"annualRatePercent"`
	TermYears          int     `json:"termYears"`
	MonthlyOverpayment float64 `json:"monthlyOverpayment"`
}

// MortgageResult is the repayment schedule and its headline figures. Baseline
// is only set when there is an overpayment to compare against.
type MortgageResult struct {
	Input          MortgageInput        `json:"input"`
	LoanAmount     float64              `json:"loanAmount"`
	LoanToValue    float64              `json:"loanToValue"`
	MonthlyPayment float64              `json:"monthlyPayment"`
	TotalPaid      float64              `json:"totalPaid"`
	TotalInterest  float64              `json:"totalInterest"`
	Months         int                  `json:"months"`
	Schedule       *domain.Schedule     `json:"schedule"`
	Yearly         []domain.YearSummary `json:"yearly"`
	Baseline       *domain.Schedule     `json:"baseline,omitempty"`
	InterestSaved  float64              `json:"interestSaved"`
	MonthsSaved    int                  `json:"monthsSaved"`
}

// Mortgage builds the schedule for price less deposit.
func (c *Calculator) Mortgage(in MortgageInput) (*MortgageResult, error) {
	const op = "mortgage"

	price := numeric.NonNegative(in.PropertyPrice)
	deposit := numeric.NonNegative(in.Deposit)
	if deposit >= price {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"deposit of %.2f leaves nothing to borrow on a price of %.2f", deposit, price)
	}
	if err := checkTermYears(op, "term", in.TermYears); err != nil {
		return nil, err
	}

	loan := price - deposit
	terms := domain.LoanTerms{
		Principal:             loan,
		AnnualRatePercent:     in.AnnualRatePercent,
		TermPeriods:           in.TermYears * numeric.MonthsPerYear,
		ExtraPaymentPerPeriod: in.MonthlyOverpayment,
		PeriodsPerYear:        numeric.MonthsPerYear,
	}
	schedule, err := c.Engine.GenerateSchedule(terms)
	if err != nil {
		return nil, err
	}

	result := &MortgageResult{
		Input:          in,
		LoanAmount:     loan,
		LoanToValue:    percentOf(loan, price),
		MonthlyPayment: schedule.Totals.ScheduledPayment,
		TotalPaid:      schedule.Totals.TotalPaid,
		TotalInterest:  schedule.Totals.TotalInterest,
		Months:         schedule.Totals.Periods,
		Schedule:       schedule,
		Yearly:         schedule.Yearly(numeric.MonthsPerYear),
	}

	if numeric.NonNegative(in.MonthlyOverpayment) > 0 {
		terms.ExtraPaymentPerPeriod = 0
		baseline, err := c.Engine.GenerateSchedule(terms)
		if err != nil {
			return nil, err
		}
		result.Baseline = baseline
		result.InterestSaved = baseline.Totals.TotalInterest - schedule.Totals.TotalInterest
		result.MonthsSaved = baseline.Totals.Periods - schedule.Totals.Periods
	}

	return result, nil
}

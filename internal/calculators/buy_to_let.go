package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

const weeksPerYear = 52

// BuyToLetInput describes a rental purchase.
type BuyToLetInput struct {
	PropertyPrice     float64 `json:"propertyPrice"`
	DepositPercent    float64 `json:"depositPercent"`
	AnnualRatePercent float64 `json:"annualRatePercent"`
	TermYears         int     `json:"termYears"`
	InterestOnly      bool    `json:"interestOnly"`
	MonthlyRent       float64 `json:"monthlyRent"`
	AnnualCosts       float64 `json:"annualCosts"`
	VoidWeeks         float64 `json:"voidWeeks"`
}

// BuyToLetResult holds yields and cash flow. Rates are percentages.
type BuyToLetResult struct {
	Input            BuyToLetInput `json:"input"`
	Deposit          float64       `json:"deposit"`
	LoanAmount       float64       `json:"loanAmount"`
	StampDuty        float64       `json:"stampDuty"`
	CashInvested     float64       `json:"cashInvested"`
	MortgagePayment  float64       `json:"mortgagePayment"`
	AnnualRent       float64       `json:"annualRent"`
	EffectiveRent    float64       `json:"effectiveRent"`
	GrossYield       float64       `json:"grossYield"`
	NetYield         float64       `json:"netYield"`
	AnnualCashFlow   float64       `json:"annualCashFlow"`
	MonthlyCashFlow  float64       `json:"monthlyCashFlow"`
	CashOnCashReturn float64       `json:"cashOnCashReturn"`
	RentalCoverage   float64       `json:"rentalCoverage"`
}

// BuyToLet prices the mortgage once and then works in plain cash flow. Stamp
// duty is charged at the additional-property rate when a rule set is loaded.
func (c *Calculator) BuyToLet(in BuyToLetInput) (*BuyToLetResult, error) {
	const op = "buy_to_let"

	price := numeric.NonNegative(in.PropertyPrice)
	if price <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "property price must be positive")
	}

	deposit := price * numeric.Clamp(in.DepositPercent, 0, 100) / 100
	loan := price - deposit
	rate := numeric.NonNegative(in.AnnualRatePercent)

	var payment, monthlyInterest float64
	if loan > 0 {
		monthlyInterest = loan * numeric.MonthlyRate(rate)
		if in.InterestOnly {
			payment = monthlyInterest
		} else {
			if err := checkTermYears(op, "repayment mortgage term", in.TermYears); err != nil {
				return nil, err
			}
			schedule, err := c.Engine.GenerateSchedule(domain.LoanTerms{
				Principal:         loan,
				AnnualRatePercent: rate,
				TermPeriods:       in.TermYears * numeric.MonthsPerYear,
			})
			if err != nil {
				return nil, err
			}
			payment = schedule.Totals.ScheduledPayment
		}
	}

	var sdlt float64
	if c.Rules != nil {
		duty, err := c.StampDuty(StampDutyInput{Price: price, Buyer: taxbands.BuyerAdditional})
		if err != nil {
			return nil, err
		}
		sdlt = duty.TaxDue
	}

	rent := numeric.NonNegative(in.MonthlyRent)
	annualRent := rent * numeric.MonthsPerYear
	occupied := (weeksPerYear - numeric.Clamp(in.VoidWeeks, 0, weeksPerYear)) / weeksPerYear
	effectiveRent := annualRent * occupied
	costs := numeric.NonNegative(in.AnnualCosts)
	annualCashFlow := effectiveRent - costs - payment*numeric.MonthsPerYear
	cashInvested := deposit + sdlt

	return &BuyToLetResult{
		Input:            in,
		Deposit:          deposit,
		LoanAmount:       loan,
		StampDuty:        sdlt,
		CashInvested:     cashInvested,
		MortgagePayment:  payment,
		AnnualRent:       annualRent,
		EffectiveRent:    effectiveRent,
		GrossYield:       percentOf(annualRent, price),
		NetYield:         percentOf(effectiveRent-costs, price),
		AnnualCashFlow:   annualCashFlow,
		MonthlyCashFlow:  annualCashFlow / numeric.MonthsPerYear,
		CashOnCashReturn: percentOf(annualCashFlow, cashInvested),
		RentalCoverage:   percentOf(rent, monthlyInterest),
	}, nil
}

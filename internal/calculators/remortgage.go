package calculators

import (
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// DefaultFixedPeriodYears is used when a remortgage input leaves it unset.
const DefaultFixedPeriodYears = 2

// RemortgageInput compares staying on the current rate with switching.
type RemortgageInput struct {
	Balance            float64 `json:"balance"`
	CurrentRatePercent float64 `json:"currentRatePercent"`
	NewRatePercent     float64 `json:"newRatePercent"`
	RemainingYears     int     `json:"remainingYears"`
	NewTermYears       int     `json:"newTermYears"`
	Fees               float64 `json:"fees"`
	FixedPeriodYears   int     `json:"fixedPeriodYears"`
}

// RemortgageResult compares the two deals. BreakEvenMonths is only meaningful
// when BreaksEven is true.
type RemortgageResult struct {
	Input                RemortgageInput `json:"input"`
	CurrentPayment       float64         `json:"currentPayment"`
	NewPayment           float64         `json:"newPayment"`
	MonthlySaving        float64         `json:"monthlySaving"`
	BreaksEven           bool            `json:"breaksEven"`
	BreakEvenMonths      int             `json:"breakEvenMonths"`
	FixedPeriodMonths    int             `json:"fixedPeriodMonths"`
	CurrentCostOverFixed float64         `json:"currentCostOverFixed"`
	NewCostOverFixed     float64         `json:"newCostOverFixed"`
	SavingOverFixed      float64         `json:"savingOverFixed"`
	CurrentTotalInterest float64         `json:"currentTotalInterest"`
	NewTotalInterest     float64         `json:"newTotalInterest"`
}

// Remortgage works out whether switching pays for its fees, and how quickly.
func (c *Calculator) Remortgage(in RemortgageInput) (*RemortgageResult, error) {
	const op = "remortgage"

	if err := checkTermYears(op, "remaining term", in.RemainingYears); err != nil {
		return nil, err
	}
	newTerm := in.NewTermYears
	if newTerm <= 0 {
		newTerm = in.RemainingYears
	}
	if err := checkTermYears(op, "new term", newTerm); err != nil {
		return nil, err
	}
	fixedYears := in.FixedPeriodYears
	if fixedYears <= 0 {
		fixedYears = DefaultFixedPeriodYears
	}
	fees := numeric.NonNegative(in.Fees)

	current, err := c.Engine.GenerateSchedule(domain.LoanTerms{
		Principal:         in.Balance,
		AnnualRatePercent: in.CurrentRatePercent,
		TermPeriods:       in.RemainingYears * numeric.MonthsPerYear,
	})
	if err != nil {
		return nil, err
	}
	proposed, err := c.Engine.GenerateSchedule(domain.LoanTerms{
		Principal:         in.Balance,
		AnnualRatePercent: in.NewRatePercent,
		TermPeriods:       newTerm * numeric.MonthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	fixedMonths := min(fixedYears, MaxTermYears) * numeric.MonthsPerYear
	currentCost := paymentsOver(current, fixedMonths)
	newCost := paymentsOver(proposed, fixedMonths) + fees
	saving := current.Totals.ScheduledPayment - proposed.Totals.ScheduledPayment

	result := &RemortgageResult{
		Input:                in,
		CurrentPayment:       current.Totals.ScheduledPayment,
		NewPayment:           proposed.Totals.ScheduledPayment,
		MonthlySaving:        saving,
		FixedPeriodMonths:    fixedMonths,
		CurrentCostOverFixed: currentCost,
		NewCostOverFixed:     newCost,
		SavingOverFixed:      currentCost - newCost,
		CurrentTotalInterest: current.Totals.TotalInterest,
		NewTotalInterest:     proposed.Totals.TotalInterest,
	}
	if saving > 0 {
		result.BreaksEven = true
		result.BreakEvenMonths = int(math.Ceil(fees / saving))
	}
	return result, nil
}

// paymentsOver sums the first months payments of a schedule.
func paymentsOver(schedule *domain.Schedule, months int) float64 {
	var total float64
	for i, entry := range schedule.Entries {
		if i >= months {
			break
		}
		total += entry.PaymentAmount
	}
	return total
}

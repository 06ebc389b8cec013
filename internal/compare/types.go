package compare

import (
	"fmt"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/shopspring/decimal"
)

// LoanDeal is one mortgage or loan offer to compare
type LoanDeal struct {
	Name               string  `yaml:"name" json:"name"`
	Description        string  `yaml:"description,omitempty" json:"description,omitempty"`
	Principal          float64 `yaml:"principal" json:"principal"`
	AnnualRatePercent  float64 `yaml:"rate" json:"annualRatePercent"`
	TermYears          int     `yaml:"term_years" json:"termYears"`
	Fees               float64 `yaml:"fees,omitempty" json:"fees"`
	FixedPeriodYears   int     `yaml:"fixed_period_years,omitempty" json:"fixedPeriodYears"`
	MonthlyOverpayment float64 `yaml:"monthly_overpayment,omitempty" json:"monthlyOverpayment"`
}

// Terms converts the deal to monthly loan terms.
func (d LoanDeal) Terms() domain.LoanTerms {
	return domain.LoanTerms{
		Principal:             d.Principal,
		AnnualRatePercent:     d.AnnualRatePercent,
		TermPeriods:           d.TermYears * numeric.MonthsPerYear,
		ExtraPaymentPerPeriod: d.MonthlyOverpayment,
		PeriodsPerYear:        numeric.MonthsPerYear,
	}
}

// ComparisonResult represents a single deal with calculated metrics
type ComparisonResult struct {
	DealName    string           `json:"dealName"`
	Description string           `json:"description"`
	Schedule    *domain.Schedule `json:"-"`

	// Key Metrics
	MonthlyPayment    decimal.Decimal `json:"monthlyPayment"`
	TotalInterest     decimal.Decimal `json:"totalInterest"`
	Fees              decimal.Decimal `json:"fees"`
	TotalCost         decimal.Decimal `json:"totalCost"`         // Interest plus fees
	CostOverFixed     decimal.Decimal `json:"costOverFixed"`     // Payments during the fixed period plus fees
	BalanceAfterFixed decimal.Decimal `json:"balanceAfterFixed"` // Outstanding when the fixed period ends
	Months            int             `json:"months"`
	FixedPeriodMonths int             `json:"fixedPeriodMonths"`

	// Comparison to Base
	PaymentDiffFromBase   decimal.Decimal `json:"paymentDiffFromBase"`
	CostDiffFromBase      decimal.Decimal `json:"costDiffFromBase"`
	CostPctFromBase       decimal.Decimal `json:"costPctFromBase"`
	FixedCostDiffFromBase decimal.Decimal `json:"fixedCostDiffFromBase"`
	MonthsDiff            int             `json:"monthsDiff"`
}

// ComparisonSet represents a collection of deal comparisons
type ComparisonSet struct {
	BaseDealName       string             `json:"baseDealName"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Recommendations    []string           `json:"recommendations"`
	SourcePath         string             `json:"sourcePath"`
}

// All returns the base followed by the alternatives.
func (cs *ComparisonSet) All() []ComparisonResult {
	all := make([]ComparisonResult, 0, len(cs.AlternativeResults)+1)
	if cs.BaseResult != nil {
		all = append(all, *cs.BaseResult)
	}
	return append(all, cs.AlternativeResults...)
}

// MetricsCalculator extracts key metrics from schedules
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes all comparison metrics for a deal's schedule
func (mc *MetricsCalculator) CalculateMetrics(deal LoanDeal, schedule *domain.Schedule) ComparisonResult {
	fixedMonths := deal.FixedPeriodYears * numeric.MonthsPerYear
	if fixedMonths <= 0 || fixedMonths > schedule.Totals.Periods {
		fixedMonths = schedule.Totals.Periods
	}

	fees := numeric.NonNegative(deal.Fees)
	var paidInFixed, balanceAfter float64
	for i, entry := range schedule.Entries {
		if i >= fixedMonths {
			break
		}
		paidInFixed += entry.PaymentAmount
		balanceAfter = entry.RemainingBalance
	}

	return ComparisonResult{
		DealName:          deal.Name,
		Description:       deal.Description,
		Schedule:          schedule,
		MonthlyPayment:    money(schedule.Totals.ScheduledPayment),
		TotalInterest:     money(schedule.Totals.TotalInterest),
		Fees:              money(fees),
		TotalCost:         money(schedule.Totals.TotalInterest + fees),
		CostOverFixed:     money(paidInFixed + fees),
		BalanceAfterFixed: money(balanceAfter),
		Months:            schedule.Totals.Periods,
		FixedPeriodMonths: fixedMonths,
	}
}

// CalculateComparison computes comparison metrics between a deal and a base
func (mc *MetricsCalculator) CalculateComparison(deal, base ComparisonResult) ComparisonResult {
	deal.PaymentDiffFromBase = deal.MonthlyPayment.Sub(base.MonthlyPayment)
	deal.CostDiffFromBase = deal.TotalCost.Sub(base.TotalCost)

	if !base.TotalCost.IsZero() {
		deal.CostPctFromBase = deal.CostDiffFromBase.
			Div(base.TotalCost).
			Mul(decimal.NewFromInt(100))
	}

	deal.FixedCostDiffFromBase = deal.CostOverFixed.Sub(base.CostOverFixed)
	deal.MonthsDiff = deal.Months - base.Months

	return deal
}

// GenerateRecommendations creates recommendations based on comparison results
func GenerateRecommendations(compSet *ComparisonSet) []string {
	recommendations := []string{}

	if len(compSet.AlternativeResults) == 0 || compSet.BaseResult == nil {
		return recommendations
	}
	base := compSet.BaseResult

	cheapest := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].TotalCost.LessThan(cheapest.TotalCost) {
			cheapest = &compSet.AlternativeResults[i]
		}
	}
	if cheapest != base {
		saving := base.TotalCost.Sub(cheapest.TotalCost)
		recommendations = append(recommendations,
			"Lowest Total Cost: "+cheapest.DealName+" saves £"+saving.StringFixed(0)+
				" in interest and fees over the full term")
	}

	cheapestFixed := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].CostOverFixed.LessThan(cheapestFixed.CostOverFixed) {
			cheapestFixed = &compSet.AlternativeResults[i]
		}
	}
	if cheapestFixed != base {
		saving := base.CostOverFixed.Sub(cheapestFixed.CostOverFixed)
		recommendations = append(recommendations,
			"Cheapest Fixed Period: "+cheapestFixed.DealName+" costs £"+saving.StringFixed(0)+
				" less while the rate is fixed")
	}

	lowestPayment := base
	for i := range compSet.AlternativeResults {
		if compSet.AlternativeResults[i].MonthlyPayment.LessThan(lowestPayment.MonthlyPayment) {
			lowestPayment = &compSet.AlternativeResults[i]
		}
	}
	if lowestPayment != base {
		diff := base.MonthlyPayment.Sub(lowestPayment.MonthlyPayment)
		recommendations = append(recommendations,
			"Lowest Monthly Payment: "+lowestPayment.DealName+" is £"+diff.StringFixed(2)+
				fmt.Sprintf(" a month cheaper (%d months to repay)", lowestPayment.Months))
	}

	return recommendations
}

func money(v float64) decimal.Decimal {
	return numeric.ToMoney(v)
}

package calculators

import (
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

const (
	// TaxFreeLumpSumFraction is the share of a pot that can be taken tax free.
	TaxFreeLumpSumFraction = 0.25
	// LumpSumAllowance caps the tax-free lump sum across all pensions.
	LumpSumAllowance = 268275.0
	// DefaultWithdrawalRatePercent is the classic 4% rule.
	DefaultWithdrawalRatePercent = 4.0
)

// PensionInput describes a defined contribution pension. Rates are annual
// percentages; contributions are monthly.
type PensionInput struct {
	CurrentAge                  int     `json:"currentAge"`
	RetirementAge               int     `json:"retirementAge"`
	CurrentPot                  float64 `json:"currentPot"`
	MonthlyContribution         float64 `json:"monthlyContribution"`
	EmployerContribution        float64 `json:"employerContribution"`
	TaxReliefRate               float64 `json:"taxReliefRate"`
	AnnualReturnPercent         float64 `json:"annualReturnPercent"`
	AnnualInflationPercent      float64 `json:"annualInflationPercent"`
	ContributionIncreasePercent float64 `json:"contributionIncreasePercent"`
	WithdrawalRatePercent       float64 `json:"withdrawalRatePercent"`
}

// PensionResult is the pot at retirement and the income it supports.
type PensionResult struct {
	Input                PensionInput                   `json:"input"`
	Years                int                            `json:"years"`
	GrossMonthlyPersonal float64                        `json:"grossMonthlyPersonal"`
	MonthlyTotal         float64                        `json:"monthlyTotal"`
	Projection           *domain.GrowthProjectionResult `json:"projection"`
	PotAtRetirement      float64                        `json:"potAtRetirement"`
	RealPotAtRetirement  float64                        `json:"realPotAtRetirement"`
	TaxReliefReceived    float64                        `json:"taxReliefReceived"`
	TaxFreeLumpSum       float64                        `json:"taxFreeLumpSum"`
	RemainingPot         float64                        `json:"remainingPot"`
	AnnualIncome         float64                        `json:"annualIncome"`
	MonthlyIncome        float64                        `json:"monthlyIncome"`
	RealAnnualIncome     float64                        `json:"realAnnualIncome"`
}

// Pension projects a pot to retirement. Personal contributions are grossed up
// for relief at source: a net 80 becomes 100 at a 20% relief rate.
func (c *Calculator) Pension(in PensionInput) (*PensionResult, error) {
	const op = "pension"

	years := in.RetirementAge - in.CurrentAge
	if years <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op,
			"retirement age %d must be after current age %d", in.RetirementAge, in.CurrentAge)
	}

	relief := numeric.Clamp(in.TaxReliefRate, 0, 99) / 100
	personal := numeric.NonNegative(in.MonthlyContribution)
	grossPersonal := personal / (1 - relief)
	monthly := grossPersonal + numeric.NonNegative(in.EmployerContribution)

	projection, err := c.Engine.Project(domain.GrowthPlan{
		OpeningBalance:             in.CurrentPot,
		PeriodicContribution:       monthly,
		ContributionEscalationRate: numeric.Percent(in.ContributionIncreasePercent),
		PeriodicReturnRate:         numeric.EffectivePeriodRate(in.AnnualReturnPercent, numeric.MonthsPerYear),
		InflationRatePerPeriod:     numeric.EffectivePeriodRate(in.AnnualInflationPercent, numeric.MonthsPerYear),
		Periods:                    years * numeric.MonthsPerYear,
		PeriodsPerYear:             numeric.MonthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	withdrawal := in.WithdrawalRatePercent
	if withdrawal <= 0 {
		withdrawal = DefaultWithdrawalRatePercent
	}

	pot := projection.FinalBalance
	lumpSum := math.Min(pot*TaxFreeLumpSumFraction, LumpSumAllowance)
	remaining := pot - lumpSum
	income := remaining * withdrawal / 100

	var reliefReceived, realIncome float64
	if monthly > 0 {
		reliefReceived = projection.TotalContributions * (grossPersonal - personal) / monthly
	}
	if pot > 0 {
		realIncome = income * projection.RealFinalBalance / pot
	}

	return &PensionResult{
		Input:                in,
		Years:                years,
		GrossMonthlyPersonal: grossPersonal,
		MonthlyTotal:         monthly,
		Projection:           projection,
		PotAtRetirement:      pot,
		RealPotAtRetirement:  projection.RealFinalBalance,
		TaxReliefReceived:    reliefReceived,
		TaxFreeLumpSum:       lumpSum,
		RemainingPot:         remaining,
		AnnualIncome:         income,
		MonthlyIncome:        income / numeric.MonthsPerYear,
		RealAnnualIncome:     realIncome,
	}, nil
}

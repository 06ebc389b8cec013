package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// SavingsInput describes a savings account. AnnualRatePercent is the AER.
type SavingsInput struct {
	Initial                float64 `json:"initial"`
	MonthlyDeposit         float64 `json:"monthlyDeposit"`
	AnnualRatePercent      float64 `json:"annualRatePercent"`
	Years                  int     `json:"years"`
	AnnualInflationPercent float64 `json:"annualInflationPercent"`
	DepositIncreasePercent float64 `json:"depositIncreasePercent"`
}

// SavingsResult is the projected balance.
type SavingsResult struct {
	Input            SavingsInput                   `json:"input"`
	Projection       *domain.GrowthProjectionResult `json:"projection"`
	FinalBalance     float64                        `json:"finalBalance"`
	RealFinalBalance float64                        `json:"realFinalBalance"`
	TotalDeposits    float64                        `json:"totalDeposits"`
	InterestEarned   float64                        `json:"interestEarned"`
}

// Savings projects monthly deposits into an account paying AnnualRatePercent AER.
func (c *Calculator) Savings(in SavingsInput) (*SavingsResult, error) {
	const op = "savings"

	if in.Years <= 0 {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "years must be at least one, got %d", in.Years)
	}

	projection, err := c.Engine.Project(domain.GrowthPlan{
		OpeningBalance:             in.Initial,
		PeriodicContribution:       in.MonthlyDeposit,
		ContributionEscalationRate: numeric.Percent(in.DepositIncreasePercent),
		PeriodicReturnRate:         numeric.EffectivePeriodRate(in.AnnualRatePercent, numeric.MonthsPerYear),
		InflationRatePerPeriod:     numeric.EffectivePeriodRate(in.AnnualInflationPercent, numeric.MonthsPerYear),
		Periods:                    in.Years * numeric.MonthsPerYear,
		PeriodsPerYear:             numeric.MonthsPerYear,
	})
	if err != nil {
		return nil, err
	}

	return &SavingsResult{
		Input:            in,
		Projection:       projection,
		FinalBalance:     projection.FinalBalance,
		RealFinalBalance: projection.RealFinalBalance,
		TotalDeposits:    numeric.NonNegative(in.Initial) + projection.TotalContributions,
		InterestEarned:   projection.TotalGrowth,
	}, nil
}

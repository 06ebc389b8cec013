package calculators

import (
	"math"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

// DividendInput pairs dividends with the non-dividend income they sit on top of.
type DividendInput struct {
	OtherIncome float64 `json:"otherIncome"`
	Dividends   float64 `json:"dividends"`
	Region      string  `json:"region"`
}

// DividendResult is the dividend tax bill.
type DividendResult struct {
	Input                    DividendInput               `json:"input"`
	PersonalAllowance        float64                     `json:"personalAllowance"`
	AllowanceUsedByDividends float64                     `json:"allowanceUsedByDividends"`
	DividendAllowanceUsed    float64                     `json:"dividendAllowanceUsed"`
	TaxableOtherIncome       float64                     `json:"taxableOtherIncome"`
	TaxableDividends         float64                     `json:"taxableDividends"`
	Allocation               domain.BandAllocationResult `json:"allocation"`
	TaxDue                   float64                     `json:"taxDue"`
	NetDividends             float64                     `json:"netDividends"`
	EffectiveRate            float64                     `json:"effectiveRate"`
	MarginalRate             float64                     `json:"marginalRate"`
}

// DividendTax taxes dividends as the top slice of income. Any personal
// allowance left over from other income covers dividends first; the dividend
// allowance is taxed at 0% but still uses up band space.
func (c *Calculator) DividendTax(in DividendInput) (*DividendResult, error) {
	const op = "dividend_tax"
	if err := c.requireRules(op); err != nil {
		return nil, err
	}

	rules, ok := c.Rules.IncomeTaxFor(in.Region)
	if !ok {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "no income tax rules for region %q", in.Region)
	}

	other := numeric.NonNegative(in.OtherIncome)
	dividends := numeric.NonNegative(in.Dividends)

	allowance := taxbands.ReducedAllowance(rules, other+dividends)
	taxableOther := numeric.NonNegative(other - allowance)
	unused := numeric.NonNegative(allowance - other)
	allowanceOnDividends := math.Min(unused, dividends)
	taxableDividends := dividends - allowanceOnDividends

	bands := taxbands.DividendBands(c.Rules.DividendTax, taxableOther, taxableDividends)
	allocation, err := c.Engine.AllocateBands(taxableOther+taxableDividends, bands)
	if err != nil {
		return nil, err
	}

	return &DividendResult{
		Input:                    in,
		PersonalAllowance:        allowance,
		AllowanceUsedByDividends: allowanceOnDividends,
		DividendAllowanceUsed:    taxbands.DividendAllowanceUsed(c.Rules.DividendTax, taxableDividends),
		TaxableOtherIncome:       taxableOther,
		TaxableDividends:         taxableDividends,
		Allocation:               allocation,
		TaxDue:                   allocation.TotalDue,
		NetDividends:             dividends - allocation.TotalDue,
		EffectiveRate:            percentOf(allocation.TotalDue, dividends),
		MarginalRate:             allocation.MarginalRate * 100,
	}, nil
}

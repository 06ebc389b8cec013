package calculators

import (
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/taxbands"
)

// IncomeTaxInput describes one employee's annual pay.
type IncomeTaxInput struct {
	GrossSalary             float64 `json:"grossSalary"`
	Region                  string  `json:"region"`
	PensionSacrificePercent float64 `json:"pensionSacrificePercent"`
	OtherIncome             float64 `json:"otherIncome"`
}

// IncomeTaxResult is the annual take-home breakdown.
type IncomeTaxResult struct {
	Input                IncomeTaxInput              `json:"input"`
	Region               string                      `json:"region"`
	PensionContribution  float64                     `json:"pensionContribution"`
	AdjustedNetIncome    float64                     `json:"adjustedNetIncome"`
	PersonalAllowance    float64                     `json:"personalAllowance"`
	TaxableIncome        float64                     `json:"taxableIncome"`
	IncomeTax            domain.BandAllocationResult `json:"incomeTax"`
	NationalInsurance    domain.BandAllocationResult `json:"nationalInsurance"`
	IncomeTaxDue         float64                     `json:"incomeTaxDue"`
	NationalInsuranceDue float64                     `json:"nationalInsuranceDue"`
	TotalDeductions      float64                     `json:"totalDeductions"`
	TakeHomeAnnual       float64                     `json:"takeHomeAnnual"`
	TakeHomeMonthly      float64                     `json:"takeHomeMonthly"`
	EffectiveRate        float64                     `json:"effectiveRate"`
	MarginalRate         float64                     `json:"marginalRate"`
}

// IncomeTax works out income tax and employee NI. Salary sacrifice reduces
// both; other income is taxed but does not attract NI.
func (c *Calculator) IncomeTax(in IncomeTaxInput) (*IncomeTaxResult, error) {
	const op = "income_tax"
	if err := c.requireRules(op); err != nil {
		return nil, err
	}

	region := in.Region
	if region == "" {
		region = domain.RegionEngland
	}
	rules, ok := c.Rules.IncomeTaxFor(region)
	if !ok {
		return nil, domain.NewCalcError(domain.KindInvalidInput, op, "no income tax rules for region %q", region)
	}
	if _, exact := c.Rules.IncomeTax[region]; !exact {
		region = domain.RegionEngland
	}

	gross := numeric.NonNegative(in.GrossSalary)
	sacrifice := gross * numeric.Clamp(in.PensionSacrificePercent, 0, 100) / 100
	salary := gross - sacrifice
	other := numeric.NonNegative(in.OtherIncome)
	adjusted := salary + other

	tax, err := c.Engine.AllocateBands(adjusted, taxbands.IncomeTaxBands(rules, adjusted))
	if err != nil {
		return nil, err
	}
	ni, err := c.Engine.AllocateBands(salary, taxbands.NationalInsuranceBands(c.Rules.NationalInsurance))
	if err != nil {
		return nil, err
	}

	allowance := taxbands.ReducedAllowance(rules, adjusted)
	niDue := c.Rules.NationalInsurance.Rounding.Apply(ni.TotalDue)
	deductions := tax.TotalDue + niDue
	takeHome := adjusted - deductions

	return &IncomeTaxResult{
		Input:                in,
		Region:               region,
		PensionContribution:  sacrifice,
		AdjustedNetIncome:    adjusted,
		PersonalAllowance:    allowance,
		TaxableIncome:        numeric.NonNegative(adjusted - allowance),
		IncomeTax:            tax,
		NationalInsurance:    ni,
		IncomeTaxDue:         tax.TotalDue,
		NationalInsuranceDue: niDue,
		TotalDeductions:      deductions,
		TakeHomeAnnual:       takeHome,
		TakeHomeMonthly:      takeHome / numeric.MonthsPerYear,
		EffectiveRate:        percentOf(deductions, gross+other),
		MarginalRate:         (tax.MarginalRate + ni.MarginalRate) * 100,
	}, nil
}

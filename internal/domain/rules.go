package domain

import (
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// RuleSet holds the band tables and thresholds the calculators need for one
// tax year. It is loaded from rules.yaml (or .hcl) and never modified.
type RuleSet struct {
	Metadata          RuleSetMetadata           `yaml:"metadata" json:"metadata"`
	IncomeTax         map[string]IncomeTaxRules `yaml:"income_tax" json:"incomeTax"`
	NationalInsurance NIRules                   `yaml:"national_insurance" json:"nationalInsurance"`
	DividendTax       DividendRules             `yaml:"dividend_tax" json:"dividendTax"`
	StampDuty         StampDutyRules            `yaml:"stamp_duty" json:"stampDuty"`
}

// RuleSetMetadata describes where a rule set came from
type RuleSetMetadata struct {
	TaxYear     string `yaml:"tax_year" json:"taxYear"`
	LastUpdated string `yaml:"last_updated" json:"lastUpdated"`
	Description string `yaml:"description" json:"description"`
}

// IncomeTaxRules is one region's income tax table. Bands are on the
// taxable-income scale, i.e. above the personal allowance.
type IncomeTaxRules struct {
	PersonalAllowance float64   `yaml:"personal_allowance" json:"personalAllowance"`
	Taper             TaperRule `yaml:"taper" json:"taper"`
	Bands             []Band    `yaml:"bands" json:"bands"`
}

// TaperRule withdraws an allowance once income passes Threshold, by Rate per
// unit of excess. The reduction is rounded with Rounding before it is applied.
type TaperRule struct {
	Threshold float64          `yaml:"threshold" json:"threshold"`
	Rate      float64          `yaml:"rate" json:"rate"`
	Rounding  numeric.Rounding `yaml:"rounding" json:"rounding"`
}

// NIRules is the annualised Class 1 employee National Insurance table.
type NIRules struct {
	Bands    []Band           `yaml:"bands" json:"bands"`
	Rounding numeric.Rounding `yaml:"rounding" json:"rounding"`
}

// DividendRules holds the dividend allowance and dividend rates. Bands are on
// the taxable-income scale shared with income tax.
type DividendRules struct {
	Allowance float64 `yaml:"allowance" json:"allowance"`
	Bands     []Band  `yaml:"bands" json:"bands"`
}

// StampDutyRules holds residential SDLT tables.
type StampDutyRules struct {
	Standard                    []Band           `yaml:"standard" json:"standard"`
	FirstTimeBuyer              []Band           `yaml:"first_time_buyer" json:"firstTimeBuyer"`
	FirstTimeBuyerMaxPrice      float64          `yaml:"first_time_buyer_max_price" json:"firstTimeBuyerMaxPrice"`
	AdditionalPropertySurcharge float64          `yaml:"additional_property_surcharge" json:"additionalPropertySurcharge"`
	NonResidentSurcharge        float64          `yaml:"non_resident_surcharge" json:"nonResidentSurcharge"`
	Rounding                    numeric.Rounding `yaml:"rounding" json:"rounding"`
}

// Region names used as keys of RuleSet.IncomeTax.
const (
	RegionEngland  = "england"
	RegionScotland = "scotland"
)

// IncomeTaxFor returns the rules for region, falling back to England.
func (rs *RuleSet) IncomeTaxFor(region string) (IncomeTaxRules, bool) {
	if rs == nil {
		return IncomeTaxRules{}, false
	}
	if r, ok := rs.IncomeTax[region]; ok {
		return r, true
	}
	r, ok := rs.IncomeTax[RegionEngland]
	return r, ok
}

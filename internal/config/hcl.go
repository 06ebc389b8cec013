package config

import (
	"github.com/hashicorp/hcl/v2/hclsimple"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
)

// HCL rule files use labelled blocks instead of YAML lists:
//
//	income_tax "england" {
//	  personal_allowance = 12570
//	  band "basic" { lower = 0  upper = 37700  rate = 0.2 }
//	}
type hclRuleSet struct {
	Metadata          *hclMetadata    `hcl:"metadata,block"`
	IncomeTax         []hclIncomeTax  `hcl:"income_tax,block"`
	NationalInsurance *hclNI          `hcl:"national_insurance,block"`
	DividendTax       *hclDividendTax `hcl:"dividend_tax,block"`
	StampDuty         *hclStampDuty   `hcl:"stamp_duty,block"`
}

type hclMetadata struct {
	TaxYear     string `hcl:"tax_year,optional"`
	LastUpdated string `hcl:"last_updated,optional"`
	Description string `hcl:"description,optional"`
}

type hclBand struct {
	Name  string   `hcl:"name,label"`
	Lower float64  `hcl:"lower"`
	Upper *float64 `hcl:"upper,optional"`
	Rate  float64  `hcl:"rate"`
}

type hclTaper struct {
	Threshold float64 `hcl:"threshold"`
	Rate      float64 `hcl:"rate"`
	Rounding  string  `hcl:"rounding,optional"`
	Places    int32   `hcl:"places,optional"`
}

type hclIncomeTax struct {
	Region            string    `hcl:"region,label"`
	PersonalAllowance float64   `hcl:"personal_allowance"`
	Taper             *hclTaper `hcl:"taper,block"`
	Bands             []hclBand `hcl:"band,block"`
}

type hclNI struct {
	Rounding string    `hcl:"rounding,optional"`
	Places   int32     `hcl:"places,optional"`
	Bands    []hclBand `hcl:"band,block"`
}

type hclDividendTax struct {
	Allowance float64   `hcl:"allowance"`
	Bands     []hclBand `hcl:"band,block"`
}

type hclBandTable struct {
	Bands []hclBand `hcl:"band,block"`
}

type hclStampDuty struct {
	FirstTimeBuyerMaxPrice      float64       `hcl:"first_time_buyer_max_price,optional"`
	AdditionalPropertySurcharge float64       `hcl:"additional_property_surcharge,optional"`
	NonResidentSurcharge        float64       `hcl:"non_resident_surcharge,optional"`
	Rounding                    string        `hcl:"rounding,optional"`
	Places                      int32         `hcl:"places,optional"`
	Standard                    hclBandTable  `hcl:"standard,block"`
	FirstTimeBuyer              *hclBandTable `hcl:"first_time_buyer,block"`
}

func decodeHCL(filename string, data []byte) (*domain.RuleSet, error) {
	var raw hclRuleSet
	if err := hclsimple.Decode(filename, data, nil, &raw); err != nil {
		return nil, err
	}
	return raw.toRuleSet(), nil
}

func (r hclRuleSet) toRuleSet() *domain.RuleSet {
	rules := &domain.RuleSet{IncomeTax: make(map[string]domain.IncomeTaxRules, len(r.IncomeTax))}

	if r.Metadata != nil {
		rules.Metadata = domain.RuleSetMetadata{
			TaxYear:     r.Metadata.TaxYear,
			LastUpdated: r.Metadata.LastUpdated,
			Description: r.Metadata.Description,
		}
	}

	for _, it := range r.IncomeTax {
		converted := domain.IncomeTaxRules{
			PersonalAllowance: it.PersonalAllowance,
			Bands:             convertBands(it.Bands),
		}
		if it.Taper != nil {
			converted.Taper = domain.TaperRule{
				Threshold: it.Taper.Threshold,
				Rate:      it.Taper.Rate,
				Rounding:  numeric.Rounding{Mode: numeric.RoundingMode(it.Taper.Rounding), Places: it.Taper.Places},
			}
		}
		rules.IncomeTax[it.Region] = converted
	}

	if r.NationalInsurance != nil {
		rules.NationalInsurance = domain.NIRules{
			Bands:    convertBands(r.NationalInsurance.Bands),
			Rounding: numeric.Rounding{Mode: numeric.RoundingMode(r.NationalInsurance.Rounding), Places: r.NationalInsurance.Places},
		}
	}

	if r.DividendTax != nil {
		rules.DividendTax = domain.DividendRules{
			Allowance: r.DividendTax.Allowance,
			Bands:     convertBands(r.DividendTax.Bands),
		}
	}

	if sd := r.StampDuty; sd != nil {
		rules.StampDuty = domain.StampDutyRules{
			Standard:                    convertBands(sd.Standard.Bands),
			FirstTimeBuyerMaxPrice:      sd.FirstTimeBuyerMaxPrice,
			AdditionalPropertySurcharge: sd.AdditionalPropertySurcharge,
			NonResidentSurcharge:        sd.NonResidentSurcharge,
			Rounding:                    numeric.Rounding{Mode: numeric.RoundingMode(sd.Rounding), Places: sd.Places},
		}
		if sd.FirstTimeBuyer != nil {
			rules.StampDuty.FirstTimeBuyer = convertBands(sd.FirstTimeBuyer.Bands)
		}
	}

	return rules
}

func convertBands(in []hclBand) []domain.Band {
	out := make([]domain.Band, 0, len(in))
	for _, b := range in {
		band := domain.Band{Name: b.Name, Lower: b.Lower, Rate: b.Rate}
		if b.Upper != nil {
			u := *b.Upper
			band.Upper = &u
		}
		out = append(out, band)
	}
	return out
}

package config

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"gopkg.in/yaml.v3"
)

//go:embed rules/uk-2025-26.yaml
var defaultRulesYAML []byte

// DefaultRulesName identifies the embedded rule set in logs and reports.
const DefaultRulesName = "builtin:uk-2025-26"

// RuleSetParser loads and validates tax rule sets
type RuleSetParser struct{}

// NewRuleSetParser creates a new rule set parser
func NewRuleSetParser() *RuleSetParser {
	return &RuleSetParser{}
}

// LoadFromFile loads a rule set from a YAML, JSON or HCL file. The format is
// chosen by extension; anything other than .hcl is read as YAML.
func (p *RuleSetParser) LoadFromFile(filename string) (*domain.RuleSet, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var rules *domain.RuleSet
	if strings.EqualFold(filepath.Ext(filename), ".hcl") {
		rules, err = decodeHCL(filename, data)
		if err != nil {
			return nil, fmt.Errorf("failed to parse HCL: %w", err)
		}
	} else {
		rules, err = p.ParseYAML(data)
		if err != nil {
			return nil, err
		}
	}

	if err := p.ValidateRuleSet(rules); err != nil {
		return nil, fmt.Errorf("rule set validation failed: %w", err)
	}
	return rules, nil
}

// ParseYAML decodes a rule set without validating it.
func (p *RuleSetParser) ParseYAML(data []byte) (*domain.RuleSet, error) {
	var rules domain.RuleSet
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	return &rules, nil
}

// LoadDefault returns the embedded UK rule set.
func (p *RuleSetParser) LoadDefault() (*domain.RuleSet, error) {
	rules, err := p.ParseYAML(defaultRulesYAML)
	if err != nil {
		return nil, fmt.Errorf("embedded rules: %w", err)
	}
	if err := p.ValidateRuleSet(rules); err != nil {
		return nil, fmt.Errorf("embedded rules: %w", err)
	}
	return rules, nil
}

// Load returns the rule set at path, or the embedded default when path is empty.
func (p *RuleSetParser) Load(path string) (*domain.RuleSet, error) {
	if path == "" {
		return p.LoadDefault()
	}
	return p.LoadFromFile(path)
}

// DefaultRulesYAML returns a copy of the embedded rule file, for `rules show`.
func DefaultRulesYAML() []byte {
	out := make([]byte, len(defaultRulesYAML))
	copy(out, defaultRulesYAML)
	return out
}

// ValidateRuleSet checks every band table and parameter. Rounding modes are
// normalised in place so that aliases such as "half_up" resolve once here.
func (p *RuleSetParser) ValidateRuleSet(rules *domain.RuleSet) error {
	if rules == nil {
		return fmt.Errorf("rule set is required")
	}

	if len(rules.IncomeTax) == 0 {
		return fmt.Errorf("at least one income_tax region is required")
	}
	if _, ok := rules.IncomeTax[domain.RegionEngland]; !ok {
		return fmt.Errorf("income_tax must include the %q region", domain.RegionEngland)
	}
	for region, it := range rules.IncomeTax {
		if err := p.validateIncomeTax(&it); err != nil {
			return fmt.Errorf("income_tax.%s: %w", region, err)
		}
		rules.IncomeTax[region] = it
	}

	if err := p.validateNationalInsurance(&rules.NationalInsurance); err != nil {
		return fmt.Errorf("national_insurance: %w", err)
	}
	if err := p.validateDividendTax(&rules.DividendTax); err != nil {
		return fmt.Errorf("dividend_tax: %w", err)
	}
	if err := p.validateStampDuty(&rules.StampDuty); err != nil {
		return fmt.Errorf("stamp_duty: %w", err)
	}
	return nil
}

func (p *RuleSetParser) validateIncomeTax(it *domain.IncomeTaxRules) error {
	if it.PersonalAllowance < 0 {
		return fmt.Errorf("personal_allowance cannot be negative")
	}
	if it.Taper.Threshold < 0 {
		return fmt.Errorf("taper.threshold cannot be negative")
	}
	if it.Taper.Rate < 0 || it.Taper.Rate > 1 {
		return fmt.Errorf("taper.rate must be between 0 and 1, got %v", it.Taper.Rate)
	}
	if err := normalizeRounding(&it.Taper.Rounding); err != nil {
		return fmt.Errorf("taper.rounding: %w", err)
	}
	if err := calculation.ValidateBands(it.Bands); err != nil {
		return fmt.Errorf("bands: %w", err)
	}
	return nil
}

func (p *RuleSetParser) validateNationalInsurance(ni *domain.NIRules) error {
	if err := normalizeRounding(&ni.Rounding); err != nil {
		return fmt.Errorf("rounding: %w", err)
	}
	if err := calculation.ValidateBands(ni.Bands); err != nil {
		return fmt.Errorf("bands: %w", err)
	}
	return nil
}

func (p *RuleSetParser) validateDividendTax(div *domain.DividendRules) error {
	if div.Allowance < 0 {
		return fmt.Errorf("allowance cannot be negative")
	}
	if err := calculation.ValidateBands(div.Bands); err != nil {
		return fmt.Errorf("bands: %w", err)
	}
	return nil
}

func (p *RuleSetParser) validateStampDuty(sd *domain.StampDutyRules) error {
	if err := normalizeRounding(&sd.Rounding); err != nil {
		return fmt.Errorf("rounding: %w", err)
	}
	if err := calculation.ValidateBands(sd.Standard); err != nil {
		return fmt.Errorf("standard: %w", err)
	}
	if len(sd.FirstTimeBuyer) > 0 {
		if err := calculation.ValidateBands(sd.FirstTimeBuyer); err != nil {
			return fmt.Errorf("first_time_buyer: %w", err)
		}
		if sd.FirstTimeBuyerMaxPrice <= 0 {
			return fmt.Errorf("first_time_buyer_max_price must be positive when first_time_buyer bands are set")
		}
	}
	for name, rate := range map[string]float64{
		"additional_property_surcharge": sd.AdditionalPropertySurcharge,
		"non_resident_surcharge":        sd.NonResidentSurcharge,
	} {
		if rate < 0 || rate > 1 {
			return fmt.Errorf("%s must be between 0 and 1, got %v", name, rate)
		}
	}
	return nil
}

func normalizeRounding(r *numeric.Rounding) error {
	mode, err := numeric.ParseRoundingMode(string(r.Mode))
	if err != nil {
		return err
	}
	if r.Places < 0 {
		return fmt.Errorf("places cannot be negative")
	}
	r.Mode = mode
	return nil
}

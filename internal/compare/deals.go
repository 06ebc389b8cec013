package compare

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DealsFile is the YAML file read by `calcmymoney compare`:
//
//	base: current
//	deals:
//	  - name: current
//	    principal: 180000
//	    rate: 6.1
//	    term_years: 22
type DealsFile struct {
	Base  string     `yaml:"base"`
	Deals []LoanDeal `yaml:"deals"`
	Path  string     `yaml:"-"`
}

// LoadDeals reads and validates a deals file
func LoadDeals(filename string) (*DealsFile, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var file DealsFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}
	file.Path = filename

	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("deals validation failed: %w", err)
	}
	return &file, nil
}

// Validate checks deal names and the base reference. Numeric checks are left
// to the amortization engine.
func (f *DealsFile) Validate() error {
	if len(f.Deals) == 0 {
		return fmt.Errorf("at least one deal is required")
	}

	seen := make(map[string]bool, len(f.Deals))
	for i, deal := range f.Deals {
		if deal.Name == "" {
			return fmt.Errorf("deal %d: name is required", i)
		}
		if seen[deal.Name] {
			return fmt.Errorf("deal %d: duplicate name %q", i, deal.Name)
		}
		seen[deal.Name] = true
	}

	if f.Base != "" && !seen[f.Base] {
		return fmt.Errorf("base deal %q not found", f.Base)
	}
	return nil
}

// Split returns the base deal and the rest in file order. Without an explicit
// base the first deal is used.
func (f *DealsFile) Split() (LoanDeal, []LoanDeal, error) {
	if err := f.Validate(); err != nil {
		return LoanDeal{}, nil, err
	}

	baseName := f.Base
	if baseName == "" {
		baseName = f.Deals[0].Name
	}

	var base LoanDeal
	alternatives := make([]LoanDeal, 0, len(f.Deals)-1)
	for _, deal := range f.Deals {
		if deal.Name == baseName {
			base = deal
			continue
		}
		alternatives = append(alternatives, deal)
	}
	return base, alternatives, nil
}

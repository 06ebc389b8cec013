package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mkhegde/calcmymoney/internal/domain"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRuleSetParser(t *testing.T) {
	parser := NewRuleSetParser()
	assert.NotNil(t, parser, "Should create rule set parser")
}

func TestRuleSetParser_LoadDefault(t *testing.T) {
	rules, err := NewRuleSetParser().LoadDefault()
	require.NoError(t, err, "Embedded rules should be valid")

	assert.Equal(t, "2025/26", rules.Metadata.TaxYear)

	england, ok := rules.IncomeTax[domain.RegionEngland]
	require.True(t, ok)
	assert.Equal(t, 12570.0, england.PersonalAllowance)
	assert.Equal(t, numeric.RoundFloor, england.Taper.Rounding.Mode)
	require.Len(t, england.Bands, 3)
	assert.Nil(t, england.Bands[2].Upper, "upper: null should load as unbounded")

	scotland, ok := rules.IncomeTax[domain.RegionScotland]
	require.True(t, ok)
	assert.Len(t, scotland.Bands, 6)

	assert.Equal(t, 500.0, rules.DividendTax.Allowance)
	assert.Equal(t, 0.08, rules.NationalInsurance.Bands[1].Rate)
	assert.Equal(t, numeric.RoundHalfUp, rules.NationalInsurance.Rounding.Mode)
	assert.Equal(t, int32(2), rules.NationalInsurance.Rounding.Places)
	assert.Len(t, rules.StampDuty.Standard, 5)
	assert.Equal(t, 500000.0, rules.StampDuty.FirstTimeBuyerMaxPrice)
}

func TestRuleSetParser_LoadDefaultReturnsFreshCopies(t *testing.T) {
	parser := NewRuleSetParser()
	first, err := parser.LoadDefault()
	require.NoError(t, err)
	first.DividendTax.Allowance = 0

	second, err := parser.LoadDefault()
	require.NoError(t, err)
	assert.Equal(t, 500.0, second.DividendTax.Allowance)
}

func TestRuleSetParser_LoadFromFile_FileNotFound(t *testing.T) {
	rules, err := NewRuleSetParser().LoadFromFile("nonexistent.yaml")

	assert.Error(t, err, "Should error for nonexistent file")
	assert.Nil(t, rules, "Should return nil rules")
	assert.Contains(t, err.Error(), "failed to read file", "Should have specific error message")
}

func TestRuleSetParser_LoadFromFile_InvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	invalidFile := filepath.Join(tmpDir, "invalid.yaml")
	require.NoError(t, os.WriteFile(invalidFile, []byte("invalid: yaml: content: [unclosed"), 0644))

	rules, err := NewRuleSetParser().LoadFromFile(invalidFile)

	assert.Error(t, err, "Should error for invalid YAML")
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestRuleSetParser_LoadFromFile_RoundTripsDefault(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "rules.yml")
	require.NoError(t, os.WriteFile(path, DefaultRulesYAML(), 0644))

	fromFile, err := NewRuleSetParser().LoadFromFile(path)
	require.NoError(t, err)
	builtin, err := NewRuleSetParser().LoadDefault()
	require.NoError(t, err)

	assert.Equal(t, builtin, fromFile)
}

func TestRuleSetParser_LoadFromFile_BrokenBands(t *testing.T) {
	rules, err := NewRuleSetParser().LoadFromFile(filepath.Join("testdata", "broken_bands.yaml"))

	require.Error(t, err)
	assert.Nil(t, rules)
	assert.Contains(t, err.Error(), "income_tax.england")
	assert.ErrorIs(t, err, domain.ErrInvalidBandConfiguration)
}

func TestRuleSetParser_Load(t *testing.T) {
	parser := NewRuleSetParser()

	rules, err := parser.Load("")
	require.NoError(t, err)
	assert.Equal(t, "2025/26", rules.Metadata.TaxYear)

	_, err = parser.Load(filepath.Join("testdata", "missing.yaml"))
	assert.Error(t, err)
}

func TestRuleSetParser_ValidateRuleSet(t *testing.T) {
	parser := NewRuleSetParser()

	tests := []struct {
		name   string
		mutate func(*domain.RuleSet)
		msg    string
	}{
		{"no regions", func(rs *domain.RuleSet) { rs.IncomeTax = nil }, "at least one income_tax region"},
		{"no england", func(rs *domain.RuleSet) { delete(rs.IncomeTax, domain.RegionEngland) }, "\"england\""},
		{"negative allowance", func(rs *domain.RuleSet) {
			it := rs.IncomeTax[domain.RegionEngland]
			it.PersonalAllowance = -1
			rs.IncomeTax[domain.RegionEngland] = it
		}, "personal_allowance"},
		{"taper rate", func(rs *domain.RuleSet) {
			it := rs.IncomeTax[domain.RegionEngland]
			it.Taper.Rate = 2
			rs.IncomeTax[domain.RegionEngland] = it
		}, "taper.rate"},
		{"rounding mode", func(rs *domain.RuleSet) { rs.NationalInsurance.Rounding.Mode = "sideways" }, "unknown rounding mode"},
		{"dividend allowance", func(rs *domain.RuleSet) { rs.DividendTax.Allowance = -500 }, "allowance"},
		{"surcharge", func(rs *domain.RuleSet) { rs.StampDuty.NonResidentSurcharge = 2 }, "non_resident_surcharge"},
		{"ftb cap", func(rs *domain.RuleSet) { rs.StampDuty.FirstTimeBuyerMaxPrice = 0 }, "first_time_buyer_max_price"},
		{"sdlt bands", func(rs *domain.RuleSet) { rs.StampDuty.Standard = nil }, "stamp_duty: standard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := parser.LoadDefault()
			require.NoError(t, err)
			tt.mutate(rules)

			err = parser.ValidateRuleSet(rules)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}

	assert.Error(t, parser.ValidateRuleSet(nil))
}

func TestRuleSetParser_NormalizesRoundingAliases(t *testing.T) {
	parser := NewRuleSetParser()
	rules, err := parser.LoadDefault()
	require.NoError(t, err)

	rules.StampDuty.Rounding.Mode = "down"
	require.NoError(t, parser.ValidateRuleSet(rules))
	assert.Equal(t, numeric.RoundFloor, rules.StampDuty.Rounding.Mode)
}

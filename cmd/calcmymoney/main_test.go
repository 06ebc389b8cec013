package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (stdout, stderr string, code int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestRootCommand(t *testing.T) {
	cmd := newRootCmd()
	assert.Equal(t, "calcmymoney", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)

	for _, flag := range []string{"rules", "format", "output", "log-level", "log-format", "debug"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), "missing --%s", flag)
	}
}

func TestCommandSubcommands(t *testing.T) {
	expected := []string{
		"income-tax", "dividend", "stamp-duty", "mortgage", "remortgage", "debt",
		"btl", "pension", "savings", "compare", "solve", "rules", "version",
	}
	registered := map[string]bool{}
	for _, c := range newRootCmd().Commands() {
		registered[c.Name()] = true
	}
	for _, name := range expected {
		assert.True(t, registered[name], "expected command %q", name)
	}
}

func TestRootCommand_Help(t *testing.T) {
	stdout, _, code := execute(t, "--help")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "income-tax")
	assert.Contains(t, stdout, "--rules")
}

func TestRootCommand_InvalidCommand(t *testing.T) {
	_, stderr, code := execute(t, "no-such-command")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unknown command")
}

func TestVersion(t *testing.T) {
	stdout, _, code := execute(t, "version")
	assert.Equal(t, 0, code)
	assert.Contains(t, stdout, "calcmymoney dev")
}

func TestIncomeTax_Console(t *testing.T) {
	stdout, stderr, code := execute(t, "income-tax", "--salary", "50000")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "£39,519.60")
}

func TestIncomeTax_JSON(t *testing.T) {
	stdout, stderr, code := execute(t, "income-tax", "--salary", "50000", "--format", "json")
	require.Equal(t, 0, code, stderr)

	var got struct {
		TakeHomeAnnual float64 `json:"takeHomeAnnual"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.InDelta(t, 39519.60, got.TakeHomeAnnual, 0.01)
}

func TestIncomeTax_MissingSalary(t *testing.T) {
	_, stderr, code := execute(t, "income-tax")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "salary")
}

func TestUnsupportedFormat(t *testing.T) {
	_, stderr, code := execute(t, "income-tax", "--salary", "50000", "--format", "docx")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "unsupported format: docx")
}

func TestMissingRulesFile(t *testing.T) {
	_, stderr, code := execute(t, "income-tax", "--salary", "50000", "--rules", filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Error:")
}

func TestDebt_SuggestsMinimumPayment(t *testing.T) {
	_, stderr, code := execute(t, "debt", "--balance", "5000", "--apr", "20", "--payment", "10")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Try a monthly payment of at least £133.34")
}

func TestMortgage_HugeTerm(t *testing.T) {
	_, stderr, code := execute(t, "mortgage", "--price", "300000", "--deposit", "30000", "--rate", "4.5", "--term", "2000000000")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "exceeds the limit of 100")
	assert.Contains(t, stderr, "Check the flag values")
}

func TestStampDuty_BadBuyer(t *testing.T) {
	_, stderr, code := execute(t, "stamp-duty", "--price", "300000", "--buyer", "company")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "Check the flag values")
}

func TestOutputFile_FormatFromExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mortgage.csv")
	_, stderr, code := execute(t, "mortgage", "--price", "300000", "--deposit", "30000", "--rate", "4.5", "--output", path)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stderr, "Report written to")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("Field,Value")))
}

const testDeals = `base: current
deals:
  - name: current
    principal: 200000
    rate: 6
    term_years: 25
  - name: two-year-fix
    principal: 200000
    rate: 4.5
    term_years: 25
    fees: 999
    fixed_period_years: 2
`

func writeDeals(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "deals.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testDeals), 0o644))
	return path
}

func TestCompare_Table(t *testing.T) {
	stdout, stderr, code := execute(t, "compare", writeDeals(t))
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "LOAN DEAL COMPARISON")
	assert.Contains(t, stdout, "two-year-fix")
}

func TestCompare_CSV(t *testing.T) {
	stdout, stderr, code := execute(t, "compare", writeDeals(t), "--format", "csv")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "Deal,Type,Monthly Payment")
}

func TestCompare_UnknownBase(t *testing.T) {
	_, stderr, code := execute(t, "compare", writeDeals(t), "--base", "nope")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, `base deal "nope" not found`)
}

func TestSolve_GrossForNet(t *testing.T) {
	stdout, stderr, code := execute(t, "solve", "gross_for_net", "--goal", "39519.60", "--format", "json")
	require.Equal(t, 0, code, stderr)

	var got struct {
		Value     float64 `json:"value"`
		Converged bool    `json:"converged"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &got))
	assert.True(t, got.Converged)
	assert.InDelta(t, 50000, got.Value, 0.02)
}

func TestSolve_OverpaymentNeedsMonths(t *testing.T) {
	_, stderr, code := execute(t, "solve", "overpayment", "--principal", "200000", "--rate", "5")
	assert.Equal(t, 1, code)
	assert.Contains(t, stderr, "--months is required")
}

func TestSolve_Console(t *testing.T) {
	stdout, stderr, code := execute(t, "solve", "contribution", "--goal", "50000", "--rate", "4", "--years", "10")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "GOAL SEEK RESULTS")
}

func TestRules(t *testing.T) {
	stdout, stderr, code := execute(t, "rules", "validate")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "builtin:uk-2025-26 is valid")

	stdout, stderr, code = execute(t, "rules", "show")
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, "TAX RULES")
	assert.Contains(t, stdout, "National Insurance")

	rulesFile := filepath.Join(t.TempDir(), "rules.yaml")
	stdout, _, code = execute(t, "rules", "default")
	require.Equal(t, 0, code)
	require.NoError(t, os.WriteFile(rulesFile, []byte(stdout), 0o644))

	stdout, stderr, code = execute(t, "rules", "validate", rulesFile)
	require.Equal(t, 0, code, stderr)
	assert.Contains(t, stdout, rulesFile+" is valid")
}

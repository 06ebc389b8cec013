package scenes

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkhegde/calcmymoney/internal/calculation"
	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/config"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
)

func testCalculator(t *testing.T) *calculators.Calculator {
	t.Helper()
	rules, err := config.NewRuleSetParser().LoadDefault()
	require.NoError(t, err)
	return calculators.New(calculation.NewCalculationEngine(), rules)
}

func TestForm_FocusAndEditing(t *testing.T) {
	f := NewForm(FieldSpec{Label: "A", Default: "1"}, FieldSpec{Label: "B"})
	assert.Equal(t, 0, f.Focused())

	submitted, _ := f.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, submitted)
	assert.Equal(t, 1, f.Focused())

	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("42")})
	assert.Equal(t, "42", f.Value(1))
	assert.Equal(t, "1", f.Value(0))

	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	f.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 1, f.Focused(), "focus wraps around")

	submitted, _ = f.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.True(t, submitted)

	assert.Equal(t, "", f.Value(7))
	assert.Contains(t, f.View(), "enter calculate")
}

func TestIncomeTaxModel_Input(t *testing.T) {
	m := NewIncomeTaxModel()
	m.form.SetValue(fieldSalary, "£60,000")
	m.form.SetValue(fieldRegion, " Scotland ")

	in := m.Input()
	assert.Equal(t, 60000.0, in.GrossSalary)
	assert.Equal(t, "scotland", in.Region)
}

func TestIncomeTaxModel_CalculateWithoutRules(t *testing.T) {
	m := NewIncomeTaxModel()
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)

	msg := cmd().(tuimsg.IncomeTaxResultMsg)
	require.Error(t, msg.Err)

	m, _ = m.Update(msg)
	assert.Contains(t, m.View(), "not loaded")
	assert.Nil(t, m.Result())
}

func TestIncomeTaxModel_Calculate(t *testing.T) {
	m := NewIncomeTaxModel()
	m.SetCalculator(testCalculator(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	require.NotNil(t, m.Result())
	assert.InDelta(t, 7486.0, m.Result().IncomeTaxDue, 0.01)
	view := m.View()
	assert.Contains(t, view, "£7,486")
	assert.Contains(t, view, "Take-home")
}

func TestMortgageModel_Calculate(t *testing.T) {
	m := NewMortgageModel()
	m.SetCalculator(testCalculator(t))
	m.form.SetValue(4, "200")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	res := m.Result()
	require.NotNil(t, res)
	assert.Equal(t, 270000.0, res.LoanAmount)
	assert.Greater(t, res.MonthsSaved, 0)
	assert.Contains(t, m.View(), "Interest saved")
}

func TestMortgageModel_InvalidInput(t *testing.T) {
	m := NewMortgageModel()
	m.SetCalculator(testCalculator(t))
	m.form.SetValue(3, "0")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "Error:")
}

func TestMortgageModel_HugeTermIsRejected(t *testing.T) {
	m := NewMortgageModel()
	m.SetCalculator(testCalculator(t))
	m.form.SetValue(3, "2000000000")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())
	assert.Nil(t, m.Result())
	assert.Contains(t, m.View(), "exceeds the limit")
}

func TestSavingsModel_Calculate(t *testing.T) {
	m := NewSavingsModel()
	m.SetCalculator(testCalculator(t))

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = m.Update(cmd())

	res := m.Result()
	require.NotNil(t, res)
	assert.Equal(t, 5000.0+250*120, res.TotalDeposits)
	assert.Less(t, res.RealFinalBalance, res.FinalBalance)
	assert.Contains(t, m.View(), "In today's money")
}

func TestHomeModel(t *testing.T) {
	m := NewHomeModel()
	assert.Contains(t, m.View(), "Loading rules")

	m.SetRulesName("builtin")
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	assert.Equal(t, 2, m.Selected())

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, tuimsg.OpenToolMsg{Tool: tuimsg.ToolSavings}, cmd())

	_, cmd = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("2")})
	assert.Equal(t, tuimsg.OpenToolMsg{Tool: tuimsg.ToolMortgage}, cmd())
	assert.Contains(t, m.View(), "Rules: builtin")
}

package scenes

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/tui/components"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

const (
	fieldSalary = iota
	fieldRegion
	fieldSacrifice
	fieldOtherIncome
)

// IncomeTaxModel is the take-home pay scene
type IncomeTaxModel struct {
	calc   *calculators.Calculator
	form   *Form
	result *calculators.IncomeTaxResult
	err    error
	width  int
}

// NewIncomeTaxModel creates the scene with a £50,000 England example
func NewIncomeTaxModel() *IncomeTaxModel {
	return &IncomeTaxModel{
		form: NewForm(
			FieldSpec{Label: "Gross salary (£)", Default: "50000"},
			FieldSpec{Label: "Region", Default: "england", Hint: "england or scotland"},
			FieldSpec{Label: "Pension sacrifice (%)", Default: "0"},
			FieldSpec{Label: "Other income (£)", Default: "0"},
		),
		width: 80,
	}
}

// SetCalculator wires the calculator once rules are loaded
func (m *IncomeTaxModel) SetCalculator(calc *calculators.Calculator) {
	m.calc = calc
}

// SetSize updates the model dimensions
func (m *IncomeTaxModel) SetSize(width, _ int) {
	m.width = width
}

// Input converts the form into calculator input
func (m *IncomeTaxModel) Input() calculators.IncomeTaxInput {
	return calculators.IncomeTaxInput{
		GrossSalary:             numeric.ParseAmount(m.form.Value(fieldSalary)),
		Region:                  strings.ToLower(strings.TrimSpace(m.form.Value(fieldRegion))),
		PensionSacrificePercent: numeric.ParseAmount(m.form.Value(fieldSacrifice)),
		OtherIncome:             numeric.ParseAmount(m.form.Value(fieldOtherIncome)),
	}
}

// Result returns the last successful calculation
func (m *IncomeTaxModel) Result() *calculators.IncomeTaxResult {
	return m.result
}

func (m *IncomeTaxModel) calculate() tea.Cmd {
	calc, in := m.calc, m.Input()
	return func() tea.Msg {
		if calc == nil {
			return tuimsg.IncomeTaxResultMsg{Err: fmt.Errorf("tax rules are not loaded yet")}
		}
		res, err := calc.IncomeTax(in)
		return tuimsg.IncomeTaxResultMsg{Result: res, Err: err}
	}
}

// Update handles messages for the income tax scene
func (m *IncomeTaxModel) Update(msg tea.Msg) (*IncomeTaxModel, tea.Cmd) {
	if res, ok := msg.(tuimsg.IncomeTaxResultMsg); ok {
		m.err = res.Err
		if res.Err == nil {
			m.result = res.Result
		}
		return m, nil
	}
	submitted, cmd := m.form.Update(msg)
	if submitted {
		return m, m.calculate()
	}
	return m, cmd
}

// View renders the form and the latest result
func (m *IncomeTaxModel) View() string {
	left := tuistyles.TitleStyle.Render("Take-Home Pay") + "\n\n" + m.form.View()
	return lipgloss.JoinVertical(lipgloss.Left, left, "", m.resultView())
}

func (m *IncomeTaxModel) resultView() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	r := m.result
	if r == nil {
		return tuistyles.InfoStyle.Render("Press enter to calculate")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Take-home / year", tuistyles.FormatCurrency(r.TakeHomeAnnual)),
		components.NewMetricCard("Take-home / month", tuistyles.FormatCurrency(r.TakeHomeMonthly)),
		components.NewMetricCard("Income tax", tuistyles.FormatCurrency(r.IncomeTaxDue)).
			WithNote(fmt.Sprintf("allowance %s", tuistyles.FormatCurrency(r.PersonalAllowance))),
		components.NewMetricCard("National Insurance", tuistyles.FormatCurrency(r.NationalInsuranceDue)),
		components.NewMetricCard("Effective rate", fmt.Sprintf("%.1f%%", r.EffectiveRate)),
		components.NewMetricCard("Marginal rate", fmt.Sprintf("%.0f%%", r.MarginalRate)),
	}
	columns := max(1, min(3, m.width/28))

	bar := components.NewShareBar(
		components.Segment{Label: "Take-home", Value: r.TakeHomeAnnual, Color: tuistyles.ColorSuccess},
		components.Segment{Label: "Income tax", Value: r.IncomeTaxDue, Color: tuistyles.ColorDanger},
		components.Segment{Label: "NI", Value: r.NationalInsuranceDue, Color: tuistyles.ColorAccent},
		components.Segment{Label: "Pension", Value: r.PensionContribution, Color: tuistyles.ColorInfo},
	).WithWidth(max(20, min(60, m.width-10)))

	return components.MetricGrid(cards, columns) + "\n\n" + bar.Render()
}

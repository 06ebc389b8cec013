package scenes

import (
	"fmt"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/tui/components"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

// MortgageModel is the repayment mortgage scene
type MortgageModel struct {
	calc   *calculators.Calculator
	form   *Form
	result *calculators.MortgageResult
	err    error
	width  int
}

// NewMortgageModel creates the scene with a typical first home example
func NewMortgageModel() *MortgageModel {
	return &MortgageModel{
		form: NewForm(
			FieldSpec{Label: "Property price (£)", Default: "300000"},
			FieldSpec{Label: "Deposit (£)", Default: "30000"},
			FieldSpec{Label: "Interest rate (%)", Default: "4.5"},
			FieldSpec{Label: "Term (years)", Default: "25"},
			FieldSpec{Label: "Monthly overpayment (£)", Default: "0"},
		),
		width: 80,
	}
}

// SetCalculator wires the calculator once rules are loaded
func (m *MortgageModel) SetCalculator(calc *calculators.Calculator) {
	m.calc = calc
}

// SetSize updates the model dimensions
func (m *MortgageModel) SetSize(width, _ int) {
	m.width = width
}

// Input converts the form into calculator input
func (m *MortgageModel) Input() calculators.MortgageInput {
	return calculators.MortgageInput{
		PropertyPrice:      numeric.ParseAmount(m.form.Value(0)),
		Deposit:            numeric.ParseAmount(m.form.Value(1)),
		AnnualRatePercent:  numeric.ParseAmount(m.form.Value(2)),
		TermYears:          numeric.ParseInt(m.form.Value(3)),
		MonthlyOverpayment: numeric.ParseAmount(m.form.Value(4)),
	}
}

// Result returns the last successful calculation
func (m *MortgageModel) Result() *calculators.MortgageResult {
	return m.result
}

func (m *MortgageModel) calculate() tea.Cmd {
	calc, in := m.calc, m.Input()
	return func() tea.Msg {
		if calc == nil {
			return tuimsg.MortgageResultMsg{Err: fmt.Errorf("calculator is not ready yet")}
		}
		res, err := calc.Mortgage(in)
		return tuimsg.MortgageResultMsg{Result: res, Err: err}
	}
}

// Update handles messages for the mortgage scene
func (m *MortgageModel) Update(msg tea.Msg) (*MortgageModel, tea.Cmd) {
	if res, ok := msg.(tuimsg.MortgageResultMsg); ok {
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
func (m *MortgageModel) View() string {
	left := tuistyles.TitleStyle.Render("Mortgage") + "\n\n" + m.form.View()
	return lipgloss.JoinVertical(lipgloss.Left, left, "", m.resultView())
}

func (m *MortgageModel) resultView() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	r := m.result
	if r == nil {
		return tuistyles.InfoStyle.Render("Press enter to calculate")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Monthly payment", tuistyles.FormatCurrency(r.MonthlyPayment)).
			WithNote(fmt.Sprintf("LTV %.1f%%", r.LoanToValue)),
		components.NewMetricCard("Total interest", tuistyles.FormatCurrency(r.TotalInterest)),
		components.NewMetricCard("Paid off in", fmt.Sprintf("%dy %dm", r.Months/12, r.Months%12)),
	}
	if r.MonthsSaved > 0 {
		cards = append(cards,
			components.NewMetricCard("Interest saved", tuistyles.FormatCurrency(r.InterestSaved)).
				WithDelta(false, true, strconv.Itoa(r.MonthsSaved)+" months sooner"))
	}

	balances := make([]float64, 0, len(r.Yearly)+1)
	balances = append(balances, r.LoanAmount)
	for _, y := range r.Yearly {
		balances = append(balances, y.ClosingBalance)
	}
	chart := components.NewLineChart("Balance by year").
		WithSize(max(30, min(80, m.width-4)), 10).
		WithXLabel(fmt.Sprintf("years 0 to %d", len(r.Yearly))).
		Add("Balance", balances, tuistyles.ColorChartLine1)

	return components.MetricGrid(cards, max(1, min(4, m.width/28))) + "\n\n" + chart.Render()
}

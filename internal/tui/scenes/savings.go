package scenes

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mkhegde/calcmymoney/internal/calculators"
	"github.com/mkhegde/calcmymoney/internal/numeric"
	"github.com/mkhegde/calcmymoney/internal/tui/components"
	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

// SavingsModel is the savings growth scene
type SavingsModel struct {
	calc   *calculators.Calculator
	form   *Form
	result *calculators.SavingsResult
	err    error
	width  int
}

// NewSavingsModel creates the scene with a regular saver example
func NewSavingsModel() *SavingsModel {
	return &SavingsModel{
		form: NewForm(
			FieldSpec{Label: "Starting balance (£)", Default: "5000"},
			FieldSpec{Label: "Monthly deposit (£)", Default: "250"},
			FieldSpec{Label: "Interest rate AER (%)", Default: "4"},
			FieldSpec{Label: "Years", Default: "10"},
			FieldSpec{Label: "Inflation (%)", Default: "2"},
			FieldSpec{Label: "Yearly deposit increase (%)", Default: "0"},
		),
		width: 80,
	}
}

// SetCalculator wires the calculator once rules are loaded
func (m *SavingsModel) SetCalculator(calc *calculators.Calculator) {
	m.calc = calc
}

// SetSize updates the model dimensions
func (m *SavingsModel) SetSize(width, _ int) {
	m.width = width
}

// Input converts the form into calculator input
func (m *SavingsModel) Input() calculators.SavingsInput {
	return calculators.SavingsInput{
		Initial:                numeric.ParseAmount(m.form.Value(0)),
		MonthlyDeposit:         numeric.ParseAmount(m.form.Value(1)),
		AnnualRatePercent:      numeric.ParseAmount(m.form.Value(2)),
		Years:                  numeric.ParseInt(m.form.Value(3)),
		AnnualInflationPercent: numeric.ParseAmount(m.form.Value(4)),
		DepositIncreasePercent: numeric.ParseAmount(m.form.Value(5)),
	}
}

// Result returns the last successful calculation
func (m *SavingsModel) Result() *calculators.SavingsResult {
	return m.result
}

func (m *SavingsModel) calculate() tea.Cmd {
	calc, in := m.calc, m.Input()
	return func() tea.Msg {
		if calc == nil {
			return tuimsg.SavingsResultMsg{Err: fmt.Errorf("calculator is not ready yet")}
		}
		res, err := calc.Savings(in)
		return tuimsg.SavingsResultMsg{Result: res, Err: err}
	}
}

// Update handles messages for the savings scene
func (m *SavingsModel) Update(msg tea.Msg) (*SavingsModel, tea.Cmd) {
	if res, ok := msg.(tuimsg.SavingsResultMsg); ok {
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
func (m *SavingsModel) View() string {
	left := tuistyles.TitleStyle.Render("Savings") + "\n\n" + m.form.View()
	return lipgloss.JoinVertical(lipgloss.Left, left, "", m.resultView())
}

func (m *SavingsModel) resultView() string {
	if m.err != nil {
		return tuistyles.ErrorStyle.Render("Error: " + m.err.Error())
	}
	r := m.result
	if r == nil {
		return tuistyles.InfoStyle.Render("Press enter to calculate")
	}

	cards := []*components.MetricCard{
		components.NewMetricCard("Final balance", tuistyles.FormatCurrency(r.FinalBalance)),
		components.NewMetricCard("In today's money", tuistyles.FormatCurrency(r.RealFinalBalance)),
		components.NewMetricCard("Deposited", tuistyles.FormatCurrency(r.TotalDeposits)),
		components.NewMetricCard("Interest earned", tuistyles.FormatCurrency(r.InterestEarned)).
			WithDelta(r.InterestEarned >= 0, r.InterestEarned >= 0, fmt.Sprintf("%.0f%% of deposits", 100*r.InterestEarned/max(r.TotalDeposits, 1))),
	}

	nominal := []float64{r.Input.Initial}
	realBalances := []float64{r.Input.Initial}
	if r.Projection != nil {
		for _, s := range r.Projection.Snapshots {
			nominal = append(nominal, s.Balance)
			realBalances = append(realBalances, s.RealBalance)
		}
	}
	chart := components.NewLineChart("Balance by year").
		WithSize(max(30, min(80, m.width-4)), 10).
		WithXLabel(fmt.Sprintf("years 0 to %d", len(nominal)-1)).
		Add("Nominal", nominal, tuistyles.ColorChartLine1).
		Add("Real", realBalances, tuistyles.ColorChartLine2)

	return components.MetricGrid(cards, max(1, min(4, m.width/28))) + "\n\n" + chart.Render()
}

package scenes

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mkhegde/calcmymoney/internal/tui/tuimsg"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

type menuItem struct {
	tool  tuimsg.Tool
	title string
	desc  string
}

var menu = []menuItem{
	{tuimsg.ToolIncomeTax, "Take-home pay", "Income tax and National Insurance on a salary"},
	{tuimsg.ToolMortgage, "Mortgage", "Monthly payment, interest and overpayments"},
	{tuimsg.ToolSavings, "Savings", "Growth of a regular saver in nominal and real terms"},
}

// HomeModel is the tool menu
type HomeModel struct {
	rulesName string
	selected  int
}

// NewHomeModel creates a new home scene model
func NewHomeModel() *HomeModel {
	return &HomeModel{}
}

// SetRulesName records which rule set is active
func (m *HomeModel) SetRulesName(name string) {
	m.rulesName = name
}

// Selected returns the highlighted menu index
func (m *HomeModel) Selected() int {
	return m.selected
}

// Update handles messages for the home scene
func (m *HomeModel) Update(msg tea.Msg) (*HomeModel, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(k, key.NewBinding(key.WithKeys("up", "k"))):
		m.selected = (m.selected - 1 + len(menu)) % len(menu)
	case key.Matches(k, key.NewBinding(key.WithKeys("down", "j"))):
		m.selected = (m.selected + 1) % len(menu)
	case key.Matches(k, key.NewBinding(key.WithKeys("1", "2", "3"))):
		m.selected = int(k.String()[0] - '1')
		fallthrough
	case key.Matches(k, key.NewBinding(key.WithKeys("enter"))):
		tool := menu[m.selected].tool
		return m, func() tea.Msg { return tuimsg.OpenToolMsg{Tool: tool} }
	}
	return m, nil
}

// View renders the menu
func (m *HomeModel) View() string {
	var sb strings.Builder
	sb.WriteString(tuistyles.TitleStyle.Render("calcmymoney"))
	sb.WriteString("\n")
	if m.rulesName != "" {
		sb.WriteString(tuistyles.SubtitleStyle.Render("Rules: " + m.rulesName))
	} else {
		sb.WriteString(tuistyles.SubtitleStyle.Render("Loading rules..."))
	}
	sb.WriteString("\n\n")

	for i, item := range menu {
		line := string(rune('1'+i)) + ". " + item.title
		if i == m.selected {
			sb.WriteString(tuistyles.SelectedItemStyle.Render("▸ " + line))
		} else {
			sb.WriteString(tuistyles.UnselectedItemStyle.Render("  " + line))
		}
		sb.WriteString("\n")
		sb.WriteString(tuistyles.HelpDescStyle.Render("     " + item.desc))
		sb.WriteString("\n")
	}
	return sb.String()
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mkhegde/calcmymoney/internal/tui/components"
)

// View renders the current state of the application
func (m Model) View() string {
	if m.loading {
		return m.renderApp(BorderStyle.Render(components.NewSpinner("Loading tax rules...").Render()))
	}

	if m.err != nil {
		return m.renderApp(ErrorStyle.Render(
			fmt.Sprintf("Error: %s\n\nPress any key to continue...", m.err.Error()),
		))
	}

	var content string
	switch m.currentScene {
	case SceneHome:
		content = m.homeModel.View()
	case SceneIncomeTax:
		content = m.incomeTaxModel.View()
	case SceneMortgage:
		content = m.mortgageModel.View()
	case SceneSavings:
		content = m.savingsModel.View()
	case SceneHelp:
		content = renderHelp()
	default:
		content = "Unknown scene"
	}

	return m.renderApp(content)
}

// renderApp wraps content with title bar and status bar
func (m Model) renderApp(content string) string {
	contentHeight := max(0, m.height-4)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderTitleBar(),
		lipgloss.NewStyle().Height(contentHeight).Render(content),
		m.renderStatusBar(),
	)
}

// renderTitleBar renders the application title and breadcrumb
func (m Model) renderTitleBar() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		TitleStyle.Render("calcmymoney - UK personal finance"),
		SubtitleStyle.Render(m.currentScene.String()),
	)
}

// renderStatusBar renders the bottom status bar with keyboard shortcuts
func (m Model) renderStatusBar() string {
	var shortcuts []string
	if m.currentScene == SceneHome || m.currentScene == SceneHelp {
		shortcuts = []string{
			formatShortcut("1-3", "open"),
			formatShortcut("?", "help"),
			formatShortcut("q", "quit"),
		}
	} else {
		shortcuts = []string{
			formatShortcut("enter", "calculate"),
			formatShortcut("esc", "menu"),
			formatShortcut("ctrl+c", "quit"),
		}
	}
	statusText := strings.Join(shortcuts, " • ")

	if m.rulesName != "" {
		rules := SubtitleStyle.Render(m.rulesName)
		spacer := strings.Repeat(" ", max(0, m.width-lipgloss.Width(statusText)-lipgloss.Width(rules)-2))
		statusText += spacer + rules
	}

	return StatusBarStyle.Width(m.width).Render(statusText)
}

// formatShortcut formats a keyboard shortcut with key and description
func formatShortcut(key, desc string) string {
	return StatusKeyStyle.Render(key) + " " + desc
}

func renderHelp() string {
	rows := [][2]string{
		{"1 / 2 / 3", "Open take-home pay, mortgage or savings"},
		{"↑ / ↓", "Move between menu items or form fields"},
		{"tab", "Next form field"},
		{"enter", "Open the selected tool or calculate"},
		{"esc", "Back to the menu, or dismiss an error"},
		{"?", "Show this help"},
		{"q / ctrl+c", "Quit (q only from the menu)"},
	}

	var sb strings.Builder
	sb.WriteString("KEYBOARD SHORTCUTS\n\n")
	for _, r := range rows {
		sb.WriteString(HelpKeyStyle.Render(fmt.Sprintf("%-12s", r[0])))
		sb.WriteString(HelpDescStyle.Render(r[1]))
		sb.WriteString("\n")
	}
	sb.WriteString("\n")
	sb.WriteString(InfoStyle.Render("Amounts accept £ signs and commas, e.g. £45,000"))
	return BorderStyle.Render(sb.String())
}

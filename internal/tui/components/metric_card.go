package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

// MetricCard displays a single figure with a label and an optional change
type MetricCard struct {
	Label string
	Value string
	Delta *Delta
	Note  string
	Width int
}

// Delta describes how a figure moved. Up and Good are separate because a
// rising interest bill is bad while a rising balance is good.
type Delta struct {
	Up   bool
	Good bool
	Text string
}

// NewMetricCard creates a new metric card
func NewMetricCard(label, value string) *MetricCard {
	return &MetricCard{
		Label: label,
		Value: value,
		Width: 26,
	}
}

// WithDelta adds a change indicator
func (m *MetricCard) WithDelta(up, good bool, text string) *MetricCard {
	m.Delta = &Delta{Up: up, Good: good, Text: text}
	return m
}

// WithNote adds a muted line under the value
func (m *MetricCard) WithNote(note string) *MetricCard {
	m.Note = note
	return m
}

// WithWidth sets the card width
func (m *MetricCard) WithWidth(width int) *MetricCard {
	m.Width = width
	return m
}

func (m *MetricCard) delta() string {
	if m.Delta == nil {
		return ""
	}
	style := tuistyles.MetricTrendStyle(m.Delta.Good)
	return style.Render(fmt.Sprintf("%s %s", tuistyles.TrendIndicator(m.Delta.Up), m.Delta.Text))
}

// Render returns the bordered card
func (m *MetricCard) Render() string {
	content := tuistyles.MetricLabelStyle.Render(m.Label) + "\n" +
		tuistyles.MetricValueStyle.Render(m.Value)
	if d := m.delta(); d != "" {
		content += "\n" + d
	}
	if m.Note != "" {
		content += "\n" + tuistyles.MetricLabelStyle.Render(m.Note)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(tuistyles.ColorBorder).
		Padding(0, 1).
		Width(m.Width).
		Render(content)
}

// RenderCompact returns a single line without a border
func (m *MetricCard) RenderCompact() string {
	line := tuistyles.MetricLabelStyle.Render(m.Label+":") + " " + tuistyles.MetricValueStyle.Render(m.Value)
	if d := m.delta(); d != "" {
		line += " " + d
	}
	return line
}

// MetricGrid lays cards out left to right, columns per row
func MetricGrid(cards []*MetricCard, columns int) string {
	if len(cards) == 0 {
		return ""
	}
	if columns <= 0 {
		columns = 1
	}

	var rows []string
	for start := 0; start < len(cards); start += columns {
		end := min(start+columns, len(cards))
		rendered := make([]string, 0, end-start)
		for _, card := range cards[start:end] {
			rendered = append(rendered, card.Render())
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

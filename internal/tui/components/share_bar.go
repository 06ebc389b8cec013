package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

// Segment is one part of a ShareBar.
type Segment struct {
	Label string
	Value float64
	Color lipgloss.Color
}

// ShareBar shows how a total splits into parts, for example gross pay into
// take-home, tax and National Insurance.
type ShareBar struct {
	Segments []Segment
	Width    int
}

// NewShareBar creates a bar 40 cells wide
func NewShareBar(segments ...Segment) *ShareBar {
	return &ShareBar{Segments: segments, Width: 40}
}

// WithWidth sets the bar width
func (b *ShareBar) WithWidth(width int) *ShareBar {
	b.Width = width
	return b
}

// Total sums the non-negative segment values
func (b *ShareBar) Total() float64 {
	total := 0.0
	for _, s := range b.Segments {
		total += math.Max(s.Value, 0)
	}
	return total
}

// Cells returns how many cells each segment gets. The largest remainders
// absorb rounding so the cells always add up to Width.
func (b *ShareBar) Cells() []int {
	cells := make([]int, len(b.Segments))
	total := b.Total()
	if total <= 0 || b.Width <= 0 {
		return cells
	}

	used := 0
	remainders := make([]float64, len(b.Segments))
	for i, s := range b.Segments {
		exact := math.Max(s.Value, 0) / total * float64(b.Width)
		cells[i] = int(exact)
		remainders[i] = exact - float64(cells[i])
		used += cells[i]
	}
	for ; used < b.Width; used++ {
		best := 0
		for i := range remainders {
			if remainders[i] > remainders[best] {
				best = i
			}
		}
		cells[best]++
		remainders[best] = -1
	}
	return cells
}

// Render returns the bar followed by a legend with percentages
func (b *ShareBar) Render() string {
	total := b.Total()
	if total <= 0 {
		return tuistyles.InfoStyle.Render("Nothing to show")
	}

	var bar strings.Builder
	for i, n := range b.Cells() {
		if n == 0 {
			continue
		}
		bar.WriteString(lipgloss.NewStyle().Foreground(b.Segments[i].Color).Render(strings.Repeat("█", n)))
	}

	legend := make([]string, 0, len(b.Segments))
	for _, s := range b.Segments {
		swatch := lipgloss.NewStyle().Foreground(s.Color).Render("■")
		legend = append(legend, fmt.Sprintf("%s %s %.1f%%", swatch, s.Label, math.Max(s.Value, 0)/total*100))
	}
	return bar.String() + "\n" + tuistyles.MetricLabelStyle.Render(strings.Join(legend, "  "))
}

// Spinner is a frame-based loading indicator
type Spinner struct {
	Frame   int
	Message string
}

// NewSpinner creates a new spinner
func NewSpinner(message string) *Spinner {
	return &Spinner{Message: message}
}

// Next advances the spinner to the next frame
func (s *Spinner) Next() {
	s.Frame++
}

// Render returns the current spinner frame
func (s *Spinner) Render() string {
	frames := []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"}
	rendered := lipgloss.NewStyle().
		Foreground(tuistyles.ColorPrimary).
		Bold(true).
		Render(frames[s.Frame%len(frames)])
	if s.Message != "" {
		rendered += " " + s.Message
	}
	return rendered
}

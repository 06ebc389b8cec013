package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mkhegde/calcmymoney/internal/tui/tuistyles"
)

const yAxisWidth = 9

// Series is one plotted line of a chart
type Series struct {
	Name   string
	Points []float64
	Color  lipgloss.Color
}

// LineChart plots money series against years in plain text
type LineChart struct {
	Title  string
	Series []Series
	Width  int
	Height int
	XLabel string
}

// NewLineChart creates a 60x12 chart
func NewLineChart(title string) *LineChart {
	return &LineChart{Title: title, Width: 60, Height: 12}
}

// Add appends a series
func (c *LineChart) Add(name string, points []float64, color lipgloss.Color) *LineChart {
	c.Series = append(c.Series, Series{Name: name, Points: points, Color: color})
	return c
}

// WithSize sets the chart dimensions
func (c *LineChart) WithSize(width, height int) *LineChart {
	c.Width = width
	c.Height = height
	return c
}

// WithXLabel sets the caption under the x axis
func (c *LineChart) WithXLabel(label string) *LineChart {
	c.XLabel = label
	return c
}

// Bounds returns the y range across every series. A flat range is widened
// so points still map onto the grid.
func (c *LineChart) Bounds() (float64, float64) {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, s := range c.Series {
		for _, p := range s.Points {
			lo = math.Min(lo, p)
			hi = math.Max(hi, p)
		}
	}
	if math.IsInf(lo, 1) {
		return 0, 1
	}
	if lo >= 0 {
		lo = 0
	}
	if hi == lo {
		hi = lo + 1
	}
	return lo, hi
}

// Render returns the styled chart
func (c *LineChart) Render() string {
	plotWidth := c.Width - yAxisWidth - 3
	if len(c.Series) == 0 || plotWidth < 2 || c.Height < 2 {
		return tuistyles.InfoStyle.Render("No data to display")
	}

	lo, hi := c.Bounds()
	grid := make([][]rune, c.Height)
	for i := range grid {
		grid[i] = []rune(strings.Repeat(" ", plotWidth))
	}

	for idx, s := range c.Series {
		mark := seriesMark(idx)
		prevX, prevY := -1, -1
		for i, p := range s.Points {
			x := 0
			if len(s.Points) > 1 {
				x = int(math.Round(float64(i) / float64(len(s.Points)-1) * float64(plotWidth-1)))
			}
			y := c.Height - 1 - int(math.Round((p-lo)/(hi-lo)*float64(c.Height-1)))
			if prevX >= 0 {
				drawLine(grid, prevX, prevY, x, y)
			}
			setCell(grid, x, y, mark)
			prevX, prevY = x, y
		}
	}

	var out strings.Builder
	if c.Title != "" {
		out.WriteString(lipgloss.NewStyle().Bold(true).Foreground(tuistyles.ColorPrimary).Render(c.Title))
		out.WriteString("\n")
	}

	axis := lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Width(yAxisWidth).Align(lipgloss.Right)
	for i, row := range grid {
		label := ""
		if i == 0 || i == c.Height-1 || i == c.Height/2 {
			label = FormatAxisValue(hi - float64(i)/float64(c.Height-1)*(hi-lo))
		}
		out.WriteString(axis.Render(label))
		out.WriteString(" │ ")
		out.WriteString(string(row))
		out.WriteString("\n")
	}
	out.WriteString(strings.Repeat(" ", yAxisWidth+1))
	out.WriteString("└")
	out.WriteString(strings.Repeat("─", plotWidth+1))

	if c.XLabel != "" {
		out.WriteString("\n")
		out.WriteString(lipgloss.NewStyle().Foreground(tuistyles.ColorMuted).Italic(true).Render(
			strings.Repeat(" ", yAxisWidth+3) + c.XLabel))
	}

	if len(c.Series) > 1 {
		items := make([]string, 0, len(c.Series))
		for i, s := range c.Series {
			items = append(items, lipgloss.NewStyle().Foreground(s.Color).Render(string(seriesMark(i)))+" "+s.Name)
		}
		out.WriteString("\n")
		out.WriteString(tuistyles.MetricLabelStyle.Render(strings.Join(items, "  ")))
	}
	return out.String()
}

func seriesMark(index int) rune {
	marks := []rune{'●', '■', '▲', '♦'}
	return marks[index%len(marks)]
}

func setCell(grid [][]rune, x, y int, r rune) {
	if y >= 0 && y < len(grid) && x >= 0 && x < len(grid[y]) {
		grid[y][x] = r
	}
}

// drawLine joins two cells with Bresenham's algorithm without overwriting
// marks already placed.
func drawLine(grid [][]rune, x0, y0, x1, y1 int) {
	dx, dy := abs(x1-x0), abs(y1-y0)
	sx, sy := -1, -1
	if x0 < x1 {
		sx = 1
	}
	if y0 < y1 {
		sy = 1
	}
	err := dx - dy
	for {
		if y0 >= 0 && y0 < len(grid) && x0 >= 0 && x0 < len(grid[y0]) && grid[y0][x0] == ' ' {
			grid[y0][x0] = '·'
		}
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x0 += sx
		}
		if e2 < dx {
			err += dx
			y0 += sy
		}
	}
}

// FormatAxisValue abbreviates a money value for the y axis
func FormatAxisValue(value float64) string {
	switch {
	case math.Abs(value) >= 1e6:
		return fmt.Sprintf("£%.1fM", value/1e6)
	case math.Abs(value) >= 1e3:
		return fmt.Sprintf("£%.0fK", value/1e3)
	default:
		return fmt.Sprintf("£%.0f", value)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

package output

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ConsoleFormatter renders a report as aligned plain text.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(report *Report) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, strings.Repeat("=", 60))
	fmt.Fprintln(&buf, strings.ToUpper(report.Title))
	if report.Subtitle != "" {
		fmt.Fprintln(&buf, report.Subtitle)
	}
	fmt.Fprintln(&buf, strings.Repeat("=", 60))

	width := 0
	for _, f := range report.Summary {
		if n := utf8.RuneCountInString(f.Label); n > width {
			width = n
		}
	}
	for _, f := range report.Summary {
		fmt.Fprintf(&buf, "%s:%s %s\n", f.Label, strings.Repeat(" ", width-utf8.RuneCountInString(f.Label)), f.Value)
	}

	for _, t := range report.Tables {
		fmt.Fprintln(&buf)
		writeTable(&buf, t)
	}

	if len(report.Notes) > 0 {
		fmt.Fprintln(&buf)
		fmt.Fprintln(&buf, "NOTES:")
		for _, n := range report.Notes {
			fmt.Fprintf(&buf, "• %s\n", n)
		}
	}
	return buf.Bytes(), nil
}

func writeTable(buf *bytes.Buffer, t Table) {
	widths := make([]int, len(t.Columns))
	for i, col := range t.Columns {
		widths[i] = utf8.RuneCountInString(col)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			if n := utf8.RuneCountInString(row[i]); n > widths[i] {
				widths[i] = n
			}
		}
	}

	total := 0
	for _, w := range widths {
		total += w + 2
	}

	if t.Title != "" {
		fmt.Fprintln(buf, t.Title)
		fmt.Fprintln(buf, strings.Repeat("-", utf8.RuneCountInString(t.Title)))
	}
	writeRow(buf, t.Columns, widths)
	fmt.Fprintln(buf, strings.Repeat("-", total))
	for _, row := range t.Rows {
		writeRow(buf, row, widths)
	}
}

// writeRow left-aligns the first column and right-aligns the rest.
func writeRow(buf *bytes.Buffer, cells []string, widths []int) {
	parts := make([]string, 0, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		pad := strings.Repeat(" ", w-utf8.RuneCountInString(cell))
		if i == 0 {
			parts = append(parts, cell+pad)
		} else {
			parts = append(parts, pad+cell)
		}
	}
	fmt.Fprintln(buf, strings.TrimRight(strings.Join(parts, "  "), " "))
}

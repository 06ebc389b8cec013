package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
)

// Field is one labelled figure in a report summary.
type Field struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Table is a titled grid of preformatted cells.
type Table struct {
	Title   string     `json:"title"`
	Columns []string   `json:"columns"`
	Rows    [][]string `json:"rows"`
}

// Report is the format-neutral rendering of a calculator result. Data holds
// the raw result for machine-readable formats.
type Report struct {
	Title    string   `json:"title"`
	Subtitle string   `json:"subtitle,omitempty"`
	Summary  []Field  `json:"summary"`
	Tables   []Table  `json:"tables,omitempty"`
	Notes    []string `json:"notes,omitempty"`
	Data     any      `json:"-"`
}

// Add appends a summary field.
func (r *Report) Add(label, value string) *Report {
	r.Summary = append(r.Summary, Field{Label: label, Value: value})
	return r
}

// Field returns the value for label and whether it was present.
func (r *Report) Field(label string) (string, bool) {
	for _, f := range r.Summary {
		if f.Label == label {
			return f.Value, true
		}
	}
	return "", false
}

// Formatter renders a report in one output format.
type Formatter interface {
	Name() string
	Format(report *Report) ([]byte, error)
}

// FormatterFunc adapts a function to the Formatter interface.
type FormatterFunc struct {
	ID string
	F  func(report *Report) ([]byte, error)
}

func (f FormatterFunc) Name() string { return f.ID }

func (f FormatterFunc) Format(report *Report) ([]byte, error) { return f.F(report) }

var formatters = map[string]Formatter{}
var aliases = map[string]string{}

func register(f Formatter, alias ...string) {
	formatters[f.Name()] = f
	for _, a := range alias {
		aliases[a] = f.Name()
	}
}

func init() {
	register(ConsoleFormatter{}, "table", "text", "verbose")
	register(CSVFormatter{})
	register(JSONFormatter{Pretty: true})
	register(HTMLFormatter{}, "htm")
	register(PDFFormatter{})
}

// GetFormatterByName returns the formatter registered under name or one of
// its aliases, or nil.
func GetFormatterByName(name string) Formatter {
	name = strings.ToLower(strings.TrimSpace(name))
	if canonical, ok := aliases[name]; ok {
		name = canonical
	}
	return formatters[name]
}

// AvailableFormats lists the canonical formatter names.
func AvailableFormats() []string {
	names := make([]string, 0, len(formatters))
	for name := range formatters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// AvailableFormatAliases lists the alternative names accepted by GetFormatterByName.
func AvailableFormatAliases() []string {
	names := make([]string, 0, len(aliases))
	for name := range aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FormatFromPath guesses a format from a file extension, falling back to def.
func FormatFromPath(path, def string) string {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext != "" && GetFormatterByName(ext) != nil {
		return ext
	}
	return def
}

// Write renders report with the named format into w.
func Write(w io.Writer, format string, report *Report) error {
	f := GetFormatterByName(format)
	if f == nil {
		return fmt.Errorf("unsupported format: %s (available: %s)", format, strings.Join(AvailableFormats(), ", "))
	}
	data, err := f.Format(report)
	if err != nil {
		return fmt.Errorf("failed to format %s report: %w", f.Name(), err)
	}
	_, err = w.Write(data)
	return err
}

// SaveReport renders report into filename. An empty format is taken from the
// file extension.
func SaveReport(filename, format string, report *Report) error {
	if format == "" {
		format = FormatFromPath(filename, "console")
	}
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", filename, err)
	}
	defer file.Close()

	return Write(file, format, report)
}

// FormatCurrency formats an amount as pounds with thousands separators
func FormatCurrency(amount float64) string {
	d := decimal.NewFromFloat(amount).Round(2)
	sign := ""
	if d.IsNegative() {
		sign = "-"
		d = d.Abs()
	}
	s := d.StringFixed(2)
	whole, frac := s[:len(s)-3], s[len(s)-3:]
	return sign + "£" + groupThousands(whole) + frac
}

// FormatPercentage formats a percentage figure such as 12.5 as "12.50%"
func FormatPercentage(pct float64) string {
	return decimal.NewFromFloat(pct).StringFixed(2) + "%"
}

func groupThousands(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var sb strings.Builder
	lead := len(digits) % 3
	if lead > 0 {
		sb.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += 3 {
		if sb.Len() > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(digits[i : i+3])
	}
	return sb.String()
}

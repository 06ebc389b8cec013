package output

import (
	"bytes"
	"encoding/csv"
)

// CSVFormatter writes the summary as label/value rows followed by each table
// with its header row. Sections are separated by an empty record.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(report *Report) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	if err := w.Write([]string{"Field", "Value"}); err != nil {
		return nil, err
	}
	for _, f := range report.Summary {
		if err := w.Write([]string{f.Label, f.Value}); err != nil {
			return nil, err
		}
	}
	for _, t := range report.Tables {
		if err := w.Write([]string{}); err != nil {
			return nil, err
		}
		if err := w.Write(t.Columns); err != nil {
			return nil, err
		}
		for _, row := range t.Rows {
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

package output

import "encoding/json"

// JSONFormatter emits the raw calculator result when the report carries one,
// otherwise the report itself.
type JSONFormatter struct {
	Pretty bool
}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(report *Report) ([]byte, error) {
	var v any = report
	if report.Data != nil {
		v = report.Data
	}
	if j.Pretty {
		data, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(data, '\n'), nil
	}
	return json.Marshal(v)
}

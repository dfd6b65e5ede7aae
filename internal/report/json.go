package report

import (
	"encoding/json"
	"io"
)

// JSONWriter outputs the report as indented JSON.
type JSONWriter struct {
	output io.Writer
}

// NewJSONWriter creates a JSONWriter that outputs to w.
func NewJSONWriter(w io.Writer) *JSONWriter {
	return &JSONWriter{output: w}
}

// Write outputs the full report.
func (w *JSONWriter) Write(r *Report) (int, error) {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return 0, err
	}
	data = append(data, '\n')
	return w.output.Write(data)
}

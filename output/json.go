package output

import (
	"encoding/json"
	"io"
)

// JSONFormatter outputs all rows as a single JSON array of objects keyed by
// the header names
type JSONFormatter struct {
	writer io.Writer
}

// NewJSONFormatter creates a new JSON array formatter
func NewJSONFormatter(w io.Writer) *JSONFormatter {
	return &JSONFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes all rows as one JSON array
func (j *JSONFormatter) Format(header []string, rows [][]string) error {
	objects := make([]map[string]string, 0, len(rows))
	for _, row := range rows {
		objects = append(objects, rowObject(header, row))
	}
	return json.NewEncoder(j.writer).Encode(objects)
}

// JSONLFormatter outputs rows as JSON Lines (one JSON object per line)
type JSONLFormatter struct {
	writer io.Writer
}

// NewJSONLFormatter creates a new JSON Lines formatter
func NewJSONLFormatter(w io.Writer) *JSONLFormatter {
	return &JSONLFormatter{writer: w}
}

// SetOutput sets the output writer
func (j *JSONLFormatter) SetOutput(w io.Writer) {
	j.writer = w
}

// Format writes rows as JSON Lines
func (j *JSONLFormatter) Format(header []string, rows [][]string) error {
	encoder := json.NewEncoder(j.writer)
	for _, row := range rows {
		if err := encoder.Encode(rowObject(header, row)); err != nil {
			return err
		}
	}
	return nil
}

// rowObject pairs header names with row fields. Duplicate header names
// collapse to the last value, since JSON objects cannot repeat keys.
func rowObject(header, row []string) map[string]string {
	obj := make(map[string]string, len(header))
	for i, name := range header {
		if i < len(row) {
			obj[name] = row[i]
		}
	}
	return obj
}

// Package output provides formatters for writing query results to various
// output formats.
//
// All formatters consume the same shape: an ordered header and rows of
// string fields parallel to it. Duplicate header names are legal and are
// preserved by the positional formats (csv, table); the JSON formats key
// fields by name, so duplicates collapse to the last occurrence.
//
// # Supported Formats
//
//   - CSV: header row followed by comma-separated rows
//   - JSON: a single array of objects
//   - JSON Lines: one JSON object per line (suitable for streaming)
//   - Table: aligned text table
//
// # Basic Usage
//
//	formatter := output.NewCSVFormatter(os.Stdout)
//	if err := formatter.Format(header, rows); err != nil {
//	    log.Fatal(err)
//	}
package output

import (
	"fmt"
	"io"
)

// Formatter writes an ordered header and its rows in a specific format.
type Formatter interface {
	// Format writes the header and all rows
	Format(header []string, rows [][]string) error

	// SetOutput changes the output writer
	SetOutput(w io.Writer)
}

// New returns the formatter registered under the given format name, writing
// to w. Supported names: "csv", "json", "jsonl", "table".
func New(format string, w io.Writer) (Formatter, error) {
	switch format {
	case "csv":
		return NewCSVFormatter(w), nil
	case "json":
		return NewJSONFormatter(w), nil
	case "jsonl":
		return NewJSONLFormatter(w), nil
	case "table":
		return NewTableFormatter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

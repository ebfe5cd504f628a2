package output

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// TableFormatter outputs rows as an aligned text table
type TableFormatter struct {
	writer io.Writer
}

// NewTableFormatter creates a new table formatter
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{writer: w}
}

// SetOutput sets the output writer
func (t *TableFormatter) SetOutput(w io.Writer) {
	t.writer = w
}

// Format renders the header and rows as an aligned table
func (t *TableFormatter) Format(header []string, rows [][]string) error {
	tw := tablewriter.NewWriter(t.writer)
	tw.SetHeader(header)
	for _, row := range rows {
		tw.Append(row)
	}
	tw.Render()
	return nil
}

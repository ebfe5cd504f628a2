// Package table holds tabular data loaded from an external source as raw
// string fields, together with an inferred type per column.
//
// Every column starts provisionally typed as Integer and is demoted to Text
// the first time a value is observed that does not parse as a 64-bit signed
// integer. The demotion is permanent for the lifetime of the table: the only
// transition is Integer to Text.
//
// A Table is built once by a loader and treated as immutable afterwards.
// Queries borrow it read-only, which also makes it safe to scan from
// multiple goroutines at once.
package table

import (
	"fmt"
	"strconv"
)

// ColumnType classifies the values of a column.
type ColumnType int

const (
	// TypeInteger means every observed value in the column parses as a
	// 64-bit signed integer.
	TypeInteger ColumnType = iota

	// TypeText is the fallback type for everything else.
	TypeText
)

// String returns a human-readable name for the column type.
func (c ColumnType) String() string {
	switch c {
	case TypeInteger:
		return "integer"
	case TypeText:
		return "text"
	default:
		return fmt.Sprintf("ColumnType(%d)", int(c))
	}
}

// Infer folds one observed value into the current type of a column.
//
// It returns TypeInteger only when current is already TypeInteger and value
// parses fully as a 64-bit signed integer: an optional leading sign, digits,
// nothing else. Partial parses and surrounding whitespace demote to
// TypeText. Infer never fails.
func Infer(current ColumnType, value string) ColumnType {
	if current != TypeInteger {
		return TypeText
	}
	if _, err := strconv.ParseInt(value, 10, 64); err != nil {
		return TypeText
	}
	return TypeInteger
}

// Table is an in-memory table of raw string rows with a fixed column count.
type Table struct {
	columns []string
	types   []ColumnType
	rows    [][]string
}

// New creates an empty table with the given column names. All columns start
// provisionally typed as Integer.
func New(columns []string) *Table {
	return &Table{
		columns: columns,
		types:   make([]ColumnType, len(columns)),
	}
}

// Append adds one row and folds each of its fields into the owning column's
// inferred type.
//
// The row must carry exactly one field per column. A mismatched arity means
// the loader is broken and is rejected rather than ingested.
func (t *Table) Append(row []string) error {
	if len(row) != len(t.columns) {
		return fmt.Errorf("row has %d fields, table has %d columns", len(row), len(t.columns))
	}
	for i, field := range row {
		t.types[i] = Infer(t.types[i], field)
	}
	t.rows = append(t.rows, row)
	return nil
}

// Columns returns the ordered column names.
func (t *Table) Columns() []string {
	return t.columns
}

// Types returns the inferred type of each column, parallel to Columns.
func (t *Table) Types() []ColumnType {
	return t.types
}

// NumRows returns the number of ingested rows.
func (t *Table) NumRows() int {
	return len(t.rows)
}

// Row returns the i-th ingested row.
func (t *Table) Row(i int) []string {
	return t.rows[i]
}

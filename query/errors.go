package query

import "errors"

// Error kinds reported by the parser and the schema compiler. All of them
// are recoverable: they are reported once with a human-readable cause via
// fmt wrapping, terminate the query attempt, and are never retried.
var (
	// ErrSyntax is returned when the query text does not match the grammar.
	ErrSyntax = errors.New("syntax error")

	// ErrUnknownColumn is returned when a projection or a filter operand
	// names a column absent from the schema.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrTypeMismatch is returned when a filter compares two columns of
	// different inferred types.
	ErrTypeMismatch = errors.New("filter operand types differ")

	// ErrAmbiguousFilter is returned when both operands of a filter are
	// literals, leaving no column to anchor the comparison type.
	ErrAmbiguousFilter = errors.New("filter compares two constants")

	// ErrBadIntLiteral is returned when a literal compared against an
	// integer column does not parse as a 64-bit signed integer.
	ErrBadIntLiteral = errors.New("malformed integer literal")

	// ErrSchemaMismatch is returned when the column-name and column-type
	// counts differ. It indicates a defect in the loader, not user input.
	ErrSchemaMismatch = errors.New("column names and types out of sync")
)

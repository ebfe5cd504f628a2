package query

import "fmt"

// TokenType represents the type of a token
type TokenType int

const (
	// Keywords
	TokenProject TokenType = iota
	TokenFilter

	// Operators
	TokenEqual        // =
	TokenGreater      // >
	TokenGreaterEqual // >=

	// Literals
	TokenString // double-quoted alphanumeric literal
	TokenIdent  // bare alphanumeric run

	// Delimiters
	TokenComma // ,

	// Special
	TokenEOF
	TokenError
)

// Token represents a lexical token together with its byte offset in the
// query text.
type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

// Comparison is the test applied between a filter's two operands.
type Comparison int

const (
	CompareEqual          Comparison = iota // =
	CompareGreater                          // >
	CompareGreaterOrEqual                   // >=
)

// String returns the operator's source form.
func (c Comparison) String() string {
	switch c {
	case CompareEqual:
		return "="
	case CompareGreater:
		return ">"
	case CompareGreaterOrEqual:
		return ">="
	default:
		return fmt.Sprintf("Comparison(%d)", int(c))
	}
}

// Expr is an unresolved filter operand: either a reference to a column by
// name, or a quoted literal whose kind stays undetermined until compilation.
// The interface is sealed; ColumnRef and Literal are the only variants.
type Expr interface {
	exprNode()
}

// ColumnRef names a column by its header name.
type ColumnRef struct {
	Name string
}

func (ColumnRef) exprNode() {}

// Literal is a double-quoted literal carried as raw text.
type Literal struct {
	Value string
}

func (Literal) exprNode() {}

// Filter is a single comparison a row must satisfy.
type Filter struct {
	Left  Expr
	Op    Comparison
	Right Expr
}

// Query is a parsed query that has not been resolved against a schema yet.
type Query struct {
	Projections []string
	Filters     []Filter
}

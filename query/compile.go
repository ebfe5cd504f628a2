package query

import (
	"fmt"
	"strconv"

	"github.com/vegasq/csvq/table"
)

// CompiledQuery is a query validated against a specific schema: projection
// names resolved to column indices, literals lowered to typed constants,
// and every filter turned into a match function dispatched on its resolved
// type. It is immutable once built and can be run any number of times.
type CompiledQuery struct {
	projections []projection
	filters     []compiledFilter
}

// projection is one output field: the source column index and the name
// reported in the output header.
type projection struct {
	index int
	name  string
}

// compiledFilter tests one row. The match closure is dispatched on the
// filter's resolved type at compile time, so evaluation never re-examines
// operand kinds and the constant-kind mismatch class cannot occur.
type compiledFilter struct {
	match func(row []string) bool
}

// Compile resolves the query against a schema: the ordered column names and
// the inferred type of each column.
//
// Column names resolve by exact match. If a name repeats in the header, the
// last occurrence wins. Projections may repeat a column; each occurrence
// produces its own output field. Every filter needs at least one column
// operand to anchor its comparison type; literal operands are lowered under
// that type. Compile allocates the returned query and nothing else; it
// never mutates its inputs.
func (q *Query) Compile(names []string, types []table.ColumnType) (*CompiledQuery, error) {
	if len(names) != len(types) {
		return nil, fmt.Errorf("%w: %d names, %d types", ErrSchemaMismatch, len(names), len(types))
	}

	mapping := make(map[string]int, len(names))
	for i, name := range names {
		mapping[name] = i
	}

	compiled := &CompiledQuery{
		projections: make([]projection, 0, len(q.Projections)),
		filters:     make([]compiledFilter, 0, len(q.Filters)),
	}
	for _, name := range q.Projections {
		idx, ok := mapping[name]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownColumn, name)
		}
		compiled.projections = append(compiled.projections, projection{index: idx, name: name})
	}
	for _, f := range q.Filters {
		cf, err := compileFilter(f, mapping, types)
		if err != nil {
			return nil, err
		}
		compiled.filters = append(compiled.filters, cf)
	}
	return compiled, nil
}

// Header returns the output column names in projection order. Duplicate
// names are kept as they were requested.
func (c *CompiledQuery) Header() []string {
	header := make([]string, len(c.projections))
	for i, p := range c.projections {
		header[i] = p.name
	}
	return header
}

// resolveColumn maps a column-reference operand to its index. Literal
// operands carry no column affiliation and resolve to no index.
func resolveColumn(e Expr, mapping map[string]int) (idx int, isColumn bool, err error) {
	ref, ok := e.(ColumnRef)
	if !ok {
		return 0, false, nil
	}
	idx, known := mapping[ref.Name]
	if !known {
		return 0, false, fmt.Errorf("%w: %q", ErrUnknownColumn, ref.Name)
	}
	return idx, true, nil
}

// compileFilter resolves both operands, determines the filter's effective
// type, and lowers the filter into a typed match closure.
func compileFilter(f Filter, mapping map[string]int, types []table.ColumnType) (compiledFilter, error) {
	leftIdx, leftIsCol, err := resolveColumn(f.Left, mapping)
	if err != nil {
		return compiledFilter{}, err
	}
	rightIdx, rightIsCol, err := resolveColumn(f.Right, mapping)
	if err != nil {
		return compiledFilter{}, err
	}

	var ty table.ColumnType
	switch {
	case !leftIsCol && !rightIsCol:
		return compiledFilter{}, fmt.Errorf("%w: at least one operand must name a column", ErrAmbiguousFilter)
	case leftIsCol && rightIsCol:
		lt, rt := types[leftIdx], types[rightIdx]
		if lt != rt {
			return compiledFilter{}, fmt.Errorf("%w: %s vs %s", ErrTypeMismatch, lt, rt)
		}
		ty = lt
	case leftIsCol:
		ty = types[leftIdx]
	default:
		ty = types[rightIdx]
	}

	op := f.Op
	if ty == table.TypeInteger {
		left, err := intOperand(f.Left, leftIdx, leftIsCol)
		if err != nil {
			return compiledFilter{}, err
		}
		right, err := intOperand(f.Right, rightIdx, rightIsCol)
		if err != nil {
			return compiledFilter{}, err
		}
		return compiledFilter{match: func(row []string) bool {
			return compareInt(left(row), op, right(row))
		}}, nil
	}

	left := textOperand(f.Left, leftIdx, leftIsCol)
	right := textOperand(f.Right, rightIdx, rightIsCol)
	return compiledFilter{match: func(row []string) bool {
		return compareText(left(row), op, right(row))
	}}, nil
}

// intOperand lowers one operand of an integer-typed filter into a getter.
//
// A literal must parse as int64 now; a column operand parses its field at
// evaluation time. The latter cannot fail for rows of the schema the query
// was compiled against, since the column's Integer type means every stored
// field parses. A failure there means the row belongs to a different
// schema, which is a caller defect, and the getter panics.
func intOperand(e Expr, idx int, isColumn bool) (func(row []string) int64, error) {
	if !isColumn {
		lit := e.(Literal)
		val, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrBadIntLiteral, lit.Value)
		}
		return func([]string) int64 { return val }, nil
	}
	return func(row []string) int64 {
		v, err := strconv.ParseInt(row[idx], 10, 64)
		if err != nil {
			panic(fmt.Sprintf("query: field %d = %q does not parse as integer; row does not belong to the compiled schema", idx, row[idx]))
		}
		return v
	}, nil
}

// textOperand lowers one operand of a text-typed filter into a getter.
func textOperand(e Expr, idx int, isColumn bool) func(row []string) string {
	if !isColumn {
		lit := e.(Literal)
		return func([]string) string { return lit.Value }
	}
	return func(row []string) string { return row[idx] }
}

// compareInt applies op to two integers
func compareInt(left int64, op Comparison, right int64) bool {
	switch op {
	case CompareEqual:
		return left == right
	case CompareGreater:
		return left > right
	case CompareGreaterOrEqual:
		return left >= right
	default:
		return false
	}
}

// compareText applies op to two strings, ordered lexicographically
func compareText(left string, op Comparison, right string) bool {
	switch op {
	case CompareEqual:
		return left == right
	case CompareGreater:
		return left > right
	case CompareGreaterOrEqual:
		return left >= right
	default:
		return false
	}
}

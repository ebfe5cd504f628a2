package query

import "github.com/vegasq/csvq/table"

// onRow applies every filter to one row in list order with short-circuit
// AND and, when all pass, extracts the projected fields in projection
// order. The returned slice shares the row's field strings; only the slice
// header is allocated.
//
// The row must belong to the schema the query was compiled against. A row
// from an incompatible schema violates the compiler's invariants and makes
// onRow panic rather than produce wrong data.
func (c *CompiledQuery) onRow(row []string) ([]string, bool) {
	for _, f := range c.filters {
		if !f.match(row) {
			return nil, false
		}
	}
	out := make([]string, len(c.projections))
	for i, p := range c.projections {
		out[i] = row[p.index]
	}
	return out, true
}

// Results lazily iterates the rows a compiled query selects from a table,
// preserving table row order. It keeps no state beyond the position of the
// scan; the consumer drives it by pulling, and dropping it early simply
// stops the scan.
type Results struct {
	query *CompiledQuery
	tbl   *table.Table
	next  int
}

// Run starts a fresh scan of the table. Every call returns an independent
// iterator, so the same compiled query can be run repeatedly with
// identical output. The table must be the one whose schema the query was
// compiled against.
func (c *CompiledQuery) Run(tbl *table.Table) *Results {
	return &Results{query: c, tbl: tbl}
}

// Next returns the next matching output row, or false when the scan is
// exhausted. The returned fields alias the table's storage and stay valid
// for as long as the table does.
func (r *Results) Next() ([]string, bool) {
	for r.next < r.tbl.NumRows() {
		row := r.tbl.Row(r.next)
		r.next++
		if out, ok := r.query.onRow(row); ok {
			return out, true
		}
	}
	return nil, false
}

// Header returns the output header, parallel to the rows Next produces.
func (r *Results) Header() []string {
	return r.query.Header()
}

// Execute compiles q against the table's schema and starts a scan in one
// step.
func Execute(q *Query, tbl *table.Table) (*Results, error) {
	compiled, err := q.Compile(tbl.Columns(), tbl.Types())
	if err != nil {
		return nil, err
	}
	return compiled.Run(tbl), nil
}

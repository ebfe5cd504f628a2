// Package query implements the PROJECT/FILTER query language over tabular
// string data.
//
// The language selects an ordered list of columns and optionally restricts
// the rows with a conjunction of comparisons:
//
//	PROJECT name, age FILTER age >= "30", city = "paris"
//
// A filter operand is either a bare alphabetic column name or a
// double-quoted alphanumeric literal; the operators are =, > and >=. The
// keywords PROJECT and FILTER are case-sensitive. Whether a literal is
// compared as text or as a 64-bit integer is not part of the syntax: it is
// decided at compile time by the inferred type of the column it is compared
// against.
//
// Queries go through a two-stage pipeline:
//
//  1. Parse turns the query text into an unresolved Query. It is a pure
//     function with no knowledge of any schema.
//  2. Compile resolves column names to indices against a table's schema,
//     validates operand types, lowers literals, and produces a
//     CompiledQuery ready to run.
//
// Running a compiled query scans the table lazily, row by row:
//
//	q, err := query.Parse(`PROJECT name FILTER age > "30"`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	results, err := query.Execute(q, tbl)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for row, ok := results.Next(); ok; row, ok = results.Next() {
//	    fmt.Println(row)
//	}
//
// Parsing and compilation report the error kinds declared in errors.go; all
// of them are recoverable and terminate the query attempt without touching
// the table.
package query

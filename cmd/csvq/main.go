// Command csvq queries delimited text and parquet files with a small
// PROJECT/FILTER language.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/vegasq/csvq/output"
	"github.com/vegasq/csvq/query"
	"github.com/vegasq/csvq/reader"
	"github.com/vegasq/csvq/table"
)

var (
	queryFlag  = flag.String("q", "", "Query to run (e.g. 'PROJECT name, age FILTER age > \"30\"')")
	formatFlag = flag.String("f", "csv", "Output format: csv, json, jsonl, table")
	delimFlag  = flag.String("d", ",", "Field delimiter for delimited text input (single character, or \\t)")
	limitFlag  = flag.Int("limit", 0, "Limit number of output rows (0 = unlimited)")
	schemaFlag = flag.Bool("schema", false, "Show the inferred schema instead of data")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [options] <file>\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A tool to query delimited text and parquet files.\n\n")
		fmt.Fprintf(os.Stderr, "IMPORTANT: All flags must come BEFORE the file argument.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s -q \"PROJECT name\" data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q 'PROJECT name, age FILTER age >= \"30\"' -f table data.csv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s -q \"PROJECT id\" -d ';' data.dsv\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s --schema data.parquet\n", os.Args[0])
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Error: expected exactly one input file\n\n")
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), *queryFlag, *formatFlag, *delimFlag, *limitFlag, *schemaFlag, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// run loads the input file, evaluates the query, and writes the result.
func run(path, queryText, format, delim string, limit int, showSchema bool, w io.Writer) error {
	if limit < 0 {
		return fmt.Errorf("-limit must be non-negative, got %d", limit)
	}
	if showSchema && queryText != "" {
		return fmt.Errorf("--schema and -q cannot be used together")
	}
	comma, err := delimiterRune(delim)
	if err != nil {
		return err
	}

	tbl, err := reader.Load(path, comma)
	if err != nil {
		return err
	}

	if showSchema {
		return printSchema(tbl, w)
	}
	if queryText == "" {
		return fmt.Errorf("missing -q query")
	}

	q, err := query.Parse(queryText)
	if err != nil {
		return err
	}
	results, err := query.Execute(q, tbl)
	if err != nil {
		return err
	}

	formatter, err := output.New(format, w)
	if err != nil {
		return err
	}

	var rows [][]string
	for {
		row, ok := results.Next()
		if !ok {
			break
		}
		rows = append(rows, row)
		if limit > 0 && len(rows) >= limit {
			break
		}
	}
	return formatter.Format(results.Header(), rows)
}

// delimiterRune validates the -d flag value. The two-character escape "\t"
// is accepted as a convenience for TSV input.
func delimiterRune(s string) (rune, error) {
	if s == `\t` {
		return '\t', nil
	}
	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	return runes[0], nil
}

// printSchema writes one "name<TAB>type" line per column.
func printSchema(tbl *table.Table, w io.Writer) error {
	types := tbl.Types()
	for i, name := range tbl.Columns() {
		if _, err := fmt.Fprintf(w, "%s\t%s\n", name, types[i]); err != nil {
			return err
		}
	}
	return nil
}

// Package reader loads tabular data into an in-memory table.
//
// Two sources are supported: delimited text (CSV and friends, any
// single-rune delimiter) and Apache Parquet files via the
// github.com/parquet-go/parquet-go library. Both loaders produce the same
// thing, a *table.Table of raw string fields, and feed every ingested
// field through the table's column type inference, so a column of integers
// queries the same way regardless of the file format it came from.
//
// Example:
//
//	tbl, err := reader.Load("data.csv", ',')
//	if err != nil {
//	    log.Fatal(err)
//	}
package reader

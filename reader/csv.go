package reader

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vegasq/csvq/table"
)

// LoadCSV reads delimited text from r into a table. The first record is the
// header; every following record must carry the same number of fields.
// comma is the field delimiter (',' for CSV, '\t' for TSV, and so on).
//
// The reader does not have to be buffered; encoding/csv buffers internally.
func LoadCSV(r io.Reader, comma rune) (*table.Table, error) {
	cr := csv.NewReader(r)
	cr.Comma = comma

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("input has no header row")
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	tbl := table.New(header)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if err := tbl.Append(record); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// LoadCSVFile opens and reads a delimited text file.
func LoadCSVFile(path string, comma rune) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	tbl, err := LoadCSV(f, comma)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tbl, nil
}

// Load reads path into a table, choosing the loader by file extension:
// ".parquet" uses the parquet loader, everything else the delimited-text
// loader with the given delimiter.
func Load(path string, comma rune) (*table.Table, error) {
	if strings.EqualFold(filepath.Ext(path), ".parquet") {
		return LoadParquetFile(path)
	}
	return LoadCSVFile(path, comma)
}

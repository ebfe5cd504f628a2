package reader

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/parquet-go/parquet-go"

	"github.com/vegasq/csvq/table"
)

// LoadParquetFile reads a parquet file into a table. Column order follows
// the parquet schema; every value is rendered to its string form, so an
// integer column comes out of type inference as Integer exactly as it would
// from delimited text. The whole file is loaded into memory.
func LoadParquetFile(path string) (*table.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	stat, err := f.Stat()
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	pqFile, err := parquet.OpenFile(f, stat.Size())
	if err != nil {
		return nil, fmt.Errorf("failed to open parquet file: %w", err)
	}

	fields := pqFile.Schema().Fields()
	columns := make([]string, len(fields))
	for i, field := range fields {
		columns[i] = field.Name()
	}

	tbl := table.New(columns)
	pr := parquet.NewReader(pqFile)
	defer func() { _ = pr.Close() }()

	for {
		row := make(map[string]interface{}, len(columns))
		if err := pr.Read(&row); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		record := make([]string, len(columns))
		for i, name := range columns {
			record[i] = formatValue(row[name])
		}
		if err := tbl.Append(record); err != nil {
			return nil, err
		}
	}
	return tbl, nil
}

// formatValue renders a parquet value the way it would appear in a
// delimited-text cell.
func formatValue(v interface{}) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case int32:
		return strconv.FormatInt(int64(val), 10)
	case int64:
		return strconv.FormatInt(val, 10)
	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	default:
		return fmt.Sprintf("%v", val)
	}
}

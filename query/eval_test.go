package query

import (
	"reflect"
	"strings"
	"testing"

	"github.com/vegasq/csvq/table"
)

// peopleTable returns a table with name (text), age (integer) and city
// (text) columns.
func peopleTable(t *testing.T) *table.Table {
	t.Helper()
	return newTable(t,
		[]string{"name", "age", "city"},
		[][]string{
			{"alice", "30", "paris"},
			{"bob", "25", "rome"},
			{"carol", "35", "paris"},
			{"dave", "9", "oslo"},
		},
	)
}

// collect drains a result scan into a row slice.
func collect(r *Results) [][]string {
	var rows [][]string
	for {
		row, ok := r.Next()
		if !ok {
			return rows
		}
		rows = append(rows, row)
	}
}

func TestRun_NoFilters(t *testing.T) {
	tbl := peopleTable(t)
	results, err := Execute(mustParse(t, "PROJECT name"), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := [][]string{{"alice"}, {"bob"}, {"carol"}, {"dave"}}
	if got := collect(results); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRun_IntegerComparisonIsNumeric(t *testing.T) {
	tbl := peopleTable(t)

	// Numerically 9 < 10, lexicographically "9" > "10". The age column is
	// Integer, so the numeric order must win and exclude dave.
	results, err := Execute(mustParse(t, `PROJECT name FILTER age >= "10"`), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	want := [][]string{{"alice"}, {"bob"}, {"carol"}}
	if got := collect(results); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRun_IntegerFilters(t *testing.T) {
	tbl := peopleTable(t)

	tests := []struct {
		name  string
		query string
		want  [][]string
	}{
		{"greater", `PROJECT name FILTER age > "25"`, [][]string{{"alice"}, {"carol"}}},
		{"greater or equal", `PROJECT name FILTER age >= "25"`, [][]string{{"alice"}, {"bob"}, {"carol"}}},
		{"equal", `PROJECT name FILTER age = "25"`, [][]string{{"bob"}}},
		{"literal on the left", `PROJECT name FILTER "25" >= age`, [][]string{{"bob"}, {"dave"}}},
		{"no match", `PROJECT name FILTER age > "99"`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Execute(mustParse(t, tt.query), tbl)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := collect(results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_TextFilters(t *testing.T) {
	tbl := peopleTable(t)

	tests := []struct {
		name  string
		query string
		want  [][]string
	}{
		{"equality", `PROJECT name FILTER city = "paris"`, [][]string{{"alice"}, {"carol"}}},
		{"lexicographic order", `PROJECT name FILTER name > "bob"`, [][]string{{"carol"}, {"dave"}}},
		{"column to column", `PROJECT name FILTER city > name`, [][]string{{"alice"}, {"bob"}, {"carol"}, {"dave"}}},
		{"column to column no match", `PROJECT name FILTER name > city`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := Execute(mustParse(t, tt.query), tbl)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if got := collect(results); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rows = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRun_ConjunctionOfFilters(t *testing.T) {
	tbl := peopleTable(t)

	results, err := Execute(mustParse(t, `PROJECT name FILTER city = "paris", age > "30"`), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	want := [][]string{{"carol"}}
	if got := collect(results); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRun_ProjectionOrderAndDuplicates(t *testing.T) {
	tbl := peopleTable(t)

	results, err := Execute(mustParse(t, `PROJECT city, name, city FILTER name = "bob"`), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := results.Header(); !reflect.DeepEqual(got, []string{"city", "name", "city"}) {
		t.Errorf("Header() = %v, want [city name city]", got)
	}
	want := [][]string{{"rome", "bob", "rome"}}
	if got := collect(results); !reflect.DeepEqual(got, want) {
		t.Errorf("rows = %v, want %v", got, want)
	}
}

func TestRun_Idempotent(t *testing.T) {
	tbl := peopleTable(t)
	q := mustParse(t, `PROJECT name, age FILTER age > "20"`)
	compiled, err := q.Compile(tbl.Columns(), tbl.Types())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	first := collect(compiled.Run(tbl))
	second := collect(compiled.Run(tbl))
	if !reflect.DeepEqual(first, second) {
		t.Errorf("two runs differ: %v vs %v", first, second)
	}
}

func TestRun_EmptyTable(t *testing.T) {
	tbl := table.New([]string{"a"})
	results, err := Execute(mustParse(t, "PROJECT a"), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if row, ok := results.Next(); ok {
		t.Errorf("Next() = %v on empty table, want exhausted", row)
	}
}

func TestRun_LazyPull(t *testing.T) {
	tbl := peopleTable(t)
	results, err := Execute(mustParse(t, "PROJECT name"), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	// Pulling a single row and dropping the iterator is fine; nothing else
	// is buffered or scanned.
	row, ok := results.Next()
	if !ok || row[0] != "alice" {
		t.Errorf("first pull = %v %v, want [alice] true", row, ok)
	}
}

func TestRun_OutputAliasesTableStorage(t *testing.T) {
	tbl := peopleTable(t)
	results, err := Execute(mustParse(t, "PROJECT name"), tbl)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	row, _ := results.Next()
	// Same backing string as the table's field, not a copy of the content.
	if &row[0] == &tbl.Row(0)[0] {
		t.Error("output slice must be a fresh slice header")
	}
	if row[0] != tbl.Row(0)[0] {
		t.Errorf("projected field = %q, want %q", row[0], tbl.Row(0)[0])
	}
}

func TestRun_ForeignSchemaRowPanics(t *testing.T) {
	// Compile against a table where v is Integer, run against one where it
	// is not. That breaks the compiler's guarantee and must fail loudly.
	intTbl := newTable(t, []string{"v"}, [][]string{{"1"}})
	textTbl := newTable(t, []string{"v"}, [][]string{{"abc"}})

	q := mustParse(t, `PROJECT v FILTER v > "0"`)
	compiled, err := q.Compile(intTbl.Columns(), intTbl.Types())
	if err != nil {
		t.Fatalf("Compile() error = %v", err)
	}

	defer func() {
		r := recover()
		if r == nil {
			t.Fatal("expected panic when scanning a row from a foreign schema")
		}
		if !strings.Contains(r.(string), "does not belong to the compiled schema") {
			t.Errorf("panic message = %v", r)
		}
	}()
	compiled.Run(textTbl).Next()
}

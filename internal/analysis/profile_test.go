package analysis

import (
	"math"
	"strings"
	"testing"

	"github.com/KaramelBytes/moonbase-cli/internal/parser"
	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

var crewRows = []string{
	"name,agency,launch,flights,notes",
	"Ann,NASA,2021-04-01,2,first",
	"Bo,ESA,2022-05-02,1,second",
	"Cy,NASA,2023-06-03,3",
	"Di,NASA,2024-07-04,,fourth",
}

func TestProfileKindsAndStats(t *testing.T) {
	tbl := table.Build(parser.ParseCSV(strings.Join(crewRows, "\n")))
	rep := Profile("crew.csv", tbl, DefaultOptions())

	if rep.Rows != 4 || len(rep.Cols) != 5 {
		t.Fatalf("rows=%d cols=%d", rep.Rows, len(rep.Cols))
	}
	byName := map[string]ColumnSummary{}
	for _, c := range rep.Cols {
		byName[c.Name] = c
	}
	if k := byName["agency"].Kind; k != KindCategorical {
		t.Fatalf("agency kind=%s", k)
	}
	if k := byName["launch"].Kind; k != KindDatetime {
		t.Fatalf("launch kind=%s", k)
	}
	f := byName["flights"]
	if f.Kind != KindNumeric || f.Missing != 1 || f.Numeric != 3 {
		t.Fatalf("flights summary: %+v", f)
	}
	if f.Min != 1 || f.Max != 3 || math.Abs(f.Mean-2) > 1e-9 || math.Abs(f.Std-1) > 1e-9 {
		t.Fatalf("flights stats: %+v", f)
	}
	if n := byName["notes"]; n.Missing != 1 || n.NonNull != 3 {
		t.Fatalf("notes counts: %+v", n)
	}
	if len(rep.Warnings) != 1 || !strings.Contains(rep.Warnings[0], "1 rows have fewer fields") {
		t.Fatalf("warnings: %v", rep.Warnings)
	}

	md := rep.Markdown()
	for _, want := range []string{"[DATASET SUMMARY]", "File: crew.csv", "Rows: 4", "flights: numeric", "agency: categorical", "NASA(3)", "[NOTES]"} {
		if !strings.Contains(md, want) {
			t.Fatalf("markdown missing %q:\n%s", want, md)
		}
	}
}

func TestProfileDuplicateHeaders(t *testing.T) {
	tbl := table.Build([][]string{{"a", "a", "b"}, {"1", "2", "x"}})
	rep := Profile("", tbl, DefaultOptions())
	if len(rep.Cols) != 2 {
		t.Fatalf("cols=%d", len(rep.Cols))
	}
	if len(rep.Warnings) == 0 || !strings.Contains(rep.Warnings[0], "duplicate headers a") {
		t.Fatalf("warnings: %v", rep.Warnings)
	}
}

func TestProfileEmpty(t *testing.T) {
	rep := Profile("empty.csv", table.Build(nil), DefaultOptions())
	if rep.Rows != 0 || len(rep.Cols) != 0 {
		t.Fatalf("unexpected report: %+v", rep)
	}
	if !strings.Contains(rep.Markdown(), "Columns: 0") {
		t.Fatalf("markdown: %s", rep.Markdown())
	}
}

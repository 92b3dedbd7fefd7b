package parser_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/KaramelBytes/moonbase-cli/internal/parser"
)

func TestParseFileCSV(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "flights.csv")
	content := "Country,Flights\nUSA,3\nUSA,2\nChina,5\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 4 {
		t.Fatalf("rows=%d want 4", len(rows))
	}
	if rows[3][0] != "China" || rows[3][1] != "5" {
		t.Fatalf("unexpected last row: %q", rows[3])
	}
}

func TestParseFileTSVByExtension(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "crew.TSV")
	if err := os.WriteFile(p, []byte("name\trole\nAnn\tPilot, senior\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	rows, err := parser.ParseFile(p)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(rows) != 2 || rows[1][1] != "Pilot, senior" {
		t.Fatalf("unexpected rows: %q", rows)
	}
}

func TestParseFileMissing(t *testing.T) {
	_, err := parser.ParseFile(filepath.Join(t.TempDir(), "nope.csv"))
	if err == nil {
		t.Fatalf("expected read error")
	}
}

func TestDelimiterFor(t *testing.T) {
	cases := map[string]rune{"": ',', "comma": ',', "tab": '\t', ";": ';', "pipe": '|'}
	for in, want := range cases {
		got, err := parser.DelimiterFor(in)
		if err != nil || got != want {
			t.Errorf("DelimiterFor(%q) = %q, %v; want %q", in, got, err, want)
		}
	}
	if _, err := parser.DelimiterFor("#"); !errors.Is(err, parser.ErrUnsupported) {
		t.Fatalf("expected ErrUnsupported, got %v", err)
	}
}

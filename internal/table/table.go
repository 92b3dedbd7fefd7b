// Package table holds the in-memory dataset built from one CSV load.
package table

import (
	"math"
	"strconv"
	"strings"
)

// Table is an ordered header list plus rows keyed by header name.
// Tables are not modified after Build; a new load produces a new Table.
type Table struct {
	headers []string
	// index maps a header name to its last position; duplicate names collide.
	index map[string]int
	rows  []Row
}

// Row is one data record. Fields are kept positionally; lookups go through
// the owning table's header index.
type Row struct {
	fields []string
	index  map[string]int
}

// Build consumes the first parsed row as headers and projects every later row
// by position. Rows shorter than the header leave trailing columns absent.
func Build(rows [][]string) *Table {
	t := &Table{index: map[string]int{}}
	if len(rows) == 0 {
		return t
	}
	t.headers = append([]string(nil), rows[0]...)
	for i, h := range t.headers {
		t.index[h] = i
	}
	t.rows = make([]Row, 0, len(rows)-1)
	for _, rec := range rows[1:] {
		if len(rec) == 0 {
			continue
		}
		t.rows = append(t.rows, Row{fields: append([]string(nil), rec...), index: t.index})
	}
	return t
}

// Empty reports whether the table has no headers.
func (t *Table) Empty() bool { return t == nil || len(t.headers) == 0 }

// Headers returns a copy of the header names in file order.
func (t *Table) Headers() []string {
	if t == nil {
		return nil
	}
	return append([]string(nil), t.headers...)
}

// Len returns the number of data rows.
func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.rows)
}

// Rows returns the data rows in file order.
func (t *Table) Rows() []Row {
	if t == nil {
		return nil
	}
	return t.rows
}

// HasColumn reports whether name is one of the headers.
func (t *Table) HasColumn(name string) bool {
	if t == nil {
		return false
	}
	_, ok := t.index[name]
	return ok
}

// Column returns the present values of a column, skipping absent cells.
func (t *Table) Column(name string) []string {
	var out []string
	for _, r := range t.Rows() {
		if v, ok := r.Get(name); ok {
			out = append(out, v)
		}
	}
	return out
}

// Numbers returns the coercible values of a column in row order.
func (t *Table) Numbers(name string) []float64 {
	var out []float64
	for _, r := range t.Rows() {
		if x, ok := r.Number(name); ok {
			out = append(out, x)
		}
	}
	return out
}

// Get looks up a cell by header name. The boolean is false when the column is
// unknown or the row is too short to hold it; an empty cell is ("", true).
func (r Row) Get(name string) (string, bool) {
	i, ok := r.index[name]
	if !ok || i >= len(r.fields) {
		return "", false
	}
	return r.fields[i], true
}

// Number looks up a cell and coerces it with ToNumber.
func (r Row) Number(name string) (float64, bool) {
	v, ok := r.Get(name)
	if !ok {
		return 0, false
	}
	return ToNumber(v)
}

// Fields returns the raw positional fields, including any beyond the header.
func (r Row) Fields() []string { return append([]string(nil), r.fields...) }

// ToNumber converts a cell to a finite number. Blank cells, NaN and infinities
// yield false rather than a sentinel value.
func ToNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

// Package analysis summarizes a loaded table column by column.
package analysis

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

// Column kinds.
const (
	KindNumeric     = "numeric"
	KindDatetime    = "datetime"
	KindCategorical = "categorical"
	KindText        = "text"
	KindEmpty       = "empty"
)

// Options controls profiling.
type Options struct {
	// SampleRows determines how many example rows to include in the report.
	SampleRows int
	// TopValues caps the category list per column.
	TopValues int
}

// DefaultOptions returns reasonable defaults for dataset profiling.
func DefaultOptions() Options {
	return Options{SampleRows: 5, TopValues: 5}
}

// Report is a markdown-friendly profile of a table.
type Report struct {
	Name     string
	Rows     int
	Cols     []ColumnSummary
	Samples  [][]string
	Warnings []string
}

// ColumnSummary captures inferred kind and statistics per column.
type ColumnSummary struct {
	Name    string
	Kind    string
	NonNull int
	Missing int
	Unique  int
	// Numeric stats, set when Kind is numeric
	Numeric int
	Min     float64
	Max     float64
	Mean    float64
	Std     float64
	// Categorical top values
	TopValues []CategoryCount
}

type CategoryCount struct {
	Value string
	Count int
}

// Profile builds a Report for t. name labels the report (usually the file name).
func Profile(name string, t *table.Table, opt Options) *Report {
	rep := &Report{Name: name, Rows: t.Len()}
	if t.Empty() {
		return rep
	}
	if opt.SampleRows <= 0 {
		opt.SampleRows = 5
	}
	if opt.TopValues <= 0 {
		opt.TopValues = 5
	}
	headers := t.Headers()
	if dup := lo.FindDuplicates(headers); len(dup) > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("duplicate headers %s: lookups use the last occurrence", strings.Join(dup, ", ")))
	}
	short := 0
	for i, row := range t.Rows() {
		if len(row.Fields()) < len(headers) {
			short++
		}
		if i < opt.SampleRows {
			rep.Samples = append(rep.Samples, row.Fields())
		}
	}
	if short > 0 {
		rep.Warnings = append(rep.Warnings, fmt.Sprintf("%d rows have fewer fields than the header; trailing cells treated as absent", short))
	}
	for _, h := range lo.Uniq(headers) {
		rep.Cols = append(rep.Cols, summarize(t, h, opt))
	}
	return rep
}

func summarize(t *table.Table, name string, opt Options) ColumnSummary {
	s := ColumnSummary{Name: name}
	var nums []float64
	var dtCnt, txtCnt int
	cats := map[string]int{}
	for _, row := range t.Rows() {
		v, ok := row.Get(name)
		v = strings.TrimSpace(v)
		if !ok || v == "" {
			s.Missing++
			continue
		}
		s.NonNull++
		cats[v]++
		if x, ok := table.ToNumber(v); ok {
			nums = append(nums, x)
			continue
		}
		if _, ok := parseTimeMaybe(v); ok {
			dtCnt++
			continue
		}
		txtCnt++
	}
	s.Unique = len(cats)
	s.Numeric = len(nums)
	switch {
	case s.NonNull == 0:
		s.Kind = KindEmpty
	case len(nums) >= dtCnt && len(nums) >= txtCnt:
		s.Kind = KindNumeric
		s.Min = floats.Min(nums)
		s.Max = floats.Max(nums)
		if len(nums) > 1 {
			s.Mean, s.Std = stat.MeanStdDev(nums, nil)
		} else {
			s.Mean = nums[0]
		}
	case dtCnt >= txtCnt:
		s.Kind = KindDatetime
	case s.Unique <= s.NonNull/2 || s.Unique <= opt.TopValues:
		s.Kind = KindCategorical
	default:
		s.Kind = KindText
	}
	if s.Kind == KindCategorical || s.Kind == KindText {
		tops := make([]CategoryCount, 0, len(cats))
		for k, v := range cats {
			tops = append(tops, CategoryCount{Value: k, Count: v})
		}
		sort.Slice(tops, func(i, j int) bool {
			if tops[i].Count == tops[j].Count {
				return tops[i].Value < tops[j].Value
			}
			return tops[i].Count > tops[j].Count
		})
		if len(tops) > opt.TopValues {
			tops = tops[:opt.TopValues]
		}
		s.TopValues = tops
	}
	return s
}

func parseTimeMaybe(s string) (time.Time, bool) {
	layouts := []string{
		time.RFC3339, "2006-01-02", "2006/01/02", "02/01/2006", "01/02/2006",
		"2006-01-02 15:04", "2006-01-02 15:04:05",
	}
	for _, l := range layouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Markdown renders a compact report suitable for terminals or docs.
func (r *Report) Markdown() string {
	var b strings.Builder
	b.WriteString("[DATASET SUMMARY]\n")
	if r.Name != "" {
		b.WriteString(fmt.Sprintf("File: %s\n", r.Name))
	}
	b.WriteString(fmt.Sprintf("Rows: %d\n", r.Rows))
	b.WriteString(fmt.Sprintf("Columns: %d\n\n", len(r.Cols)))

	b.WriteString("[SCHEMA]\n")
	for _, c := range r.Cols {
		total := c.NonNull + c.Missing
		missPct := 0.0
		if total > 0 {
			missPct = float64(c.Missing) * 100.0 / float64(total)
		}
		b.WriteString(fmt.Sprintf("- %s: %s (non-null %d, missing %.1f%%, unique %d)", safeName(c.Name), c.Kind, c.NonNull, missPct, c.Unique))
		switch c.Kind {
		case KindNumeric:
			b.WriteString(fmt.Sprintf(" — min %.4g, max %.4g, mean %.4g, std %.4g", c.Min, c.Max, c.Mean, c.Std))
		case KindCategorical, KindText:
			if len(c.TopValues) > 0 {
				b.WriteString(" — top: ")
				for i, kv := range c.TopValues {
					if i > 0 {
						b.WriteString(", ")
					}
					b.WriteString(fmt.Sprintf("%s(%d)", safeVal(kv.Value), kv.Count))
				}
			}
		}
		b.WriteString("\n")
	}
	if len(r.Warnings) > 0 {
		b.WriteString("\n[NOTES]\n")
		for _, w := range r.Warnings {
			b.WriteString("- ")
			b.WriteString(w)
			b.WriteString("\n")
		}
	}
	return b.String()
}

func safeName(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "(unnamed)"
	}
	return s
}

func safeVal(s string) string { return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "|", "/") }

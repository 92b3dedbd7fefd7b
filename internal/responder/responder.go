// Package responder answers simple questions about the loaded table.
package responder

import (
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"

	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

const (
	// HelpText is returned when no rule matches.
	HelpText = "Try asking: how many rows? which columns? how many unique values in <column>? what is the mean of <column>?"
	// NoDataText is returned when nothing has been loaded.
	NoDataText = "Load a CSV file first."
)

// Rule pairs a query predicate with its handler. The query passed to both is
// lower-cased.
type Rule struct {
	Name   string
	Match  func(query string) bool
	Handle func(t *table.Table, query string) string
}

// Responder evaluates rules in order; the first match answers.
type Responder struct {
	rules []Rule
}

// New returns a responder with the default rule set.
func New() *Responder {
	return &Responder{rules: DefaultRules()}
}

// NewWithRules returns a responder using rules in the given order.
func NewWithRules(rules ...Rule) *Responder {
	return &Responder{rules: rules}
}

// Answer returns the reply to query. It never fails.
func (r *Responder) Answer(t *table.Table, query string) string {
	if t.Empty() {
		return NoDataText
	}
	q := strings.ToLower(query)
	for _, rule := range r.rules {
		if rule.Match(q) {
			return rule.Handle(t, q)
		}
	}
	return HelpText
}

func contains(words ...string) func(string) bool {
	return func(q string) bool {
		return lo.SomeBy(words, func(w string) bool { return strings.Contains(q, w) })
	}
}

// DefaultRules returns the row, column, unique and mean rules in that order.
func DefaultRules() []Rule {
	return []Rule{
		{Name: "rows", Match: contains("row"), Handle: rowCount},
		{Name: "columns", Match: contains("column"), Handle: columnList},
		{Name: "unique", Match: contains("unique"), Handle: uniqueCount},
		{Name: "mean", Match: contains("mean", "average"), Handle: columnMean},
	}
}

func rowCount(t *table.Table, _ string) string {
	return fmt.Sprintf("This dataset has %d rows.", t.Len())
}

func columnList(t *table.Table, _ string) string {
	h := t.Headers()
	return fmt.Sprintf("Columns (%d): %s", len(h), strings.Join(h, ", "))
}

func uniqueCount(t *table.Table, q string) string {
	col, ok := MatchColumn(t, q)
	if !ok {
		col = t.Headers()[0]
	}
	n := len(lo.Uniq(t.Column(col)))
	return fmt.Sprintf("Column %q has %d unique values.", col, n)
}

func columnMean(t *table.Table, q string) string {
	col, ok := MatchColumn(t, q)
	if !ok {
		col, ok = lo.Find(t.Headers(), func(h string) bool { return len(t.Numbers(h)) > 0 })
		if !ok {
			return "No numeric columns to average."
		}
	}
	vals := t.Numbers(col)
	if len(vals) == 0 {
		return fmt.Sprintf("Column %q has no numeric values.", col)
	}
	return fmt.Sprintf("Mean of %q is %s (over %d values).", col, formatNumber(stat.Mean(vals, nil)), len(vals))
}

// MatchColumn finds the header mentioned in a lower-cased query. A header
// matches only as whole words, so "a" is not found inside "average". When
// several match, the longest name wins so "flight hours" beats "flight".
func MatchColumn(t *table.Table, q string) (string, bool) {
	words := tokens(q)
	best := ""
	for _, h := range t.Headers() {
		name := tokens(strings.ToLower(h))
		if len(name) == 0 || !containsRun(words, name) {
			continue
		}
		if len(h) > len(best) {
			best = h
		}
	}
	return best, best != ""
}

func tokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// containsRun reports whether run appears as consecutive words in words.
func containsRun(words, run []string) bool {
	for i := 0; i+len(run) <= len(words); i++ {
		if slices.Equal(words[i:i+len(run)], run) {
			return true
		}
	}
	return false
}

func formatNumber(f float64) string {
	return strconv.FormatFloat(math.Round(f*1000)/1000, 'f', -1, 64)
}

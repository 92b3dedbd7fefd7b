package responder_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KaramelBytes/moonbase-cli/internal/parser"
	"github.com/KaramelBytes/moonbase-cli/internal/responder"
	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

const missions = "Name,Agency,Flight Hours,Flights\n" +
	"Ann,NASA,120.5,2\n" +
	"Bo,ESA,80,1\n" +
	"Cy,NASA,n/a,3\n" +
	"Di,JAXA,200,\n"

func load(text string) *table.Table { return table.Build(parser.ParseCSV(text)) }

func TestRowCountOnTenRows(t *testing.T) {
	var b strings.Builder
	b.WriteString("id,v\n")
	for i := 0; i < 10; i++ {
		fmt.Fprintf(&b, "%d,%d\n", i, i*i)
	}
	got := responder.New().Answer(load(b.String()), "how many rows")
	assert.Contains(t, got, "10")
}

func TestAnswers(t *testing.T) {
	tbl := load(missions)
	r := responder.New()
	cases := []struct {
		query string
		want  string
	}{
		{"How many ROWS are there?", "4 rows"},
		{"list the columns", "Columns (4): Name, Agency, Flight Hours, Flights"},
		{"unique agency values", `"Agency" has 3 unique`},
		{"unique", `"Name" has 4 unique`},
		{"what is the average flight hours", `Mean of "Flight Hours" is 133.5 (over 3 values)`},
		{"mean flights", `Mean of "Flights" is 2 (over 3 values)`},
		{"mean please", `Mean of "Flight Hours"`},
		{"mean name", `"Name" has no numeric values`},
		{"hello", responder.HelpText},
	}
	for _, c := range cases {
		assert.Contains(t, r.Answer(tbl, c.query), c.want, "query %q", c.query)
	}
}

func TestNoTable(t *testing.T) {
	r := responder.New()
	assert.Equal(t, responder.NoDataText, r.Answer(nil, "how many rows"))
	assert.Equal(t, responder.NoDataText, r.Answer(table.Build(nil), "rows"))
}

func TestMeanWithoutNumericColumns(t *testing.T) {
	got := responder.New().Answer(load("a,b\nx,y\n"), "average")
	assert.Equal(t, "No numeric columns to average.", got)
}

func TestCustomRuleOrder(t *testing.T) {
	r := responder.NewWithRules(responder.Rule{
		Name:   "echo",
		Match:  func(q string) bool { return strings.HasPrefix(q, "echo") },
		Handle: func(_ *table.Table, q string) string { return q },
	})
	assert.Equal(t, "echo hi", r.Answer(load(missions), "ECHO hi"))
	assert.Equal(t, responder.HelpText, r.Answer(load(missions), "rows"))
}

func TestMatchColumnPrefersLongest(t *testing.T) {
	col, ok := responder.MatchColumn(load(missions), "sum of flight hours")
	assert.True(t, ok)
	assert.Equal(t, "Flight Hours", col)
}

func TestKeywordsDoNotMatchShortHeaders(t *testing.T) {
	r := responder.New()
	cases := []struct {
		csv, query, want string
	}{
		{"a,b\nx,1\ny,3\n", "what is the average", `Mean of "b" is 2 (over 2 values).`},
		{"id,e,score\n1,x,5\n2,x,6\n3,y,7\n", "unique", `Column "id" has 3 unique values.`},
		{"name,age,me\nAnn,30,1\nBo,40,2\n", "mean", `Mean of "age" is 35 (over 2 values).`},
		{"name,age\nAnn,30\nBo,40\n", "what is the mean age?", `Mean of "age" is 35 (over 2 values).`},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, r.Answer(load(c.csv), c.query), "query %q", c.query)
	}
}

func TestMatchColumnWholeWords(t *testing.T) {
	tbl := load("a,e,Flight-Hours\n1,2,3\n")
	_, ok := responder.MatchColumn(tbl, "average unique mean")
	assert.False(t, ok)

	col, ok := responder.MatchColumn(tbl, "mean flight hours")
	assert.True(t, ok)
	assert.Equal(t, "Flight-Hours", col)
}

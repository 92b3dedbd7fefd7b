package session_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	"github.com/KaramelBytes/moonbase-cli/internal/parser"
	"github.com/KaramelBytes/moonbase-cli/internal/session"
)

func newSession(opts ...session.Option) (*session.Session, *chart.Recorder) {
	l := chart.DefaultLayout()
	rec := chart.NewRecorder(l.Width, l.Height)
	return session.New(rec, l, opts...), rec
}

func TestLoadReplacesTable(t *testing.T) {
	s, _ := newSession()
	assert.NotEmpty(t, s.ID)

	s.Load("a.csv", "Country,Flights\nUSA,3\nChina,5\n")
	require.NoError(t, s.SelectX("Country"))
	require.NoError(t, s.SelectY("Flights"))

	s.Load("b.csv", "Country,Crew\nIndia,4\n")
	assert.Equal(t, 1, s.Table().Len())
	assert.Equal(t, []string{"Country", "Crew"}, s.Table().Headers())
	assert.Equal(t, "b.csv", s.Source())
	assert.Equal(t, chart.Selection{X: "Country"}, s.Selection(), "stale Y cleared")
}

func TestRenderNeedsSelection(t *testing.T) {
	s, rec := newSession()
	s.Load("a.csv", "Country,Flights\nUSA,3\nUSA,2\nChina,5\n")

	p := s.Render(chart.ModeBar)
	assert.False(t, p.Drawn)
	assert.Empty(t, rec.Ops())

	require.NoError(t, s.SelectX("Country"))
	require.NoError(t, s.SelectY("Flights"))
	p = s.Render(chart.ModeBar)
	require.True(t, p.Drawn)
	require.Len(t, p.Bars, 2)
	assert.Equal(t, "USA", p.Bars[0].Label)
	assert.NotEmpty(t, rec.Ops())
}

func TestSelectUnknownColumn(t *testing.T) {
	s, _ := newSession()
	s.Load("a.csv", "a,b\n1,2\n")
	assert.Error(t, s.SelectX("zzz"))
	assert.NoError(t, s.SelectX(""))
}

func TestAskUsesCurrentTable(t *testing.T) {
	s, _ := newSession()
	assert.Contains(t, s.Ask("rows"), "Load a CSV")
	s.Load("a.csv", "a\n1\n2\n")
	assert.Contains(t, s.Ask("how many rows"), "2 rows")
}

func TestLoadFileWithDelimiter(t *testing.T) {
	p := filepath.Join(t.TempDir(), "data.txt")
	require.NoError(t, os.WriteFile(p, []byte("a;b\n1;2\n"), 0o644))

	s, _ := newSession(session.WithParserOptions(parser.Options{Delimiter: ';'}))
	tbl, err := s.LoadFile(p)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, tbl.Headers())
	assert.Equal(t, "data.txt", s.Source())

	_, err = s.LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.Error(t, err)
}

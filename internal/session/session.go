// Package session holds the state of one interactive charting session: the
// current table, the selected columns and the drawing surface.
package session

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/KaramelBytes/moonbase-cli/internal/chart"
	"github.com/KaramelBytes/moonbase-cli/internal/parser"
	"github.com/KaramelBytes/moonbase-cli/internal/responder"
	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

// Session owns one table at a time. Loading replaces the table; it never merges.
type Session struct {
	ID string

	mu        sync.Mutex
	log       zerolog.Logger
	opt       parser.Options
	source    string
	tbl       *table.Table
	sel       chart.Selection
	surface   chart.Surface
	renderer  *chart.Renderer
	responder *responder.Responder
}

// Option customizes a Session.
type Option func(*Session)

// WithLogger attaches a logger; the default discards.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithParserOptions sets the tokenizer options. A zero Delimiter means comma
// for Load and extension-based detection for LoadFile.
func WithParserOptions(opt parser.Options) Option {
	return func(s *Session) { s.opt = opt }
}

// New creates a session drawing on surface with the given layout.
func New(surface chart.Surface, layout chart.Layout, opts ...Option) *Session {
	s := &Session{
		ID:        uuid.NewString(),
		log:       zerolog.Nop(),
		tbl:       table.Build(nil),
		surface:   surface,
		renderer:  chart.NewRenderer(layout),
		responder: responder.New(),
	}
	for _, o := range opts {
		o(s)
	}
	s.log = s.log.With().Str("session", s.ID).Logger()
	return s
}

// Load parses text and replaces the current table. Selected columns that no
// longer exist are cleared.
func (s *Session) Load(source, text string) *table.Table {
	t := table.Build(parser.Parse(text, s.opt))
	s.replace(source, t)
	return t
}

// LoadFile reads path, choosing the delimiter by extension unless the session
// was given an explicit one.
func (s *Session) LoadFile(path string) (*table.Table, error) {
	var rows [][]string
	var err error
	if s.opt.Delimiter != 0 {
		rows, err = parser.ParseFileWith(path, s.opt)
	} else {
		rows, err = parser.ParseFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", filepath.Base(path), err)
	}
	t := table.Build(rows)
	s.replace(filepath.Base(path), t)
	return t, nil
}

func (s *Session) replace(source string, t *table.Table) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tbl = t
	s.source = source
	if !t.HasColumn(s.sel.X) {
		s.sel.X = ""
	}
	if !t.HasColumn(s.sel.Y) {
		s.sel.Y = ""
	}
	s.log.Info().Str("source", source).Int("rows", t.Len()).Strs("columns", t.Headers()).Msg("table loaded")
}

// Table returns the current table.
func (s *Session) Table() *table.Table {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tbl
}

// Source names where the current table came from.
func (s *Session) Source() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.source
}

// Selection returns the chosen columns.
func (s *Session) Selection() chart.Selection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sel
}

// SelectX chooses the horizontal column. Unknown names are rejected.
func (s *Session) SelectX(name string) error {
	return s.choose(&s.sel.X, name)
}

// SelectY chooses the vertical column. Unknown names are rejected.
func (s *Session) SelectY(name string) error {
	return s.choose(&s.sel.Y, name)
}

func (s *Session) choose(dst *string, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if name != "" && !s.tbl.HasColumn(name) {
		return fmt.Errorf("unknown column %q", name)
	}
	*dst = name
	return nil
}

// Render redraws the surface for the current selection. Missing selections
// leave the surface untouched.
func (s *Session) Render(mode chart.Mode) chart.Plot {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.renderer.Render(s.surface, s.tbl, s.sel, mode)
	if !p.Drawn {
		s.log.Debug().Str("mode", string(mode)).Msg("render skipped: select x and y first")
		return p
	}
	s.log.Debug().Str("mode", string(mode)).Str("title", p.Title).Int("bars", len(p.Bars)).Int("points", len(p.Points)).Msg("rendered")
	return p
}

// Ask answers a free-text question about the current table.
func (s *Session) Ask(query string) string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.responder.Answer(s.tbl, query)
}

// Surface returns the drawing target.
func (s *Session) Surface() chart.Surface { return s.surface }

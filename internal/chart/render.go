// Package chart draws bar and line charts of two table columns onto a Surface.
package chart

import (
	"fmt"

	"github.com/samber/lo"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/KaramelBytes/moonbase-cli/internal/table"
)

// Mode selects the chart type.
type Mode string

const (
	ModeBar  Mode = "bar"
	ModeLine Mode = "line"
)

// ParseMode maps a user-facing name to a Mode.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeBar, "":
		return ModeBar, nil
	case ModeLine:
		return ModeLine, nil
	default:
		return "", fmt.Errorf("unknown chart mode %q (use bar or line)", s)
	}
}

// Selection is the pair of columns to plot. An empty name means not yet chosen.
type Selection struct {
	X, Y string
}

// Ready reports whether both columns are chosen.
func (s Selection) Ready() bool { return s.X != "" && s.Y != "" }

// Layout fixes the pixel frame and colors of every chart.
type Layout struct {
	Width, Height int
	Padding       float64
	Gutter        float64
	MinBarWidth   float64
	LineWidth     float64
	Background    drawing.Color
	Axis          drawing.Color
	Bar           drawing.Color
	Line          drawing.Color
	Label         drawing.Color
}

// DefaultLayout returns the standard 800x400 frame.
func DefaultLayout() Layout {
	return Layout{
		Width:       800,
		Height:      400,
		Padding:     40,
		Gutter:      10,
		MinBarWidth: 2,
		LineWidth:   2,
		Background:  drawing.ColorFromHex("0b1020"),
		Axis:        drawing.ColorFromHex("c8cdd8"),
		Bar:         drawing.ColorFromHex("7aa2f7"),
		Line:        drawing.ColorFromHex("e0af68"),
		Label:       drawing.ColorFromHex("e6e9ef"),
	}
}

func (l Layout) plotWidth() float64  { return float64(l.Width) - 2*l.Padding }
func (l Layout) plotHeight() float64 { return float64(l.Height) - 2*l.Padding }
func (l Layout) baseline() float64   { return float64(l.Height) - l.Padding }

// Group is one bar-chart bucket: an X value and the sum of its Y values.
type Group struct {
	Key string
	Sum float64
}

// Bar is the geometry of one drawn bar.
type Bar struct {
	Label      string
	Value      float64
	X, Y, W, H float64
}

// Plot describes what a render call drew.
type Plot struct {
	Mode  Mode
	Title string
	// Drawn is false when the selection was incomplete and nothing was touched.
	Drawn    bool
	Bars     []Bar
	Points   []Point
	NumericX bool
}

// Renderer draws charts with a fixed Layout.
type Renderer struct {
	Layout Layout
}

// NewRenderer returns a renderer for the given layout.
func NewRenderer(l Layout) *Renderer {
	return &Renderer{Layout: l}
}

// Render clears s and draws the requested chart. An incomplete selection is a
// no-op. Render never panics on degenerate data.
func (r *Renderer) Render(s Surface, t *table.Table, sel Selection, mode Mode) Plot {
	if mode == ModeLine {
		return r.Line(s, t, sel)
	}
	return r.Bar(s, t, sel)
}

// Aggregate groups rows by exact X value and sums coercible Y values, keeping
// first-seen group order. Rows whose Y is not a finite number are skipped.
// A row with no X cell is grouped under the empty string.
func Aggregate(t *table.Table, x, y string) []Group {
	var groups []Group
	pos := map[string]int{}
	for _, row := range t.Rows() {
		v, ok := row.Number(y)
		if !ok {
			continue
		}
		key, _ := row.Get(x)
		i, seen := pos[key]
		if !seen {
			i = len(groups)
			pos[key] = i
			groups = append(groups, Group{Key: key})
		}
		groups[i].Sum += v
	}
	return groups
}

// Series returns the line-chart series for (x, y). When every kept row has a
// numeric X those values are returned with numeric=true; otherwise xs holds
// 1-based row positions.
func Series(t *table.Table, x, y string) (xs, ys []float64, numeric bool) {
	numeric = true
	var raw []float64
	for _, row := range t.Rows() {
		v, ok := row.Number(y)
		if !ok {
			continue
		}
		ys = append(ys, v)
		xv, ok := row.Number(x)
		if !ok {
			numeric = false
		}
		raw = append(raw, xv)
	}
	if numeric {
		return raw, ys, len(ys) > 0
	}
	xs = make([]float64, len(ys))
	for i := range xs {
		xs[i] = float64(i + 1)
	}
	return xs, ys, false
}

// Bar draws summed Y per distinct X as evenly spaced vertical bars.
func (r *Renderer) Bar(s Surface, t *table.Table, sel Selection) Plot {
	p := Plot{Mode: ModeBar, Title: fmt.Sprintf("%s by %s", sel.Y, sel.X)}
	if !sel.Ready() {
		return p
	}
	p.Drawn = true
	l := r.Layout
	r.frame(s, p.Title)

	groups := Aggregate(t, sel.X, sel.Y)
	if len(groups) == 0 {
		return p
	}
	top := lo.Max(lo.Map(groups, func(g Group, _ int) float64 { return g.Sum }))
	slot := l.plotWidth() / float64(len(groups))
	width := slot - l.Gutter
	if width < l.MinBarWidth {
		width = l.MinBarWidth
	}
	maxChars := int(slot / 7)
	for i, g := range groups {
		h := 0.0
		if top > 0 && g.Sum > 0 {
			h = g.Sum / top * l.plotHeight()
		}
		b := Bar{
			Label: g.Key,
			Value: g.Sum,
			X:     l.Padding + float64(i)*slot + (slot-width)/2,
			Y:     l.baseline() - h,
			W:     width,
			H:     h,
		}
		p.Bars = append(p.Bars, b)
		s.FillRect(b.X, b.Y, b.W, b.H, l.Bar)
		if label := truncate(g.Key, maxChars); label != "" {
			s.Text(b.X, l.baseline()+14, label, l.Label)
		}
	}
	return p
}

// Line draws Y against X (or row position) as a connected polyline.
func (r *Renderer) Line(s Surface, t *table.Table, sel Selection) Plot {
	p := Plot{Mode: ModeLine, Title: fmt.Sprintf("%s over %s", sel.Y, sel.X)}
	if !sel.Ready() {
		return p
	}
	p.Drawn = true
	l := r.Layout
	r.frame(s, p.Title)

	xs, ys, numeric := Series(t, sel.X, sel.Y)
	p.NumericX = numeric
	if len(ys) == 0 {
		return p
	}
	xmin, xmax := lo.Min(xs), lo.Max(xs)
	ymin, ymax := lo.Min(ys), lo.Max(ys)
	for i := range ys {
		var nx float64
		if numeric {
			nx = normalize(xs[i], xmin, xmax)
		} else {
			nx = normalize(float64(i), 0, float64(len(ys)-1))
		}
		ny := normalize(ys[i], ymin, ymax)
		p.Points = append(p.Points, Point{
			X: l.Padding + nx*l.plotWidth(),
			Y: l.baseline() - ny*l.plotHeight(),
		})
	}
	s.Polyline(p.Points, l.Line, l.LineWidth)
	return p
}

func (r *Renderer) frame(s Surface, title string) {
	l := r.Layout
	right := float64(l.Width) - l.Padding
	s.Clear(l.Background)
	s.Line(l.Padding, l.Padding, l.Padding, l.baseline(), l.Axis, 1)
	s.Line(l.Padding, l.baseline(), right, l.baseline(), l.Axis, 1)
	s.Text(l.Padding, l.Padding/2+4, title, l.Label)
}

// normalize maps v into [0,1] over [from,to]. A zero-width range is treated as
// width 1 and centred, so constant series sit at mid-height.
func normalize(v, from, to float64) float64 {
	span := to - from
	if span == 0 {
		return v - from + 0.5
	}
	return (v - from) / span
}

func truncate(s string, n int) string {
	if n <= 0 {
		return ""
	}
	rs := []rune(s)
	if len(rs) <= n {
		return s
	}
	if n <= 2 {
		return string(rs[:n])
	}
	return string(rs[:n-2]) + ".."
}

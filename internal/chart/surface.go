package chart

import "github.com/wcharczuk/go-chart/v2/drawing"

// Point is a pixel coordinate on a surface.
type Point struct {
	X, Y float64
}

// Surface is a fixed-size 2D drawing target. Implementations must accept any
// coordinates, clipping as needed, and never fail.
type Surface interface {
	Size() (width, height int)
	Clear(bg drawing.Color)
	Line(x1, y1, x2, y2 float64, c drawing.Color, width float64)
	Polyline(pts []Point, c drawing.Color, width float64)
	FillRect(x, y, w, h float64, c drawing.Color)
	Text(x, y float64, s string, c drawing.Color)
}

// Op is one recorded drawing operation.
type Op struct {
	Kind   string
	Coords []float64
	Text   string
	Color  drawing.Color
	Width  float64
}

// Recorder is a Surface that keeps the list of operations since the last
// Clear instead of pixels.
type Recorder struct {
	width, height int
	ops           []Op
}

// NewRecorder returns a recording surface of the given logical size.
func NewRecorder(width, height int) *Recorder {
	return &Recorder{width: width, height: height}
}

func (r *Recorder) Size() (int, int) { return r.width, r.height }

// Clear drops everything recorded so far and records the clear itself.
func (r *Recorder) Clear(bg drawing.Color) {
	r.ops = []Op{{Kind: "clear", Color: bg}}
}

func (r *Recorder) Line(x1, y1, x2, y2 float64, c drawing.Color, width float64) {
	r.ops = append(r.ops, Op{Kind: "line", Coords: []float64{x1, y1, x2, y2}, Color: c, Width: width})
}

func (r *Recorder) Polyline(pts []Point, c drawing.Color, width float64) {
	coords := make([]float64, 0, 2*len(pts))
	for _, p := range pts {
		coords = append(coords, p.X, p.Y)
	}
	r.ops = append(r.ops, Op{Kind: "polyline", Coords: coords, Color: c, Width: width})
}

func (r *Recorder) FillRect(x, y, w, h float64, c drawing.Color) {
	r.ops = append(r.ops, Op{Kind: "rect", Coords: []float64{x, y, w, h}, Color: c})
}

func (r *Recorder) Text(x, y float64, s string, c drawing.Color) {
	r.ops = append(r.ops, Op{Kind: "text", Coords: []float64{x, y}, Text: s, Color: c})
}

// Ops returns a copy of the recorded operations.
func (r *Recorder) Ops() []Op {
	return append([]Op(nil), r.ops...)
}

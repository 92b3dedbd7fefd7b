package chart

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/wcharczuk/go-chart/v2/drawing"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Raster is a Surface backed by an RGBA image.
type Raster struct {
	img *image.RGBA
	gc  *drawing.RasterGraphicContext
}

// NewRaster allocates a width x height canvas.
func NewRaster(width, height int) (*Raster, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	gc, err := drawing.NewRasterGraphicContext(img)
	if err != nil {
		return nil, fmt.Errorf("raster context: %w", err)
	}
	return &Raster{img: img, gc: gc}, nil
}

func (r *Raster) Size() (int, int) {
	b := r.img.Bounds()
	return b.Dx(), b.Dy()
}

func (r *Raster) Clear(bg drawing.Color) {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
}

func (r *Raster) Line(x1, y1, x2, y2 float64, c drawing.Color, width float64) {
	r.Polyline([]Point{{x1, y1}, {x2, y2}}, c, width)
}

func (r *Raster) Polyline(pts []Point, c drawing.Color, width float64) {
	if len(pts) == 0 {
		return
	}
	r.gc.BeginPath()
	r.gc.SetStrokeColor(c)
	r.gc.SetLineWidth(width)
	r.gc.MoveTo(pts[0].X, pts[0].Y)
	if len(pts) == 1 {
		// a lone point still gets a visible dot
		r.gc.LineTo(pts[0].X+width, pts[0].Y)
	}
	for _, p := range pts[1:] {
		r.gc.LineTo(p.X, p.Y)
	}
	r.gc.Stroke()
}

func (r *Raster) FillRect(x, y, w, h float64, c drawing.Color) {
	if w <= 0 || h <= 0 {
		return
	}
	r.gc.BeginPath()
	r.gc.SetFillColor(c)
	r.gc.MoveTo(x, y)
	r.gc.LineTo(x+w, y)
	r.gc.LineTo(x+w, y+h)
	r.gc.LineTo(x, y+h)
	r.gc.Close()
	r.gc.Fill()
}

// Text draws s with its baseline at y using the built-in 7x13 face.
func (r *Raster) Text(x, y float64, s string, c drawing.Color) {
	d := &font.Drawer{
		Dst:  r.img,
		Src:  image.NewUniform(c),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(int(x), int(y)),
	}
	d.DrawString(s)
}

// Image exposes the underlying pixels.
func (r *Raster) Image() *image.RGBA { return r.img }

// WritePNG encodes the canvas as PNG.
func (r *Raster) WritePNG(w io.Writer) error {
	if err := png.Encode(w, r.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

package render

import (
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"golang.org/x/image/vector"

	"honnef.co/go/bezier"
)

var _ bezier.Renderer = (*Raster)(nil)

// markerSides is the number of sides of the polygon drawn for a point.
const markerSides = 12

// Raster renders into an RGBA image. Drawing calls only record shapes in
// pixel space; rasterization happens in [Raster.Image], with one pass per
// color.
type Raster struct {
	width, height int
	style         Style
	view          bezier.Affine

	lines  []bezier.Line
	points []bezier.Point
}

// NewRaster returns a raster renderer of the given size in pixels that shows
// viewport of the scene.
func NewRaster(width, height int, viewport bezier.Rect, style Style) *Raster {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("render: invalid raster size %dx%d", width, height))
	}
	return &Raster{
		width:  width,
		height: height,
		style:  style,
		view:   bezier.MapRect(viewport, bezier.Sz(float64(width), float64(height)).ToRect(), true),
	}
}

func (r *Raster) Bounds() image.Rectangle {
	return image.Rect(0, 0, r.width, r.height)
}

// Setup implements [bezier.Renderer].
func (r *Raster) Setup() {
	r.lines = r.lines[:0]
	r.points = r.points[:0]
}

// DrawLine implements [bezier.Renderer].
func (r *Raster) DrawLine(p0, p1 bezier.Point) {
	r.lines = append(r.lines, bezier.Line{P0: p0, P1: p1}.Transform(r.view))
}

// DrawPoints implements [bezier.Renderer].
func (r *Raster) DrawPoints(pts []bezier.Point) {
	for _, pt := range pts {
		r.points = append(r.points, pt.Transform(r.view))
	}
}

// Image rasterizes everything drawn since the last Setup into a new image.
func (r *Raster) Image() *image.RGBA {
	dst := image.NewRGBA(r.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Background), image.Point{}, draw.Src)

	if len(r.lines) > 0 {
		z := vector.NewRasterizer(r.width, r.height)
		w := float32(r.style.LineWidth)
		for _, l := range r.lines {
			strokeLine(z, l, w)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Curve), image.Point{})
	}

	if len(r.points) > 0 {
		z := vector.NewRasterizer(r.width, r.height)
		radius := float32(r.style.PointSize) / 2
		for _, pt := range r.points {
			marker(z, pt, radius)
		}
		z.Draw(dst, dst.Bounds(), image.NewUniform(r.style.Points), image.Point{})
	}
	return dst
}

// EncodePNG rasterizes the drawing and writes it to w as PNG.
func (r *Raster) EncodePNG(w io.Writer) error {
	if err := png.Encode(w, r.Image()); err != nil {
		return fmt.Errorf("render: encoding PNG: %w", err)
	}
	return nil
}

// strokeLine adds a rectangle of width w around l. All rectangles share an
// orientation so that overlapping ones don't cancel out.
func strokeLine(z *vector.Rasterizer, l bezier.Line, w float32) {
	x0, y0 := float32(l.P0.X), float32(l.P0.Y)
	x1, y1 := float32(l.P1.X), float32(l.P1.Y)
	dx, dy := x1-x0, y1-y0
	length := math32.Hypot(dx, dy)
	if length == 0 {
		marker(z, l.P0, w/2)
		return
	}
	nx, ny := -dy/length*w/2, dx/length*w/2
	z.MoveTo(x0+nx, y0+ny)
	z.LineTo(x1+nx, y1+ny)
	z.LineTo(x1-nx, y1-ny)
	z.LineTo(x0-nx, y0-ny)
	z.ClosePath()
}

// marker adds a regular polygon approximating a circle of the given radius.
func marker(z *vector.Rasterizer, pt bezier.Point, radius float32) {
	cx, cy := float32(pt.X), float32(pt.Y)
	for i := range markerSides {
		sin, cos := math32.Sincos(2 * math32.Pi * float32(i) / markerSides)
		x, y := cx+radius*cos, cy+radius*sin
		if i == 0 {
			z.MoveTo(x, y)
		} else {
			z.LineTo(x, y)
		}
	}
	z.ClosePath()
}

package render

import (
	"bufio"
	"fmt"
	"io"

	"honnef.co/go/bezier"
)

var _ bezier.Renderer = (*SVG)(nil)

// SVG renders into an SVG document. Consecutive lines that join up are
// written as a single path.
type SVG struct {
	size  bezier.Size
	style Style
	view  bezier.Affine

	paths  [][]bezier.Point
	points []bezier.Point
}

// NewSVG returns an SVG renderer producing a document of the given size that
// shows viewport of the scene. It panics if size is empty.
func NewSVG(size bezier.Size, viewport bezier.Rect, style Style) *SVG {
	if size.IsEmpty() {
		panic(fmt.Sprintf("render: invalid SVG size %s", size))
	}
	return &SVG{
		size:  size,
		style: style,
		view:  bezier.MapRect(viewport, size.ToRect(), true),
	}
}

// Setup implements [bezier.Renderer].
func (s *SVG) Setup() {
	s.paths = nil
	s.points = nil
}

// DrawLine implements [bezier.Renderer].
func (s *SVG) DrawLine(p0, p1 bezier.Point) {
	p0, p1 = p0.Transform(s.view), p1.Transform(s.view)
	if n := len(s.paths); n > 0 {
		last := s.paths[n-1]
		if last[len(last)-1] == p0 {
			s.paths[n-1] = append(last, p1)
			return
		}
	}
	s.paths = append(s.paths, []bezier.Point{p0, p1})
}

// DrawPoints implements [bezier.Renderer].
func (s *SVG) DrawPoints(pts []bezier.Point) {
	for _, pt := range pts {
		s.points = append(s.points, pt.Transform(s.view))
	}
}

// WriteTo writes the SVG document.
func (s *SVG) WriteTo(w io.Writer) (int64, error) {
	cw := &countingWriter{w: bufio.NewWriter(w)}
	fmt.Fprintf(cw, `<svg viewBox="0 0 %g %g" width="%g" height="%g" xmlns="http://www.w3.org/2000/svg">`+"\n",
		s.size.Width, s.size.Height, s.size.Width, s.size.Height)
	fmt.Fprintf(cw, `<rect width="100%%" height="100%%" fill="%s" />`+"\n", FormatColor(s.style.Background))
	for _, path := range s.paths {
		fmt.Fprintf(cw, `<path d="M%f,%f`, path[0].X, path[0].Y)
		for _, pt := range path[1:] {
			fmt.Fprintf(cw, ` L%f,%f`, pt.X, pt.Y)
		}
		fmt.Fprintf(cw, `" fill="none" stroke="%s" stroke-width="%g" />`+"\n", FormatColor(s.style.Curve), s.style.LineWidth)
	}
	for _, pt := range s.points {
		fmt.Fprintf(cw, `<circle cx="%f" cy="%f" r="%g" fill="%s" />`+"\n", pt.X, pt.Y, s.style.PointSize/2, FormatColor(s.style.Points))
	}
	fmt.Fprintln(cw, "</svg>")
	if cw.err != nil {
		return cw.n, fmt.Errorf("render: writing SVG: %w", cw.err)
	}
	if err := cw.w.Flush(); err != nil {
		return cw.n, fmt.Errorf("render: writing SVG: %w", err)
	}
	return cw.n, nil
}

// countingWriter remembers the first error so that the many small writes of
// WriteTo don't each need checking.
type countingWriter struct {
	w   *bufio.Writer
	n   int64
	err error
}

func (cw *countingWriter) Write(b []byte) (int, error) {
	if cw.err != nil {
		return 0, cw.err
	}
	n, err := cw.w.Write(b)
	cw.n += int64(n)
	cw.err = err
	return n, err
}

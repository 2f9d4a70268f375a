package bezier

import "iter"

// Line is a line segment. Renderers receive curves as sequences of lines,
// and control polygons are made of them.
type Line struct {
	P0 Point
	P1 Point
}

func (l Line) Transform(aff Affine) Line {
	return Line{
		P0: l.P0.Transform(aff),
		P1: l.P1.Transform(aff),
	}
}

// Polygon returns the lines connecting consecutive points. Fewer than two
// points produce no lines.
func Polygon(pts []Point) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for i := 1; i < len(pts); i++ {
			if !yield(Line{pts[i-1], pts[i]}) {
				return
			}
		}
	}
}

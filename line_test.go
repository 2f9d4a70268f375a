package bezier

import (
	"slices"
	"testing"
)

func TestLineTransform(t *testing.T) {
	l := Line{Pt(0, 0), Pt(1, 2)}.Transform(Scale(2, 3))
	diff(t, Line{Pt(0, 0), Pt(2, 6)}, l)
}

func TestPolygon(t *testing.T) {
	pts := []Point{Pt(0, 0), Pt(1, 0), Pt(1, 1)}
	want := []Line{
		{Pt(0, 0), Pt(1, 0)},
		{Pt(1, 0), Pt(1, 1)},
	}
	diff(t, want, slices.Collect(Polygon(pts)))

	if got := slices.Collect(Polygon(pts[:1])); len(got) != 0 {
		t.Errorf("got %v for a single point, want no lines", got)
	}
}

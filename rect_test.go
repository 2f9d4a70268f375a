package bezier

import "testing"

func TestBoundingBoxOf(t *testing.T) {
	if _, ok := BoundingBoxOf(nil); ok {
		t.Error("got a bounding box for no points")
	}

	r, ok := BoundingBoxOf([]Point{Pt(1, 2), Pt(-3, 5), Pt(0, -1)})
	if !ok {
		t.Fatal("got no bounding box")
	}
	diff(t, Rect{-3, -1, 1, 5}, r)
	if w, h := r.Width(), r.Height(); w != 4 || h != 6 {
		t.Errorf("got size %vx%v, want 4x6", w, h)
	}
	diff(t, 1.5, r.AspectRatio())
}

func TestRectUnion(t *testing.T) {
	r := NewRectFromPoints(Pt(2, 2), Pt(0, 0))
	diff(t, Rect{0, 0, 2, 2}, r)
	diff(t, Rect{0, 0, 3, 2}, r.UnionPoint(Pt(3, 1)))
	diff(t, Rect{-1, 0, 2, 4}, r.Union(Rect{-1, 1, 1, 4}))
	diff(t, Rect{-1, -1, 3, 3}, r.Inflate(1, 1))
	diff(t, Pt(1, 1), r.Center())
}

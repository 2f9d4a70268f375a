package bezier

import (
	"math"
	"testing"
)

func TestPointMidpoint(t *testing.T) {
	diff(t, Pt(0, 0).Midpoint(Pt(2, 2)), Pt(1, 1))
	diff(t, Pt(-3, 1).Midpoint(Pt(1, -5)), Pt(-1, -2))
}

func TestPointValueSemantics(t *testing.T) {
	a := Pt(1, 2)
	b := a
	b.X = 5
	if a.X != 1 {
		t.Errorf("modifying a copy changed the original: %v", a)
	}
	if Pt(1, 2) != Pt(1, 2) {
		t.Error("equal points compare unequal")
	}
}

func TestPointIsNaN(t *testing.T) {
	if Pt(1, 1).IsNaN() {
		t.Error("point is NaN but shouldn't be")
	}
	if !Pt(math.NaN(), 1).IsNaN() {
		t.Error("point isn't NaN but should be")
	}
	if !Pt(0, math.Inf(-1)).IsInf() {
		t.Error("point is finite but shouldn't be")
	}
}

package bezier

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestChoose(t *testing.T) {
	diff(t, choose(6, 0), 1.0)
	diff(t, choose(6, 1), 6.0)
	diff(t, choose(6, 2), 15.0)
	diff(t, choose(2, 3), 0.0)
}

func TestD_rk(t *testing.T) {
	bez1 := []Vec2{
		Vec(129.0, 139.0),
		Vec(190.0, 139.0),
		Vec(201.0, 364.0),
		Vec(90.0, 364.0),
	}
	bez2 := []Vec2{
		Vec(309.0, 159.0),
		Vec(178.0, 159.0),
		Vec(215.0, 408.0),
		Vec(309.0, 408.0),
	}
	b := aR(1, bez2)
	diff(t, b, 80283.0, cmpopts.EquateApprox(0, 0.005))
	d := dRk(0, 1, bez1, bez2)
	diff(t, d, 9220.0, cmpopts.EquateApprox(0, 0.005))
}

func TestMinDistance(t *testing.T) {
	bez1 := Curve{
		Pt(129.0, 139.0),
		Pt(190.0, 139.0),
		Pt(201.0, 364.0),
		Pt(90.0, 364.0),
	}
	bez2 := Curve{
		Pt(309.0, 159.0),
		Pt(178.0, 159.0),
		Pt(215.0, 408.0),
		Pt(309.0, 408.0),
	}
	mindist := bez1.MinDistance(bez2, 0.001)
	diff(t, mindist.Distance, 50.9966, cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistanceMixedDegrees(t *testing.T) {
	bez1 := Curve{
		Pt(232.0, 126.0),
		Pt(134.0, 126.0),
		Pt(139.0, 232.0),
		Pt(141.0, 301.0),
	}
	bez2 := Curve{Pt(359.0, 416.0), Pt(367.0, 755.0)}
	mindist := bez1.MinDistance(bez2, 0.001)
	diff(t, mindist.Distance, 246.4731222669117, cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistanceOutOfOrder(t *testing.T) {
	bez1 := Curve{
		Pt(287.0, 182.0),
		Pt(346.0, 277.0),
		Pt(356.0, 299.0),
		Pt(359.0, 416.0),
	}
	bez2 := Curve{Pt(141.0, 301.0), Pt(152.0, 709.0)}
	mindist1 := bez1.MinDistance(bez2, 0.5)
	mindist2 := bez2.MinDistance(bez1, 0.5)
	diff(t, mindist1.Distance, mindist2.Distance, cmpopts.EquateApprox(0, 0.5))
}

func TestMinDistanceTooShort(t *testing.T) {
	mustPanic(t, func() { Curve{Pt(0, 0)}.MinDistance(Curve{Pt(1, 1), Pt(2, 2)}, 0.01) })
}

func TestMinDistanceBadAccuracy(t *testing.T) {
	a := Curve{Pt(0, 0), Pt(1, 0)}
	b := Curve{Pt(0, 1), Pt(1, 1)}
	for _, acc := range []float64{0, -1, math.NaN()} {
		mustPanic(t, func() { a.MinDistance(b, acc) })
	}
}

func TestMinDistanceAtEndpoints(t *testing.T) {
	// The closest points are the end of a and the start of b, so the
	// search has to settle on the parameter interval boundaries.
	a := Curve{Pt(0, 0), Pt(0.5, 0), Pt(1, 0)}
	b := Curve{Pt(2, 1), Pt(2.5, 3), Pt(3, 5)}
	got := a.MinDistance(b, 1e-4)
	diff(t, got.Distance, math.Sqrt2, cmpopts.EquateApprox(0, 1e-3))
	diff(t, got.T1, 1.0, cmpopts.EquateApprox(0, 0.01))
	diff(t, got.T2, 0.0, cmpopts.EquateApprox(0, 0.01))
}

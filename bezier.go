package bezier

import (
	"iter"
	"math"
	"slices"
)

// Curve is a Bézier curve of arbitrary degree, defined by its ordered control
// points. A curve of n points has degree n-1. At least two points are needed
// for a curve to exist.
//
// Curve's methods never modify the control points.
type Curve []Point

// Degree returns the curve's degree, len(c)-1.
func (c Curve) Degree() int {
	return len(c) - 1
}

func (c Curve) Start() Point { return c[0] }
func (c Curve) End() Point   { return c[len(c)-1] }

// Clone returns a copy of c that doesn't share memory with it.
func (c Curve) Clone() Curve {
	return slices.Clone(c)
}

// Eval evaluates the curve at t using the Bernstein form
//
//	P(t) = Σ C(m, i) · tⁱ · (1-t)ᵐ⁻ⁱ · Pᵢ
//
// It panics with a [*PreconditionError] if c has fewer than two points or t is
// not in [0, 1].
func (c Curve) Eval(t float64) Point {
	p, err := c.TryEval(t)
	if err != nil {
		panic(err)
	}
	return p
}

// TryEval is like [Curve.Eval] but returns the precondition violation as an
// error instead of panicking.
func (c Curve) TryEval(t float64) (Point, error) {
	if len(c) < 2 {
		return Point{}, &PreconditionError{Op: "Eval", Reason: "curve has fewer than two control points"}
	}
	if err := checkT("Eval", t); err != nil {
		return Point{}, err
	}
	return c.eval(t), nil
}

func (c Curve) eval(t float64) Point {
	m := len(c) - 1
	var v Vec2
	for i, p := range c {
		v = v.Add(Vec2(p).Mul(Bernstein(m, i, t)))
	}
	return Point(v)
}

// Samples evaluates the curve at i/n for i = 0..n.
func (c Curve) Samples(n int) iter.Seq[Point] {
	if len(c) < 2 {
		violate("Samples", "curve has fewer than two control points")
	}
	if n < 1 {
		violate("Samples", "sample count %d is less than 1", n)
	}
	return func(yield func(Point) bool) {
		for i := range n + 1 {
			if !yield(c.eval(float64(i) / float64(n))) {
				return
			}
		}
	}
}

// Polyline approximates the curve with n lines between consecutive samples.
func (c Curve) Polyline(n int) iter.Seq[Line] {
	samples := c.Samples(n)
	return func(yield func(Line) bool) {
		first := true
		var prev Point
		for p := range samples {
			if !first {
				if !yield(Line{prev, p}) {
					return
				}
			}
			first = false
			prev = p
		}
	}
}

// ControlPolygon returns the lines connecting the control points in order.
func (c Curve) ControlPolygon() iter.Seq[Line] {
	return Polygon(c)
}

// Binomial computes the binomial coefficient "n choose k" iteratively, which
// avoids the overflow of the factorial formula for larger n. It reports false
// if the coefficient is undefined, that is if k < 0 or k > n.
func Binomial(n, k int) (float64, bool) {
	if k < 0 || k > n {
		return 0, false
	}
	k = min(k, n-k)
	result := 1.0
	for i := 1; i <= k; i++ {
		result *= float64(n - (k - i))
		result /= float64(i)
	}
	return result, true
}

// Bernstein evaluates the i-th Bernstein basis polynomial of degree m at t,
// C(m, i) · tⁱ · (1-t)ᵐ⁻ⁱ. It returns 0 for i outside [0, m].
func Bernstein(m, i int, t float64) float64 {
	b, ok := Binomial(m, i)
	if !ok {
		return 0
	}
	return b * math.Pow(t, float64(i)) * math.Pow(1-t, float64(m-i))
}

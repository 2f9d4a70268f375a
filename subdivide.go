package bezier

// Subdivide splits the curve at t = 0.5 using de Casteljau's construction,
// averaging adjacent points. Both halves have as many control points as c.
// left starts at c's first point and right ends at c's last point; left's
// last point and right's first point are the same, the curve's midpoint.
//
// Subdivide panics with a [*PreconditionError] if c is empty.
func (c Curve) Subdivide() (left, right Curve) {
	if len(c) == 0 {
		violate("Subdivide", "curve has no control points")
	}
	return c.split(Point.Midpoint)
}

// Split splits the curve at t. The halves evaluate to the portions of c on
// [0, t] and [t, 1] respectively.
func (c Curve) Split(t float64) (left, right Curve) {
	if len(c) == 0 {
		violate("Split", "curve has no control points")
	}
	if err := checkT("Split", t); err != nil {
		panic(err)
	}
	return c.split(func(a, b Point) Point { return lerp(a, b, t) })
}

func (c Curve) split(f func(a, b Point) Point) (left, right Curve) {
	n := len(c)
	left = make(Curve, n)
	right = make(Curve, n)
	left[0] = c.Start()
	right[n-1] = c.End()
	for k, lvl := range levels(c, f) {
		left[k+1] = lvl[0]
		right[n-2-k] = lvl[len(lvl)-1]
	}
	return left, right
}

// SubdivideN subdivides c level times. Every level halves every curve of the
// previous level, so the result holds 2^level curves ordered from c's start
// to its end. Their control polygons converge to c as level grows.
func SubdivideN(c Curve, level uint) []Curve {
	queue := []Curve{c}
	for range level {
		next := make([]Curve, 0, 2*len(queue))
		for _, cur := range queue {
			l, r := cur.Subdivide()
			next = append(next, l, r)
		}
		queue = next
	}
	return queue
}

package bezier

// Frame is one level of a de Casteljau construction: the points obtained by
// interpolating every adjacent pair of the previous level.
type Frame []Point

// lerp interpolates between a and b as b·t + a·(1-t).
func lerp(a, b Point, t float64) Point {
	return Point(Vec2(b).Mul(t).Add(Vec2(a).Mul(1 - t)))
}

// levels runs the de Casteljau construction on pts, combining adjacent points
// with f, and returns every level after the first. The last level holds a
// single point. A single input point produces no levels.
func levels(pts []Point, f func(a, b Point) Point) []Frame {
	if len(pts) < 2 {
		return nil
	}
	out := make([]Frame, 0, len(pts)-1)
	cur := pts
	for len(cur) > 1 {
		next := make(Frame, len(cur)-1)
		for i := range next {
			next[i] = f(cur[i], cur[i+1])
		}
		out = append(out, next)
		cur = next
	}
	return out
}

// Steps returns the intermediate points of the de Casteljau construction at
// t, one frame per level. Each frame is one point shorter than the previous
// one and the final frame is the single point on the curve at t. A curve with
// one control point yields a single frame holding that point.
//
// Steps panics with a [*PreconditionError] if c is empty or t is not in [0, 1].
func (c Curve) Steps(t float64) []Frame {
	if len(c) == 0 {
		violate("Steps", "curve has no control points")
	}
	if err := checkT("Steps", t); err != nil {
		panic(err)
	}
	if len(c) == 1 {
		return []Frame{{c[0]}}
	}
	return levels(c, func(a, b Point) Point { return lerp(a, b, t) })
}

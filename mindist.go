package bezier

import "math"

// Minimum distance between two Bézier curves
//
// This implements the algorithm in "Computing the minimum distance between
// two Bézier curves", Chen et al., *Journal of Computational and Applied
// Mathematics* 229(2009), 294-301

// MinDistance encodes the minimum distance between two Bézier curves, as
// returned by [Curve.MinDistance].
type MinDistance struct {
	// The shortest distance between any two points on the two curves.
	Distance float64
	// The position of the nearest point on the first curve, as a parameter.
	T1 float64
	// The position of the nearest point on the second curve, as a parameter.
	T2 float64
}

// MinDistance returns the minimum distance between c and o, which may have
// different degrees. Parameter intervals shorter than accuracy aren't
// subdivided further.
//
// MinDistance panics with a [*PreconditionError] if either curve has fewer
// than two control points or if accuracy isn't positive.
func (c Curve) MinDistance(o Curve, accuracy float64) MinDistance {
	if len(c) < 2 || len(o) < 2 {
		violate("MinDistance", "curves need at least two control points")
	}
	if !(accuracy > 0) {
		violate("MinDistance", "accuracy %g is not positive", accuracy)
	}
	ret := minDistParam(
		vecs(c),
		vecs(o),
		[2]float64{0.0, 1.0},
		[2]float64{0.0, 1.0},
		accuracy,
		math.Inf(1),
	)
	distance, t1, t2 := ret[0], ret[1], ret[2]
	return MinDistance{
		Distance: math.Sqrt(distance),
		T1:       t1,
		T2:       t2,
	}
}

func vecs(c Curve) []Vec2 {
	out := make([]Vec2, len(c))
	for i, p := range c {
		out[i] = Vec2(p)
	}
	return out
}

func minDistParam(
	bez1, bez2 []Vec2,
	u, v [2]float64,
	epsilon float64,
	bestAlpha float64,
) [3]float64 {
	n := len(bez1) - 1
	m := len(bez2) - 1
	umin, umax := u[0], u[1]
	vmin, vmax := v[0], v[1]
	umid := (umin + umax) / 2.0
	vmid := (vmin + vmax) / 2.0
	svalues := [4][3]float64{
		{s(umin, vmin, bez1, bez2), umin, vmin},
		{s(umin, vmax, bez1, bez2), umin, vmax},
		{s(umax, vmin, bez1, bez2), umax, vmin},
		{s(umax, vmax, bez1, bez2), umax, vmax},
	}
	alpha := svalues[0][0]
	for _, sval := range svalues {
		alpha = min(alpha, sval[0])
	}
	if alpha > bestAlpha {
		return [3]float64{alpha, umid, vmid}
	}

	if math.Abs(umax-umin) < epsilon || math.Abs(vmax-vmin) < epsilon {
		return [3]float64{alpha, umid, vmid}
	}

	// Property one: D(r>k) > alpha
	//
	// The last index is left out on purpose. Splitting at r = 2n would
	// produce a sub-interval equal to [umin, umax] and the recursion would
	// never shrink it.
	isOutside := true
	minDrk := math.Inf(1)
	var minI, minJ int
	for r := range 2 * n {
		for k := range 2 * m {
			d := dRk(r, k, bez1, bez2)
			if d < alpha {
				isOutside = false
			}
			if d < minDrk {
				minDrk = d
				minI, minJ = r, k
			}
		}
	}
	if isOutside {
		return [3]float64{alpha, umid, vmid}
	}

	// Property two: boundary check
	atBoundary0OnBez1 := true
	atBoundary1OnBez1 := true
	atBoundary0OnBez2 := true
	atBoundary1OnBez2 := true
	for i := range 2 * n {
		for j := range 2 * m {
			dij := dRk(i, j, bez1, bez2)
			if dij < dRk(0, j, bez1, bez2) {
				atBoundary0OnBez1 = false
			}
			if dij < dRk(2*n, j, bez1, bez2) {
				atBoundary1OnBez1 = false
			}
			if dij < dRk(i, 0, bez1, bez2) {
				atBoundary0OnBez2 = false
			}
			if dij < dRk(i, 2*m, bez1, bez2) {
				atBoundary1OnBez2 = false
			}
		}
	}
	switch {
	case atBoundary0OnBez1 && atBoundary0OnBez2:
		return svalues[0]
	case atBoundary0OnBez1 && atBoundary1OnBez2:
		return svalues[1]
	case atBoundary1OnBez1 && atBoundary0OnBez2:
		return svalues[2]
	case atBoundary1OnBez1 && atBoundary1OnBez2:
		return svalues[3]
	}

	newUmid := umin + (umax-umin)*(float64(minI)/float64(2*n))
	newVmid := vmin + (vmax-vmin)*(float64(minJ)/float64(2*m))

	// Subdivide
	results := [4][3]float64{
		minDistParam(bez1, bez2, [2]float64{umin, newUmid}, [2]float64{vmin, newVmid}, epsilon, alpha),
		minDistParam(bez1, bez2, [2]float64{umin, newUmid}, [2]float64{newVmid, vmax}, epsilon, alpha),
		minDistParam(bez1, bez2, [2]float64{newUmid, umax}, [2]float64{vmin, newVmid}, epsilon, alpha),
		minDistParam(bez1, bez2, [2]float64{newUmid, umax}, [2]float64{newVmid, vmax}, epsilon, alpha),
	}

	out := results[0]
	for _, res := range results[1:] {
		if math.IsNaN(res[0]) || res[0] < out[0] {
			out = res
		}
	}
	return out
}

// s is the squared distance between the points at u on bez1 and v on bez2,
// written in the Bernstein basis of degree (2n, 2m).
func s(u, v float64, bez1, bez2 []Vec2) float64 {
	n := len(bez1) - 1
	m := len(bez2) - 1
	summand := 0.0
	for r := range 2*n + 1 {
		for k := range 2*m + 1 {
			summand += dRk(r, k, bez1, bez2) * Bernstein(2*n, r, u) * Bernstein(2*m, k, v)
		}
	}
	return summand
}

// choose is the binomial coefficient, zero outside of its domain.
func choose(n, k int) float64 {
	b, _ := Binomial(n, k)
	return b
}

func cRk(r, k int, bez1, bez2 []Vec2) float64 {
	var left Vec2
	n := len(bez1) - 1
	for i := max(r-n, 0); i <= min(r, n); i++ {
		left = left.Add(bez1[i].Mul(choose(n, i) * choose(n, r-i) / choose(2*n, r)))
	}

	var right Vec2
	m := len(bez2) - 1
	for j := max(k-m, 0); j <= min(k, m); j++ {
		right = right.Add(bez2[j].Mul(choose(m, j) * choose(m, k-j) / choose(2*m, k)))
	}

	return left.Dot(right)
}

func aR(r int, p []Vec2) float64 {
	n := len(p) - 1
	var sum float64
	for i := max(r-n, 0); i <= min(r, n); i++ {
		sum += p[i].Dot(p[r-i]) * choose(n, i) * choose(n, r-i) / choose(2*n, r)
	}
	return sum
}

func dRk(r, k int, bez1, bez2 []Vec2) float64 {
	// In the paper, B_k is used for the second factor, but it's the same thing
	return aR(r, bez1) + aR(k, bez2) - 2.0*cRk(r, k, bez1, bez2)
}

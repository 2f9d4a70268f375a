package bezier

import (
	"fmt"
	"strings"
)

// Continuity is the smoothness enforced where piecewise segments meet.
type Continuity int

const (
	// C0 segments share their boundary point.
	C0 Continuity = iota
	// C1 segments share their boundary point and the tangent direction at it.
	C1
)

func (c Continuity) String() string {
	switch c {
	case C0:
		return "C0"
	case C1:
		return "C1"
	default:
		return fmt.Sprintf("Continuity(%d)", int(c))
	}
}

func (c Continuity) valid() bool { return c == C0 || c == C1 }

// ParseContinuity parses "C0" or "C1", ignoring case.
func ParseContinuity(s string) (Continuity, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "C0":
		return C0, nil
	case "C1":
		return C1, nil
	default:
		return 0, fmt.Errorf("unknown continuity %q: %w", s, ErrInvalidParameter)
	}
}

// Fallback describes what to draw instead when a piecewise composition isn't
// possible. Falling back is a policy, not an error.
type Fallback int

const (
	// FallbackNone means the composition succeeded.
	FallbackNone Fallback = iota
	// FallbackPolygon means drawing the raw control polygon, because the
	// degree is too low to enforce tangent continuity.
	FallbackPolygon
	// FallbackCurve means evaluating all control points as a single curve,
	// because there are too few points for more than one segment.
	FallbackCurve
)

func (fb Fallback) String() string {
	switch fb {
	case FallbackNone:
		return "none"
	case FallbackPolygon:
		return "control polygon"
	case FallbackCurve:
		return "single curve"
	default:
		return fmt.Sprintf("Fallback(%d)", int(fb))
	}
}

// ComposeC0 partitions pts into consecutive curves of degree+1 points, where
// each curve's last point is the next curve's first point. Points that don't
// fill a whole curve form a final, shorter curve. A lone leftover point, which
// is already the previous curve's end, doesn't form a curve.
//
// The returned curves alias pts.
//
// ComposeC0 panics with a [*PreconditionError] if degree < 1.
func ComposeC0(pts []Point, degree int) []Curve {
	if degree < 1 {
		violate("ComposeC0", "degree %d is less than 1", degree)
	}
	var out []Curve
	i := 0
	for len(pts)-i > degree {
		out = append(out, Curve(pts[i:i+degree+1:i+degree+1]))
		i += degree
	}
	if len(pts)-i >= 2 {
		out = append(out, Curve(pts[i:len(pts):len(pts)]))
	}
	return out
}

// ComposeC1 partitions pts into curves that are C1 continuous where they meet.
// Boundaries are synthesized midpoints of two consecutive raw points, which
// makes the tangents on either side collinear.
//
// The first curve takes the first degree points plus the midpoint of the next
// two. Each following curve starts at the previous midpoint, takes degree-1
// raw points and ends at a new midpoint. The final curve starts at the last
// midpoint and takes all remaining points.
//
// It falls back to [FallbackPolygon] if degree < 2, and to [FallbackCurve] if
// pts doesn't have more than degree+1 points.
//
// ComposeC1 panics with a [*PreconditionError] if degree < 1.
func ComposeC1(pts []Point, degree int) ([]Curve, Fallback) {
	if degree < 1 {
		violate("ComposeC1", "degree %d is less than 1", degree)
	}
	if degree < 2 {
		return nil, FallbackPolygon
	}
	n := len(pts)
	if n <= degree+1 {
		return nil, FallbackCurve
	}

	first := make(Curve, 0, degree+1)
	first = append(first, pts[:degree]...)
	i := degree
	mid := pts[i-1].Midpoint(pts[i])
	first = append(first, mid)
	out := []Curve{first}

	for n-i > degree {
		seg := make(Curve, 0, degree+1)
		seg = append(seg, mid)
		seg = append(seg, pts[i:i+degree-1]...)
		i += degree - 1
		mid = pts[i-1].Midpoint(pts[i])
		seg = append(seg, mid)
		out = append(out, seg)
	}

	last := make(Curve, 0, n-i+1)
	last = append(last, mid)
	last = append(last, pts[i:]...)
	return append(out, last), FallbackNone
}

// Compose dispatches to [ComposeC0] or [ComposeC1].
func Compose(pts []Point, degree int, continuity Continuity) ([]Curve, Fallback) {
	switch continuity {
	case C0:
		return ComposeC0(pts, degree), FallbackNone
	case C1:
		return ComposeC1(pts, degree)
	default:
		violate("Compose", "unknown continuity %d", int(continuity))
		return nil, FallbackNone
	}
}

package render

import (
	"slices"

	"honnef.co/go/bezier"
)

var _ bezier.Renderer = (*Recorder)(nil)

type CallKind int

const (
	SetupCall CallKind = iota
	LineCall
	PointsCall
)

func (k CallKind) String() string {
	switch k {
	case SetupCall:
		return "Setup"
	case LineCall:
		return "DrawLine"
	case PointsCall:
		return "DrawPoints"
	default:
		return "CallKind(?)"
	}
}

// Call is one recorded renderer call. Points holds the line's two endpoints
// for LineCall and the drawn points for PointsCall.
type Call struct {
	Kind   CallKind
	Points []bezier.Point
}

// Recorder records every call it receives. Setup is recorded too, it does
// not discard earlier calls; use [Recorder.Reset] for that.
type Recorder struct {
	Calls []Call
}

func (r *Recorder) Setup() { r.Calls = append(r.Calls, Call{Kind: SetupCall}) }

func (r *Recorder) DrawLine(p0, p1 bezier.Point) {
	r.Calls = append(r.Calls, Call{Kind: LineCall, Points: []bezier.Point{p0, p1}})
}

func (r *Recorder) DrawPoints(pts []bezier.Point) {
	r.Calls = append(r.Calls, Call{Kind: PointsCall, Points: slices.Clone(pts)})
}

func (r *Recorder) Reset() { r.Calls = nil }

// Lines returns the lines drawn since the last Setup.
func (r *Recorder) Lines() []bezier.Line {
	var out []bezier.Line
	for _, c := range r.Calls[r.lastSetup():] {
		if c.Kind == LineCall {
			out = append(out, bezier.Line{P0: c.Points[0], P1: c.Points[1]})
		}
	}
	return out
}

// Points returns the point sets drawn since the last Setup.
func (r *Recorder) Points() [][]bezier.Point {
	var out [][]bezier.Point
	for _, c := range r.Calls[r.lastSetup():] {
		if c.Kind == PointsCall {
			out = append(out, c.Points)
		}
	}
	return out
}

// Count returns the number of recorded calls of the given kind.
func (r *Recorder) Count(kind CallKind) int {
	n := 0
	for _, c := range r.Calls {
		if c.Kind == kind {
			n++
		}
	}
	return n
}

func (r *Recorder) lastSetup() int {
	for i := len(r.Calls) - 1; i >= 0; i-- {
		if r.Calls[i].Kind == SetupCall {
			return i
		}
	}
	return 0
}

// Replay sends the recorded calls to dst in order.
func (r *Recorder) Replay(dst bezier.Renderer) {
	for _, c := range r.Calls {
		switch c.Kind {
		case SetupCall:
			dst.Setup()
		case LineCall:
			dst.DrawLine(c.Points[0], c.Points[1])
		case PointsCall:
			dst.DrawPoints(c.Points)
		}
	}
}

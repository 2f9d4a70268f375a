// Package animate plays back de Casteljau constructions step by step.
//
// [Script] turns the frames produced by [bezier.Curve.Steps] into a sequence
// of shots, each showing a little more of the construction. A [Player] draws
// the shots onto a renderer, pausing between them, and [GIF] captures them as
// an animated image.
package animate

import (
	"time"

	"honnef.co/go/bezier"
)

// Timing controls the pace of playback.
type Timing struct {
	// Intro is how long the bare control points are shown.
	Intro time.Duration
	// Step is how long every following shot is shown.
	Step time.Duration
}

func DefaultTiming() Timing {
	return Timing{
		Intro: 1200 * time.Millisecond,
		Step:  750 * time.Millisecond,
	}
}

// Shot is one picture of the playback, drawn on top of the control points.
type Shot struct {
	// Levels are the intermediate point sets revealed so far.
	Levels [][]bezier.Point
	// Lines are the construction lines revealed so far.
	Lines []bezier.Line
	// Hold is how long the shot stays before the next one.
	Hold time.Duration
}

// Draw clears r and draws the control points followed by the shot.
func (s Shot) Draw(r bezier.Renderer, control []bezier.Point) {
	r.Setup()
	r.DrawPoints(control)
	for _, lvl := range s.Levels {
		r.DrawPoints(lvl)
	}
	for _, l := range s.Lines {
		r.DrawLine(l.P0, l.P1)
	}
}

// Script builds the shots revealing the de Casteljau construction of the
// curve with the given control points, whose levels are frames. It starts
// with the bare control points and reveals the lines of the control polygon
// one at a time. Then, for every frame but the last, it shows the frame's
// points and reveals the lines between them one at a time. The final shot
// adds the point on the curve.
//
// Shots don't share memory with each other, so they can be modified freely.
func Script(control []bezier.Point, frames []bezier.Frame, timing Timing) []Shot {
	shots := []Shot{{Hold: timing.Intro}}

	var levels [][]bezier.Point
	var lines []bezier.Line
	snapshot := func() Shot {
		return Shot{
			Levels: append([][]bezier.Point(nil), levels...),
			Lines:  append([]bezier.Line(nil), lines...),
			Hold:   timing.Step,
		}
	}
	reveal := func(pts []bezier.Point) {
		for l := range bezier.Polygon(pts) {
			lines = append(lines, l)
			shots = append(shots, snapshot())
		}
	}

	if len(frames) == 0 {
		return shots
	}
	reveal(control)
	for _, f := range frames[:len(frames)-1] {
		levels = append(levels, f)
		shots = append(shots, snapshot())
		reveal(f)
	}
	levels = append(levels, frames[len(frames)-1])
	return append(shots, snapshot())
}

// Duration returns the total time the shots are shown for.
func Duration(shots []Shot) time.Duration {
	var d time.Duration
	for _, s := range shots {
		d += s.Hold
	}
	return d
}

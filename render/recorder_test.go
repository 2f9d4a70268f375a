package render

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"honnef.co/go/bezier"
)

func TestRecorder(t *testing.T) {
	ctl := bezier.NewController(&Recorder{})
	ctl.AddControlPoint(bezier.Pt(0, 0))
	ctl.AddControlPoint(bezier.Pt(1, 1))
	ctl.AddControlPoint(bezier.Pt(2, 0))
	assert.NoError(t, ctl.SetMode(bezier.Subdivision))
	ctl.Draw()
	ctl.Draw()

	rec := ctl.Renderer().(*Recorder)
	assert.Equal(t, 2, rec.Count(SetupCall))
	assert.Equal(t, 4, rec.Count(LineCall))
	assert.Equal(t, []bezier.Line{
		{P0: bezier.Pt(0, 0), P1: bezier.Pt(1, 1)},
		{P0: bezier.Pt(1, 1), P1: bezier.Pt(2, 0)},
	}, rec.Lines())
	assert.Equal(t, [][]bezier.Point{ctl.ControlPoints()}, rec.Points())

	var replay Recorder
	rec.Replay(&replay)
	assert.Equal(t, rec.Calls, replay.Calls)

	rec.Reset()
	assert.Empty(t, rec.Calls)
	assert.Empty(t, rec.Lines())
}

func TestCallKindString(t *testing.T) {
	assert.Equal(t, "DrawLine", LineCall.String())
	assert.Equal(t, "Setup", SetupCall.String())
}

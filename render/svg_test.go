package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier"
)

func TestSVG(t *testing.T) {
	s := NewSVG(bezier.Sz(100, 100), DefaultViewport, DefaultStyle())
	s.Setup()
	s.DrawLine(bezier.Pt(-1, 0), bezier.Pt(0, 0))
	s.DrawLine(bezier.Pt(0, 0), bezier.Pt(1, 0))
	s.DrawLine(bezier.Pt(0, 1), bezier.Pt(0, -1))
	s.DrawPoints([]bezier.Point{bezier.Pt(1, 1)})

	var buf bytes.Buffer
	n, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.EqualValues(t, buf.Len(), n)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, `<svg viewBox="0 0 100 100"`))
	assert.True(t, strings.HasSuffix(out, "</svg>\n"))
	assert.Contains(t, out, `<path d="M0.000000,50.000000 L50.000000,50.000000 L100.000000,50.000000"`)
	assert.Contains(t, out, `<path d="M50.000000,0.000000 L50.000000,100.000000"`)
	assert.Contains(t, out, `<circle cx="100.000000" cy="0.000000" r="4" fill="#e65100" />`)
	assert.Equal(t, 2, strings.Count(out, "<path "))
}

func TestSVGSetupClears(t *testing.T) {
	s := NewSVG(bezier.Sz(10, 10), DefaultViewport, DefaultStyle())
	s.DrawLine(bezier.Pt(-1, 0), bezier.Pt(1, 0))
	s.Setup()

	var buf bytes.Buffer
	_, err := s.WriteTo(&buf)
	require.NoError(t, err)
	assert.NotContains(t, buf.String(), "<path ")
}

func TestSVGInvalidSize(t *testing.T) {
	assert.Panics(t, func() { NewSVG(bezier.Sz(0, 10), DefaultViewport, DefaultStyle()) })
}

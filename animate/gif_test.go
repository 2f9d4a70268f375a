package animate

import (
	"bytes"
	"image/gif"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier/render"
)

func TestGIF(t *testing.T) {
	r := render.NewRaster(64, 64, render.DefaultViewport, render.DefaultStyle())
	shots := Script(cubic, cubic.Steps(0.5), DefaultTiming())

	var buf bytes.Buffer
	require.NoError(t, GIF(&buf, r, cubic, shots))

	anim, err := gif.DecodeAll(&buf)
	require.NoError(t, err)
	require.Len(t, anim.Image, len(shots))
	assert.Equal(t, 120, anim.Delay[0])
	assert.Equal(t, 75, anim.Delay[1])
	assert.Equal(t, 64, anim.Image[0].Bounds().Dx())
}

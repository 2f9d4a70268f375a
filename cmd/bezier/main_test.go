package main

import (
	"bytes"
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"honnef.co/go/bezier"
)

var cubicArgs = []string{
	"--point", "0,0",
	"--point", "0,1",
	"--point", "1,1",
	"--point", "1,0",
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	t.Cleanup(func() { bezier.SetLogger(nil) })
	return out.String(), err
}

func TestEval(t *testing.T) {
	out, err := run(t, append([]string{"eval", "--t", "0.5"}, cubicArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, "(0.5, 0.75)\n", out)

	out, err = run(t, append([]string{"eval", "--steps", "--set", "t_percent=50"}, cubicArgs...)...)
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"(0.5, 0.75)",
		"0: (0, 0.5) (0.5, 1) (1, 0.5)",
		"1: (0.25, 0.75) (0.75, 0.75)",
		"2: (0.5, 0.75)",
		"",
	}, "\n"), out)
}

func TestEvalErrors(t *testing.T) {
	_, err := run(t, "eval", "--point", "0,0")
	assert.Error(t, err)

	_, err = run(t, append([]string{"eval", "--t", "2"}, cubicArgs...)...)
	assert.ErrorIs(t, err, bezier.ErrInvalidParameter)

	_, err = run(t, append([]string{"eval", "--set", "bogus=1"}, cubicArgs...)...)
	assert.Error(t, err)
}

func TestRenderPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "curve.png")
	_, err := run(t, append([]string{"render", "-o", path, "--width", "64", "--height", "32"}, cubicArgs...)...)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 64, img.Bounds().Dx())
	assert.Equal(t, 32, img.Bounds().Dy())
}

func TestRenderSessionSVG(t *testing.T) {
	dir := t.TempDir()
	session := filepath.Join(dir, "session.yaml")
	require.NoError(t, os.WriteFile(session, []byte(`
mode: subdivision
subdivision_level: 1
points: [[-1, -1], [0, 1], [1, -1]]
`), 0o644))

	path := filepath.Join(dir, "curve.svg")
	_, err := run(t, "render", "-s", session, "-o", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "<svg")
	assert.Equal(t, 3, strings.Count(string(data), "<circle"))
}

func TestRenderUnknownFormat(t *testing.T) {
	_, err := run(t, append([]string{"render", "-o", filepath.Join(t.TempDir(), "curve.jpg")}, cubicArgs...)...)
	assert.ErrorContains(t, err, "unsupported output format")
}

func TestAnimate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "steps.gif")
	_, err := run(t, append([]string{"animate", "-o", path, "--width", "40", "--height", "40", "--step", "100ms"}, cubicArgs...)...)
	require.NoError(t, err)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	anim, err := gif.DecodeAll(f)
	require.NoError(t, err)
	assert.Len(t, anim.Image, 10)
	assert.Equal(t, 10, anim.Delay[1])
}

func TestDistance(t *testing.T) {
	out, err := run(t, "distance",
		"--point", "0,0", "--point", "1,0",
		"--other", "0,1", "--other", "1,1")
	require.NoError(t, err)
	var d float64
	_, err = fmt.Sscanf(out, "%g at", &d)
	require.NoError(t, err, out)
	assert.InDelta(t, 1, d, 1e-6)

	_, err = run(t, "distance", "--point", "0,0", "--point", "1,0")
	assert.ErrorIs(t, err, bezier.ErrTooFewPoints)

	for _, acc := range []string{"0", "-0.5", "NaN"} {
		_, err = run(t, "distance",
			"--point", "0,0", "--point", "1,0",
			"--other", "0,1", "--other", "1,1",
			"--accuracy", acc)
		assert.ErrorIs(t, err, bezier.ErrInvalidParameter, acc)
	}
}

func TestRenderFit(t *testing.T) {
	dir := t.TempDir()
	args := []string{
		"--width", "50", "--height", "50",
		"--point", "-4,0", "--point", "0,4", "--point", "4,0",
	}
	read := func(name string, extra ...string) string {
		path := filepath.Join(dir, name)
		_, err := run(t, append(append([]string{"render", "-o", path}, extra...), args...)...)
		require.NoError(t, err)
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}

	// Without --fit the outer control points land outside the image.
	plain := read("plain.svg")
	fit := read("fit.svg", "--fit")
	assert.NotEqual(t, plain, fit)
	assert.NotContains(t, fit, `cx="-`)
	assert.Contains(t, plain, `cx="-`)
}

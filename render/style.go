package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"honnef.co/go/bezier"
)

// DefaultViewport is the visible part of the scene: the square [-1, 1]².
var DefaultViewport = bezier.Rect{X0: -1, Y0: -1, X1: 1, Y1: 1}

// Style describes how renderers draw lines and points.
type Style struct {
	Background color.RGBA
	Curve      color.RGBA
	Points     color.RGBA
	// LineWidth is the width of lines, in output units (pixels for Raster).
	LineWidth float64
	// PointSize is the diameter of point markers, in output units.
	PointSize float64
}

func DefaultStyle() Style {
	return Style{
		Background: color.RGBA{255, 255, 255, 255},
		Curve:      color.RGBA{21, 101, 192, 255},
		Points:     color.RGBA{230, 81, 0, 255},
		LineWidth:  2,
		PointSize:  8,
	}
}

// ParseColor parses colors of the form "#rgb", "#rrggbb" and "#rrggbbaa".
// The leading '#' is optional.
func ParseColor(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("render: invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("render: invalid color %q: %w", s, err)
	}
	return color.RGBA{uint8(v >> 24), uint8(v >> 16), uint8(v >> 8), uint8(v)}, nil
}

// FormatColor formats c as "#rrggbb", or "#rrggbbaa" if it isn't opaque.
func FormatColor(c color.RGBA) string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

package animate

import (
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"
	"time"

	xdraw "golang.org/x/image/draw"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
)

// GIF draws every shot with r and writes the results to w as an animated GIF
// that loops forever. Each image is shown for its shot's hold time.
func GIF(w io.Writer, r *render.Raster, control []bezier.Point, shots []Shot) error {
	anim := &gif.GIF{LoopCount: 0}
	for _, s := range shots {
		s.Draw(r, control)
		anim.Image = append(anim.Image, quantize(r.Image()))
		anim.Delay = append(anim.Delay, centiseconds(s.Hold))
	}
	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("animate: encoding GIF: %w", err)
	}
	return nil
}

func quantize(img image.Image) *image.Paletted {
	pal := make(color.Palette, len(palette.WebSafe))
	copy(pal, palette.WebSafe)
	dst := image.NewPaletted(img.Bounds(), pal)
	xdraw.FloydSteinberg.Draw(dst, dst.Bounds(), img, img.Bounds().Min)
	return dst
}

func centiseconds(d time.Duration) int {
	return int(d / (10 * time.Millisecond))
}

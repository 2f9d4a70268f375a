package bezier

import "fmt"

// Size is the size of a drawing surface, such as an image or an SVG
// document.
type Size struct {
	Width  float64
	Height float64
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// IsEmpty reports whether sz has no area. NaN sizes are empty.
func (sz Size) IsEmpty() bool {
	return !(sz.Width > 0 && sz.Height > 0)
}

// AspectRatio returns height / width, like [Rect.AspectRatio].
func (sz Size) AspectRatio() float64 {
	return sz.Height / sz.Width
}

// ToRect returns the rectangle of size sz with its origin at (0, 0).
func (sz Size) ToRect() Rect {
	return Rect{X1: sz.Width, Y1: sz.Height}
}

package render

import "honnef.co/go/bezier"

// FitViewport returns a viewport that shows DefaultViewport as well as every
// point, padded by margin in scene units. The viewport is grown to the aspect
// ratio of size so that the scene isn't stretched.
func FitViewport(pts []bezier.Point, size bezier.Size, margin float64) bezier.Rect {
	r := DefaultViewport
	if bbox, ok := bezier.BoundingBoxOf(pts); ok {
		r = r.Union(bbox.Inflate(margin, margin))
	}
	if size.IsEmpty() {
		return r
	}

	w, h := r.Width(), r.Height()
	if want := size.AspectRatio(); r.AspectRatio() < want {
		h = w * want
	} else {
		w = h / want
	}
	c := r.Center()
	return bezier.Rect{
		X0: c.X - w/2,
		Y0: c.Y - h/2,
		X1: c.X + w/2,
		Y1: c.Y + h/2,
	}
}

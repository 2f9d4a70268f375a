package bezier

// Renderer is the drawing surface a [Controller] draws onto. Coordinates are
// those of the control points; mapping them to pixels is the renderer's job.
type Renderer interface {
	// Setup prepares the surface for a new drawing, clearing the previous one.
	Setup()
	// DrawLine draws a line segment from p0 to p1.
	DrawLine(p0, p1 Point)
	// DrawPoints draws markers at the given points.
	DrawPoints(pts []Point)
}

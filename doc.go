// Package bezier evaluates, subdivides and composes Bézier curves of
// arbitrary degree, and draws them in several modes for interactive editing.
//
// # Curves
//
// A [Curve] is an ordered slice of control points. Its degree is one less
// than the number of points, and at least two points are needed for a curve
// to exist. [Curve.Eval] evaluates the curve with the Bernstein form, using
// [Binomial] and [Bernstein]. [Curve.Subdivide] halves a curve with de
// Casteljau's construction and [SubdivideN] repeats that to any depth.
// [Curve.Steps] returns every level of the construction at a parameter, which
// is what an animation of the construction plays back. [Curve.MinDistance]
// finds the closest points of two curves, which may differ in degree.
//
// # Piecewise curves
//
// [ComposeC0] and [ComposeC1] split a long sequence of control points into
// curves of a fixed degree. C0 curves share their endpoints. C1 curves
// additionally share tangent directions, which is achieved by inserting the
// midpoint of two consecutive control points as the boundary between curves.
// When there are too few points or the degree is too low, ComposeC1 reports a
// [Fallback] instead of curves.
//
// # Drawing
//
// A [Controller] owns the control points and [Params] of one curve and draws
// it onto a [Renderer] in one of four modes: [Basic], [Subdivision],
// [Piecewise] and [DeCasteljau]. The controller never touches pixels; the
// render package provides raster, SVG and recording renderers, and the animate
// package plays back de Casteljau constructions.
//
// # Preconditions
//
// Evaluating a curve with fewer than two points, using a parameter outside [0,
// 1] or subdividing an empty curve are programming errors. These operations
// panic with a [*PreconditionError], which matches [ErrPrecondition] under
// [errors.Is]. The controller's setters validate their input and return
// errors wrapping [ErrInvalidParameter] instead.
//
// # Coordinates
//
// Coordinates are unitless. The tools in this module use a y-up space in
// which [-1, 1]² is the visible canvas; see [MapRect] for converting to pixel
// space.
package bezier

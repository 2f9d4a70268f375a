package bezier

import (
	"fmt"
	"iter"
	"slices"
	"strings"
)

// Mode selects how a [Controller] draws its curve.
type Mode int

const (
	// Basic evaluates the whole curve and draws it as connected lines.
	Basic Mode = iota
	// Subdivision draws the control polygons of the curve's subdivisions.
	Subdivision
	// Piecewise splits the control points into curves of a fixed degree.
	Piecewise
	// DeCasteljau shows the de Casteljau construction at one parameter.
	DeCasteljau
)

var modeNames = [...]string{
	Basic:       "Basic",
	Subdivision: "Subdivision",
	Piecewise:   "Piecewise",
	DeCasteljau: "De Casteljau",
}

func (m Mode) String() string {
	if m.valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

func (m Mode) valid() bool { return m >= Basic && m <= DeCasteljau }

// ParseMode parses a mode name. Case, spaces, hyphens and underscores are
// ignored, so "De Casteljau" and "decasteljau" are the same mode.
func ParseMode(s string) (Mode, error) {
	norm := func(s string) string {
		return strings.ToLower(strings.NewReplacer(" ", "", "-", "", "_", "").Replace(s))
	}
	want := norm(s)
	for m, name := range modeNames {
		if norm(name) == want {
			return Mode(m), nil
		}
	}
	return 0, fmt.Errorf("unknown mode %q: %w", s, ErrInvalidParameter)
}

// MaxSubdivisionLevel bounds the subdivision level, as every level doubles
// the number of curves.
const MaxSubdivisionLevel = 16

// Params are the parameters that control how a curve is drawn.
type Params struct {
	Mode       Mode
	Continuity Continuity
	// SubdivisionLevel is the number of times the curve is subdivided in
	// Subdivision mode.
	SubdivisionLevel uint
	// PiecewiseDegree is the degree of each segment in Piecewise mode. It
	// must be at least 1.
	PiecewiseDegree int
	// DeCasteljauT is the parameter of the de Casteljau construction, in [0, 1].
	DeCasteljauT float64
	// Samples is the number of lines used to draw each evaluated curve, at
	// most MaxSamples.
	Samples int
}

// DefaultParams returns the parameters a new [Controller] starts with.
func DefaultParams() Params {
	return Params{
		Mode:             Basic,
		Continuity:       C0,
		SubdivisionLevel: 0,
		PiecewiseDegree:  1,
		DeCasteljauT:     0.5,
		Samples:          DefaultSamples,
	}
}

// Validate reports the first invalid parameter.
func (p Params) Validate() error {
	switch {
	case !p.Mode.valid():
		return fmt.Errorf("mode %d: %w", int(p.Mode), ErrInvalidParameter)
	case !p.Continuity.valid():
		return fmt.Errorf("continuity %d: %w", int(p.Continuity), ErrInvalidParameter)
	case p.SubdivisionLevel > MaxSubdivisionLevel:
		return fmt.Errorf("subdivision level %d exceeds %d: %w", p.SubdivisionLevel, MaxSubdivisionLevel, ErrInvalidParameter)
	case p.PiecewiseDegree < 1:
		return fmt.Errorf("piecewise degree %d is less than 1: %w", p.PiecewiseDegree, ErrInvalidParameter)
	case checkT("", p.DeCasteljauT) != nil:
		return fmt.Errorf("de Casteljau t = %g is outside [0, 1]: %w", p.DeCasteljauT, ErrInvalidParameter)
	case p.Samples < 1:
		return fmt.Errorf("sample count %d is less than 1: %w", p.Samples, ErrInvalidParameter)
	case p.Samples > MaxSamples:
		return fmt.Errorf("sample count %d exceeds %d: %w", p.Samples, MaxSamples, ErrInvalidParameter)
	}
	return nil
}

// Controller holds the control points and parameters of one curve and draws
// it onto a [Renderer] according to the active mode. Drawing never modifies
// the control points; only the control point methods do.
//
// A Controller is not safe for concurrent use.
type Controller struct {
	r      Renderer
	points []Point
	params Params
}

// NewController returns a controller with no control points and default
// parameters that draws onto r.
func NewController(r Renderer) *Controller {
	return &Controller{
		r:      r,
		params: DefaultParams(),
	}
}

func (c *Controller) Renderer() Renderer     { return c.r }
func (c *Controller) SetRenderer(r Renderer) { c.r = r }

func (c *Controller) Params() Params { return c.params }

// SetParams replaces all parameters at once. Nothing changes if p is invalid.
func (c *Controller) SetParams(p Params) error {
	if err := p.Validate(); err != nil {
		return err
	}
	c.params = p
	return nil
}

func (c *Controller) set(mut func(p *Params)) error {
	p := c.params
	mut(&p)
	return c.SetParams(p)
}

func (c *Controller) Mode() Mode { return c.params.Mode }
func (c *Controller) SetMode(m Mode) error {
	return c.set(func(p *Params) { p.Mode = m })
}

func (c *Controller) Continuity() Continuity { return c.params.Continuity }
func (c *Controller) SetContinuity(cont Continuity) error {
	return c.set(func(p *Params) { p.Continuity = cont })
}

func (c *Controller) SubdivisionLevel() uint { return c.params.SubdivisionLevel }
func (c *Controller) SetSubdivisionLevel(level uint) error {
	return c.set(func(p *Params) { p.SubdivisionLevel = level })
}

func (c *Controller) PiecewiseDegree() int { return c.params.PiecewiseDegree }
func (c *Controller) SetPiecewiseDegree(degree int) error {
	return c.set(func(p *Params) { p.PiecewiseDegree = degree })
}

func (c *Controller) DeCasteljauT() float64 { return c.params.DeCasteljauT }
func (c *Controller) SetDeCasteljauT(t float64) error {
	return c.set(func(p *Params) { p.DeCasteljauT = t })
}

func (c *Controller) Samples() int { return c.params.Samples }
func (c *Controller) SetSamples(n int) error {
	return c.set(func(p *Params) { p.Samples = n })
}

// Len returns the number of control points.
func (c *Controller) Len() int { return len(c.points) }

// ControlPoints returns a copy of the control points.
func (c *Controller) ControlPoints() []Point {
	return slices.Clone(c.points)
}

// ControlPoint returns the control point at idx.
func (c *Controller) ControlPoint(idx int) (Point, bool) {
	if idx < 0 || idx >= len(c.points) {
		return Point{}, false
	}
	return c.points[idx], true
}

// AddControlPoint appends a control point.
func (c *Controller) AddControlPoint(p Point) {
	c.points = append(c.points, p)
}

// MoveControlPoint replaces the control point at idx, as when the user drags it.
func (c *Controller) MoveControlPoint(idx int, p Point) error {
	if idx < 0 || idx >= len(c.points) {
		return fmt.Errorf("move %d of %d: %w", idx, len(c.points), ErrIndexOutOfRange)
	}
	c.points[idx] = p
	return nil
}

// RemoveControlPoint removes the first control point equal to p. It reports
// whether a point was removed.
func (c *Controller) RemoveControlPoint(p Point) bool {
	idx := slices.Index(c.points, p)
	if idx < 0 {
		return false
	}
	c.points = slices.Delete(c.points, idx, idx+1)
	return true
}

// RemoveControlPointAt removes the control point at idx.
func (c *Controller) RemoveControlPointAt(idx int) error {
	if idx < 0 || idx >= len(c.points) {
		return fmt.Errorf("remove %d of %d: %w", idx, len(c.points), ErrIndexOutOfRange)
	}
	c.points = slices.Delete(c.points, idx, idx+1)
	return nil
}

// ClearControlPoints removes all control points.
func (c *Controller) ClearControlPoints() {
	c.points = nil
}

// Curve returns a copy of the control points as a curve.
func (c *Controller) Curve() Curve {
	return Curve(c.ControlPoints())
}

// Lines returns the lines that draw the curve in the current mode. Fewer than
// two control points produce no lines, and so does DeCasteljau mode, which
// only marks the evaluated point.
//
// The lines are computed from a snapshot of the current state.
func (c *Controller) Lines() iter.Seq[Line] {
	pts := c.Curve()
	p := c.params
	log := Logger()
	empty := func(yield func(Line) bool) {}

	if len(pts) < 2 {
		return empty
	}

	switch p.Mode {
	case Basic:
		log.Debug("evaluating curve", "degree", pts.Degree(), "samples", p.Samples)
		return pts.Polyline(p.Samples)

	case Subdivision:
		if p.SubdivisionLevel == 0 {
			return pts.ControlPolygon()
		}
		curves := SubdivideN(pts, p.SubdivisionLevel)
		log.Debug("subdivided curve", "level", p.SubdivisionLevel, "curves", len(curves))
		return concat(curves, Curve.ControlPolygon)

	case Piecewise:
		segs, fb := Compose(pts, p.PiecewiseDegree, p.Continuity)
		switch fb {
		case FallbackPolygon:
			log.Debug("piecewise fallback", "fallback", fb, "degree", p.PiecewiseDegree, "continuity", p.Continuity)
			return pts.ControlPolygon()
		case FallbackCurve:
			log.Debug("piecewise fallback", "fallback", fb, "degree", p.PiecewiseDegree, "points", len(pts))
			return pts.Polyline(p.Samples)
		}
		log.Debug("composed piecewise curve", "continuity", p.Continuity, "degree", p.PiecewiseDegree, "segments", len(segs))
		return concat(segs, func(seg Curve) iter.Seq[Line] { return seg.Polyline(p.Samples) })

	default:
		return empty
	}
}

func concat(curves []Curve, f func(Curve) iter.Seq[Line]) iter.Seq[Line] {
	return func(yield func(Line) bool) {
		for _, c := range curves {
			for l := range f(c) {
				if !yield(l) {
					return
				}
			}
		}
	}
}

// Steps returns the de Casteljau construction of the curve at the current
// parameter t, for animating it.
func (c *Controller) Steps() ([]Frame, error) {
	if len(c.points) < 2 {
		return nil, fmt.Errorf("de Casteljau steps: %w", ErrTooFewPoints)
	}
	return c.Curve().Steps(c.params.DeCasteljauT), nil
}

// Draw clears the renderer, draws the control points and then the curve in
// the current mode. In DeCasteljau mode the point on the curve at the current
// parameter is marked instead.
//
// Draw panics if the controller has no renderer.
func (c *Controller) Draw() {
	if c.r == nil {
		violate("Draw", "controller has no renderer")
	}
	c.r.Setup()
	c.r.DrawPoints(c.ControlPoints())
	for l := range c.Lines() {
		c.r.DrawLine(l.P0, l.P1)
	}
	if c.params.Mode == DeCasteljau && len(c.points) >= 2 {
		frames := c.Curve().Steps(c.params.DeCasteljauT)
		c.r.DrawPoints(frames[len(frames)-1])
	}
}

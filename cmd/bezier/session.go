package main

import (
	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
	"honnef.co/go/bezier/scene"
)

// sessionFlags are the flags shared by commands that build a curve.
type sessionFlags struct {
	path   string
	points []string
	sets   []string
	width  int
	height int
	fit    bool
}

// fitMargin pads the control points when fitting the viewport to them.
const fitMargin = 0.1

func (sf *sessionFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVarP(&sf.path, "session", "s", "", "load a session file (.yaml, .yml or .toml)")
	f.StringArrayVarP(&sf.points, "point", "p", nil, "append a control point `x,y`")
	f.StringArrayVar(&sf.sets, "set", nil, "set a parameter with `field=value`")
	f.IntVar(&sf.width, "width", 0, "override the canvas width")
	f.IntVar(&sf.height, "height", 0, "override the canvas height")
}

// registerDrawing adds the flags of commands that draw images.
func (sf *sessionFlags) registerDrawing(cmd *cobra.Command) {
	sf.register(cmd)
	cmd.Flags().BoolVar(&sf.fit, "fit", false, "widen the view to show control points outside the default canvas")
}

// load builds the session described by the flags.
func (sf *sessionFlags) load() (*scene.File, error) {
	file := scene.New()
	if sf.path != "" {
		var err error
		if file, err = scene.Load(sf.path); err != nil {
			return nil, err
		}
	}
	return sf.override(file)
}

// override applies the command line settings on top of file.
func (sf *sessionFlags) override(file *scene.File) (*scene.File, error) {
	ctl := bezier.NewController(nil)
	if err := file.Apply(ctl); err != nil {
		return nil, err
	}
	for _, s := range sf.points {
		p, err := scene.ParsePoint(s)
		if err != nil {
			return nil, err
		}
		ctl.AddControlPoint(p)
	}
	for _, kv := range sf.sets {
		if err := scene.ApplyAssignment(ctl, kv); err != nil {
			return nil, err
		}
	}

	canvas := file.Canvas
	if sf.width > 0 {
		canvas.Width = sf.width
	}
	if sf.height > 0 {
		canvas.Height = sf.height
	}
	return scene.FromController(ctl, canvas), nil
}

// viewport returns the part of the scene shown on a w×h image.
func viewport(file *scene.File, w, h int, fit bool) (bezier.Rect, error) {
	if !fit {
		return render.DefaultViewport, nil
	}
	pts, err := file.ControlPoints()
	if err != nil {
		return bezier.Rect{}, err
	}
	return render.FitViewport(pts, bezier.Sz(float64(w), float64(h)), fitMargin), nil
}

// controller returns a controller holding the session's curve.
func controller(file *scene.File, r bezier.Renderer) (*bezier.Controller, error) {
	ctl := bezier.NewController(r)
	if err := file.Apply(ctl); err != nil {
		return nil, err
	}
	return ctl, nil
}

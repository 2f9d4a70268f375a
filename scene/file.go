// Package scene loads and stores curve sessions.
//
// A session file holds the control points and parameters of one
// [bezier.Controller] together with the canvas it is drawn on. Files are
// written in YAML or TOML:
//
//	mode: piecewise
//	continuity: C1
//	piecewise_degree: 3
//	points:
//	  - [-0.8, -0.5]
//	  - [-0.4, 0.6]
//	  - [0.3, 0.6]
//	  - [0.8, -0.5]
//	canvas:
//	  width: 800
//	  height: 600
//
// Keys that are missing keep their default values. Coordinates live in the
// square [-1, 1]² with the y axis pointing up.
package scene

import (
	"bytes"
	"errors"
	"fmt"
	"image/color"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
)

// Format is the encoding of a session file.
type Format int

const (
	YAML Format = iota
	TOML
)

func (f Format) String() string {
	switch f {
	case YAML:
		return "YAML"
	case TOML:
		return "TOML"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

var ErrUnknownFormat = errors.New("scene: unknown file format")

// FormatOf picks the format from the extension of path.
func FormatOf(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return YAML, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownFormat, path)
	}
}

// File is the content of a session file.
type File struct {
	Mode             string      `yaml:"mode" toml:"mode"`
	Continuity       string      `yaml:"continuity" toml:"continuity"`
	SubdivisionLevel uint        `yaml:"subdivision_level" toml:"subdivision_level"`
	PiecewiseDegree  int         `yaml:"piecewise_degree" toml:"piecewise_degree"`
	T                float64     `yaml:"t" toml:"t"`
	Samples          int         `yaml:"samples" toml:"samples"`
	Points           [][]float64 `yaml:"points" toml:"points"`
	Canvas           Canvas      `yaml:"canvas" toml:"canvas"`
}

// Canvas describes the image a session is drawn on.
type Canvas struct {
	Width      int     `yaml:"width" toml:"width"`
	Height     int     `yaml:"height" toml:"height"`
	Background string  `yaml:"background" toml:"background"`
	CurveColor string  `yaml:"curve_color" toml:"curve_color"`
	PointColor string  `yaml:"point_color" toml:"point_color"`
	LineWidth  float64 `yaml:"line_width" toml:"line_width"`
	PointSize  float64 `yaml:"point_size" toml:"point_size"`
}

func DefaultCanvas() Canvas {
	style := render.DefaultStyle()
	return Canvas{
		Width:      512,
		Height:     512,
		Background: render.FormatColor(style.Background),
		CurveColor: render.FormatColor(style.Curve),
		PointColor: render.FormatColor(style.Points),
		LineWidth:  style.LineWidth,
		PointSize:  style.PointSize,
	}
}

// Style converts the canvas colors and sizes to a [render.Style]. Empty
// colors and non-positive sizes fall back to the default style.
func (c Canvas) Style() (render.Style, error) {
	style := render.DefaultStyle()
	colors := []struct {
		s   string
		dst *color.RGBA
	}{
		{c.Background, &style.Background},
		{c.CurveColor, &style.Curve},
		{c.PointColor, &style.Points},
	}
	for _, col := range colors {
		if col.s == "" {
			continue
		}
		v, err := render.ParseColor(col.s)
		if err != nil {
			return render.Style{}, fmt.Errorf("scene: %w", err)
		}
		*col.dst = v
	}
	if c.LineWidth > 0 {
		style.LineWidth = c.LineWidth
	}
	if c.PointSize > 0 {
		style.PointSize = c.PointSize
	}
	return style, nil
}

// New returns a file holding the default parameters, no points and the
// default canvas.
func New() *File {
	f := &File{Canvas: DefaultCanvas()}
	f.SetParams(bezier.DefaultParams())
	return f
}

// FromController captures the control points and parameters of ctl.
func FromController(ctl *bezier.Controller, canvas Canvas) *File {
	f := &File{Canvas: canvas}
	f.SetParams(ctl.Params())
	f.SetPoints(ctl.ControlPoints())
	return f
}

// SetParams stores p in f.
func (f *File) SetParams(p bezier.Params) {
	f.Mode = p.Mode.String()
	f.Continuity = p.Continuity.String()
	f.SubdivisionLevel = p.SubdivisionLevel
	f.PiecewiseDegree = p.PiecewiseDegree
	f.T = p.DeCasteljauT
	f.Samples = p.Samples
}

func (f *File) SetPoints(pts []bezier.Point) {
	f.Points = make([][]float64, len(pts))
	for i, p := range pts {
		f.Points[i] = []float64{p.X, p.Y}
	}
}

// Params parses and validates the parameters stored in f.
func (f *File) Params() (bezier.Params, error) {
	mode, err := bezier.ParseMode(f.Mode)
	if err != nil {
		return bezier.Params{}, fmt.Errorf("scene: %w", err)
	}
	cont, err := bezier.ParseContinuity(f.Continuity)
	if err != nil {
		return bezier.Params{}, fmt.Errorf("scene: %w", err)
	}
	p := bezier.Params{
		Mode:             mode,
		Continuity:       cont,
		SubdivisionLevel: f.SubdivisionLevel,
		PiecewiseDegree:  f.PiecewiseDegree,
		DeCasteljauT:     f.T,
		Samples:          f.Samples,
	}
	if err := p.Validate(); err != nil {
		return bezier.Params{}, fmt.Errorf("scene: %w", err)
	}
	return p, nil
}

// ControlPoints returns the stored points. Every point must have exactly
// two finite coordinates.
func (f *File) ControlPoints() ([]bezier.Point, error) {
	pts := make([]bezier.Point, len(f.Points))
	for i, xy := range f.Points {
		if len(xy) != 2 {
			return nil, fmt.Errorf("scene: point %d has %d coordinates, want 2", i, len(xy))
		}
		p := bezier.Pt(xy[0], xy[1])
		if p.IsNaN() || p.IsInf() {
			return nil, fmt.Errorf("scene: point %d is not finite", i)
		}
		pts[i] = p
	}
	return pts, nil
}

// Apply replaces the parameters and control points of ctl with those in f.
// ctl is left unchanged if f is invalid.
func (f *File) Apply(ctl *bezier.Controller) error {
	params, err := f.Params()
	if err != nil {
		return err
	}
	pts, err := f.ControlPoints()
	if err != nil {
		return err
	}
	if err := ctl.SetParams(params); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	ctl.ClearControlPoints()
	for _, p := range pts {
		ctl.AddControlPoint(p)
	}
	return nil
}

// Decode reads a session in the given format. Keys missing from the input
// keep the values of [New].
func Decode(r io.Reader, format Format) (*File, error) {
	f := New()
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(f)
		if errors.Is(err, io.EOF) {
			// an empty document
			err = nil
		}
	case TOML:
		err = toml.NewDecoder(r).Decode(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return nil, fmt.Errorf("scene: decoding %s: %w", format, err)
	}
	return f, nil
}

// Encode writes f in the given format.
func (f *File) Encode(w io.Writer, format Format) error {
	var err error
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		err = enc.Encode(f)
		if err == nil {
			err = enc.Close()
		}
	case TOML:
		err = toml.NewEncoder(w).Encode(f)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
	if err != nil {
		return fmt.Errorf("scene: encoding %s: %w", format, err)
	}
	return nil
}

// Load reads the session file at path, choosing the format by extension.
func Load(path string) (*File, error) {
	format, err := FormatOf(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	return Decode(bytes.NewReader(data), format)
}

// Save writes f to path, choosing the format by extension.
func (f *File) Save(path string) error {
	format, err := FormatOf(path)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := f.Encode(&buf, format); err != nil {
		return err
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("scene: %w", err)
	}
	return nil
}

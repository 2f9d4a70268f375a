package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/render"
	"honnef.co/go/bezier/scene"
)

func newRenderCmd() *cobra.Command {
	var (
		sf     sessionFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Draw the curve to a PNG or SVG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := sf.load()
			if err != nil {
				return err
			}
			return renderFile(file, output, sf.fit)
		},
	}
	sf.registerDrawing(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "curve.png", "output file, .png or .svg")
	return cmd
}

// renderFile draws the session to path, picking PNG or SVG output by the
// extension of path. fit widens the view to all control points.
func renderFile(file *scene.File, path string, fit bool) error {
	style, err := file.Canvas.Style()
	if err != nil {
		return err
	}
	w, h, err := canvasSize(file)
	if err != nil {
		return err
	}
	view, err := viewport(file, w, h, fit)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".png":
		r := render.NewRaster(w, h, view, style)
		if err := draw(file, r); err != nil {
			return err
		}
		if err := r.EncodePNG(&buf); err != nil {
			return err
		}
	case ".svg":
		r := render.NewSVG(bezier.Sz(float64(w), float64(h)), view, style)
		if err := draw(file, r); err != nil {
			return err
		}
		if _, err := r.WriteTo(&buf); err != nil {
			return err
		}
	default:
		return fmt.Errorf("unsupported output format %q", ext)
	}

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return err
	}
	bezier.Logger().Info("rendered curve", "path", path, "mode", file.Mode, "points", len(file.Points))
	return nil
}

func draw(file *scene.File, r bezier.Renderer) error {
	ctl, err := controller(file, r)
	if err != nil {
		return err
	}
	ctl.Draw()
	return nil
}

func canvasSize(file *scene.File) (w, h int, err error) {
	w, h = file.Canvas.Width, file.Canvas.Height
	if w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("invalid canvas size %dx%d", w, h)
	}
	return w, h, nil
}

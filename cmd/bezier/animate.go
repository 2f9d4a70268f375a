package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/animate"
	"honnef.co/go/bezier/render"
)

func newAnimateCmd() *cobra.Command {
	var (
		sf     sessionFlags
		output string
		timing = animate.DefaultTiming()
	)
	cmd := &cobra.Command{
		Use:   "animate",
		Short: "Record the de Casteljau construction at t as an animated GIF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := sf.load()
			if err != nil {
				return err
			}
			ctl, err := controller(file, nil)
			if err != nil {
				return err
			}
			frames, err := ctl.Steps()
			if err != nil {
				return err
			}
			style, err := file.Canvas.Style()
			if err != nil {
				return err
			}
			w, h, err := canvasSize(file)
			if err != nil {
				return err
			}
			view, err := viewport(file, w, h, sf.fit)
			if err != nil {
				return err
			}

			shots := animate.Script(ctl.ControlPoints(), frames, timing)
			r := render.NewRaster(w, h, view, style)
			var buf bytes.Buffer
			if err := animate.GIF(&buf, r, ctl.ControlPoints(), shots); err != nil {
				return err
			}
			if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
				return err
			}
			bezier.Logger().Info("recorded animation", "path", output, "frames", len(shots), "duration", animate.Duration(shots))
			return nil
		},
	}
	sf.registerDrawing(cmd)
	f := cmd.Flags()
	f.StringVarP(&output, "output", "o", "steps.gif", "output GIF file")
	f.DurationVar(&timing.Intro, "intro", timing.Intro, "how long the control points are shown first")
	f.DurationVar(&timing.Step, "step", timing.Step, "how long every construction step is shown")
	return cmd
}

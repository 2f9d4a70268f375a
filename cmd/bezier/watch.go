package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/scene"
)

func newWatchCmd() *cobra.Command {
	var (
		sf     sessionFlags
		output string
	)
	cmd := &cobra.Command{
		Use:   "watch <session>",
		Short: "Render a session file every time it changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sf.path = args[0]
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			w, err := scene.NewWatcher(sf.path)
			if err != nil {
				return err
			}
			log := bezier.Logger()
			redraw := func(file *scene.File, err error) {
				if err == nil {
					file, err = sf.override(file)
				}
				if err == nil {
					err = renderFile(file, output, sf.fit)
				}
				if err != nil {
					log.Error("rendering session failed", "err", err)
				}
			}
			redraw(scene.Load(sf.path))

			log.Info("watching session", "path", sf.path, "output", output)
			if err := w.Run(ctx, redraw); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	sf.registerDrawing(cmd)
	cmd.Flags().StringVarP(&output, "output", "o", "curve.png", "output file, .png or .svg")
	// the session file is the argument
	_ = cmd.Flags().MarkHidden("session")
	return cmd
}

// Command bezier draws Bézier curves from session files and command line
// input.
//
// Usage:
//
//	bezier render -o curve.png --point -0.8,-0.5 --point 0,0.8 --point 0.8,-0.5
//	bezier render -s session.yaml -o curve.svg --set mode=subdivision --set subdivision_level=3
//	bezier animate -s session.yaml -o steps.gif --set t_percent=30
//	bezier eval -s session.toml --t 0.25 --steps
//	bezier distance --point 0,0 --point 1,1 --other 0,1 --other 1,2
//	bezier watch session.yaml -o curve.png
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "bezier:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose bool
	root := &cobra.Command{
		Use:           "bezier",
		Short:         "Draw and inspect Bézier curves",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			bezier.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log debug output")

	root.AddCommand(
		newRenderCmd(),
		newAnimateCmd(),
		newEvalCmd(),
		newDistanceCmd(),
		newWatchCmd(),
	)
	return root
}

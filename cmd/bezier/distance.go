package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
	"honnef.co/go/bezier/scene"
)

func newDistanceCmd() *cobra.Command {
	var (
		sf       sessionFlags
		other    []string
		accuracy float64
	)
	cmd := &cobra.Command{
		Use:   "distance",
		Short: "Print the minimum distance between the curve and another curve",
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
			var o bezier.Curve
			for _, s := range other {
				p, err := scene.ParsePoint(s)
				if err != nil {
					return err
				}
				o = append(o, p)
			}
			if !(accuracy > 0) {
				return fmt.Errorf("accuracy %g is not positive: %w", accuracy, bezier.ErrInvalidParameter)
			}
			c := ctl.Curve()
			if len(c) < 2 || len(o) < 2 {
				return fmt.Errorf("both curves need at least two control points: %w", bezier.ErrTooFewPoints)
			}

			d := c.MinDistance(o, accuracy)
			fmt.Fprintf(cmd.OutOrStdout(), "%g at t1=%g t2=%g\n", d.Distance, d.T1, d.T2)
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().StringArrayVar(&other, "other", nil, "append a control point `x,y` to the other curve")
	cmd.Flags().Float64Var(&accuracy, "accuracy", 1e-3, "smallest parameter interval that is subdivided")
	return cmd
}

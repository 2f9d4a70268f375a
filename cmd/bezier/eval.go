package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"honnef.co/go/bezier"
)

func newEvalCmd() *cobra.Command {
	var (
		sf    sessionFlags
		t     float64
		steps bool
	)
	cmd := &cobra.Command{
		Use:   "eval",
		Short: "Print the point on the curve at t",
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
			if cmd.Flags().Changed("t") {
				if err := ctl.SetDeCasteljauT(t); err != nil {
					return err
				}
			}

			out := cmd.OutOrStdout()
			c := ctl.Curve()
			p, err := c.TryEval(ctl.DeCasteljauT())
			if err != nil {
				return err
			}
			fmt.Fprintln(out, p)
			if !steps {
				return nil
			}
			frames, err := ctl.Steps()
			if err != nil {
				return err
			}
			for i, f := range frames {
				fmt.Fprintf(out, "%d:", i)
				for _, p := range f {
					fmt.Fprintf(out, " %s", p)
				}
				fmt.Fprintln(out)
			}
			return nil
		},
	}
	sf.register(cmd)
	cmd.Flags().Float64Var(&t, "t", bezier.DefaultParams().DeCasteljauT, "curve parameter in [0, 1]")
	cmd.Flags().BoolVar(&steps, "steps", false, "also print the de Casteljau construction")
	return cmd
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/render"
)

func newDrawCmd() *cobra.Command {
	var (
		out       string
		scale     float64
		lineWidth float64
	)

	cmd := &cobra.Command{
		Use:   "draw <coords>",
		Short: "Render a benzenoid system to a PNG file",
		Long:  `Renders the system given as a coordinate list, e.g. "[(0,0),(0,1),(1,0)]".`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			b, err := libhex.ParseSystem(args[0])
			if err != nil {
				return err
			}
			defer b.Reclaim()

			return render.DrawFile(b, out, render.Opts{
				Scale:     scale,
				LineWidth: lineWidth,
			})
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "benzenoid.png", "output PNG pathname")
	cmd.Flags().Float64Var(&scale, "scale", 0, "pixels per lattice unit")
	cmd.Flags().Float64Var(&lineWidth, "line-width", 0, "hexagon outline width in pixels")

	return cmd
}

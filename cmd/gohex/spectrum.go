package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/huckel"
)

func newSpectrumCmd() *cobra.Command {
	var graph6 bool

	cmd := &cobra.Command{
		Use:   "spectrum <molecule>",
		Short: "Print the Hückel spectrum of a molecular graph",
		Long: `Prints the eigenvalues of the molecule's adjacency matrix, ascending,
in units of β relative to α.

The molecule is one of:
  a coordinate list, e.g. "[(0,0),(0,1)]" (its carbon skeleton is used)
  a graph family, e.g. path:6, cycle:6, star:5, complete:4
  a graph6 string (with --graph6)`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			g, err := parseMolecule(args[0], graph6)
			if err != nil {
				return err
			}

			spec, err := g.Spectrum()
			if err != nil {
				return err
			}
			for _, ev := range spec.Values {
				fmt.Fprintf(os.Stdout, "%9.5f\n", ev)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&graph6, "graph6", false, "read the molecule as a graph6 string")

	return cmd
}

func parseMolecule(arg string, graph6 bool) (*huckel.Graph, error) {
	if graph6 {
		return huckel.FromGraph6(arg)
	}

	if strings.HasPrefix(arg, "[") {
		b, err := libhex.ParseSystem(arg)
		if err != nil {
			return nil, err
		}
		defer b.Reclaim()
		return huckel.CarbonSkeleton(b)
	}

	family, orderStr, ok := strings.Cut(arg, ":")
	if !ok {
		return nil, fmt.Errorf("unrecognized molecule %q", arg)
	}
	n, err := strconv.Atoi(orderStr)
	if err != nil {
		return nil, err
	}

	switch family {
	case "path":
		return huckel.Path(n)
	case "cycle":
		return huckel.Cycle(n)
	case "star":
		return huckel.Star(n)
	case "complete":
		return huckel.Complete(n)
	}
	return nil, fmt.Errorf("unrecognized graph family %q", family)
}

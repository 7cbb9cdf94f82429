package main

import (
	"os"
	"strconv"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"

	"github.com/polyhex-systems/gohex/gohex"
	"github.com/polyhex-systems/gohex/libhex"
	"github.com/polyhex-systems/gohex/libhex/catalog"
	"github.com/polyhex-systems/gohex/libhex/render"
)

type enumOpts struct {
	drawDir string
	dbPath  string
	counts  bool
}

func newEnumCmd() *cobra.Command {
	opts := enumOpts{}

	cmd := &cobra.Command{
		Use:   "enum <hexCount> [maxHexCount]",
		Short: "Enumerate benzenoid systems up to isomorphism",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			hexLo, err := strconv.Atoi(args[0])
			if err != nil {
				return err
			}
			hexHi := hexLo
			if len(args) == 2 {
				if hexHi, err = strconv.Atoi(args[1]); err != nil {
					return err
				}
			}
			return runEnum(hexLo, hexHi, &opts)
		},
	}

	cmd.Flags().StringVar(&opts.drawDir, "draw", "", "also render each system as a PNG into this directory")
	cmd.Flags().StringVar(&opts.dbPath, "db", "", "also add each system to the catalog at this path")
	cmd.Flags().BoolVar(&opts.counts, "counts", false, "print hexagon and perimeter counts with each system")

	return cmd
}

// stdoutWriter adapts os.Stdout to the stream's WriteCloser without actually
// closing it.
type stdoutWriter struct{}

func (stdoutWriter) Write(buf []byte) (int, error) { return os.Stdout.Write(buf) }
func (stdoutWriter) Close() error                  { return nil }

func runEnum(hexLo, hexHi int, opts *enumOpts) error {
	stream := libhex.EnumBenzenoids(hexLo, hexHi)

	if opts.dbPath != "" {
		ctx := gohex.NewCatalogContext()
		cat, err := catalog.OpenCatalog(ctx, gohex.CatalogOpts{
			DBPath:      opts.dbPath,
			MaxHexCount: hexHi,
		})
		if err != nil {
			return err
		}
		defer func() {
			ctx.Close()
			<-ctx.Done()
		}()
		stream = stream.AddTo(cat, libhex.AddSystemOpts{AutoCloseCatalog: true})
	}

	if opts.drawDir != "" {
		stream = stream.DrawTo(opts.drawDir, render.Opts{})
	}

	count := stream.Print(stdoutWriter{}, gohex.PrintOpts{
		Coords: true,
		Counts: opts.counts,
	}).PullAll()

	klog.Infof("enumerated %d systems with %d..%d hexagons", count, hexLo, hexHi)
	return nil
}

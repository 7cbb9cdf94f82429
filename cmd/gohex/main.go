package main

import (
	"flag"
	"os"

	"github.com/plan-systems/klog"
	"github.com/spf13/cobra"
)

func main() {

	fset := flag.NewFlagSet("", flag.ContinueOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	fset.Set("v", "2")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var verbose bool

	root := &cobra.Command{
		Use:          "gohex",
		Short:        "benzenoid system enumeration and Hückel spectra",
		Version:      "v1.2024.1",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				fset.Set("v", "3")
			}
		},
	}
	root.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	root.AddCommand(newEnumCmd())
	root.AddCommand(newDrawCmd())
	root.AddCommand(newSpectrumCmd())
	root.AddCommand(newScriptCmd())

	err := root.Execute()
	klog.Flush()
	if err != nil {
		os.Exit(1)
	}
}

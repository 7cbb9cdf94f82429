package main

import (
	"fmt"
	"time"

	"github.com/go-python/gpython/py"
	"github.com/go-python/gpython/repl"
	"github.com/go-python/gpython/repl/cli"
	"github.com/spf13/cobra"

	_ "github.com/go-python/gpython/stdlib"
	_ "github.com/polyhex-systems/gohex/pyhex"
)

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script [pathname]",
		Short: "Run a gpython script (or a REPL when no script is given)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			pathname := ""
			if len(args) > 0 {
				pathname = args[0]
			}
			return runScript(pathname)
		},
	}
}

func runScript(pathname string) error {
	ctx := py.NewContext(py.DefaultContextOpts())

	var err error
	if len(pathname) == 0 {
		replCtx := repl.New(ctx)

		_, err = py.RunFile(ctx, "lib/_REPL_startup.py", py.CompileOpts{}, replCtx.Module)
		if err == nil {
			cli.RunREPL(replCtx)
		}

	} else {
		startTime := time.Now()
		fmt.Printf("<<<>>>   executing '%s'   <<<>>>\n", pathname)

		_, err = py.RunFile(ctx, pathname, py.CompileOpts{}, nil)

		if err == nil {
			elapsed := time.Since(startTime)
			fmt.Printf("<<<>>>   execution complete: %v   <<<>>>\n", elapsed)
		}
	}

	ctx.Close()
	<-ctx.Done()

	if err != nil {
		py.TracebackDump(err)
		return err
	}
	return nil
}

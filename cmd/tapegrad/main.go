// Package main provides the tapegrad CLI: it records the demo scenarios on a
// tape, runs the reverse pass and prints the tape.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/born-ml/tapegrad/internal/scenario"
	"github.com/gomlx/exceptions"
	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

const version = "v0.1.0-dev"

var (
	flagScenario = flag.String("scenario", "all", "Comma-separated scenarios to run, or \"all\".")
	flagRepeat   = flag.Int("repeat", 1, "Number of reverse passes per scenario. Gradients accumulate unless -zero is set.")
	flagZero     = flag.Bool("zero", false, "Reset gradients before every reverse pass.")
	flagTable    = flag.Bool("table", false, "Render the tape as a table instead of the plain dump.")
)

func usage() {
	out := flag.CommandLine.Output()
	fmt.Fprintf(out, "tapegrad %s - reverse-mode autodiff on a tape\n\n", version)
	fmt.Fprintln(out, "Commands:")
	fmt.Fprintln(out, "  version    Show version")
	fmt.Fprintln(out, "  run        Run scenarios (default)")
	fmt.Fprintf(out, "\nScenarios: %v\n\nFlags:\n", scenario.Names())
	flag.PrintDefaults()
}

func main() {
	if len(os.Args) > 1 && os.Args[1] == "version" {
		fmt.Printf("tapegrad %s\n", version)
		return
	}
	if len(os.Args) > 1 && os.Args[1] == "run" {
		os.Args = append(os.Args[:1], os.Args[2:]...)
	}

	klog.InitFlags(nil)
	flag.Usage = usage
	flag.Parse()

	w := bufio.NewWriter(os.Stdout)
	err := exceptions.TryCatch[error](func() {
		scenarios := must.M1(scenario.Select(*flagScenario))
		must.M(run(w, scenarios, *flagRepeat, *flagZero, *flagTable))
	})
	if flushErr := w.Flush(); err == nil && flushErr != nil {
		err = errors.Wrap(flushErr, "flushing output")
	}
	if err != nil {
		klog.Exitf("tapegrad failed: %+v", err)
	}
}

// run executes every scenario and writes its tape and input gradients to w.
func run(w io.Writer, scenarios []scenario.Scenario, repeat int, zeroGrad, table bool) error {
	for i, s := range scenarios {
		g, err := s.Run(repeat, zeroGrad)
		if err != nil {
			return err
		}
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return errors.Wrap(err, "writing output")
			}
		}
		if err := report(w, s, g, table); err != nil {
			return errors.WithMessagef(err, "scenario %s", s.Name)
		}
	}
	return nil
}

func report(w io.Writer, s scenario.Scenario, g scenario.Graph, table bool) error {
	if _, err := fmt.Fprintf(w, "# %s: %s\n", s.Name, s.Description); err != nil {
		return errors.Wrap(err, "writing header")
	}
	if table {
		if _, err := fmt.Fprintln(w, renderTable(g)); err != nil {
			return errors.Wrap(err, "writing tape table")
		}
	} else if err := g.Tape.Dump(w); err != nil {
		return errors.Wrap(err, "writing tape dump")
	}
	if _, err := fmt.Fprintf(w, "z = %v\n", g.Root.Value()); err != nil {
		return errors.Wrap(err, "writing result")
	}
	for _, in := range g.Inputs {
		if _, err := fmt.Fprintf(w, "dz/d%s = %v\n", in.Name, in.Var.Grad()); err != nil {
			return errors.Wrap(err, "writing gradients")
		}
	}
	return nil
}

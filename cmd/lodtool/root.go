package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"
)

// app carries the streams and logger shared by every subcommand.
type app struct {
	in      io.Reader
	out     io.Writer
	errOut  io.Writer
	verbose bool
	logger  *slog.Logger
}

// newRootCmd wires the command tree around the given streams.
func newRootCmd(in io.Reader, out, errOut io.Writer) *cobra.Command {
	a := &app{in: in, out: out, errOut: errOut}

	root := &cobra.Command{
		Use:           "lodtool",
		Short:         "Build and inspect LoD prediction structures for point-cloud attributes",
		SilenceUsage:  true, // don't print usage on operational errors
		SilenceErrors: true, // main prints the error once
		PersistentPreRun: func(*cobra.Command, []string) {
			level := slog.LevelInfo
			if a.verbose {
				level = slog.LevelDebug
			}
			a.logger = slog.New(slog.NewTextHandler(a.errOut, &slog.HandlerOptions{Level: level}))
		},
	}
	root.SetIn(in)
	root.SetOut(out)
	root.SetErr(errOut)
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "log debug records to stderr")

	root.AddCommand(
		newBuildCmd(a),
		newReuseCmd(a),
		newClassifyCmd(a),
	)

	return root
}

package main

import (
	"bufio"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/attrlod/coeff"
)

func newClassifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "classify [magnitude...]",
		Short: "Map residual magnitudes to coefficient contexts",
		Long: `Prints the context of every magnitude, then a context histogram.
Without arguments, magnitudes are read from stdin, separated by whitespace.`,
		RunE: func(_ *cobra.Command, args []string) error {
			ms, err := readMagnitudes(a, args)
			if err != nil {
				return err
			}
			return runClassify(a, ms)
		},
	}
}

func readMagnitudes(a *app, args []string) ([]uint32, error) {
	if len(args) == 0 {
		sc := bufio.NewScanner(a.in)
		sc.Split(bufio.ScanWords)
		for sc.Scan() {
			args = append(args, sc.Text())
		}
		if err := sc.Err(); err != nil {
			return nil, fmt.Errorf("classify: read stdin: %w", err)
		}
	}

	ms := make([]uint32, 0, len(args))
	for _, s := range args {
		m, err := strconv.ParseUint(s, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("classify: magnitude %q: %w", s, err)
		}
		ms = append(ms, uint32(m))
	}

	return ms, nil
}

func runClassify(a *app, ms []uint32) error {
	var h coeff.Histogram
	for _, m := range ms {
		fmt.Fprintf(a.out, "%d\t%d\n", m, coeff.Interval(m))
		h.Add(m)
	}

	fmt.Fprintf(a.out, "\ncontext\trange\tcount\n")
	for b, n := range h {
		if n == 0 {
			continue
		}
		lo, hi := coeff.Bounds(b)
		upper := strconv.FormatUint(uint64(hi)-1, 10)
		if b == coeff.NumIntervals-1 {
			upper = "∞"
		}
		fmt.Fprintf(a.out, "%d\t[%d,%s]\t%d\n", b, lo, upper, n)
	}
	fmt.Fprintf(a.out, "total\t\t%d\n", h.Total())

	return nil
}

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/lod"
	"github.com/katalvlaran/attrlod/pointcloud"
)

func newReuseCmd(a *app) *cobra.Command {
	var paths []string
	cmd := &cobra.Command{
		Use:   "reuse",
		Short: "Report whether a structure built for one parameter set serves another",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			if len(paths) != 2 {
				return fmt.Errorf("reuse: want exactly two --params, got %d", len(paths))
			}
			return runReuse(a, paths[0], paths[1])
		},
	}
	cmd.Flags().StringArrayVar(&paths, "params", nil, "parameter set file; give it twice (held, then next)")

	return cmd
}

func runReuse(a *app, heldPath, nextPath string) error {
	held, err := aps.Load(heldPath)
	if err != nil {
		return err
	}
	next, err := aps.Load(nextPath)
	if err != nil {
		return err
	}

	// The decision depends on the parameter sets only, so an empty cloud
	// stands in for the real one.
	empty, err := pointcloud.New(nil)
	if err != nil {
		return err
	}
	b := lod.NewBuilder(lod.WithLogger(a.logger))
	if err := b.Generate(held, -1, 0, empty); err != nil {
		return err
	}

	fmt.Fprintf(a.out, "held:     %s %016x\n", held.Transform, held.Fingerprint())
	fmt.Fprintf(a.out, "next:     %s %016x\n", next.Transform, next.Fingerprint())
	fmt.Fprintf(a.out, "reusable: %t\n", b.IsReusable(next))

	return nil
}

package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/lod"
	"github.com/katalvlaran/attrlod/pointcloud"
)

type buildFlags struct {
	cloud       string
	params      string
	minNodeLog2 int
	workers     int
}

func newBuildCmd(a *app) *cobra.Command {
	var f buildFlags
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Generate the LoD structure for a cloud and print its statistics",
		Args:  cobra.NoArgs,
		RunE: func(*cobra.Command, []string) error {
			return runBuild(a, f)
		},
	}
	cmd.Flags().StringVar(&f.cloud, "cloud", "", "xyz point file (required)")
	cmd.Flags().StringVar(&f.params, "params", "", "attribute parameter set, YAML (required)")
	cmd.Flags().IntVar(&f.minNodeLog2, "min-node-log2", 0, "log2 of the minimum geometry node size (scalable lifting only)")
	cmd.Flags().IntVar(&f.workers, "workers", 0, "weight workers; 0 uses GOMAXPROCS")
	_ = cmd.MarkFlagRequired("cloud")
	_ = cmd.MarkFlagRequired("params")

	return cmd
}

func runBuild(a *app, f buildFlags) error {
	cloud, err := pointcloud.LoadXYZ(f.cloud)
	if err != nil {
		return err
	}
	params, err := aps.Load(f.params)
	if err != nil {
		return err
	}
	a.logger.Debug("inputs loaded",
		slog.String("cloud", f.cloud),
		slog.Int("points", cloud.Len()),
		slog.String("transform", params.Transform.String()),
	)

	opts := []lod.Option{lod.WithLogger(a.logger)}
	if f.workers > 0 {
		opts = append(opts, lod.WithWorkers(f.workers))
	}
	b := lod.NewBuilder(opts...)
	if err := b.Generate(params, cloud.Len()-1, f.minNodeLog2, cloud); err != nil {
		if lod.IsFatal(err) {
			return fmt.Errorf("non-conformant configuration: %w", err)
		}
		return err
	}

	st := summarize(b.Structure())
	fmt.Fprintf(a.out, "points:       %d\n", cloud.Len())
	fmt.Fprintf(a.out, "transform:    %s\n", params.Transform)
	fmt.Fprintf(a.out, "fingerprint:  %016x\n", params.Fingerprint())
	fmt.Fprintf(a.out, "levels:       %v\n", b.LevelCounts())
	fmt.Fprintf(a.out, "level sizes:  %v\n", st.levelSizes)
	fmt.Fprintf(a.out, "neighbours:   mean %.3f, max %d, unpredicted %d\n", st.meanNeighbors, st.maxNeighbors, st.unpredicted)
	if st.predicted > 0 {
		fmt.Fprintf(a.out, "dist2:        mean %.3f, min %d, max %d\n", st.meanDist2, st.minDist2, st.maxDist2)
		fmt.Fprintf(a.out, "weight:       min %.4f, max %.4f\n", st.minWeight, st.maxWeight)
	}

	return nil
}

package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/katalvlaran/attrlod/lod"
)

// structureStats summarizes a LoD structure for display.
type structureStats struct {
	levelSizes    []int
	predicted     int
	unpredicted   int
	meanNeighbors float64
	maxNeighbors  int
	meanDist2     float64
	minDist2      int64
	maxDist2      int64
	minWeight     float64 // fraction of lod.WeightOne
	maxWeight     float64
}

func summarize(s lod.Structure) structureStats {
	var st structureStats
	prev := 0
	for _, c := range s.LevelCounts {
		st.levelSizes = append(st.levelSizes, c-prev)
		prev = c
	}

	counts := make([]float64, 0, len(s.Predictors))
	var dists, weights []float64
	for _, p := range s.Predictors {
		counts = append(counts, float64(len(p.Neighbors)))
		if len(p.Neighbors) == 0 {
			st.unpredicted++
			continue
		}
		st.predicted++
		for _, nb := range p.Neighbors {
			dists = append(dists, float64(nb.Dist2))
			weights = append(weights, float64(nb.Weight)/lod.WeightOne)
		}
	}

	if len(counts) > 0 {
		st.meanNeighbors = stat.Mean(counts, nil)
		st.maxNeighbors = int(floats.Max(counts))
	}
	if len(dists) > 0 {
		st.meanDist2 = stat.Mean(dists, nil)
		st.minDist2 = int64(floats.Min(dists))
		st.maxDist2 = int64(floats.Max(dists))
		st.minWeight = floats.Min(weights)
		st.maxWeight = floats.Max(weights)
	}

	return st
}

package lod

import (
	"math"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/pointcloud"
)

// subsample splits base into NumDetailLevels levels, coarsest first.
//
// Refinement step l (l = 0 is the finest) splits the points still retained
// into kept and dropped, preserving order:
//   - scalable lifting: the first point of each occupied octree node of
//     size 2^(minNodeSizeLog2+l+1) is kept;
//   - PeriodicSampling: every Periods[l]-th point is kept;
//   - DistanceSampling: a point is kept iff none of the last SearchRange
//     kept points is closer than Dist2·4^l.
//
// Dropped points of step l form level NumDetailLevels-1-l.
func subsample(lp *aps.LodParameters, cloud Cloud, base []int, minNodeSizeLog2 int) [][]int {
	steps := lp.NumDetailLevels - 1
	dropped := make([][]int, steps)
	current := base
	m := newMetric(lp.NeighborBias)

	for l := 0; l < steps; l++ {
		if len(current) <= 1 {
			break
		}
		var kept []int
		switch {
		case lp.ScalableLiftingEnabled:
			kept, dropped[l] = splitByNode(cloud, current, minNodeSizeLog2+l+1)
		default:
			switch s := lp.Sampling.(type) {
			case aps.PeriodicSampling:
				kept, dropped[l] = splitByPeriod(current, s.Periods[l])
			case aps.DistanceSampling:
				kept, dropped[l] = splitByDistance(m, cloud, current, scaledThreshold(s.Dist2, l), lp.SearchRange)
			default:
				kept = current
			}
		}
		current = kept
	}

	levels := make([][]int, 0, steps+1)
	levels = append(levels, current)
	for l := steps - 1; l >= 0; l-- {
		levels = append(levels, dropped[l])
	}

	return levels
}

func splitByNode(cloud Cloud, points []int, shift int) (kept, dropped []int) {
	seen := make(map[uint64]struct{}, len(points)/2)
	for _, idx := range points {
		node := pointcloud.MortonCode(cloud.Position(idx).Shift(shift))
		if _, ok := seen[node]; ok {
			dropped = append(dropped, idx)
			continue
		}
		seen[node] = struct{}{}
		kept = append(kept, idx)
	}

	return kept, dropped
}

func splitByPeriod(points []int, period int) (kept, dropped []int) {
	for i, idx := range points {
		if i%period == 0 {
			kept = append(kept, idx)
		} else {
			dropped = append(dropped, idx)
		}
	}

	return kept, dropped
}

func splitByDistance(m metric, cloud Cloud, points []int, threshold int64, window int) (kept, dropped []int) {
	for _, idx := range points {
		p := cloud.Position(idx)
		keep := true
		for j := len(kept) - 1; j >= 0 && j >= len(kept)-window; j-- {
			if m.dist2(p, cloud.Position(kept[j])) < threshold {
				keep = false
				break
			}
		}
		if keep {
			kept = append(kept, idx)
		} else {
			dropped = append(dropped, idx)
		}
	}

	return kept, dropped
}

// scaledThreshold returns dist2·4^level, saturating at math.MaxInt64.
func scaledThreshold(dist2 int64, level int) int64 {
	shift := 2 * level
	if dist2 == 0 {
		return 0
	}
	if shift >= 62 || dist2 > math.MaxInt64>>shift {
		return math.MaxInt64
	}

	return dist2 << shift
}

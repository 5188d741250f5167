package lod_test

import (
	"cmp"
	"slices"
	"testing"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/lod"
	"github.com/katalvlaran/attrlod/pointcloud"
	"github.com/stretchr/testify/require"
)

// randomCloud returns n points in a cube of side `side`, generated by a
// fixed linear congruential sequence so every run sees the same cloud.
func randomCloud(t testing.TB, n int, side int32, seed uint64) *pointcloud.Cloud {
	t.Helper()
	state := seed
	next := func() int32 {
		state = state*6364136223846793005 + 1442695040888963407
		return int32((state >> 33) % uint64(side))
	}
	pts := make([]pointcloud.Vec3, n)
	for i := range pts {
		pts[i] = pointcloud.Vec3{X: next(), Y: next(), Z: next()}
	}
	c, err := pointcloud.New(pts)
	require.NoError(t, err)

	return c
}

// lineCloud returns n points at x = 0..n-1 on the X axis.
func lineCloud(t testing.TB, n int) *pointcloud.Cloud {
	t.Helper()
	pts := make([]pointcloud.Vec3, n)
	for i := range pts {
		pts[i] = pointcloud.Vec3{X: int32(i)}
	}
	c, err := pointcloud.New(pts)
	require.NoError(t, err)

	return c
}

// liftingParams returns a valid distance-sampled lifting parameter set.
func liftingParams() aps.ParameterSet {
	return aps.ParameterSet{
		Transform: aps.Lifting,
		Lod: &aps.LodParameters{
			NearestNeighborCountMinus1: 2,
			SearchRange:                16,
			NumDetailLevels:            4,
			NeighborBias:               [3]int{1, 1, 1},
			Sampling:                   aps.DistanceSampling{Dist2: 4},
		},
	}
}

// bruteForceNeighbors recomputes every predictor from the ordering and level
// counts alone: all coarser points plus, with intra prediction (always on
// level 0), the previous SearchRange points of the same level, ranked by
// (biased distance, coding position).
func bruteForceNeighbors(lp *aps.LodParameters, cloud *pointcloud.Cloud, s lod.Structure) [][]lod.Neighbor {
	type cand struct {
		pos   int
		dist2 int64
	}
	dist2 := func(p, q pointcloud.Vec3) int64 {
		var d int64
		for a := 0; a < 3; a++ {
			diff := int64(p.Axis(a)) - int64(q.Axis(a))
			d += int64(lp.NeighborBias[a]) * diff * diff
		}
		return d
	}

	out := make([][]lod.Neighbor, len(s.Ordering))
	start := 0
	for lvl, end := range s.LevelCounts {
		for pos := start; pos < end; pos++ {
			q := cloud.Position(s.Ordering[pos])
			var cs []cand
			for ref := 0; ref < start; ref++ {
				cs = append(cs, cand{ref, dist2(q, cloud.Position(s.Ordering[ref]))})
			}
			if lp.IntraLodPredictionEnabled || lvl == 0 {
				for ref := max(start, pos-lp.SearchRange); ref < pos; ref++ {
					cs = append(cs, cand{ref, dist2(q, cloud.Position(s.Ordering[ref]))})
				}
			}
			slices.SortFunc(cs, func(a, b cand) int {
				if c := cmp.Compare(a.dist2, b.dist2); c != 0 {
					return c
				}
				return cmp.Compare(a.pos, b.pos)
			})
			for _, c := range cs[:min(len(cs), lp.NeighborCount())] {
				out[pos] = append(out[pos], lod.Neighbor{Index: s.Ordering[c.pos], Dist2: c.dist2})
			}
		}
		start = end
	}

	return out
}

// stripWeights copies neighbour lists without weights.
func stripWeights(preds []lod.Predictor) [][]lod.Neighbor {
	out := make([][]lod.Neighbor, len(preds))
	for i, p := range preds {
		for _, nb := range p.Neighbors {
			nb.Weight = 0
			out[i] = append(out[i], nb)
		}
	}

	return out
}

// countingSearcher counts Search calls before delegating.
type countingSearcher struct {
	calls int
	inner lod.Searcher
}

func (c *countingSearcher) Search(params aps.ParameterSet, cloud lod.Cloud, minNodeSizeLog2, totalPointCountMinus1 int) (lod.Structure, error) {
	c.calls++
	return c.inner.Search(params, cloud, minNodeSizeLog2, totalPointCountMinus1)
}

// stubSearcher returns a fixed structure or error.
type stubSearcher struct {
	s   lod.Structure
	err error
}

func (s stubSearcher) Search(aps.ParameterSet, lod.Cloud, int, int) (lod.Structure, error) {
	return s.s, s.err
}

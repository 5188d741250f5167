package lod

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/pointcloud"
)

// KDSearcher is the default Searcher.
//
// Algorithm:
//  1. Base order: input order when CanonicalPointOrder is set, otherwise a
//     stable sort by Morton code.
//  2. Subsampling, fine to coarse, for NumDetailLevels-1 refinement steps
//     (see subsample). The points left after the last step form level 0.
//  3. Ordering = level 0, then the dropped layers coarse to fine.
//  4. Predictors: for each level a kd-tree over all coarser points answers
//     the k-nearest query; with intra-LoD prediction (always on level 0) the
//     previous SearchRange points of the same level are candidates too.
//     Candidates rank by (biased squared distance, coding position).
//
// A parameter set without LoD parameters yields a single level in input
// order with empty predictors. An empty cloud yields LevelCounts == [0].
// Otherwise len(LevelCounts) == NumDetailLevels; levels may be empty.
type KDSearcher struct{}

// Search implements Searcher.
// Complexity: O(L·n·log n) for L detail levels.
func (KDSearcher) Search(params aps.ParameterSet, cloud Cloud, minNodeSizeLog2, totalPointCountMinus1 int) (Structure, error) {
	n := cloud.Len()
	if totalPointCountMinus1+1 != n {
		return Structure{}, fmt.Errorf("KDSearcher: %d signalled, %d present: %w", totalPointCountMinus1+1, n, ErrPointCountMismatch)
	}
	if n == 0 {
		return Structure{Predictors: []Predictor{}, LevelCounts: []int{0}, Ordering: []int{}}, nil
	}

	lp := params.Lod
	if lp == nil {
		ordering := make([]int, n)
		for i := range ordering {
			ordering[i] = i
		}
		return Structure{Predictors: make([]Predictor, n), LevelCounts: []int{n}, Ordering: ordering}, nil
	}

	levels := subsample(lp, cloud, baseOrder(lp, cloud), minNodeSizeLog2)
	ordering := make([]int, 0, n)
	counts := make([]int, 0, len(levels))
	for _, lvl := range levels {
		ordering = append(ordering, lvl...)
		counts = append(counts, len(ordering))
	}

	return Structure{
		Predictors:  buildPredictors(lp, cloud, ordering, counts),
		LevelCounts: counts,
		Ordering:    ordering,
	}, nil
}

// baseOrder returns the visiting order subsampling starts from.
func baseOrder(lp *aps.LodParameters, cloud Cloud) []int {
	n := cloud.Len()
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	if lp.CanonicalPointOrder {
		return order
	}

	codes := make([]uint64, n)
	for i := range codes {
		codes[i] = pointcloud.MortonCode(cloud.Position(i))
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(codes[a], codes[b])
	})

	return order
}

// candidate is a potential neighbour at coding position pos.
type candidate struct {
	pos   int
	dist2 int64
}

func compareCandidates(a, b candidate) int {
	if c := cmp.Compare(a.dist2, b.dist2); c != 0 {
		return c
	}

	return cmp.Compare(a.pos, b.pos)
}

// buildPredictors selects the neighbours of every point in coding order.
func buildPredictors(lp *aps.LodParameters, cloud Cloud, ordering, counts []int) []Predictor {
	m := newMetric(lp.NeighborBias)
	k := lp.NeighborCount()
	preds := make([]Predictor, len(ordering))
	cands := make([]candidate, 0, 4*k)

	levelStart := 0
	for lvl, levelEnd := range counts {
		var index *kdIndex
		if levelStart > 0 {
			index = newKDIndex(m, cloud, ordering[:levelStart])
		}
		intra := lp.IntraLodPredictionEnabled || lvl == 0

		for pos := levelStart; pos < levelEnd; pos++ {
			q := cloud.Position(ordering[pos])
			cands = cands[:0]
			if index != nil {
				cands = index.nearest(q, k, cands)
			}
			if intra {
				for ref := max(levelStart, pos-lp.SearchRange); ref < pos; ref++ {
					cands = append(cands, candidate{pos: ref, dist2: m.dist2(q, cloud.Position(ordering[ref]))})
				}
			}
			slices.SortFunc(cands, compareCandidates)

			sel := cands[:min(k, len(cands))]
			if len(sel) == 0 {
				continue
			}
			nbs := make([]Neighbor, len(sel))
			for i, c := range sel {
				nbs[i] = Neighbor{Index: ordering[c.pos], Dist2: c.dist2}
			}
			preds[pos].Neighbors = nbs
		}
		levelStart = levelEnd
	}

	return preds
}

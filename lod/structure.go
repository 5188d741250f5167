package lod

import "github.com/katalvlaran/attrlod/aps"

// CheckStructure verifies the LoD invariants of s for a cloud of n points:
//
//   - len(Predictors) == len(Ordering) == n;
//   - Ordering is a permutation of [0, n);
//   - LevelCounts is non-empty, non-decreasing and ends at n;
//   - each predictor has at most aps.MaxNeighborCount neighbours, each a
//     valid cloud index coded strictly before the predicted point.
//
// Returns nil or an error wrapping ErrInvalidStructure.
// Complexity: O(n·k), k = neighbours per predictor.
func CheckStructure(s Structure, n int) error {
	if len(s.Predictors) != n {
		return structuref("%d predictors for %d points", len(s.Predictors), n)
	}
	if len(s.Ordering) != n {
		return structuref("ordering has %d entries for %d points", len(s.Ordering), n)
	}

	// position[idx] = coding position of cloud point idx.
	position := make([]int, n)
	for i := range position {
		position[i] = -1
	}
	for pos, idx := range s.Ordering {
		if idx < 0 || idx >= n {
			return structuref("ordering[%d]=%d out of range", pos, idx)
		}
		if position[idx] >= 0 {
			return structuref("point %d ordered twice", idx)
		}
		position[idx] = pos
	}

	if len(s.LevelCounts) == 0 {
		return structuref("no level counts")
	}
	prev := 0
	for l, c := range s.LevelCounts {
		if c < prev {
			return structuref("level count %d decreases (%d < %d)", l, c, prev)
		}
		prev = c
	}
	if prev != n {
		return structuref("last level count %d, want %d", prev, n)
	}

	for pos, p := range s.Predictors {
		if len(p.Neighbors) > aps.MaxNeighborCount {
			return structuref("predictor %d has %d neighbours", pos, len(p.Neighbors))
		}
		for _, nb := range p.Neighbors {
			if nb.Index < 0 || nb.Index >= n {
				return structuref("predictor %d references point %d out of range", pos, nb.Index)
			}
			if position[nb.Index] >= pos {
				return structuref("predictor %d references point %d coded at %d", pos, nb.Index, position[nb.Index])
			}
		}
	}

	return nil
}

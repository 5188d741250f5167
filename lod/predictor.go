package lod

// Fixed-point weight format.
const (
	// WeightShift is the number of fractional bits of Neighbor.Weight.
	WeightShift = 16
	// WeightOne is 1.0 in Neighbor.Weight units.
	WeightOne = 1 << WeightShift
)

// ComputeWeights assigns inverse-distance weights to the neighbours,
// normalized so that they sum to WeightOne (minus at most one unit per
// neighbour from truncation). A distance of zero counts as one.
//
// The result depends only on p's own neighbours, so predictors can be
// processed in any order or in parallel. Calling it again gives the same
// weights. No-op for a predictor without neighbours.
// Complexity: O(len(p.Neighbors)).
func (p *Predictor) ComputeWeights() {
	if len(p.Neighbors) == 0 {
		return
	}
	var sum uint64
	for i := range p.Neighbors {
		sum += inverseDistance(p.Neighbors[i].Dist2)
	}
	for i := range p.Neighbors {
		p.Neighbors[i].Weight = uint32((inverseDistance(p.Neighbors[i].Dist2) << WeightShift) / sum)
	}
}

// inverseDistance returns 2^46 / max(d2, 1), at least 1. The numerator
// keeps the later shift by WeightShift inside 64 bits.
func inverseDistance(d2 int64) uint64 {
	if d2 < 1 {
		d2 = 1
	}

	return max((uint64(1)<<46)/uint64(d2), 1)
}

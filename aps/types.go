package aps

import (
	"fmt"
	"slices"
)

// Limits enforced by Validate.
const (
	// MaxNeighborCount bounds the number of prediction neighbours per point.
	MaxNeighborCount = 3

	// MaxDetailLevels bounds NumDetailLevels.
	MaxDetailLevels = 32

	// MaxNeighborBias bounds each NeighborBias entry. With coordinates below
	// 2^21, a biased squared distance stays below 3·2^9·2^42 < 2^53, so it
	// is exact both in int64 and in the float64 kd-tree metric.
	MaxNeighborBias = 1 << 9

	// MaxSearchRange bounds SearchRange.
	MaxSearchRange = 1 << 20
)

// Transform selects the attribute transform. Only the predicting and
// lifting transforms are LoD based.
type Transform int

const (
	// RAHT is the region-adaptive hierarchical transform (no LoDs).
	RAHT Transform = iota
	// Predicting is the LoD-based predicting transform.
	Predicting
	// Lifting is the LoD-based lifting transform.
	Lifting
)

var transformNames = [...]string{RAHT: "raht", Predicting: "predicting", Lifting: "lifting"}

// String returns the lower-case transform name.
func (t Transform) String() string {
	if t < 0 || int(t) >= len(transformNames) {
		return fmt.Sprintf("Transform(%d)", int(t))
	}

	return transformNames[t]
}

// ParseTransform maps a name produced by String back to a Transform.
func ParseTransform(s string) (Transform, error) {
	for i, name := range transformNames {
		if name == s {
			return Transform(i), nil
		}
	}

	return 0, fmt.Errorf("ParseTransform(%q): %w", s, ErrUnknownTransform)
}

// UsesLods reports whether t is LoD based.
func (t Transform) UsesLods() bool {
	return t == Predicting || t == Lifting
}

// ParameterSet is a snapshot of the attribute parameters relevant to LoD
// construction. Lod is non-nil exactly when Transform uses LoDs.
type ParameterSet struct {
	Transform Transform
	Lod       *LodParameters
}

// HasLodParameters reports whether the set carries LoD parameters.
func (ps ParameterSet) HasLodParameters() bool {
	return ps.Lod != nil
}

// ScalableLiftingEnabled reports whether the set enables scalable lifting.
// Sets without LoD parameters never do.
func (ps ParameterSet) ScalableLiftingEnabled() bool {
	return ps.Lod != nil && ps.Lod.ScalableLiftingEnabled
}

// Clone returns a deep copy of ps.
func (ps ParameterSet) Clone() ParameterSet {
	if ps.Lod == nil {
		return ps
	}
	lod := *ps.Lod
	if p, ok := lod.Sampling.(PeriodicSampling); ok {
		lod.Sampling = PeriodicSampling{Periods: slices.Clone(p.Periods)}
	}
	ps.Lod = &lod

	return ps
}

// LodParameters governs how detail levels and predictors are built.
type LodParameters struct {
	// NearestNeighborCountMinus1 is the number of prediction neighbours minus one.
	NearestNeighborCountMinus1 int
	// SearchRange bounds the window of candidate points examined.
	SearchRange int
	// NumDetailLevels is the number of LoDs; 1 means a single level.
	NumDetailLevels int
	// NeighborBias weights squared coordinate differences per axis (x, y, z).
	NeighborBias [3]int
	// ScalableLiftingEnabled selects octree-aligned subsampling.
	ScalableLiftingEnabled bool
	// Sampling is nil iff NumDetailLevels == 1.
	Sampling Sampling
	// IntraLodPredictionEnabled lets points be predicted from earlier points
	// of their own level.
	IntraLodPredictionEnabled bool
	// CanonicalPointOrder keeps the geometry's point order instead of
	// reordering by Morton code.
	CanonicalPointOrder bool
}

// NeighborCount returns NearestNeighborCountMinus1 + 1.
func (lp *LodParameters) NeighborCount() int {
	return lp.NearestNeighborCountMinus1 + 1
}

// DecimationEnabled reports whether levels are built by periodic decimation.
func (lp *LodParameters) DecimationEnabled() bool {
	_, ok := lp.Sampling.(PeriodicSampling)

	return ok
}

// Sampling is the subsampling rule between consecutive detail levels.
// Implementations: DistanceSampling, PeriodicSampling.
type Sampling interface {
	isSampling()
}

// DistanceSampling drops points closer than a squared distance to an
// already retained point. The threshold grows by 4 with every coarser level.
type DistanceSampling struct {
	Dist2 int64
}

// PeriodicSampling keeps every Periods[l]-th point when building refinement
// level l (lod decimation).
type PeriodicSampling struct {
	Periods []int
}

func (DistanceSampling) isSampling() {}
func (PeriodicSampling) isSampling() {}

package lod_test

import (
	"testing"

	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/lod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// builtWith returns a Builder holding a structure for ps.
func builtWith(t *testing.T, ps aps.ParameterSet) *lod.Builder {
	t.Helper()
	cloud := randomCloud(t, 64, 16, 21)
	b := lod.NewBuilder()
	require.NoError(t, b.Generate(ps, cloud.Len()-1, 0, cloud))

	return b
}

// TestIsReusable_NothingHeld reports true when no structure exists.
func TestIsReusable_NothingHeld(t *testing.T) {
	b := lod.NewBuilder()
	assert.True(t, b.IsReusable(liftingParams()))
	assert.False(t, b.Built())
}

// TestIsReusable_Identical covers isReusable(A, A) for several shapes.
func TestIsReusable_Identical(t *testing.T) {
	for name, tc := range structureCases() {
		if tc.params.ScalableLiftingEnabled() {
			continue
		}
		t.Run(name, func(t *testing.T) {
			b := builtWith(t, tc.params)
			assert.True(t, b.IsReusable(tc.params.Clone()))
		})
	}
}

// TestIsReusable_SingleFieldMismatch changes exactly one compared field.
func TestIsReusable_SingleFieldMismatch(t *testing.T) {
	periodic := func() aps.ParameterSet {
		ps := liftingParams()
		ps.Lod.Sampling = aps.PeriodicSampling{Periods: []int{2, 2, 2}}
		return ps
	}

	cases := []struct {
		name   string
		base   func() aps.ParameterSet
		mutate func(*aps.LodParameters)
	}{
		{"nearest neighbours", liftingParams, func(lp *aps.LodParameters) { lp.NearestNeighborCountMinus1 = 1 }},
		{"search range", liftingParams, func(lp *aps.LodParameters) { lp.SearchRange = 8 }},
		{"detail levels", liftingParams, func(lp *aps.LodParameters) { lp.NumDetailLevels = 5 }},
		{"neighbour bias", liftingParams, func(lp *aps.LodParameters) { lp.NeighborBias = [3]int{1, 2, 1} }},
		{"decimation", liftingParams, func(lp *aps.LodParameters) { lp.Sampling = aps.PeriodicSampling{Periods: []int{2, 2, 2}} }},
		{"dist2", liftingParams, func(lp *aps.LodParameters) { lp.Sampling = aps.DistanceSampling{Dist2: 5} }},
		{"sampling period", periodic, func(lp *aps.LodParameters) { lp.Sampling = aps.PeriodicSampling{Periods: []int{2, 3, 2}} }},
		{"intra lod prediction", liftingParams, func(lp *aps.LodParameters) { lp.IntraLodPredictionEnabled = true }},
		{"canonical point order", liftingParams, func(lp *aps.LodParameters) { lp.CanonicalPointOrder = true }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			b := builtWith(t, tc.base())
			next := tc.base()
			tc.mutate(next.Lod)
			assert.False(t, b.IsReusable(next))
		})
	}
}

// TestIsReusable_SearchRangeScenario: 8 vs 16 is not reusable.
func TestIsReusable_SearchRangeScenario(t *testing.T) {
	a := liftingParams()
	a.Lod.SearchRange = 8
	c := liftingParams()
	c.Lod.SearchRange = 16

	assert.False(t, builtWith(t, a).IsReusable(c))
}

// TestIsReusable_FlatSide returns true whenever either side has no LoD
// parameters, whatever the other fields hold.
func TestIsReusable_FlatSide(t *testing.T) {
	flat := aps.ParameterSet{Transform: aps.RAHT}

	b := builtWith(t, liftingParams())
	assert.True(t, b.IsReusable(flat))

	scalable := liftingParams()
	scalable.Lod.ScalableLiftingEnabled = true
	assert.True(t, builtWith(t, flat).IsReusable(scalable))
	assert.True(t, builtWith(t, flat).IsReusable(liftingParams()))
}

// TestIsReusable_ScalableLifting is never reusable, even when identical.
func TestIsReusable_ScalableLifting(t *testing.T) {
	scalable := liftingParams()
	scalable.Lod.ScalableLiftingEnabled = true

	assert.False(t, builtWith(t, scalable).IsReusable(scalable))
	assert.False(t, builtWith(t, scalable).IsReusable(liftingParams()))
	assert.False(t, builtWith(t, liftingParams()).IsReusable(scalable))
}

// TestIsReusable_DoesNotMutate leaves the held structure as it was.
func TestIsReusable_DoesNotMutate(t *testing.T) {
	b := builtWith(t, liftingParams())
	before := b.Structure()
	params := b.Params()

	other := liftingParams()
	other.Lod.SearchRange = 3
	b.IsReusable(other)

	assert.Equal(t, before, b.Structure())
	assert.Equal(t, params, b.Params())
}

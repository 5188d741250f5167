package lod

import (
	"slices"

	"github.com/katalvlaran/attrlod/aps"
)

// IsReusable reports whether the held structure is also valid for params,
// so a second attribute over the same cloud can skip Generate.
//
// Policy:
//  1. nothing held → true (nothing to invalidate; the caller still has to
//     build before reading the structure, see Ensure);
//  2. either side without LoD parameters → true;
//  3. any difference in neighbour count, search range, detail levels,
//     neighbour bias, decimation, dist2 / sampling periods, intra-LoD
//     prediction or canonical point order → false;
//  4. either side with scalable lifting → false, unconditionally;
//  5. otherwise → true.
//
// dist2 and the sampling periods are only reachable through their Sampling
// variant, so they are compared only when both sides use the same one.
// Pure; never mutates b.
func (b *Builder) IsReusable(params aps.ParameterSet) bool {
	if !b.built {
		return true
	}
	if !b.params.HasLodParameters() || !params.HasLodParameters() {
		return true
	}

	held, next := b.params.Lod, params.Lod
	if !sameLodStructure(held, next) {
		return false
	}
	// Scalable lifting is never cached.
	if held.ScalableLiftingEnabled || next.ScalableLiftingEnabled {
		return false
	}

	return true
}

// sameLodStructure compares every field that shapes the structure.
func sameLodStructure(a, b *aps.LodParameters) bool {
	switch {
	case a.NearestNeighborCountMinus1 != b.NearestNeighborCountMinus1:
		return false
	case a.SearchRange != b.SearchRange:
		return false
	case a.NumDetailLevels != b.NumDetailLevels:
		return false
	case a.NeighborBias != b.NeighborBias:
		return false
	case a.DecimationEnabled() != b.DecimationEnabled():
		return false
	case !sameSampling(a.Sampling, b.Sampling):
		return false
	case a.IntraLodPredictionEnabled != b.IntraLodPredictionEnabled:
		return false
	case a.CanonicalPointOrder != b.CanonicalPointOrder:
		return false
	}

	return true
}

func sameSampling(a, b aps.Sampling) bool {
	switch sa := a.(type) {
	case aps.DistanceSampling:
		sb, ok := b.(aps.DistanceSampling)
		return ok && sa.Dist2 == sb.Dist2
	case aps.PeriodicSampling:
		sb, ok := b.(aps.PeriodicSampling)
		return ok && slices.Equal(sa.Periods, sb.Periods)
	default:
		return b == nil
	}
}

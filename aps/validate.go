package aps

// methodValidate prefixes every validation error.
const methodValidate = "Validate"

// Validate checks ranges and cross-field consistency. The first violation
// found is returned, wrapped around ErrInvalidParameters.
//
// Checks, in order:
//  1. Transform is known.
//  2. Lod is present exactly when Transform uses LoDs.
//  3. LoD ranges: neighbour count, search range, level count, bias.
//  4. Scalable lifting only with the lifting transform.
//  5. Sampling present iff NumDetailLevels > 1, with valid contents.
//
// Complexity: O(NumDetailLevels).
func (ps ParameterSet) Validate() error {
	if ps.Transform < RAHT || ps.Transform > Lifting {
		return invalidf(methodValidate, "transform", "%v", ps.Transform)
	}
	if ps.Transform.UsesLods() != (ps.Lod != nil) {
		return invalidf(methodValidate, "lod", "transform %v requires lod=%t", ps.Transform, ps.Transform.UsesLods())
	}
	if ps.Lod == nil {
		return nil
	}

	lp := ps.Lod
	if lp.NearestNeighborCountMinus1 < 0 || lp.NearestNeighborCountMinus1 >= MaxNeighborCount {
		return invalidf(methodValidate, "nearest_neighbors", "count %d not in [1,%d]", lp.NeighborCount(), MaxNeighborCount)
	}
	if lp.SearchRange < 1 || lp.SearchRange > MaxSearchRange {
		return invalidf(methodValidate, "search_range", "%d not in [1,%d]", lp.SearchRange, MaxSearchRange)
	}
	if lp.NumDetailLevels < 1 || lp.NumDetailLevels > MaxDetailLevels {
		return invalidf(methodValidate, "detail_levels", "%d not in [1,%d]", lp.NumDetailLevels, MaxDetailLevels)
	}
	for axis, b := range lp.NeighborBias {
		if b < 1 || b > MaxNeighborBias {
			return invalidf(methodValidate, "neighbor_bias", "axis %d: %d not in [1,%d]", axis, b, MaxNeighborBias)
		}
	}
	if lp.ScalableLiftingEnabled && ps.Transform != Lifting {
		return invalidf(methodValidate, "scalable_lifting", "requires the lifting transform, got %v", ps.Transform)
	}

	return validateSampling(lp)
}

func validateSampling(lp *LodParameters) error {
	if lp.NumDetailLevels == 1 {
		if lp.Sampling != nil {
			return invalidf(methodValidate, "sampling", "set for a single detail level")
		}

		return nil
	}

	switch s := lp.Sampling.(type) {
	case DistanceSampling:
		if s.Dist2 < 0 {
			return invalidf(methodValidate, "dist2", "%d < 0", s.Dist2)
		}
	case PeriodicSampling:
		if len(s.Periods) != lp.NumDetailLevels-1 {
			return invalidf(methodValidate, "sampling_periods", "want %d periods, got %d", lp.NumDetailLevels-1, len(s.Periods))
		}
		for l, p := range s.Periods {
			if p < 2 {
				return invalidf(methodValidate, "sampling_periods", "level %d: period %d < 2", l, p)
			}
		}
	default:
		return invalidf(methodValidate, "sampling", "missing for %d detail levels", lp.NumDetailLevels)
	}

	return nil
}

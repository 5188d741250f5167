// Package aps models the attribute parameter set: the configuration that
// decides how the Level-of-Detail prediction structure is built.
//
// What:
//
//   - ParameterSet: an immutable snapshot (Transform + optional LoD block).
//   - LodParameters: every field governing LoD construction.
//   - Sampling: how points are dropped between detail levels, as a closed
//     sum of DistanceSampling and PeriodicSampling.
//
// Why the optional blocks:
//
//	Some parameters only have a meaning when a governing flag is set. dist2
//	is meaningful only without decimation, sampling periods only with it,
//	and nothing in LodParameters is meaningful for a transform that does not
//	use LoDs. Those values therefore live in sub-structures that exist only
//	when their governing condition holds, and code reaches them through a
//	type switch or a nil check instead of a comparison order.
//
// Loading:
//
//	ps, err := aps.Load("attr.yaml")   // YAML, validated
//	key := ps.Fingerprint()            // stable 64-bit structural key
//
// Errors:
//
//   - ErrInvalidParameters: a field is out of range or inconsistent.
//   - ErrUnknownTransform: unrecognized transform name.
//   - ErrSamplingConflict: both dist2 and sampling periods were given.
package aps

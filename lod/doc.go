// Package lod builds the Level-of-Detail prediction structure used by the
// predicting and lifting attribute transforms, and decides when an existing
// structure can be reused for another attribute.
//
// 🚀 What is a LoD structure?
//
//	Points are split into detail levels, coarse to fine. Every point is
//	predicted from a few nearby points that are coded before it: points of
//	coarser levels and, optionally, earlier points of its own level. The
//	structure is three arrays, all in coding order:
//	  • Ordering[i]    : the cloud index of the i-th coded point
//	  • LevelCounts[l] : number of points in levels 0..l (cumulative)
//	  • Predictors[i]  : the neighbours (and weights) predicting Ordering[i]
//
// ✨ Key pieces:
//   - Builder.Generate: validate → Searcher.Search → CheckStructure →
//     Predictor.ComputeWeights on every predictor → replace state atomically.
//   - Builder.IsReusable: whether the held structure fits another parameter set.
//   - Builder.Ensure: reuse when possible, otherwise Generate.
//   - KDSearcher: the default, deterministic neighbour search (gonum kd-tree).
//   - Cache: an LRU of builders keyed by cloud.
//
// ⚙️ Usage:
//
//	b := lod.NewBuilder(lod.WithWorkers(4))
//	if err := b.Generate(params, cloud.Len()-1, 0, cloud); err != nil {
//		if lod.IsFatal(err) {
//			// non-conformant configuration: abort, do not retry
//		}
//		return err
//	}
//	for i, p := range b.Predictors() {
//		_ = b.Ordering()[i] // point predicted by p
//	}
//
// Determinism:
//
//	Encoder and decoder build the structure independently and must agree
//	bit for bit. KDSearcher breaks every distance tie by coding position and
//	weights are fixed-point integers, so identical inputs give identical
//	structures on every platform.
//
// Concurrency:
//
//	A Builder is not safe for concurrent use. IsReusable is read-only.
//	Generate parallelizes weight computation internally and returns only
//	after all of it is done.
package lod

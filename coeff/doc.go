// Package coeff maps residual magnitudes to the 16 entropy-coding contexts
// used by attribute coding.
//
// 🚀 What is a coefficient interval?
//
//	After prediction, every attribute residual is coded with an adaptive
//	probability model. The model is chosen per residual from a small set of
//	contexts, selected by the residual's magnitude:
//	  • one context per value for magnitudes 0..3
//	  • two contexts per power-of-two octave above that
//	  • everything from 192 upwards shares the last context
//
// ✨ Key features:
//   - constant-time lookup for magnitudes 0..255 (Interval)
//   - the closed-form rule the table is derived from (IntervalClosedForm)
//   - bucket bounds (Bounds) and a per-context Histogram for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/attrlod/coeff"
//
//	ctx := coeff.Interval(17) // 8
//	lo, hi := coeff.Bounds(ctx) // [16, 24)
//
// Guarantees:
//
//   - Interval is monotonic non-decreasing and total over uint32.
//   - Tables are package-level constants; nothing in this package mutates
//     shared state, so every function is safe for concurrent use.
//
// Performance:
//
//   - Interval, Bounds: O(1), no allocation.
//   - IntervalClosedForm: O(1) (one bits.Len32).
package coeff

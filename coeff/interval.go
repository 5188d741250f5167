// SPDX-License-Identifier: MIT
// Package: attrlod/coeff
//
// interval.go: magnitude → context tables.
//
// Contract:
//   • intervalOf and intervalStart are unexported literals; they are never
//     written to. IntervalStarts hands out a copy.
//   • Interval agrees with IntervalClosedForm on [0, MaxTabulated] and
//     saturates to NumIntervals-1 above it.

package coeff

import "math/bits"

const (
	// NumIntervals is the number of magnitude contexts.
	NumIntervals = 16

	// MaxTabulated is the largest magnitude covered by the lookup table.
	// Larger magnitudes saturate to the last context.
	MaxTabulated = 255
)

// intervalStart holds the lower bound of every context; intervalStart[b+1]
// is the (exclusive) upper bound of context b. The last entry is the
// tabulation cap.
var intervalStart = [NumIntervals + 1]uint32{
	0, 1, 2, 3, 4, 6, 8, 12, 16, 24, 32, 48, 64, 96, 128, 192, 256,
}

// intervalOf is IntervalClosedForm evaluated on [0, MaxTabulated].
var intervalOf = [MaxTabulated + 1]uint8{
	0, 1, 2, 3, 4, 4, 5, 5, 6, 6, 6, 6, 7, 7, 7, 7, // 0..15
	8, 8, 8, 8, 8, 8, 8, 8, 9, 9, 9, 9, 9, 9, 9, 9, // 16..31
	10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, 10, // 32..47
	11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, 11, // 48..63
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // 64..79
	12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, 12, // 80..95
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, // 96..111
	13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, 13, // 112..127
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, // 128..143
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, // 144..159
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, // 160..175
	14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, 14, // 176..191
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, // 192..207
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, // 208..223
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, // 224..239
	15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, 15, // 240..255
}

// Interval returns the context index in [0, NumIntervals) for magnitude m.
//
// Magnitudes above MaxTabulated saturate to NumIntervals-1; see
// IntervalClosedForm for the unbounded rule.
//
// Complexity: O(1).
func Interval(m uint32) int {
	if m > MaxTabulated {
		return NumIntervals - 1
	}

	return int(intervalOf[m])
}

// IntervalClosedForm evaluates the binning rule the table is built from:
//
//	m < 2:  m
//	m >= 2: 2t + ((m - 2^t) >> (t-1)),  t = floor(log2 m)
//
// It is not capped: for m >= 256 it returns values >= 16.
//
// Complexity: O(1).
func IntervalClosedForm(m uint32) int {
	if m < 2 {
		return int(m)
	}
	t := uint(bits.Len32(m) - 1)

	return int(2*t) + int((m-(1<<t))>>(t-1))
}

// Bounds returns the half-open magnitude range [lo, hi) of context b.
// For the last context hi is the tabulation cap, although Interval maps every
// larger magnitude there as well.
// Panics if b is outside [0, NumIntervals).
func Bounds(b int) (lo, hi uint32) {
	if b < 0 || b >= NumIntervals {
		panic("coeff: Bounds: context index out of range")
	}

	return intervalStart[b], intervalStart[b+1]
}

// IntervalStarts returns a copy of the context lower bounds followed by the
// tabulation cap. Writing to the result does not affect the package tables.
func IntervalStarts() [NumIntervals + 1]uint32 {
	return intervalStart
}

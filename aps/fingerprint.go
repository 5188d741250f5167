package aps

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"
)

// Sampling tags in the canonical encoding.
const (
	tagNoSampling       = 0
	tagDistanceSampling = 1
	tagPeriodicSampling = 2
)

// Fingerprint returns a 64-bit xxhash of the canonical encoding of ps.
// Equal sets have equal fingerprints; the encoding covers every field,
// tagged by presence, so fields that are absent never collide with zero
// values.
// Complexity: O(NumDetailLevels).
func (ps ParameterSet) Fingerprint() uint64 {
	return xxhash.Sum64(ps.appendCanonical(make([]byte, 0, 128)))
}

func (ps ParameterSet) appendCanonical(buf []byte) []byte {
	buf = appendInt(buf, int(ps.Transform))
	if ps.Lod == nil {
		return append(buf, 0)
	}
	buf = append(buf, 1)

	lp := ps.Lod
	buf = appendInt(buf, lp.NearestNeighborCountMinus1)
	buf = appendInt(buf, lp.SearchRange)
	buf = appendInt(buf, lp.NumDetailLevels)
	for _, b := range lp.NeighborBias {
		buf = appendInt(buf, b)
	}
	buf = append(buf, boolByte(lp.ScalableLiftingEnabled), boolByte(lp.IntraLodPredictionEnabled), boolByte(lp.CanonicalPointOrder))

	switch s := lp.Sampling.(type) {
	case DistanceSampling:
		buf = append(buf, tagDistanceSampling)
		buf = binary.LittleEndian.AppendUint64(buf, uint64(s.Dist2))
	case PeriodicSampling:
		buf = append(buf, tagPeriodicSampling)
		buf = appendInt(buf, len(s.Periods))
		for _, p := range s.Periods {
			buf = appendInt(buf, p)
		}
	default:
		buf = append(buf, tagNoSampling)
	}

	return buf
}

// appendInt writes v at full 64-bit width, so fingerprints also separate
// sets that Validate would reject.
func appendInt(buf []byte, v int) []byte {
	return binary.LittleEndian.AppendUint64(buf, uint64(v))
}

func boolByte(b bool) byte {
	if b {
		return 1
	}

	return 0
}

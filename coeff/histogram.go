package coeff

// Histogram counts magnitudes per context.
// The zero value is ready to use. Not safe for concurrent mutation.
type Histogram [NumIntervals]uint64

// Add records one magnitude.
func (h *Histogram) Add(m uint32) {
	h[Interval(m)]++
}

// AddAll records every magnitude in ms.
func (h *Histogram) AddAll(ms []uint32) {
	for _, m := range ms {
		h[Interval(m)]++
	}
}

// Total returns the number of recorded magnitudes.
func (h *Histogram) Total() uint64 {
	var n uint64
	for _, c := range h {
		n += c
	}

	return n
}

package pointcloud

import "fmt"

// MaxCoordinate is the largest coordinate MortonCode can interleave (21 bits).
const MaxCoordinate = 1<<21 - 1

// Vec3 is a quantized point position.
type Vec3 struct {
	X, Y, Z int32
}

// Axis returns coordinate a (0=X, 1=Y, 2=Z).
func (v Vec3) Axis(a int) int32 {
	switch a {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

// Shift returns v with every coordinate shifted right by s bits.
func (v Vec3) Shift(s int) Vec3 {
	return Vec3{X: v.X >> s, Y: v.Y >> s, Z: v.Z >> s}
}

// Cloud is an ordered set of positions. Index i of every method refers to
// the i-th point as supplied to New.
type Cloud struct {
	positions []Vec3
}

// New validates and copies positions into a Cloud.
// Returns ErrNegativeCoordinate or ErrCoordinateRange wrapped with the
// offending point index.
// Complexity: O(n).
func New(positions []Vec3) (*Cloud, error) {
	for i, p := range positions {
		if err := validatePosition(p); err != nil {
			return nil, fmt.Errorf("New: point %d: %w", i, err)
		}
	}
	cp := make([]Vec3, len(positions))
	copy(cp, positions)

	return &Cloud{positions: cp}, nil
}

// Len returns the number of points.
func (c *Cloud) Len() int {
	return len(c.positions)
}

// Position returns the position of point i. Panics if i is out of range.
func (c *Cloud) Position(i int) Vec3 {
	return c.positions[i]
}

// Bounds returns the component-wise maximum position; the minimum is
// always the origin. An empty cloud returns the zero Vec3.
func (c *Cloud) Bounds() Vec3 {
	var hi Vec3
	for _, p := range c.positions {
		hi.X = max(hi.X, p.X)
		hi.Y = max(hi.Y, p.Y)
		hi.Z = max(hi.Z, p.Z)
	}

	return hi
}

func validatePosition(p Vec3) error {
	if p.X < 0 || p.Y < 0 || p.Z < 0 {
		return ErrNegativeCoordinate
	}
	if p.X > MaxCoordinate || p.Y > MaxCoordinate || p.Z > MaxCoordinate {
		return ErrCoordinateRange
	}

	return nil
}

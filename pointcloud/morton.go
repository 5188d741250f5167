package pointcloud

// MortonCode interleaves the low 21 bits of each coordinate, X taking the
// most significant bit of every triple. Points close in space tend to be
// close in Morton order.
// Complexity: O(1).
func MortonCode(v Vec3) uint64 {
	return spread3(uint64(v.X))<<2 | spread3(uint64(v.Y))<<1 | spread3(uint64(v.Z))
}

// spread3 inserts two zero bits between each of the low 21 bits of x.
func spread3(x uint64) uint64 {
	x &= 0x1fffff
	x = (x | x<<32) & 0x1f00000000ffff
	x = (x | x<<16) & 0x1f0000ff0000ff
	x = (x | x<<8) & 0x100f00f00f00f00f
	x = (x | x<<4) & 0x10c30c30c30c30c3
	x = (x | x<<2) & 0x1249249249249249

	return x
}

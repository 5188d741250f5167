package pointcloud

import "errors"

var (
	// ErrNegativeCoordinate indicates a position with a coordinate below zero.
	ErrNegativeCoordinate = errors.New("pointcloud: coordinate must be non-negative")

	// ErrCoordinateRange indicates a coordinate that does not fit MortonCode.
	ErrCoordinateRange = errors.New("pointcloud: coordinate exceeds MaxCoordinate")

	// ErrMalformedLine indicates an xyz line that is not three integers.
	ErrMalformedLine = errors.New("pointcloud: malformed xyz line")
)

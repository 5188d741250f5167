// Package pointcloud holds the minimal geometric view of a point cloud the
// attribute stage needs: an ordered list of non-negative integer positions.
//
// What:
//
//   - Vec3: a quantized position (X, Y, Z >= 0).
//   - Cloud: an ordered, immutable-after-build set of positions.
//   - MortonCode: 3-D bit interleaving used to derive a locality-preserving
//     point order.
//   - ReadXYZ / LoadXYZ: a plain ASCII reader ("x y z" per line).
//
// Why:
//
//   - Geometry coding has already produced the positions; attribute coding
//     only reads them. Keeping the type small keeps the builder independent
//     of any particular geometry codec.
//
// Errors:
//
//   - ErrNegativeCoordinate: a coordinate below zero.
//   - ErrCoordinateRange: a coordinate above MaxCoordinate.
//   - ErrMalformedLine: a line that is not three integers.
package pointcloud

// Package attrlod prepares point-cloud attribute coding: it builds the
// Level-of-Detail prediction structure shared by the predicting and lifting
// transforms and classifies residual magnitudes into coefficient contexts.
//
// 🚀 What is attrlod?
//
//	The encoder and the decoder of a point-cloud attribute codec both derive,
//	from the decoded geometry alone, which points are coded first and which
//	earlier points predict each later one. attrlod builds that structure
//	deterministically, reuses it across attributes whenever the parameters
//	allow, and maps coefficient magnitudes to the 16 entropy-coding contexts.
//
// ✨ Packages:
//
//	aps/         attribute parameter sets: types, validation, YAML, fingerprint
//	pointcloud/  integer point positions, Morton codes, xyz loader
//	lod/         Builder, KDSearcher, reuse policy and the builder Cache
//	coeff/       coefficient interval classifier and context histogram
//	cmd/lodtool  command-line front end
//
// Quick example:
//
//	params, _ := aps.Load("aps.yaml")
//	cloud, _ := pointcloud.LoadXYZ("points.xyz")
//	b := lod.NewBuilder()
//	if err := b.Generate(params, cloud.Len()-1, 0, cloud); err != nil {
//		return err
//	}
//	ctx := coeff.Interval(residual)
//
//	go get github.com/katalvlaran/attrlod
package attrlod

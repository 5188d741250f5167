package lod

import (
	"github.com/katalvlaran/attrlod/aps"
	"github.com/katalvlaran/attrlod/pointcloud"
)

// Cloud is the read-only view of a point cloud the builder needs.
// *pointcloud.Cloud implements it.
type Cloud interface {
	Len() int
	Position(i int) pointcloud.Vec3
}

// Searcher derives the predictor structure for a cloud. Implementations must
// be deterministic: identical inputs yield identical structures.
// The returned structure is owned by the caller afterwards.
type Searcher interface {
	Search(params aps.ParameterSet, cloud Cloud, minNodeSizeLog2, totalPointCountMinus1 int) (Structure, error)
}

// Structure is a LoD predictor structure, indexed by coding position:
// Predictors[i] predicts point Ordering[i].
type Structure struct {
	Predictors  []Predictor
	LevelCounts []int
	Ordering    []int
}

// Neighbor is one prediction reference.
type Neighbor struct {
	// Index is the cloud index of the referenced point.
	Index int
	// Dist2 is the biased squared distance to the predicted point.
	Dist2 int64
	// Weight is the fixed-point prediction weight (WeightOne == 1.0),
	// filled by Predictor.ComputeWeights.
	Weight uint32
}

// Predictor lists the neighbours of one point, nearest first.
type Predictor struct {
	Neighbors []Neighbor
}

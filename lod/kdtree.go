package lod

import (
	"math"

	"gonum.org/v1/gonum/spatial/kdtree"

	"github.com/katalvlaran/attrlod/pointcloud"
)

// metric is the biased squared Euclidean distance Σ bias[a]·d[a]².
type metric struct {
	bias  [3]int64
	scale [3]float64 // just under sqrt(bias), for kd-tree plane distances
}

// planeShrink keeps squared plane distances at or below the exact point
// distance despite rounding in sqrt, so the kd-tree never prunes a tie.
const planeShrink = 1 - 1e-9

func newMetric(bias [3]int) metric {
	var m metric
	for a, b := range bias {
		m.bias[a] = int64(b)
		m.scale[a] = math.Sqrt(float64(b)) * planeShrink
	}

	return m
}

func (m metric) dist2(p, q pointcloud.Vec3) int64 {
	dx := int64(p.X) - int64(q.X)
	dy := int64(p.Y) - int64(q.Y)
	dz := int64(p.Z) - int64(q.Z)

	return m.bias[0]*dx*dx + m.bias[1]*dy*dy + m.bias[2]*dz*dz
}

// kdPoint adapts a coded point to kdtree.Comparable.
// Distance is the exact biased distance; Compare is the matching signed
// plane distance, scaled so that its square never exceeds Distance.
type kdPoint struct {
	pos int // coding position; -1 for queries
	v   pointcloud.Vec3
	m   *metric
}

func (p kdPoint) Compare(c kdtree.Comparable, d kdtree.Dim) float64 {
	q := c.(kdPoint)

	return p.m.scale[d] * float64(p.v.Axis(int(d))-q.v.Axis(int(d)))
}

func (p kdPoint) Dims() int { return 3 }

func (p kdPoint) Distance(c kdtree.Comparable) float64 {
	return float64(p.m.dist2(p.v, c.(kdPoint).v))
}

// kdPoints adapts a slice of points to kdtree.Interface.
type kdPoints []kdPoint

func (p kdPoints) Index(i int) kdtree.Comparable { return p[i] }
func (p kdPoints) Len() int                      { return len(p) }
func (p kdPoints) Pivot(d kdtree.Dim) int        { return kdPlane{Dim: d, kdPoints: p}.Pivot() }
func (p kdPoints) Slice(start, end int) kdtree.Interface {
	return p[start:end]
}

// kdPlane orders kdPoints along one dimension, for partitioning.
type kdPlane struct {
	kdtree.Dim
	kdPoints
}

func (p kdPlane) Less(i, j int) bool {
	return p.kdPoints[i].v.Axis(int(p.Dim)) < p.kdPoints[j].v.Axis(int(p.Dim))
}
func (p kdPlane) Pivot() int { return kdtree.Partition(p, kdtree.MedianOfMedians(p)) }
func (p kdPlane) Slice(start, end int) kdtree.SortSlicer {
	p.kdPoints = p.kdPoints[start:end]
	return p
}
func (p kdPlane) Swap(i, j int) {
	p.kdPoints[i], p.kdPoints[j] = p.kdPoints[j], p.kdPoints[i]
}

// kdIndex answers k-nearest queries over a fixed set of coded points.
type kdIndex struct {
	m    *metric
	tree *kdtree.Tree
}

// newKDIndex indexes the points coded at positions [0, len(coded)).
func newKDIndex(m metric, cloud Cloud, coded []int) *kdIndex {
	mp := &m
	pts := make(kdPoints, len(coded))
	for pos, idx := range coded {
		pts[pos] = kdPoint{pos: pos, v: cloud.Position(idx), m: mp}
	}

	return &kdIndex{m: mp, tree: kdtree.New(pts, false)}
}

// nearest appends the k nearest indexed points to q, plus any further
// points tied with the k-th distance, so the caller's tie-break decides
// among equals.
func (x *kdIndex) nearest(q pointcloud.Vec3, k int, dst []candidate) []candidate {
	query := kdPoint{pos: -1, v: q, m: x.m}

	nk := kdtree.NewNKeeper(k)
	x.tree.NearestSet(nk, query)
	radius := -1.0
	found := 0
	for _, c := range nk.Heap {
		if c.Comparable == nil {
			continue
		}
		found++
		radius = max(radius, c.Dist)
	}
	if found == 0 {
		return dst
	}
	if found < k {
		// Fewer points than k: the keeper already holds all of them.
		return x.appendHeap(q, nk.Heap, dst)
	}

	dk := kdtree.NewDistKeeper(radius)
	x.tree.NearestSet(dk, query)

	return x.appendHeap(q, dk.Heap, dst)
}

// appendHeap converts keeper results to candidates, skipping the keeper's
// sentinel and recomputing distances in integers.
func (x *kdIndex) appendHeap(q pointcloud.Vec3, h kdtree.Heap, dst []candidate) []candidate {
	for _, c := range h {
		if c.Comparable == nil {
			continue
		}
		p := c.Comparable.(kdPoint)
		dst = append(dst, candidate{pos: p.pos, dist2: x.m.dist2(q, p.v)})
	}

	return dst
}

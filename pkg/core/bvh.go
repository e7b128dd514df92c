package core

import (
	"math"
	"math/rand"
	"sort"
)

// HitEpsilon is the minimum distance a hit must lie along a ray. It stops a
// bounced ray from hitting the surface it just left.
const HitEpsilon = 1e-3

// BVHNode represents a node in the Bounding Volume Hierarchy. Leaves hold
// exactly one primitive; internal nodes hold two children.
type BVHNode struct {
	Bounds    Bounds
	Left      *BVHNode
	Right     *BVHNode
	Primitive Primitive // nil for internal nodes
}

// BVH represents a Bounding Volume Hierarchy for fast ray-object intersection
type BVH struct {
	Root *BVHNode
}

// NewBVH constructs a BVH from a slice of primitives. The split axis of
// every node is drawn from random.
func NewBVH(primitives []Primitive, random *rand.Rand) *BVH {
	if len(primitives) == 0 {
		return &BVH{Root: nil}
	}

	// Sorting happens in place, so work on a copy of the caller's slice
	primitivesCopy := make([]Primitive, len(primitives))
	copy(primitivesCopy, primitives)

	return &BVH{
		Root: buildBVH(primitivesCopy, random),
	}
}

// buildBVH recursively splits the primitives at the median along a random axis
func buildBVH(primitives []Primitive, random *rand.Rand) *BVHNode {
	if len(primitives) == 1 {
		return &BVHNode{
			Bounds:    primitives[0].Bounds(),
			Primitive: primitives[0],
		}
	}

	axis := random.Intn(3)
	sort.SliceStable(primitives, func(i, j int) bool {
		return primitives[i].Bounds().lessOnAxis(primitives[j].Bounds(), axis)
	})

	mid := len(primitives) / 2
	left := buildBVH(primitives[:mid], random)
	right := buildBVH(primitives[mid:], random)

	return &BVHNode{
		Bounds: left.Bounds.Union(right.Bounds),
		Left:   left,
		Right:  right,
	}
}

// Intersect returns the nearest hit along the ray further than HitEpsilon
func (bvh *BVH) Intersect(ray Ray) (Hit, bool) {
	if bvh.Root == nil {
		return Hit{}, false
	}
	return bvh.Root.intersect(ray, math.Inf(1))
}

// intersect finds the nearest hit in the subtree closer than tMax
func (node *BVHNode) intersect(ray Ray, tMax float64) (Hit, bool) {
	if !node.Bounds.Intersect(ray) {
		return Hit{}, false
	}

	if node.Primitive != nil {
		hit, ok := node.Primitive.Intersect(ray)
		if !ok || hit.Distance <= HitEpsilon || hit.Distance >= tMax {
			return Hit{}, false
		}
		return hit, true
	}

	closest, hitAnything := node.Left.intersect(ray, tMax)
	if hitAnything {
		tMax = closest.Distance
	}
	if hit, ok := node.Right.intersect(ray, tMax); ok {
		return hit, true
	}
	return closest, hitAnything
}

// BVHStats describes the shape of a built BVH
type BVHStats struct {
	TotalNodes int
	LeafNodes  int
	MaxDepth   int
	AvgDepth   float64
}

// Stats returns statistics about the BVH structure
func (bvh *BVH) Stats() BVHStats {
	if bvh.Root == nil {
		return BVHStats{}
	}

	stats := BVHStats{}
	bvh.Root.collectStats(0, &stats)

	// Calculate average depth after collecting all data
	if stats.LeafNodes > 0 {
		stats.AvgDepth = stats.AvgDepth / float64(stats.LeafNodes)
	}

	return stats
}

// collectStats recursively collects statistics about the BVH
func (node *BVHNode) collectStats(depth int, stats *BVHStats) {
	stats.TotalNodes++

	if depth > stats.MaxDepth {
		stats.MaxDepth = depth
	}

	if node.Primitive != nil {
		stats.LeafNodes++
		stats.AvgDepth += float64(depth) // summed here, divided in Stats
		return
	}
	node.Left.collectStats(depth+1, stats)
	node.Right.collectStats(depth+1, stats)
}

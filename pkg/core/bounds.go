package core

import "math"

// Bounds is an axis-aligned bounding volume. It is either a finite box
// (Min <= Max component-wise) or the Full sentinel used by primitives
// without finite extent, which every ray intersects.
type Bounds struct {
	Min  Vec3 // Minimum corner
	Max  Vec3 // Maximum corner
	full bool
}

// NewBoundingBox creates a finite box from two opposite corners in any order
func NewBoundingBox(a, b Vec3) Bounds {
	return Bounds{Min: a.Min(b), Max: a.Max(b)}
}

// NewBoundingBoxFromPoints creates the smallest box enclosing all points
func NewBoundingBoxFromPoints(points ...Vec3) Bounds {
	if len(points) == 0 {
		return Bounds{}
	}
	min, max := points[0], points[0]
	for _, p := range points[1:] {
		min = min.Min(p)
		max = max.Max(p)
	}
	return Bounds{Min: min, Max: max}
}

// FullBounds returns the unbounded sentinel
func FullBounds() Bounds {
	return Bounds{full: true}
}

// IsFull reports whether b is the unbounded sentinel
func (b Bounds) IsFull() bool {
	return b.full
}

// Intersect runs the slab test. A zero direction component relies on IEEE
// division producing ±Inf; the interval starts at [0, +Inf) so boxes
// entirely behind the ray origin are rejected.
func (b Bounds) Intersect(ray Ray) bool {
	if b.full {
		return true
	}

	tMin, tMax := 0.0, math.Inf(1)
	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin.Axis(axis)
		direction := ray.Direction.Axis(axis)

		t0 := (b.Min.Axis(axis) - origin) / direction
		t1 := (b.Max.Axis(axis) - origin) / direction
		// Swapping on the values rather than the sign of direction also
		// covers -0.0
		if t0 > t1 {
			t0, t1 = t1, t0
		}

		// Comparisons skip NaN (origin on a face of a slab the ray is parallel to)
		if t0 > tMin {
			tMin = t0
		}
		if t1 < tMax {
			tMax = t1
		}
		if tMax <= tMin {
			return false
		}
	}
	return true
}

// Union returns the smallest Bounds enclosing both b and other. Full absorbs.
func (b Bounds) Union(other Bounds) Bounds {
	if b.full || other.full {
		return FullBounds()
	}
	return Bounds{Min: b.Min.Min(other.Min), Max: b.Max.Max(other.Max)}
}

// lessOnAxis orders bounds by their minimum coordinate on axis. Full bounds
// sort after every finite box and equal to each other.
func (b Bounds) lessOnAxis(other Bounds, axis int) bool {
	switch {
	case b.full:
		return false
	case other.full:
		return true
	default:
		return b.Min.Axis(axis) < other.Min.Axis(axis)
	}
}

package geometry

import (
	"fmt"

	"github.com/joshua-smart/FeO/pkg/core"
)

// NewTriangleMesh creates triangles from vertices and face indices. Each
// group of 3 indices forms a triangle. The optional transform is applied
// to every vertex.
func NewTriangleMesh(vertices []core.Vec3, faces []int, materialID int, transform *core.Mat4) ([]core.Primitive, error) {
	if len(faces)%3 != 0 {
		return nil, fmt.Errorf("geometry: face indices must be a multiple of 3, got %d", len(faces))
	}

	working := vertices
	if transform != nil {
		working = make([]core.Vec3, len(vertices))
		for i, vertex := range vertices {
			working[i] = transform.Transform(vertex, true)
		}
	}
	for i, vertex := range working {
		if !vertex.IsFinite() {
			return nil, fmt.Errorf("geometry: vertex %d is not finite: %v", i, vertex)
		}
	}

	triangles := make([]core.Primitive, 0, len(faces)/3)
	for i := 0; i < len(faces); i += 3 {
		i0, i1, i2 := faces[i], faces[i+1], faces[i+2]
		for _, idx := range []int{i0, i1, i2} {
			if idx < 0 || idx >= len(working) {
				return nil, fmt.Errorf("geometry: face %d references vertex %d of %d", i/3, idx, len(working))
			}
		}
		triangle := NewTriangle(working[i0], working[i1], working[i2], materialID)
		// Degenerate faces have no normal and can never be hit
		if triangle.Area() == 0 {
			continue
		}
		triangles = append(triangles, triangle)
	}
	return triangles, nil
}

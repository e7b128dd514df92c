// Package loaders reads external assets (meshes and textures) into scene
// primitives and materials.
package loaders

import (
	"fmt"

	"github.com/fogleman/fauxgl"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/geometry"
)

// LoadMesh loads an OBJ, STL, PLY or 3DS file as triangles. The transform,
// if non-nil, is applied to every vertex.
func LoadMesh(filename string, materialID int, transform *core.Mat4) ([]core.Primitive, error) {
	mesh, err := fauxgl.LoadMesh(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to load mesh %s: %w", filename, err)
	}
	return MeshToPrimitives(mesh, materialID, transform)
}

// MeshToPrimitives converts a fauxgl mesh into triangle primitives
func MeshToPrimitives(mesh *fauxgl.Mesh, materialID int, transform *core.Mat4) ([]core.Primitive, error) {
	vertices := make([]core.Vec3, 0, len(mesh.Triangles)*3)
	faces := make([]int, 0, len(mesh.Triangles)*3)
	for _, t := range mesh.Triangles {
		for _, v := range []fauxgl.Vertex{t.V1, t.V2, t.V3} {
			faces = append(faces, len(vertices))
			vertices = append(vertices, core.NewVec3(v.Position.X, v.Position.Y, v.Position.Z))
		}
	}
	return geometry.NewTriangleMesh(vertices, faces, materialID, transform)
}

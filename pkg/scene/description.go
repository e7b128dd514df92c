package scene

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/joshua-smart/FeO/pkg/core"
	"github.com/joshua-smart/FeO/pkg/geometry"
	"github.com/joshua-smart/FeO/pkg/loaders"
	"github.com/joshua-smart/FeO/pkg/material"
	"github.com/joshua-smart/FeO/pkg/renderer"
)

var ErrInvalidDescription = errors.New("scene: invalid description")

// Description is the JSON form of a scene
type Description struct {
	Name        string                        `json:"name"`
	Description string                        `json:"description,omitempty"`
	Camera      CameraDescription             `json:"camera"`
	Background  [3]float64                    `json:"background"`
	MaxDepth    int                           `json:"max_depth"`
	Textures    map[string]TextureDescription `json:"textures,omitempty"`
	Materials   []MaterialDescription         `json:"materials"`
	Primitives  []PrimitiveDescription        `json:"primitives"`
}

// CameraDescription places a perspective camera. Right and Forward need
// not be orthogonal; Forward is corrected against Right.
type CameraDescription struct {
	Origin     [3]float64 `json:"origin"`
	Right      [3]float64 `json:"right"`
	Forward    [3]float64 `json:"forward"`
	FOV        float64    `json:"fov"` // Horizontal, degrees
	Aperture   float64    `json:"aperture,omitempty"`
	FocalDepth float64    `json:"focal_depth"`
}

// TextureDescription is one of constant, checker, solid_checker or image
type TextureDescription struct {
	Type  string     `json:"type"`
	Color [3]float64 `json:"color,omitempty"`
	A     [3]float64 `json:"a,omitempty"`
	B     [3]float64 `json:"b,omitempty"`
	Scale float64    `json:"scale,omitempty"`
	File  string     `json:"file,omitempty"`
}

// MaterialDescription is one of lambertian or reflective. A lambertian
// with a texture ignores Albedo.
type MaterialDescription struct {
	Name       string     `json:"name"`
	Type       string     `json:"type"`
	Albedo     [3]float64 `json:"albedo"`
	Texture    string     `json:"texture,omitempty"`
	Emissivity float64    `json:"emissivity,omitempty"`
	Fuzz       float64    `json:"fuzz,omitempty"`
}

// PrimitiveDescription is one of sphere, plane, xy_rect, xz_rect, yz_rect,
// triangle or mesh. Only the fields of its type are read.
type PrimitiveDescription struct {
	Type     string `json:"type"`
	Material string `json:"material"`
	Light    bool   `json:"light,omitempty"`

	// sphere
	Center [3]float64 `json:"center,omitempty"`
	Radius float64    `json:"radius,omitempty"`

	// plane
	Point  [3]float64 `json:"point,omitempty"`
	Normal [3]float64 `json:"normal,omitempty"`

	// rects
	Min [2]float64 `json:"min,omitempty"`
	Max [2]float64 `json:"max,omitempty"`
	K   float64    `json:"k,omitempty"`

	// triangle
	Vertices [][3]float64 `json:"vertices,omitempty"`

	// mesh
	File      string     `json:"file,omitempty"`
	Translate [3]float64 `json:"translate,omitempty"`
	Scale     float64    `json:"scale,omitempty"`
}

// ReadDescription decodes a description, rejecting unknown fields
func ReadDescription(r io.Reader) (*Description, error) {
	var d Description
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDescription, err)
	}
	return &d, nil
}

// LoadFile reads and builds a JSON scene. Texture and mesh files are
// resolved relative to the scene file.
func LoadFile(path string, seed int64) (*Scene, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scene: %w", err)
	}
	defer f.Close()

	d, err := ReadDescription(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.Infof("loaded scene description %s", path)
	return d.Build(filepath.Dir(path), seed)
}

// Build turns the description into a scene. Relative file references are
// joined to baseDir.
func (d *Description) Build(baseDir string, seed int64) (*Scene, error) {
	if d.Camera.FOV <= 0 || d.Camera.FOV >= 180 {
		return nil, fmt.Errorf("%w: camera fov %v", ErrInvalidDescription, d.Camera.FOV)
	}

	b := builder{baseDir: baseDir, textures: map[string]core.Texture{}, materialIDs: map[string]int{}}

	for name, td := range d.Textures {
		tex, err := b.texture(td)
		if err != nil {
			return nil, fmt.Errorf("texture %q: %w", name, err)
		}
		b.textures[name] = tex
	}

	materials := make([]core.Material, 0, len(d.Materials))
	for i, md := range d.Materials {
		if _, dup := b.materialIDs[md.Name]; dup {
			return nil, fmt.Errorf("%w: duplicate material %q", ErrInvalidDescription, md.Name)
		}
		m, err := b.material(md)
		if err != nil {
			return nil, fmt.Errorf("material %q: %w", md.Name, err)
		}
		b.materialIDs[md.Name] = i
		materials = append(materials, m)
	}

	var primitives, lights []core.Primitive
	for i, pd := range d.Primitives {
		prims, err := b.primitives(pd)
		if err != nil {
			return nil, fmt.Errorf("primitive %d: %w", i, err)
		}
		primitives = append(primitives, prims...)
		if pd.Light {
			lights = append(lights, prims...)
		}
	}

	c := d.Camera
	camera := renderer.NewPerspectiveCamera(
		core.FrameTransform(vec(c.Origin), vec(c.Right), vec(c.Forward)),
		degrees(c.FOV), c.Aperture, c.FocalDepth,
	)

	return New(Options{
		Name:       d.Name,
		Primitives: primitives,
		Materials:  materials,
		Lights:     lights,
		Background: color(d.Background),
		MaxDepth:   d.MaxDepth,
		Camera:     camera,
		Seed:       seed,
	})
}

type builder struct {
	baseDir     string
	textures    map[string]core.Texture
	materialIDs map[string]int
}

func (b *builder) path(file string) string {
	if filepath.IsAbs(file) {
		return file
	}
	return filepath.Join(b.baseDir, file)
}

func (b *builder) texture(td TextureDescription) (core.Texture, error) {
	switch td.Type {
	case "constant":
		return material.NewConstant(color(td.Color)), nil
	case "checker":
		return material.NewChecker(color(td.A), color(td.B)), nil
	case "solid_checker":
		if td.Scale == 0 {
			return nil, fmt.Errorf("%w: solid_checker needs a scale", ErrInvalidDescription)
		}
		return material.NewSolidChecker(color(td.A), color(td.B), td.Scale), nil
	case "image":
		return loaders.LoadImageTexture(b.path(td.File))
	default:
		return nil, fmt.Errorf("%w: unknown texture type %q", ErrInvalidDescription, td.Type)
	}
}

func (b *builder) material(md MaterialDescription) (core.Material, error) {
	switch md.Type {
	case "lambertian":
		if md.Texture == "" {
			return material.NewDiffuseLight(color(md.Albedo), md.Emissivity), nil
		}
		tex, ok := b.textures[md.Texture]
		if !ok {
			return nil, fmt.Errorf("%w: unknown texture %q", ErrInvalidDescription, md.Texture)
		}
		l := material.NewTexturedLambertian(tex)
		l.Emissivity = md.Emissivity
		return l, nil
	case "reflective":
		return material.NewReflective(color(md.Albedo), md.Fuzz), nil
	default:
		return nil, fmt.Errorf("%w: unknown material type %q", ErrInvalidDescription, md.Type)
	}
}

func (b *builder) primitives(pd PrimitiveDescription) ([]core.Primitive, error) {
	id, ok := b.materialIDs[pd.Material]
	if !ok {
		return nil, fmt.Errorf("%w: unknown material %q", ErrInvalidDescription, pd.Material)
	}

	switch pd.Type {
	case "sphere":
		return []core.Primitive{geometry.NewSphere(vec(pd.Center), pd.Radius, id)}, nil
	case "plane":
		return []core.Primitive{geometry.NewPlane(vec(pd.Point), vec(pd.Normal), id)}, nil
	case "xy_rect":
		return []core.Primitive{geometry.NewXYRect(pd.Min[0], pd.Min[1], pd.Max[0], pd.Max[1], pd.K, id)}, nil
	case "xz_rect":
		return []core.Primitive{geometry.NewXZRect(pd.Min[0], pd.Min[1], pd.Max[0], pd.Max[1], pd.K, id)}, nil
	case "yz_rect":
		return []core.Primitive{geometry.NewYZRect(pd.Min[0], pd.Min[1], pd.Max[0], pd.Max[1], pd.K, id)}, nil
	case "triangle":
		if len(pd.Vertices) != 3 {
			return nil, fmt.Errorf("%w: triangle has %d vertices", ErrInvalidDescription, len(pd.Vertices))
		}
		return []core.Primitive{geometry.NewTriangle(vec(pd.Vertices[0]), vec(pd.Vertices[1]), vec(pd.Vertices[2]), id)}, nil
	case "mesh":
		scale := pd.Scale
		if scale == 0 {
			scale = 1
		}
		transform := core.Identity().
			Set(0, 0, scale).Set(1, 1, scale).Set(2, 2, scale).
			Set(0, 3, pd.Translate[0]).Set(1, 3, pd.Translate[1]).Set(2, 3, pd.Translate[2])
		return loaders.LoadMesh(b.path(pd.File), id, &transform)
	default:
		return nil, fmt.Errorf("%w: unknown primitive type %q", ErrInvalidDescription, pd.Type)
	}
}

func vec(v [3]float64) core.Vec3 {
	return core.NewVec3(v[0], v[1], v[2])
}

func color(v [3]float64) core.Color {
	return core.NewColor(v[0], v[1], v[2])
}

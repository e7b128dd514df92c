package material

import (
	"image"

	"github.com/joshua-smart/FeO/pkg/core"
)

// ImageTexture provides color from a 2D image
type ImageTexture struct {
	Width  int
	Height int
	Pixels []core.Color // Row-major: Pixels[y*Width + x]
}

// NewImageTexture creates a new image texture
func NewImageTexture(width, height int, pixels []core.Color) *ImageTexture {
	return &ImageTexture{
		Width:  width,
		Height: height,
		Pixels: pixels,
	}
}

// NewImageTextureFromImage converts a decoded image. Channels are linearised
// with the same square law Color.Pack inverts.
func NewImageTextureFromImage(img image.Image) *ImageTexture {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	pixels := make([]core.Color, width*height)

	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r, g, b, _ := img.At(x+bounds.Min.X, y+bounds.Min.Y).RGBA()
			// RGBA returns uint32 in [0, 65535]
			pixels[y*width+x] = core.NewColor(linear(r), linear(g), linear(b))
		}
	}

	return NewImageTexture(width, height, pixels)
}

func linear(c uint32) float64 {
	v := float64(c) / 65535.0
	return v * v
}

// Value samples the texture at given UV coordinates using nearest-neighbor filtering
func (t *ImageTexture) Value(u, v float64, point core.Vec3) core.Color {
	if t.Width == 0 || t.Height == 0 {
		return core.Black
	}

	// Wrap UV coordinates to [0, 1)
	u = u - float64(int(u))
	v = v - float64(int(v))
	if u < 0 {
		u += 1.0
	}
	if v < 0 {
		v += 1.0
	}

	// V=0 is bottom, V=1 is top (flip V for image coordinates where origin is top-left)
	x := int(u * float64(t.Width))
	y := int((1.0 - v) * float64(t.Height))

	// Clamp to image bounds
	if x >= t.Width {
		x = t.Width - 1
	}
	if y >= t.Height {
		y = t.Height - 1
	}
	if x < 0 {
		x = 0
	}
	if y < 0 {
		y = 0
	}

	return t.Pixels[y*t.Width+x]
}

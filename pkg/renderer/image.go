package renderer

import (
	"image"
	"image/color"

	"github.com/joshua-smart/FeO/pkg/core"
)

// Image is a width x height buffer of packed 0xRRGGBBAA pixels. It is not
// safe for concurrent mutation.
type Image struct {
	Width  int
	Height int
	Pixels []uint32 // Row-major: Pixels[y*Width + x]
}

// NewImage creates a transparent black image
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pixels: make([]uint32, width*height),
	}
}

// SetPixel packs and stores a color
func (img *Image) SetPixel(x, y int, c core.Color) {
	img.Pixels[y*img.Width+x] = c.Pack()
}

// Pixel returns the packed value at (x, y)
func (img *Image) Pixel(x, y int) uint32 {
	return img.Pixels[y*img.Width+x]
}

// GetPixel decodes the color at (x, y)
func (img *Image) GetPixel(x, y int) core.Color {
	return core.UnpackColor(img.Pixel(x, y))
}

// ToRGBA converts the image for encoding
func (img *Image) ToRGBA() *image.RGBA {
	rgba := image.NewRGBA(image.Rect(0, 0, img.Width, img.Height))
	for y := 0; y < img.Height; y++ {
		for x := 0; x < img.Width; x++ {
			p := img.Pixel(x, y)
			rgba.SetRGBA(x, y, color.RGBA{
				R: uint8(p >> 24),
				G: uint8(p >> 16),
				B: uint8(p >> 8),
				A: uint8(p),
			})
		}
	}
	return rgba
}

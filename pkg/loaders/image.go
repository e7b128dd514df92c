package loaders

import (
	"fmt"

	"github.com/disintegration/imaging"

	"github.com/joshua-smart/FeO/pkg/material"
)

// LoadImageTexture loads any format imaging can decode (PNG, JPEG, GIF,
// BMP, TIFF) as a texture. EXIF orientation is applied.
func LoadImageTexture(filename string) (*material.ImageTexture, error) {
	img, err := imaging.Open(filename, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to open image file: %w", err)
	}
	return material.NewImageTextureFromImage(img), nil
}

// Package output writes rendered frames to disk or object storage.
package output

import (
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	"github.com/nfnt/resize"

	"github.com/joshua-smart/FeO/pkg/log"
)

var logger = log.New("output")

var contentTypes = map[imaging.Format]string{
	imaging.JPEG: "image/jpeg",
	imaging.PNG:  "image/png",
	imaging.GIF:  "image/gif",
	imaging.TIFF: "image/tiff",
	imaging.BMP:  "image/bmp",
}

// Format returns the image format implied by the file extension
func Format(filename string) (imaging.Format, error) {
	format, err := imaging.FormatFromFilename(filename)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", filename, err)
	}
	return format, nil
}

// ContentType returns the MIME type for an image format
func ContentType(format imaging.Format) string {
	if ct, ok := contentTypes[format]; ok {
		return ct
	}
	return "application/octet-stream"
}

// Save writes img to filename, choosing the encoder from the extension
func Save(img image.Image, filename string) error {
	if _, err := Format(filename); err != nil {
		return err
	}
	if err := imaging.Save(img, filename); err != nil {
		return fmt.Errorf("failed to save %s: %w", filename, err)
	}
	logger.Infof("saved %dx%d image to %s", img.Bounds().Dx(), img.Bounds().Dy(), filename)
	return nil
}

// Encode writes img to w in the given format
func Encode(w io.Writer, img image.Image, format imaging.Format) error {
	return imaging.Encode(w, img, format)
}

// Thumbnail scales img down to fit within size x size, keeping the aspect
// ratio. Images already small enough are returned unchanged.
func Thumbnail(img image.Image, size uint) image.Image {
	return resize.Thumbnail(size, size, img, resize.Lanczos3)
}

// ThumbnailPath derives the thumbnail file name: out.png -> out_thumb.png
func ThumbnailPath(filename string) string {
	ext := filepath.Ext(filename)
	return strings.TrimSuffix(filename, ext) + "_thumb" + ext
}

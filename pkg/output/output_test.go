package output

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"io"
	"path/filepath"
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/disintegration/imaging"
)

// mockS3 records PutObject calls
type mockS3 struct {
	s3iface.S3API
	inputs []*s3.PutObjectInput
	bodies [][]byte
	err    error
}

func (m *mockS3) PutObjectWithContext(ctx aws.Context, input *s3.PutObjectInput, opts ...request.Option) (*s3.PutObjectOutput, error) {
	if _, ok := ctx.Deadline(); !ok {
		return nil, errors.New("upload without a deadline")
	}
	body, err := io.ReadAll(input.Body)
	if err != nil {
		return nil, err
	}
	m.inputs = append(m.inputs, input)
	m.bodies = append(m.bodies, body)
	return &s3.PutObjectOutput{}, m.err
}

func testImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{uint8(x * 10), uint8(y * 10), 128, 255})
		}
	}
	return img
}

func TestFormat(t *testing.T) {
	tests := []struct {
		filename    string
		want        imaging.Format
		contentType string
		wantErr     bool
	}{
		{"out.png", imaging.PNG, "image/png", false},
		{"out.JPG", imaging.JPEG, "image/jpeg", false},
		{"frames/out.jpeg", imaging.JPEG, "image/jpeg", false},
		{"out.bmp", imaging.BMP, "image/bmp", false},
		{"out.tif", imaging.TIFF, "image/tiff", false},
		{"out.gif", imaging.GIF, "image/gif", false},
		{"out.webp", 0, "", true},
		{"out", 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			got, err := Format(tt.filename)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Format(%q) error = %v, wantErr %v", tt.filename, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got != tt.want {
				t.Errorf("Format(%q) = %v, want %v", tt.filename, got, tt.want)
			}
			if ct := ContentType(got); ct != tt.contentType {
				t.Errorf("ContentType(%v) = %q, want %q", got, ct, tt.contentType)
			}
		})
	}
}

func TestSave(t *testing.T) {
	dir := t.TempDir()
	img := testImage(8, 4)

	path := filepath.Join(dir, "frame.png")
	if err := Save(img, path); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	loaded, err := imaging.Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if loaded.Bounds().Dx() != 8 || loaded.Bounds().Dy() != 4 {
		t.Errorf("saved size = %v, want 8x4", loaded.Bounds())
	}
	r, g, b, a := loaded.At(3, 2).RGBA()
	if r>>8 != 30 || g>>8 != 20 || b>>8 != 128 || a>>8 != 255 {
		t.Errorf("pixel (3,2) = %d,%d,%d,%d", r>>8, g>>8, b>>8, a>>8)
	}

	if err := Save(img, filepath.Join(dir, "frame.xyz")); err == nil {
		t.Error("Save() with an unknown extension returned no error")
	}
}

func TestThumbnail(t *testing.T) {
	thumb := Thumbnail(testImage(40, 20), 10)
	if thumb.Bounds().Dx() != 10 || thumb.Bounds().Dy() != 5 {
		t.Errorf("Thumbnail() size = %v, want 10x5", thumb.Bounds())
	}

	small := Thumbnail(testImage(4, 2), 10)
	if small.Bounds().Dx() != 4 || small.Bounds().Dy() != 2 {
		t.Errorf("Thumbnail() of a small image = %v, want 4x2", small.Bounds())
	}

	if got := ThumbnailPath("renders/out.png"); got != "renders/out_thumb.png" {
		t.Errorf("ThumbnailPath() = %q", got)
	}
}

func TestS3Uploader_UploadImage(t *testing.T) {
	mock := &mockS3{}
	u := &S3Uploader{client: mock, bucket: "frames"}

	if err := u.UploadImage(context.Background(), testImage(4, 4), "renders/box.png"); err != nil {
		t.Fatalf("UploadImage() error = %v", err)
	}

	if len(mock.inputs) != 1 {
		t.Fatalf("PutObject called %d times, want 1", len(mock.inputs))
	}
	in := mock.inputs[0]
	if aws.StringValue(in.Bucket) != "frames" || aws.StringValue(in.Key) != "renders/box.png" {
		t.Errorf("uploaded to %s/%s", aws.StringValue(in.Bucket), aws.StringValue(in.Key))
	}
	if aws.StringValue(in.ContentType) != "image/png" {
		t.Errorf("ContentType = %q", aws.StringValue(in.ContentType))
	}
	if aws.Int64Value(in.ContentLength) != int64(len(mock.bodies[0])) {
		t.Errorf("ContentLength = %d, body is %d bytes", aws.Int64Value(in.ContentLength), len(mock.bodies[0]))
	}

	decoded, err := imaging.Decode(bytes.NewReader(mock.bodies[0]))
	if err != nil {
		t.Fatalf("uploaded body is not an image: %v", err)
	}
	if decoded.Bounds().Dx() != 4 {
		t.Errorf("uploaded width = %d, want 4", decoded.Bounds().Dx())
	}
}

func TestS3Uploader_Errors(t *testing.T) {
	failing := &S3Uploader{client: &mockS3{err: errors.New("access denied")}, bucket: "frames"}
	if err := failing.Upload(context.Background(), []byte("x"), "k.png", "image/png"); err == nil {
		t.Error("Upload() returned no error for a failed PutObject")
	}

	mock := &mockS3{}
	u := &S3Uploader{client: mock, bucket: "frames"}
	if err := u.UploadImage(context.Background(), testImage(2, 2), "frame.raw"); err == nil {
		t.Error("UploadImage() with an unknown extension returned no error")
	}
	if len(mock.inputs) != 0 {
		t.Error("UploadImage() uploaded despite the format error")
	}

	if _, err := NewS3Uploader(S3Config{Region: "us-east-1"}); err == nil {
		t.Error("NewS3Uploader() without a bucket returned no error")
	}
}

package output

import (
	"bytes"
	"context"
	"fmt"
	"image"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
)

const UploadTimeout = 10 * time.Second

// S3Config locates the bucket rendered frames are uploaded to. Empty keys
// fall back to the default AWS credential chain.
type S3Config struct {
	Bucket    string
	Region    string
	Endpoint  string // Optional, for S3 compatible stores
	AccessKey string
	SecretKey string
}

// S3Uploader puts rendered images into a bucket
type S3Uploader struct {
	client s3iface.S3API
	bucket string
}

// NewS3Uploader creates an uploader with its own session
func NewS3Uploader(cfg S3Config) (*S3Uploader, error) {
	if cfg.Bucket == "" {
		return nil, fmt.Errorf("s3: bucket is required")
	}

	s3Config := &aws.Config{
		Region: aws.String(cfg.Region),
	}
	if cfg.Endpoint != "" {
		s3Config.Endpoint = aws.String(cfg.Endpoint)
		s3Config.S3ForcePathStyle = aws.Bool(true)
	}
	if cfg.AccessKey != "" {
		s3Config.Credentials = credentials.NewStaticCredentials(cfg.AccessKey, cfg.SecretKey, "")
	}

	sess, err := session.NewSession(s3Config)
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 session: %w", err)
	}
	return &S3Uploader{client: s3.New(sess), bucket: cfg.Bucket}, nil
}

// Upload puts data under key
func (u *S3Uploader) Upload(ctx context.Context, data []byte, key, contentType string) error {
	ctx, cancel := context.WithTimeout(ctx, UploadTimeout)
	defer cancel()

	size := int64(len(data))
	_, err := u.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:        aws.String(u.bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(data),
		ContentLength: aws.Int64(size),
		ContentType:   aws.String(contentType),
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s: %w", key, err)
	}

	logger.Infof("uploaded %s to s3://%s (%d bytes)", key, u.bucket, size)
	return nil
}

// UploadImage encodes img in the format implied by key and uploads it
func (u *S3Uploader) UploadImage(ctx context.Context, img image.Image, key string) error {
	format, err := Format(key)
	if err != nil {
		return err
	}

	buf := new(bytes.Buffer)
	if err := Encode(buf, img, format); err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	return u.Upload(ctx, buf.Bytes(), key, ContentType(format))
}

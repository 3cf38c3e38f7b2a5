package services

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"

	"travel-api/internal/config"
	apperrors "travel-api/internal/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/google/uuid"
)

var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/webp": ".webp",
	"image/gif":  ".gif",
}

type StorageService interface {
	// UploadImage stores body under a generated key and returns its public URL.
	UploadImage(ctx context.Context, filename, contentType string, body io.ReadSeeker) (string, error)
}

type S3Storage struct {
	client s3iface.S3API
	bucket string
	region string
}

func NewS3Storage(cfg config.StorageConfig) (*S3Storage, error) {
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(cfg.Region),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}
	return NewS3StorageWithClient(s3.New(sess), cfg.Bucket, cfg.Region), nil
}

func NewS3StorageWithClient(client s3iface.S3API, bucket, region string) *S3Storage {
	return &S3Storage{client: client, bucket: bucket, region: region}
}

func (s *S3Storage) UploadImage(ctx context.Context, filename, contentType string, body io.ReadSeeker) (string, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return "", apperrors.Invalid(fmt.Sprintf("unsupported image type %q", contentType))
	}
	if contentType == "image/jpeg" && strings.EqualFold(path.Ext(filename), ".jpeg") {
		ext = ".jpeg"
	}

	key := path.Join("images", uuid.NewString()+ext)
	_, err := s.client.PutObjectWithContext(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        body,
		ContentType: aws.String(contentType),
	})
	if err != nil {
		return "", apperrors.Wrap(err, "failed to upload image")
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s", s.bucket, s.region, key), nil
}

// DisabledStorage rejects uploads when no bucket is configured.
type DisabledStorage struct{}

func (DisabledStorage) UploadImage(context.Context, string, string, io.ReadSeeker) (string, error) {
	return "", apperrors.Unavailable("image uploads are not configured")
}

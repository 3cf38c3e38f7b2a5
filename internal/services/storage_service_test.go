package services

import (
	"bytes"
	"context"
	"strings"
	"testing"

	apperrors "travel-api/internal/pkg/errors"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/request"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/aws/aws-sdk-go/service/s3/s3iface"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	s3iface.S3API
	input *s3.PutObjectInput
}

func (f *fakeS3) PutObjectWithContext(_ aws.Context, input *s3.PutObjectInput, _ ...request.Option) (*s3.PutObjectOutput, error) {
	f.input = input
	return &s3.PutObjectOutput{}, nil
}

func TestS3Storage_UploadImage(t *testing.T) {
	client := &fakeS3{}
	storage := NewS3StorageWithClient(client, "travel-media", "eu-north-1")

	url, err := storage.UploadImage(context.Background(), "beach.PNG", "image/png", bytes.NewReader([]byte("png")))
	require.NoError(t, err)

	require.NotNil(t, client.input)
	key := aws.StringValue(client.input.Key)
	assert.True(t, strings.HasPrefix(key, "images/"))
	assert.True(t, strings.HasSuffix(key, ".png"))
	assert.Equal(t, "travel-media", aws.StringValue(client.input.Bucket))
	assert.Equal(t, "https://travel-media.s3.eu-north-1.amazonaws.com/"+key, url)
}

func TestS3Storage_RejectsNonImages(t *testing.T) {
	client := &fakeS3{}
	storage := NewS3StorageWithClient(client, "travel-media", "eu-north-1")

	_, err := storage.UploadImage(context.Background(), "notes.txt", "text/plain", bytes.NewReader(nil))
	assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	assert.Nil(t, client.input)
}

func TestDisabledStorage(t *testing.T) {
	_, err := DisabledStorage{}.UploadImage(context.Background(), "a.png", "image/png", bytes.NewReader(nil))
	assert.ErrorIs(t, err, apperrors.ErrServiceUnavailable)
}

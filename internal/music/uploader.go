package music

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

const defaultContentType = "application/octet-stream"

// Uploader stores a binary object and returns a public URL for it.
type Uploader interface {
	Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error)
}

type MinioUploader struct {
	client *minio.Client
	bucket string
}

func NewMinioUploader(endpoint, accessKey, secretKey, bucket string, useSSL bool) (*MinioUploader, error) {
	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("create minio client: %w", err)
	}
	return &MinioUploader{client: client, bucket: bucket}, nil
}

func (u *MinioUploader) Upload(ctx context.Context, objectName string, reader io.Reader, size int64, contentType string) (string, error) {
	if contentType == "" {
		contentType = defaultContentType
	}
	_, err := u.client.PutObject(ctx, u.bucket, objectName, reader, size,
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return "", fmt.Errorf("put object %s: %w", objectName, err)
	}
	return fmt.Sprintf("%s/%s/%s", u.client.EndpointURL(), u.bucket, objectName), nil
}

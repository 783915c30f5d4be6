// Package storage gives the chunker's preview_url collaborator a real
// origin: documents referenced by image-mode requests are stored here, and
// the URL this package hands back is the one attached to chunked content.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ObjectStorage is the object-store surface Service needs to turn an
// uploaded document into a preview_url-bearing chunking request and back
// it out again. It is trimmed to exactly the three operations Service
// calls — no presigned-URL or download surface survives here, since
// nothing in this build streams a document back out of the bucket.
type ObjectStorage interface {
	UploadFile(ctx context.Context, objectKey string, reader io.Reader, objectSize int64, contentType string) error
	DeleteFile(ctx context.Context, objectKey string) error
	GetFileInfo(ctx context.Context, objectKey string) (minio.ObjectInfo, error)
}

// MinIOClient is the ObjectStorage implementation backing the preview_url
// bucket.
type MinIOClient struct {
	client     *minio.Client
	bucketName string
}

// Compile-time check to ensure MinIOClient implements ObjectStorage interface
var _ ObjectStorage = (*MinIOClient)(nil)

// MinIOConfig holds configuration parameters for MinIO client initialization.
type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	UseSSL          bool
}

// NewMinIOClient creates the bucket's client, creating the bucket itself if
// it doesn't already exist.
func NewMinIOClient(config MinIOConfig) (*MinIOClient, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKeyID, config.SecretAccessKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.BucketName)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}

	if !exists {
		err = client.MakeBucket(ctx, config.BucketName, minio.MakeBucketOptions{})
		if err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return &MinIOClient{
		client:     client,
		bucketName: config.BucketName,
	}, nil
}

// UploadFile stores a document under objectKey ahead of an image-mode
// chunking request that will reference it by preview_url.
func (mc *MinIOClient) UploadFile(ctx context.Context, objectKey string, reader io.Reader, objectSize int64, contentType string) error {
	_, err := mc.client.PutObject(ctx, mc.bucketName, objectKey, reader, objectSize, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return fmt.Errorf("failed to upload file: %w", err)
	}

	return nil
}

// DeleteFile removes a previously uploaded document, invalidating any
// preview_url built from its object key.
func (mc *MinIOClient) DeleteFile(ctx context.Context, objectKey string) error {
	err := mc.client.RemoveObject(ctx, mc.bucketName, objectKey, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}

	return nil
}

// GetFileInfo retrieves metadata for a stored document, used both to
// confirm an upload landed and to distinguish a missing object from a
// storage failure before a delete.
func (mc *MinIOClient) GetFileInfo(ctx context.Context, objectKey string) (minio.ObjectInfo, error) {
	objInfo, err := mc.client.StatObject(ctx, mc.bucketName, objectKey, minio.StatObjectOptions{})
	if err != nil {
		return minio.ObjectInfo{}, fmt.Errorf("failed to get file info: %w", err)
	}

	return objInfo, nil
}

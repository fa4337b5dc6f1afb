package storage

import (
	"context"
	"io"
	"log"
	"net/url"
	"time"

	"kemandirian-service/internal/app/contracts"
	"kemandirian-service/internal/pkg/exceptions"

	"github.com/minio/minio-go/v7"
)

type minioStorage struct {
	client     *minio.Client
	bucketName string
}

// NewMinioStorage ensures the export bucket exists and returns the sink.
func NewMinioStorage(client *minio.Client, bucketName string) contracts.ObjectStorage {
	exists, err := client.BucketExists(context.Background(), bucketName)
	if err != nil {
		log.Fatalf("Failed to check minio bucket %s: %s", bucketName, err.Error())
	}
	if !exists {
		if err := client.MakeBucket(context.Background(), bucketName, minio.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create minio bucket %s: %s", bucketName, err.Error())
		}
	}
	return &minioStorage{client: client, bucketName: bucketName}
}

func (s *minioStorage) PutObject(ctx context.Context, objectName, contentType string, payload io.Reader, size int64) error {
	_, err := s.client.PutObject(ctx, s.bucketName, objectName, payload, size, minio.PutObjectOptions{
		ContentType: contentType,
	})
	if err != nil {
		return exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return nil
}

func (s *minioStorage) PresignedGetURL(ctx context.Context, objectName string, expiry time.Duration) (string, error) {
	presignedURL, err := s.client.PresignedGetObject(ctx, s.bucketName, objectName, expiry, url.Values{})
	if err != nil {
		return "", exceptions.ErrMinioCreateObject(err, s.bucketName)
	}
	return presignedURL.String(), nil
}

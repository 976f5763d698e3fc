package storage

import (
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/google/uuid"
	minioSDK "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/agily-hq/agily/internal/config"
)

var Client *minioSDK.Client
var BucketName string

func InitMinio() {
	endpoint := config.MinioEndpoint
	accessKey := config.MinioAccessKey
	secretKey := config.MinioSecretKey
	useSSL := config.MinioUseSSL
	BucketName = config.MinioBucket

	minioClient, err := minioSDK.New(endpoint, &minioSDK.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatalf("Failed to connect to MinIO: %v", err)
	}

	ctx := context.Background()
	exists, err := minioClient.BucketExists(ctx, BucketName)
	if err != nil {
		log.Fatalf("Failed to check bucket existence: %v", err)
	}
	if !exists {
		if err := minioClient.MakeBucket(ctx, BucketName, minioSDK.MakeBucketOptions{}); err != nil {
			log.Fatalf("Failed to create bucket: %v", err)
		}
		log.Printf("Bucket created: %s", BucketName)
	}

	Client = minioClient
}

// ObjectKey builds a date-bucketed key so listings stay navigable as
// attachments accumulate.
func ObjectKey(prefix, fileName string) string {
	now := time.Now().UTC()
	return fmt.Sprintf("%s/%04d/%02d/%02d/%s_%s",
		prefix, now.Year(), now.Month(), now.Day(), uuid.NewString(), fileName)
}

// Upload streams an object into the configured bucket.
var Upload = func(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	_, err := Client.PutObject(ctx, BucketName, key, r, size, minioSDK.PutObjectOptions{
		ContentType: contentType,
	})
	return err
}

// Download opens an object for reading. The caller closes the returned reader.
var Download = func(ctx context.Context, key string) (io.ReadCloser, error) {
	return Client.GetObject(ctx, BucketName, key, minioSDK.GetObjectOptions{})
}

// Delete removes an object. Missing objects are not an error.
var Delete = func(ctx context.Context, key string) error {
	return Client.RemoveObject(ctx, BucketName, key, minioSDK.RemoveObjectOptions{})
}

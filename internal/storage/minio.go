package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"time"

	"interiorstudio/internal/config"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ImageStore uploads binary blobs and hands back public URLs. Backed by
// MinIO (or any S3-compatible store) in production.
type ImageStore interface {
	UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, error)
	DeleteImage(ctx context.Context, objectName string) error
}

type MinIOStore struct {
	client    *minio.Client
	bucket    string
	publicURL string
}

func NewMinIOStore(cfg config.MinIO) (*MinIOStore, error) {
	client, err := minio.New(cfg.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("minio client: %w", err)
	}

	return &MinIOStore{
		client:    client,
		bucket:    cfg.Bucket,
		publicURL: strings.TrimSuffix(cfg.PublicURL, "/"),
	}, nil
}

// UploadImage stores the blob under <folder>/<unix-ms>-<uuid><ext> and
// returns its public URL. Names never collide, so overwrites cannot happen.
func (s *MinIOStore) UploadImage(ctx context.Context, folder, fileName, contentType string, file io.Reader, size int64) (string, error) {
	ext := strings.ToLower(filepath.Ext(fileName))
	if ext == "" {
		ext = ".jpg"
	}
	if folder == "" {
		folder = "portfolio"
	}

	now := time.Now()
	objectName := fmt.Sprintf("%s/%d-%s%s", folder, now.UnixMilli(), uuid.NewString(), ext)

	_, err := s.client.PutObject(ctx, s.bucket, objectName, file, size,
		minio.PutObjectOptions{
			ContentType: contentType,
			UserMetadata: map[string]string{
				"original-filename": fileName,
				"uploaded-at":       now.Format(time.RFC3339),
			},
		})
	if err != nil {
		return "", fmt.Errorf("upload to object store: %w", err)
	}

	return fmt.Sprintf("%s/%s/%s", s.publicURL, s.bucket, objectName), nil
}

func (s *MinIOStore) DeleteImage(ctx context.Context, objectName string) error {
	err := s.client.RemoveObject(ctx, s.bucket, objectName, minio.RemoveObjectOptions{})
	if err != nil {
		return fmt.Errorf("remove from object store: %w", err)
	}
	return nil
}

package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"strings"

	"campusconnect-api/config"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	log "github.com/sirupsen/logrus"
)

// MinIOService serves data documents stored as objects under a prefix
// of one bucket, e.g. "site/data/events.json".
type MinIOService struct {
	client *minio.Client
	bucket string
	prefix string
}

func NewMinIOService(cfg *config.Config) (*MinIOService, error) {
	client, err := minio.New(cfg.MinIOEndpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.MinIOAccessKey, cfg.MinIOSecretKey, ""),
		Secure: cfg.MinIOUseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create minio client: %w", err)
	}

	return &MinIOService{
		client: client,
		bucket: cfg.MinIOBucket,
		prefix: cfg.DataPrefix,
	}, nil
}

func (s *MinIOService) objectPath(path string) string {
	return s.prefix + strings.TrimPrefix(path, "./")
}

// Fetch downloads the document stored for path.
func (s *MinIOService) Fetch(ctx context.Context, path string) ([]byte, error) {
	object, err := s.client.GetObject(ctx, s.bucket, s.objectPath(path), minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("failed to get object: %w", err)
	}
	defer object.Close()

	data, err := io.ReadAll(object)
	if err != nil {
		return nil, fmt.Errorf("failed to read object: %w", err)
	}

	return data, nil
}

// Publish replaces the document stored for path.
func (s *MinIOService) Publish(ctx context.Context, path string, data []byte) error {
	log.WithField("object", s.objectPath(path)).Info("publishing data document")
	_, err := s.client.PutObject(ctx, s.bucket, s.objectPath(path), bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to upload object: %w", err)
	}
	return nil
}

package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	apperrors "vidglobe/internal/app/errors"
)

// MinioConfig configures the MinIO-backed object store.
type MinioConfig struct {
	Endpoint  string `yaml:"endpoint"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	Bucket    string `yaml:"bucket"`
	UseSSL    bool   `yaml:"use_ssl"`
}

// MinioObjectStore implements ObjectStore using MinIO.
type MinioObjectStore struct {
	client   *minio.Client
	bucket   string
	endpoint string
	useSSL   bool
	httpc    *http.Client
}

// NewMinioObjectStore creates the store and ensures the bucket exists.
func NewMinioObjectStore(config MinioConfig) (*MinioObjectStore, error) {
	client, err := minio.New(config.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(config.AccessKey, config.SecretKey, ""),
		Secure: config.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create MinIO client: %w", err)
	}

	store := &MinioObjectStore{
		client:   client,
		bucket:   config.Bucket,
		endpoint: config.Endpoint,
		useSSL:   config.UseSSL,
		httpc:    &http.Client{Timeout: 5 * time.Minute},
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, config.Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, config.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("failed to create bucket: %w", err)
		}
	}

	return store, nil
}

// Upload persists data under key and returns its public URL.
func (s *MinioObjectStore) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: contentType,
		UserMetadata: map[string]string{
			"uploaded-at": time.Now().Format(time.RFC3339),
		},
	})
	if err != nil {
		return "", apperrors.Persistence(err, "object upload")
	}

	return s.PublicURL(key), nil
}

// Fetch downloads the object behind an arbitrary URL.
func (s *MinioObjectStore) Fetch(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, apperrors.Fetch(err, url)
	}

	resp, err := s.httpc.Do(req)
	if err != nil {
		return nil, apperrors.Fetch(err, url)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, apperrors.Fetch(fmt.Errorf("unexpected status %d", resp.StatusCode), url)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.Fetch(err, url)
	}
	return data, nil
}

// PublicURL returns the durable URL for a stored key.
func (s *MinioObjectStore) PublicURL(key string) string {
	protocol := "http"
	if s.useSSL {
		protocol = "https"
	}
	return fmt.Sprintf("%s://%s/%s/%s", protocol, s.endpoint, s.bucket, key)
}

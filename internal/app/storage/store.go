package storage

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// ObjectStore stores and retrieves binary media outside the relational
// store. Upload must return a URL that is immediately and durably
// readable by later pipeline stages and by the end user's browser.
// Failures propagate to the caller; no retries happen at this layer.
type ObjectStore interface {
	// Upload persists data under key and returns its public URL.
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)

	// Fetch downloads the object behind an arbitrary URL.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// PublicURL returns the durable URL for a stored key.
	PublicURL(key string) string
}

// GenerateKey builds a collision-free object key under prefix, keeping
// the original file extension. Unique random names make concurrent
// uploads idempotent-enough without overwrite checks.
func GenerateKey(prefix, fileName string) string {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	ext := filepath.Ext(fileName)
	return fmt.Sprintf("%s/%s-%s%s", prefix, uuid.New().String(), timestamp, ext)
}

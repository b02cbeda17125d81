// Package storage persists uploaded file content under sanitized names.
package storage

import (
	"context"
	"fmt"
	"io"

	"github.com/bangre/mediatheque/internal/config"
)

// Storage persists uploaded file content. Names must already be sanitized;
// callers never pass raw user-supplied filenames.
type Storage interface {
	// Save writes content under name, silently replacing any existing file
	// with the same name (last write wins).
	Save(ctx context.Context, name string, content io.Reader) error

	// Open returns the stored content for reading. The error wraps
	// fs.ErrNotExist when no such file exists. When the returned reader also
	// implements io.Seeker, callers may serve range requests from it.
	Open(ctx context.Context, name string) (io.ReadCloser, error)

	// Remove deletes the stored content. A missing file is not an error.
	Remove(ctx context.Context, name string) error
}

// New creates the Storage implementation selected by the configuration
func New(ctx context.Context, cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case config.StorageBackendLocal:
		return NewLocalStorage(cfg.BasePath)
	case config.StorageBackendS3:
		return NewS3Storage(ctx, cfg.S3Bucket, cfg.S3KeyPrefix)
	default:
		return nil, fmt.Errorf("unknown storage backend: %s", cfg.Backend)
	}
}

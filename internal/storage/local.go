package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// localStorage implements Storage on the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a localStorage rooted at basePath, creating the
// directory if it does not exist yet
func NewLocalStorage(basePath string) (*localStorage, error) {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &localStorage{basePath: basePath}, nil
}

// Save writes content under name. os.Create truncates, so a name collision
// silently overwrites the previous file.
func (s *localStorage) Save(ctx context.Context, name string, content io.Reader) error {
	f, err := os.Create(filepath.Join(s.basePath, name))
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(f, content); err != nil {
		f.Close()
		return fmt.Errorf("failed to write file: %w", err)
	}

	return f.Close()
}

// Open opens the stored file. The returned *os.File seeks, so handlers can
// serve range requests from it.
func (s *localStorage) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	return os.Open(filepath.Join(s.basePath, name))
}

// Remove deletes the stored file, treating an already-missing file as done
func (s *localStorage) Remove(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(s.basePath, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

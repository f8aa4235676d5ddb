package images

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
)

// Storage manages the uploads directory. Thread-safe for concurrent
// operations.
type Storage struct {
	basePath string
	mu       sync.RWMutex
}

// NewStorage creates a Storage rooted at basePath, creating the directory
// if needed.
func NewStorage(basePath string) (*Storage, error) {
	if basePath == "" {
		return nil, fmt.Errorf("base path cannot be empty")
	}

	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	return &Storage{basePath: basePath}, nil
}

// BasePath returns the uploads directory.
func (s *Storage) BasePath() string {
	return s.basePath
}

// Save streams an upload to disk under the given filename. It never
// overwrites: generated names are unique, so a collision is a bug worth
// surfacing rather than silently clobbering a photo.
func (s *Storage) Save(filename string, r io.Reader) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("failed to write photo file: %w", err)
	}

	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("failed to close photo file: %w", err)
	}

	return nil
}

// Exists reports whether a stored photo is on disk.
func (s *Storage) Exists(filename string) bool {
	path, err := s.Path(filename)
	if err != nil {
		return false
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	_, statErr := os.Stat(path)
	return statErr == nil
}

// Delete removes a stored photo. A missing file is not an error.
func (s *Storage) Delete(filename string) error {
	path, err := s.Path(filename)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete photo file: %w", err)
	}

	return nil
}

// Path resolves a stored filename inside the uploads directory, rejecting
// anything that would escape it.
func (s *Storage) Path(filename string) (string, error) {
	if filename == "" {
		return "", fmt.Errorf("filename cannot be empty")
	}
	if filename != filepath.Base(filename) {
		return "", fmt.Errorf("invalid filename %q", filename)
	}

	return filepath.Join(s.basePath, filename), nil
}

// Package store is the file-backed repository for the hub's two persisted
// documents: the productivity state (productivity.json) and the blog post
// list (blog.json).
//
// Every mutation is a read-modify-write of the whole document, executed
// under a per-document mutex so concurrent writers cannot lose each
// other's changes. Writes go to a temp file that is renamed over the
// target, so a crash mid-write leaves the previous document intact.
package store

import (
	"log/slog"
	"os"
	"path/filepath"
	"sync"
)

const (
	productivityFile = "productivity.json"
	blogFile         = "blog.json"
)

// Store owns the on-disk documents. Nothing else in the process touches
// the files directly.
type Store struct {
	dataDir string
	logger  *slog.Logger

	productivityMu sync.Mutex
	blogMu         sync.Mutex
}

// New creates a Store rooted at dataDir, creating the directory if needed.
func New(dataDir string, logger *slog.Logger) (*Store, error) {
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, err
	}

	return &Store{
		dataDir: dataDir,
		logger:  logger,
	}, nil
}

// DataDir returns the directory holding the documents.
func (s *Store) DataDir() string {
	return s.dataDir
}

// BlogPath returns the full path of the blog document.
func (s *Store) BlogPath() string {
	return filepath.Join(s.dataDir, blogFile)
}

func (s *Store) productivityPath() string {
	return filepath.Join(s.dataDir, productivityFile)
}

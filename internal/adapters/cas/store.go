// Package cas implements the local catalog cache and the bundle store.
package cas

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"iter"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CatalogCacheStore = (*Store)(nil)

// FileWalker enumerates the files below a root directory.
type FileWalker interface {
	WalkFiles(root string, ignores []string) iter.Seq[string]
}

// Store implements ports.CatalogCacheStore with a single JSON file under the cache root.
type Store struct {
	root   string
	walker FileWalker
	logger ports.Logger
	mu     sync.Mutex
}

// NewStore creates a catalog cache store rooted at root.
func NewStore(root string, walker FileWalker, log ports.Logger) *Store {
	return &Store{
		root:   filepath.Clean(root),
		walker: walker,
		logger: log,
	}
}

// Save overwrites the persisted catalog id list.
func (s *Store) Save(ids []domain.CatalogID) error {
	if ids == nil {
		ids = []domain.CatalogID{}
	}

	data, err := json.MarshalIndent(ids, "", "  ")
	if err != nil {
		return zerr.Wrap(err, domain.ErrCacheWriteFailed.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := WriteFileAtomic(s.listPath(), data); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", s.listPath())
	}

	return nil
}

// Load returns the persisted catalog id list.
// A missing file yields nil, nil. Corrupt content is logged and also yields nil, nil.
func (s *Store) Load() ([]domain.CatalogID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	path := s.listPath()
	data, err := os.ReadFile(path) //nolint:gosec // Path is constructed from the configured cache root
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", path)
	}

	var ids []domain.CatalogID
	if err := json.Unmarshal(data, &ids); err != nil {
		s.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheParseFailed.Error()), "path", path))
		return nil, nil
	}

	return ids, nil
}

// Purge deletes every catalog hash, catalog document and the id list below
// the cache root. Files are enumerated before anything is deleted and every
// deleted path is logged.
func (s *Store) Purge() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var targets []string
	for path := range s.walker.WalkFiles(s.root, nil) {
		if domain.IsCatalogArtifact(filepath.Base(path)) {
			targets = append(targets, path)
		}
	}

	deleted := make([]string, 0, len(targets))
	var errs []error
	for _, path := range targets {
		if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = append(errs, zerr.With(err, "path", path))
			continue
		}
		deleted = append(deleted, path)
		s.logger.Info(fmt.Sprintf("deleted %s", path))
	}

	if len(errs) > 0 {
		return deleted, zerr.Wrap(errors.Join(errs...), domain.ErrCachePurgeFailed.Error())
	}

	return deleted, nil
}

// Root returns the cache root the store operates on.
func (s *Store) Root() string {
	return s.root
}

func (s *Store) listPath() string {
	return filepath.Join(s.root, domain.CatalogListFileName)
}

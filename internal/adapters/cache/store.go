// Package cache implements the persisted build cache as a flat JSON file.
package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheStore = (*Store)(nil)

// document is the on-disk shape of the cache.
type document struct {
	Config *domain.BuildConfig          `json:"_config,omitempty"`
	Files  map[string]domain.CacheEntry `json:"files"`
}

// Store implements ports.CacheStore using a single JSON document. All
// mutations stay in memory until Save, the run's only durability point.
type Store struct {
	path string

	mu  sync.RWMutex
	doc document
}

var _ ports.CacheOpener = (*Opener)(nil)

// Opener opens cache stores.
type Opener struct {
	logger ports.Logger
}

// NewOpener creates a new cache store opener.
func NewOpener(logger ports.Logger) *Opener {
	return &Opener{logger: logger}
}

// Open loads the cache document at path. A missing or unreadable file is
// treated as an empty cache, never a fatal error.
func (o *Opener) Open(path string) (ports.CacheStore, error) {
	s := &Store{
		path: filepath.Clean(path),
		doc:  document{Files: make(map[string]domain.CacheEntry)},
	}
	if err := s.load(); err != nil {
		// Corrupt cache is recovered by starting empty.
		o.logger.Warn("cache unreadable, starting empty: " + err.Error())
		s.doc = document{Files: make(map[string]domain.CacheEntry)}
	}
	return s, nil
}

func (s *Store) load() error {
	//nolint:gosec // Path is cleaned and provided by trusted caller
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, "failed to read cache file")
	}

	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, &s.doc); err != nil {
		return zerr.Wrap(err, "failed to unmarshal cache file")
	}
	if s.doc.Files == nil {
		s.doc.Files = make(map[string]domain.CacheEntry)
	}

	return nil
}

// Config returns the config persisted by the previous run, or nil.
func (s *Store) Config() *domain.BuildConfig {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.doc.Config == nil {
		return nil
	}
	cfg := *s.doc.Config
	return &cfg
}

// SetConfig records the active config for the next Save.
func (s *Store) SetConfig(cfg domain.BuildConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Config = &cfg
}

// Get retrieves the entry for a relative source path, or nil.
func (s *Store) Get(relPath string) *domain.CacheEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entry, ok := s.doc.Files[relPath]
	if !ok {
		return nil
	}
	return &entry
}

// Put stores the entry for a relative source path. Entries for paths not
// visited in the current run are preserved untouched.
func (s *Store) Put(relPath string, entry domain.CacheEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.doc.Files[relPath] = entry
}

// Save writes the cache document to disk.
func (s *Store) Save() error {
	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return zerr.Wrap(err, "failed to marshal cache")
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", s.path)
	}

	//nolint:gosec // Path is cleaned and provided by trusted caller
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", s.path)
	}

	return nil
}

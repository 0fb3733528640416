package ports

import "go.trai.ch/picon/internal/core/domain"

// CacheStore owns the persisted build cache for the lifetime of a run.
// Lookups and updates mutate memory only; Save is the single durability
// point and is called at most once, at the end of a non-dry run.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type CacheStore interface {
	// Config returns the build config persisted by the previous run,
	// or nil if the cache is empty or carried no config.
	Config() *domain.BuildConfig

	// SetConfig records the active build config for persistence.
	SetConfig(cfg domain.BuildConfig)

	// Get retrieves the entry for a relative source path.
	// Returns nil if not found.
	Get(relPath string) *domain.CacheEntry

	// Put stores the entry for a relative source path in memory.
	Put(relPath string, entry domain.CacheEntry)

	// Save persists the cache document to disk.
	Save() error
}

// CacheOpener opens the cache store backing a given file path. A missing or
// unreadable cache file yields an empty store, never an error.
type CacheOpener interface {
	Open(path string) (CacheStore, error)
}

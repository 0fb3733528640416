package ports

import "go.trai.ch/picon/internal/core/domain"

// Hasher defines the interface for computing content and config digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// ContentDigest computes the hex digest of a file's full content.
	// The digest depends only on the file bytes, never on metadata.
	ContentDigest(path string) (string, error)

	// ConfigFingerprint computes a short stable fingerprint of a build
	// configuration, used for logging and quick comparison.
	ConfigFingerprint(cfg domain.BuildConfig) string
}

package fs

import (
	"crypto/sha1" //nolint:gosec // Change detection, not integrity protection
	"encoding/binary"
	"encoding/hex"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes content digests of source files and fingerprints of
// build configurations.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// ContentDigest computes the SHA-1 hex digest of a file's content.
// The file is streamed, never loaded whole.
func (h *Hasher) ContentDigest(path string) (string, error) {
	f, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := sha1.New() //nolint:gosec // Change detection, not integrity protection
	if _, err := io.Copy(hasher, f); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}

// ConfigFingerprint computes a short stable fingerprint over every field of
// the build configuration. Fields are written in a fixed order with
// zero-byte separators so that any single change alters the fingerprint.
func (h *Hasher) ConfigFingerprint(cfg domain.BuildConfig) string {
	hasher := xxhash.New()

	writeInt(hasher, cfg.FrameWidth)
	writeInt(hasher, cfg.FrameHeight)
	_, _ = hasher.WriteString(cfg.Prefix)
	_, _ = hasher.Write([]byte{0})
	if cfg.AllowUpscale {
		_, _ = hasher.Write([]byte{1})
	} else {
		_, _ = hasher.Write([]byte{0})
	}
	_, _ = hasher.WriteString(string(cfg.SVGEngine))
	_, _ = hasher.Write([]byte{0})
	writeInt(hasher, cfg.Version)

	var sum [8]byte
	binary.BigEndian.PutUint64(sum[:], hasher.Sum64())
	return hex.EncodeToString(sum[:])
}

func writeInt(hasher *xxhash.Digest, v int) {
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], uint64(v))
	_, _ = hasher.Write(buf[:])
	_, _ = hasher.Write([]byte{0})
}

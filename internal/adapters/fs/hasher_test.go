package fs_test

import (
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/picon/internal/adapters/fs"
	"go.trai.ch/picon/internal/core/domain"
)

func TestHasher_ContentDigest(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logo.png")
	if err := os.WriteFile(path, []byte("hello"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher()
	digest, err := hasher.ContentDigest(path)
	if err != nil {
		t.Fatalf("ContentDigest failed: %v", err)
	}

	// sha1("hello")
	want := "aaf4c61ddcc5e8a2dabede0f3b482cd9aea9434d"
	if digest != want {
		t.Errorf("expected digest %s, got %s", want, digest)
	}
}

func TestHasher_ContentDigest_Stable(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "logo.png")
	if err := os.WriteFile(path, []byte("same bytes"), 0o600); err != nil {
		t.Fatal(err)
	}

	hasher := fs.NewHasher()
	first, err := hasher.ContentDigest(path)
	if err != nil {
		t.Fatal(err)
	}
	second, err := hasher.ContentDigest(path)
	if err != nil {
		t.Fatal(err)
	}

	if first != second {
		t.Errorf("digest not stable: %s vs %s", first, second)
	}
}

func TestHasher_ContentDigest_MissingFile(t *testing.T) {
	hasher := fs.NewHasher()
	if _, err := hasher.ContentDigest(filepath.Join(t.TempDir(), "absent.png")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestHasher_ConfigFingerprint_SensitiveToEveryField(t *testing.T) {
	hasher := fs.NewHasher()
	base := domain.DefaultConfig()
	baseFP := hasher.ConfigFingerprint(base)

	variants := map[string]domain.BuildConfig{}

	cfg := base
	cfg.FrameWidth = 513
	variants["width"] = cfg

	cfg = base
	cfg.FrameHeight = 251
	variants["height"] = cfg

	cfg = base
	cfg.Prefix = "tv_"
	variants["prefix"] = cfg

	cfg = base
	cfg.AllowUpscale = false
	variants["upscale"] = cfg

	cfg = base
	cfg.SVGEngine = domain.EngineSkip
	variants["engine"] = cfg

	cfg = base
	cfg.Version = base.Version + 1
	variants["version"] = cfg

	for name, variant := range variants {
		if fp := hasher.ConfigFingerprint(variant); fp == baseFP {
			t.Errorf("fingerprint did not change when %s changed", name)
		}
	}

	if fp := hasher.ConfigFingerprint(base); fp != baseFP {
		t.Errorf("fingerprint not stable: %s vs %s", fp, baseFP)
	}
}

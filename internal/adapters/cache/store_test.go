package cache_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/picon/internal/adapters/cache"
	"go.trai.ch/picon/internal/core/domain"
)

// testLogger discards Info and Error and records Warn messages.
type testLogger struct {
	warnings []string
}

func (l *testLogger) Info(string)  {}
func (l *testLogger) Warn(msg string) {
	l.warnings = append(l.warnings, msg)
}
func (l *testLogger) Error(error) {}

func TestStore_MissingFileStartsEmpty(t *testing.T) {
	log := &testLogger{}
	opener := cache.NewOpener(log)

	store, err := opener.Open(filepath.Join(t.TempDir(), domain.CacheFilename))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}

	if store.Config() != nil {
		t.Error("expected nil config for fresh cache")
	}
	if store.Get("Portugal/rtp1.png") != nil {
		t.Error("expected nil entry for fresh cache")
	}
	if len(log.warnings) != 0 {
		t.Errorf("missing file must not warn, got %v", log.warnings)
	}
}

func TestStore_Persistence(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.CacheFilename)
	opener := cache.NewOpener(&testLogger{})

	cfg := domain.DefaultConfig()
	entry := domain.CacheEntry{SrcSHA1: "abc123", Config: cfg}

	store1, err := opener.Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	store1.SetConfig(cfg)
	store1.Put("Portugal/rtp1.png", entry)
	if err := store1.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	store2, err := opener.Open(path)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}

	gotCfg := store2.Config()
	if gotCfg == nil || *gotCfg != cfg {
		t.Errorf("expected persisted config %+v, got %+v", cfg, gotCfg)
	}

	got := store2.Get("Portugal/rtp1.png")
	if got == nil {
		t.Fatal("expected persisted entry")
	}
	if got.SrcSHA1 != "abc123" {
		t.Errorf("expected digest abc123, got %s", got.SrcSHA1)
	}
	if got.Config != cfg {
		t.Errorf("expected entry config %+v, got %+v", cfg, got.Config)
	}
}

func TestStore_CorruptFileStartsEmptyWithWarning(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, domain.CacheFilename)
	if err := os.WriteFile(path, []byte("{not json"), 0o600); err != nil {
		t.Fatal(err)
	}

	log := &testLogger{}
	store, err := cache.NewOpener(log).Open(path)
	if err != nil {
		t.Fatalf("Open must recover from corruption, got: %v", err)
	}

	if store.Config() != nil || store.Get("any") != nil {
		t.Error("corrupt cache must start empty")
	}
	if len(log.warnings) != 1 {
		t.Errorf("expected one warning, got %v", log.warnings)
	}
}

func TestStore_SaveCreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out", "nested", domain.CacheFilename)
	store, err := cache.NewOpener(&testLogger{}).Open(path)
	if err != nil {
		t.Fatal(err)
	}

	store.Put("a.png", domain.CacheEntry{SrcSHA1: "d"})
	if err := store.Save(); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected cache file on disk: %v", err)
	}
}

func TestStore_DocumentShape(t *testing.T) {
	path := filepath.Join(t.TempDir(), domain.CacheFilename)
	store, err := cache.NewOpener(&testLogger{}).Open(path)
	if err != nil {
		t.Fatal(err)
	}

	cfg := domain.DefaultConfig()
	store.SetConfig(cfg)
	store.Put("Portugal/rtp1.png", domain.CacheEntry{SrcSHA1: "deadbeef", Config: cfg})
	if err := store.Save(); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path) //nolint:gosec // Test file path
	if err != nil {
		t.Fatal(err)
	}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("cache is not valid JSON: %v", err)
	}
	if _, ok := doc["_config"]; !ok {
		t.Error("expected _config key in cache document")
	}

	var files map[string]struct {
		SrcSHA1 string          `json:"src_sha1"`
		Config  json.RawMessage `json:"cfg"`
	}
	if err := json.Unmarshal(doc["files"], &files); err != nil {
		t.Fatalf("files section malformed: %v", err)
	}
	if files["Portugal/rtp1.png"].SrcSHA1 != "deadbeef" {
		t.Errorf("unexpected files section: %s", doc["files"])
	}
}

func TestStore_GetReturnsCopy(t *testing.T) {
	store, err := cache.NewOpener(&testLogger{}).Open(filepath.Join(t.TempDir(), domain.CacheFilename))
	if err != nil {
		t.Fatal(err)
	}

	store.Put("a.png", domain.CacheEntry{SrcSHA1: "one"})
	got := store.Get("a.png")
	got.SrcSHA1 = "mutated"

	if store.Get("a.png").SrcSHA1 != "one" {
		t.Error("Get must not expose internal state")
	}
}

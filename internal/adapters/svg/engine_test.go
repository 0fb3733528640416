package svg_test

import (
	"context"
	"errors"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"go.trai.ch/picon/internal/adapters/svg"
	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/zerr"
)

const sampleSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="64" height="32" viewBox="0 0 64 32">
  <rect x="0" y="0" width="64" height="32" fill="#cc0000"/>
</svg>`

type noopLogger struct{}

func (noopLogger) Info(string)  {}
func (noopLogger) Warn(string)  {}
func (noopLogger) Error(error)  {}

// missingToolRunner simulates an environment without the external tool.
type missingToolRunner struct{}

func (missingToolRunner) LookPath(name string) (string, error) {
	return "", zerr.With(zerr.New("executable not found"), "tool", name)
}

func (missingToolRunner) Run(context.Context, string, ...string) error {
	return zerr.New("must not be reached")
}

// failingRunner finds the tool but the invocation fails.
type failingRunner struct{}

func (failingRunner) LookPath(string) (string, error) { return "/usr/bin/inkscape", nil }

func (failingRunner) Run(context.Context, string, ...string) error {
	return zerr.With(zerr.New("command failed"), "exit_code", 1)
}

func writeSVG(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logo.svg")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestEngine_SkipPolicy(t *testing.T) {
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})
	err := engine.Rasterize(context.Background(), writeSVG(t, sampleSVG),
		filepath.Join(t.TempDir(), "out.png"), domain.EngineSkip)
	if !errors.Is(err, domain.ErrSkipped) {
		t.Errorf("expected ErrSkipped, got %v", err)
	}
}

func TestEngine_SoftwareRendersIntrinsicSize(t *testing.T) {
	out := filepath.Join(t.TempDir(), "out.png")
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})

	err := engine.Rasterize(context.Background(), writeSVG(t, sampleSVG), out, domain.EngineSoftware)
	if err != nil {
		t.Fatalf("Rasterize failed: %v", err)
	}

	f, err := os.Open(out) //nolint:gosec // Test file path
	if err != nil {
		t.Fatalf("output missing: %v", err)
	}
	defer f.Close() //nolint:errcheck // Best effort close in test

	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("output is not a PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 32 {
		t.Errorf("expected 64x32 intrinsic size, got %dx%d", b.Dx(), b.Dy())
	}
}

func TestEngine_SoftwareRejectsSizelessDocument(t *testing.T) {
	sizeless := `<svg xmlns="http://www.w3.org/2000/svg"><rect width="10" height="10"/></svg>`
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})

	err := engine.Rasterize(context.Background(), writeSVG(t, sizeless),
		filepath.Join(t.TempDir(), "out.png"), domain.EngineSoftware)
	if !errors.Is(err, domain.ErrRasterizeFailed) {
		t.Errorf("expected ErrRasterizeFailed, got %v", err)
	}
}

func TestEngine_ExternalToolMissing(t *testing.T) {
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})
	err := engine.Rasterize(context.Background(), writeSVG(t, sampleSVG),
		filepath.Join(t.TempDir(), "out.png"), domain.EngineExternal)
	if !errors.Is(err, domain.ErrToolMissing) {
		t.Errorf("expected ErrToolMissing, got %v", err)
	}
}

func TestEngine_ExternalToolFailure(t *testing.T) {
	engine := svg.NewEngine(noopLogger{}, failingRunner{})
	err := engine.Rasterize(context.Background(), writeSVG(t, sampleSVG),
		filepath.Join(t.TempDir(), "out.png"), domain.EngineExternal)
	if !errors.Is(err, domain.ErrRasterizeFailed) {
		t.Errorf("expected ErrRasterizeFailed, got %v", err)
	}
}

func TestEngine_AutoFallsBackToSoftware(t *testing.T) {
	// The external tool is absent, so auto must succeed via the in-process
	// renderer without surfacing an error.
	out := filepath.Join(t.TempDir(), "out.png")
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})

	if err := engine.Rasterize(context.Background(), writeSVG(t, sampleSVG), out, domain.EngineAuto); err != nil {
		t.Fatalf("expected auto mode to succeed via software engine: %v", err)
	}
	if _, err := os.Stat(out); err != nil {
		t.Errorf("expected raster output: %v", err)
	}
}

func TestEngine_AutoExhausted(t *testing.T) {
	// A document no provider can handle fails with ErrUnsupported.
	broken := `this is not xml`
	engine := svg.NewEngine(noopLogger{}, missingToolRunner{})

	err := engine.Rasterize(context.Background(), writeSVG(t, broken),
		filepath.Join(t.TempDir(), "out.png"), domain.EngineAuto)
	if !errors.Is(err, domain.ErrUnsupported) {
		t.Errorf("expected ErrUnsupported, got %v", err)
	}
}

package ports

import (
	"context"
	"image"

	"go.trai.ch/picon/internal/core/domain"
)

// SourceLoader converts a source file into an in-memory RGBA surface.
// Bitmap formats decode directly; vector formats go through a Rasterizer
// selected by the engine parameter.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type SourceLoader interface {
	// Load reads the file at path and returns it as an NRGBA image.
	// Failures are tagged with the domain error taxonomy (ErrNotFound,
	// ErrDecodeFailed, ErrRasterizeFailed, ErrToolMissing, ErrUnsupported,
	// ErrSkipped).
	Load(ctx context.Context, path string, engine domain.EngineSelector) (*image.NRGBA, error)
}

// Rasterizer converts a vector file into a raster bitmap written to outPath,
// using the requested engine policy.
type Rasterizer interface {
	Rasterize(ctx context.Context, svgPath, outPath string, engine domain.EngineSelector) error
}

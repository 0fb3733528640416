package imaging

import (
	"context"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	xdraw "golang.org/x/image/draw"

	// Bitmap decoders for the recognized source formats.
	_ "image/jpeg"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.SourceLoader = (*Loader)(nil)

// Loader implements ports.SourceLoader. Bitmap formats decode directly;
// SVG sources are rasterized to a temporary PNG first.
type Loader struct {
	rasterizer ports.Rasterizer
}

// NewLoader creates a new Loader delegating vector sources to rasterizer.
func NewLoader(rasterizer ports.Rasterizer) *Loader {
	return &Loader{rasterizer: rasterizer}
}

// Load reads the file at path into an NRGBA surface.
func (l *Loader) Load(ctx context.Context, path string, engine domain.EngineSelector) (*image.NRGBA, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		return l.loadSVG(ctx, path, engine)
	}
	return decodeBitmap(path)
}

// loadSVG rasterizes the vector source into a temporary file, decodes it,
// and deletes the intermediate on every exit path.
func (l *Loader) loadSVG(ctx context.Context, path string, engine domain.EngineSelector) (*image.NRGBA, error) {
	tmp, err := os.CreateTemp("", "picon-raster-*.png")
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create intermediate raster file")
	}
	tmpPath := tmp.Name()
	_ = tmp.Close()
	defer os.Remove(tmpPath) //nolint:errcheck // Best effort cleanup of the intermediate

	if err := l.rasterizer.Rasterize(ctx, path, tmpPath, engine); err != nil {
		return nil, err
	}

	img, err := decodeBitmap(tmpPath)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, "intermediate raster unreadable"), "path", path)
	}
	return img, nil
}

func decodeBitmap(path string) (*image.NRGBA, error) {
	f, err := os.Open(path) //nolint:gosec // Path comes from the scanned input tree
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(domain.ErrNotFound, "source file missing"), "path", path)
		}
		return nil, zerr.With(zerr.Wrap(domain.ErrDecodeFailed, err.Error()), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrDecodeFailed, err.Error()), "path", path)
	}

	return toNRGBA(img), nil
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	bounds := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	xdraw.Draw(dst, dst.Bounds(), img, bounds.Min, xdraw.Src)
	return dst
}

var _ ports.Encoder = (*Encoder)(nil)

// Encoder writes processed picons as optimized PNG files.
type Encoder struct{}

// NewEncoder creates a new Encoder.
func NewEncoder() *Encoder {
	return &Encoder{}
}

// EncodePNG writes img to path with best compression, creating parent
// directories as needed. Failures carry ErrSaveFailed.
func (e *Encoder) EncodePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", path)
	}

	f, err := os.Create(path) //nolint:gosec // Path is derived under the output root
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", path)
	}

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", path)
	}

	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrSaveFailed, err.Error()), "path", path)
	}
	return nil
}

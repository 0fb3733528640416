package svg

import (
	"context"
	"image"
	"image/png"
	"os"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/zerr"
)

// softwareEngine renders SVG in-process at the document's intrinsic size.
type softwareEngine struct{}

func (s *softwareEngine) name() string { return "software" }

func (s *softwareEngine) rasterize(_ context.Context, svgPath, outPath string) error {
	icon, err := oksvg.ReadIcon(svgPath, oksvg.WarnErrorMode)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, err.Error()), "path", svgPath)
	}

	w := int(icon.ViewBox.W)
	h := int(icon.ViewBox.H)
	if w < 1 || h < 1 {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, "svg has no intrinsic size"), "path", svgPath)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewRGBA(image.Rect(0, 0, w, h))
	icon.Draw(rasterx.NewDasher(w, h, rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())), 1.0)

	f, err := os.Create(outPath) //nolint:gosec // outPath is a caller-owned temp file
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, err.Error()), "path", svgPath)
	}
	if err := png.Encode(f, rgba); err != nil {
		_ = f.Close()
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, err.Error()), "path", svgPath)
	}
	if err := f.Close(); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, err.Error()), "path", svgPath)
	}
	return nil
}

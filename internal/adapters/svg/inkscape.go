package svg

import (
	"context"
	"os"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

// toolName is the external vector-rendering tool. Inkscape >= 1.0 accepts
// -o / --export-filename for one-shot conversions.
const toolName = "inkscape"

// inkscapeEngine shells out to an installed Inkscape.
type inkscapeEngine struct {
	runner ports.ToolRunner
}

func (i *inkscapeEngine) name() string { return "external" }

func (i *inkscapeEngine) rasterize(ctx context.Context, svgPath, outPath string) error {
	if _, err := i.runner.LookPath(toolName); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrToolMissing, toolName+" not found on PATH"), "path", svgPath)
	}

	if err := i.runner.Run(ctx, toolName, svgPath, "-o", outPath); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, err.Error()), "path", svgPath)
	}

	// Success requires the tool to have actually produced output.
	info, err := os.Stat(outPath)
	if err != nil || info.Size() == 0 {
		return zerr.With(zerr.Wrap(domain.ErrRasterizeFailed, "no raster output produced"), "path", svgPath)
	}
	return nil
}

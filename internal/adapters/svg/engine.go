// Package svg rasterizes vector sources through a chain of engines.
package svg

import (
	"context"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

// provider is one rasterization capability tried by the engine chain.
type provider interface {
	name() string
	rasterize(ctx context.Context, svgPath, outPath string) error
}

var _ ports.Rasterizer = (*Engine)(nil)

// Engine dispatches rasterization to the provider selected by policy. In
// auto mode providers are tried in order; failures are informational and
// fall through to the next provider.
type Engine struct {
	logger   ports.Logger
	software provider
	external provider
}

// NewEngine creates a new Engine backed by the in-process rasterizer and
// the external tool runner.
func NewEngine(logger ports.Logger, runner ports.ToolRunner) *Engine {
	return &Engine{
		logger:   logger,
		software: &softwareEngine{},
		external: &inkscapeEngine{runner: runner},
	}
}

// Rasterize converts svgPath into a PNG at outPath.
func (e *Engine) Rasterize(ctx context.Context, svgPath, outPath string, engine domain.EngineSelector) error {
	switch engine {
	case domain.EngineSkip:
		return zerr.With(zerr.Wrap(domain.ErrSkipped, "svg engine set to skip"), "path", svgPath)

	case domain.EngineSoftware:
		return e.software.rasterize(ctx, svgPath, outPath)

	case domain.EngineExternal:
		return e.external.rasterize(ctx, svgPath, outPath)

	default: // auto
		for _, p := range []provider{e.software, e.external} {
			err := p.rasterize(ctx, svgPath, outPath)
			if err == nil {
				return nil
			}
			e.logger.Info(p.name() + " rasterizer unavailable for " + svgPath + ": " + err.Error())
		}
		return zerr.With(zerr.Wrap(domain.ErrUnsupported, "all rasterizer engines failed"), "path", svgPath)
	}
}

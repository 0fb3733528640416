// Package app implements the application layer for picon.
package app

import (
	"context"
	"os"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/picon/internal/engine/planner"
	"go.trai.ch/zerr"
)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	planner      *planner.Planner
	logger       ports.Logger
}

// New creates a new App instance.
func New(loader ports.ConfigLoader, pl *planner.Planner, logger ports.Logger) *App {
	return &App{
		configLoader: loader,
		planner:      pl,
		logger:       logger,
	}
}

// Profile loads the optional profile file with option defaults.
func (a *App) Profile(path string) (domain.Profile, error) {
	profile, err := a.configLoader.Load(path)
	if err != nil {
		return domain.Profile{}, zerr.Wrap(err, "failed to load profile")
	}
	return profile, nil
}

// Build runs the pipeline with fully resolved options.
func (a *App) Build(ctx context.Context, opts domain.Options) error {
	if opts.Config.FrameWidth < 1 || opts.Config.FrameHeight < 1 {
		return zerr.With(zerr.With(zerr.New("frame dimensions must be positive"),
			"width", opts.Config.FrameWidth), "height", opts.Config.FrameHeight)
	}

	if _, err := a.planner.Run(ctx, opts); err != nil {
		return zerr.Wrap(err, "build failed")
	}
	return nil
}

// Clean removes the output directory including the cache document.
func (a *App) Clean(_ context.Context, outputRoot string, dryRun bool) error {
	a.logger.Info("removing " + outputRoot)
	if dryRun {
		return nil
	}
	if err := os.RemoveAll(outputRoot); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to remove output directory"), "path", outputRoot)
	}
	return nil
}

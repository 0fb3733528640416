// Package config provides the optional profile file loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the profile looked up next to the invocation.
const DefaultFilename = "picon.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader reads option defaults from a YAML profile.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the profile at path. A missing file yields an empty profile.
func (l *Loader) Load(path string) (domain.Profile, error) {
	data, err := os.ReadFile(path) //nolint:gosec // Path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.Profile{}, nil
		}
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to read profile"), "path", path)
	}

	var dto profileDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.Profile{}, zerr.With(zerr.Wrap(err, "failed to parse profile"), "path", path)
	}

	if dto.Mode != nil {
		if _, err := domain.ParseMode(*dto.Mode); err != nil {
			return domain.Profile{}, err
		}
	}
	if dto.SVGEngine != nil {
		if _, err := domain.ParseEngine(*dto.SVGEngine); err != nil {
			return domain.Profile{}, err
		}
	}

	return domain.Profile{
		Width:     dto.Width,
		Height:    dto.Height,
		Prefix:    dto.Prefix,
		Upscale:   dto.Upscale,
		Mode:      dto.Mode,
		SVGEngine: dto.SVGEngine,
		Only:      dto.Only,
		Exclude:   dto.Exclude,
		Match:     dto.Match,
	}, nil
}

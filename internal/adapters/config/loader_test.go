package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/picon/internal/adapters/config"
	"go.trai.ch/picon/internal/core/domain"
)

func writeProfile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.DefaultFilename)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_MissingFileYieldsEmptyProfile(t *testing.T) {
	loader := config.NewLoader()
	profile, err := loader.Load(filepath.Join(t.TempDir(), config.DefaultFilename))
	require.NoError(t, err)
	assert.Equal(t, domain.Profile{}, profile)
}

func TestLoader_FullProfile(t *testing.T) {
	path := writeProfile(t, `
width: 220
height: 132
prefix: "tv_"
upscale: false
mode: changed
svg_engine: software
only:
  - Portugal
  - France
exclude:
  - Archives
match:
  - "*.svg"
`)

	profile, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	require.NotNil(t, profile.Width)
	assert.Equal(t, 220, *profile.Width)
	require.NotNil(t, profile.Height)
	assert.Equal(t, 132, *profile.Height)
	require.NotNil(t, profile.Prefix)
	assert.Equal(t, "tv_", *profile.Prefix)
	require.NotNil(t, profile.Upscale)
	assert.False(t, *profile.Upscale)
	require.NotNil(t, profile.Mode)
	assert.Equal(t, "changed", *profile.Mode)
	require.NotNil(t, profile.SVGEngine)
	assert.Equal(t, "software", *profile.SVGEngine)
	assert.Equal(t, []string{"Portugal", "France"}, profile.Only)
	assert.Equal(t, []string{"Archives"}, profile.Exclude)
	assert.Equal(t, []string{"*.svg"}, profile.Match)
}

func TestLoader_PartialProfileLeavesRestNil(t *testing.T) {
	path := writeProfile(t, "width: 100\n")

	profile, err := config.NewLoader().Load(path)
	require.NoError(t, err)

	require.NotNil(t, profile.Width)
	assert.Equal(t, 100, *profile.Width)
	assert.Nil(t, profile.Height)
	assert.Nil(t, profile.Prefix)
	assert.Nil(t, profile.Mode)
	assert.Empty(t, profile.Only)
}

func TestLoader_InvalidYAML(t *testing.T) {
	path := writeProfile(t, "width: [not an int\n")
	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoader_InvalidMode(t *testing.T) {
	path := writeProfile(t, "mode: incremental\n")
	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}

func TestLoader_InvalidEngine(t *testing.T) {
	path := writeProfile(t, "svg_engine: gpu\n")
	_, err := config.NewLoader().Load(path)
	assert.Error(t, err)
}

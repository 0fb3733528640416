package app_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"go.trai.ch/picon/internal/app"
	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/engine/planner"
	"go.trai.ch/zerr"
)

type stubLogger struct{}

func (stubLogger) Info(string) {}
func (stubLogger) Warn(string) {}
func (stubLogger) Error(error) {}

// stubConfigLoader returns a fixed profile or error.
type stubConfigLoader struct {
	profile domain.Profile
	err     error
}

func (s stubConfigLoader) Load(string) (domain.Profile, error) {
	return s.profile, s.err
}

func newTestApp(loader stubConfigLoader) *app.App {
	// The planner ports stay nil; tests here never reach the pipeline.
	pl := planner.NewPlanner(nil, nil, nil, nil, nil, nil, nil, nil)
	return app.New(loader, pl, stubLogger{})
}

func TestApp_Profile(t *testing.T) {
	width := 300
	a := newTestApp(stubConfigLoader{profile: domain.Profile{Width: &width}})

	profile, err := a.Profile("picon.yaml")
	require.NoError(t, err)
	require.NotNil(t, profile.Width)
	assert.Equal(t, 300, *profile.Width)
}

func TestApp_ProfileError(t *testing.T) {
	wantErr := zerr.New("parse failure")
	a := newTestApp(stubConfigLoader{err: wantErr})

	_, err := a.Profile("picon.yaml")
	assert.ErrorIs(t, err, wantErr)
}

func TestApp_BuildRejectsInvalidDimensions(t *testing.T) {
	a := newTestApp(stubConfigLoader{})

	tests := []struct {
		name string
		w, h int
	}{
		{name: "zero width", w: 0, h: 250},
		{name: "zero height", w: 512, h: 0},
		{name: "negative width", w: -1, h: 250},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := domain.Options{Config: domain.DefaultConfig()}
			opts.Config.FrameWidth = tt.w
			opts.Config.FrameHeight = tt.h
			err := a.Build(context.Background(), opts)
			assert.Error(t, err)
		})
	}
}

func TestApp_Clean(t *testing.T) {
	a := newTestApp(stubConfigLoader{})

	out := filepath.Join(t.TempDir(), "picons")
	require.NoError(t, os.MkdirAll(out, 0o750))
	require.NoError(t, os.WriteFile(filepath.Join(out, "sxa_x.png"), []byte("x"), 0o600))

	require.NoError(t, a.Clean(context.Background(), out, false))
	assert.NoDirExists(t, out)
}

func TestApp_CleanDryRun(t *testing.T) {
	a := newTestApp(stubConfigLoader{})

	out := filepath.Join(t.TempDir(), "picons")
	require.NoError(t, os.MkdirAll(out, 0o750))

	require.NoError(t, a.Clean(context.Background(), out, true))
	assert.DirExists(t, out)
}

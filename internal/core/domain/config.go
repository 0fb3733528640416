package domain

import "go.trai.ch/zerr"

// SchemaVersion is the cache schema version. A bump invalidates every cached
// entry on the next run even if all other parameters coincide.
const SchemaVersion = 2

// CacheFilename is the cache document location under the output root.
const CacheFilename = ".picons-cache.json"

// Mode selects which candidates are rebuilt.
type Mode string

const (
	// ModeAll rebuilds every candidate unconditionally.
	ModeAll Mode = "all"
	// ModeChanged rebuilds candidates whose source content changed.
	ModeChanged Mode = "changed"
	// ModeMissing rebuilds candidates whose output file is absent.
	ModeMissing Mode = "missing"
)

// ParseMode validates a mode string.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case ModeAll, ModeChanged, ModeMissing:
		return Mode(s), nil
	}
	return "", zerr.With(zerr.New("unknown build mode"), "mode", s)
}

// EngineSelector selects how SVG sources are rasterized.
type EngineSelector string

const (
	// EngineAuto tries the software rasterizer first, then the external tool.
	EngineAuto EngineSelector = "auto"
	// EngineSoftware uses only the in-process rasterizer.
	EngineSoftware EngineSelector = "software"
	// EngineExternal uses only the external rendering tool.
	EngineExternal EngineSelector = "external"
	// EngineSkip ignores SVG sources entirely.
	EngineSkip EngineSelector = "skip"
)

// ParseEngine validates an engine selector string.
func ParseEngine(s string) (EngineSelector, error) {
	switch EngineSelector(s) {
	case EngineAuto, EngineSoftware, EngineExternal, EngineSkip:
		return EngineSelector(s), nil
	}
	return "", zerr.With(zerr.New("unknown svg engine"), "engine", s)
}

// BuildConfig is the set of transform parameters active for a run. It is a
// comparable value type: two configs are equal iff every field matches,
// including the schema version. Stored config snapshots are compared against
// the active config to detect parameter changes.
type BuildConfig struct {
	FrameWidth   int            `json:"frame_w" yaml:"frame_w"`
	FrameHeight  int            `json:"frame_h" yaml:"frame_h"`
	Prefix       string         `json:"prefix" yaml:"prefix"`
	AllowUpscale bool           `json:"allow_upscale" yaml:"allow_upscale"`
	SVGEngine    EngineSelector `json:"svg_engine" yaml:"svg_engine"`
	Version      int            `json:"version" yaml:"version"`
}

// DefaultConfig returns the built-in transform parameters.
func DefaultConfig() BuildConfig {
	return BuildConfig{
		FrameWidth:   512,
		FrameHeight:  250,
		Prefix:       "sxa_",
		AllowUpscale: true,
		SVGEngine:    EngineAuto,
		Version:      SchemaVersion,
	}
}

// CacheEntry records the state of a source at its last successful build.
type CacheEntry struct {
	SrcSHA1 string      `json:"src_sha1"`
	Config  BuildConfig `json:"cfg"`
}

// Filters restricts which files of the input tree become candidates.
type Filters struct {
	// Only keeps files whose top-level category is in the set (when non-empty).
	Only []string
	// Exclude drops files whose top-level category is in the set.
	Exclude []string
	// Patterns keeps files whose relative path matches at least one glob
	// pattern (when non-empty).
	Patterns []string
}

// Options is the fully resolved configuration of one invocation.
type Options struct {
	InputRoot  string
	OutputRoot string
	Config     BuildConfig
	Mode       Mode
	Filters    Filters
	Clean      bool
	DryRun     bool
}

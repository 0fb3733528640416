package domain

import "go.trai.ch/zerr"

var (
	// ErrNotFound is returned when a source vanished between enumeration and load.
	ErrNotFound = zerr.New("source not found")

	// ErrDecodeFailed is returned when a bitmap is unreadable or corrupt.
	ErrDecodeFailed = zerr.New("decode failed")

	// ErrRasterizeFailed is returned when a vector conversion failed.
	ErrRasterizeFailed = zerr.New("rasterize failed")

	// ErrToolMissing is returned when the external rasterizer is not installed.
	ErrToolMissing = zerr.New("rasterizer tool missing")

	// ErrUnsupported is returned when no engine could handle the file.
	ErrUnsupported = zerr.New("no rasterizer engine available")

	// ErrSkipped is returned when SVG sources are ignored by policy.
	ErrSkipped = zerr.New("svg skipped by policy")

	// ErrSaveFailed is returned when an output write or cache persist failed.
	ErrSaveFailed = zerr.New("save failed")

	// ErrInputRootMissing is returned when the input root cannot be read at all.
	// It is the only fatal condition of a run.
	ErrInputRootMissing = zerr.New("input root missing")
)

package domain

import (
	"path"
	"strings"
)

// Candidate pairs a discovered source image with its derived output location.
// It is created fresh on every run by the scanner and never persisted.
type Candidate struct {
	// AbsPath is the absolute path of the source file.
	AbsPath string
	// RelPath is the path relative to the input root, forward-slash
	// normalized. It is the identity of the asset and the cache key.
	RelPath string
	// OutPath is the absolute path the normalized picon will be written to.
	OutPath string
}

// TopCategory returns the first segment of the relative path, or "" when the
// file sits directly at the input root.
func (c Candidate) TopCategory() string {
	rel := c.RelPath
	if i := strings.IndexByte(rel, '/'); i >= 0 {
		return rel[:i]
	}
	return ""
}

// Ext returns the lowercased file extension of the source, including the dot.
func (c Candidate) Ext() string {
	return strings.ToLower(path.Ext(c.RelPath))
}

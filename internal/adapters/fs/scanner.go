// Package fs provides file system adapters for scanning and hashing sources.
package fs

import (
	iofs "io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
)

// imageExts is the fixed allow-list of recognized source extensions.
var imageExts = map[string]struct{}{
	".png":  {},
	".jpg":  {},
	".jpeg": {},
	".webp": {},
	".bmp":  {},
	".tiff": {},
	".tif":  {},
	".svg":  {},
}

var _ ports.Scanner = (*Scanner)(nil)

// Scanner walks the input tree and yields candidates passing all filters.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// Scan returns a lazy, restartable sequence of build candidates. Directories
// are never yielded; traversal order is filesystem-dependent.
func (s *Scanner) Scan(opts domain.Options) iter.Seq[domain.Candidate] {
	only := toSet(opts.Filters.Only)
	exclude := toSet(opts.Filters.Exclude)
	patterns := opts.Filters.Patterns

	return func(yield func(domain.Candidate) bool) {
		_ = filepath.WalkDir(opts.InputRoot, func(p string, d iofs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if d.IsDir() {
				return nil
			}

			rel, relErr := filepath.Rel(opts.InputRoot, p)
			if relErr != nil {
				return nil
			}
			rel = filepath.ToSlash(rel)

			cand := domain.Candidate{
				AbsPath: p,
				RelPath: rel,
				OutPath: outputPath(opts.OutputRoot, opts.Config.Prefix, rel),
			}

			if !keep(cand, only, exclude, patterns) {
				return nil
			}

			if !yield(cand) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// keep applies the filter chain: top-category allow/deny, glob patterns,
// extension allow-list. All must pass.
func keep(cand domain.Candidate, only, exclude map[string]struct{}, patterns []string) bool {
	top := cand.TopCategory()
	if top == "" {
		// Root-level files have no category to include; they survive an
		// only-set only when pattern filters take over selection.
		if len(only) > 0 && len(patterns) == 0 {
			return false
		}
	} else {
		if len(only) > 0 {
			if _, ok := only[top]; !ok {
				return false
			}
		}
		if _, ok := exclude[top]; ok {
			return false
		}
	}

	if len(patterns) > 0 && !matchesAny(cand.RelPath, patterns) {
		return false
	}

	_, ok := imageExts[cand.Ext()]
	return ok
}

// matchesAny reports whether rel matches at least one glob pattern. Patterns
// are matched right-anchored per path component, so "*.svg" matches files at
// any depth and "Portugal/*.png" matches inside that directory.
func matchesAny(rel string, patterns []string) bool {
	for _, pattern := range patterns {
		if matchPattern(pattern, rel) {
			return true
		}
	}
	return false
}

func matchPattern(pattern, rel string) bool {
	pparts := strings.Split(pattern, "/")
	rparts := strings.Split(rel, "/")
	if len(pparts) == 0 || len(pparts) > len(rparts) {
		return false
	}
	rparts = rparts[len(rparts)-len(pparts):]
	for i := range pparts {
		ok, err := path.Match(pparts[i], rparts[i])
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// outputPath derives the output location: extension replaced with .png, the
// filename (not the directory) prefixed, resolved under the output root.
func outputPath(outputRoot, prefix, rel string) string {
	dir, file := path.Split(rel)
	base := strings.TrimSuffix(file, path.Ext(file)) + ".png"
	outRel := path.Join(dir, prefix+base)
	return filepath.Join(outputRoot, filepath.FromSlash(outRel))
}

func toSet(items []string) map[string]struct{} {
	if len(items) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		set[item] = struct{}{}
	}
	return set
}

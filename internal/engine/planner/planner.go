// Package planner implements the incremental build decision logic and the
// sequential processing pipeline.
package planner

import (
	"os"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
)

// Planner decides per candidate whether a build is needed and drives the
// processing pipeline. Candidates are handled strictly one at a time; the
// in-memory cache mapping is updated before the next lookup.
type Planner struct {
	scanner     ports.Scanner
	hasher      ports.Hasher
	loader      ports.SourceLoader
	transformer ports.Transformer
	encoder     ports.Encoder
	opener      ports.CacheOpener
	reporter    ports.Reporter
	logger      ports.Logger
}

// NewPlanner creates a new Planner.
func NewPlanner(
	scanner ports.Scanner,
	hasher ports.Hasher,
	loader ports.SourceLoader,
	transformer ports.Transformer,
	encoder ports.Encoder,
	opener ports.CacheOpener,
	reporter ports.Reporter,
	logger ports.Logger,
) *Planner {
	return &Planner{
		scanner:     scanner,
		hasher:      hasher,
		loader:      loader,
		transformer: transformer,
		encoder:     encoder,
		opener:      opener,
		reporter:    reporter,
		logger:      logger,
	}
}

// Decide selects BUILD or SKIP for one candidate. The output-absent check is
// a single rule applied in every mode, layered after the config and content
// checks.
func (p *Planner) Decide(c domain.Candidate, mode domain.Mode, store ports.CacheStore, cfg domain.BuildConfig) (domain.BuildDecision, error) {
	if mode == domain.ModeAll {
		return domain.BuildDecision{Action: domain.ActionBuild, Reason: domain.ReasonForcedAll}, nil
	}

	digest, err := p.hasher.ContentDigest(c.AbsPath)
	if err != nil {
		return domain.BuildDecision{}, err
	}

	entry := store.Get(c.RelPath)
	switch {
	case entry == nil:
		return build(domain.ReasonNew), nil
	case entry.Config != cfg:
		return build(domain.ReasonConfigChanged), nil
	case mode == domain.ModeChanged && entry.SrcSHA1 != digest:
		return build(domain.ReasonContentChanged), nil
	}

	if _, err := os.Stat(c.OutPath); err != nil {
		return build(domain.ReasonMissingOutput), nil
	}

	return domain.BuildDecision{Action: domain.ActionSkip, Reason: domain.ReasonCachedCurrent}, nil
}

func build(reason domain.Reason) domain.BuildDecision {
	return domain.BuildDecision{Action: domain.ActionBuild, Reason: reason}
}

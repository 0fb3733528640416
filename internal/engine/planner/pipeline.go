package planner

import (
	"context"
	"os"
	"path/filepath"

	"go.trai.ch/picon/internal/core/domain"
	"go.trai.ch/picon/internal/core/ports"
	"go.trai.ch/zerr"
)

// Run executes one full pipeline pass: enumerate, decide, process, persist.
// Per-candidate failures downgrade that candidate to a failed outcome and
// processing continues; only an unreadable input root aborts the run. The
// cache is saved exactly once at the end of a non-dry run.
func (p *Planner) Run(ctx context.Context, opts domain.Options) (domain.Summary, error) {
	info, err := os.Stat(opts.InputRoot)
	if err != nil || !info.IsDir() {
		return domain.Summary{}, zerr.With(zerr.Wrap(domain.ErrInputRootMissing, "cannot read input root"), "path", opts.InputRoot)
	}

	if opts.Clean {
		p.logger.Info("cleaning output directory " + opts.OutputRoot)
		if !opts.DryRun {
			_ = os.RemoveAll(opts.OutputRoot)
		}
	}

	store, err := p.opener.Open(filepath.Join(opts.OutputRoot, domain.CacheFilename))
	if err != nil {
		return domain.Summary{}, zerr.Wrap(err, "failed to open cache")
	}

	mode := p.effectiveMode(opts, store)
	summary := domain.Summary{Mode: mode}

	for cand := range p.scanner.Scan(opts) {
		summary.Eligible++

		decision, err := p.Decide(cand, mode, store, opts.Config)
		if err != nil {
			p.reporter.Fail(cand, err)
			summary.Failed++
			continue
		}

		if decision.Action == domain.ActionSkip {
			p.reporter.Skip(cand)
			summary.Skipped++
			continue
		}

		p.reporter.Build(cand, decision.Reason)
		if opts.DryRun {
			// The planned build is announced but nothing is generated, so
			// the tally counts it neither as built nor as skipped.
			continue
		}

		if err := p.process(ctx, cand, opts, store); err != nil {
			// Entry stays untouched so the candidate is retried next run.
			p.reporter.Fail(cand, err)
			summary.Failed++
			continue
		}
		summary.Built++
	}

	if !opts.DryRun {
		store.SetConfig(opts.Config)
		if err := store.Save(); err != nil {
			return summary, zerr.Wrap(err, "failed to persist cache")
		}
	}

	p.reporter.Summary(summary, opts)
	return summary, nil
}

// effectiveMode applies the one-time global override: a parameter change
// since the last run invalidates cache assumptions wholesale, so every mode
// except all is escalated to changed before per-file decisions begin.
func (p *Planner) effectiveMode(opts domain.Options, store ports.CacheStore) domain.Mode {
	if opts.Mode == domain.ModeAll {
		return opts.Mode
	}
	prev := store.Config()
	if prev == nil || *prev != opts.Config {
		p.logger.Info("build parameters changed since last run, forcing mode=changed (config " + p.hasher.ConfigFingerprint(opts.Config) + ")")
		return domain.ModeChanged
	}
	return opts.Mode
}

// process loads, transforms, and persists one candidate, then updates its
// cache entry with a freshly computed digest and the active config snapshot.
func (p *Planner) process(ctx context.Context, c domain.Candidate, opts domain.Options, store ports.CacheStore) error {
	img, err := p.loader.Load(ctx, c.AbsPath, opts.Config.SVGEngine)
	if err != nil {
		return err
	}

	picon := p.transformer.Fit(img, opts.Config.FrameWidth, opts.Config.FrameHeight, opts.Config.AllowUpscale)

	if err := p.encoder.EncodePNG(c.OutPath, picon); err != nil {
		return err
	}

	digest, err := p.hasher.ContentDigest(c.AbsPath)
	if err != nil {
		return err
	}
	store.Put(c.RelPath, domain.CacheEntry{SrcSHA1: digest, Config: opts.Config})
	return nil
}

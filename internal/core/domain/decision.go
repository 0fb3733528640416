package domain

// Action is the outcome of the per-candidate build decision.
type Action string

const (
	// ActionBuild means the candidate will be processed.
	ActionBuild Action = "BUILD"
	// ActionSkip means the cached output is current.
	ActionSkip Action = "SKIP"
)

// Reason explains a build decision.
type Reason string

const (
	// ReasonForcedAll marks an unconditional rebuild under ModeAll.
	ReasonForcedAll Reason = "forced-all"
	// ReasonNew marks a source with no cache entry.
	ReasonNew Reason = "new"
	// ReasonConfigChanged marks a cache entry built under different parameters.
	ReasonConfigChanged Reason = "config-changed"
	// ReasonMissingOutput marks an absent output file.
	ReasonMissingOutput Reason = "missing-output"
	// ReasonContentChanged marks a source whose digest differs from the cache.
	ReasonContentChanged Reason = "content-changed"
	// ReasonCachedCurrent marks a source whose cached output is up to date.
	ReasonCachedCurrent Reason = "cached-current"
)

// BuildDecision is the transient verdict for one candidate.
type BuildDecision struct {
	Action Action
	Reason Reason
}

// Summary tallies the outcomes of one run.
type Summary struct {
	Eligible int
	Built    int
	Skipped  int
	Failed   int
	Mode     Mode
}

package ports

import "go.trai.ch/picon/internal/core/domain"

// Reporter presents per-candidate outcomes and the final tally to the user.
//
//go:generate go run go.uber.org/mock/mockgen -source=reporter.go -destination=mocks/mock_reporter.go -package=mocks
type Reporter interface {
	Build(c domain.Candidate, reason domain.Reason)
	Skip(c domain.Candidate)
	Fail(c domain.Candidate, err error)
	Summary(s domain.Summary, opts domain.Options)
}

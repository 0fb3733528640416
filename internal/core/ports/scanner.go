package ports

import (
	"iter"

	"go.trai.ch/picon/internal/core/domain"
)

// Scanner enumerates build candidates under the input root after applying
// all filters. Traversal order is filesystem-dependent; candidates are
// independent and no ordering is guaranteed.
//
//go:generate go run go.uber.org/mock/mockgen -source=scanner.go -destination=mocks/mock_scanner.go -package=mocks
type Scanner interface {
	Scan(opts domain.Options) iter.Seq[domain.Candidate]
}

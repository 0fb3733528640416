package ports

import "go.trai.ch/picon/internal/core/domain"

// ConfigLoader reads an optional profile file with default option values.
// A missing profile is not an error; it yields an empty profile.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	Load(path string) (domain.Profile, error)
}

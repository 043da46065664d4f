package ports

import "go.trai.ch/binit/internal/core/domain"

// ConfigLoader loads the user configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given path. A missing file yields
	// the defaults; a malformed file is an error.
	Load(path string) (domain.Config, error)
}

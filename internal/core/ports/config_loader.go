package ports

import "github.com/lineagetools/taxlin/internal/core/domain"

// ConfigLoader defines the interface for loading the runtime configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration file at the given path. A missing file
	// is not an error: the documented defaults are returned instead.
	Load(path string) (domain.Config, error)
}

package ports

import "go.trai.ch/catsync/internal/core/domain"

// ConfigLoader defines the interface for loading the catsync configuration.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given working directory.
	// Defaults are returned when no configuration file exists.
	Load(cwd string) (*domain.Config, error)
}

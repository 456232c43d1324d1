package ports

import "go.trai.ch/fanout/internal/core/domain"

// ConfigLoader defines the interface for loading the repository settings.
type ConfigLoader interface {
	// Load reads the settings from the given working directory.
	Load(cwd string) (*domain.Settings, error)
}

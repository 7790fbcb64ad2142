package ports

import "go.trai.ch/fractal/internal/core/domain"

// ConfigLoader defines the interface for loading a parameter record.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the parameter file at path, filling unset fields with defaults.
	// A missing file yields the defaults.
	Load(path string) (domain.Params, error)
}

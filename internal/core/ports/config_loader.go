package ports

import "github.com/intronix/buildroot-imx/internal/core/domain"

// ConfigLoader defines the interface for loading settings.
//
//go:generate mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load returns the settings for the Buildroot tree in cwd.
	Load(cwd string) (*domain.Settings, error)
}

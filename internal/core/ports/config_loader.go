package ports

import "go.trai.ch/stitch/internal/core/domain"

// ConfigLoader resolves the layered build configuration for a project root.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the configuration from the given project root.
	Load(root string) (*domain.Config, error)
}

// AddonDiscoverer finds the addons participating in a build.
type AddonDiscoverer interface {
	// Discover returns the addons declared under the project root, in
	// stable declaration order. environment scopes addons that restrict
	// themselves to specific environments.
	Discover(root, environment string) ([]Addon, error)
}

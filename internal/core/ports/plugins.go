package ports

import "go.trai.ch/stitch/internal/core/domain"

// Plugin is one registered preprocessor for a tree kind.
type Plugin interface {
	// Name identifies the plugin in diagnostics.
	Name() string
	// Extensions lists the file extensions (without dot) the plugin handles.
	Extensions() []string
	// DefaultForType reports whether the plugin is the kind's default
	// compiler. At most one plugin per kind may claim this.
	DefaultForType(kind domain.TreeKind) bool
	// Process derives the compiled tree.
	Process(tree domain.Tree) (domain.Tree, error)
}

// PluginRegistry is the shared registry of preprocessor plugins consumed
// by the composition engine.
//
//go:generate go run go.uber.org/mock/mockgen -source=plugins.go -destination=mocks/mock_plugins.go -package=mocks
type PluginRegistry interface {
	// Load returns the plugins registered for a kind, in registration order.
	Load(kind domain.TreeKind) []Plugin
	// ExtensionsForType returns the union of extensions handled for a kind.
	ExtensionsForType(kind domain.TreeKind) []string
	// DefaultForType returns the kind's default plugin, nil when none is
	// registered, or domain.ErrDuplicateDefaultPlugin naming both plugins
	// when two claim default status.
	DefaultForType(kind domain.TreeKind) (Plugin, error)
}

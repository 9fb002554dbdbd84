// Package plugins implements the shared preprocessor plugin registry.
package plugins

import (
	"slices"
	"sync"

	"go.trai.ch/stitch/internal/core/domain"
	"go.trai.ch/stitch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Registry implements ports.PluginRegistry. Plugins are kept in
// registration order per kind.
type Registry struct {
	mu      sync.RWMutex
	plugins map[domain.TreeKind][]ports.Plugin
}

// NewRegistry creates an empty plugin registry.
func NewRegistry() *Registry {
	return &Registry{
		plugins: make(map[domain.TreeKind][]ports.Plugin),
	}
}

// Register adds a plugin for a kind.
func (r *Registry) Register(kind domain.TreeKind, p ports.Plugin) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.plugins[kind] = append(r.plugins[kind], p)
}

// Load returns the plugins registered for a kind, in registration order.
func (r *Registry) Load(kind domain.TreeKind) []ports.Plugin {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.plugins[kind])
}

// ExtensionsForType returns the union of extensions handled for a kind,
// in plugin registration order, deduplicated.
func (r *Registry) ExtensionsForType(kind domain.TreeKind) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []string
	for _, p := range r.plugins[kind] {
		for _, ext := range p.Extensions() {
			if !slices.Contains(out, ext) {
				out = append(out, ext)
			}
		}
	}
	return out
}

// DefaultForType returns the kind's default plugin, or nil when none is
// registered. Two plugins claiming default status for the same kind is a
// configuration error naming both.
func (r *Registry) DefaultForType(kind domain.TreeKind) (ports.Plugin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var found ports.Plugin
	for _, p := range r.plugins[kind] {
		if !p.DefaultForType(kind) {
			continue
		}
		if found != nil {
			err := zerr.With(domain.ErrDuplicateDefaultPlugin, "type", string(kind))
			err = zerr.With(err, "first", found.Name())
			return nil, zerr.With(err, "second", p.Name())
		}
		found = p
	}
	return found, nil
}

// Passthrough is a plugin that returns its input tree unchanged. It
// stands in for real compilers, which are external collaborators.
type Passthrough struct {
	PluginName string
	Exts       []string
	Kinds      []domain.TreeKind
	Default    bool
}

// Name implements ports.Plugin.
func (p *Passthrough) Name() string { return p.PluginName }

// Extensions implements ports.Plugin.
func (p *Passthrough) Extensions() []string { return p.Exts }

// DefaultForType implements ports.Plugin.
func (p *Passthrough) DefaultForType(kind domain.TreeKind) bool {
	return p.Default && slices.Contains(p.Kinds, kind)
}

// Process implements ports.Plugin.
func (p *Passthrough) Process(tree domain.Tree) (domain.Tree, error) {
	return tree, nil
}

// NewDefaultRegistry registers the passthrough defaults for the built-in
// pipelines.
func NewDefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(domain.KindApp, &Passthrough{
		PluginName: "module-passthrough",
		Exts:       []string{"js", "mjs", "cjs"},
		Kinds:      []domain.TreeKind{domain.KindApp},
		Default:    true,
	})
	r.Register(domain.KindTemplates, &Passthrough{
		PluginName: "template-passthrough",
		Exts:       []string{"hbs", "html"},
		Kinds:      []domain.TreeKind{domain.KindTemplates},
		Default:    true,
	})
	r.Register(domain.KindStyles, &Passthrough{
		PluginName: "style-passthrough",
		Exts:       []string{"css"},
		Kinds:      []domain.TreeKind{domain.KindStyles},
		Default:    true,
	})
	return r
}

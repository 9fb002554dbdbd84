package plugins

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/core/ports"
)

const NodeID graft.ID = "adapter.plugin_registry"

func init() {
	graft.Register(graft.Node[ports.PluginRegistry]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (ports.PluginRegistry, error) {
			return NewDefaultRegistry(), nil
		},
	})
}

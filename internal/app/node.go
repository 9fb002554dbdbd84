package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/config"
	"go.trai.ch/stitch/internal/adapters/fs"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/adapters/plugins"
	"go.trai.ch/stitch/internal/adapters/telemetry/progrock"
	"go.trai.ch/stitch/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.DiscovererNodeID,
			plugins.NodeID,
			fs.MaterializerNodeID,
			progrock.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			application, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: application, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}
	discoverer, err := graft.Dep[ports.AddonDiscoverer](ctx)
	if err != nil {
		return nil, err
	}
	registry, err := graft.Dep[ports.PluginRegistry](ctx)
	if err != nil {
		return nil, err
	}
	materializer, err := graft.Dep[ports.TreeMaterializer](ctx)
	if err != nil {
		return nil, err
	}
	telemetry, err := graft.Dep[ports.Telemetry](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}
	return New(loader, discoverer, registry, materializer, telemetry, log), nil
}

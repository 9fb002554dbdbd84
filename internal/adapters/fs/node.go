package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/stitch/internal/adapters/logger"
	"go.trai.ch/stitch/internal/core/ports"
)

const (
	WalkerNodeID       graft.ID = "adapter.fs.walker"
	HasherNodeID       graft.ID = "adapter.fs.hasher"
	MaterializerNodeID graft.ID = "adapter.fs.materializer"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[*Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(ctx context.Context) (*Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.TreeMaterializer]{
		ID:        MaterializerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID, HasherNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.TreeMaterializer, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[*Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewMaterializer(walker, hasher, log), nil
		},
	})
}

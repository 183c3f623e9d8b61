package indexer

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/assetdb" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/core/domain"
)

// NodeID is the unique identifier for the sub-resource indexer Graft node.
const NodeID graft.ID = "engine.indexer"

func init() {
	graft.Register(graft.Node[*Indexer]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{assetdb.NodeID, config.ConfigNodeID},
		Run: func(ctx context.Context) (*Indexer, error) {
			db, err := graft.Dep[*assetdb.Database](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return New(db, cfg.Indexer), nil
		},
	})
}

package catalogbuild

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/assetdb"            //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/engine/indexer"
)

// NodeID is the unique identifier for the catalog builder Graft node.
const NodeID graft.ID = "engine.catalogbuild"

func init() {
	graft.Register(graft.Node[*Builder]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			assetdb.NodeID,
			indexer.NodeID,
			cas.PublisherNodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: func(ctx context.Context) (*Builder, error) {
			db, err := graft.Dep[*assetdb.Database](ctx)
			if err != nil {
				return nil, err
			}
			idx, err := graft.Dep[*indexer.Indexer](ctx)
			if err != nil {
				return nil, err
			}
			writer, err := graft.Dep[ports.ArtifactWriter](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			telemetry, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}
			return New(db, idx, writer, log, telemetry), nil
		},
	})
}

package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/assetdb" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/config"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/remote"  //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/engine/catalogbuild"
	"go.trai.ch/zerr"
)

// NodeID is the unique identifier for the resource loader Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[ports.ResourceLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			assetdb.NodeID,
			assetdb.DecoderNodeID,
			remote.ClientNodeID,
			catalogbuild.NodeID,
		},
		Run: func(ctx context.Context) (ports.ResourceLoader, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			decoder, err := graft.Dep[ports.ContainerDecoder](ctx)
			if err != nil {
				return nil, err
			}

			switch cfg.Loader {
			case domain.LoaderModeSync:
				db, err := graft.Dep[*assetdb.Database](ctx)
				if err != nil {
					return nil, err
				}
				builder, err := graft.Dep[*catalogbuild.Builder](ctx)
				if err != nil {
					return nil, err
				}
				entries, err := builder.Entries(ctx, cfg.Build)
				if err != nil {
					return nil, err
				}
				registry := NewRegistry(NewAssetProvider(db, decoder), IndirectProvider{})
				return NewSynchronousLocalLoader(NewStaticLocator(entries), registry), nil
			case domain.LoaderModeAsync, "":
				client, err := graft.Dep[*remote.Client](ctx)
				if err != nil {
					return nil, err
				}
				registry := NewRegistry(NewAssetProvider(client, decoder), IndirectProvider{})
				return NewAsynchronousCatalogLoader(client, registry), nil
			default:
				return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown loader mode"), "mode", string(cfg.Loader))
			}
		},
	})
}

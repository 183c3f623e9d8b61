package assetdb

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/config"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the asset database Graft node.
	NodeID graft.ID = "adapter.assetdb"
	// DecoderNodeID is the unique identifier for the container decoder Graft node.
	DecoderNodeID graft.ID = "adapter.assetdb.decoder"
)

func init() {
	graft.Register(graft.Node[ports.ContainerDecoder]{
		ID:        DecoderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ContainerDecoder, error) {
			return ManifestDecoder{}, nil
		},
	})

	graft.Register(graft.Node[*Database]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, fs.WalkerNodeID, DecoderNodeID},
		Run: func(ctx context.Context) (*Database, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			decoder, err := graft.Dep[ports.ContainerDecoder](ctx)
			if err != nil {
				return nil, err
			}
			return New(cfg.Build.ProjectRoot, walker, decoder), nil
		},
	})
}

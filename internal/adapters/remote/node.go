package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/cas"
	"go.trai.ch/catsync/internal/adapters/config"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/adapters/logger"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

const (
	// ClientNodeID is the unique identifier for the remote client Graft node.
	ClientNodeID graft.ID = "adapter.remote.client"
	// NodeID is the unique identifier for the remote catalog Graft node.
	NodeID graft.ID = "adapter.remote"
)

func init() {
	graft.Register(graft.Node[*Client]{
		ID:        ClientNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			cas.BundleStoreNodeID,
			fs.HasherNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Client, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			bundles, err := graft.Dep[ports.BundleStore](ctx)
			if err != nil {
				return nil, err
			}
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return New(OptionsFromConfig(cfg), bundles, hasher, log), nil
		},
	})

	graft.Register(graft.Node[ports.RemoteCatalog]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{ClientNodeID},
		Run: func(ctx context.Context) (ports.RemoteCatalog, error) {
			client, err := graft.Dep[*Client](ctx)
			if err != nil {
				return nil, err
			}
			return client, nil
		},
	})
}

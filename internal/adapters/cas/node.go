package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/config"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/adapters/logger"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the catalog cache store Graft node.
	NodeID graft.ID = "adapter.catalog_cache_store"
	// BundleStoreNodeID is the unique identifier for the bundle store Graft node.
	BundleStoreNodeID graft.ID = "adapter.bundle_store"
	// PublisherNodeID is the unique identifier for the artifact writer Graft node.
	PublisherNodeID graft.ID = "adapter.artifact_writer"
)

func init() {
	graft.Register(graft.Node[ports.CatalogCacheStore]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID, fs.WalkerNodeID, logger.NodeID},
		Run: func(ctx context.Context) (ports.CatalogCacheStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			walker, err := graft.Dep[*fs.Walker](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.CacheRoot, walker, log), nil
		},
	})

	graft.Register(graft.Node[ports.BundleStore]{
		ID:        BundleStoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.ConfigNodeID},
		Run: func(ctx context.Context) (ports.BundleStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewBundleStore(cfg.CacheRoot), nil
		},
	})

	graft.Register(graft.Node[ports.ArtifactWriter]{
		ID:        PublisherNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{fs.HasherNodeID},
		Run: func(ctx context.Context) (ports.ArtifactWriter, error) {
			hasher, err := graft.Dep[ports.Hasher](ctx)
			if err != nil {
				return nil, err
			}
			return NewPublisher(hasher), nil
		},
	})
}

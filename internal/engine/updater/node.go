package updater

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/cas"                //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/config"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/logger"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/remote"             //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

const (
	// EstimatorNodeID is the unique identifier for the size estimator Graft node.
	EstimatorNodeID graft.ID = "engine.updater.estimator"
	// CheckerNodeID is the unique identifier for the diff checker Graft node.
	CheckerNodeID graft.ID = "engine.updater.checker"
	// SessionNodeID is the unique identifier for the download session Graft node.
	SessionNodeID graft.ID = "engine.updater.session"
)

func init() {
	graft.Register(graft.Node[*Estimator]{
		ID:        EstimatorNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{remote.NodeID},
		Run: func(ctx context.Context) (*Estimator, error) {
			rc, err := graft.Dep[ports.RemoteCatalog](ctx)
			if err != nil {
				return nil, err
			}
			return NewEstimator(rc), nil
		},
	})

	graft.Register(graft.Node[*Checker]{
		ID:        CheckerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			remote.NodeID,
			cas.NodeID,
			EstimatorNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (*Checker, error) {
			rc, err := graft.Dep[ports.RemoteCatalog](ctx)
			if err != nil {
				return nil, err
			}
			store, err := graft.Dep[ports.CatalogCacheStore](ctx)
			if err != nil {
				return nil, err
			}
			estimator, err := graft.Dep[*Estimator](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewChecker(rc, store, estimator, log), nil
		},
	})

	graft.Register(graft.Node[*Session]{
		ID:        SessionNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			remote.NodeID,
			logger.NodeID,
			progrock.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Session, error) {
			rc, err := graft.Dep[ports.RemoteCatalog](ctx)
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
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewSession(rc, log, telemetry, cfg.Download.TickInterval), nil
		},
	})
}

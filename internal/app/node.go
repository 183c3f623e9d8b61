package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/catsync/internal/adapters/cas"                //nolint:depguard // Wired in app layer
	"go.trai.ch/catsync/internal/adapters/config"             //nolint:depguard // Wired in app layer
	"go.trai.ch/catsync/internal/adapters/logger"             //nolint:depguard // Wired in app layer
	"go.trai.ch/catsync/internal/adapters/remote"             //nolint:depguard // Wired in app layer
	"go.trai.ch/catsync/internal/adapters/telemetry/progrock" //nolint:depguard // Wired in app layer
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/engine/catalogbuild"
	"go.trai.ch/catsync/internal/engine/resolver"
	"go.trai.ch/catsync/internal/engine/updater"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components holds everything the CLI needs.
type Components struct {
	App    *App
	Logger ports.Logger
	Config *domain.Config
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.ConfigNodeID,
			remote.NodeID,
			cas.NodeID,
			updater.CheckerNodeID,
			updater.SessionNodeID,
			catalogbuild.NodeID,
			resolver.NodeID,
			logger.NodeID,
			progrock.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.ConfigNodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			a, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: a, Logger: log, Config: cfg}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	rc, err := graft.Dep[ports.RemoteCatalog](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.CatalogCacheStore](ctx)
	if err != nil {
		return nil, err
	}
	checker, err := graft.Dep[*updater.Checker](ctx)
	if err != nil {
		return nil, err
	}
	session, err := graft.Dep[*updater.Session](ctx)
	if err != nil {
		return nil, err
	}
	builder, err := graft.Dep[*catalogbuild.Builder](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.ResourceLoader](ctx)
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
	return New(cfg, rc, store, checker, session, builder, loader, log, telemetry), nil
}

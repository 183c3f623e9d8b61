// Package app implements the application layer for catsync.
package app

import (
	"context"
	"errors"
	"fmt"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/engine/catalogbuild"
	"go.trai.ch/catsync/internal/engine/updater"
)

// App ties the update flow, the catalog build and resource loading together.
type App struct {
	cfg       *domain.Config
	remote    ports.RemoteCatalog
	store     ports.CatalogCacheStore
	checker   *updater.Checker
	session   *updater.Session
	builder   *catalogbuild.Builder
	loader    ports.ResourceLoader
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a new App instance.
func New(
	cfg *domain.Config,
	remote ports.RemoteCatalog,
	store ports.CatalogCacheStore,
	checker *updater.Checker,
	session *updater.Session,
	builder *catalogbuild.Builder,
	loader ports.ResourceLoader,
	log ports.Logger,
	telemetry ports.Telemetry,
) *App {
	return &App{
		cfg:       cfg,
		remote:    remote,
		store:     store,
		checker:   checker,
		session:   session,
		builder:   builder,
		loader:    loader,
		logger:    log,
		telemetry: telemetry,
	}
}

// Config returns the resolved configuration.
func (a *App) Config() *domain.Config {
	return a.cfg
}

// CheckForUpdate runs one diff check against the remote catalogs.
func (a *App) CheckForUpdate(ctx context.Context) (domain.UpdateInfo, error) {
	info, err := a.checker.CheckForUpdate(ctx)
	if err != nil {
		return domain.UpdateInfo{}, err
	}
	if info.NeedUpdate {
		a.logger.Info(fmt.Sprintf("update available: %s", domain.FormatSize(info.DownloadSizeBytes)))
	}
	return info, nil
}

// StartDownload downloads everything the most recent check made reachable.
// It returns false while another download is running.
func (a *App) StartDownload(ctx context.Context, onProgress updater.ProgressFunc) bool {
	return a.session.Start(ctx, a.checker.PendingKeys(), onProgress)
}

// CancelDownload aborts the running download.
func (a *App) CancelDownload() bool {
	return a.session.Cancel()
}

// WaitDownload blocks until the running download finished.
func (a *App) WaitDownload() {
	a.session.Wait()
}

// DownloadState returns whether a download is running.
func (a *App) DownloadState() domain.SessionStatus {
	return a.session.Status()
}

// Purge deletes every cached catalog artifact and returns the deleted paths.
func (a *App) Purge() ([]string, error) {
	deleted, err := a.store.Purge()
	if err != nil {
		return deleted, err
	}
	a.logger.Info(fmt.Sprintf("purged %d cached catalog file(s)", len(deleted)))
	return deleted, nil
}

// Build publishes the project's catalog and bundles into the output directory.
func (a *App) Build(ctx context.Context) (*catalogbuild.Result, error) {
	result, err := a.builder.Build(ctx, a.cfg.Build)
	if err != nil {
		return nil, err
	}
	a.logger.Info(fmt.Sprintf("built catalog %s with %d entries and %d bundle(s) in %s",
		result.Catalog.ID, len(result.Catalog.Entries), len(result.Catalog.Bundles), result.OutputDir))
	return result, nil
}

// Load resolves key through the configured resource loader.
func (a *App) Load(ctx context.Context, key string) (any, error) {
	if a.cfg.Loader != domain.LoaderModeSync {
		if err := a.remote.Initialize(ctx); err != nil {
			return nil, errors.Join(domain.ErrInitializationFailed, err)
		}
	}
	return a.loader.Load(ctx, key)
}

// Close waits for a running download and flushes telemetry.
func (a *App) Close() error {
	a.session.Wait()
	return a.telemetry.Close()
}

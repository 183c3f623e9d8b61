// Package updater implements the catalog update flow: diff checking, size
// estimation and the download session.
package updater

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

// Checker decides whether any remote catalog changed and how much content
// the change requires. Checks are serialized.
type Checker struct {
	remote    ports.RemoteCatalog
	store     ports.CatalogCacheStore
	estimator *Estimator
	logger    ports.Logger

	mu      sync.Mutex
	pending []string
}

// NewChecker creates a Checker.
func NewChecker(
	remote ports.RemoteCatalog,
	store ports.CatalogCacheStore,
	estimator *Estimator,
	log ports.Logger,
) *Checker {
	return &Checker{
		remote:    remote,
		store:     store,
		estimator: estimator,
		logger:    log,
	}
}

// CheckForUpdate compares the remote catalogs with the applied ones. Changed
// ids are persisted and applied; with no change the previously cached ids are
// applied instead. The keys they reach become the pending key set.
func (c *Checker) CheckForUpdate(ctx context.Context) (domain.UpdateInfo, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.remote.Initialize(ctx); err != nil {
		return domain.UpdateInfo{}, errors.Join(domain.ErrInitializationFailed, err)
	}

	ids, err := c.remote.CheckForCatalogUpdates(ctx)
	if err != nil {
		return domain.UpdateInfo{}, err
	}

	var locators []domain.ResourceLocator
	if len(ids) == 0 {
		locators, err = c.applyCached(ctx)
	} else {
		if err := c.store.Save(ids); err != nil {
			c.logger.Error(err)
		}
		c.logger.Info(fmt.Sprintf("%d catalog(s) changed", len(ids)))
		locators, err = c.remote.UpdateCatalogs(ctx, ids)
	}
	if err != nil {
		return domain.UpdateInfo{}, err
	}
	if len(locators) == 0 {
		c.pending = nil
		return domain.UpdateInfo{}, nil
	}
	keys := domain.MergeKeys(locators)
	c.pending = keys

	size, err := c.estimator.Estimate(ctx, keys)
	if err != nil {
		return domain.UpdateInfo{}, err
	}

	return domain.UpdateInfo{NeedUpdate: size > 0, DownloadSizeBytes: size}, nil
}

// applyCached applies the persisted id list. Ids the remote no longer tracks
// are dropped with a warning and the pruned list is saved back.
func (c *Checker) applyCached(ctx context.Context) ([]domain.ResourceLocator, error) {
	ids := c.cachedIDs()
	if len(ids) == 0 {
		return nil, nil
	}

	locators, err := c.remote.UpdateCatalogs(ctx, ids)
	if err == nil || !errors.Is(err, domain.ErrCatalogNotConfigured) {
		return locators, err
	}

	locators = nil
	kept := make([]domain.CatalogID, 0, len(ids))
	for _, id := range ids {
		located, err := c.remote.UpdateCatalogs(ctx, []domain.CatalogID{id})
		if errors.Is(err, domain.ErrCatalogNotConfigured) {
			c.logger.Warn(fmt.Sprintf("cached catalog %s is no longer configured, skipped", id))
			continue
		}
		if err != nil {
			return nil, err
		}
		kept = append(kept, id)
		locators = append(locators, located...)
	}

	if err := c.store.Save(kept); err != nil {
		c.logger.Error(err)
	}
	return locators, nil
}

// cachedIDs loads the persisted id list. Unreadable caches count as absent.
func (c *Checker) cachedIDs() []domain.CatalogID {
	ids, err := c.store.Load()
	if err != nil {
		c.logger.Error(err)
		return nil
	}
	return ids
}

// PendingKeys returns the keys reached by the most recent check.
func (c *Checker) PendingKeys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.pending)
}

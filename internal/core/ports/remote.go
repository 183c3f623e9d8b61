package ports

import (
	"context"

	"go.trai.ch/catsync/internal/core/domain"
)

//go:generate mockgen -source=remote.go -destination=mocks/mock_remote.go -package=mocks

// RemoteCatalog is the remote catalog subsystem: it tracks versioned catalogs
// and transfers the bundles they declare.
type RemoteCatalog interface {
	// Initialize loads the locally cached catalogs. It is idempotent.
	Initialize(ctx context.Context) error

	// CheckForCatalogUpdates returns the catalogs whose remote hash differs
	// from the loaded one.
	CheckForCatalogUpdates(ctx context.Context) ([]domain.CatalogID, error)

	// UpdateCatalogs applies the named catalogs and returns the keys each makes reachable.
	UpdateCatalogs(ctx context.Context, ids []domain.CatalogID) ([]domain.ResourceLocator, error)

	// GetDownloadSize returns the byte size of content reachable from keys
	// that is not yet stored locally.
	GetDownloadSize(ctx context.Context, keys []string) (int64, error)

	// DownloadDependencies starts transferring the content reachable from keys.
	// The transfer stops when ctx is cancelled.
	DownloadDependencies(ctx context.Context, keys []string, mode domain.MergeMode) (TransferHandle, error)

	// GetDownloadStatus samples the cumulative byte counters of a transfer.
	GetDownloadStatus(handle TransferHandle) domain.DownloadStatus

	// Release forgets a finished transfer.
	Release(handle TransferHandle)
}

// TransferHandle is an opaque in-flight transfer.
type TransferHandle interface {
	// ID uniquely identifies the transfer.
	ID() string

	// Done is closed once the transfer finished or failed.
	Done() <-chan struct{}

	// Err returns the failure cause once Done is closed.
	Err() error

	// Bundles lists the bundles fetched by the transfer.
	Bundles() []domain.DownloadedBundle
}

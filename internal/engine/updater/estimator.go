package updater

import (
	"context"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Estimator computes how many bytes a key set still needs to download.
type Estimator struct {
	remote ports.RemoteCatalog
}

// NewEstimator creates an Estimator querying remote.
func NewEstimator(remote ports.RemoteCatalog) *Estimator {
	return &Estimator{remote: remote}
}

// Estimate returns the undownloaded size of the deduplicated key set.
// An empty set is 0 without asking the remote.
func (e *Estimator) Estimate(ctx context.Context, keys []string) (int64, error) {
	keys = domain.UniqueKeys(keys)
	if len(keys) == 0 {
		return 0, nil
	}

	size, err := e.remote.GetDownloadSize(ctx, keys)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrSizeQueryFailed.Error()), "keys", len(keys))
	}
	return max(size, 0), nil
}

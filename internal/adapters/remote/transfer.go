package remote

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.TransferHandle = (*transfer)(nil)

// transfer tracks one DownloadDependencies call.
type transfer struct {
	id         string
	total      int64
	downloaded atomic.Int64
	done       chan struct{}

	mu      sync.Mutex
	err     error
	fetched []domain.DownloadedBundle
}

func newTransfer(total int64) *transfer {
	return &transfer{
		id:    uuid.NewString(),
		total: total,
		done:  make(chan struct{}),
	}
}

// ID returns the unique transfer id.
func (t *transfer) ID() string {
	return t.id
}

// Done is closed once every bundle finished or the transfer failed.
func (t *transfer) Done() <-chan struct{} {
	return t.done
}

// Err returns the transfer error once Done is closed.
func (t *transfer) Err() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.err
}

// Bundles returns the bundles fetched so far.
func (t *transfer) Bundles() []domain.DownloadedBundle {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]domain.DownloadedBundle, len(t.fetched))
	copy(out, t.fetched)
	return out
}

func (t *transfer) isDone() bool {
	select {
	case <-t.done:
		return true
	default:
		return false
	}
}

func (t *transfer) record(b domain.DownloadedBundle) {
	t.mu.Lock()
	t.fetched = append(t.fetched, b)
	t.mu.Unlock()
}

func (t *transfer) finish(err error) {
	t.mu.Lock()
	t.err = err
	t.mu.Unlock()
	if err == nil {
		t.downloaded.Store(t.total)
	}
	close(t.done)
}

// countingReader adds every byte read to a shared counter.
type countingReader struct {
	r io.Reader
	n *atomic.Int64
}

func (c *countingReader) Read(p []byte) (int, error) {
	n, err := c.r.Read(p)
	c.n.Add(int64(n))
	return n, err
}

// GetDownloadSize sums the declared size of every bundle reachable from keys
// that is not in the bundle store yet.
func (c *Client) GetDownloadSize(_ context.Context, keys []string) (int64, error) {
	if err := c.requireInitialized(); err != nil {
		return 0, zerr.Wrap(err, domain.ErrSizeQueryFailed.Error())
	}

	var size int64
	for _, b := range c.missingBundles(keys) {
		size += b.Size
	}
	return size, nil
}

// DownloadDependencies starts fetching every missing bundle reachable from
// keys. The returned handle completes when all bundles are stored or the
// first one fails; cancelling ctx aborts the transfer.
func (c *Client) DownloadDependencies(
	ctx context.Context,
	keys []string,
	mode domain.MergeMode,
) (ports.TransferHandle, error) {
	if err := c.requireInitialized(); err != nil {
		return nil, err
	}
	if mode != domain.MergeModeUnion {
		return nil, zerr.With(zerr.Wrap(domain.ErrTransferFailed, "unsupported merge mode"), "mode", mode.String())
	}

	bundles := c.missingBundles(keys)
	var total int64
	for _, b := range bundles {
		total += b.Size
	}

	t := newTransfer(total)
	c.transfersMu.Lock()
	c.transfers[t.id] = t
	c.transfersMu.Unlock()

	go func() {
		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(c.opts.Parallelism)
		for _, b := range bundles {
			g.Go(func() error {
				return c.fetchBundle(gctx, t, b)
			})
		}
		t.finish(g.Wait())
	}()

	return t, nil
}

func (c *Client) fetchBundle(ctx context.Context, t *transfer, b domain.Bundle) error {
	body, err := c.open(ctx, domain.BundleDirName+"/"+domain.BundleFileName(b.Name))
	if err != nil {
		return zerr.With(err, "bundle", b.Name)
	}
	defer body.Close() //nolint:errcheck // Read-only response body

	n, err := c.bundles.Write(b, &countingReader{r: body, n: &t.downloaded})
	if err != nil {
		return err
	}

	assets := b.Assets
	if len(assets) == 0 {
		if listed, err := c.bundles.Assets(b); err == nil {
			assets = listed
		}
	}
	t.record(domain.DownloadedBundle{Name: b.Name, Size: n, Assets: assets})
	c.logger.Info(fmt.Sprintf("fetched bundle %s (%s)", b.Name, domain.FormatSize(n)))
	return nil
}

// GetDownloadStatus returns a snapshot of the transfer behind handle.
// Released or unknown handles report a finished, empty transfer.
func (c *Client) GetDownloadStatus(handle ports.TransferHandle) domain.DownloadStatus {
	c.transfersMu.Lock()
	t, ok := c.transfers[handle.ID()]
	c.transfersMu.Unlock()
	if !ok {
		return domain.NewDownloadStatus(0, 0, true)
	}

	done := t.isDone()
	status := domain.NewDownloadStatus(t.downloaded.Load(), t.total, done)
	if done {
		status.Err = t.Err()
	}
	return status
}

// Release forgets the transfer behind handle.
func (c *Client) Release(handle ports.TransferHandle) {
	c.transfersMu.Lock()
	delete(c.transfers, handle.ID())
	c.transfersMu.Unlock()
}

// missingBundles resolves keys transitively through their dependencies and
// returns every reachable bundle that is not stored yet, each once.
func (c *Client) missingBundles(keys []string) []domain.Bundle {
	c.mu.RLock()
	defer c.mu.RUnlock()

	type bundleRef struct {
		catalog domain.CatalogID
		name    string
	}

	var out []domain.Bundle
	seenBundles := make(map[bundleRef]bool)
	seenKeys := make(map[domain.InternedString]bool)

	queue := domain.NewInternedStrings(domain.UniqueKeys(keys))
	for len(queue) > 0 {
		key := queue[0]
		queue = queue[1:]
		if seenKeys[key] {
			continue
		}
		seenKeys[key] = true

		il, ok := c.locations[key]
		if !ok {
			continue
		}
		queue = append(queue, domain.NewInternedStrings(il.loc.Dependencies)...)

		if il.loc.Bundle == "" {
			continue
		}
		ref := bundleRef{catalog: il.catalog, name: il.loc.Bundle}
		if seenBundles[ref] {
			continue
		}
		seenBundles[ref] = true

		b, ok := c.catalogs[il.catalog].Bundle(il.loc.Bundle)
		if !ok || c.bundles.Has(b) {
			continue
		}
		out = append(out, b)
	}
	return out
}

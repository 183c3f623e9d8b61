// Package remote implements the remote catalog subsystem over HTTP(S) and file URLs.
package remote

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"
	"time"

	"go.trai.ch/catsync/internal/adapters/cas"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.RemoteCatalog  = (*Client)(nil)
	_ ports.CatalogLocator = (*Client)(nil)
	_ ports.AssetSource    = (*Client)(nil)
)

// maxCatalogSize bounds catalog and hash downloads.
const maxCatalogSize = 64 << 20

// Options configures a Client.
type Options struct {
	BaseURL     string
	Catalogs    []domain.CatalogID
	CacheRoot   string
	Timeout     time.Duration
	Parallelism int
}

// OptionsFromConfig extracts the client options from the resolved configuration.
func OptionsFromConfig(cfg *domain.Config) Options {
	return Options{
		BaseURL:     cfg.Remote.BaseURL,
		Catalogs:    slices.Clone(cfg.Remote.Catalogs),
		CacheRoot:   cfg.CacheRoot,
		Timeout:     cfg.Remote.Timeout,
		Parallelism: cfg.Remote.Parallelism,
	}
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the HTTP client used for every request.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// indexedLocation is a published location together with the catalog owning it.
type indexedLocation struct {
	loc     domain.ResourceLocation
	catalog domain.CatalogID
}

// Client implements ports.RemoteCatalog. It keeps the applied catalogs in
// memory, mirrors them in the cache root and streams bundles into a
// ports.BundleStore.
type Client struct {
	opts    Options
	http    *http.Client
	bundles ports.BundleStore
	hasher  ports.Hasher
	logger  ports.Logger

	initMu      sync.Mutex
	initialized bool
	base        *url.URL

	mu           sync.RWMutex
	catalogs     map[domain.CatalogID]*domain.Catalog
	hashes       map[domain.CatalogID]string
	remoteHashes map[domain.CatalogID]string
	locations    map[domain.InternedString]indexedLocation

	transfersMu sync.Mutex
	transfers   map[string]*transfer
}

// New creates a Client. Nothing is read until Initialize.
func New(
	opts Options,
	bundles ports.BundleStore,
	hasher ports.Hasher,
	log ports.Logger,
	options ...Option,
) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = domain.DefaultRemoteTimeout
	}
	if opts.Parallelism <= 0 {
		opts.Parallelism = domain.DefaultParallelism
	}

	c := &Client{
		opts:         opts,
		http:         newHTTPClient(opts.Timeout),
		bundles:      bundles,
		hasher:       hasher,
		logger:       log,
		catalogs:     make(map[domain.CatalogID]*domain.Catalog),
		hashes:       make(map[domain.CatalogID]string),
		remoteHashes: make(map[domain.CatalogID]string),
		locations:    make(map[domain.InternedString]indexedLocation),
		transfers:    make(map[string]*transfer),
	}
	for _, o := range options {
		o(c)
	}
	return c
}

func newHTTPClient(timeout time.Duration) *http.Client {
	transport, ok := http.DefaultTransport.(*http.Transport)
	if !ok {
		return &http.Client{}
	}
	transport = transport.Clone()
	transport.ResponseHeaderTimeout = timeout
	transport.RegisterProtocol("file", http.NewFileTransport(http.Dir("/")))
	return &http.Client{Transport: transport}
}

// Initialize prepares the cache root and loads the catalogs cached by a
// previous run. Once it succeeds further calls are no-ops; a failed attempt
// may be retried.
func (c *Client) Initialize(ctx context.Context) error {
	c.initMu.Lock()
	defer c.initMu.Unlock()

	if c.initialized {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	if c.opts.BaseURL == "" {
		return zerr.Wrap(domain.ErrInvalidConfig, "remote base url is not configured")
	}
	base, err := url.Parse(c.opts.BaseURL)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "base_url", c.opts.BaseURL)
	}

	if err := os.MkdirAll(c.opts.CacheRoot, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", c.opts.CacheRoot)
	}

	c.mu.Lock()
	for _, id := range c.opts.Catalogs {
		catalog, hash, ok := c.loadCached(id)
		if !ok {
			continue
		}
		c.catalogs[id] = catalog
		c.hashes[id] = hash
	}
	c.reindexLocked()
	c.mu.Unlock()

	c.base = base
	c.initialized = true
	return nil
}

// loadCached reads the cached document and hash of a catalog. Unusable
// cache entries are logged and ignored.
func (c *Client) loadCached(id domain.CatalogID) (*domain.Catalog, string, bool) {
	jsonPath := filepath.Join(c.opts.CacheRoot, domain.CatalogFileName(id))
	hashPath := filepath.Join(c.opts.CacheRoot, domain.CatalogHashFileName(id))

	data, err := os.ReadFile(jsonPath) //nolint:gosec // path is built from the cache root
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", jsonPath))
		}
		return nil, "", false
	}
	hash, err := os.ReadFile(hashPath) //nolint:gosec // path is built from the cache root
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheReadFailed.Error()), "path", hashPath))
		}
		return nil, "", false
	}

	catalog, err := DecodeCatalog(data)
	if err != nil {
		c.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrCacheParseFailed.Error()), "path", jsonPath))
		return nil, "", false
	}
	return catalog, strings.TrimSpace(string(hash)), true
}

// CheckForCatalogUpdates returns the configured catalogs whose published hash
// differs from the applied one, in configuration order.
func (c *Client) CheckForCatalogUpdates(ctx context.Context) ([]domain.CatalogID, error) {
	if err := c.requireInitialized(); err != nil {
		return nil, err
	}

	var changed []domain.CatalogID
	for _, id := range c.opts.Catalogs {
		remoteHash, err := c.fetchHash(ctx, id)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogCheckFailed.Error()), "catalog", string(id))
		}

		c.mu.Lock()
		c.remoteHashes[id] = remoteHash
		local := c.hashes[id]
		c.mu.Unlock()

		if remoteHash != local {
			changed = append(changed, id)
		}
	}
	return changed, nil
}

// UpdateCatalogs applies the published version of every id and returns the
// keys each catalog makes reachable. Catalogs already at their published hash
// are not downloaded again.
func (c *Client) UpdateCatalogs(ctx context.Context, ids []domain.CatalogID) ([]domain.ResourceLocator, error) {
	if err := c.requireInitialized(); err != nil {
		return nil, err
	}

	locators := make([]domain.ResourceLocator, 0, len(ids))
	for _, id := range ids {
		if !slices.Contains(c.opts.Catalogs, id) {
			return nil, zerr.With(zerr.Wrap(domain.ErrCatalogNotConfigured, "unknown catalog"), "catalog", string(id))
		}

		catalog, err := c.updateCatalog(ctx, id)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrCatalogUpdateFailed.Error()), "catalog", string(id))
		}
		locators = append(locators, domain.ResourceLocator{CatalogID: id, Keys: catalog.Keys()})
	}
	return locators, nil
}

func (c *Client) updateCatalog(ctx context.Context, id domain.CatalogID) (*domain.Catalog, error) {
	c.mu.RLock()
	remoteHash, known := c.remoteHashes[id]
	current, loaded := c.catalogs[id]
	localHash := c.hashes[id]
	c.mu.RUnlock()

	if !known {
		h, err := c.fetchHash(ctx, id)
		if err != nil {
			return nil, err
		}
		remoteHash = h
	}
	if loaded && remoteHash == localHash {
		return current, nil
	}

	data, err := c.fetch(ctx, domain.CatalogFileName(id))
	if err != nil {
		return nil, err
	}
	if got := c.hasher.HashBytes(data); got != remoteHash {
		err := zerr.With(zerr.Wrap(domain.ErrCatalogHashMismatch, "downloaded catalog differs from its hash"), "expected", remoteHash)
		return nil, zerr.With(err, "actual", got)
	}

	catalog, err := DecodeCatalog(data)
	if err != nil {
		return nil, err
	}
	if catalog.ID != id {
		return nil, zerr.With(zerr.Wrap(domain.ErrCatalogInvalid, "catalog id does not match its file"), "id", string(catalog.ID))
	}

	jsonPath := filepath.Join(c.opts.CacheRoot, domain.CatalogFileName(id))
	if err := cas.WriteFileAtomic(jsonPath, data); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", jsonPath)
	}
	hashPath := filepath.Join(c.opts.CacheRoot, domain.CatalogHashFileName(id))
	if err := cas.WriteFileAtomic(hashPath, []byte(remoteHash)); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheWriteFailed.Error()), "path", hashPath)
	}

	c.mu.Lock()
	c.catalogs[id] = catalog
	c.hashes[id] = remoteHash
	c.remoteHashes[id] = remoteHash
	c.reindexLocked()
	c.mu.Unlock()

	c.logger.Info(fmt.Sprintf("updated catalog %s to version %q (%d entries)", id, catalog.Version, len(catalog.Entries)))
	return catalog, nil
}

// reindexLocked rebuilds the key index. Catalogs earlier in the configured
// order win key collisions.
func (c *Client) reindexLocked() {
	locations := make(map[domain.InternedString]indexedLocation)
	for _, id := range c.opts.Catalogs {
		catalog, ok := c.catalogs[id]
		if !ok {
			continue
		}
		for _, e := range catalog.Entries {
			key := domain.NewInternedString(e.Key)
			if _, taken := locations[key]; taken {
				continue
			}
			locations[key] = indexedLocation{loc: e.Location(), catalog: id}
		}
	}
	c.locations = locations
}

// Locate returns the published location of key.
func (c *Client) Locate(key string) (domain.ResourceLocation, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	il, ok := c.locations[domain.NewInternedString(key)]
	if !ok {
		return domain.ResourceLocation{}, false
	}
	return il.loc, true
}

// ReadAsset reads path out of the downloaded bundle that holds loc.
func (c *Client) ReadAsset(_ context.Context, loc domain.ResourceLocation, path string) ([]byte, error) {
	bundle, err := c.bundleOf(loc)
	if err != nil {
		return nil, err
	}
	return c.bundles.ReadAsset(bundle, path)
}

func (c *Client) bundleOf(loc domain.ResourceLocation) (domain.Bundle, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	il, ok := c.locations[domain.NewInternedString(loc.PrimaryKey)]
	if !ok {
		return domain.Bundle{}, zerr.With(zerr.Wrap(domain.ErrResourceKeyNotFound, "key is not published"), "key", loc.PrimaryKey)
	}
	bundle, ok := c.catalogs[il.catalog].Bundle(loc.Bundle)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrBundleNotFound, "bundle is not declared by its catalog"), "bundle", loc.Bundle)
		return domain.Bundle{}, zerr.With(err, "catalog", string(il.catalog))
	}
	return bundle, nil
}

func (c *Client) requireInitialized() error {
	c.initMu.Lock()
	defer c.initMu.Unlock()
	if !c.initialized {
		return zerr.Wrap(domain.ErrInitializationFailed, "remote catalog is not initialized")
	}
	return nil
}

func (c *Client) fetchHash(ctx context.Context, id domain.CatalogID) (string, error) {
	data, err := c.fetch(ctx, domain.CatalogHashFileName(id))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// fetch downloads a small document relative to the base URL.
func (c *Client) fetch(ctx context.Context, name string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, c.opts.Timeout)
	defer cancel()

	body, err := c.open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer body.Close() //nolint:errcheck // Read-only response body

	data, err := io.ReadAll(io.LimitReader(body, maxCatalogSize))
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "resource", name)
	}
	return data, nil
}

// open issues a GET for name relative to the base URL.
func (c *Client) open(ctx context.Context, name string) (io.ReadCloser, error) {
	target := c.base.JoinPath(name).String()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, http.NoBody)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "url", target)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrRemoteRequestFailed.Error()), "url", target)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		apiErr := zerr.With(zerr.Wrap(domain.ErrRemoteRequestFailed, "unexpected status"), "status_code", resp.StatusCode)
		return nil, zerr.With(apiErr, "url", target)
	}
	return resp.Body, nil
}

package resolver

import (
	"context"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"
)

var (
	_ ports.ResourceLoader = (*SynchronousLocalLoader)(nil)
	_ ports.ResourceLoader = (*AsynchronousCatalogLoader)(nil)
	_ ports.CatalogLocator = StaticLocator(nil)
)

// StaticLocator serves locations from a fixed set of catalog entries.
type StaticLocator map[string]domain.ResourceLocation

// NewStaticLocator indexes entries by key. The first entry for a key wins.
func NewStaticLocator(entries []domain.CatalogEntry) StaticLocator {
	l := make(StaticLocator, len(entries))
	for _, e := range entries {
		if _, ok := l[e.Key]; !ok {
			l[e.Key] = e.Location()
		}
	}
	return l
}

// Locate returns the location published for key.
func (l StaticLocator) Locate(key string) (domain.ResourceLocation, bool) {
	loc, ok := l[key]
	return loc, ok
}

// SynchronousLocalLoader loads straight from the project tree on the caller's
// goroutine. Dependencies load one after another; a dependency shared by
// several locations is loaded once per Load call.
type SynchronousLocalLoader struct {
	locator  ports.CatalogLocator
	registry *Registry
}

// NewSynchronousLocalLoader creates a loader resolving keys with locator.
func NewSynchronousLocalLoader(locator ports.CatalogLocator, registry *Registry) *SynchronousLocalLoader {
	return &SynchronousLocalLoader{locator: locator, registry: registry}
}

// Load resolves key and its dependencies and returns the loaded value.
func (l *SynchronousLocalLoader) Load(ctx context.Context, key string) (any, error) {
	return l.load(ctx, key, nil, make(map[string]any))
}

func (l *SynchronousLocalLoader) load(ctx context.Context, key string, chain []string, loaded map[string]any) (any, error) {
	if v, ok := loaded[key]; ok {
		return v, nil
	}
	if err := checkCycle(key, chain); err != nil {
		return nil, err
	}
	loc, err := locate(l.locator, key)
	if err != nil {
		return nil, err
	}

	chain = append(chain, key)
	deps := make([]any, 0, len(loc.Dependencies))
	for _, dep := range loc.Dependencies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		v, err := l.load(ctx, dep, chain, loaded)
		if err != nil {
			return nil, err
		}
		deps = append(deps, v)
	}

	v, err := provide(ctx, l.registry, loc, deps)
	if err != nil {
		return nil, err
	}
	loaded[key] = v
	return v, nil
}

// AsynchronousCatalogLoader loads from downloaded catalogs. Dependencies load
// concurrently, identical in-flight loads are collapsed and loaded values are
// kept for later calls.
type AsynchronousCatalogLoader struct {
	locator  ports.CatalogLocator
	registry *Registry
	group    singleflight.Group

	mu     sync.RWMutex
	loaded map[string]any
}

// NewAsynchronousCatalogLoader creates a loader resolving keys with locator.
func NewAsynchronousCatalogLoader(locator ports.CatalogLocator, registry *Registry) *AsynchronousCatalogLoader {
	return &AsynchronousCatalogLoader{
		locator:  locator,
		registry: registry,
		loaded:   make(map[string]any),
	}
}

// Load resolves key and its dependencies and returns the loaded value.
// The dependency graph below key is checked for missing keys and cycles
// before any load starts, so concurrent loads never wait on each other in a
// loop. Load returns early with the context error when ctx ends, even while
// a shared load is still running.
func (l *AsynchronousCatalogLoader) Load(ctx context.Context, key string) (any, error) {
	if v, ok := l.cached(key); ok {
		return v, nil
	}
	if err := walk(l.locator, key, nil, make(map[string]bool)); err != nil {
		return nil, err
	}
	return l.load(ctx, key, nil)
}

func (l *AsynchronousCatalogLoader) load(ctx context.Context, key string, chain []string) (any, error) {
	if v, ok := l.cached(key); ok {
		return v, nil
	}
	if err := checkCycle(key, chain); err != nil {
		return nil, err
	}

	ch := l.group.DoChan(key, func() (any, error) {
		if v, ok := l.cached(key); ok {
			return v, nil
		}
		loc, err := locate(l.locator, key)
		if err != nil {
			return nil, err
		}

		next := append(slices.Clone(chain), key)
		deps := make([]any, len(loc.Dependencies))
		g, gctx := errgroup.WithContext(ctx)
		for i, dep := range loc.Dependencies {
			g.Go(func() error {
				v, err := l.load(gctx, dep, next)
				deps[i] = v
				return err
			})
		}
		if err := g.Wait(); err != nil {
			return nil, err
		}

		v, err := provide(ctx, l.registry, loc, deps)
		if err != nil {
			return nil, err
		}
		l.mu.Lock()
		l.loaded[key] = v
		l.mu.Unlock()
		return v, nil
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		return res.Val, res.Err
	}
}

func (l *AsynchronousCatalogLoader) cached(key string) (any, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	v, ok := l.loaded[key]
	return v, ok
}

func locate(locator ports.CatalogLocator, key string) (domain.ResourceLocation, error) {
	loc, ok := locator.Locate(key)
	if !ok {
		return domain.ResourceLocation{}, zerr.With(
			zerr.Wrap(domain.ErrResourceKeyNotFound, "no catalog declares the key"), "key", key)
	}
	return loc, nil
}

func provide(ctx context.Context, registry *Registry, loc domain.ResourceLocation, deps []any) (any, error) {
	p, err := registry.Provider(loc.ProviderID)
	if err != nil {
		return nil, zerr.With(err, "key", loc.PrimaryKey)
	}
	return p.Provide(ctx, ports.ProvideRequest{Location: loc, Dependencies: deps})
}

// walk locates key and everything it depends on, failing on the first
// missing key or cycle.
func walk(locator ports.CatalogLocator, key string, chain []string, done map[string]bool) error {
	if done[key] {
		return nil
	}
	if err := checkCycle(key, chain); err != nil {
		return err
	}
	loc, err := locate(locator, key)
	if err != nil {
		return err
	}

	chain = append(chain, key)
	for _, dep := range loc.Dependencies {
		if err := walk(locator, dep, chain, done); err != nil {
			return err
		}
	}
	done[key] = true
	return nil
}

func checkCycle(key string, chain []string) error {
	if !slices.Contains(chain, key) {
		return nil
	}
	return zerr.With(zerr.Wrap(domain.ErrDependencyCycle, "dependency cycle detected"),
		"chain", strings.Join(append(slices.Clone(chain), key), " -> "))
}

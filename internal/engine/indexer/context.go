package indexer

import (
	"slices"
	"sync"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
)

var _ ports.BuildContext = (*BuildContext)(nil)

// BuildContext collects the entries and provider types of one catalog build
// in insertion order. Provider types are kept as a set.
type BuildContext struct {
	mu        sync.Mutex
	entries   []domain.CatalogEntry
	providers []domain.ProviderID
}

// NewBuildContext creates an empty BuildContext.
func NewBuildContext() *BuildContext {
	return &BuildContext{}
}

// AddLocation appends a catalog entry.
func (b *BuildContext) AddLocation(entry domain.CatalogEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	entry.Dependencies = slices.Clone(entry.Dependencies)
	b.entries = append(b.entries, entry)
}

// RegisterProviderType declares a provider type once.
func (b *BuildContext) RegisterProviderType(id domain.ProviderID) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !slices.Contains(b.providers, id) {
		b.providers = append(b.providers, id)
	}
}

// Entries returns the collected entries.
func (b *BuildContext) Entries() []domain.CatalogEntry {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.entries)
}

// ProviderTypes returns the declared provider types.
func (b *BuildContext) ProviderTypes() []domain.ProviderID {
	b.mu.Lock()
	defer b.mu.Unlock()
	return slices.Clone(b.providers)
}

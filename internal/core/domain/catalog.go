package domain

import "slices"

// CatalogID names one versioned remote catalog.
type CatalogID string

// ProviderID identifies the provider that knows how to load a location.
type ProviderID string

// ResourceType is the declared type of a loadable resource.
type ResourceType string

const (
	// AssetProviderID loads primary assets straight from their source.
	AssetProviderID ProviderID = "catsync.asset"

	// IndirectProviderID resolves a sub-resource out of an already loaded container.
	IndirectProviderID ProviderID = "catsync.indirect"
)

const (
	// ResourceTypeAtlas is the container type packing sprites.
	ResourceTypeAtlas ResourceType = "atlas"
	// ResourceTypeSprite is a single image packed into an atlas.
	ResourceTypeSprite ResourceType = "sprite"
	// ResourceTypeTexture is a plain image asset.
	ResourceTypeTexture ResourceType = "texture"
	// ResourceTypeData is any other asset, loaded as raw bytes.
	ResourceTypeData ResourceType = "data"
)

// ResourceLocation is a resolved pointer to loadable content.
// It is owned by the catalog that published it and must not be mutated.
type ResourceLocation struct {
	PrimaryKey   string
	InternalID   string
	ProviderID   ProviderID
	ResourceType ResourceType
	Dependencies []string
	Bundle       string
}

// CatalogEntry is the pre-resolution record produced by the build pipeline.
type CatalogEntry struct {
	Key          string       `json:"key"`
	ResourceType ResourceType `json:"type"`
	ProviderID   ProviderID   `json:"provider"`
	InternalID   string       `json:"internalId"`
	Dependencies []string     `json:"dependencies,omitempty"`
	Bundle       string       `json:"bundle,omitempty"`
}

// Location resolves the entry into its ResourceLocation.
func (e CatalogEntry) Location() ResourceLocation {
	return ResourceLocation{
		PrimaryKey:   e.Key,
		InternalID:   e.InternalID,
		ProviderID:   e.ProviderID,
		ResourceType: e.ResourceType,
		Dependencies: slices.Clone(e.Dependencies),
		Bundle:       e.Bundle,
	}
}

// Bundle is one downloadable archive declared by a catalog.
type Bundle struct {
	Name   string   `json:"name"`
	Hash   string   `json:"hash"`
	Size   int64    `json:"size"`
	Assets []string `json:"assets,omitempty"`
}

// Catalog is the manifest mapping logical keys to resolvable locations.
type Catalog struct {
	ID            CatalogID      `json:"id"`
	Version       string         `json:"version"`
	ProviderTypes []ProviderID   `json:"providerTypes"`
	Entries       []CatalogEntry `json:"entries"`
	Bundles       []Bundle       `json:"bundles"`
}

// Bundle returns the bundle with the given name.
func (c *Catalog) Bundle(name string) (Bundle, bool) {
	for _, b := range c.Bundles {
		if b.Name == name {
			return b, true
		}
	}
	return Bundle{}, false
}

// Keys returns every entry key of the catalog in declaration order.
func (c *Catalog) Keys() []string {
	keys := make([]string, 0, len(c.Entries))
	for _, e := range c.Entries {
		keys = append(keys, e.Key)
	}
	return keys
}

// ResourceLocator is the result of applying one catalog update: the keys it
// makes reachable.
type ResourceLocator struct {
	CatalogID CatalogID
	Keys      []string
}

// MergeMode describes how key sets from several catalogs are combined.
type MergeMode int

const (
	// MergeModeUnion counts a key present in several catalogs once.
	MergeModeUnion MergeMode = iota
)

// String returns the name of the merge mode.
func (m MergeMode) String() string {
	switch m {
	case MergeModeUnion:
		return "union"
	default:
		return "unknown"
	}
}

// MergeKeys combines the keys of all locators with union semantics,
// preserving first-seen order.
func MergeKeys(locators []ResourceLocator) []string {
	var keys []string
	for _, l := range locators {
		keys = append(keys, l.Keys...)
	}
	return UniqueKeys(keys)
}

// UniqueKeys drops duplicate and empty keys, preserving first-seen order.
func UniqueKeys(keys []string) []string {
	seen := make(map[string]struct{}, len(keys))
	out := make([]string, 0, len(keys))
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

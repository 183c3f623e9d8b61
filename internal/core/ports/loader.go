package ports

import (
	"context"

	"go.trai.ch/catsync/internal/core/domain"
)

//go:generate mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks

// ResourceLoader loads a resource by key, resolving its dependencies first.
type ResourceLoader interface {
	Load(ctx context.Context, key string) (any, error)
}

// ProvideRequest is a single location to load together with its resolved dependencies.
type ProvideRequest struct {
	Location     domain.ResourceLocation
	Dependencies []any
}

// Provider turns a location into a loaded value.
type Provider interface {
	ID() domain.ProviderID
	Provide(ctx context.Context, req ProvideRequest) (any, error)
}

// CatalogLocator maps keys to published locations.
type CatalogLocator interface {
	Locate(key string) (domain.ResourceLocation, bool)
}

// AssetSource reads raw asset content for a location.
type AssetSource interface {
	// ReadAsset returns the content of path, read from wherever loc is stored.
	ReadAsset(ctx context.Context, loc domain.ResourceLocation, path string) ([]byte, error)
}

// ContainerDecoder parses container manifests.
type ContainerDecoder interface {
	DecodeContainer(data []byte) (domain.ContainerManifest, error)
}

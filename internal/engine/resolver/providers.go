// Package resolver loads catalog locations through their providers, including
// the indirect provider that extracts sprites out of loaded atlases.
package resolver

import (
	"context"
	"fmt"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.Provider = IndirectProvider{}
	_ ports.Provider = (*AssetProvider)(nil)
)

// IndirectProvider resolves a sub-resource out of its already loaded
// container. It holds no state and is safe for concurrent use.
type IndirectProvider struct{}

// ID returns the indirect provider id.
func (IndirectProvider) ID() domain.ProviderID {
	return domain.IndirectProviderID
}

// Provide looks up the location's internal id in the single resolved
// dependency, which must be an atlas.
func (IndirectProvider) Provide(_ context.Context, req ports.ProvideRequest) (any, error) {
	loc := req.Location
	if len(req.Dependencies) != 1 {
		err := zerr.With(zerr.Wrap(domain.ErrDependencyCount, "indirect location needs its container"), "key", loc.PrimaryKey)
		return nil, zerr.With(err, "count", len(req.Dependencies))
	}

	atlas, ok := req.Dependencies[0].(*domain.Atlas)
	if !ok || atlas == nil {
		err := zerr.With(zerr.Wrap(domain.ErrDependencyType, "dependency is not an atlas"), "key", loc.PrimaryKey)
		return nil, zerr.With(err, "type", fmt.Sprintf("%T", req.Dependencies[0]))
	}

	sprite, ok := atlas.Sprite(loc.InternalID)
	if !ok {
		err := zerr.With(zerr.Wrap(domain.ErrSubResourceNotFound, "atlas does not pack the sprite"), "key", loc.InternalID)
		err = zerr.With(err, "primary_key", loc.PrimaryKey)
		return nil, zerr.With(err, "atlas", atlas.Name())
	}
	return sprite, nil
}

// AssetProvider loads primary assets. Atlases become *domain.Atlas with every
// sprite read from the same source; everything else is returned as []byte.
type AssetProvider struct {
	source  ports.AssetSource
	decoder ports.ContainerDecoder
}

// NewAssetProvider creates an AssetProvider reading from source.
func NewAssetProvider(source ports.AssetSource, decoder ports.ContainerDecoder) *AssetProvider {
	return &AssetProvider{source: source, decoder: decoder}
}

// ID returns the asset provider id.
func (p *AssetProvider) ID() domain.ProviderID {
	return domain.AssetProviderID
}

// Provide reads the asset behind the location.
func (p *AssetProvider) Provide(ctx context.Context, req ports.ProvideRequest) (any, error) {
	loc := req.Location
	data, err := p.source.ReadAsset(ctx, loc, loc.InternalID)
	if err != nil {
		return nil, zerr.With(err, "key", loc.PrimaryKey)
	}
	if loc.ResourceType != domain.ResourceTypeAtlas {
		return data, nil
	}

	manifest, err := p.decoder.DecodeContainer(data)
	if err != nil {
		return nil, zerr.With(err, "key", loc.PrimaryKey)
	}

	names := manifest.PackedNames()
	sprites := make([]domain.Sprite, 0, len(manifest.Sprites))
	for i, spritePath := range manifest.Sprites {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		spriteData, err := p.source.ReadAsset(ctx, loc, spritePath)
		if err != nil {
			return nil, zerr.With(err, "atlas", loc.PrimaryKey)
		}
		name := domain.AssetName(spritePath)
		if i < len(names) {
			name = names[i]
		}
		sprites = append(sprites, domain.Sprite{
			Name: name,
			Path: spritePath,
			Data: spriteData,
		})
	}
	return domain.NewAtlas(domain.AssetName(loc.InternalID), sprites), nil
}

// Registry dispatches locations to providers by id.
type Registry struct {
	providers map[domain.ProviderID]ports.Provider
}

// NewRegistry creates a registry. Later providers replace earlier ones with
// the same id.
func NewRegistry(providers ...ports.Provider) *Registry {
	r := &Registry{providers: make(map[domain.ProviderID]ports.Provider, len(providers))}
	for _, p := range providers {
		r.providers[p.ID()] = p
	}
	return r
}

// Provider returns the provider registered for id.
func (r *Registry) Provider(id domain.ProviderID) (ports.Provider, error) {
	p, ok := r.providers[id]
	if !ok {
		return nil, zerr.With(zerr.Wrap(domain.ErrUnknownProvider, "no provider registered"), "provider", string(id))
	}
	return p, nil
}

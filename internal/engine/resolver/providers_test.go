package resolver_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/core/ports/mocks"
	"go.trai.ch/catsync/internal/engine/resolver"
	"go.uber.org/mock/gomock"
)

func testAtlas() *domain.Atlas {
	return domain.NewAtlas("icons", []domain.Sprite{
		{Name: "a", Path: "ui/a.png", Data: []byte("A")},
		{Name: "b", Path: "ui/b.png", Data: []byte("B")},
	})
}

func indirectRequest(internalID string, deps ...any) ports.ProvideRequest {
	return ports.ProvideRequest{
		Location: domain.ResourceLocation{
			PrimaryKey:   "a",
			InternalID:   internalID,
			ProviderID:   domain.IndirectProviderID,
			ResourceType: domain.ResourceTypeSprite,
			Dependencies: []string{"ui/icons.atlas"},
		},
		Dependencies: deps,
	}
}

func TestIndirectProvider(t *testing.T) {
	ctx := context.Background()
	p := resolver.IndirectProvider{}
	assert.Equal(t, domain.IndirectProviderID, p.ID())

	t.Run("returns the packed sprite", func(t *testing.T) {
		v, err := p.Provide(ctx, indirectRequest("ui/a.png", testAtlas()))
		require.NoError(t, err)
		sprite, ok := v.(domain.Sprite)
		require.True(t, ok)
		assert.Equal(t, "a", sprite.Name)
		assert.Equal(t, []byte("A"), sprite.Data)
	})

	t.Run("no dependency", func(t *testing.T) {
		_, err := p.Provide(ctx, indirectRequest("ui/a.png"))
		require.ErrorIs(t, err, domain.ErrDependencyCount)
	})

	t.Run("dependency of the wrong type", func(t *testing.T) {
		_, err := p.Provide(ctx, indirectRequest("ui/a.png", []byte("not an atlas")))
		require.ErrorIs(t, err, domain.ErrDependencyType)
		assert.Contains(t, err.Error(), "dependency is not an atlas")
	})

	t.Run("nil atlas", func(t *testing.T) {
		var atlas *domain.Atlas
		_, err := p.Provide(ctx, indirectRequest("ui/a.png", atlas))
		require.ErrorIs(t, err, domain.ErrDependencyType)
	})

	t.Run("sprite not packed", func(t *testing.T) {
		_, err := p.Provide(ctx, indirectRequest("ui/missing.png", testAtlas()))
		require.ErrorIs(t, err, domain.ErrSubResourceNotFound)
	})
}

func TestIndirectProvider_Concurrent(t *testing.T) {
	atlas := testAtlas()
	p := resolver.IndirectProvider{}

	var wg sync.WaitGroup
	errs := make([]error, 64)
	for i := range errs {
		wg.Go(func() {
			key := "ui/a.png"
			if i%2 == 1 {
				key = "ui/b.png"
			}
			_, errs[i] = p.Provide(context.Background(), indirectRequest(key, atlas))
		})
	}
	wg.Wait()

	for _, err := range errs {
		require.NoError(t, err)
	}
}

func TestAssetProvider(t *testing.T) {
	ctrl := gomock.NewController(t)
	source := mocks.NewMockAssetSource(ctrl)
	decoder := mocks.NewMockContainerDecoder(ctrl)
	ctx := context.Background()

	p := resolver.NewAssetProvider(source, decoder)
	assert.Equal(t, domain.AssetProviderID, p.ID())

	t.Run("plain assets are bytes", func(t *testing.T) {
		loc := domain.ResourceLocation{PrimaryKey: "data/x.json", InternalID: "data/x.json", ResourceType: domain.ResourceTypeData}
		source.EXPECT().ReadAsset(ctx, loc, "data/x.json").Return([]byte("{}"), nil)

		v, err := p.Provide(ctx, ports.ProvideRequest{Location: loc})
		require.NoError(t, err)
		assert.Equal(t, []byte("{}"), v)
	})

	t.Run("atlases load their sprites", func(t *testing.T) {
		loc := domain.ResourceLocation{
			PrimaryKey:   "ui/icons.atlas",
			InternalID:   "ui/icons.atlas",
			ResourceType: domain.ResourceTypeAtlas,
			Bundle:       "ui",
		}
		source.EXPECT().ReadAsset(ctx, loc, "ui/icons.atlas").Return([]byte("manifest"), nil)
		decoder.EXPECT().DecodeContainer([]byte("manifest")).Return(domain.ContainerManifest{
			Sprites: []string{"ui/a.png", "ui/b.png"},
			Packed:  []string{"a(Clone)", "b"},
		}, nil)
		source.EXPECT().ReadAsset(ctx, loc, "ui/a.png").Return([]byte("A"), nil)
		source.EXPECT().ReadAsset(ctx, loc, "ui/b.png").Return([]byte("B"), nil)

		v, err := p.Provide(ctx, ports.ProvideRequest{Location: loc})
		require.NoError(t, err)
		atlas, ok := v.(*domain.Atlas)
		require.True(t, ok)
		assert.Equal(t, "icons", atlas.Name())
		assert.Equal(t, []string{"a(Clone)", "b"}, atlas.SpriteNames())

		sprite, ok := atlas.Sprite("ui/b.png")
		require.True(t, ok)
		assert.Equal(t, []byte("B"), sprite.Data)
	})

	t.Run("read failures propagate", func(t *testing.T) {
		loc := domain.ResourceLocation{PrimaryKey: "gone", InternalID: "gone.json"}
		source.EXPECT().ReadAsset(ctx, loc, "gone.json").Return(nil, domain.ErrAssetNotFound)

		_, err := p.Provide(ctx, ports.ProvideRequest{Location: loc})
		require.ErrorIs(t, err, domain.ErrAssetNotFound)
	})
}

func TestRegistry(t *testing.T) {
	ctrl := gomock.NewController(t)
	first := mocks.NewMockProvider(ctrl)
	second := mocks.NewMockProvider(ctrl)
	first.EXPECT().ID().Return(domain.AssetProviderID).AnyTimes()
	second.EXPECT().ID().Return(domain.AssetProviderID).AnyTimes()

	registry := resolver.NewRegistry(first, second, resolver.IndirectProvider{})

	p, err := registry.Provider(domain.AssetProviderID)
	require.NoError(t, err)
	assert.Same(t, second, p)

	_, err = registry.Provider("custom")
	require.ErrorIs(t, err, domain.ErrUnknownProvider)
	assert.False(t, errors.Is(err, domain.ErrResourceKeyNotFound))
}

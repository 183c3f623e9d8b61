package remote_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/adapters/cas"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/adapters/remote"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type fixture struct {
	dir     string
	catalog *domain.Catalog
}

// publish writes a small catalog with two bundles into a fresh directory.
func publish(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	pub := cas.NewPublisher(fs.NewHasher())

	ui, err := pub.WriteBundle(dir, "ui", []ports.PackedFile{
		{Path: "ui/icons.atlas", Data: []byte("sprites: [ui/a.png]\n")},
		{Path: "ui/a.png", Data: []byte("png-a")},
	})
	require.NoError(t, err)

	data, err := pub.WriteBundle(dir, "data", []ports.PackedFile{
		{Path: "data/x.json", Data: []byte(`{"x":1}`)},
	})
	require.NoError(t, err)

	catalog := &domain.Catalog{
		ID:            "main",
		Version:       "1.0.0",
		ProviderTypes: []domain.ProviderID{domain.AssetProviderID, domain.IndirectProviderID},
		Entries: []domain.CatalogEntry{
			{Key: "ui/icons.atlas", ResourceType: domain.ResourceTypeAtlas, ProviderID: domain.AssetProviderID, InternalID: "ui/icons.atlas", Bundle: "ui"},
			{Key: "ui/a.png", ResourceType: domain.ResourceTypeTexture, ProviderID: domain.AssetProviderID, InternalID: "ui/a.png", Bundle: "ui"},
			{Key: "a", ResourceType: domain.ResourceTypeSprite, ProviderID: domain.IndirectProviderID, InternalID: "ui/a.png", Dependencies: []string{"ui/icons.atlas"}, Bundle: "ui"},
			{Key: "data/x.json", ResourceType: domain.ResourceTypeData, ProviderID: domain.AssetProviderID, InternalID: "data/x.json", Bundle: "data"},
		},
		Bundles: []domain.Bundle{ui, data},
	}
	_, err = pub.WriteCatalog(dir, catalog)
	require.NoError(t, err)

	return fixture{dir: dir, catalog: catalog}
}

func newClient(t *testing.T, baseURL, cacheRoot string) *remote.Client {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()

	return remote.New(remote.Options{
		BaseURL:     baseURL,
		Catalogs:    []domain.CatalogID{"main"},
		CacheRoot:   cacheRoot,
		Timeout:     5 * time.Second,
		Parallelism: 2,
	}, cas.NewBundleStore(cacheRoot), fs.NewHasher(), log)
}

func serve(t *testing.T, dir string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.FileServer(http.Dir(dir)))
	t.Cleanup(srv.Close)
	return srv
}

func TestClient_RequiresInitialize(t *testing.T) {
	client := newClient(t, "http://127.0.0.1:1", t.TempDir())

	_, err := client.CheckForCatalogUpdates(context.Background())
	require.ErrorIs(t, err, domain.ErrInitializationFailed)

	_, err = client.GetDownloadSize(context.Background(), []string{"a"})
	require.ErrorIs(t, err, domain.ErrInitializationFailed)
}

func TestClient_InitializeWithoutBaseURL(t *testing.T) {
	client := newClient(t, "", t.TempDir())

	err := client.Initialize(context.Background())
	require.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestClient_UpdateFlow(t *testing.T) {
	fx := publish(t)
	srv := serve(t, fx.dir)
	cacheRoot := t.TempDir()
	ctx := context.Background()

	client := newClient(t, srv.URL, cacheRoot)
	require.NoError(t, client.Initialize(ctx))
	require.NoError(t, client.Initialize(ctx))

	ids, err := client.CheckForCatalogUpdates(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogID{"main"}, ids)

	locators, err := client.UpdateCatalogs(ctx, ids)
	require.NoError(t, err)
	require.Len(t, locators, 1)
	assert.Equal(t, domain.CatalogID("main"), locators[0].CatalogID)
	assert.Equal(t, fx.catalog.Keys(), locators[0].Keys)

	assert.FileExists(t, filepath.Join(cacheRoot, "catalog_main.json"))
	assert.FileExists(t, filepath.Join(cacheRoot, "catalog_main.hash"))

	ids, err = client.CheckForCatalogUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	loc, ok := client.Locate("a")
	require.True(t, ok)
	assert.Equal(t, "ui/a.png", loc.InternalID)
	assert.Equal(t, []string{"ui/icons.atlas"}, loc.Dependencies)

	// A fresh client picks the applied catalog up from the cache root.
	restarted := newClient(t, srv.URL, cacheRoot)
	require.NoError(t, restarted.Initialize(ctx))

	ids, err = restarted.CheckForCatalogUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, ids)

	_, ok = restarted.Locate("data/x.json")
	assert.True(t, ok)
}

func TestClient_UpdateUnknownCatalog(t *testing.T) {
	fx := publish(t)
	srv := serve(t, fx.dir)
	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))

	_, err := client.UpdateCatalogs(context.Background(), []domain.CatalogID{"dlc"})
	require.ErrorIs(t, err, domain.ErrCatalogNotConfigured)
}

func TestClient_HashMismatch(t *testing.T) {
	fx := publish(t)
	require.NoError(t, os.WriteFile(filepath.Join(fx.dir, "catalog_main.hash"), []byte("0000000000000000"), 0o600))
	srv := serve(t, fx.dir)

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))

	_, err := client.UpdateCatalogs(context.Background(), []domain.CatalogID{"main"})
	require.ErrorIs(t, err, domain.ErrCatalogHashMismatch)
}

func TestClient_InvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	doc := []byte(`{"id":"main","entries":[{"key":"","type":"data"}]}`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog_main.json"), doc, 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "catalog_main.hash"), []byte(fs.NewHasher().HashBytes(doc)), 0o600))
	srv := serve(t, dir)

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))

	_, err := client.UpdateCatalogs(context.Background(), []domain.CatalogID{"main"})
	require.ErrorIs(t, err, domain.ErrCatalogInvalid)
}

func TestClient_MissingRemoteCatalog(t *testing.T) {
	srv := serve(t, t.TempDir())

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))

	_, err := client.CheckForCatalogUpdates(context.Background())
	require.ErrorIs(t, err, domain.ErrRemoteRequestFailed)
}

func TestClient_Download(t *testing.T) {
	fx := publish(t)
	srv := serve(t, fx.dir)
	ctx := context.Background()

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(ctx))
	_, err := client.UpdateCatalogs(ctx, []domain.CatalogID{"main"})
	require.NoError(t, err)

	ui, _ := fx.catalog.Bundle("ui")
	data, _ := fx.catalog.Bundle("data")

	size, err := client.GetDownloadSize(ctx, []string{"a"})
	require.NoError(t, err)
	assert.Equal(t, ui.Size, size, "sprite pulls its atlas bundle once")

	size, err = client.GetDownloadSize(ctx, []string{"a", "data/x.json", "ui/a.png"})
	require.NoError(t, err)
	assert.Equal(t, ui.Size+data.Size, size)

	handle, err := client.DownloadDependencies(ctx, []string{"a", "data/x.json"}, domain.MergeModeUnion)
	require.NoError(t, err)
	<-handle.Done()
	require.NoError(t, handle.Err())

	status := client.GetDownloadStatus(handle)
	assert.True(t, status.IsDone)
	assert.Equal(t, ui.Size+data.Size, status.TotalBytes)
	assert.Equal(t, status.TotalBytes, status.DownloadedBytes)
	assert.InDelta(t, 1.0, status.Percent, 1e-9)
	assert.Len(t, handle.Bundles(), 2)

	size, err = client.GetDownloadSize(ctx, []string{"a", "data/x.json"})
	require.NoError(t, err)
	assert.Zero(t, size)

	loc, ok := client.Locate("a")
	require.True(t, ok)
	content, err := client.ReadAsset(ctx, loc, "ui/a.png")
	require.NoError(t, err)
	assert.Equal(t, []byte("png-a"), content)

	client.Release(handle)
	assert.Equal(t, domain.NewDownloadStatus(0, 0, true), client.GetDownloadStatus(handle))
}

func TestClient_DownloadFailure(t *testing.T) {
	fx := publish(t)
	require.NoError(t, os.Remove(filepath.Join(fx.dir, "bundles", "data.bundle")))
	srv := serve(t, fx.dir)
	ctx := context.Background()

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(ctx))
	_, err := client.UpdateCatalogs(ctx, []domain.CatalogID{"main"})
	require.NoError(t, err)

	handle, err := client.DownloadDependencies(ctx, []string{"data/x.json"}, domain.MergeModeUnion)
	require.NoError(t, err)
	<-handle.Done()

	require.ErrorIs(t, handle.Err(), domain.ErrRemoteRequestFailed)
	status := client.GetDownloadStatus(handle)
	assert.True(t, status.IsDone)
	require.Error(t, status.Err)
}

func TestClient_DownloadCancel(t *testing.T) {
	fx := publish(t)
	files := http.FileServer(http.Dir(fx.dir))
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if filepath.Ext(r.URL.Path) == domain.BundleExt {
			<-r.Context().Done()
			return
		}
		files.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client := newClient(t, srv.URL, t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))
	_, err := client.UpdateCatalogs(context.Background(), []domain.CatalogID{"main"})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	handle, err := client.DownloadDependencies(ctx, []string{"a"}, domain.MergeModeUnion)
	require.NoError(t, err)
	cancel()

	select {
	case <-handle.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("transfer did not stop after cancellation")
	}
	assert.True(t, errors.Is(handle.Err(), context.Canceled))
}

func TestClient_FileScheme(t *testing.T) {
	fx := publish(t)
	abs, err := filepath.Abs(fx.dir)
	require.NoError(t, err)

	client := newClient(t, "file://"+filepath.ToSlash(abs), t.TempDir())
	require.NoError(t, client.Initialize(context.Background()))

	ids, err := client.CheckForCatalogUpdates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogID{"main"}, ids)

	locators, err := client.UpdateCatalogs(context.Background(), ids)
	require.NoError(t, err)
	assert.Len(t, locators[0].Keys, 4)
}

func TestDecodeCatalog(t *testing.T) {
	catalog, err := remote.DecodeCatalog([]byte(`{"id":"main","version":"2","entries":[{"key":"k","type":"data","provider":"catsync.asset","internalId":"k"}],"bundles":[{"name":"b","hash":"h","size":3}]}`))
	require.NoError(t, err)
	assert.Equal(t, domain.CatalogID("main"), catalog.ID)
	assert.Equal(t, []string{"k"}, catalog.Keys())

	_, err = remote.DecodeCatalog([]byte(`{"id":"main","entries":[],"bundles":[{"name":"b","hash":"h","size":-1}]}`))
	require.ErrorIs(t, err, domain.ErrCatalogInvalid)

	_, err = remote.DecodeCatalog([]byte(`not json`))
	require.Error(t, err)
}

package cas_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/adapters/cas"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newStore(t *testing.T, root string) (*cas.Store, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return cas.NewStore(root, fs.NewWalker(), log), log
}

func TestStore_RoundTrip(t *testing.T) {
	store, _ := newStore(t, t.TempDir())

	ids := []domain.CatalogID{"main", "dlc", "seasonal"}
	require.NoError(t, store.Save(ids))

	got, err := store.Load()
	require.NoError(t, err)
	assert.ElementsMatch(t, ids, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	store, _ := newStore(t, t.TempDir())

	require.NoError(t, store.Save([]domain.CatalogID{"main", "dlc"}))
	require.NoError(t, store.Save([]domain.CatalogID{"dlc"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []domain.CatalogID{"dlc"}, got)
}

func TestStore_LoadMissing(t *testing.T) {
	store, _ := newStore(t, filepath.Join(t.TempDir(), "does-not-exist"))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadCorrupt(t *testing.T) {
	root := t.TempDir()
	store, log := newStore(t, root)

	// A torn write from a previous run.
	require.NoError(t, os.WriteFile(filepath.Join(root, domain.CatalogListFileName), []byte(`["main", "dl`), 0o600))

	log.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Contains(t, err.Error(), domain.ErrCacheParseFailed.Error())
	})

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_LoadUnreadable(t *testing.T) {
	root := t.TempDir()
	store, _ := newStore(t, root)

	// A directory where the list file should be cannot be read as a file.
	require.NoError(t, os.MkdirAll(filepath.Join(root, domain.CatalogListFileName), 0o750))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrCacheReadFailed.Error())
}

func TestStore_Purge(t *testing.T) {
	root := t.TempDir()
	store, log := newStore(t, root)

	require.NoError(t, store.Save([]domain.CatalogID{"main"}))
	catalogFiles := []string{
		filepath.Join(root, "catalog_main.json"),
		filepath.Join(root, "catalog_main.hash"),
		filepath.Join(root, "nested", "catalog_dlc.hash"),
		filepath.Join(root, "nested", "catalog_dlc.json"),
	}
	otherFiles := []string{
		filepath.Join(root, "bundles", "0123.bundle"),
		filepath.Join(root, "nested", "unrelated.json"),
	}
	for _, path := range append(catalogFiles, otherFiles...) {
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o750))
		require.NoError(t, os.WriteFile(path, []byte("{}"), 0o600))
	}

	var logged []string
	log.EXPECT().Info(gomock.Any()).Do(func(msg string) {
		logged = append(logged, msg)
	}).Times(5)

	deleted, err := store.Purge()
	require.NoError(t, err)
	assert.Len(t, deleted, 5)
	assert.Len(t, logged, 5)

	for _, path := range deleted {
		assert.NoFileExists(t, path)
	}
	for _, path := range otherFiles {
		assert.FileExists(t, path)
	}

	got, err := store.Load()
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_PurgeEmptyRoot(t *testing.T) {
	store, _ := newStore(t, filepath.Join(t.TempDir(), "missing"))

	deleted, err := store.Purge()
	require.NoError(t, err)
	assert.Empty(t, deleted)
}

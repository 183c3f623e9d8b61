package assetdb_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/catsync/internal/adapters/assetdb"
	"go.trai.ch/catsync/internal/adapters/fs"
	"go.trai.ch/catsync/internal/core/domain"
)

func writeProject(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, content := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o750))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	}
	return root
}

func newDatabase(t *testing.T, files map[string]string) *assetdb.Database {
	t.Helper()
	return assetdb.New(writeProject(t, files), fs.NewWalker(), assetdb.ManifestDecoder{})
}

func TestDatabase_MainType(t *testing.T) {
	db := newDatabase(t, map[string]string{
		"ui/icons.atlas":     "sprites: []\n",
		"ui/sprites/a.png":   "A",
		"ui/sprites/b.JPG":   "B",
		"levels/forest.json": "{}",
		"levels/empty/.keep": "",
	})

	tests := []struct {
		path string
		want domain.ResourceType
	}{
		{"ui/icons.atlas", domain.ResourceTypeAtlas},
		{"ui/sprites/a.png", domain.ResourceTypeTexture},
		{"ui/sprites/b.JPG", domain.ResourceTypeTexture},
		{"levels/forest.json", domain.ResourceTypeData},
	}
	for _, tt := range tests {
		got, err := db.MainType(tt.path)
		require.NoError(t, err, tt.path)
		assert.Equal(t, tt.want, got, tt.path)
	}

	_, err := db.MainType("ui/missing.png")
	require.ErrorIs(t, err, domain.ErrAssetNotFound)

	_, err = db.MainType("levels/empty")
	require.ErrorIs(t, err, domain.ErrAssetReadFailed)

	_, err = db.MainType("../outside.png")
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestDatabase_FoldersAndExpand(t *testing.T) {
	db := newDatabase(t, map[string]string{
		"ui/b.png":        "B",
		"ui/a.png":        "A",
		"ui/nested/c.png": "C",
		"other.txt":       "x",
	})

	assert.True(t, db.IsFolder("ui"))
	assert.False(t, db.IsFolder("ui/a.png"))
	assert.False(t, db.IsFolder("missing"))

	files, err := db.Expand("ui")
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/a.png", "ui/b.png", "ui/nested/c.png"}, files)

	_, err = db.Expand("ui/a.png")
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestDatabase_DependenciesAndPacked(t *testing.T) {
	db := newDatabase(t, map[string]string{
		"ui/icons.atlas":   "sprites:\n  - ui/sprites/a.png\n  - ui/sprites/b.png\n  - ui/sprites/a.png\n",
		"ui/clones.atlas":  "sprites: [ui/sprites/a.png]\npacked: [\"a(Clone)\"]\n",
		"ui/sprites/a.png": "A",
		"ui/sprites/b.png": "B",
	})

	deps, err := db.Dependencies("ui/icons.atlas")
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/icons.atlas", "ui/sprites/a.png", "ui/sprites/b.png"}, deps)

	deps, err = db.Dependencies("ui/sprites/a.png")
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/sprites/a.png"}, deps)

	packed, err := db.PackedSubResources("ui/icons.atlas")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "a"}, packed)

	packed, err = db.PackedSubResources("ui/clones.atlas")
	require.NoError(t, err)
	assert.Equal(t, []string{"a(Clone)"}, packed)

	packed, err = db.PackedSubResources("ui/sprites/a.png")
	require.NoError(t, err)
	assert.Nil(t, packed)
}

func TestDatabase_ReadAsset(t *testing.T) {
	db := newDatabase(t, map[string]string{"data/config.json": `{"a":1}`})

	data, err := db.ReadAsset(context.Background(), domain.ResourceLocation{}, "data/config.json")
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(data))

	_, err = db.ReadAsset(context.Background(), domain.ResourceLocation{}, "data/missing.json")
	require.ErrorIs(t, err, domain.ErrAssetNotFound)
}

func TestDatabase_BrokenManifest(t *testing.T) {
	db := newDatabase(t, map[string]string{"ui/broken.atlas": "sprites: {"})

	_, err := db.Dependencies("ui/broken.atlas")
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrManifestParseFailed.Error())
}

func TestManifestDecoder(t *testing.T) {
	dec := assetdb.ManifestDecoder{}

	m, err := dec.DecodeContainer([]byte("sprites: [\"ui\\\\a.png\", ./ui/b.png]\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/a.png", "ui/b.png"}, m.Sprites)

	_, err = dec.DecodeContainer([]byte("sprites: [../secret.png]\n"))
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)

	_, err = dec.DecodeContainer([]byte("sprites: [a.png, b.png]\npacked: [a]\n"))
	require.ErrorIs(t, err, domain.ErrManifestParseFailed)

	data, err := assetdb.EncodeContainer(domain.ContainerManifest{Sprites: []string{"ui/a.png"}})
	require.NoError(t, err)
	m, err = dec.DecodeContainer(data)
	require.NoError(t, err)
	assert.Equal(t, []string{"ui/a.png"}, m.Sprites)
}

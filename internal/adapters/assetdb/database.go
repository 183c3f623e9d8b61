// Package assetdb exposes a project directory as an asset graph.
package assetdb

import (
	"context"
	"errors"
	"io/fs"
	"iter"
	"os"
	"path"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.AssetDatabase = (*Database)(nil)
	_ ports.AssetSource   = (*Database)(nil)
)

// ContainerExt is the file extension of atlas manifests.
const ContainerExt = ".atlas"

var textureExts = []string{".png", ".jpg", ".jpeg"}

// FileWalker enumerates project-relative files below a root directory.
type FileWalker interface {
	WalkRelative(root string, ignores []string) iter.Seq[string]
}

// Database implements ports.AssetDatabase over a project directory.
// Atlas manifests are decoded once and cached.
type Database struct {
	root    string
	walker  FileWalker
	decoder ports.ContainerDecoder

	mu        sync.Mutex
	manifests map[string]domain.ContainerManifest
}

// New creates a Database rooted at root.
func New(root string, walker FileWalker, decoder ports.ContainerDecoder) *Database {
	return &Database{
		root:      root,
		walker:    walker,
		decoder:   decoder,
		manifests: make(map[string]domain.ContainerManifest),
	}
}

// Root returns the project root directory.
func (d *Database) Root() string {
	return d.root
}

// MainType classifies a file by extension.
func (d *Database) MainType(p string) (domain.ResourceType, error) {
	full, err := d.abs(p)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(full)
	if err != nil {
		return "", statError(err, p)
	}
	if info.IsDir() {
		return "", zerr.With(zerr.Wrap(domain.ErrAssetReadFailed, "path is a folder"), "path", p)
	}
	return TypeOf(p), nil
}

// TypeOf returns the resource type implied by a path's extension.
func TypeOf(p string) domain.ResourceType {
	ext := strings.ToLower(path.Ext(p))
	switch {
	case ext == ContainerExt:
		return domain.ResourceTypeAtlas
	case slices.Contains(textureExts, ext):
		return domain.ResourceTypeTexture
	default:
		return domain.ResourceTypeData
	}
}

// IsFolder reports whether p is a directory of the project.
func (d *Database) IsFolder(p string) bool {
	full, err := d.abs(p)
	if err != nil {
		return false
	}
	info, err := os.Stat(full)
	return err == nil && info.IsDir()
}

// Expand returns the project-relative paths of every file below the folder p.
func (d *Database) Expand(p string) ([]string, error) {
	full, err := d.abs(p)
	if err != nil {
		return nil, err
	}
	if !d.IsFolder(p) {
		return nil, zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "folder not found"), "path", p)
	}

	prefix := strings.Trim(filepath.ToSlash(p), "/")
	var files []string
	for rel := range d.walker.WalkRelative(full, nil) {
		files = append(files, path.Join(prefix, rel))
	}
	slices.Sort(files)
	return files, nil
}

// Dependencies returns p followed by everything it transitively references.
// Only atlases reference other assets.
func (d *Database) Dependencies(p string) ([]string, error) {
	deps := []string{p}
	seen := map[string]bool{p: true}

	for i := 0; i < len(deps); i++ {
		cur := deps[i]
		if TypeOf(cur) != domain.ResourceTypeAtlas {
			continue
		}
		m, err := d.manifest(cur)
		if err != nil {
			return nil, err
		}
		for _, sprite := range m.Sprites {
			if seen[sprite] {
				continue
			}
			seen[sprite] = true
			deps = append(deps, sprite)
		}
	}
	return deps, nil
}

// PackedSubResources returns the sprite names an atlas packs.
func (d *Database) PackedSubResources(p string) ([]string, error) {
	if TypeOf(p) != domain.ResourceTypeAtlas {
		return nil, nil
	}
	m, err := d.manifest(p)
	if err != nil {
		return nil, err
	}
	return m.PackedNames(), nil
}

// ReadAsset reads p from the project tree. The location is ignored; every
// asset lives in the same tree.
func (d *Database) ReadAsset(_ context.Context, _ domain.ResourceLocation, p string) ([]byte, error) {
	return d.Read(p)
}

// Read returns the content of a project file.
func (d *Database) Read(p string) ([]byte, error) {
	full, err := d.abs(p)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(full) //nolint:gosec // path is confined to the project root
	if err != nil {
		return nil, statError(err, p)
	}
	return data, nil
}

func (d *Database) manifest(p string) (domain.ContainerManifest, error) {
	d.mu.Lock()
	m, ok := d.manifests[p]
	d.mu.Unlock()
	if ok {
		return m, nil
	}

	data, err := d.Read(p)
	if err != nil {
		return domain.ContainerManifest{}, err
	}
	m, err = d.decoder.DecodeContainer(data)
	if err != nil {
		return domain.ContainerManifest{}, zerr.With(err, "path", p)
	}

	d.mu.Lock()
	d.manifests[p] = m
	d.mu.Unlock()
	return m, nil
}

func (d *Database) abs(p string) (string, error) {
	rel := filepath.FromSlash(strings.Trim(p, "/"))
	if rel == "" {
		return d.root, nil
	}
	if !filepath.IsLocal(rel) {
		return "", zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "path escapes the project"), "path", p)
	}
	return filepath.Join(d.root, rel), nil
}

func statError(err error, p string) error {
	if errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrAssetNotFound, err.Error()), "path", p)
	}
	return zerr.With(zerr.Wrap(err, domain.ErrAssetReadFailed.Error()), "path", p)
}

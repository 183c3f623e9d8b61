package cas

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.BundleStore = (*BundleStore)(nil)

// BundleStore keeps downloaded bundle archives under <root>/bundles, one file
// per bundle name and published hash.
type BundleStore struct {
	dir string
}

// NewBundleStore creates a bundle store below the cache root.
func NewBundleStore(root string) *BundleStore {
	return &BundleStore{dir: filepath.Join(filepath.Clean(root), domain.BundleDirName)}
}

// Has reports whether the bundle is stored at its published hash.
func (b *BundleStore) Has(bundle domain.Bundle) bool {
	info, err := os.Stat(b.path(bundle))
	return err == nil && info.Mode().IsRegular()
}

// Write streams an archive into the store. Partially written bundles never
// become visible.
func (b *BundleStore) Write(bundle domain.Bundle, r io.Reader) (int64, error) {
	path := b.path(bundle)
	n, err := writeStreamAtomic(path, func(w io.Writer) (int64, error) {
		return io.Copy(w, r)
	})
	if err != nil {
		return n, zerr.With(zerr.Wrap(err, "failed to store bundle"), "bundle", bundle.Name)
	}
	return n, nil
}

// ReadAsset returns the content of one packed asset.
func (b *BundleStore) ReadAsset(bundle domain.Bundle, assetPath string) ([]byte, error) {
	rc, err := b.open(bundle)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck // Read-only archive

	for _, f := range rc.File {
		if f.Name != assetPath {
			continue
		}
		data, err := readZipFile(f)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrBundleCorrupt.Error()), "asset", assetPath)
		}
		return data, nil
	}

	err = zerr.With(zerr.Wrap(domain.ErrAssetNotFound, "asset is not packed in bundle"), "asset", assetPath)
	return nil, zerr.With(err, "bundle", bundle.Name)
}

// Assets lists the asset paths packed in the bundle.
func (b *BundleStore) Assets(bundle domain.Bundle) ([]string, error) {
	rc, err := b.open(bundle)
	if err != nil {
		return nil, err
	}
	defer rc.Close() //nolint:errcheck // Read-only archive

	names := make([]string, 0, len(rc.File))
	for _, f := range rc.File {
		names = append(names, f.Name)
	}
	return names, nil
}

func (b *BundleStore) open(bundle domain.Bundle) (*zip.ReadCloser, error) {
	path := b.path(bundle)
	rc, err := zip.OpenReader(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, zerr.With(zerr.Wrap(domain.ErrBundleNotFound, "bundle is not downloaded"), "bundle", bundle.Name)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrBundleCorrupt.Error()), "bundle", bundle.Name)
	}
	rc.RegisterDecompressor(zstd.ZipMethodWinZip, zstd.ZipDecompressor())
	return rc, nil
}

func (b *BundleStore) path(bundle domain.Bundle) string {
	key := fmt.Sprintf("%016x", xxhash.Sum64String(bundle.Name+"@"+bundle.Hash))
	return filepath.Join(b.dir, key+domain.BundleExt)
}

func readZipFile(f *zip.File) ([]byte, error) {
	r, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer r.Close() //nolint:errcheck // Read-only entry
	return io.ReadAll(r)
}

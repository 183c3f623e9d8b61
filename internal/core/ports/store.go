package ports

import (
	"io"

	"go.trai.ch/catsync/internal/core/domain"
)

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// CatalogCacheStore persists the known remote catalog ids across restarts.
type CatalogCacheStore interface {
	// Save overwrites the persisted id list.
	Save(ids []domain.CatalogID) error

	// Load returns the persisted id list.
	// Returns nil, nil if nothing usable is cached.
	Load() ([]domain.CatalogID, error)

	// Purge deletes every cached catalog artifact under the cache root and
	// returns the deleted paths.
	Purge() ([]string, error)
}

// BundleStore keeps downloaded bundle archives.
type BundleStore interface {
	// Has reports whether the bundle is already stored at its published hash.
	Has(bundle domain.Bundle) bool

	// Write streams a bundle archive into the store and returns the number of bytes written.
	Write(bundle domain.Bundle, r io.Reader) (int64, error)

	// ReadAsset returns the content of one asset packed in the bundle.
	ReadAsset(bundle domain.Bundle, assetPath string) ([]byte, error)

	// Assets lists the asset paths packed in the bundle.
	Assets(bundle domain.Bundle) ([]string, error)
}

// PackedFile is one asset written into a bundle archive.
type PackedFile struct {
	Path string
	Data []byte
}

// ArtifactWriter publishes build outputs.
type ArtifactWriter interface {
	// WriteBundle packs files into <dir>/bundles/<name>.bundle and returns its record.
	WriteBundle(dir, name string, files []PackedFile) (domain.Bundle, error)

	// WriteCatalog writes the catalog document and its hash file into dir and returns the hash.
	WriteCatalog(dir string, catalog *domain.Catalog) (string, error)
}

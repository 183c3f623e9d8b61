package cas

import (
	"encoding/json"
	"io"
	"path/filepath"

	"github.com/klauspost/compress/zip"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ArtifactWriter = (*Publisher)(nil)

// Publisher writes catalogs and bundle archives into a build output directory.
type Publisher struct {
	hasher ports.Hasher
}

// NewPublisher creates a Publisher hashing artifacts with hasher.
func NewPublisher(hasher ports.Hasher) *Publisher {
	return &Publisher{hasher: hasher}
}

// WriteBundle packs files into <dir>/bundles/<name>.bundle using zstd entries.
func (p *Publisher) WriteBundle(dir, name string, files []ports.PackedFile) (domain.Bundle, error) {
	path := filepath.Join(dir, domain.BundleDirName, domain.BundleFileName(name))

	size, err := writeStreamAtomic(path, func(w io.Writer) (int64, error) {
		return writeArchive(w, files)
	})
	if err != nil {
		return domain.Bundle{}, zerr.With(zerr.Wrap(err, "failed to write bundle"), "bundle", name)
	}

	hash, err := p.hasher.ComputeFileHash(path)
	if err != nil {
		return domain.Bundle{}, err
	}

	assets := make([]string, 0, len(files))
	for _, f := range files {
		assets = append(assets, f.Path)
	}

	return domain.Bundle{
		Name:   name,
		Hash:   hash,
		Size:   size,
		Assets: assets,
	}, nil
}

// WriteCatalog writes catalog_<id>.json and catalog_<id>.hash into dir.
func (p *Publisher) WriteCatalog(dir string, catalog *domain.Catalog) (string, error) {
	data, err := json.MarshalIndent(catalog, "", "  ")
	if err != nil {
		return "", zerr.Wrap(err, "failed to encode catalog")
	}
	hash := p.hasher.HashBytes(data)

	jsonPath := filepath.Join(dir, domain.CatalogFileName(catalog.ID))
	if err := WriteFileAtomic(jsonPath, data); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write catalog"), "path", jsonPath)
	}

	hashPath := filepath.Join(dir, domain.CatalogHashFileName(catalog.ID))
	if err := WriteFileAtomic(hashPath, []byte(hash)); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to write catalog hash"), "path", hashPath)
	}

	return hash, nil
}

// countingWriter tracks the archive size while it is written.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}

func writeArchive(w io.Writer, files []ports.PackedFile) (int64, error) {
	cw := &countingWriter{w: w}
	zw := zip.NewWriter(cw)
	zw.RegisterCompressor(zstd.ZipMethodWinZip, zstd.ZipCompressor())

	for _, f := range files {
		entry, err := zw.CreateHeader(&zip.FileHeader{
			Name:   f.Path,
			Method: zstd.ZipMethodWinZip,
		})
		if err != nil {
			_ = zw.Close()
			return cw.n, err
		}
		if _, err := entry.Write(f.Data); err != nil {
			_ = zw.Close()
			return cw.n, err
		}
	}

	if err := zw.Close(); err != nil {
		return cw.n, err
	}
	return cw.n, nil
}

package domain

import (
	"path/filepath"
	"strings"
)

const (
	// CatsyncDirName is the name of the internal workspace directory.
	CatsyncDirName = ".catsync"

	// CacheDirName is the name of the local catalog cache directory.
	CacheDirName = "cache"

	// BundleDirName is the name of the directory holding downloaded bundles.
	BundleDirName = "bundles"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "catsync.yaml"

	// CatalogListFileName is the name of the file persisting the known catalog ids.
	CatalogListFileName = "catalogs.json"

	// CatalogFilePrefix prefixes every catalog artifact in the cache root.
	CatalogFilePrefix = "catalog_"

	// CatalogJSONExt is the extension of catalog documents.
	CatalogJSONExt = ".json"

	// CatalogHashExt is the extension of catalog hash files.
	CatalogHashExt = ".hash"

	// BundleExt is the extension of packed bundle archives.
	BundleExt = ".bundle"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultCacheRoot returns the default local cache root.
// It joins .catsync and cache.
func DefaultCacheRoot() string {
	return filepath.Join(CatsyncDirName, CacheDirName)
}

// CatalogFileName returns the document file name of a catalog, e.g. catalog_main.json.
func CatalogFileName(id CatalogID) string {
	return CatalogFilePrefix + string(id) + CatalogJSONExt
}

// CatalogHashFileName returns the hash file name of a catalog, e.g. catalog_main.hash.
func CatalogHashFileName(id CatalogID) string {
	return CatalogFilePrefix + string(id) + CatalogHashExt
}

// BundleFileName returns the archive file name of a bundle.
func BundleFileName(name string) string {
	if strings.HasSuffix(name, BundleExt) {
		return name
	}
	return name + BundleExt
}

// IsCatalogArtifact reports whether a file name belongs to the catalog
// hash/document family or is the catalog id list.
func IsCatalogArtifact(name string) bool {
	if name == CatalogListFileName {
		return true
	}
	if !strings.HasPrefix(name, CatalogFilePrefix) {
		return false
	}
	return strings.HasSuffix(name, CatalogHashExt) || strings.HasSuffix(name, CatalogJSONExt)
}

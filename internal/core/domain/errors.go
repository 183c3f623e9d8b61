package domain

import "go.trai.ch/zerr"

var (
	// ErrInitializationFailed is returned when the remote catalog subsystem cannot be initialized.
	ErrInitializationFailed = zerr.New("remote catalog initialization failed")

	// ErrCatalogCheckFailed is returned when the remote catalog hashes cannot be fetched.
	ErrCatalogCheckFailed = zerr.New("failed to check catalogs for updates")

	// ErrCatalogUpdateFailed is returned when updated catalogs cannot be applied.
	ErrCatalogUpdateFailed = zerr.New("failed to update catalogs")

	// ErrCatalogInvalid is returned when a catalog document fails validation.
	ErrCatalogInvalid = zerr.New("catalog document is invalid")

	// ErrCatalogHashMismatch is returned when a catalog document does not match its published hash.
	ErrCatalogHashMismatch = zerr.New("catalog document does not match its hash")

	// ErrCatalogNotConfigured is returned when an update names a catalog the client does not track.
	ErrCatalogNotConfigured = zerr.New("catalog is not configured")

	// ErrRemoteRequestFailed is returned when a remote request does not succeed.
	ErrRemoteRequestFailed = zerr.New("remote request failed")

	// ErrSizeQueryFailed is returned when the download size cannot be computed.
	ErrSizeQueryFailed = zerr.New("failed to compute download size")

	// ErrCacheReadFailed is returned when the catalog cache cannot be read.
	ErrCacheReadFailed = zerr.New("failed to read catalog cache")

	// ErrCacheParseFailed is returned when the catalog cache content is corrupt.
	ErrCacheParseFailed = zerr.New("failed to parse catalog cache")

	// ErrCacheWriteFailed is returned when the catalog cache cannot be written.
	ErrCacheWriteFailed = zerr.New("failed to write catalog cache")

	// ErrCachePurgeFailed is returned when cached catalog artifacts cannot be deleted.
	ErrCachePurgeFailed = zerr.New("failed to purge catalog cache")

	// ErrTransferFailed is reported on the final status of a failed transfer.
	ErrTransferFailed = zerr.New("transfer failed")

	// ErrTransferCancelled is reported on the final status of a cancelled transfer.
	ErrTransferCancelled = zerr.New("transfer cancelled")

	// ErrDownloadInProgress is returned when a download is requested while another one runs.
	ErrDownloadInProgress = zerr.New("a download is already in progress")

	// ErrBundleNotFound is returned when a bundle is not present in the local store.
	ErrBundleNotFound = zerr.New("bundle not found")

	// ErrBundleCorrupt is returned when a bundle archive cannot be read.
	ErrBundleCorrupt = zerr.New("bundle archive is corrupt")

	// ErrDependencyCount is returned when an indirect location has no resolved dependency.
	ErrDependencyCount = zerr.New("indirect location requires exactly one dependency")

	// ErrDependencyType is returned when an indirect location's dependency is not a container.
	ErrDependencyType = zerr.New("dependency is not of the expected container type")

	// ErrSubResourceNotFound is returned when the container does not pack the requested key.
	ErrSubResourceNotFound = zerr.New("sub-resource not found in container")

	// ErrDependencyCycle is returned when a location depends on itself through its dependencies.
	ErrDependencyCycle = zerr.New("resource dependencies form a cycle")

	// ErrResourceKeyNotFound is returned when no catalog declares the requested key.
	ErrResourceKeyNotFound = zerr.New("resource key not found")

	// ErrUnknownProvider is returned when a location names a provider that is not registered.
	ErrUnknownProvider = zerr.New("unknown provider")

	// ErrAssetNotFound is returned when an asset is missing from the project or bundle.
	ErrAssetNotFound = zerr.New("asset not found")

	// ErrAssetReadFailed is returned when an asset cannot be read.
	ErrAssetReadFailed = zerr.New("failed to read asset")

	// ErrManifestParseFailed is returned when a container manifest cannot be parsed.
	ErrManifestParseFailed = zerr.New("failed to parse container manifest")

	// ErrBuildFailed is returned when the catalog build cannot complete.
	ErrBuildFailed = zerr.New("catalog build failed")

	// ErrConfigReadFailed is returned when the configuration file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the configuration file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidConfig is returned when the configuration is semantically invalid.
	ErrInvalidConfig = zerr.New("invalid configuration")
)

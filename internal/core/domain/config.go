package domain

import "time"

const (
	// DefaultTickInterval is the default progress polling interval.
	DefaultTickInterval = 100 * time.Millisecond

	// DefaultRemoteTimeout bounds a single remote request.
	DefaultRemoteTimeout = 30 * time.Second

	// DefaultParallelism is the default number of concurrent bundle downloads.
	DefaultParallelism = 4

	// DefaultInstantiationSuffix is appended by the host to duplicated resources.
	DefaultInstantiationSuffix = "(Clone)"
)

// LoaderMode selects the resource loading implementation.
type LoaderMode string

const (
	// LoaderModeAsync loads from downloaded catalogs and bundles.
	LoaderModeAsync LoaderMode = "async"
	// LoaderModeSync loads straight from the project tree.
	LoaderModeSync LoaderMode = "sync"
)

// Config is the resolved catsync configuration.
type Config struct {
	// CacheRoot is the local persistent cache root.
	CacheRoot string
	Remote    RemoteConfig
	Download  DownloadConfig
	Indexer   IndexerConfig
	Build     BuildConfig
	Loader    LoaderMode
}

// RemoteConfig configures the remote catalog subsystem.
type RemoteConfig struct {
	BaseURL     string
	Catalogs    []CatalogID
	Timeout     time.Duration
	Parallelism int
}

// DownloadConfig configures the download session.
type DownloadConfig struct {
	TickInterval time.Duration
}

// IndexerConfig configures the sub-resource indexer.
type IndexerConfig struct {
	ContainerType         ResourceType
	InstantiationSuffixes []string
}

// BuildConfig configures the catalog build pipeline.
type BuildConfig struct {
	ProjectRoot string
	OutputDir   string
	CatalogID   CatalogID
	Version     string
	Groups      []BuildGroup
}

// BuildGroup is a set of project paths packed into one bundle.
type BuildGroup struct {
	Name  string
	Paths []string
}

// DefaultConfig returns a configuration with every default applied.
func DefaultConfig() *Config {
	return &Config{
		CacheRoot: DefaultCacheRoot(),
		Remote: RemoteConfig{
			Catalogs:    []CatalogID{"main"},
			Timeout:     DefaultRemoteTimeout,
			Parallelism: DefaultParallelism,
		},
		Download: DownloadConfig{
			TickInterval: DefaultTickInterval,
		},
		Indexer: IndexerConfig{
			ContainerType:         ResourceTypeAtlas,
			InstantiationSuffixes: []string{DefaultInstantiationSuffix},
		},
		Build: BuildConfig{
			ProjectRoot: "assets",
			OutputDir:   "build",
			CatalogID:   "main",
		},
		Loader: LoaderModeAsync,
	}
}

package config

// Catsyncfile represents the structure of the catsync.yaml configuration file.
type Catsyncfile struct {
	CacheRoot string      `yaml:"cache_root"`
	Remote    RemoteDTO   `yaml:"remote"`
	Download  DownloadDTO `yaml:"download"`
	Indexer   IndexerDTO  `yaml:"indexer"`
	Build     BuildDTO    `yaml:"build"`
	Loader    LoaderDTO   `yaml:"loader"`
}

// RemoteDTO configures the remote catalog subsystem.
type RemoteDTO struct {
	BaseURL     string   `yaml:"base_url"`
	Catalogs    []string `yaml:"catalogs"`
	Timeout     string   `yaml:"timeout"`
	Parallelism int      `yaml:"parallelism"`
}

// DownloadDTO configures the download session.
type DownloadDTO struct {
	TickInterval string `yaml:"tick_interval"`
}

// IndexerDTO configures the sub-resource indexer.
type IndexerDTO struct {
	ContainerType         string   `yaml:"container_type"`
	InstantiationSuffixes []string `yaml:"instantiation_suffixes"`
}

// BuildDTO configures the catalog build pipeline.
type BuildDTO struct {
	ProjectRoot string     `yaml:"project_root"`
	OutputDir   string     `yaml:"output_dir"`
	CatalogID   string     `yaml:"catalog_id"`
	Version     string     `yaml:"version"`
	Groups      []GroupDTO `yaml:"groups"`
}

// GroupDTO is one bundle group of the build.
type GroupDTO struct {
	Name  string   `yaml:"name"`
	Paths []string `yaml:"paths"`
}

// LoaderDTO selects the resource loader.
type LoaderDTO struct {
	Mode string `yaml:"mode"`
}

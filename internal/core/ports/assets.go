package ports

import "go.trai.ch/catsync/internal/core/domain"

//go:generate mockgen -source=assets.go -destination=mocks/mock_assets.go -package=mocks

// AssetDatabase exposes the project's asset graph at build time.
type AssetDatabase interface {
	// MainType returns the asset type of a project-relative path.
	MainType(path string) (domain.ResourceType, error)

	// IsFolder reports whether the path is a directory.
	IsFolder(path string) bool

	// Expand returns the files contained in a folder, sorted.
	Expand(path string) ([]string, error)

	// Dependencies returns the transitive dependencies of an asset, the asset itself first.
	Dependencies(path string) ([]string, error)

	// PackedSubResources returns the names a container packs, in its native order.
	PackedSubResources(path string) ([]string, error)
}

// BuildContext collects the entries and provider types of the catalog under construction.
type BuildContext interface {
	AddLocation(entry domain.CatalogEntry)
	RegisterProviderType(id domain.ProviderID)
}

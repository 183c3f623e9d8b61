package ports

// Hasher computes the content hashes published next to catalogs and bundles.
//
//go:generate mockgen -destination=mocks/mock_hasher.go -package=mocks -source=hasher.go
type Hasher interface {
	// HashBytes returns the hex encoded hash of data.
	HashBytes(data []byte) string

	// ComputeFileHash returns the hex encoded hash of a file's content.
	ComputeFileHash(path string) (string, error)
}

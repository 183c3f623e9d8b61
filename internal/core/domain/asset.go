package domain

import (
	"fmt"
	"path"
	"strings"
)

// AssetEntry is one node of the project's asset graph.
type AssetEntry struct {
	// Path is the project-relative, slash-separated asset path.
	Path string
	// Key is the primary catalog key of the entry.
	Key string
	// Type is the main asset type.
	Type ResourceType
	// Bundle is the bundle the asset is packed into.
	Bundle string
	// IsFolder marks entries standing for a whole directory.
	IsFolder bool
}

// AssetName returns the file stem of a slash-separated path.
func AssetName(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// HasElementSuffix reports whether the path carries a file extension.
func HasElementSuffix(p string) bool {
	return path.Ext(path.Base(p)) != ""
}

// ContainerIndex maps sub-resource names of one container to the path they
// were discovered at. The first occurrence of a name wins.
type ContainerIndex struct {
	paths      map[string]string
	duplicates []string
}

// NewContainerIndex creates an empty index.
func NewContainerIndex() *ContainerIndex {
	return &ContainerIndex{paths: make(map[string]string)}
}

// Add records name at path. It returns false when the name was already indexed.
func (c *ContainerIndex) Add(name, p string) bool {
	if _, ok := c.paths[name]; ok {
		c.duplicates = append(c.duplicates, p)
		return false
	}
	c.paths[name] = p
	return true
}

// Lookup returns the discovered path for name.
func (c *ContainerIndex) Lookup(name string) (string, bool) {
	p, ok := c.paths[name]
	return p, ok
}

// Len returns the number of indexed names.
func (c *ContainerIndex) Len() int {
	return len(c.paths)
}

// Duplicates returns the paths dropped because their name was already indexed.
func (c *ContainerIndex) Duplicates() []string {
	return c.duplicates
}

// DiagnosticKind classifies a build-time diagnostic.
type DiagnosticKind string

const (
	// DiagnosticUnmatchedSubResource is reported for a packed sub-resource with
	// no discoverable dependency path.
	DiagnosticUnmatchedSubResource DiagnosticKind = "unmatched_sub_resource"
	// DiagnosticDuplicateName is reported when two dependencies of one
	// container share a name.
	DiagnosticDuplicateName DiagnosticKind = "duplicate_name"
	// DiagnosticMissingElement is reported when a container lists an element
	// that is absent from the project.
	DiagnosticMissingElement DiagnosticKind = "missing_element"
)

// Diagnostic is a non-fatal build-time warning.
type Diagnostic struct {
	Kind          DiagnosticKind
	SubResource   string
	ContainerPath string
	Path          string
}

// String renders the diagnostic for logs.
func (d Diagnostic) String() string {
	switch d.Kind {
	case DiagnosticUnmatchedSubResource:
		return fmt.Sprintf("sub-resource %q packed in %s has no matching dependency", d.SubResource, d.ContainerPath)
	case DiagnosticDuplicateName:
		return fmt.Sprintf("duplicate sub-resource name %q in %s, dropped %s", d.SubResource, d.ContainerPath, d.Path)
	case DiagnosticMissingElement:
		return fmt.Sprintf("%s lists %s, which is missing from the project", d.ContainerPath, d.Path)
	default:
		return fmt.Sprintf("%s: %s in %s", d.Kind, d.SubResource, d.ContainerPath)
	}
}

// ContainerManifest is the decoded content of a container asset.
type ContainerManifest struct {
	// Sprites lists the project-relative paths packed into the container.
	Sprites []string
	// Packed optionally overrides the names the container reports for its
	// sprites, in native order.
	Packed []string
}

// PackedNames returns the names the container packs, in native order.
func (m ContainerManifest) PackedNames() []string {
	if len(m.Packed) > 0 {
		return m.Packed
	}
	names := make([]string, 0, len(m.Sprites))
	for _, p := range m.Sprites {
		names = append(names, AssetName(p))
	}
	return names
}

// Package indexer synthesizes secondary catalog entries for the sub-resources
// packed inside container assets.
package indexer

import (
	"errors"
	"strings"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
)

// Indexer scans container entries of the asset graph and emits one indirect
// catalog entry per packed sub-resource it can match to a dependency path.
type Indexer struct {
	db            ports.AssetDatabase
	containerType domain.ResourceType
	suffixes      []string
}

// New creates an Indexer. An empty container type falls back to atlases.
func New(db ports.AssetDatabase, cfg domain.IndexerConfig) *Indexer {
	containerType := cfg.ContainerType
	if containerType == "" {
		containerType = domain.ResourceTypeAtlas
	}
	return &Indexer{
		db:            db,
		containerType: containerType,
		suffixes:      cfg.InstantiationSuffixes,
	}
}

// Index emits the secondary entries of one asset-graph entry into bctx.
// Non-container entries are a no-op. Sub-resources without a matching
// dependency and duplicate names are reported as diagnostics.
func (i *Indexer) Index(entry domain.AssetEntry, bctx ports.BuildContext) ([]domain.Diagnostic, error) {
	if entry.IsFolder || entry.Type != i.containerType {
		return nil, nil
	}

	index, diags, err := i.buildIndex(entry.Path)
	if err != nil {
		return nil, err
	}

	packed, err := i.db.PackedSubResources(entry.Path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to enumerate packed sub-resources"), "container", entry.Path)
	}

	emitted := false
	for _, raw := range packed {
		name := i.normalize(raw)
		p, ok := index.Lookup(name)
		if !ok {
			diags = append(diags, domain.Diagnostic{
				Kind:          domain.DiagnosticUnmatchedSubResource,
				SubResource:   name,
				ContainerPath: entry.Path,
			})
			continue
		}

		bctx.AddLocation(domain.CatalogEntry{
			Key:          name,
			ResourceType: domain.ResourceTypeSprite,
			ProviderID:   domain.IndirectProviderID,
			InternalID:   p,
			Dependencies: []string{entry.Key},
			Bundle:       entry.Bundle,
		})
		emitted = true
	}

	if emitted {
		bctx.RegisterProviderType(domain.IndirectProviderID)
	}
	return diags, nil
}

// IndexAll indexes every entry, expanding folder entries to the files they
// contain first. Diagnostics of the whole pass are returned together.
func (i *Indexer) IndexAll(entries []domain.AssetEntry, bctx ports.BuildContext) ([]domain.Diagnostic, error) {
	var diags []domain.Diagnostic
	for _, entry := range entries {
		expanded, err := i.expand(entry)
		if err != nil {
			return diags, err
		}
		for _, e := range expanded {
			d, err := i.Index(e, bctx)
			if err != nil {
				return diags, err
			}
			diags = append(diags, d...)
		}
	}
	return diags, nil
}

// expand returns the file entries a folder entry stands for, or the entry
// itself when it is a file.
func (i *Indexer) expand(entry domain.AssetEntry) ([]domain.AssetEntry, error) {
	if !entry.IsFolder {
		return []domain.AssetEntry{entry}, nil
	}

	files, err := i.db.Expand(entry.Path)
	if err != nil {
		return nil, err
	}
	out := make([]domain.AssetEntry, 0, len(files))
	for _, f := range files {
		typ, err := i.db.MainType(f)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.AssetEntry{
			Path:   f,
			Key:    f,
			Type:   typ,
			Bundle: entry.Bundle,
		})
	}
	return out, nil
}

// buildIndex maps the names of a container's element dependencies to their
// paths. Nested containers and paths without an extension are skipped;
// elements missing from the project become diagnostics.
func (i *Indexer) buildIndex(container string) (*domain.ContainerIndex, []domain.Diagnostic, error) {
	deps, err := i.db.Dependencies(container)
	if err != nil {
		return nil, nil, zerr.With(zerr.Wrap(err, "failed to enumerate container dependencies"), "container", container)
	}

	index := domain.NewContainerIndex()
	var diags []domain.Diagnostic
	for _, dep := range deps {
		if !domain.HasElementSuffix(dep) {
			continue
		}
		typ, err := i.db.MainType(dep)
		if errors.Is(err, domain.ErrAssetNotFound) {
			diags = append(diags, domain.Diagnostic{
				Kind:          domain.DiagnosticMissingElement,
				SubResource:   domain.AssetName(dep),
				ContainerPath: container,
				Path:          dep,
			})
			continue
		}
		if err != nil {
			return nil, nil, zerr.With(err, "container", container)
		}
		if typ == i.containerType {
			continue
		}

		name := domain.AssetName(dep)
		if !index.Add(name, dep) {
			diags = append(diags, domain.Diagnostic{
				Kind:          domain.DiagnosticDuplicateName,
				SubResource:   name,
				ContainerPath: container,
				Path:          dep,
			})
		}
	}
	return index, diags, nil
}

// normalize strips instantiation markers the host appends to duplicated
// resources, e.g. "icon(Clone)" becomes "icon".
func (i *Indexer) normalize(name string) string {
	for {
		trimmed := strings.TrimSpace(name)
		for _, s := range i.suffixes {
			if s != "" {
				trimmed = strings.TrimSuffix(trimmed, s)
			}
		}
		if trimmed == name {
			return name
		}
		name = trimmed
	}
}

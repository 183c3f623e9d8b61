// Package catalogbuild turns a project tree into a published catalog and its
// bundle archives.
package catalogbuild

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/catsync/internal/engine/indexer"
	"go.trai.ch/zerr"
)

// AssetGraph is the project view the builder reads from.
type AssetGraph interface {
	ports.AssetDatabase
	ports.AssetSource
}

// Result describes one finished build.
type Result struct {
	Catalog     *domain.Catalog
	Hash        string
	OutputDir   string
	Diagnostics []domain.Diagnostic
}

// Builder gathers assets per group, packs bundles and writes the catalog.
type Builder struct {
	graph     AssetGraph
	indexer   *indexer.Indexer
	writer    ports.ArtifactWriter
	logger    ports.Logger
	telemetry ports.Telemetry
}

// New creates a Builder.
func New(
	graph AssetGraph,
	idx *indexer.Indexer,
	writer ports.ArtifactWriter,
	log ports.Logger,
	telemetry ports.Telemetry,
) *Builder {
	return &Builder{
		graph:     graph,
		indexer:   idx,
		writer:    writer,
		logger:    log,
		telemetry: telemetry,
	}
}

// group is one configured bundle after folder expansion.
type group struct {
	name    string
	entries []domain.AssetEntry
	files   []string
}

// Build writes bundles/<group>.bundle, catalog_<id>.json and catalog_<id>.hash
// into the configured output directory.
func (b *Builder) Build(ctx context.Context, cfg domain.BuildConfig) (result *Result, err error) {
	_, vertex := b.telemetry.Record(ctx, "build "+string(cfg.CatalogID))
	defer func() { vertex.Complete(err) }()

	groups, err := b.gather(cfg)
	if err != nil {
		return nil, err
	}

	bctx, diags, err := b.index(groups)
	if err != nil {
		return nil, err
	}

	catalog := &domain.Catalog{
		ID:            cfg.CatalogID,
		Version:       cfg.Version,
		ProviderTypes: bctx.ProviderTypes(),
		Entries:       bctx.Entries(),
	}

	for _, g := range groups {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		bundle, err := b.pack(ctx, cfg.OutputDir, g)
		if err != nil {
			return nil, err
		}
		catalog.Bundles = append(catalog.Bundles, bundle)
		vertex.Log(domain.LogLevelInfo, fmt.Sprintf("packed %s: %d asset(s), %s",
			domain.BundleFileName(bundle.Name), len(bundle.Assets), domain.FormatSize(bundle.Size)))
	}

	hash, err := b.writer.WriteCatalog(cfg.OutputDir, catalog)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	vertex.Log(domain.LogLevelInfo, fmt.Sprintf("wrote %s (%s)", domain.CatalogFileName(catalog.ID), hash))

	b.report(diags)
	return &Result{
		Catalog:     catalog,
		Hash:        hash,
		OutputDir:   cfg.OutputDir,
		Diagnostics: diags,
	}, nil
}

// Entries runs the gathering and indexing pass without writing anything.
func (b *Builder) Entries(_ context.Context, cfg domain.BuildConfig) ([]domain.CatalogEntry, error) {
	groups, err := b.gather(cfg)
	if err != nil {
		return nil, err
	}
	bctx, diags, err := b.index(groups)
	if err != nil {
		return nil, err
	}
	b.report(diags)
	return bctx.Entries(), nil
}

// gather expands the configured groups into file entries. A path claimed by
// an earlier group is skipped. Atlas sprites are packed into the atlas's
// bundle so the atlas can be loaded from a single archive.
func (b *Builder) gather(cfg domain.BuildConfig) ([]group, error) {
	if len(cfg.Groups) == 0 {
		return nil, zerr.Wrap(domain.ErrBuildFailed, "no build groups configured")
	}

	claimed := make(map[string]string)
	groups := make([]group, 0, len(cfg.Groups))
	for _, cg := range cfg.Groups {
		g := group{name: cg.Name}
		for _, p := range cg.Paths {
			paths := []string{p}
			if b.graph.IsFolder(p) {
				expanded, err := b.graph.Expand(p)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "group", cg.Name)
				}
				paths = expanded
			}

			for _, asset := range paths {
				if owner, ok := claimed[asset]; ok {
					if owner != cg.Name {
						b.logger.Warn(fmt.Sprintf("%s is already packed in group %s, skipped in %s", asset, owner, cg.Name))
					}
					continue
				}
				typ, err := b.graph.MainType(asset)
				if err != nil {
					return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "group", cg.Name)
				}
				claimed[asset] = cg.Name
				g.entries = append(g.entries, domain.AssetEntry{
					Path:   asset,
					Key:    asset,
					Type:   typ,
					Bundle: cg.Name,
				})
			}
		}

		files, err := b.packedFiles(g.entries)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "group", cg.Name)
		}
		g.files = files
		groups = append(groups, g)
	}
	return groups, nil
}

// packedFiles returns the group's assets followed by the dependencies they
// pull in, each once. Dependencies missing from the project are left out; the
// indexer reports them.
func (b *Builder) packedFiles(entries []domain.AssetEntry) ([]string, error) {
	var files []string
	for _, e := range entries {
		deps, err := b.graph.Dependencies(e.Path)
		if err != nil {
			return nil, err
		}
		for _, dep := range deps {
			if slices.Contains(files, dep) {
				continue
			}
			if dep != e.Path {
				if _, err := b.graph.MainType(dep); errors.Is(err, domain.ErrAssetNotFound) {
					continue
				}
			}
			files = append(files, dep)
		}
	}
	return files, nil
}

// index emits one primary entry per asset and runs the sub-resource indexer
// over every entry.
func (b *Builder) index(groups []group) (*indexer.BuildContext, []domain.Diagnostic, error) {
	bctx := indexer.NewBuildContext()
	bctx.RegisterProviderType(domain.AssetProviderID)

	var all []domain.AssetEntry
	for _, g := range groups {
		for _, e := range g.entries {
			bctx.AddLocation(domain.CatalogEntry{
				Key:          e.Key,
				ResourceType: e.Type,
				ProviderID:   domain.AssetProviderID,
				InternalID:   e.Path,
				Bundle:       e.Bundle,
			})
		}
		all = append(all, g.entries...)
	}

	diags, err := b.indexer.IndexAll(all, bctx)
	if err != nil {
		return nil, nil, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	return bctx, diags, nil
}

func (b *Builder) pack(ctx context.Context, outDir string, g group) (domain.Bundle, error) {
	files := make([]ports.PackedFile, 0, len(g.files))
	for _, p := range g.files {
		data, err := b.graph.ReadAsset(ctx, domain.ResourceLocation{InternalID: p, Bundle: g.name}, p)
		if err != nil {
			return domain.Bundle{}, zerr.With(zerr.Wrap(err, domain.ErrBuildFailed.Error()), "group", g.name)
		}
		files = append(files, ports.PackedFile{Path: p, Data: data})
	}

	bundle, err := b.writer.WriteBundle(filepath.Clean(outDir), g.name, files)
	if err != nil {
		return domain.Bundle{}, zerr.Wrap(err, domain.ErrBuildFailed.Error())
	}
	return bundle, nil
}

// report logs the diagnostics of a full pass.
func (b *Builder) report(diags []domain.Diagnostic) {
	for _, d := range diags {
		b.logger.Warn(d.String())
	}
	if len(diags) > 0 {
		b.logger.Warn(fmt.Sprintf("%d sub-resource diagnostic(s)", len(diags)))
	}
}

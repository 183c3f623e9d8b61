// Package config provides the configuration loader for catsync.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"path/filepath"
	"slices"
	"time"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*FileConfigLoader)(nil)

// FileConfigLoader implements ports.ConfigLoader using a YAML file.
type FileConfigLoader struct {
	Filename string
	logger   ports.Logger
}

// NewLoader creates a loader reading catsync.yaml.
func NewLoader(log ports.Logger) *FileConfigLoader {
	return &FileConfigLoader{Filename: domain.ConfigFileName, logger: log}
}

// Load reads the configuration from the given working directory.
// Relative paths in the file are resolved against the file's directory.
func (l *FileConfigLoader) Load(cwd string) (*domain.Config, error) {
	path := l.Filename
	if !filepath.IsAbs(path) {
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if l.logger != nil {
				l.logger.Info(fmt.Sprintf("no %s found, using defaults", filepath.Base(path)))
			}
			return resolvePaths(domain.DefaultConfig(), cwd), nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	cfg, err := Parse(data)
	if err != nil {
		return nil, zerr.With(err, "path", path)
	}

	return resolvePaths(cfg, filepath.Dir(path)), nil
}

// Parse decodes a catsync.yaml document and applies defaults.
func Parse(data []byte) (*domain.Config, error) {
	var file Catsyncfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	cfg := domain.DefaultConfig()

	if file.CacheRoot != "" {
		cfg.CacheRoot = file.CacheRoot
	}

	if err := applyRemote(cfg, file.Remote); err != nil {
		return nil, err
	}

	if file.Download.TickInterval != "" {
		d, err := parsePositiveDuration("download.tick_interval", file.Download.TickInterval)
		if err != nil {
			return nil, err
		}
		cfg.Download.TickInterval = d
	}

	if file.Indexer.ContainerType != "" {
		cfg.Indexer.ContainerType = domain.ResourceType(file.Indexer.ContainerType)
	}
	if file.Indexer.InstantiationSuffixes != nil {
		cfg.Indexer.InstantiationSuffixes = slices.DeleteFunc(
			slices.Clone(file.Indexer.InstantiationSuffixes),
			func(s string) bool { return s == "" },
		)
	}

	applyBuild(cfg, file.Build)

	switch mode := domain.LoaderMode(file.Loader.Mode); mode {
	case "":
	case domain.LoaderModeAsync, domain.LoaderModeSync:
		cfg.Loader = mode
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unknown loader mode"), "mode", file.Loader.Mode)
	}

	return cfg, nil
}

func applyRemote(cfg *domain.Config, dto RemoteDTO) error {
	if dto.BaseURL != "" {
		u, err := url.Parse(dto.BaseURL)
		if err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), "base_url", dto.BaseURL)
		}
		switch u.Scheme {
		case "http", "https", "file":
		default:
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "unsupported remote scheme"), "base_url", dto.BaseURL)
		}
		cfg.Remote.BaseURL = dto.BaseURL
	}

	seen := make(map[string]bool, len(dto.Catalogs))
	catalogs := make([]domain.CatalogID, 0, len(dto.Catalogs))
	for _, id := range dto.Catalogs {
		if id == "" {
			return zerr.Wrap(domain.ErrInvalidConfig, "catalog id must not be empty")
		}
		if seen[id] {
			return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "duplicate catalog id"), "catalog", id)
		}
		seen[id] = true
		catalogs = append(catalogs, domain.CatalogID(id))
	}
	if len(catalogs) > 0 {
		cfg.Remote.Catalogs = catalogs
	}

	if dto.Timeout != "" {
		d, err := parsePositiveDuration("remote.timeout", dto.Timeout)
		if err != nil {
			return err
		}
		cfg.Remote.Timeout = d
	}

	switch {
	case dto.Parallelism < 0:
		return zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "parallelism must be positive"), "parallelism", dto.Parallelism)
	case dto.Parallelism > 0:
		cfg.Remote.Parallelism = dto.Parallelism
	}

	return nil
}

func applyBuild(cfg *domain.Config, dto BuildDTO) {
	if dto.ProjectRoot != "" {
		cfg.Build.ProjectRoot = dto.ProjectRoot
	}
	if dto.OutputDir != "" {
		cfg.Build.OutputDir = dto.OutputDir
	}
	if dto.CatalogID != "" {
		cfg.Build.CatalogID = domain.CatalogID(dto.CatalogID)
	}
	cfg.Build.Version = dto.Version

	for _, g := range dto.Groups {
		cfg.Build.Groups = append(cfg.Build.Groups, domain.BuildGroup{
			Name:  g.Name,
			Paths: slices.Clone(g.Paths),
		})
	}
}

func parsePositiveDuration(field, value string) (time.Duration, error) {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrInvalidConfig.Error()), field, value)
	}
	if d <= 0 {
		return 0, zerr.With(zerr.Wrap(domain.ErrInvalidConfig, "duration must be positive"), field, value)
	}
	return d, nil
}

func resolvePaths(cfg *domain.Config, dir string) *domain.Config {
	cfg.CacheRoot = resolve(dir, cfg.CacheRoot)
	cfg.Build.ProjectRoot = resolve(dir, cfg.Build.ProjectRoot)
	cfg.Build.OutputDir = resolve(dir, cfg.Build.OutputDir)
	return cfg
}

func resolve(dir, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(dir, p)
}

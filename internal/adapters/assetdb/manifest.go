package assetdb

import (
	"path"
	"strings"

	"go.trai.ch/catsync/internal/core/domain"
	"go.trai.ch/catsync/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ContainerDecoder = ManifestDecoder{}

// ManifestDTO is the YAML document stored in an .atlas file.
type ManifestDTO struct {
	Sprites []string `yaml:"sprites"`
	Packed  []string `yaml:"packed,omitempty"`
}

// ManifestDecoder parses atlas manifests.
type ManifestDecoder struct{}

// DecodeContainer parses an atlas manifest. Sprite paths are cleaned and must
// stay inside the project.
func (ManifestDecoder) DecodeContainer(data []byte) (domain.ContainerManifest, error) {
	var dto ManifestDTO
	if err := yaml.Unmarshal(data, &dto); err != nil {
		return domain.ContainerManifest{}, zerr.Wrap(err, domain.ErrManifestParseFailed.Error())
	}

	m := domain.ContainerManifest{
		Sprites: make([]string, 0, len(dto.Sprites)),
		Packed:  dto.Packed,
	}
	for _, p := range dto.Sprites {
		clean, ok := cleanPath(p)
		if !ok {
			return domain.ContainerManifest{}, zerr.With(
				zerr.Wrap(domain.ErrManifestParseFailed, "sprite path escapes the project"), "sprite", p)
		}
		m.Sprites = append(m.Sprites, clean)
	}
	if len(m.Packed) > 0 && len(m.Packed) != len(m.Sprites) {
		return domain.ContainerManifest{}, zerr.With(
			zerr.Wrap(domain.ErrManifestParseFailed, "packed names must match sprites"),
			"sprites", len(m.Sprites))
	}
	return m, nil
}

// EncodeContainer renders a manifest back to YAML.
func EncodeContainer(m domain.ContainerManifest) ([]byte, error) {
	return yaml.Marshal(ManifestDTO{Sprites: m.Sprites, Packed: m.Packed})
}

func cleanPath(p string) (string, bool) {
	p = path.Clean(strings.ReplaceAll(p, "\\", "/"))
	if p == "." || p == ".." || path.IsAbs(p) || strings.HasPrefix(p, "../") {
		return "", false
	}
	return p, true
}

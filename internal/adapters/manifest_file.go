package adapters

import (
	_ "embed"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"ros-pip-setup/internal/ports"
	"ros-pip-setup/internal/types"
)

//go:embed defaults/pip3-manifest.yaml
var defaultManifest []byte

type ManifestFileAdapter struct{}

func NewManifestFileAdapter() ManifestFileAdapter {
	return ManifestFileAdapter{}
}

func (a ManifestFileAdapter) LoadManifest(path string) (types.Manifest, error) {
	if path == "" {
		return a.parse(defaultManifest)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("manifest file not found").
			WithCause(err)
	}
	return a.parse(data)
}

func (a ManifestFileAdapter) parse(data []byte) (types.Manifest, error) {
	var manifest types.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("failed to parse manifest yaml").
			WithCause(err)
	}
	if manifest.Kind != types.ManifestKindPip {
		return types.Manifest{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest kind is not pip-manifest")
	}
	return manifest, nil
}

var _ ports.ManifestPort = ManifestFileAdapter{}

package app

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/core"
	"ros-pip-setup/internal/types"
)

func (s Service) Manifest(ctx context.Context, req ManifestRequest) (ManifestResult, error) {
	manifest, err := s.Manifests.LoadManifest(strings.TrimSpace(req.ManifestPath))
	if err != nil {
		return ManifestResult{}, err
	}
	specs, err := core.ValidateManifest(ctx, manifest)
	if err != nil {
		return ManifestResult{}, err
	}
	return ManifestResult{Manifest: manifest, Specs: specs}, nil
}

// resolveInstallRoot picks the explicit root, then the manifest default,
// then <cwd>/.pip_install_dir, and makes it absolute.
func (s Service) resolveInstallRoot(explicit string, manifest types.Manifest) (string, error) {
	root := strings.TrimSpace(explicit)
	if root == "" {
		root = strings.TrimSpace(manifest.Defaults.InstallRoot)
	}
	if root == "" {
		root = core.DefaultInstallRoot
	}
	if filepath.IsAbs(root) {
		return filepath.Clean(root), nil
	}
	getwd := s.Getwd
	if getwd == nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("working directory lookup is not configured")
	}
	cwd, err := getwd()
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to determine working directory").
			WithCause(err)
	}
	return filepath.Join(cwd, root), nil
}

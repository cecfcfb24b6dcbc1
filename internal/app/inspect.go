package app

import (
	"context"

	"ros-pip-setup/internal/core"
	"ros-pip-setup/internal/shared"
)

func (s Service) Inspect(ctx context.Context, req InspectRequest) (InspectResult, error) {
	loaded, err := s.Manifest(ctx, ManifestRequest{ManifestPath: req.ManifestPath})
	if err != nil {
		return InspectResult{}, err
	}
	root, err := s.resolveInstallRoot(req.InstallRoot, loaded.Manifest)
	if err != nil {
		return InspectResult{}, err
	}
	installed, err := s.Inventory.Installed(root)
	if err != nil {
		return InspectResult{}, err
	}
	mismatches, err := core.CheckConstraints(loaded.Specs, installed)
	if err != nil {
		return InspectResult{}, err
	}
	present := map[string]struct{}{}
	for _, pkg := range installed {
		present[shared.NormalizePipName(pkg.Name)] = struct{}{}
	}
	result := InspectResult{
		InstallRoot: root,
		Packages:    installed,
		Mismatches:  mismatches,
	}
	for _, spec := range loaded.Specs {
		if _, ok := present[shared.NormalizePipName(spec.Name)]; !ok {
			result.Missing = append(result.Missing, spec)
		}
	}
	return result, nil
}

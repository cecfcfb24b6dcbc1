package core

import (
	"context"
	"fmt"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/shared"
	"ros-pip-setup/internal/types"
)

// ValidateManifest parses every package entry and rejects empty lists,
// duplicate packages and specifiers the installer would refuse. The
// returned specs keep manifest order.
func ValidateManifest(ctx context.Context, manifest types.Manifest) ([]types.PackageSpec, error) {
	assert.NotEmpty(ctx, string(manifest.Kind), "kind must be set")
	if manifest.APIVersion == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest api_version must be set")
	}
	if len(manifest.Packages) == 0 {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("manifest must list at least one package")
	}
	seen := map[string]string{}
	specs := make([]types.PackageSpec, 0, len(manifest.Packages))
	for _, raw := range manifest.Packages {
		spec, err := ParsePackageSpec(raw)
		if err != nil {
			return nil, err
		}
		key := shared.NormalizePipName(spec.Name)
		if previous, ok := seen[key]; ok {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("duplicate package in manifest: %s and %s", previous, raw))
		}
		seen[key] = raw
		specs = append(specs, spec)
	}
	if err := ValidateSpecifiers(specs); err != nil {
		return nil, err
	}
	return specs, nil
}

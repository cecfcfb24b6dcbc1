package app

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ros-pip-setup/internal/core"
	"ros-pip-setup/internal/types"
)

// Install runs the installer once over the manifest. A non-zero installer
// exit code is reported in the result, not as an error; the caller decides
// how to fail.
func (s Service) Install(ctx context.Context, req InstallRequest) (InstallResult, error) {
	loaded, err := s.Manifest(ctx, ManifestRequest{ManifestPath: req.ManifestPath})
	if err != nil {
		return InstallResult{}, err
	}
	root, err := s.resolveInstallRoot(req.InstallRoot, loaded.Manifest)
	if err != nil {
		return InstallResult{}, err
	}

	var before []types.InstalledPackage
	if req.Verify {
		before, err = s.snapshot(root)
		if err != nil {
			return InstallResult{}, err
		}
	}

	command := core.BuildInstallCommand(ctx, core.InstallCommandOptions{
		Installer: firstNonEmpty(req.Installer, loaded.Manifest.Installer, core.DefaultInstaller),
		Elevator:  firstNonEmpty(req.Elevator, loaded.Manifest.Defaults.Elevator, core.DefaultElevator),
		Elevate:   req.Elevate,
		Packages:  loaded.Manifest.Packages,
		Prefix:    root,
	})
	result := InstallResult{InstallRoot: root, Command: command}

	code, err := s.Runner.Run(ctx, command)
	result.ExitCode = code
	if err != nil {
		return result, err
	}
	if code != 0 {
		log.Error().Int("exit_code", code).Str("command", command.Name).Msg("installer failed")
		return result, nil
	}
	log.Info().Int("packages", len(loaded.Specs)).Str("dir", root).Msg("python dependencies installed")
	if !req.Verify {
		return result, nil
	}

	after, err := s.Inventory.Installed(root)
	if err != nil {
		return result, err
	}
	if changes := core.DetectDowngrades(before, after); len(changes) > 0 {
		var parts []string
		for _, change := range changes {
			parts = append(parts, fmt.Sprintf("%s %s -> %s", change.Package, change.Before, change.After))
		}
		return result, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg(fmt.Sprintf("packages downgraded: %s", strings.Join(parts, ", ")))
	}
	mismatches, err := core.CheckConstraints(loaded.Specs, after)
	if err != nil {
		return result, err
	}
	for _, mismatch := range mismatches {
		log.Warn().
			Str("package", mismatch.Spec.Name).
			Str("installed", mismatch.Installed).
			Str("wanted", mismatch.Spec.Raw).
			Msg("installed version does not satisfy manifest")
	}
	result.Mismatches = mismatches
	return result, nil
}

// snapshot returns the current inventory, treating a missing install root
// as empty.
func (s Service) snapshot(root string) ([]types.InstalledPackage, error) {
	installed, err := s.Inventory.Installed(root)
	if err != nil {
		if errbuilder.CodeOf(err) == errbuilder.CodeNotFound {
			return nil, nil
		}
		return nil, err
	}
	return installed, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if trimmed := strings.TrimSpace(value); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

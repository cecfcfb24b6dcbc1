package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/ports"
	"ros-pip-setup/internal/shared"
	"ros-pip-setup/internal/types"
)

// sitePackagePatterns are the locations pip uses under --prefix. Debian
// patched pips install into local/lib/.../dist-packages.
var sitePackagePatterns = []string{
	filepath.Join("lib", "*", "site-packages"),
	filepath.Join("lib", "*", "dist-packages"),
	filepath.Join("local", "lib", "*", "dist-packages"),
	filepath.Join("Lib", "site-packages"),
}

type InventoryAdapter struct{}

func NewInventoryAdapter() InventoryAdapter {
	return InventoryAdapter{}
}

// Installed reads every *.dist-info/METADATA and *.egg-info/PKG-INFO under
// the install root. The result is sorted by normalized package name.
func (a InventoryAdapter) Installed(root string) ([]types.InstalledPackage, error) {
	if _, err := os.Stat(root); err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("install root not found").
			WithCause(err)
	}
	found := map[string]types.InstalledPackage{}
	for _, pattern := range sitePackagePatterns {
		sites, err := filepath.Glob(filepath.Join(root, pattern))
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("invalid site-packages pattern").
				WithCause(err)
		}
		for _, site := range sites {
			if err := readSiteMetadata(site, found); err != nil {
				return nil, err
			}
		}
	}
	packages := make([]types.InstalledPackage, 0, len(found))
	for _, pkg := range found {
		packages = append(packages, pkg)
	}
	sort.Slice(packages, func(i, j int) bool {
		return packages[i].Name < packages[j].Name
	})
	return packages, nil
}

func readSiteMetadata(site string, found map[string]types.InstalledPackage) error {
	entries, err := os.ReadDir(site)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read pip metadata directory").
			WithCause(err)
	}
	for _, entry := range entries {
		var metadataPath string
		switch {
		case entry.IsDir() && strings.HasSuffix(entry.Name(), ".dist-info"):
			metadataPath = filepath.Join(site, entry.Name(), "METADATA")
		case entry.IsDir() && strings.HasSuffix(entry.Name(), ".egg-info"):
			metadataPath = filepath.Join(site, entry.Name(), "PKG-INFO")
		default:
			continue
		}
		content, err := os.ReadFile(metadataPath)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read pip metadata").
				WithCause(err)
		}
		name, version := parseMetadata(string(content))
		if name == "" || version == "" {
			continue
		}
		normalized := shared.NormalizePipName(name)
		found[normalized] = types.InstalledPackage{Name: normalized, Version: version}
	}
	return nil
}

// parseMetadata extracts Name and Version from the RFC 822 style header
// block of a METADATA or PKG-INFO file.
func parseMetadata(content string) (string, string) {
	var name string
	var version string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			break
		}
		switch {
		case strings.HasPrefix(line, "Name:"):
			name = strings.TrimSpace(strings.TrimPrefix(line, "Name:"))
		case strings.HasPrefix(line, "Version:"):
			version = strings.TrimSpace(strings.TrimPrefix(line, "Version:"))
		}
	}
	return name, version
}

var _ ports.InventoryPort = InventoryAdapter{}

package core

import (
	"fmt"
	"sort"

	"github.com/ZanzyTHEbar/errbuilder-go"
	pep440 "github.com/aquasecurity/go-pep440-version"

	"ros-pip-setup/internal/shared"
	"ros-pip-setup/internal/types"
)

// versionCache memoizes parsed PEP 440 versions and specifiers so that a
// manifest and two inventories can be compared without reparsing.
type versionCache struct {
	pep  map[string]pep440.Version
	spec map[string]pep440.Specifiers
}

func newVersionCache() *versionCache {
	return &versionCache{
		pep:  map[string]pep440.Version{},
		spec: map[string]pep440.Specifiers{},
	}
}

// pepVersion returns a parsed PEP 440 version, caching the result.
func (c *versionCache) pepVersion(value string) (pep440.Version, error) {
	if parsed, ok := c.pep[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.Parse(value)
	if err != nil {
		return pep440.Version{}, err
	}
	c.pep[value] = parsed
	return parsed, nil
}

// pepSpec returns parsed PEP 440 specifiers, caching the result.
func (c *versionCache) pepSpec(value string) (pep440.Specifiers, error) {
	if parsed, ok := c.spec[value]; ok {
		return parsed, nil
	}
	parsed, err := pep440.NewSpecifiers(value)
	if err != nil {
		return pep440.Specifiers{}, err
	}
	c.spec[value] = parsed
	return parsed, nil
}

// compare returns -1, 0, or 1 comparing two version strings. Returns 0 on
// parse errors.
func (c *versionCache) compare(a string, b string) int {
	v1, err := c.pepVersion(a)
	if err != nil {
		return 0
	}
	v2, err := c.pepVersion(b)
	if err != nil {
		return 0
	}
	return v1.Compare(v2)
}

// ValidateSpecifiers checks that every pinned spec carries a specifier set
// the installer will accept.
func ValidateSpecifiers(specs []types.PackageSpec) error {
	cache := newVersionCache()
	for _, spec := range specs {
		if !spec.Pinned() {
			continue
		}
		if _, err := cache.pepSpec(SpecifierString(spec)); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid version specifier for %s: %s", spec.Name, spec.Raw)).
				WithCause(err)
		}
	}
	return nil
}

// DetectDowngrades returns every package present in both inventories whose
// version is lower in after than in before, sorted by package name.
// Unparseable versions are never reported.
func DetectDowngrades(before []types.InstalledPackage, after []types.InstalledPackage) []types.VersionChange {
	cache := newVersionCache()
	previous := indexInstalled(before)
	var changes []types.VersionChange
	for _, pkg := range after {
		name := shared.NormalizePipName(pkg.Name)
		old, ok := previous[name]
		if !ok {
			continue
		}
		if cache.compare(pkg.Version, old) < 0 {
			changes = append(changes, types.VersionChange{
				Package: name,
				Before:  old,
				After:   pkg.Version,
			})
		}
	}
	sort.Slice(changes, func(i, j int) bool {
		return changes[i].Package < changes[j].Package
	})
	return changes
}

// CheckConstraints returns the pinned specs whose installed version does
// not satisfy the spec. Packages that are not installed are skipped.
func CheckConstraints(specs []types.PackageSpec, installed []types.InstalledPackage) ([]types.ConstraintMismatch, error) {
	cache := newVersionCache()
	versions := indexInstalled(installed)
	var mismatches []types.ConstraintMismatch
	for _, spec := range specs {
		if !spec.Pinned() {
			continue
		}
		version, ok := versions[shared.NormalizePipName(spec.Name)]
		if !ok {
			continue
		}
		specifiers, err := cache.pepSpec(SpecifierString(spec))
		if err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg(fmt.Sprintf("invalid version specifier for %s: %s", spec.Name, spec.Raw)).
				WithCause(err)
		}
		parsed, err := cache.pepVersion(version)
		if err != nil {
			continue
		}
		if !specifiers.Check(parsed) {
			mismatches = append(mismatches, types.ConstraintMismatch{Spec: spec, Installed: version})
		}
	}
	return mismatches, nil
}

func indexInstalled(installed []types.InstalledPackage) map[string]string {
	index := make(map[string]string, len(installed))
	for _, pkg := range installed {
		index[shared.NormalizePipName(pkg.Name)] = pkg.Version
	}
	return index
}

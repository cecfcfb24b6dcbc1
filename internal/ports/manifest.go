package ports

import "ros-pip-setup/internal/types"

type ManifestPort interface {
	// LoadManifest reads a manifest file. An empty path selects the
	// manifest embedded in the binary.
	LoadManifest(path string) (types.Manifest, error)
}

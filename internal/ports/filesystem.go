package ports

import "ros-pip-setup/internal/types"

// LibDirsPort discovers the directories an installer placed under a prefix.
type LibDirsPort interface {
	// ListSubdirs returns the absolute paths of the immediate
	// subdirectories of dir, sorted by name.
	ListSubdirs(dir string) ([]string, error)
}

// InventoryPort reads installed package metadata under an install root.
type InventoryPort interface {
	Installed(root string) ([]types.InstalledPackage, error)
}

// PathExportPort persists search path entries for later CI steps.
type PathExportPort interface {
	AppendPaths(file string, dirs []string) error
}

package types

type Metadata struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Description string `yaml:"description,omitempty"`
}

// ManifestDefaults carries values the CLI falls back to when neither a
// flag nor the environment provides one.
type ManifestDefaults struct {
	InstallRoot string `yaml:"install_root,omitempty"`
	Elevator    string `yaml:"elevator,omitempty"`
}

// Manifest is the versioned list of pip packages handed to the installer.
// Package order is preserved verbatim.
type Manifest struct {
	APIVersion string           `yaml:"api_version"`
	Kind       ManifestKind     `yaml:"kind"`
	Metadata   Metadata         `yaml:"metadata"`
	Installer  string           `yaml:"installer,omitempty"`
	Defaults   ManifestDefaults `yaml:"defaults,omitempty"`
	Packages   []string         `yaml:"packages"`
}

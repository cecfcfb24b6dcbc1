package app

import "ros-pip-setup/internal/types"

type ValidateRequest struct {
	Distributions string
}

type ValidateResult struct {
	Distributions []types.Distribution
}

type ManifestRequest struct {
	ManifestPath string
}

type ManifestResult struct {
	Manifest types.Manifest
	Specs    []types.PackageSpec
}

type InstallRequest struct {
	ManifestPath string
	InstallRoot  string
	Installer    string
	Elevator     string
	Elevate      bool
	Verify       bool
}

type InstallResult struct {
	InstallRoot string
	Command     types.Command
	ExitCode    int
	Mismatches  []types.ConstraintMismatch
}

type PathRequest struct {
	InstallRoot string
	CurrentPath string
}

type PathResult struct {
	Path      string
	Added     []string
	Separator string
}

type SetupRequest struct {
	Distributions string
	Install       InstallRequest
	GitHubPath    string
	Command       []string
}

type SetupResult struct {
	Distributions   []types.Distribution
	Install         InstallResult
	Path            PathResult
	CommandExitCode int
}

type InspectRequest struct {
	ManifestPath string
	InstallRoot  string
}

type InspectResult struct {
	InstallRoot string
	Packages    []types.InstalledPackage
	Mismatches  []types.ConstraintMismatch
	Missing     []types.PackageSpec
}

package core

import (
	"context"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"

	"ros-pip-setup/internal/types"
)

const (
	DefaultInstaller   = "pip3"
	DefaultElevator    = "sudo"
	DefaultInstallRoot = ".pip_install_dir"
)

type InstallCommandOptions struct {
	Installer string
	Elevator  string
	Elevate   bool
	Packages  []string
	Prefix    string
}

// BuildInstallCommand assembles
//
//	[elevator] <installer> install --upgrade <pkg>... --prefix <prefix>
//
// Packages are passed through verbatim and in order.
func BuildInstallCommand(ctx context.Context, opts InstallCommandOptions) types.Command {
	assert.NotEmpty(ctx, opts.Prefix, "install prefix must be set")
	installer := strings.TrimSpace(opts.Installer)
	if installer == "" {
		installer = DefaultInstaller
	}
	args := make([]string, 0, len(opts.Packages)+5)
	args = append(args, installer, "install", "--upgrade")
	args = append(args, opts.Packages...)
	args = append(args, "--prefix", opts.Prefix)

	if !opts.Elevate {
		return types.Command{Name: args[0], Args: args[1:]}
	}
	elevator := strings.TrimSpace(opts.Elevator)
	if elevator == "" {
		elevator = DefaultElevator
	}
	return types.Command{Name: elevator, Args: args}
}

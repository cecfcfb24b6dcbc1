package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
)

var newAppService = app.NewService

type installOptions struct {
	Manifest    string
	InstallRoot string
	Installer   string
	Elevator    string
	Elevate     bool
	Verify      bool
}

func addInstallFlags(cmd *cobra.Command, opts *installOptions) {
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package manifest file (defaults to the built-in manifest)")
	cmd.Flags().StringVar(&opts.InstallRoot, "install-root", "", "Install prefix (defaults to ./.pip_install_dir)")
	cmd.Flags().StringVar(&opts.Installer, "installer", "", "Installer executable (defaults to the manifest installer, then pip3)")
	cmd.Flags().StringVar(&opts.Elevator, "elevator", "", "Privilege elevation command (defaults to sudo)")
	cmd.Flags().BoolVar(&opts.Elevate, "elevate", true, "Run the installer through the elevation command")
	cmd.Flags().BoolVar(&opts.Verify, "verify", false, "Fail if any installed package was downgraded")

	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("install_root", cmd.Flags().Lookup("install-root"))
	_ = viper.BindPFlag("installer", cmd.Flags().Lookup("installer"))
	_ = viper.BindPFlag("elevator", cmd.Flags().Lookup("elevator"))
	_ = viper.BindPFlag("elevate", cmd.Flags().Lookup("elevate"))
	_ = viper.BindPFlag("verify", cmd.Flags().Lookup("verify"))
}

func installRequest(cmd *cobra.Command, opts installOptions) app.InstallRequest {
	return app.InstallRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		InstallRoot:  resolveString(cmd, opts.InstallRoot, "install_root", "install-root"),
		Installer:    resolveString(cmd, opts.Installer, "installer", "installer"),
		Elevator:     resolveString(cmd, opts.Elevator, "elevator", "elevator"),
		Elevate:      resolveBool(cmd, opts.Elevate, "elevate", "elevate"),
		Verify:       resolveBool(cmd, opts.Verify, "verify", "verify"),
	}
}

func resolveString(cmd *cobra.Command, value string, key string, flagName string) string {
	if cmd == nil {
		if value != "" {
			return value
		}
		return viper.GetString(key)
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	return viper.GetString(key)
}

func resolveBool(cmd *cobra.Command, value bool, key string, flagName string) bool {
	if cmd == nil {
		return value
	}
	if flagChanged(cmd, flagName) {
		return value
	}
	if !viper.IsSet(key) {
		return value
	}
	return viper.GetBool(key)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil || strings.TrimSpace(name) == "" {
		return false
	}
	if flag := cmd.Flags().Lookup(name); flag != nil {
		return flag.Changed
	}
	if flag := cmd.PersistentFlags().Lookup(name); flag != nil {
		return flag.Changed
	}
	return false
}

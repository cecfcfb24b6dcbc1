package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
)

type inspectOptions struct {
	Manifest    string
	InstallRoot string
}

func newInspectCommand() *cobra.Command {
	opts := inspectOptions{}
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Show installed packages and manifest drift",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInspect(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package manifest file (defaults to the built-in manifest)")
	cmd.Flags().StringVar(&opts.InstallRoot, "install-root", "", "Install prefix (defaults to ./.pip_install_dir)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	_ = viper.BindPFlag("install_root", cmd.Flags().Lookup("install-root"))
	return cmd
}

func runInspect(ctx context.Context, cmd *cobra.Command, opts inspectOptions) error {
	service := newAppService()
	result, err := service.Inspect(ctx, app.InspectRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
		InstallRoot:  resolveString(cmd, opts.InstallRoot, "install_root", "install-root"),
	})
	if err != nil {
		return err
	}

	fmt.Printf("install root: %s\n", result.InstallRoot)
	fmt.Printf("installed packages: %d\n", len(result.Packages))
	for _, pkg := range result.Packages {
		fmt.Printf("- %s %s\n", pkg.Name, pkg.Version)
	}
	fmt.Printf("unsatisfied constraints: %d\n", len(result.Mismatches))
	for _, mismatch := range result.Mismatches {
		fmt.Printf("- %s (installed %s)\n", mismatch.Spec.Raw, mismatch.Installed)
	}
	fmt.Printf("missing packages: %d\n", len(result.Missing))
	for _, spec := range result.Missing {
		fmt.Printf("- %s\n", spec.Raw)
	}
	return nil
}

package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
)

type manifestOptions struct {
	Manifest string
}

func newManifestCommand() *cobra.Command {
	opts := manifestOptions{}
	cmd := &cobra.Command{
		Use:   "manifest",
		Short: "Print the effective package manifest",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runManifest(cmd.Context(), cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Manifest, "manifest", "", "Package manifest file (defaults to the built-in manifest)")
	_ = viper.BindPFlag("manifest", cmd.Flags().Lookup("manifest"))
	return cmd
}

func runManifest(ctx context.Context, cmd *cobra.Command, opts manifestOptions) error {
	service := newAppService()
	result, err := service.Manifest(ctx, app.ManifestRequest{
		ManifestPath: resolveString(cmd, opts.Manifest, "manifest", "manifest"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("%s %s (%d packages)\n", result.Manifest.Metadata.Name, result.Manifest.Metadata.Version, len(result.Specs))
	for _, spec := range result.Specs {
		if spec.Pinned() {
			fmt.Printf("- %s %s %s\n", spec.Name, spec.Op, spec.Version)
			continue
		}
		fmt.Printf("- %s\n", spec.Name)
	}
	return nil
}

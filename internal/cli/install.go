package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newInstallCommand() *cobra.Command {
	opts := installOptions{}
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install the manifest packages into the install root",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runInstall(cmd.Context(), cmd, opts)
		},
	}
	addInstallFlags(cmd, &opts)
	return cmd
}

func runInstall(ctx context.Context, cmd *cobra.Command, opts installOptions) error {
	service := newAppService()
	result, err := service.Install(ctx, installRequest(cmd, opts))
	if err != nil {
		return err
	}
	if result.ExitCode != 0 {
		return &exitError{what: result.Command.Name, code: result.ExitCode}
	}
	fmt.Printf("installed: %s\n", result.InstallRoot)
	return nil
}

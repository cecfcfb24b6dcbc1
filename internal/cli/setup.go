package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
)

type setupOptions struct {
	installOptions
	Distributions string
	GitHubPath    string
}

func newSetupCommand() *cobra.Command {
	opts := setupOptions{}
	cmd := &cobra.Command{
		Use:   "setup [-- command [args...]]",
		Short: "Validate distributions, install dependencies and extend PATH",
		Long: "Runs the full CI sequence. When a command follows --, it is run " +
			"with the extended PATH and its exit code becomes the exit code of setup.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(cmd.Context(), cmd, opts, args)
		},
	}
	addInstallFlags(cmd, &opts.installOptions)
	cmd.Flags().StringVar(&opts.Distributions, "distributions", "", "Whitespace separated ROS distributions")
	cmd.Flags().StringVar(&opts.GitHubPath, "github-path", "", "File receiving PATH entries for later CI steps (defaults to $GITHUB_PATH)")
	_ = viper.BindPFlag("required_ros_distributions", cmd.Flags().Lookup("distributions"))
	_ = viper.BindPFlag("github_path", cmd.Flags().Lookup("github-path"))
	return cmd
}

func runSetup(ctx context.Context, cmd *cobra.Command, opts setupOptions, args []string) error {
	service := newAppService()
	result, err := service.Setup(ctx, app.SetupRequest{
		Distributions: resolveString(cmd, opts.Distributions, "required_ros_distributions", "distributions"),
		Install:       installRequest(cmd, opts.installOptions),
		GitHubPath:    resolveString(cmd, opts.GitHubPath, "github_path", "github-path"),
		Command:       args,
	})
	if err != nil {
		return err
	}
	if result.Install.ExitCode != 0 {
		return &exitError{what: result.Install.Command.Name, code: result.Install.ExitCode}
	}
	if len(args) > 0 {
		if result.CommandExitCode != 0 {
			return &exitError{what: args[0], code: result.CommandExitCode}
		}
		return nil
	}
	fmt.Printf("distributions: %s\n", describeDistributions(result.Distributions))
	fmt.Printf("PATH=%s\n", result.Path.Path)
	return nil
}

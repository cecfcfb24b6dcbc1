package cli

import (
	"fmt"
	"os"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
	"ros-pip-setup/internal/shared"
)

type pathOptions struct {
	InstallRoot string
	Format      string
}

func newPathCommand() *cobra.Command {
	opts := pathOptions{}
	cmd := &cobra.Command{
		Use:   "path",
		Short: "Print PATH extended with the install root lib directories",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPath(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.InstallRoot, "install-root", "", "Install prefix (defaults to ./.pip_install_dir)")
	cmd.Flags().StringVar(&opts.Format, "format", "plain", "Output format (plain or shell)")
	_ = viper.BindPFlag("install_root", cmd.Flags().Lookup("install-root"))
	return cmd
}

func runPath(cmd *cobra.Command, opts pathOptions) error {
	service := newAppService()
	result, err := service.SearchPath(app.PathRequest{
		InstallRoot: resolveString(cmd, opts.InstallRoot, "install_root", "install-root"),
		CurrentPath: os.Getenv("PATH"),
	})
	if err != nil {
		return err
	}
	line, err := formatPath(result.Path, opts.Format)
	if err != nil {
		return err
	}
	fmt.Println(line)
	return nil
}

func formatPath(path string, format string) (string, error) {
	switch format {
	case "", "plain":
		return path, nil
	case "shell":
		return "export PATH=" + shared.ShellQuote(path), nil
	default:
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg(fmt.Sprintf("unsupported format: %s", format))
	}
}

package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"ros-pip-setup/internal/app"
	"ros-pip-setup/internal/types"
)

type validateOptions struct {
	Distributions string
}

func newValidateCommand() *cobra.Command {
	opts := validateOptions{}
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the required ROS distribution names",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runValidate(cmd, opts)
		},
	}
	cmd.Flags().StringVar(&opts.Distributions, "distributions", "", "Whitespace separated ROS distributions")
	_ = viper.BindPFlag("required_ros_distributions", cmd.Flags().Lookup("distributions"))
	return cmd
}

func runValidate(cmd *cobra.Command, opts validateOptions) error {
	service := newAppService()
	result, err := service.ValidateDistributions(app.ValidateRequest{
		Distributions: resolveString(cmd, opts.Distributions, "required_ros_distributions", "distributions"),
	})
	if err != nil {
		return err
	}
	fmt.Printf("validated: %s\n", describeDistributions(result.Distributions))
	return nil
}

func describeDistributions(distros []types.Distribution) string {
	if len(distros) == 0 {
		return "(none)"
	}
	parts := make([]string, 0, len(distros))
	for _, distro := range distros {
		parts = append(parts, fmt.Sprintf("%s (ROS %d)", distro, distro.Generation()))
	}
	return strings.Join(parts, ", ")
}

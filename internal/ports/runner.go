package ports

import (
	"context"

	"ros-pip-setup/internal/types"
)

// CommandRunnerPort runs the installer and any follow-up command.
type CommandRunnerPort interface {
	// Run blocks until the command exits and returns its exit code. The
	// error is non-nil only when the process could not be started or
	// waited on.
	Run(ctx context.Context, cmd types.Command) (int, error)
}

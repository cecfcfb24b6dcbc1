package adapters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ros-pip-setup/internal/ports"
	"ros-pip-setup/internal/shared"
	"ros-pip-setup/internal/types"
)

// ExecRunnerAdapter runs a command as a child process, streaming its
// output. With Groups set, the output is folded into a GitHub Actions log
// group.
type ExecRunnerAdapter struct {
	Stdout io.Writer
	Stderr io.Writer
	Groups bool
	Env    []string
}

func NewExecRunnerAdapter() ExecRunnerAdapter {
	return ExecRunnerAdapter{
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Groups: os.Getenv("GITHUB_ACTIONS") == "true",
	}
}

func (a ExecRunnerAdapter) Run(ctx context.Context, command types.Command) (int, error) {
	if command.Name == "" {
		return -1, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("command is empty")
	}
	title := fmt.Sprintf("Invoking %q", shared.ShellJoin(command.Argv()))
	log.Info().Str("command", command.Name).Msg(title)
	if a.Groups {
		fmt.Fprintf(a.stdout(), "::group::%s\n", title)
		defer fmt.Fprintln(a.stdout(), "::endgroup::")
	}

	cmd := exec.CommandContext(ctx, command.Name, command.Args...)
	cmd.Stdout = a.stdout()
	cmd.Stderr = a.stderr()
	if a.Env != nil {
		cmd.Env = a.Env
	}
	err := cmd.Run()
	if err == nil {
		return 0, nil
	}
	if ctxErr := ctx.Err(); ctxErr != nil {
		return -1, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("command interrupted").
			WithCause(ctxErr)
	}
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return exitErr.ExitCode(), nil
	}
	return -1, errbuilder.New().
		WithCode(errbuilder.CodeInternal).
		WithMsg(fmt.Sprintf("failed to start %s", command.Name)).
		WithCause(err)
}

func (a ExecRunnerAdapter) stdout() io.Writer {
	if a.Stdout == nil {
		return io.Discard
	}
	return a.Stdout
}

func (a ExecRunnerAdapter) stderr() io.Writer {
	if a.Stderr == nil {
		return io.Discard
	}
	return a.Stderr
}

var _ ports.CommandRunnerPort = ExecRunnerAdapter{}

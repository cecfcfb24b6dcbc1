package app

import (
	"context"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"ros-pip-setup/internal/types"
)

const pathEnv = "PATH"

// Setup is the full CI sequence: validate the requested distributions,
// install the manifest, then extend PATH for this process, the optional
// GITHUB_PATH file and the optional follow-up command.
func (s Service) Setup(ctx context.Context, req SetupRequest) (SetupResult, error) {
	validated, err := s.ValidateDistributions(ValidateRequest{Distributions: req.Distributions})
	if err != nil {
		return SetupResult{}, err
	}
	result := SetupResult{Distributions: validated.Distributions}

	install, err := s.Install(ctx, req.Install)
	result.Install = install
	if err != nil || install.ExitCode != 0 {
		return result, err
	}

	path, err := s.SearchPath(PathRequest{
		InstallRoot: install.InstallRoot,
		CurrentPath: s.Env.Getenv(pathEnv),
	})
	if err != nil {
		return result, err
	}
	result.Path = path
	if err := s.Env.Setenv(pathEnv, path.Path); err != nil {
		return result, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to update PATH").
			WithCause(err)
	}
	if req.GitHubPath != "" && len(path.Added) > 0 {
		if err := s.PathExport.AppendPaths(req.GitHubPath, path.Added); err != nil {
			return result, err
		}
		log.Debug().Str("file", req.GitHubPath).Msg("exported PATH entries")
	}

	if len(req.Command) == 0 {
		return result, nil
	}
	code, err := s.Runner.Run(ctx, types.Command{Name: req.Command[0], Args: req.Command[1:]})
	result.CommandExitCode = code
	return result, err
}

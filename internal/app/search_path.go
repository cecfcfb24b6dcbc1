package app

import (
	"path/filepath"

	"github.com/rs/zerolog/log"

	"ros-pip-setup/internal/core"
	"ros-pip-setup/internal/types"
)

// SearchPath computes CurrentPath with every <install-root>/lib
// subdirectory appended. It does not touch the process environment.
func (s Service) SearchPath(req PathRequest) (PathResult, error) {
	root, err := s.resolveInstallRoot(req.InstallRoot, types.Manifest{})
	if err != nil {
		return PathResult{}, err
	}
	dirs, err := s.LibDirs.ListSubdirs(filepath.Join(root, "lib"))
	if err != nil {
		return PathResult{}, err
	}
	sep := core.PathListSeparator(s.GOOS)
	for _, dir := range dirs {
		log.Info().Str("dir", dir).Msg("appending to PATH")
	}
	return PathResult{
		Path:      core.AppendSearchPath(req.CurrentPath, dirs, sep),
		Added:     dirs,
		Separator: sep,
	}, nil
}

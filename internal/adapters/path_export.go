package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/ports"
)

// PathFileAdapter appends directories to a GITHUB_PATH style file, one
// per line. The CI runner prepends them to PATH for every later step.
type PathFileAdapter struct{}

func NewPathFileAdapter() PathFileAdapter {
	return PathFileAdapter{}
}

func (a PathFileAdapter) AppendPaths(file string, dirs []string) error {
	if strings.TrimSpace(file) == "" {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("path export file is empty")
	}
	f, err := os.OpenFile(file, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to open path export file").
			WithCause(err)
	}
	defer f.Close()
	for _, dir := range dirs {
		if _, err := fmt.Fprintln(f, dir); err != nil {
			return errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to write path export file").
				WithCause(err)
		}
	}
	return nil
}

var _ ports.PathExportPort = PathFileAdapter{}

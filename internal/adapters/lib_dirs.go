package adapters

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"

	"ros-pip-setup/internal/ports"
)

type LibDirsAdapter struct{}

func NewLibDirsAdapter() LibDirsAdapter {
	return LibDirsAdapter{}
}

func (a LibDirsAdapter) ListSubdirs(dir string) ([]string, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("directory is empty")
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to resolve directory").
			WithCause(err)
	}
	entries, err := os.ReadDir(abs)
	if err != nil {
		code := errbuilder.CodeInternal
		if errors.Is(err, fs.ErrNotExist) {
			code = errbuilder.CodeNotFound
		}
		return nil, errbuilder.New().
			WithCode(code).
			WithMsg("failed to list install directory").
			WithCause(err)
	}
	var dirs []string
	for _, entry := range entries {
		path := filepath.Join(abs, entry.Name())
		if !isDir(entry, path) {
			continue
		}
		dirs = append(dirs, path)
	}
	return dirs, nil
}

func isDir(entry fs.DirEntry, path string) bool {
	if entry.IsDir() {
		return true
	}
	if entry.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

var _ ports.LibDirsPort = LibDirsAdapter{}

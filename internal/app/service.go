package app

import (
	"os"
	"runtime"

	"ros-pip-setup/internal/adapters"
	"ros-pip-setup/internal/ports"
)

type Service struct {
	Manifests  ports.ManifestPort
	Runner     ports.CommandRunnerPort
	LibDirs    ports.LibDirsPort
	Inventory  ports.InventoryPort
	PathExport ports.PathExportPort
	Env        ports.EnvironmentPort
	GOOS       string
	Getwd      func() (string, error)
}

func NewService() Service {
	return Service{
		Manifests:  adapters.NewManifestFileAdapter(),
		Runner:     adapters.NewExecRunnerAdapter(),
		LibDirs:    adapters.NewLibDirsAdapter(),
		Inventory:  adapters.NewInventoryAdapter(),
		PathExport: adapters.NewPathFileAdapter(),
		Env:        adapters.NewOSEnvironmentAdapter(),
		GOOS:       runtime.GOOS,
		Getwd:      os.Getwd,
	}
}

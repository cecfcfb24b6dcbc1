package adapters

import (
	"os"

	"ros-pip-setup/internal/ports"
)

type OSEnvironmentAdapter struct{}

func NewOSEnvironmentAdapter() OSEnvironmentAdapter {
	return OSEnvironmentAdapter{}
}

func (OSEnvironmentAdapter) Getenv(key string) string {
	return os.Getenv(key)
}

func (OSEnvironmentAdapter) Setenv(key string, value string) error {
	return os.Setenv(key, value)
}

func (OSEnvironmentAdapter) Environ() []string {
	return os.Environ()
}

var _ ports.EnvironmentPort = OSEnvironmentAdapter{}

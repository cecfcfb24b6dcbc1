package app

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"ros-pip-setup/internal/adapters"
	"ros-pip-setup/internal/types"
)

type fakeManifests struct {
	manifest types.Manifest
}

func (f fakeManifests) LoadManifest(string) (types.Manifest, error) {
	return f.manifest, nil
}

type recordingRunner struct {
	commands []types.Command
	codes    []int
	onRun    func(cmd types.Command)
}

func (r *recordingRunner) Run(_ context.Context, cmd types.Command) (int, error) {
	r.commands = append(r.commands, cmd)
	if r.onRun != nil {
		r.onRun(cmd)
	}
	if len(r.codes) == 0 {
		return 0, nil
	}
	code := r.codes[0]
	r.codes = r.codes[1:]
	return code, nil
}

type memEnv struct {
	vars map[string]string
}

func (e *memEnv) Getenv(key string) string {
	return e.vars[key]
}

func (e *memEnv) Setenv(key string, value string) error {
	e.vars[key] = value
	return nil
}

func (e *memEnv) Environ() []string {
	var out []string
	for key, value := range e.vars {
		out = append(out, key+"="+value)
	}
	return out
}

func testManifest(packages ...string) types.Manifest {
	return types.Manifest{
		APIVersion: "v1",
		Kind:       types.ManifestKindPip,
		Metadata:   types.Metadata{Name: "test", Version: "1"},
		Packages:   packages,
	}
}

func newTestService(t *testing.T, manifest types.Manifest, runner *recordingRunner, env *memEnv) Service {
	t.Helper()
	cwd := t.TempDir()
	return Service{
		Manifests:  fakeManifests{manifest: manifest},
		Runner:     runner,
		LibDirs:    adapters.NewLibDirsAdapter(),
		Inventory:  adapters.NewInventoryAdapter(),
		PathExport: adapters.NewPathFileAdapter(),
		Env:        env,
		GOOS:       "linux",
		Getwd:      func() (string, error) { return cwd, nil },
	}
}

func writeInstalled(t *testing.T, root string, name string, version string) {
	t.Helper()
	dir := filepath.Join(root, "lib", "python3.8", "site-packages", name+"-"+version+".dist-info")
	require.NoError(t, os.MkdirAll(dir, 0755))
	content := "Metadata-Version: 2.1\nName: " + name + "\nVersion: " + version + "\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "METADATA"), []byte(content), 0644))
}

func clearInstalled(t *testing.T, root string) {
	t.Helper()
	require.NoError(t, os.RemoveAll(filepath.Join(root, "lib", "python3.8", "site-packages")))
}

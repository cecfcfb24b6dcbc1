package app

import (
	"path/filepath"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ros-pip-setup/internal/types"
)

func TestInstallBuildsElevatedCommand(t *testing.T) {
	runner := &recordingRunner{}
	service := newTestService(t, testManifest("colcon-core==0.6.1", "flake8<3.8"), runner, &memEnv{vars: map[string]string{}})
	root := t.TempDir()

	result, err := service.Install(t.Context(), InstallRequest{InstallRoot: root, Elevate: true})
	require.NoError(t, err)
	assert.Equal(t, 0, result.ExitCode)
	require.Len(t, runner.commands, 1)
	want := types.Command{
		Name: "sudo",
		Args: []string{"pip3", "install", "--upgrade", "colcon-core==0.6.1", "flake8<3.8", "--prefix", root},
	}
	if diff := cmp.Diff(want, runner.commands[0]); diff != "" {
		t.Fatalf("unexpected command (-want +got):\n%s", diff)
	}
}

func TestInstallWithoutElevation(t *testing.T) {
	runner := &recordingRunner{}
	manifest := testManifest("numpy")
	manifest.Installer = "pip"
	service := newTestService(t, manifest, runner, &memEnv{vars: map[string]string{}})

	result, err := service.Install(t.Context(), InstallRequest{InstallRoot: "/opt/deps", Elevate: false})
	require.NoError(t, err)
	assert.Equal(t, []string{"pip", "install", "--upgrade", "numpy", "--prefix", "/opt/deps"}, result.Command.Argv())
}

func TestInstallDefaultRootIsUnderWorkingDir(t *testing.T) {
	runner := &recordingRunner{}
	service := newTestService(t, testManifest("numpy"), runner, &memEnv{vars: map[string]string{}})
	cwd, err := service.Getwd()
	require.NoError(t, err)

	result, err := service.Install(t.Context(), InstallRequest{Elevate: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cwd, ".pip_install_dir"), result.InstallRoot)
	args := runner.commands[0].Args
	assert.Equal(t, []string{"--prefix", result.InstallRoot}, args[len(args)-2:])
}

func TestInstallManifestDefaults(t *testing.T) {
	runner := &recordingRunner{}
	manifest := testManifest("numpy")
	manifest.Defaults = types.ManifestDefaults{InstallRoot: "/srv/pip", Elevator: "doas"}
	service := newTestService(t, manifest, runner, &memEnv{vars: map[string]string{}})

	result, err := service.Install(t.Context(), InstallRequest{Elevate: true})
	require.NoError(t, err)
	assert.Equal(t, "/srv/pip", result.InstallRoot)
	assert.Equal(t, "doas", result.Command.Name)
}

func TestInstallSurfacesExitCode(t *testing.T) {
	runner := &recordingRunner{codes: []int{1}}
	service := newTestService(t, testManifest("numpy"), runner, &memEnv{vars: map[string]string{}})

	result, err := service.Install(t.Context(), InstallRequest{InstallRoot: t.TempDir(), Elevate: true, Verify: true})
	require.NoError(t, err)
	assert.Equal(t, 1, result.ExitCode)
}

func TestInstallRejectsInvalidManifest(t *testing.T) {
	runner := &recordingRunner{}
	service := newTestService(t, testManifest("numpy", "NumPy==1.0"), runner, &memEnv{vars: map[string]string{}})

	_, err := service.Install(t.Context(), InstallRequest{InstallRoot: t.TempDir()})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
	assert.Empty(t, runner.commands, "installer must not run for an invalid manifest")
}

func TestInstallVerifyDetectsDowngrade(t *testing.T) {
	root := t.TempDir()
	writeInstalled(t, root, "numpy", "1.19.0")
	runner := &recordingRunner{onRun: func(types.Command) {
		clearInstalled(t, root)
		writeInstalled(t, root, "numpy", "1.18.0")
	}}
	service := newTestService(t, testManifest("numpy==1.18.0"), runner, &memEnv{vars: map[string]string{}})

	_, err := service.Install(t.Context(), InstallRequest{InstallRoot: root, Verify: true})
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeFailedPrecondition, errbuilder.CodeOf(err))
	assert.Contains(t, err.Error(), "numpy 1.19.0 -> 1.18.0")
}

func TestInstallVerifyRerunIsStable(t *testing.T) {
	root := t.TempDir()
	runner := &recordingRunner{onRun: func(types.Command) {
		clearInstalled(t, root)
		writeInstalled(t, root, "numpy", "1.18.0")
		writeInstalled(t, root, "flake8", "3.7.9")
	}}
	service := newTestService(t, testManifest("numpy==1.18.0", "flake8<3.8"), runner, &memEnv{vars: map[string]string{}})

	for i := 0; i < 2; i++ {
		result, err := service.Install(t.Context(), InstallRequest{InstallRoot: root, Verify: true})
		require.NoError(t, err)
		assert.Empty(t, result.Mismatches)
	}
	require.Len(t, runner.commands, 2)
	if diff := cmp.Diff(runner.commands[0], runner.commands[1]); diff != "" {
		t.Fatalf("rerun must issue the same command (-first +second):\n%s", diff)
	}
}

func TestInstallVerifyReportsMismatches(t *testing.T) {
	root := t.TempDir()
	runner := &recordingRunner{onRun: func(types.Command) {
		writeInstalled(t, root, "flake8", "3.9.2")
	}}
	service := newTestService(t, testManifest("flake8<3.8"), runner, &memEnv{vars: map[string]string{}})

	result, err := service.Install(t.Context(), InstallRequest{InstallRoot: root, Verify: true})
	require.NoError(t, err)
	require.Len(t, result.Mismatches, 1)
	assert.Equal(t, "3.9.2", result.Mismatches[0].Installed)
}

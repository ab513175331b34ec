package bootstrap

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallDependenciesSkipsPresentTools(t *testing.T) {
	dir := stubPath(t)
	log := filepath.Join(dir, "invocations")
	t.Setenv("STUB_LOG", log)
	writeStub(t, dir, "apt", `echo "$@" >> "$STUB_LOG"`)
	writeStub(t, dir, "git", "exit 0")
	writeStub(t, dir, "wget", "exit 0")
	writeStub(t, dir, "python3", "exit 0")

	user := &Executor{Context: context.Background()}
	pm := &PackageManager{Manager: Apt, Exec: user}
	cfg := &Settings{Python: "python3"}
	require.NoError(t, InstallDependencies(pm, user, cfg))

	_, err := os.Stat(log)
	assert.True(t, os.IsNotExist(err), "nothing may be installed when everything is present")
}

func TestInstallDependenciesInstallsMissing(t *testing.T) {
	dir := stubPath(t)
	log := filepath.Join(dir, "invocations")
	t.Setenv("STUB_LOG", log)
	writeStub(t, dir, "apt", `echo "$@" >> "$STUB_LOG"`)
	writeStub(t, dir, "git", "exit 0")
	// wget absent from PATH; python3 cannot import tkinter.
	writeStub(t, dir, "python3", "exit 1")

	user := &Executor{Context: context.Background()}
	pm := &PackageManager{Manager: Apt, Exec: user}
	cfg := &Settings{Python: "python3"}
	require.NoError(t, InstallDependencies(pm, user, cfg))

	data, err := os.ReadFile(log)
	require.NoError(t, err)
	assert.Equal(t, "install wget -y\ninstall python3-tk -y\n", string(data))
}

func TestInstallDependenciesTkinterNameByManager(t *testing.T) {
	tests := []struct {
		manager Manager
		want    string
	}{
		{Apt, "python3-tk"},
		{AptGet, "python3-tk"},
		{Dnf, "python3-tkinter"},
		{Pacman, "tk"},
	}
	for _, tt := range tests {
		name, err := tkinterSpec.nameFor(tt.manager)
		require.NoError(t, err)
		assert.Equal(t, tt.want, name, "manager %s", tt.manager)
	}
}

func TestInstallDependenciesFailureIsFatal(t *testing.T) {
	dir := stubPath(t)
	writeStub(t, dir, "apt", "exit 100")
	writeStub(t, dir, "git", "exit 0")
	writeStub(t, dir, "python3", "exit 0")
	// wget missing and its install fails: no continue-without-it path.

	user := &Executor{Context: context.Background()}
	pm := &PackageManager{Manager: Apt, Exec: user}
	err := InstallDependencies(pm, user, &Settings{Python: "python3"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "wget")
}

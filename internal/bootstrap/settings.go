package bootstrap

import (
	"os"
	"path/filepath"
	"strings"
)

// Settings holds the fixed parameters of a bootstrap run. There are no CLI
// flags; compiled-in defaults can only be adjusted through TARSTALL_* env
// overrides, mirroring how tarstall itself reads its environment.
type Settings struct {
	RepoURL   string // canonical tarstall repository
	Branch    string // optional branch to clone; empty means the remote default
	Workspace string // throwaway staging directory
	Sentinel  string // existing-install marker; read-only, gates the welcome text
	Python    string // python interpreter used for the tkinter probe and handoff
	Pip       string // pip command used for the requirements installs
}

// DefaultSettings builds the standard configuration and merges env overrides.
func DefaultSettings() *Settings {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "/root"
	}
	s := &Settings{
		RepoURL:   "https://github.com/hammy3502/tarstall.git",
		Workspace: "/tmp/tarstall-setup",
		Sentinel:  filepath.Join(home, ".tarstall", "tarstall_execs", "tarstall"),
		Python:    "python3",
		Pip:       "pip3",
	}
	s.mergeEnvOverrides()
	return s
}

// Merge TARSTALL_* env overrides
func (s *Settings) mergeEnvOverrides() {
	if v := os.Getenv("TARSTALL_REPO_URL"); v != "" {
		s.RepoURL = v
	}
	if v := os.Getenv("TARSTALL_BRANCH"); v != "" {
		s.Branch = v
	}
	if v := os.Getenv("TARSTALL_TMPDIR"); v != "" {
		s.Workspace = filepath.Join(v, "tarstall-setup")
	}
	if v := os.Getenv("TARSTALL_VERBOSE"); v == "1" || strings.EqualFold(v, "true") {
		Verbose = true
	}
}

// ProjectDir is the root of the cloned tarstall checkout inside the workspace.
func (s *Settings) ProjectDir() string {
	base := filepath.Base(s.RepoURL)
	return filepath.Join(s.Workspace, strings.TrimSuffix(base, ".git"))
}

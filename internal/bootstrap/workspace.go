package bootstrap

import (
	"fmt"
	"os"
	"os/exec"
)

// Workspace is the throwaway staging directory the tarstall sources are
// cloned into. The same removal runs on success and on every failure path.
type Workspace struct {
	Dir  string
	Exec *Executor
}

// Reset destroys any pre-existing workspace and creates a fresh, empty one.
// A missing previous directory is a no-op, not an error.
func (w *Workspace) Reset() error {
	if err := os.RemoveAll(w.Dir); err != nil {
		return fmt.Errorf("failed to clear workspace %s: %w", w.Dir, err)
	}
	if err := os.MkdirAll(w.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create workspace %s: %w", w.Dir, err)
	}
	return nil
}

// Remove destroys the workspace, best-effort. Absence is a no-op.
func (w *Workspace) Remove() {
	if err := os.RemoveAll(w.Dir); err != nil {
		debugf("workspace cleanup: %v\n", err)
	}
}

// Acquire resets the workspace and clones the tarstall repository into it.
// On clone failure the half-populated workspace is removed and no alternate
// source is tried.
func (w *Workspace) Acquire(cfg *Settings) error {
	if err := w.Reset(); err != nil {
		return err
	}

	args := []string{"clone", cfg.RepoURL}
	if cfg.Branch != "" {
		args = append(args, "--branch", cfg.Branch)
	}
	cmd := exec.Command("git", args...)
	cmd.Dir = w.Dir
	if !w.Exec.RunOK(cmd) {
		w.Remove()
		return fmt.Errorf("failed to clone %s", cfg.RepoURL)
	}
	return nil
}

package bootstrap

import (
	"context"
	"errors"
)

// Bootstrap owns one full installation sequence. Control flows strictly
// top-to-bottom: preflight, system dependencies, source acquisition, handoff.
// The first error stops the run.
type Bootstrap struct {
	Settings *Settings
	User     *Executor // runs commands as the invoking user
	Root     *Executor // runs commands under sudo
}

// New wires the executors for a run.
func New(ctx context.Context, cfg *Settings) *Bootstrap {
	return &Bootstrap{
		Settings: cfg,
		User:     &Executor{Context: ctx},
		Root:     &Executor{Context: ctx, ShouldRunAsRoot: true},
	}
}

// Run executes the whole sequence. The workspace is removed on every exit
// path once it exists.
func (b *Bootstrap) Run() error {
	bar := newStageBar(4)

	mgr, err := Preflight(b.Settings)
	if err != nil {
		return err
	}
	pm := &PackageManager{Manager: mgr, Exec: b.Root}

	advanceStage(bar, "Checking system dependencies")
	if err := InstallDependencies(pm, b.User, b.Settings); err != nil {
		return err
	}

	advanceStage(bar, "Downloading tarstall")
	ws := &Workspace{Dir: b.Settings.Workspace, Exec: b.User}
	defer ws.Remove()
	if err := ws.Acquire(b.Settings); err != nil {
		return err
	}

	advanceStage(bar, "Installing Python requirements")
	h := &Handoff{
		Dir:    b.Settings.ProjectDir(),
		Pip:    b.Settings.Pip,
		Python: b.Settings.Python,
		User:   b.User,
		PM:     pm,
	}
	if err := h.Run(); err != nil {
		return err
	}

	advanceStage(bar, "Done")
	if bar != nil {
		_ = bar.Finish()
	}
	statusBox(colSuccess, "tarstall is installed! Run 'tarstall -h' from a new terminal to get started.")
	return nil
}

// ReportFatal surfaces a terminal error to the user. Cancellation at a prompt
// is reported without error connotation.
func ReportFatal(err error) {
	if errors.Is(err, ErrUserDeclined) {
		colWarn.Println("Installation cancelled.")
		return
	}
	statusBox(colError, "ERROR: "+err.Error())
}

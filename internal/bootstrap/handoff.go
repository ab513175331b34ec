package bootstrap

import (
	"fmt"
	"os/exec"
)

// Handoff installs tarstall's Python requirements and then runs tarstall's
// own bundled first-time setup inside the cloned checkout.
type Handoff struct {
	Dir    string // cloned project root
	Pip    string
	Python string
	User   *Executor
	PM     *PackageManager
}

func (h *Handoff) pipInstall(manifest string) bool {
	cmd := exec.Command(h.Pip, "install", "-r", manifest, "--user")
	cmd.Dir = h.Dir
	return h.User.RunOK(cmd)
}

// Run performs the handoff. A failing first requirements install triggers the
// single recovery in the whole program: a missing pip binary is self-healable
// by installing it and retrying once. Anything still failing after that is
// fatal; there is no degraded mode.
func (h *Handoff) Run() error {
	if !h.pipInstall("requirements.txt") {
		colArrow.Print("-> ")
		colWarn.Printf("%s failed; installing pip and retrying\n", h.Pip)
		if err := h.PM.Install(pipSpec); err != nil {
			return err
		}
		if !h.pipInstall("requirements.txt") {
			return fmt.Errorf("failed to install tarstall's requirements")
		}
	}

	if !h.pipInstall("requirements-gui.txt") {
		return fmt.Errorf("failed to install tarstall's GUI requirements")
	}

	colArrow.Print("-> ")
	colSuccess.Println("Handing off to tarstall's first-time setup")
	cmd := exec.Command(h.Python, "./tarstall_execs/tarstall", "-f")
	cmd.Dir = h.Dir
	if !h.User.RunOK(cmd) {
		return fmt.Errorf("tarstall setup failed, see output above")
	}
	return nil
}

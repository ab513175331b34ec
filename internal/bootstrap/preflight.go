package bootstrap

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sys/unix"
)

// ErrUserDeclined marks a clean cancellation at one of the confirmation
// prompts. It carries no error connotation when reported.
var ErrUserDeclined = errors.New("cancelled by user")

// supportedShells are matched as substrings of $SHELL; tarstall only knows
// how to hook bash and zsh startup files.
var supportedShells = []string{"bash", "zsh"}

func shellSupported(shell string) bool {
	for _, s := range supportedShells {
		if strings.Contains(shell, s) {
			return true
		}
	}
	return false
}

// firstRun reports whether no tarstall install marker exists yet. The
// sentinel is only ever read; running twice with it present behaves
// identically both times.
func firstRun(sentinel string) bool {
	_, err := os.Stat(sentinel)
	return err != nil
}

// Preflight verifies the host before anything is installed: sudo must exist,
// a supported package manager must exist, and the user's shell must be one
// tarstall can integrate with (or the user explicitly accepts the loss of
// shell integration). It returns the detected manager.
func Preflight(cfg *Settings) (Manager, error) {
	if _, err := exec.LookPath("sudo"); err != nil {
		return "", errors.New("sudo is required to install system packages, but was not found on PATH")
	}

	mgr, ok := Detect()
	if !ok {
		return "", fmt.Errorf("no supported package manager found (looked for %s)", managerList())
	}

	if shell := os.Getenv("SHELL"); !shellSupported(shell) {
		statusBox(colWarn, fmt.Sprintf(
			"Your shell (%s) is not supported by tarstall!\n"+
				"PATH integration, binlinks, and other shell conveniences will NOT work.\n"+
				"You can still use tarstall by running its executables directly.", shell))
		if !askLiteral(colWarn, "Type 'YES' to continue anyway, anything else to cancel: ", "YES") {
			return "", ErrUserDeclined
		}
	}

	if firstRun(cfg.Sentinel) {
		if err := welcome(cfg); err != nil {
			return "", err
		}
	}

	return mgr, nil
}

// welcome prints the first-run consent message and waits for the user.
func welcome(cfg *Settings) error {
	statusBox(colInfo, "Welcome to tarstall!")
	colInfo.Printf("bootstrap %s (built %s)\n", version, buildDate)
	fmt.Println("This installer will:")
	fmt.Println("  * Install tarstall's system dependencies with your package manager (under sudo)")
	fmt.Printf("  * Clone %s into %s\n", cfg.RepoURL, cfg.Workspace)
	fmt.Println("  * Install tarstall's Python requirements (user-scoped)")
	fmt.Println("  * Run tarstall's own first-time setup")

	var uts unix.Utsname
	if err := unix.Uname(&uts); err == nil {
		colInfo.Printf("Host: %s %s (%s)\n",
			unix.ByteSliceToString(uts.Sysname[:]),
			unix.ByteSliceToString(uts.Release[:]),
			unix.ByteSliceToString(uts.Machine[:]))
	}

	if !askEnterOrCancel(nil, "Press ENTER to continue or type 'cancel' to cancel: ") {
		return ErrUserDeclined
	}
	return nil
}

package bootstrap

import (
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// Manager identifies one of the supported system package managers.
type Manager string

const (
	Apt    Manager = "apt"
	AptGet Manager = "apt-get"
	Dnf    Manager = "dnf"
	Pacman Manager = "pacman"
)

// probeOrder is part of the contract: managers are probed in this exact
// order and the first one present on PATH wins.
var probeOrder = []Manager{Apt, AptGet, Dnf, Pacman}

// SupportedManagers lists the managers in probe order.
func SupportedManagers() []Manager {
	out := make([]Manager, len(probeOrder))
	copy(out, probeOrder)
	return out
}

// Detect probes PATH for each supported manager and returns the first found.
func Detect() (Manager, bool) {
	for _, m := range probeOrder {
		if _, err := exec.LookPath(string(m)); err == nil {
			debugf("Detected package manager: %s\n", m)
			return m, true
		}
	}
	return "", false
}

// ErrNoMapping marks an incomplete per-manager dependency table. This is a
// programmer error, not a user error.
var ErrNoMapping = errors.New("no package name mapped for active package manager")

// PackageSpec names one logical package, either with a single universal name
// or with per-manager names when ecosystems disagree. Exactly one of the two
// forms is populated.
type PackageSpec struct {
	Name       string
	PerManager map[Manager]string
}

// Pkg builds a plain-name spec.
func Pkg(name string) PackageSpec {
	return PackageSpec{Name: name}
}

// PkgFor builds a per-manager spec.
func PkgFor(names map[Manager]string) PackageSpec {
	return PackageSpec{PerManager: names}
}

// nameFor resolves the package name for the given manager.
func (s PackageSpec) nameFor(m Manager) (string, error) {
	if s.PerManager == nil {
		return s.Name, nil
	}
	name, ok := s.PerManager[m]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoMapping, m)
	}
	return name, nil
}

// installArgs is the fixed, non-interactive install argv for each manager.
func installArgs(m Manager, pkg string) []string {
	if m == Pacman {
		return []string{string(m), "-S", pkg, "--noconfirm"}
	}
	return []string{string(m), "install", pkg, "-y"}
}

// PackageManager dispatches installs to the manager detected on this host.
type PackageManager struct {
	Manager Manager
	Exec    *Executor
}

// Install resolves the spec against the active manager and runs the install
// under elevated privilege. Failures are never ignored or retried here.
func (pm *PackageManager) Install(spec PackageSpec) error {
	pkg, err := spec.nameFor(pm.Manager)
	if err != nil {
		return err
	}
	colArrow.Print("-> ")
	colInfo.Printf("Installing %s via %s\n", pkg, pm.Manager)
	args := installArgs(pm.Manager, pkg)
	cmd := exec.Command(args[0], args[1:]...)
	if !pm.Exec.RunOK(cmd) {
		return fmt.Errorf("failed to install %s with %s", pkg, pm.Manager)
	}
	return nil
}

func managerList() string {
	names := make([]string, len(probeOrder))
	for i, m := range probeOrder {
		names[i] = string(m)
	}
	return strings.Join(names, ", ")
}

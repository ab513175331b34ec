package bootstrap

import (
	"io"
	"os/exec"
)

// systemTools are checked on PATH and installed under the same name
// everywhere.
var systemTools = []PackageSpec{
	Pkg("git"),
	Pkg("wget"),
}

// tkinterSpec covers the GUI toolkit binding for tarstall's PySimpleGUI
// frontend. Every supported manager is keyed explicitly.
var tkinterSpec = PkgFor(map[Manager]string{
	Apt:    "python3-tk",
	AptGet: "python3-tk",
	Dnf:    "python3-tkinter",
	Pacman: "tk",
})

// pipSpec is the package manager's own name for pip, used by the handoff
// self-heal path.
var pipSpec = PkgFor(map[Manager]string{
	Apt:    "python3-pip",
	AptGet: "python3-pip",
	Dnf:    "python3-pip",
	Pacman: "python-pip",
})

// hasTkinter probes for the toolkit by importing it, not by looking at PATH;
// the binding ships as a python module with no executable of its own.
func hasTkinter(e *Executor, python string) bool {
	cmd := exec.Command(python, "-c", "import tkinter")
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return e.RunOK(cmd)
}

// InstallDependencies makes sure git, wget, and the tkinter binding are
// present, installing whichever are missing. Tools already on the host are
// skipped silently. Any install failure is fatal to the run.
func InstallDependencies(pm *PackageManager, user *Executor, cfg *Settings) error {
	for _, spec := range systemTools {
		if _, err := exec.LookPath(spec.Name); err == nil {
			debugf("%s is already installed\n", spec.Name)
			continue
		}
		if err := pm.Install(spec); err != nil {
			return err
		}
	}

	if !hasTkinter(user, cfg.Python) {
		if err := pm.Install(tkinterSpec); err != nil {
			return err
		}
	}
	return nil
}

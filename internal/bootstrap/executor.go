package bootstrap

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
)

// Executor provides a consistent interface for executing external commands,
// abstracting away the privilege escalation (sudo) logic. Commands inherit
// the caller's standard streams so the user sees live output; nothing is
// captured or parsed.
type Executor struct {
	Context         context.Context // context to use for cancellation
	ShouldRunAsRoot bool            // the command MUST be executed with root privileges
}

// runInteractiveCommand executes a command attached to the TTY, suitable for
// prompts like `sudo -v`.
func runInteractiveCommand(ctx context.Context, name string, arg ...string) error {
	cmd := exec.CommandContext(ctx, name, arg...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

// ensureSudo checks whether the sudo ticket is still valid and re-prompts if
// necessary. No action needed when already root or the command does not
// require root.
func (e *Executor) ensureSudo() error {
	if os.Geteuid() == 0 || !e.ShouldRunAsRoot {
		return nil
	}

	// Fast non-interactive check first; avoids a password prompt while the
	// ticket is fresh.
	checkCmd := exec.CommandContext(e.Context, "sudo", "-nv")
	checkCmd.Stdout = io.Discard
	checkCmd.Stderr = io.Discard
	if err := checkCmd.Run(); err == nil {
		return nil
	}

	colArrow.Print("-> ")
	colSuccess.Println("Authenticating via sudo")
	if err := runInteractiveCommand(e.Context, "sudo", "-v"); err != nil {
		return fmt.Errorf("sudo authentication failed: %w", err)
	}
	return nil
}

// Run executes the given command, elevating via sudo -E only when needed.
// It returns nil iff the process exits with status 0.
func (e *Executor) Run(cmd *exec.Cmd) error {
	if cmd.Stdin == nil {
		cmd.Stdin = os.Stdin
	}
	if cmd.Stdout == nil {
		cmd.Stdout = os.Stdout
	}
	if cmd.Stderr == nil {
		cmd.Stderr = os.Stderr
	}

	if err := e.ensureSudo(); err != nil {
		return err
	}

	var finalCmd *exec.Cmd
	if e.ShouldRunAsRoot && os.Geteuid() != 0 {
		args := append([]string{"-E", cmd.Path}, cmd.Args[1:]...)
		finalCmd = exec.CommandContext(e.Context, "sudo", args...)
	} else {
		finalCmd = exec.CommandContext(e.Context, cmd.Path, cmd.Args[1:]...)
	}
	finalCmd.Dir = cmd.Dir

	// preserve or inherit the environment
	if len(cmd.Env) > 0 {
		finalCmd.Env = cmd.Env
	} else {
		finalCmd.Env = os.Environ()
	}

	finalCmd.Stdin = cmd.Stdin
	finalCmd.Stdout = cmd.Stdout
	finalCmd.Stderr = cmd.Stderr

	if err := finalCmd.Run(); err != nil {
		if e.Context != nil && e.Context.Err() != nil {
			return fmt.Errorf("command aborted: %v", e.Context.Err())
		}
		return err
	}
	return nil
}

// RunOK reports whether the command terminated with exit code 0. Signal
// termination and startup failures both count as failure.
func (e *Executor) RunOK(cmd *exec.Cmd) bool {
	return e.Run(cmd) == nil
}

// internal/executil/executil.go
//
// Single command-execution abstraction for every external tool invocation
// (docker, git). Two implementations: ExecRunner runs the command and checks
// its status, DryRunner prints the command and reports success. Callers get
// one Runner injected at startup instead of branching on dry-run at each
// call site.

package executil

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Runner executes external commands on behalf of the pipeline.
type Runner interface {
	// Run executes the command in the current directory.
	Run(name string, args ...string) error
	// RunInDir executes the command in a specific directory.
	RunInDir(dir, name string, args ...string) error
}

// New returns the Runner matching the dry-run setting. Command echo lines go
// to out.
func New(dryRun bool, out io.Writer) Runner {
	if dryRun {
		return &DryRunner{Out: out}
	}
	return &ExecRunner{Out: out}
}

// ExecRunner executes commands with inherited stdout/stderr.
type ExecRunner struct {
	Out io.Writer
}

func (r *ExecRunner) Run(name string, args ...string) error {
	return r.RunInDir("", name, args...)
}

func (r *ExecRunner) RunInDir(dir, name string, args ...string) error {
	fullCmd := name + " " + shellQuoteArgs(args)

	cmd := exec.Command(name, args...)
	cmd.Dir = dir
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	cmd.Env = os.Environ()

	fmt.Fprintf(r.Out, "Running%s: %s\n", inDir(dir), fullCmd)
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("command failed (exit=%d): %s: %w", exitErr.ExitCode(), fullCmd, err)
		}
		return fmt.Errorf("failed to run command: %s: %w", fullCmd, err)
	}
	return nil
}

// DryRunner logs the command that would be run without executing it.
type DryRunner struct {
	Out io.Writer
}

func (r *DryRunner) Run(name string, args ...string) error {
	return r.RunInDir("", name, args...)
}

func (r *DryRunner) RunInDir(dir, name string, args ...string) error {
	fmt.Fprintf(r.Out, "[DRY RUN%s] %s %s\n", inDir(dir), name, shellQuoteArgs(args))
	return nil
}

// ExitStatus extracts the external tool's exit status from a Runner error,
// so the process can mirror it.
func ExitStatus(err error) (int, bool) {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) && exitErr.ExitCode() > 0 {
		return exitErr.ExitCode(), true
	}
	return 0, false
}

func inDir(dir string) string {
	if dir == "" {
		return ""
	}
	return " in " + dir
}

// shellQuoteArgs returns a printable, shell-safe representation of args.
func shellQuoteArgs(args []string) string {
	quoted := make([]string, len(args))
	for i, a := range args {
		if a == "" || strings.ContainsAny(a, " \t\n\"'`$\\*?[]{}()<>|&;") {
			a = "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
		}
		quoted[i] = a
	}
	return strings.Join(quoted, " ")
}

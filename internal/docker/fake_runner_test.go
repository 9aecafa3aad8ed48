package docker

import (
	"fmt"
	"strings"
)

// fakeRunner records every command instead of executing it.
type fakeRunner struct {
	cmds    []string
	failOn  string // substring; matching commands return an error
	lastErr error
}

func (f *fakeRunner) Run(name string, args ...string) error {
	return f.RunInDir("", name, args...)
}

func (f *fakeRunner) RunInDir(dir, name string, args ...string) error {
	cmd := name + " " + strings.Join(args, " ")
	if f.failOn != "" && strings.Contains(cmd, f.failOn) {
		f.lastErr = fmt.Errorf("boom: %s", cmd)
		return f.lastErr
	}
	f.cmds = append(f.cmds, cmd)
	return nil
}

func (f *fakeRunner) joined() string {
	return strings.Join(f.cmds, "\n")
}

package pycheck

import (
	"bytes"
	"os/exec"
)

// Runner abstracts interpreter execution for testability.
type Runner interface {
	RunCommand(name string, args ...string) (stdout, stderr string, err error)
}

// RealRunner implements Runner using actual OS commands.
type RealRunner struct{}

// RunCommand executes a command and returns its output.
func (r *RealRunner) RunCommand(name string, args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(name, args...)
	var outBuf, errBuf bytes.Buffer
	cmd.Stdout = &outBuf
	cmd.Stderr = &errBuf
	err = cmd.Run()
	return outBuf.String(), errBuf.String(), err
}

// MockRunner is a test double for Runner.
type MockRunner struct {
	RunCommandFunc func(name string, args ...string) (string, string, error)
}

// RunCommand calls the mock function.
func (m *MockRunner) RunCommand(name string, args ...string) (stdout, stderr string, err error) {
	return m.RunCommandFunc(name, args...)
}

package bincheck

import (
	"strings"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/version"
)

// Check verifies that an executable is on the search path.
type Check struct {
	Name        string // binary name, e.g. "ros2"
	Remediation string
	Runner      Runner // injected for testing
}

// Run executes the binary check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:        "bin: " + c.Name,
		Remediation: c.Remediation,
	}

	path, err := c.Runner.LookPath(c.Name)
	if err != nil {
		return result.Failf("not found on PATH")
	}
	result.AddDetailf("path: %s", path)

	// Version output is a nicety, a tool that does not answer
	// --version still passes.
	stdout, stderr, err := c.Runner.RunCommand(c.Name, "--version")
	if err == nil {
		line := firstLine(stdout)
		if line == "" {
			line = firstLine(stderr)
		}
		if v, err := version.Extract(line); err == nil {
			result.AddDetailf("version: %s", v)
		} else if line != "" {
			result.AddDetailf("version: %s", line)
		}
	}

	result.Status = check.StatusOK
	return result
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

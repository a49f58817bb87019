package pycheck

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/version"
)

// VersionCheck verifies the interpreter exists and meets a minimum
// version constraint.
type VersionCheck struct {
	Interpreter string // e.g. "python3"
	Constraint  string // e.g. ">= 3.10.0"
	Remediation string
	Runner      Runner
}

// Run executes the interpreter version check.
func (c *VersionCheck) Run() check.Result {
	result := check.Result{
		Name:        "python",
		Remediation: c.Remediation,
	}

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, VersionScript)
	if !ok {
		return result
	}

	raw := gjson.Get(out, "version").String()
	v, err := version.Parse(raw)
	if err != nil {
		return result.Failf("could not parse interpreter version: %v", err)
	}

	result.AddDetailf("version: %s", raw)
	if exe := gjson.Get(out, "executable").String(); exe != "" {
		result.AddDetailf("executable: %s", exe)
	}

	meets, err := version.Meets(v, c.Constraint)
	if err != nil {
		return result.Failf("invalid version constraint: %v", err)
	}
	if !meets {
		return result.Failf("Python %s detected, want %s", raw, c.Constraint)
	}

	result.Status = check.StatusOK
	return result
}

// ImportCheck verifies a Python module can be imported. Absent optional
// modules report INFO instead of failing.
type ImportCheck struct {
	Module      string // import name, e.g. "cv2"
	Optional    bool
	Remediation string
	Interpreter string
	Runner      Runner
}

// Run executes the module import check.
func (c *ImportCheck) Run() check.Result {
	result := check.Result{
		Name:        "module: " + c.Module,
		Remediation: c.Remediation,
	}

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, ImportScript, c.Module)
	if !ok {
		return result
	}

	if !gjson.Get(out, "found").Bool() {
		if c.Optional {
			return result.Info("missing optional module %q", c.Module)
		}
		return result.Failf("missing required module %q", c.Module)
	}

	if v := gjson.Get(out, "version").String(); v != "" {
		result.AddDetailf("version: %s", v)
	}
	result.Status = check.StatusOK
	return result
}

// runSnippet executes a snippet through the interpreter and validates
// that it produced a JSON document. On failure the result is filled in
// and false is returned.
func runSnippet(result *check.Result, r Runner, interpreter, script string, args ...string) (string, bool) {
	cmdArgs := append([]string{"-c", script}, args...)
	stdout, stderr, err := r.RunCommand(interpreter, cmdArgs...)
	if err != nil {
		result.Failf("interpreter probe failed: %s", stderrSummary(stderr, err))
		return "", false
	}

	out := strings.TrimSpace(stdout)
	if !gjson.Valid(out) {
		result.Failf("unexpected probe output: %s", truncate(out, 120))
		return "", false
	}
	return out, true
}

// stderrSummary picks the most informative line to surface: the last
// non-empty stderr line (Python puts the exception there) or the exec
// error itself.
func stderrSummary(stderr string, err error) string {
	lines := strings.Split(strings.TrimSpace(stderr), "\n")
	for i := len(lines) - 1; i >= 0; i-- {
		if line := strings.TrimSpace(lines[i]); line != "" {
			return line
		}
	}
	return err.Error()
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

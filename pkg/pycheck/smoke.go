package pycheck

import (
	"errors"
	"os"

	"github.com/tidwall/gjson"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

// SmokeCheck runs a snippet that exercises a library and reports a
// single ok verdict.
type SmokeCheck struct {
	Label       string // result name, e.g. "smoke: numpy"
	Script      string
	OKDetail    string // detail on success, e.g. "matrix multiply OK"
	FailDetail  string // detail when the snippet reports ok=false
	Remediation string
	Interpreter string
	Runner      Runner
}

// Run executes the smoke check.
func (c *SmokeCheck) Run() check.Result {
	result := check.Result{
		Name:        c.Label,
		Remediation: c.Remediation,
	}

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, c.Script)
	if !ok {
		return result
	}

	if !gjson.Get(out, "ok").Bool() {
		return result.Fail(c.FailDetail, errors.New(c.FailDetail))
	}

	result.AddDetail(c.OKDetail)
	result.Status = check.StatusOK
	return result
}

// RenderCheck verifies matplotlib can write a PNG through the Agg
// backend. The target file lives in the system temp directory and is
// removed again no matter how the render went.
type RenderCheck struct {
	Remediation string
	Interpreter string
	Runner      Runner
}

// Run executes the render check.
func (c *RenderCheck) Run() check.Result {
	result := check.Result{
		Name:        "smoke: matplotlib",
		Remediation: c.Remediation,
	}

	tmp, err := os.CreateTemp("", "aae5303_matplotlib_*.png")
	if err != nil {
		return result.Failf("could not create temp file: %v", err)
	}
	target := tmp.Name()
	_ = tmp.Close()
	defer func() { _ = os.Remove(target) }()

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, MatplotlibScript, target)
	if !ok {
		return result
	}

	if !gjson.Get(out, "ok").Bool() {
		return result.Fail("could not write an image", errors.New("matplotlib could not write an image"))
	}

	info, err := os.Stat(target)
	if err != nil || info.Size() == 0 {
		return result.Failf("rendered file missing or empty")
	}

	result.AddDetail("backend OK (Agg)")
	result.Status = check.StatusOK
	return result
}

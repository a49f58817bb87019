package pycheck

import (
	"os"

	"github.com/tidwall/gjson"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

// ImageLoadCheck verifies OpenCV can decode the bundled sample image.
// A missing file and a failed decode are different problems and carry
// different remediations.
type ImageLoadCheck struct {
	Path               string // absolute path to the sample image
	MissingRemediation string // file is gone
	LoadRemediation    string // file exists but cv2 cannot decode it
	Interpreter        string
	Runner             Runner
}

// Run executes the image load check.
func (c *ImageLoadCheck) Run() check.Result {
	result := check.Result{
		Name:        "smoke: opencv",
		Remediation: c.LoadRemediation,
	}

	if _, err := os.Stat(c.Path); err != nil {
		result.Remediation = c.MissingRemediation
		return result.Failf("sample image not found at %s", c.Path)
	}

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, OpenCVScript, c.Path)
	if !ok {
		return result
	}

	if !gjson.Get(out, "ok").Bool() {
		return result.Failf("failed to load %s", c.Path)
	}

	width := gjson.Get(out, "width").Int()
	height := gjson.Get(out, "height").Int()
	result.AddDetailf("loaded sample image %dx%d", width, height)
	result.Status = check.StatusOK
	return result
}

// CloudLoadCheck verifies Open3D can read the bundled sample point
// cloud and that it holds at least one point.
type CloudLoadCheck struct {
	Path               string // absolute path to the sample cloud
	MissingRemediation string // file is gone
	LoadRemediation    string // file exists but reads back empty
	Interpreter        string
	Runner             Runner
}

// Run executes the cloud load check.
func (c *CloudLoadCheck) Run() check.Result {
	result := check.Result{
		Name:        "smoke: open3d io",
		Remediation: c.LoadRemediation,
	}

	if _, err := os.Stat(c.Path); err != nil {
		result.Remediation = c.MissingRemediation
		return result.Failf("sample point cloud missing at %s", c.Path)
	}

	out, ok := runSnippet(&result, c.Runner, c.Interpreter, Open3DCloudScript, c.Path)
	if !ok {
		return result
	}

	if !gjson.Get(out, "ok").Bool() {
		return result.Failf("sample cloud read but contained 0 points")
	}

	result.AddDetailf("loaded sample cloud with %d points", gjson.Get(out, "points").Int())
	result.Status = check.StatusOK
	return result
}

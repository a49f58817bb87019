// Package cloudcheck drives the point cloud exercise natively: load the
// bundled sample, filter it, write a derived copy and verify the copy
// reads back intact.
package cloudcheck

import (
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/pcd"
)

// red is painted onto the filtered copy.
var red = pcd.Color{R: 255, G: 0, B: 0}

// Pipeline runs the sequence as ordered steps. A hard failure ends the
// run, later steps would only cascade the same fault. The filtered copy
// written beside the source is a deliberate artifact, its path is
// reported so students can inspect it.
type Pipeline struct {
	Source             string  // path to the sample point cloud
	MinSqDist          float64 // squared distance threshold for the near-origin filter
	MissingRemediation string  // shown when the sample is gone or unreadable
}

// Run executes the pipeline and returns one result per attempted step.
func (p *Pipeline) Run() (results []check.Result) {
	defer func() {
		if v := recover(); v != nil {
			r := check.Result{Name: "cloud: pipeline"}
			results = append(results, r.Failf("check fault: %v", v))
		}
	}()

	cloud, result := p.load()
	results = append(results, result)
	if !result.OK() {
		return results
	}

	result = stats(cloud)
	results = append(results, result)
	if !result.OK() {
		return results
	}

	filtered, result := p.filterAndWrite(cloud)
	results = append(results, result)
	if !result.OK() {
		return results
	}

	result = p.roundTrip(filtered)
	results = append(results, result)
	if !result.OK() {
		return results
	}

	results = append(results, orientedBounds(filtered))
	return results
}

func (p *Pipeline) load() (*pcd.Cloud, check.Result) {
	result := check.Result{
		Name:        "cloud: load",
		Remediation: p.MissingRemediation,
	}

	if _, err := os.Stat(p.Source); err != nil {
		return nil, result.Failf("point cloud not found at %s", p.Source)
	}

	cloud, err := pcd.ReadFile(p.Source)
	if err != nil {
		return nil, result.Failf("failed to load: %v", err)
	}
	if cloud.Len() == 0 {
		return nil, result.Failf("loaded cloud is empty, point cloud I/O may be broken")
	}

	result.AddDetailf("source: %s", p.Source)
	result.AddDetailf("points: %d", cloud.Len())
	result.Status = check.StatusOK
	return cloud, result
}

func stats(cloud *pcd.Cloud) check.Result {
	result := check.Result{Name: "cloud: stats"}

	centroid, err := cloud.Centroid()
	if err != nil {
		return result.Failf("%v", err)
	}
	min, max, err := cloud.Bounds()
	if err != nil {
		return result.Failf("%v", err)
	}
	if !finite(centroid, min, max) {
		return result.Failf("cloud contains non-finite coordinates")
	}

	result.AddDetailf("centroid: %s", formatVec(centroid))
	result.AddDetailf("min: %s", formatVec(min))
	result.AddDetailf("max: %s", formatVec(max))
	result.Status = check.StatusOK
	return result
}

func (p *Pipeline) filterAndWrite(cloud *pcd.Cloud) (*pcd.Cloud, check.Result) {
	result := check.Result{Name: "cloud: filter"}

	filtered := cloud.FilterMinSqDist(p.MinSqDist)
	filtered.Color = &red

	target := derivedPath(p.Source)
	if err := pcd.WriteFile(target, filtered); err != nil {
		return nil, result.Failf("failed to write filtered copy: %v", err)
	}

	result.AddDetailf("kept %d of %d points", filtered.Len(), cloud.Len())
	result.AddDetailf("wrote: %s", target)
	result.Status = check.StatusOK
	return filtered, result
}

func (p *Pipeline) roundTrip(filtered *pcd.Cloud) check.Result {
	result := check.Result{Name: "cloud: round-trip"}

	reloaded, err := pcd.ReadFile(derivedPath(p.Source))
	if err != nil {
		return result.Failf("failed to reload copy: %v", err)
	}
	if reloaded.Len() != filtered.Len() {
		return result.Failf("wrote %d points, reloaded %d", filtered.Len(), reloaded.Len())
	}

	result.AddDetailf("reloaded copy with %d points", reloaded.Len())
	result.Status = check.StatusOK
	return result
}

func orientedBounds(filtered *pcd.Cloud) check.Result {
	result := check.Result{Name: "cloud: oriented bounds"}

	extents, err := filtered.OrientedBounds()
	if err != nil {
		return result.Failf("%v", err)
	}

	result.AddDetailf("extents: %.4f x %.4f x %.4f", extents[0], extents[1], extents[2])
	result.AddDetailf("max dim: %.4f m", extents[0])
	result.Status = check.StatusOK
	return result
}

// derivedPath names the filtered copy, sample_pointcloud.pcd becomes
// sample_pointcloud_copy.pcd.
func derivedPath(source string) string {
	ext := filepath.Ext(source)
	return strings.TrimSuffix(source, ext) + "_copy" + ext
}

func formatVec(v r3.Vec) string {
	return fmt.Sprintf("(%.4f, %.4f, %.4f)", v.X, v.Y, v.Z)
}

func finite(vs ...r3.Vec) bool {
	for _, v := range vs {
		for _, f := range []float64{v.X, v.Y, v.Z} {
			if math.IsNaN(f) || math.IsInf(f, 0) {
				return false
			}
		}
	}
	return true
}

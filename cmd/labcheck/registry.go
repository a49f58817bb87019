package main

import (
	"path/filepath"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/bincheck"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/datacheck"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/pycheck"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/roscheck"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/syscheck"
)

// The lab machines run Ubuntu 22.04 with ROS 2 Humble.
const (
	interpreter = "python3"
	minPython   = ">= 3.10.0"
	rosDistro   = "humble"

	sampleImage = "data/sample_image.png"
	sampleCloud = "data/sample_pointcloud.pcd"

	// Points whose squared distance to the origin is at or below this
	// are treated as sensor noise by the filter exercise.
	minSqDist = 0.0005

	envBanner   = "All checks passed. You are ready for AAE5303."
	cloudBanner = "Point cloud pipeline looks good."

	restoreImageHint = "Re-clone the repo or run `git checkout -- data/sample_image.png`."
	restoreCloudHint = "Restore data/sample_pointcloud.pcd."
)

// moduleDeps lists the Python modules the course exercises import.
var moduleDeps = []struct {
	name        string
	optional    bool
	remediation string
}{
	{name: "numpy", remediation: "pip install numpy"},
	{name: "scipy", remediation: "pip install scipy"},
	{name: "matplotlib", remediation: "pip install matplotlib"},
	{name: "cv2", remediation: "pip install opencv-python"},
	{name: "open3d", remediation: "pip install open3d"},
	{name: "rclpy", optional: true, remediation: "sudo apt install ros-humble-rclpy || pip install rclpy"},
}

// binaryDeps lists the command line tools the course assumes on PATH.
var binaryDeps = []struct {
	name        string
	remediation string
}{
	{name: "python3", remediation: "Ensure Python 3.10+ is installed and on PATH"},
	{name: "ros2", remediation: "source /opt/ros/humble/setup.bash or add ROS 2 bin to PATH"},
	{name: "colcon", remediation: "sudo apt install python3-colcon-common-extensions"},
}

// envProbes assembles the environment suite for a course checkout at
// root. The order is fixed so reports stay comparable between runs.
func envProbes(root string) []check.Probe {
	runner := &pycheck.RealRunner{}

	probes := []check.Probe{
		{Name: "system", Check: &syscheck.Check{Root: root, Info: &syscheck.RealSysInfo{}}},
		{Name: "python", Check: &pycheck.VersionCheck{
			Interpreter: interpreter,
			Constraint:  minPython,
			Remediation: "Install Python 3.10 or newer (Ubuntu 22.04 ships 3.10).",
			Runner:      runner,
		}},
	}

	for _, dep := range moduleDeps {
		probes = append(probes, check.Probe{Name: "module: " + dep.name, Check: &pycheck.ImportCheck{
			Module:      dep.name,
			Optional:    dep.optional,
			Remediation: dep.remediation,
			Interpreter: interpreter,
			Runner:      runner,
		}})
	}

	probes = append(probes,
		check.Probe{Name: "smoke: numpy", Check: &pycheck.SmokeCheck{
			Label:       "smoke: numpy",
			Script:      pycheck.NumpyScript,
			OKDetail:    "matrix multiply OK",
			FailDetail:  "matrix multiply returned an unexpected result",
			Remediation: "Reinstall numpy.",
			Interpreter: interpreter,
			Runner:      runner,
		}},
		check.Probe{Name: "smoke: scipy", Check: &pycheck.SmokeCheck{
			Label:       "smoke: scipy",
			Script:      pycheck.ScipyScript,
			OKDetail:    "fft OK",
			FailDetail:  "fft returned non-finite values",
			Remediation: "Reinstall scipy.",
			Interpreter: interpreter,
			Runner:      runner,
		}},
		check.Probe{Name: "smoke: matplotlib", Check: &pycheck.RenderCheck{
			Remediation: "Check that libpng and the matplotlib Agg backend are installed.",
			Interpreter: interpreter,
			Runner:      runner,
		}},
		check.Probe{Name: "smoke: opencv", Check: &pycheck.ImageLoadCheck{
			Path:               filepath.Join(root, sampleImage),
			MissingRemediation: restoreImageHint,
			LoadRemediation:    "Ensure OpenCV PNG support is installed.",
			Interpreter:        interpreter,
			Runner:             runner,
		}},
		check.Probe{Name: "smoke: open3d", Check: &pycheck.SmokeCheck{
			Label:       "smoke: open3d",
			Script:      pycheck.Open3DGeometryScript,
			OKDetail:    "bounding box OK",
			FailDetail:  "bounding box computation failed",
			Remediation: "Reinstall open3d.",
			Interpreter: interpreter,
			Runner:      runner,
		}},
		check.Probe{Name: "smoke: open3d io", Check: &pycheck.CloudLoadCheck{
			Path:               filepath.Join(root, sampleCloud),
			MissingRemediation: restoreCloudHint,
			LoadRemediation:    "Check Open3D installation.",
			Interpreter:        interpreter,
			Runner:             runner,
		}},
	)

	for _, dep := range binaryDeps {
		probes = append(probes, check.Probe{Name: "bin: " + dep.name, Check: &bincheck.Check{
			Name:        dep.name,
			Remediation: dep.remediation,
			Runner:      &bincheck.RealRunner{},
		}})
	}

	probes = append(probes,
		check.Probe{Name: "data: " + sampleImage, Check: &datacheck.Check{
			Path:        filepath.Join(root, sampleImage),
			Rel:         sampleImage,
			Kind:        datacheck.KindPNG,
			Remediation: restoreImageHint,
			FS:          &datacheck.RealFileSystem{},
		}},
		check.Probe{Name: "data: " + sampleCloud, Check: &datacheck.Check{
			Path:        filepath.Join(root, sampleCloud),
			Rel:         sampleCloud,
			Kind:        datacheck.KindPCD,
			Remediation: restoreCloudHint,
			FS:          &datacheck.RealFileSystem{},
		}},
		check.Probe{Name: "ros: ROS_DISTRO", Check: &roscheck.Check{
			Distro: rosDistro,
			Getter: &roscheck.RealEnvGetter{},
		}},
	)

	return probes
}

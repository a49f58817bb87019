package syscheck

import (
	"runtime"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

// Check reports a snapshot of the host environment. It is informational
// and always passes, a detail that cannot be read is simply left out.
type Check struct {
	Root string  // course root, used for the disk space probe
	Info SysInfo // injected for testing
}

// Run collects the snapshot.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:   "system",
		Status: check.StatusOK,
	}

	result.AddDetailf("platform: %s/%s", runtime.GOOS, runtime.GOARCH)
	if host, err := c.Info.Hostname(); err == nil {
		result.AddDetailf("host: %s", host)
	}
	if cwd, err := c.Info.WorkingDir(); err == nil {
		result.AddDetailf("cwd: %s", cwd)
	}
	result.AddDetailf("cpus: %d", c.Info.NumCPUs())
	if free, err := c.Info.FreeDiskSpace(c.Root); err == nil {
		result.AddDetailf("free disk: %s at %s", FormatSize(free), c.Root)
	}
	if runtime.GOOS != "linux" {
		result.AddDetail("note: ROS 2 Humble targets Ubuntu 22.04")
	}

	return result
}

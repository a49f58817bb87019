package roscheck

import (
	"fmt"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

// Check verifies the ROS 2 environment is sourced for the expected
// distribution. An unsourced shell is normal on machines that only run
// the Python exercises, so it reports INFO rather than failing. A
// different distribution is a real misconfiguration and fails.
type Check struct {
	Distro string    // expected ROS_DISTRO value, e.g. "humble"
	Getter EnvGetter // injected for testing
}

// Run executes the ROS environment check.
func (c *Check) Run() check.Result {
	result := check.Result{
		Name:        "ros: ROS_DISTRO",
		Remediation: fmt.Sprintf("source /opt/ros/%s/setup.bash", c.Distro),
	}

	value, exists := c.Getter.LookupEnv("ROS_DISTRO")
	if !exists || value == "" {
		return result.Info("ROS environment not sourced")
	}

	if value != c.Distro {
		return result.Failf("ROS_DISTRO is %q, want %q", value, c.Distro)
	}

	result.AddDetailf("distro: %s", value)
	if rmw, ok := c.Getter.LookupEnv("RMW_IMPLEMENTATION"); ok && rmw != "" {
		result.AddDetailf("rmw: %s", rmw)
	}
	result.Status = check.StatusOK
	return result
}

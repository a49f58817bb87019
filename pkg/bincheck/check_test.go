package bincheck

import (
	"errors"
	"testing"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

func TestCheck_Found(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/opt/ros/humble/bin/ros2", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "ros2 cli version: 0.18.11\n", "", nil
		},
	}

	c := &Check{
		Name:        "ros2",
		Remediation: "source /opt/ros/humble/setup.bash or add ROS 2 bin to PATH",
		Runner:      runner,
	}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if result.Name != "bin: ros2" {
		t.Errorf("Name = %q, want %q", result.Name, "bin: ros2")
	}
	if len(result.Details) != 2 {
		t.Fatalf("Details = %v, want path and version", result.Details)
	}
	if result.Details[0] != "path: /opt/ros/humble/bin/ros2" {
		t.Errorf("Details[0] = %q, want path detail", result.Details[0])
	}
	if result.Details[1] != "version: 0.18.11" {
		t.Errorf("Details[1] = %q, want parsed version", result.Details[1])
	}
}

func TestCheck_FoundVersionOnStderr(t *testing.T) {
	// Some tools print their version to stderr.
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/colcon", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "", "colcon version 0.16.1\n", nil
		},
	}

	c := &Check{Name: "colcon", Runner: runner}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if len(result.Details) != 2 || result.Details[1] != "version: 0.16.1" {
		t.Errorf("Details = %v, want stderr version parsed", result.Details)
	}
}

func TestCheck_FoundNoVersionSupport(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "/usr/bin/odd", nil
		},
		RunCommandFunc: func(name string, args ...string) (string, string, error) {
			return "", "unknown flag: --version\n", errors.New("exit status 2")
		},
	}

	c := &Check{Name: "odd", Runner: runner}

	result := c.Run()

	if result.Status != check.StatusOK {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusOK)
	}
	if len(result.Details) != 1 {
		t.Errorf("Details = %v, want path only", result.Details)
	}
}

func TestCheck_NotFound(t *testing.T) {
	runner := &MockRunner{
		LookPathFunc: func(file string) (string, error) {
			return "", errors.New("executable file not found in $PATH")
		},
	}

	c := &Check{
		Name:        "colcon",
		Remediation: "sudo apt install python3-colcon-common-extensions",
		Runner:      runner,
	}

	result := c.Run()

	if result.Status != check.StatusFail {
		t.Errorf("Status = %v, want %v", result.Status, check.StatusFail)
	}
	if result.Name != "bin: colcon" {
		t.Errorf("Name = %q, want %q", result.Name, "bin: colcon")
	}
	if len(result.Details) != 1 || result.Details[0] != "not found on PATH" {
		t.Errorf("Details = %v, want [not found on PATH]", result.Details)
	}
	if result.Remediation != "sudo apt install python3-colcon-common-extensions" {
		t.Errorf("Remediation = %q, want install hint", result.Remediation)
	}
}

package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// versionRegex matches dotted version tokens like 1.2.3 or v1.2 inside
// arbitrary command output. At least one dot is required so that stray
// digits in program names ("ros2", "python3") are not mistaken for a
// version.
var versionRegex = regexp.MustCompile(`v?(\d+(?:\.\d+){1,2})`)

// Parse parses a version string. Short forms like "3.10" are accepted
// and padded with zeros.
func Parse(s string) (*semver.Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("empty version string")
	}
	v, err := semver.NewVersion(s)
	if err != nil {
		return nil, fmt.Errorf("invalid version format %q: %w", s, err)
	}
	return v, nil
}

// Extract finds and parses the first version number in a string, such
// as the first line of --version output.
func Extract(s string) (*semver.Version, error) {
	m := versionRegex.FindStringSubmatch(s)
	if m == nil {
		return nil, fmt.Errorf("no version found in: %q", s)
	}
	return semver.NewVersion(m[1])
}

// Meets reports whether v satisfies a constraint expression like
// ">= 3.10.0".
func Meets(v *semver.Version, constraint string) (bool, error) {
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("invalid version constraint %q: %w", constraint, err)
	}
	return c.Check(v), nil
}

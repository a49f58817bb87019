package check

// Checker is implemented by all check types.
// Each check validates a specific aspect of the course environment
// and returns a Result indicating success or failure.
//
// Implementations:
//   - pycheck.VersionCheck: interpreter presence and minimum version
//   - pycheck.ImportCheck: Python module availability
//   - pycheck.SmokeCheck and friends: functional library probes
//   - bincheck.Check: executables on the search path
//   - datacheck.Check: bundled sample data files
//   - roscheck.Check: ROS 2 environment variables
//   - syscheck.Check: host snapshot
type Checker interface {
	Run() Result
}

// Probe pairs a stable display name with the Checker that produces its
// result. The suite falls back to the probe name when a check faults
// before it can name its own result.
type Probe struct {
	Name  string
	Check Checker
}

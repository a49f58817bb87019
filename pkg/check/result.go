package check

// Status represents the outcome of a check.
type Status string

const (
	StatusOK   Status = "OK"
	StatusInfo Status = "INFO"
	StatusFail Status = "FAIL"
)

// Result holds the outcome of a single check.
type Result struct {
	Name        string   // e.g. "module: numpy", "bin: ros2"
	Status      Status   // OK, INFO or FAIL
	Details     []string // human-readable details
	Remediation string   // suggested fix, printed only for failed results
	Err         error    // underlying error for failures
}

// OK returns true if the check passed. Informational results count as
// passing: an absent optional dependency reports INFO and never fails
// the run, only required dependencies and functional probes can.
func (r Result) OK() bool {
	return r.Status != StatusFail
}

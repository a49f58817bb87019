package check

// RunAll executes every probe in order and returns one Result per probe.
// A probe that panics is converted to a failed Result carrying the probe
// name, so a faulty check can never abort the rest of the suite or skip
// the final report.
func RunAll(probes []Probe) []Result {
	results := make([]Result, 0, len(probes))
	for _, p := range probes {
		results = append(results, runGuarded(p))
	}
	return results
}

func runGuarded(p Probe) (result Result) {
	defer func() {
		if v := recover(); v != nil {
			r := Result{Name: p.Name}
			result = r.Failf("check fault: %v", v)
		}
	}()
	return p.Check.Run()
}

// Failures counts the failed results in a slice.
func Failures(results []Result) int {
	n := 0
	for _, r := range results {
		if !r.OK() {
			n++
		}
	}
	return n
}

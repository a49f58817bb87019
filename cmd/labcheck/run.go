package main

import (
	"errors"
	"os"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/output"
	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/workspace"
)

// ErrChecksFailed is returned when at least one check fails.
var ErrChecksFailed = errors.New("checks failed")

// report prints every result followed by the summary banner, and
// returns an error so Cobra exits with code 1 when something failed.
func report(results []check.Result, banner string) error {
	for _, r := range results {
		output.PrintResult(r)
	}

	failures := check.Failures(results)
	output.PrintSummary(failures, banner)

	if failures > 0 {
		return ErrChecksFailed
	}
	return nil
}

// resolveRoot locates the course checkout, honoring an explicit --root.
func resolveRoot(explicit string) (string, error) {
	wd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return workspace.FindRoot(wd, explicit)
}

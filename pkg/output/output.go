package output

import (
	"fmt"
	"strings"

	"github.com/jwalton/go-supportscolor"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

var (
	green  = "\033[32m"
	red    = "\033[31m"
	yellow = "\033[33m"
	dim    = "\033[2m"
	reset  = "\033[0m"
)

func init() {
	if !supportscolor.Stdout().SupportsColor {
		green, red, yellow, dim, reset = "", "", "", "", ""
	}
}

// PrintResult outputs a check result with colored status. Details are
// indented to align under the status marker. Only failed results print
// their remediation as a fix: line.
func PrintResult(r check.Result) {
	switch r.Status {
	case check.StatusFail:
		fmt.Printf("%s[FAIL]%s %s\n", red, reset, r.Name)
	case check.StatusInfo:
		fmt.Printf("%s[INFO]%s %s\n", yellow, reset, r.Name)
	default:
		fmt.Printf("%s[OK]%s %s\n", green, reset, r.Name)
	}

	indent := "     "
	if r.Status != check.StatusOK {
		indent = "       "
	}
	for _, d := range r.Details {
		fmt.Printf("%s%s\n", indent, formatLabel(d))
	}
	if r.Status == check.StatusFail && r.Remediation != "" {
		fmt.Printf("%s%sfix:%s %s\n", indent, yellow, reset, r.Remediation)
	}
}

// PrintSummary outputs the final verdict after all results have been
// printed: the issue count when anything failed, the banner otherwise.
func PrintSummary(failures int, banner string) {
	fmt.Println()
	if failures > 0 {
		fmt.Printf("%sEnvironment check failed (%d issue(s)).%s\n", red, failures, reset)
		return
	}
	fmt.Printf("%s%s%s\n", green, banner, reset)
}

// formatLabel dims the leading "key:" label of a detail line so the
// value stands out.
func formatLabel(detail string) string {
	idx := strings.Index(detail, ": ")
	if idx == -1 {
		return detail
	}
	return dim + detail[:idx+1] + reset + detail[idx+1:]
}

package main

import (
	"github.com/spf13/cobra"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/check"
)

var envRoot string

var envCmd = &cobra.Command{
	Use:   "env",
	Short: "Check the Python, ROS 2 and course data prerequisites",
	Args:  cobra.NoArgs,
	RunE:  runEnvChecks,
}

func init() {
	envCmd.Flags().StringVar(&envRoot, "root", "", "course checkout root (default: walk up from the working directory)")
	rootCmd.AddCommand(envCmd)
}

func runEnvChecks(_ *cobra.Command, _ []string) error {
	root, err := resolveRoot(envRoot)
	if err != nil {
		return err
	}

	return report(check.RunAll(envProbes(root)), envBanner)
}

package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "labcheck",
	Short:        "Environment checks for the AAE5303 course stack",
	Long:         "Labcheck verifies the Python, ROS 2 and sample data setup used in the AAE5303 lab exercises.",
	Version:      Version,
	SilenceUsage: true,
}

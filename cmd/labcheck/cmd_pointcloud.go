package main

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/cloudcheck"
)

var pointcloudRoot string

var pointcloudCmd = &cobra.Command{
	Use:   "pointcloud",
	Short: "Run the point cloud filter pipeline on the course sample",
	Args:  cobra.NoArgs,
	RunE:  runPointcloudChecks,
}

func init() {
	pointcloudCmd.Flags().StringVar(&pointcloudRoot, "root", "", "course checkout root (default: walk up from the working directory)")
	rootCmd.AddCommand(pointcloudCmd)
}

func runPointcloudChecks(_ *cobra.Command, _ []string) error {
	root, err := resolveRoot(pointcloudRoot)
	if err != nil {
		return err
	}

	p := &cloudcheck.Pipeline{
		Source:             filepath.Join(root, sampleCloud),
		MinSqDist:          minSqDist,
		MissingRemediation: restoreCloudHint,
	}

	return report(p.Run(), cloudBanner)
}

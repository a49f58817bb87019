package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/qmohsu/PolyU-AAE5303-env-smork-test/pkg/pcd"
)

func executeCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	resetFlags(rootCmd)
	err := rootCmd.Execute()
	return buf.String(), err
}

func resetFlags(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	})
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// writeCourseRoot lays out a minimal checkout with a data directory
// holding a sample cloud, and returns the root path.
func writeCourseRoot(t *testing.T, points []r3.Vec) string {
	t.Helper()
	root := t.TempDir()
	dataDir := filepath.Join(root, "data")
	require.NoError(t, os.MkdirAll(dataDir, 0o755))
	cloudPath := filepath.Join(dataDir, "sample_pointcloud.pcd")
	require.NoError(t, pcd.WriteFile(cloudPath, &pcd.Cloud{Points: points}))
	return root
}

func TestVersionFlag(t *testing.T) {
	output, err := executeCommand("--version")
	require.NoError(t, err)
	assert.Contains(t, output, "labcheck")
}

func TestHelpFlag(t *testing.T) {
	output, err := executeCommand("--help")
	require.NoError(t, err)
	assert.Contains(t, output, "labcheck")
	assert.Contains(t, output, "env")
	assert.Contains(t, output, "pointcloud")
}

func TestSubcommandHelp(t *testing.T) {
	for _, subcmd := range []string{"env", "pointcloud"} {
		t.Run(subcmd, func(t *testing.T) {
			output, err := executeCommand(subcmd, "--help")
			require.NoError(t, err)
			assert.Contains(t, output, "--root")
		})
	}
}

func TestEnvCommandBadRoot(t *testing.T) {
	_, err := executeCommand("env", "--root", "/nonexistent/course/checkout")
	assert.Error(t, err)
}

func TestPointcloudCommand(t *testing.T) {
	t.Run("pipeline passes", func(t *testing.T) {
		root := writeCourseRoot(t, []r3.Vec{
			{X: 0.01, Y: 0, Z: 0}, // dropped by the noise filter
			{X: 0.3, Y: 0, Z: 0},
			{X: 0, Y: 0.4, Z: 0.1},
			{X: 0.2, Y: -0.2, Z: 0.2},
		})

		_, err := executeCommand("pointcloud", "--root", root)
		require.NoError(t, err)

		copyPath := filepath.Join(root, "data", "sample_pointcloud_copy.pcd")
		copied, err := pcd.ReadFile(copyPath)
		require.NoError(t, err)
		assert.Equal(t, 3, copied.Len())
	})

	t.Run("missing sample", func(t *testing.T) {
		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "data"), 0o755))

		_, err := executeCommand("pointcloud", "--root", root)
		assert.ErrorIs(t, err, ErrChecksFailed)
	})

	t.Run("bad root", func(t *testing.T) {
		_, err := executeCommand("pointcloud", "--root", "/nonexistent/course/checkout")
		assert.Error(t, err)
		assert.NotErrorIs(t, err, ErrChecksFailed)
	})
}

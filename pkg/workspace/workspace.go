package workspace

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// FindRoot locates the course repository root, the directory holding the
// bundled data/ samples. An explicit path wins and only has to exist.
// Otherwise the search walks up from startDir until a directory with a
// data/ subdirectory is found, stopping at the home directory, a .git
// boundary or the filesystem root.
func FindRoot(startDir, explicitPath string) (string, error) {
	if explicitPath != "" {
		info, err := os.Stat(explicitPath)
		if err != nil {
			return "", fmt.Errorf("root not found: %w", err)
		}
		if !info.IsDir() {
			return "", fmt.Errorf("root is not a directory: %s", explicitPath)
		}
		return explicitPath, nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}

	currentDir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("failed to get absolute path: %w", err)
	}

	for {
		dataPath := filepath.Join(currentDir, "data")
		if info, err := os.Stat(dataPath); err == nil && info.IsDir() {
			return currentDir, nil
		}

		if currentDir == homeDir {
			break
		}

		gitPath := filepath.Join(currentDir, ".git")
		if _, err := os.Stat(gitPath); err == nil {
			break
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached filesystem root
			break
		}
		currentDir = parentDir
	}

	return "", errors.New("course data directory not found, run from the course repository or pass --root")
}

package platform

import (
	"fmt"
	"os"
	"path/filepath"
)

// ManifestNames are the file names FindManifest looks for, in order.
var ManifestNames = []string{"basketweave.yaml", "basketweave.yml"}

// FindManifest looks upwards from startDir for a manifest file and returns
// its absolute path.
func FindManifest(startDir string) (string, error) {
	abs, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	dir := abs
	for {
		for _, name := range ManifestNames {
			if hasFile(dir, name) {
				return filepath.Join(dir, name), nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("no %s found above %s", ManifestNames[0], abs)
}

func hasFile(dir, name string) bool {
	info, err := os.Stat(filepath.Join(dir, name))
	return err == nil && info.Mode().IsRegular()
}

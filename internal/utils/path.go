package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// ResolveDatasetPath locates the tag dataset file, trying the path as given
// first and then the same relative path next to the executable. The second
// candidate covers installs where the binary ships with its dataset and is
// started from an arbitrary working directory.
func ResolveDatasetPath(path string) (string, error) {
	if FileExists(path) {
		return GetAbsolutePath(path), nil
	}
	if filepath.IsAbs(path) {
		return "", fmt.Errorf("dataset file not found: %s", path)
	}

	execPath, err := os.Executable()
	if err != nil {
		return "", fmt.Errorf("dataset file not found: %s (and executable dir unknown: %v)", path, err)
	}
	if resolved, err := filepath.EvalSymlinks(execPath); err == nil {
		execPath = resolved
	}
	candidate := filepath.Join(filepath.Dir(execPath), path)
	if FileExists(candidate) {
		log.Debugf("Dataset resolved next to executable: %s", candidate)
		return candidate, nil
	}
	return "", fmt.Errorf("dataset file not found: tried %s and %s", GetAbsolutePath(path), candidate)
}

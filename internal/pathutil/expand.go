// Package pathutil resolves user-supplied file paths.
package pathutil

import (
	"os"
	"path/filepath"
	"strings"
)

// Expand replaces $VAR and ${VAR} references with environment values and
// resolves a leading ~ to the home directory. If the home directory cannot
// be determined the ~ is left in place.
func Expand(path string) string {
	path = os.ExpandEnv(path)

	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path[1:], "/"))
}

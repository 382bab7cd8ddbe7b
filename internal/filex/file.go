package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureDir creates dir (and any missing parents) with 0700 permissions and
// returns it. Calling it on an existing directory is a no-op.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}

// DefaultProfileDir returns the per-user directory where the client keeps its
// local state (session database, device key). It is resolved under the OS
// user config dir, e.g. ~/.config/artfolio on Linux.
func DefaultProfileDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(base, "artfolio"), nil
}

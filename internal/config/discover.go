package config

import (
	"os"
	"path/filepath"
)

// EnvConfigPath names an explicit config file, checked before the scan root
const EnvConfigPath = "SECRETSCAN_CONFIG"

// FindConfigFile locates the config file for a scan of target.
// Priority order:
//  1. SECRETSCAN_CONFIG environment variable (if set)
//  2. .secretscan.yaml in the scan root or the nearest parent, stopping at
//     the first directory that contains .git
//
// Returns "" when no file is found; LoadConfig("") yields the defaults.
func FindConfigFile(target string) string {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path
	}

	current, err := filepath.Abs(target)
	if err != nil {
		return ""
	}
	if info, err := os.Stat(current); err == nil && !info.IsDir() {
		current = filepath.Dir(current)
	}

	for {
		candidate := filepath.Join(current, FileName)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate
		}

		// Repository root: do not look above it
		if _, err := os.Stat(filepath.Join(current, ".git")); err == nil {
			break
		}

		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	return ""
}

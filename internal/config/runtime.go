package config

import (
	"os"
	"path/filepath"
)

const defaultRuntimeDir = ".defendiq"

// GetRuntimePath resolves the runtime directory before any .env file has
// been loaded, so it reads the variable directly.
func GetRuntimePath() string {
	return resolveRuntimePath(os.Getenv("DEFENDIQ_RUNTIME_PATH"))
}

func resolveRuntimePath(path string) string {
	if path == "" {
		path = defaultRuntimeDir
	}

	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}

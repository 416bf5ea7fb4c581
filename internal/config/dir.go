// Package config loads healthnote settings and resolves its config directory.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// appName names the config directory.
const appName = "healthnote"

// Dir returns the healthnote configuration directory.
//
// Resolution:
//   - $HEALTHNOTE_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/healthnote if set (respects XDG on any platform)
//   - %AppData%/healthnote on Windows
//   - ~/.config/healthnote on macOS and Linux
func Dir() string {
	if dir := os.Getenv(EnvConfigHome); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, appName)
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, appName)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", appName)
}

// ExpandHome replaces a leading "~" with the user's home directory.
// Paths without the prefix, or when the home directory is unknown, are
// returned unchanged.
func ExpandHome(path string) string {
	if path != "~" && !hasHomePrefix(path) {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}

func hasHomePrefix(path string) bool {
	return len(path) >= 2 && path[0] == '~' && (path[1] == '/' || path[1] == filepath.Separator)
}

// Package config loads the contribution conventions forkcheck compares a
// working copy against.
package config

import (
	"os"
	"path/filepath"
	"runtime"
)

// Dir returns the forkcheck configuration directory.
//
// Resolution:
//   - $FORKCHECK_CONFIG_HOME if set (explicit override)
//   - $XDG_CONFIG_HOME/forkcheck if set (respects XDG on any platform)
//   - %AppData%/forkcheck on Windows
//   - ~/.config/forkcheck on macOS and Linux
func Dir() string {
	if dir := os.Getenv("FORKCHECK_CONFIG_HOME"); dir != "" {
		return dir
	}

	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "forkcheck")
	}

	if runtime.GOOS == "windows" {
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "forkcheck")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "forkcheck")
}

// GlobalPath returns the path of the global config file, or "" when no
// config directory can be determined.
func GlobalPath() string {
	dir := Dir()
	if dir == "" {
		return ""
	}
	return filepath.Join(dir, GlobalFileName)
}

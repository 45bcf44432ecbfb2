package config

import (
	"os"
	"path/filepath"
)

// GetHome returns FLOWPOMO_HOME or ~/.flowpomo default
func GetHome() string {
	home := os.Getenv("FLOWPOMO_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".flowpomo"
		}
		return filepath.Join(homeDir, ".flowpomo")
	}
	return ExpandPath(home)
}

// GetDBPath returns $FLOWPOMO_HOME/state.db
func GetDBPath() string {
	return filepath.Join(GetHome(), "state.db")
}

// GetSettingsPath returns $FLOWPOMO_HOME/settings.json
func GetSettingsPath() string {
	return filepath.Join(GetHome(), "settings.json")
}

// GetHostKeyPath returns $FLOWPOMO_HOME/ssh/id_ed25519, the SSH server host key
func GetHostKeyPath() string {
	return filepath.Join(GetHome(), "ssh", "id_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}

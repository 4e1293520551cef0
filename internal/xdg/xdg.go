// Package xdg resolves XDG Base Directory paths for recicla.
// Configuration and state directories are created lazily with private
// permissions; traditional dotfile locations are used when the XDG
// environment variables are unset.
package xdg

import (
	"os"
	"path/filepath"
)

// ConfigDir returns the XDG config directory for recicla.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.config/recicla when XDG_CONFIG_HOME is unset.
func ConfigDir() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	dir := filepath.Join(base, "recicla")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

// StateDir returns the XDG state directory for recicla.
// The directory is created with private permissions (0700) if missing.
// It falls back to ~/.local/state/recicla when XDG_STATE_HOME is unset.
func StateDir() (string, error) {
	base := os.Getenv("XDG_STATE_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".local", "state")
	}
	dir := filepath.Join(base, "recicla")
	if err := os.MkdirAll(dir, 0o700); err != nil { // private dir
		return "", err
	}
	return dir, nil
}

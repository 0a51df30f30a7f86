// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 SecondChance Contributors

// Package xdg provides XDG Base Directory paths for SecondChance.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "secondchance"

// ConfigDir returns the XDG config directory for secondchance.
// Checks XDG_CONFIG_HOME first, falls back to ~/.config.
func ConfigDir() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".config")
	}
	return filepath.Join(base, appName)
}

// DataDir returns the XDG data directory for secondchance.
// Checks XDG_DATA_HOME first, falls back to ~/.local/share.
func DataDir() string {
	base := os.Getenv("XDG_DATA_HOME")
	if base == "" {
		base = filepath.Join(os.Getenv("HOME"), ".local", "share")
	}
	return filepath.Join(base, appName)
}

// DefaultConfigFile returns the path of the config file inside the XDG
// config directory, or "" if no file exists there.
func DefaultConfigFile() string {
	path := filepath.Join(ConfigDir(), "config.yaml")
	if _, err := os.Stat(path); err != nil {
		return ""
	}
	return path
}

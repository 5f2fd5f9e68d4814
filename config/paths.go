// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/paths.go
// Summary: Path helpers for panemux configuration and data files.

package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const configName = "panemux.json"

func configRoot() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(configDir, "panemux"), nil
}

// Path returns the location of the config file.
func Path() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, configName), nil
}

// SessionDBPath returns the location of the session database.
func SessionDBPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "session.db"), nil
}

// LogPath returns the location of the log file.
func LogPath() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "panemux.log"), nil
}

// DefaultHardcopyDir returns where captures land when unconfigured.
func DefaultHardcopyDir() (string, error) {
	root, err := configRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, "hardcopy"), nil
}

func ensureDir() error {
	root, err := configRoot()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	return nil
}

// EnsureDirs creates the directories the program writes into.
func EnsureDirs() error {
	return ensureDir()
}

// Copyright © 2025 Panemux contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration for the multiplexer.

package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the user-tunable settings.
type Config struct {
	// Shell is the argv launched in new panes. Empty means $SHELL.
	Shell []string `json:"shell,omitempty"`
	// Panes is the number of panes opened at startup (1-4).
	Panes int `json:"panes"`
	// HardcopyDir receives pane captures. Empty means the hardcopy
	// directory under the config dir (DefaultHardcopyDir).
	HardcopyDir string `json:"hardcopy_dir,omitempty"`
	// HardcopyHighlight re-colors captures with syntax highlighting.
	HardcopyHighlight bool `json:"hardcopy_highlight"`
	// SessionRestore reopens the saved layout on startup.
	SessionRestore bool `json:"session_restore"`
}

// Default returns the baseline configuration.
func Default() Config {
	return Config{
		Panes:             1,
		HardcopyHighlight: true,
		SessionRestore:    false,
	}
}

// Load reads the user config file, merging it over the defaults. A missing
// file is not an error.
func Load() (Config, error) {
	cfg := Default()
	path, err := Path()
	if err != nil {
		return cfg, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.clampValues()
	return cfg, nil
}

// Save writes the configuration to the user config file.
func Save(cfg Config) error {
	path, err := Path()
	if err != nil {
		return err
	}
	if err := ensureDir(); err != nil {
		return err
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

func (c *Config) clampValues() {
	if c.Panes < 1 {
		c.Panes = 1
	}
	if c.Panes > 4 {
		c.Panes = 4
	}
}

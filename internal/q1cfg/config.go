/*
Author: Jeff Berkowitz
Copyright (C) 2024 Jeff Berkowitz

This file is part of the Q1 toolchain.

This program is free software; you can redistribute it and/or
modify it under the terms of the GNU General Public License
as published by the Free Software Foundation, either version 3
of the License, or (at your option) any later version.

This program is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with this program. If not, see http://www.gnu.org/licenses/.
*/

// Package q1cfg loads optional TOML defaults shared by the assembler
// and simulator CLIs. Neither CLI requires a config file: every
// setting here has a default equal to the literal constant the
// original toolchain hard-coded, so an absent file, or any setting a
// file leaves out, changes nothing.
package q1cfg

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config holds defaults for both CLIs. CLI flags always override
// these when both are given.
type Config struct {
	Assembler struct {
		IncludeDepth  int    `toml:"include_depth"`
		DefaultFormat string `toml:"default_format"` // "list" | "raw" | "hex"
	} `toml:"assembler"`

	Simulator struct {
		StatusInterval int   `toml:"status_interval"` // 0 disables
		SeedA          uint8 `toml:"seed_a"`
		SeedB          uint8 `toml:"seed_b"`
		SeedC          uint8 `toml:"seed_c"`
	} `toml:"simulator"`
}

// DefaultConfig returns the configuration the toolchain uses with no
// file present: include depth 8, listing output, no status display,
// registers seeded to 0xFF.
func DefaultConfig() *Config {
	cfg := &Config{}
	cfg.Assembler.IncludeDepth = 8
	cfg.Assembler.DefaultFormat = "list"
	cfg.Simulator.StatusInterval = 0
	cfg.Simulator.SeedA = 0xFF
	cfg.Simulator.SeedB = 0xFF
	cfg.Simulator.SeedC = 0xFF
	return cfg
}

// GetConfigPath returns the platform-specific config file path,
// creating its containing directory if needed.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "q1")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "q1.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "q1")

	default:
		return "q1.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "q1.toml"
	}
	return filepath.Join(configDir, "q1.toml")
}

// Load reads configuration from the default platform path.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom reads configuration from path. A missing file is not an
// error: DefaultConfig() is returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// Save writes c to the default platform path.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo writes c to path as TOML.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer f.Close()

	if err := toml.NewEncoder(f).Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	return nil
}

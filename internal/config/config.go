// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for bf2save with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Configuration file
//  4. Built-in defaults
//
// None of this configuration is the session state (last directory, last
// file, pin); that lives in package state.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .bf2save.yaml (current directory)
//   - .bf2save.yml (current directory)
//   - ~/.bf2save/config.yaml
//   - ~/.bf2save/config.yml
//
// Environment variables are applied after loading the config file. Path
// expansion (~ and environment variables) is performed on file paths.
//
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".bf2save.yaml",
			".bf2save.yml",
			expandPath("~/.bf2save/config.yaml"),
			expandPath("~/.bf2save/config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	cfg.State.Path = expandPath(cfg.State.Path)
	cfg.History.Path = expandPath(cfg.History.Path)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if path := os.Getenv("BF2SAVE_STATE_FILE"); path != "" {
		cfg.State.Path = path
	}
	if path := os.Getenv("BF2SAVE_HISTORY_FILE"); path != "" {
		cfg.History.Path = path
	}
	if enabled := os.Getenv("BF2SAVE_HISTORY"); enabled != "" {
		cfg.History.Enabled = parseBool(enabled)
	}
	if debounce := os.Getenv("BF2SAVE_WATCH_DEBOUNCE_MS"); debounce != "" {
		if ms, err := parseNonNegativeInt(debounce); err == nil {
			cfg.Watch.DebounceMs = ms
		}
	}
	if level := os.Getenv("BF2SAVE_LOG_LEVEL"); level != "" {
		cfg.Log.Level = level
	}
	if color := os.Getenv("BF2SAVE_COLOR"); color != "" {
		cfg.Color = ColorMode(strings.ToLower(strings.TrimSpace(color)))
	}
	// https://no-color.org
	if os.Getenv("NO_COLOR") != "" {
		cfg.Color = ColorNever
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parseNonNegativeInt parses a string to a non-negative integer
func parseNonNegativeInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i < 0 {
		return 0, fmt.Errorf("value must not be negative, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// WatchDebounce returns the quiet period the watcher waits for before
// re-scanning.
func (c *Config) WatchDebounce() time.Duration {
	return time.Duration(c.Watch.DebounceMs) * time.Millisecond
}

// LogLevel returns the configured slog level. Unknown names fall back to
// warn; Validate reports them.
func (c *Config) LogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return slog.LevelWarn
	}
	return level
}

// Validate checks if the configuration contains valid values. File names
// must be plain names, without any directory part, since they are always
// joined to the save directory.
func (c *Config) Validate() error {
	if c.Candidates.Prefix == "" {
		return fmt.Errorf("candidate prefix cannot be empty")
	}
	if !isBareName(c.Candidates.Prefix) {
		return fmt.Errorf("candidate prefix %q must not contain a path separator", c.Candidates.Prefix)
	}
	if c.Candidates.ActiveName == "" {
		return fmt.Errorf("active save name cannot be empty")
	}
	if !isBareName(c.Candidates.ActiveName) {
		return fmt.Errorf("active save name %q must be a plain file name", c.Candidates.ActiveName)
	}
	if c.Watch.DebounceMs < 0 {
		return fmt.Errorf("watch debounce must not be negative, got: %d", c.Watch.DebounceMs)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("unknown color mode %q (want auto, always or never)", c.Color)
	}
	return nil
}

func isBareName(name string) bool {
	return name != "." && name != ".." && filepath.Base(name) == name
}

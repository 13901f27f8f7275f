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

// Package config types define the configuration structures used throughout
// bf2save. These types represent settings that can be loaded from YAML
// configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for bf2save.
type Config struct {
	Candidates CandidatesConfig `yaml:"candidates"`
	State      StateConfig      `yaml:"state"`
	History    HistoryConfig    `yaml:"history"`
	Watch      WatchConfig      `yaml:"watch"`
	Log        LogConfig        `yaml:"log"`
	Color      ColorMode        `yaml:"color"`
}

// CandidatesConfig names the files the tool works with. The prefix selects
// which directory entries are listed; the active name is the file a promote
// overwrites.
type CandidatesConfig struct {
	Prefix     string `yaml:"prefix"`
	ActiveName string `yaml:"active_name"`
}

// StateConfig locates the session state file. An empty path keeps the
// state next to the executable.
type StateConfig struct {
	Path string `yaml:"path"`
}

// HistoryConfig controls the promote audit trail. An empty path places
// the history next to the state file.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	Path    string `yaml:"path"`
}

// WatchConfig tunes the directory watcher.
type WatchConfig struct {
	DebounceMs int `yaml:"debounce_ms"`
}

// LogConfig sets the minimum level of diagnostic logging on stderr.
type LogConfig struct {
	Level string `yaml:"level"`
}

// ColorMode selects when the success/failure indicator is colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// DefaultConfig returns a Config with the built-in defaults.
func DefaultConfig() *Config {
	return &Config{
		Candidates: CandidatesConfig{
			Prefix:     "bf2savefile",
			ActiveName: "bf2savefile.sav",
		},
		History: HistoryConfig{
			Enabled: true,
		},
		Watch: WatchConfig{
			DebounceMs: 250,
		},
		Log: LogConfig{
			Level: "warn",
		},
		Color: ColorAuto,
	}
}

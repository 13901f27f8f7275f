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

// Package errors defines sentinel errors for consistent error handling across the application.
// The promote and state errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrDirectoryUnreadable indicates the save directory does not exist,
	// is not a directory, or cannot be listed. Scans absorb it and return
	// an empty candidate list.
	ErrDirectoryUnreadable = errors.New("directory unreadable")

	// ErrNoSelection indicates a promote was requested without a file name.
	// Maps to exit code 2.
	ErrNoSelection = errors.New("no save file selected")

	// ErrSourceMissing indicates the chosen save file is gone or was never
	// a direct child of the directory.
	// Maps to exit code 2.
	ErrSourceMissing = errors.New("save file not found")

	// ErrCopyFailed indicates the copy onto the active save failed
	// (permission, disk full, locked destination).
	// Maps to exit code 2.
	ErrCopyFailed = errors.New("copy to active save failed")

	// ErrConfigUnwritable indicates the persisted state could not be written.
	// Maps to exit code 3.
	ErrConfigUnwritable = errors.New("state file not writable")

	// ErrConfigUnreadable indicates the persisted state could not be read.
	// Loads absorb it and fall back to defaults.
	ErrConfigUnreadable = errors.New("state file not readable")
)

// IsPromoteFailure reports whether err carries one of the promote failure kinds.
func IsPromoteFailure(err error) bool {
	return errors.Is(err, ErrNoSelection) ||
		errors.Is(err, ErrSourceMissing) ||
		errors.Is(err, ErrCopyFailed)
}

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

// Package main implements the bf2save command-line interface.
// It lists the save files of a directory in natural order and promotes a
// chosen one to the active save slot, bf2savefile.sav, remembering the last
// directory, file and pin preference in config.txt beside the executable.
//
// The CLI supports:
//   - Listing candidates, as text or NDJSON
//   - Promoting by name, by list index, or interactively
//   - Watching a directory and re-listing when it changes
//   - Showing the persisted state and the promote history
//
// Usage:
//
//	bf2save list --dir <directory>
//	bf2save promote bf2savefile12.sav
//	bf2save pick
//
// Exit codes:
//   - 0: Success
//   - 1: General error
//   - 2: Promote failed (no selection, source missing, copy failed)
//   - 3: Promote succeeded but the state file could not be written
package main

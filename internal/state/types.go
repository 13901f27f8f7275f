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

package state

// FileName is the name of the state file inside the executable's directory.
const FileName = "config.txt"

// Keys of the state file records.
const (
	keyDirectory = "directory"
	keyFile      = "file"
	keyPin       = "pin"
)

// State is the persisted session. The zero value is the first-run default.
type State struct {
	// Directory is the last save directory the user worked in.
	Directory string

	// FileName is the last save file the user chose in Directory.
	FileName string

	// Pin records the keep-on-top preference of the interactive shell.
	// The core never acts on it; it only round-trips.
	Pin bool
}

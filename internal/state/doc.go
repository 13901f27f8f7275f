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

// Package state persists the last session: directory, selected save file and
// the pin preference.
//
// The state lives in a small text file, config.txt, next to the running
// executable. Each line is a key=value pair:
//
//	directory=C:\Games\Battlefield 2\Profiles\0001
//	file=bf2savefile_12.sav
//	pin=1
//
// A missing or unreadable file is the normal first-run state and loads as
// the zero State. Unknown keys are ignored. Files edited on Windows may carry
// a byte order mark (UTF-8 or UTF-16); it is decoded transparently. Writes
// always replace the whole file using a write-to-temp-and-rename pattern so a
// crash never leaves a half-written state behind.
//
// Example usage:
//
//	store := state.NewStore("")
//	last := store.Load()
//	last.Pin = true
//	if err := store.Save(last); err != nil {
//	    // errors.Is(err, bferrors.ErrConfigUnwritable)
//	}
package state

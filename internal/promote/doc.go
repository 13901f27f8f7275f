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

// Package promote makes a chosen save file the active one.
//
// Promoting copies the full content of a candidate over bf2savefile.sav in
// the same directory. The copy is written to a temporary file first and
// renamed into place, so the active save is either the old content or the
// new content, never a mix. The source is re-checked at call time since the
// directory may have changed since it was listed.
//
// Workflow wraps a promote with the session bookkeeping: the state is saved
// whether or not the copy worked, and the attempt is appended to the
// history. The copy and the state write are independent; a crash between
// them can leave the state describing a promote that never happened.
package promote

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

// Package natural orders save file names the way a person reads them.
//
// Embedded digit runs compare by numeric value, letters compare without
// regard to case, and separator characters (space, underscore, hyphen and
// period) are skipped entirely, so "bf2savefile_9.sav" sorts before
// "bf2savefile-10.sav".
//
// Example usage:
//
//	names := []string{"save10", "save2", "save1"}
//	ranked := natural.Rank(names) // [save1 save2 save10]
package natural

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

// Package scan discovers candidate save files in a directory.
//
// Only direct children are considered. An entry is a candidate when it is a
// regular file (symbolic links are followed) and its raw name starts with the
// configured prefix, compared case-sensitively. Directories that are missing,
// are not directories, or cannot be listed yield an empty result rather than
// an error: callers re-scan whenever the directory path changes, and a
// half-typed path is a normal state.
package scan

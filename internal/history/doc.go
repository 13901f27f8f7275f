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

// Package history keeps an audit trail of promote attempts.
//
// Every run of the promote workflow appends one NDJSON record describing
// what was copied, where to, how many bytes, whether it worked and whether
// the session state was saved afterwards. The file lives next to the state
// file by default and is only ever appended to.
//
// The trail serves two purposes:
//   - answering "which save did I load last Tuesday?"
//   - troubleshooting failed promotes after the status message has gone
package history

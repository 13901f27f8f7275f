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

// Package output writes records in NDJSON (Newline Delimited JSON) format.
//
// It backs the machine-readable candidate listing (`bf2save list --json`)
// and the promote history file. Each record is encoded and written as soon
// as it arrives, so an interrupted run still leaves every completed line
// intact.
//
// Example usage:
//
//	w, err := output.NewAppendWriter("history.ndjson")
//	if err != nil {
//	    return err
//	}
//	defer w.Close()
//
//	if err := w.Write(entry); err != nil {
//	    return err
//	}
package output

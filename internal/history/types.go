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

package history

import (
	"time"
)

// FileName is the default name of the history file.
const FileName = "history.ndjson"

// Entry is one promote attempt.
type Entry struct {
	StartedAt   time.Time `json:"started_at"`
	CompletedAt time.Time `json:"completed_at"`
	Duration    string    `json:"duration"`
	Directory   string    `json:"directory"`
	Source      string    `json:"source"`
	Destination string    `json:"destination"`
	Bytes       int64     `json:"bytes"`
	Outcome     string    `json:"outcome"`
	Reason      string    `json:"reason,omitempty"`
	StateSaved  bool      `json:"state_saved"`
}

// Attempt carries what the promote workflow knows once it has finished.
type Attempt struct {
	Directory   string
	Source      string
	Destination string
	Bytes       int64
	Outcome     string
	Reason      error
	StateSaved  bool
}

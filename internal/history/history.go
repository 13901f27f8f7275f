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
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/sirseerhq/bf2save/internal/output"
)

// Recorder persists history entries.
type Recorder interface {
	Record(entry Entry) error
}

// Tracker measures one promote attempt. Create it right before the copy
// starts and call Finish once the state has been saved.
type Tracker struct {
	startTime time.Time
	now       func() time.Time
}

// NewTracker starts timing an attempt.
func NewTracker() *Tracker {
	return &Tracker{startTime: time.Now(), now: time.Now}
}

// Finish builds the Entry for a completed attempt.
func (t *Tracker) Finish(a Attempt) Entry {
	completedAt := t.now()
	entry := Entry{
		StartedAt:   t.startTime,
		CompletedAt: completedAt,
		Duration:    completedAt.Sub(t.startTime).String(),
		Directory:   a.Directory,
		Source:      a.Source,
		Destination: a.Destination,
		Bytes:       a.Bytes,
		Outcome:     a.Outcome,
		StateSaved:  a.StateSaved,
	}
	if a.Reason != nil {
		entry.Reason = a.Reason.Error()
	}
	return entry
}

// DefaultPath places the history file next to the state file.
func DefaultPath(statePath string) string {
	return filepath.Join(filepath.Dir(statePath), FileName)
}

// FileRecorder appends entries to an NDJSON file.
type FileRecorder struct {
	path string
}

// NewFileRecorder returns a recorder appending to path.
func NewFileRecorder(path string) *FileRecorder {
	return &FileRecorder{path: path}
}

// Path returns the history file location.
func (r *FileRecorder) Path() string {
	return r.path
}

// Record appends entry as a single line.
func (r *FileRecorder) Record(entry Entry) error {
	w, err := output.NewAppendWriter(r.path)
	if err != nil {
		return fmt.Errorf("failed to open history file: %w", err)
	}
	if err := w.Write(entry); err != nil {
		_ = w.Close()
		return err
	}
	return w.Close()
}

// Discard is a Recorder that drops every entry.
var Discard Recorder = discard{}

type discard struct{}

func (discard) Record(Entry) error { return nil }

// Read returns the last limit entries of the history file, oldest first.
// A limit of zero or less returns all of them. A missing file is an empty
// history. Lines that do not parse are skipped.
func Read(path string, limit int) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}
	defer file.Close()

	var entries []Entry
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var entry Entry
		if err := json.Unmarshal(line, &entry); err != nil {
			continue
		}
		entries = append(entries, entry)
		if limit > 0 && len(entries) > limit {
			entries = entries[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read history file %s: %w", path, err)
	}
	return entries, nil
}

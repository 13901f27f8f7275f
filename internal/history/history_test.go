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
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
	"github.com/sirseerhq/bf2save/test/testutil"
)

func TestTracker_Finish(t *testing.T) {
	start := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	tracker := &Tracker{
		startTime: start,
		now:       func() time.Time { return start.Add(1500 * time.Millisecond) },
	}

	got := tracker.Finish(Attempt{
		Directory:   "/saves",
		Source:      "/saves/bf2savefile3.sav",
		Destination: "/saves/bf2savefile.sav",
		Outcome:     "failure",
		Reason:      fmt.Errorf("stat: %w", bferrors.ErrSourceMissing),
		StateSaved:  true,
	})

	want := Entry{
		StartedAt:   start,
		CompletedAt: start.Add(1500 * time.Millisecond),
		Duration:    "1.5s",
		Directory:   "/saves",
		Source:      "/saves/bf2savefile3.sav",
		Destination: "/saves/bf2savefile.sav",
		Outcome:     "failure",
		Reason:      "stat: save file not found",
		StateSaved:  true,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Finish mismatch (-want +got):\n%s", diff)
	}
}

func TestDefaultPath(t *testing.T) {
	got := DefaultPath(filepath.Join("opt", "bf2save", "config.txt"))
	want := filepath.Join("opt", "bf2save", FileName)
	if got != want {
		t.Errorf("DefaultPath = %q, want %q", got, want)
	}
}

func TestFileRecorder_RecordAndRead(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	recorder := NewFileRecorder(path)

	for i := 1; i <= 5; i++ {
		entry := Entry{Source: fmt.Sprintf("bf2savefile%d.sav", i), Outcome: "success", Bytes: int64(i)}
		if err := recorder.Record(entry); err != nil {
			t.Fatalf("Record #%d failed: %v", i, err)
		}
	}

	records := testutil.ReadNDJSONFile(t, path)
	if len(records) != 5 {
		t.Fatalf("got %d records, want 5", len(records))
	}
	testutil.AssertRecordFields(t, records, "started_at", "completed_at", "duration", "source", "destination", "bytes", "outcome", "state_saved")

	all, err := Read(path, 0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(all) != 5 || all[0].Source != "bf2savefile1.sav" || all[4].Source != "bf2savefile5.sav" {
		t.Errorf("Read(all) = %+v, want 5 entries oldest first", all)
	}

	last, err := Read(path, 2)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	var sources []string
	for _, e := range last {
		sources = append(sources, e.Source)
	}
	if diff := cmp.Diff([]string{"bf2savefile4.sav", "bf2savefile5.sav"}, sources); diff != "" {
		t.Errorf("Read(2) mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_Missing(t *testing.T) {
	entries, err := Read(filepath.Join(t.TempDir(), "none.ndjson"), 10)
	if err != nil {
		t.Fatalf("Read of missing file failed: %v", err)
	}
	if len(entries) != 0 {
		t.Errorf("Read of missing file = %+v, want empty", entries)
	}
}

func TestRead_SkipsMalformedLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	content := `{"source":"a","outcome":"success"}
not json

{"source":"b","outcome":"failure","reason":"copy to active save failed"}
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write history: %v", err)
	}

	entries, err := Read(path, 0)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if len(entries) != 2 || entries[1].Reason != "copy to active save failed" {
		t.Errorf("Read = %+v, want the two valid entries", entries)
	}
}

func TestFileRecorder_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	err := NewFileRecorder(filepath.Join(blocker, FileName)).Record(Entry{})
	if err == nil {
		t.Fatal("Record should fail when the parent is a file")
	}
}

func TestDiscard(t *testing.T) {
	if err := Discard.Record(Entry{Source: "x"}); err != nil {
		t.Errorf("Discard.Record = %v, want nil", err)
	}
}

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

package promote

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
	"github.com/sirseerhq/bf2save/internal/history"
	"github.com/sirseerhq/bf2save/internal/state"
	"github.com/sirseerhq/bf2save/test/testutil"
)

type failingStore struct {
	saved []state.State
}

func (s *failingStore) Save(st state.State) error {
	s.saved = append(s.saved, st)
	return fmt.Errorf("%w: disk full", bferrors.ErrConfigUnwritable)
}

type memoryRecorder struct {
	entries []history.Entry
	err     error
}

func (r *memoryRecorder) Record(e history.Entry) error {
	r.entries = append(r.entries, e)
	return r.err
}

func TestWorkflow_SuccessPersistsState(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{
		"bf2savefile3.sav": "X",
		ActiveName:         "Y",
	})
	store := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	recorder := &memoryRecorder{}

	res, err := NewWorkflow(store, recorder, "").Run(dir, "bf2savefile3.sav", true)
	if err != nil {
		t.Fatalf("Run returned save error: %v", err)
	}
	if !res.OK() {
		t.Fatalf("Run failed: %v", res.Reason)
	}

	testutil.AssertFileContent(t, filepath.Join(dir, ActiveName), "X")
	want := state.State{Directory: dir, FileName: "bf2savefile3.sav", Pin: true}
	if diff := cmp.Diff(want, store.Load()); diff != "" {
		t.Errorf("persisted state mismatch (-want +got):\n%s", diff)
	}

	if len(recorder.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(recorder.entries))
	}
	entry := recorder.entries[0]
	if entry.Outcome != "success" || !entry.StateSaved || entry.Bytes != 1 || entry.Reason != "" {
		t.Errorf("history entry = %+v", entry)
	}
}

func TestWorkflow_FailureStillPersistsState(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{ActiveName: "Y"})
	store := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	recorder := &memoryRecorder{}

	res, err := NewWorkflow(store, recorder, "").Run(dir, "bf2savefile9.sav", false)
	if err != nil {
		t.Fatalf("Run returned save error: %v", err)
	}
	if res.OK() || !errors.Is(res.Reason, bferrors.ErrSourceMissing) {
		t.Fatalf("Result = %+v, want SourceMissing failure", res)
	}

	testutil.AssertFileContent(t, filepath.Join(dir, ActiveName), "Y")
	want := state.State{Directory: dir, FileName: "bf2savefile9.sav"}
	if diff := cmp.Diff(want, store.Load()); diff != "" {
		t.Errorf("persisted state mismatch (-want +got):\n%s", diff)
	}
	if got := recorder.entries[0]; got.Outcome != "failure" || got.Reason == "" {
		t.Errorf("history entry = %+v, want failure with reason", got)
	}
}

func TestWorkflow_NoSelectionPersistsDirectory(t *testing.T) {
	dir := t.TempDir()
	store := state.NewStore(filepath.Join(t.TempDir(), state.FileName))

	res, err := NewWorkflow(store, nil, "").Run(dir, "", true)
	if err != nil {
		t.Fatalf("Run returned save error: %v", err)
	}
	if !errors.Is(res.Reason, bferrors.ErrNoSelection) {
		t.Errorf("Reason = %v, want ErrNoSelection", res.Reason)
	}
	if got := store.Load(); got.Directory != dir || !got.Pin || got.FileName != "" {
		t.Errorf("persisted state = %+v", got)
	}
}

func TestWorkflow_SaveErrorIsIndependent(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{"bf2savefile1.sav": "X"})
	store := &failingStore{}
	recorder := &memoryRecorder{}

	res, err := NewWorkflow(store, recorder, "").Run(dir, "bf2savefile1.sav", false)
	if !res.OK() {
		t.Fatalf("promote should succeed despite the state failure: %v", res.Reason)
	}
	if !errors.Is(err, bferrors.ErrConfigUnwritable) {
		t.Errorf("Run error = %v, want ErrConfigUnwritable", err)
	}
	if len(store.saved) != 1 {
		t.Errorf("Save called %d times, want 1", len(store.saved))
	}
	if recorder.entries[0].StateSaved {
		t.Error("history entry claims the state was saved")
	}
	testutil.AssertFileContent(t, filepath.Join(dir, ActiveName), "X")
}

func TestWorkflow_HistoryErrorIgnored(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{"bf2savefile1.sav": "X"})
	store := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	recorder := &memoryRecorder{err: errors.New("history disk gone")}

	res, err := NewWorkflow(store, recorder, "").Run(dir, "bf2savefile1.sav", false)
	if err != nil || !res.OK() {
		t.Errorf("Run = %+v, %v; want success with no error", res, err)
	}
}

func TestWorkflow_FileRecorder(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{"bf2savefile1.sav": "X"})
	stateDir := t.TempDir()
	store := state.NewStore(filepath.Join(stateDir, state.FileName))
	historyPath := history.DefaultPath(store.Path())

	wf := NewWorkflow(store, history.NewFileRecorder(historyPath), "")
	if _, err := wf.Run(dir, "bf2savefile1.sav", false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if _, err := wf.Run(dir, "missing.sav", false); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	entries, err := history.Read(historyPath, 0)
	if err != nil {
		t.Fatalf("history.Read failed: %v", err)
	}
	var outcomes []string
	for _, e := range entries {
		outcomes = append(outcomes, e.Outcome)
	}
	if diff := cmp.Diff([]string{"success", "failure"}, outcomes); diff != "" {
		t.Errorf("history outcomes mismatch (-want +got):\n%s", diff)
	}
}

func TestWorkflow_RejectPersistsWithoutCopy(t *testing.T) {
	dir := testutil.SaveDir(t, map[string]string{
		"notes.txt": "not a save",
		ActiveName:  "Y",
	})
	store := state.NewStore(filepath.Join(t.TempDir(), state.FileName))
	recorder := &memoryRecorder{}

	reason := fmt.Errorf("%w: notes.txt is not a save file", bferrors.ErrSourceMissing)
	res, err := NewWorkflow(store, recorder, "").Reject(dir, "notes.txt", true, reason)
	if err != nil {
		t.Fatalf("Reject returned save error: %v", err)
	}
	if res.OK() || !errors.Is(res.Reason, bferrors.ErrSourceMissing) {
		t.Fatalf("Result = %+v, want SourceMissing failure", res)
	}

	testutil.AssertFileContent(t, filepath.Join(dir, ActiveName), "Y")
	want := state.State{Directory: dir, FileName: "notes.txt", Pin: true}
	if diff := cmp.Diff(want, store.Load()); diff != "" {
		t.Errorf("persisted state mismatch (-want +got):\n%s", diff)
	}
	if len(recorder.entries) != 1 {
		t.Fatalf("recorded %d entries, want 1", len(recorder.entries))
	}
	if got := recorder.entries[0]; got.Outcome != "failure" || got.Source != filepath.Join(dir, "notes.txt") || got.Bytes != 0 {
		t.Errorf("history entry = %+v", got)
	}
}

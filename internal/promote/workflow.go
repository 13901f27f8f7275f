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
	"log/slog"
	"path/filepath"

	"github.com/sirseerhq/bf2save/internal/history"
	"github.com/sirseerhq/bf2save/internal/state"
)

// StateSaver persists the session state.
type StateSaver interface {
	Save(st state.State) error
}

// Workflow runs a promote together with its state and history bookkeeping.
type Workflow struct {
	store      StateSaver
	recorder   history.Recorder
	activeName string
	logger     *slog.Logger
}

// NewWorkflow builds a Workflow. A nil recorder disables history and an
// empty activeName means ActiveName.
func NewWorkflow(store StateSaver, recorder history.Recorder, activeName string) *Workflow {
	if recorder == nil {
		recorder = history.Discard
	}
	if activeName == "" {
		activeName = ActiveName
	}
	return &Workflow{
		store:      store,
		recorder:   recorder,
		activeName: activeName,
		logger:     slog.Default().With("component", "promote"),
	}
}

// Run promotes dir/name, then saves {dir, name, pin} regardless of the
// outcome. The returned error is the state save failure, if any, and is
// independent of the Result.
func (w *Workflow) Run(dir, name string, pin bool) (Result, error) {
	tracker := history.NewTracker()
	return w.finish(tracker, dir, name, pin, PromoteTo(dir, name, w.activeName))
}

// Reject records a promote of dir/name that the caller refused before any
// copy, for a name that is not among the candidates. The state is saved
// and the attempt recorded exactly as for a failed Run; reason should wrap
// one of the promote failure kinds.
func (w *Workflow) Reject(dir, name string, pin bool, reason error) (Result, error) {
	tracker := history.NewTracker()
	res := Result{
		Outcome:     Failure,
		Reason:      reason,
		Destination: filepath.Join(dir, w.activeName),
	}
	if name != "" {
		res.Source = filepath.Join(dir, name)
	}
	return w.finish(tracker, dir, name, pin, res)
}

func (w *Workflow) finish(tracker *history.Tracker, dir, name string, pin bool, res Result) (Result, error) {
	if res.OK() {
		w.logger.Info("save promoted", "source", res.Source, "destination", res.Destination, "bytes", res.Bytes)
	} else {
		w.logger.Warn("promote failed", "directory", dir, "file", name, "error", res.Reason)
	}

	saveErr := w.store.Save(state.State{Directory: dir, FileName: name, Pin: pin})
	if saveErr != nil {
		w.logger.Error("state not saved", "error", saveErr)
	}

	entry := tracker.Finish(history.Attempt{
		Directory:   dir,
		Source:      res.Source,
		Destination: res.Destination,
		Bytes:       res.Bytes,
		Outcome:     res.Outcome.String(),
		Reason:      res.Reason,
		StateSaved:  saveErr == nil,
	})
	if err := w.recorder.Record(entry); err != nil {
		w.logger.Warn("history not recorded", "error", err)
	}

	return res, saveErr
}

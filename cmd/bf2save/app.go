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

package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"golang.org/x/term"

	"github.com/sirseerhq/bf2save/internal/config"
	"github.com/sirseerhq/bf2save/internal/history"
	"github.com/sirseerhq/bf2save/internal/promote"
	"github.com/sirseerhq/bf2save/internal/scan"
	"github.com/sirseerhq/bf2save/internal/state"
)

// App holds application state shared across commands.
type App struct {
	Config      *config.Config
	Store       *state.Store
	Recorder    history.Recorder
	HistoryPath string
	DirFlag     string // --dir, empty when not given
	In          io.Reader
	Out         io.Writer
	Err         io.Writer
}

func (a *App) configure(cfg *config.Config, dir string) {
	a.Config = cfg
	a.Store = state.NewStore(cfg.State.Path)
	a.DirFlag = dir

	a.HistoryPath = cfg.History.Path
	if a.HistoryPath == "" {
		a.HistoryPath = history.DefaultPath(a.Store.Path())
	}
	if cfg.History.Enabled {
		a.Recorder = history.NewFileRecorder(a.HistoryPath)
	} else {
		a.Recorder = history.Discard
	}
}

// resolveDir picks the save directory: the --dir flag, then the persisted
// directory, then the working directory.
func (a *App) resolveDir(st state.State) string {
	if a.DirFlag != "" {
		// Persisted directories must not depend on the working directory.
		abs, err := filepath.Abs(a.DirFlag)
		if err != nil {
			return a.DirFlag
		}
		return abs
	}
	if st.Directory != "" {
		return st.Directory
	}
	wd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return wd
}

func (a *App) candidates(dir string) []string {
	return scan.Candidates(dir, a.Config.Candidates.Prefix)
}

// preselect returns the persisted file when it is still among the
// candidates.
func preselect(names []string, st state.State) string {
	if st.FileName != "" && slices.Contains(names, st.FileName) {
		return st.FileName
	}
	return ""
}

// runPromote promotes dir/name, persists state and prints the indicator.
// The returned error carries the promote failure and the state failure,
// whichever happened.
func (a *App) runPromote(dir, name string, pin bool) error {
	res, saveErr := a.workflow().Run(dir, name, pin)
	return a.report(name, res, saveErr)
}

// rejectPromote handles a name that is not a candidate: nothing is
// copied, but the state and history are written as for any failed promote.
func (a *App) rejectPromote(dir, name string, pin bool, reason error) error {
	res, saveErr := a.workflow().Reject(dir, name, pin, reason)
	return a.report(name, res, saveErr)
}

func (a *App) workflow() *promote.Workflow {
	return promote.NewWorkflow(a.Store, a.Recorder, a.Config.Candidates.ActiveName)
}

func (a *App) report(name string, res promote.Result, saveErr error) error {
	if res.OK() {
		fmt.Fprintf(a.Out, "%s %s -> %s\n", a.SuccessColor("Success!"), name, a.Config.Candidates.ActiveName)
	} else {
		fmt.Fprintln(a.Out, a.FailureColor("Failed"))
	}

	switch {
	case !res.OK() && saveErr != nil:
		return errors.Join(res.Reason, saveErr)
	case !res.OK():
		return res.Reason
	default:
		return saveErr
	}
}

func (a *App) colorEnabled() bool {
	switch a.Config.Color {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := a.Out.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// SuccessColor returns s in green when color is enabled.
func (a *App) SuccessColor(s string) string {
	if a.colorEnabled() {
		return "\033[32m" + s + "\033[0m"
	}
	return s
}

// FailureColor returns s in red when color is enabled.
func (a *App) FailureColor(s string) string {
	if a.colorEnabled() {
		return "\033[31m" + s + "\033[0m"
	}
	return s
}

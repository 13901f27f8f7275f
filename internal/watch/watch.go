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

package watch

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"time"

	"github.com/fsnotify/fsnotify"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
	"github.com/sirseerhq/bf2save/internal/scan"
)

// DefaultDebounce is used when a Watcher is created with a non-positive
// debounce.
const DefaultDebounce = 250 * time.Millisecond

// Watcher follows one directory.
type Watcher struct {
	dir      string
	prefix   string
	debounce time.Duration
	logger   *slog.Logger
}

// New returns a Watcher for the candidates in dir matching prefix.
func New(dir, prefix string, debounce time.Duration) *Watcher {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Watcher{
		dir:      dir,
		prefix:   prefix,
		debounce: debounce,
		logger:   slog.Default().With("component", "watch"),
	}
}

// Run calls emit with the ranked candidates once at start and again each
// time the list changes, until ctx is cancelled. Events that leave the list
// as it was (a save being rewritten in place) do not call emit.
//
// Run returns nil on cancellation and an error wrapping
// ErrDirectoryUnreadable when the directory cannot be watched.
func (w *Watcher) Run(ctx context.Context, emit func([]string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(w.dir); err != nil {
		return fmt.Errorf("cannot watch %s: %w: %w", w.dir, bferrors.ErrDirectoryUnreadable, err)
	}

	last := scan.Candidates(w.dir, w.prefix)
	emit(last)

	var (
		timer  *time.Timer
		timerC <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Create|fsnotify.Write|fsnotify.Remove|fsnotify.Rename) == 0 {
				continue
			}
			w.logger.Debug("directory event", "path", event.Name, "op", event.Op.String())
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C
		case <-timerC:
			timerC = nil
			current := scan.Candidates(w.dir, w.prefix)
			if slices.Equal(current, last) {
				continue
			}
			last = current
			emit(current)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn("watch error", "directory", w.dir, "error", err)
		}
	}
}

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
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
)

// ActiveName is the file the game reads.
const ActiveName = "bf2savefile.sav"

// Outcome is the binary result of a promote.
type Outcome int

const (
	Failure Outcome = iota
	Success
)

func (o Outcome) String() string {
	if o == Success {
		return "success"
	}
	return "failure"
}

// Result describes one promote. Reason is nil on success and otherwise wraps
// ErrNoSelection, ErrSourceMissing or ErrCopyFailed.
type Result struct {
	Outcome     Outcome
	Reason      error
	Source      string
	Destination string
	Bytes       int64
}

// OK reports whether the promote succeeded.
func (r Result) OK() bool {
	return r.Outcome == Success
}

// Promote copies dir/name over dir/ActiveName.
func Promote(dir, name string) Result {
	return PromoteTo(dir, name, ActiveName)
}

// PromoteTo copies dir/name over dir/activeName. On failure the destination
// is left untouched.
func PromoteTo(dir, name, activeName string) Result {
	res := Result{
		Outcome:     Failure,
		Destination: filepath.Join(dir, activeName),
	}

	if name == "" {
		res.Reason = bferrors.ErrNoSelection
		return res
	}
	if !isBareName(name) {
		res.Reason = fmt.Errorf("%w: %q is not a file name", bferrors.ErrSourceMissing, name)
		return res
	}

	res.Source = filepath.Join(dir, name)
	info, err := os.Stat(res.Source)
	if err != nil {
		res.Reason = fmt.Errorf("%w: %w", bferrors.ErrSourceMissing, err)
		return res
	}
	if !info.Mode().IsRegular() {
		res.Reason = fmt.Errorf("%w: %s is not a regular file", bferrors.ErrCopyFailed, res.Source)
		return res
	}

	n, err := copyReplace(res.Source, dir, activeName, info.Mode().Perm())
	if err != nil {
		res.Reason = fmt.Errorf("%w: %w", bferrors.ErrCopyFailed, err)
		return res
	}

	res.Outcome = Success
	res.Bytes = n
	return res
}

func isBareName(name string) bool {
	return name != "." && name != ".." && filepath.Base(name) == name
}

// copyReplace streams src into a temp file beside the destination and
// renames it over dir/name.
func copyReplace(src, dir, name string, perm os.FileMode) (int64, error) {
	in, err := os.Open(src)
	if err != nil {
		return 0, err
	}
	defer in.Close()

	tmp, err := os.CreateTemp(dir, "."+name+".tmp-*")
	if err != nil {
		return 0, err
	}
	tmpName := tmp.Name()
	renamed := false
	defer func() {
		if !renamed {
			_ = tmp.Close()
			_ = os.Remove(tmpName)
		}
	}()

	n, err := io.Copy(tmp, in)
	if err != nil {
		return 0, err
	}
	if err := tmp.Chmod(perm); err != nil {
		return 0, err
	}
	if err := tmp.Sync(); err != nil {
		return 0, err
	}
	if err := tmp.Close(); err != nil {
		return 0, err
	}

	if err := os.Rename(tmpName, filepath.Join(dir, name)); err != nil {
		return 0, err
	}
	renamed = true

	if err := syncDirBestEffort(dir); err != nil {
		slog.Default().With("component", "promote").Debug("directory sync skipped", "directory", dir, "error", err)
	}
	return n, nil
}

func syncDirBestEffort(dir string) error {
	// Directory handles cannot be synced on windows.
	if runtime.GOOS == "windows" {
		return nil
	}
	f, err := os.Open(dir)
	if err != nil {
		return err
	}
	defer f.Close()
	return f.Sync()
}

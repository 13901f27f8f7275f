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

package state

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
)

// DefaultPath returns the standard location of the state file: config.txt in
// the directory of the running executable, independent of the working
// directory.
func DefaultPath() string {
	exe, err := os.Executable()
	if err != nil {
		// Fallback to current directory if the executable cannot be located
		return FileName
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	return filepath.Join(filepath.Dir(exe), FileName)
}

// Store loads and saves the State at a fixed path.
type Store struct {
	path   string
	logger *slog.Logger
}

// NewStore returns a Store for path. An empty path means DefaultPath().
func NewStore(path string) *Store {
	if path == "" {
		path = DefaultPath()
	}
	return &Store{
		path:   path,
		logger: slog.Default().With("component", "state"),
	}
}

// Path returns the location of the state file.
func (s *Store) Path() string {
	return s.path
}

// Load reads the state file. Any failure to open or read it yields the
// zero State; the cause is only logged.
func (s *Store) Load() State {
	file, err := os.Open(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn("state file ignored", "path", s.path,
				"error", fmt.Errorf("%w: %w", bferrors.ErrConfigUnreadable, err))
		} else {
			s.logger.Debug("no previous state", "path", s.path)
		}
		return State{}
	}
	defer file.Close()

	st, err := decode(file)
	if err != nil {
		s.logger.Warn("state file partially read", "path", s.path,
			"error", fmt.Errorf("%w: %w", bferrors.ErrConfigUnreadable, err))
	}
	return st
}

// Save replaces the state file with st. The returned error wraps
// ErrConfigUnwritable.
func (s *Store) Save(st State) error {
	if err := writeFileAtomic(s.path, encode(st)); err != nil {
		return fmt.Errorf("%w: %w", bferrors.ErrConfigUnwritable, err)
	}
	s.logger.Debug("state saved", "path", s.path, "directory", st.Directory, "file", st.FileName, "pin", st.Pin)
	return nil
}

// encode renders the three state lines. Strings are written as-is, which
// keeps every path Go can hold intact.
func encode(st State) []byte {
	var buf bytes.Buffer
	buf.WriteString(keyDirectory + "=" + st.Directory + "\n")
	buf.WriteString(keyFile + "=" + st.FileName + "\n")
	if st.Pin {
		buf.WriteString(keyPin + "=1\n")
	} else {
		buf.WriteString(keyPin + "=0\n")
	}
	return buf.Bytes()
}

// decode parses key=value lines. A leading byte order mark selects UTF-8 or
// UTF-16 decoding; without one the bytes pass through untouched. Later
// duplicate keys win. What was parsed before a read error is kept.
func decode(r io.Reader) (State, error) {
	var st State

	reader := transform.NewReader(r, unicode.BOMOverride(encoding.Nop.NewDecoder()))
	scanner := bufio.NewScanner(reader)
	for scanner.Scan() {
		key, value, ok := strings.Cut(scanner.Text(), "=")
		if !ok {
			continue
		}
		switch key {
		case keyDirectory:
			st.Directory = value
		case keyFile:
			st.FileName = value
		case keyPin:
			st.Pin = strings.HasPrefix(value, "1")
		}
	}
	return st, scanner.Err()
}

// writeFileAtomic writes data next to path and renames it into place.
func writeFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create state directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to write temporary state file: %w", err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to set state file permissions: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to sync temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to close temp file: %w", err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("failed to rename temp file: %w", err)
	}
	return nil
}

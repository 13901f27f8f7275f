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

package scan

import (
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
	"github.com/sirseerhq/bf2save/internal/natural"
)

// DefaultPrefix is the name prefix shared by every save file.
const DefaultPrefix = "bf2savefile"

// Scan returns the names of the candidate files directly inside dir, in
// filesystem listing order. An empty prefix means DefaultPrefix.
func Scan(dir, prefix string) []string {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	names := []string{}

	info, err := os.Stat(dir)
	if err != nil {
		logUnreadable(dir, err)
		return names
	}
	if !info.IsDir() {
		logUnreadable(dir, fmt.Errorf("not a directory"))
		return names
	}

	// ReadDir returns whatever it managed to read before an error.
	entries, err := os.ReadDir(dir)
	if err != nil {
		logUnreadable(dir, err)
	}

	for _, entry := range entries {
		name := entry.Name()
		if !strings.HasPrefix(name, prefix) {
			continue
		}
		if !isRegularFile(dir, entry) {
			continue
		}
		names = append(names, name)
	}
	return names
}

// Candidates scans dir and returns the candidates in natural order.
func Candidates(dir, prefix string) []string {
	return natural.Rank(Scan(dir, prefix))
}

func isRegularFile(dir string, entry fs.DirEntry) bool {
	mode := entry.Type()
	if mode.IsRegular() {
		return true
	}
	if mode&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(filepath.Join(dir, entry.Name()))
	return err == nil && info.Mode().IsRegular()
}

func logUnreadable(dir string, err error) {
	slog.Default().With("component", "scan").Debug("directory scan degraded to empty",
		"directory", dir,
		"error", fmt.Errorf("%w: %w", bferrors.ErrDirectoryUnreadable, err))
}

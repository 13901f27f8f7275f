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
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding/unicode"

	bferrors "github.com/sirseerhq/bf2save/internal/errors"
	"github.com/sirseerhq/bf2save/test/testutil"
)

func TestDefaultPath(t *testing.T) {
	got := DefaultPath()
	if filepath.Base(got) != FileName {
		t.Errorf("DefaultPath() = %q, want base %q", got, FileName)
	}

	exe, err := os.Executable()
	if err != nil {
		t.Skipf("os.Executable unavailable: %v", err)
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	if want := filepath.Join(filepath.Dir(exe), FileName); got != want {
		t.Errorf("DefaultPath() = %q, want %q", got, want)
	}
}

func TestNewStore_DefaultPath(t *testing.T) {
	if got := NewStore("").Path(); got != DefaultPath() {
		t.Errorf("NewStore(\"\").Path() = %q, want %q", got, DefaultPath())
	}
}

func TestSaveAndLoad(t *testing.T) {
	tests := []struct {
		name  string
		state State
	}{
		{
			name:  "pinned",
			state: State{Directory: "/a/b", FileName: "bf2savefile1.sav", Pin: true},
		},
		{
			name:  "unpinned",
			state: State{Directory: "/games/bf2", FileName: "bf2savefile_10.sav"},
		},
		{
			name:  "non-ascii path",
			state: State{Directory: "/home/jürgen/Сохранения/存档", FileName: "bf2savefile_é.sav", Pin: true},
		},
		{
			name:  "value containing equals sign",
			state: State{Directory: "/saves/a=b", FileName: "bf2savefile=1.sav"},
		},
		{
			name:  "zero state",
			state: State{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore(filepath.Join(t.TempDir(), FileName))

			if err := store.Save(tt.state); err != nil {
				t.Fatalf("Save failed: %v", err)
			}

			got := store.Load()
			if diff := cmp.Diff(tt.state, got); diff != "" {
				t.Errorf("Load after Save mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSave_FileLayout(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	store := NewStore(path)

	if err := store.Save(State{Directory: "/a/b", FileName: "bf2savefile1.sav", Pin: true}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	testutil.AssertStateFile(t, path, "/a/b", "bf2savefile1.sav", true)

	// Overwrite, never merge
	if err := store.Save(State{Directory: "/c"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	testutil.AssertStateFile(t, path, "/c", "", false)
	testutil.AssertNoTempFiles(t, dir)
}

func TestSave_CreatesParentDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "deeper", FileName)
	store := NewStore(path)

	if err := store.Save(State{Directory: "/x"}); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	testutil.AssertFileExists(t, path)
}

func TestSave_Unwritable(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("file"), 0o644); err != nil {
		t.Fatalf("Failed to write blocker: %v", err)
	}

	// The parent of the state file is a regular file.
	store := NewStore(filepath.Join(blocker, FileName))
	err := store.Save(State{Directory: "/a"})
	if err == nil {
		t.Fatal("Save should fail when the parent is a file")
	}
	if !errors.Is(err, bferrors.ErrConfigUnwritable) {
		t.Errorf("Save error = %v, want ErrConfigUnwritable", err)
	}
}

func TestSave_ReadOnlyDirectory(t *testing.T) {
	if runtime.GOOS == "windows" || os.Geteuid() == 0 {
		t.Skip("permission bits are not enforced here")
	}

	dir := t.TempDir()
	if err := os.Chmod(dir, 0o555); err != nil {
		t.Fatalf("Failed to chmod: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(dir, 0o755) })

	err := NewStore(filepath.Join(dir, FileName)).Save(State{Directory: "/a"})
	if !errors.Is(err, bferrors.ErrConfigUnwritable) {
		t.Errorf("Save error = %v, want ErrConfigUnwritable", err)
	}
}

func TestLoad_Missing(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "nonexistent", FileName))

	for i := 0; i < 3; i++ {
		if got := store.Load(); got != (State{}) {
			t.Errorf("Load #%d of missing file = %+v, want zero State", i+1, got)
		}
	}
}

func TestLoad_DirectoryInsteadOfFile(t *testing.T) {
	store := NewStore(t.TempDir())
	if got := store.Load(); got != (State{}) {
		t.Errorf("Load of a directory = %+v, want zero State", got)
	}
}

func TestLoad_Parsing(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    State
	}{
		{
			name:    "unknown keys ignored",
			content: "version=3\ndirectory=/a\ntheme=dark\nfile=bf2savefile2.sav\npin=1\n",
			want:    State{Directory: "/a", FileName: "bf2savefile2.sav", Pin: true},
		},
		{
			name:    "missing keys default",
			content: "file=bf2savefile2.sav\n",
			want:    State{FileName: "bf2savefile2.sav"},
		},
		{
			name:    "empty file",
			content: "",
			want:    State{},
		},
		{
			name:    "crlf line endings",
			content: "directory=C:\\Games\\BF2\r\nfile=bf2savefile1.sav\r\npin=1\r\n",
			want:    State{Directory: "C:\\Games\\BF2", FileName: "bf2savefile1.sav", Pin: true},
		},
		{
			name:    "no trailing newline",
			content: "directory=/a\nfile=b\npin=1",
			want:    State{Directory: "/a", FileName: "b", Pin: true},
		},
		{
			name:    "later duplicates win",
			content: "directory=/first\ndirectory=/second\n",
			want:    State{Directory: "/second"},
		},
		{
			name:    "pin zero",
			content: "pin=0\n",
			want:    State{},
		},
		{
			name:    "pin only checks first character",
			content: "pin=10\n",
			want:    State{Pin: true},
		},
		{
			name:    "pin words are false",
			content: "pin=true\n",
			want:    State{},
		},
		{
			name:    "pin empty",
			content: "pin=\n",
			want:    State{},
		},
		{
			name:    "lines without separator",
			content: "garbage\ndirectory=/a\n\n",
			want:    State{Directory: "/a"},
		},
		{
			name:    "utf-8 byte order mark",
			content: "\xef\xbb\xbfdirectory=/ü\nfile=x\n",
			want:    State{Directory: "/ü", FileName: "x"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), FileName)
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("Failed to write state file: %v", err)
			}

			got := NewStore(path).Load()
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoad_UTF16WithBOM(t *testing.T) {
	content := "directory=D:\\Spiele\\Schlachtfeld\r\nfile=bf2savefile_ß.sav\r\npin=1\r\n"
	encoded, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(content)
	if err != nil {
		t.Fatalf("Failed to encode UTF-16: %v", err)
	}
	if !strings.HasPrefix(encoded, "\xff\xfe") {
		t.Fatalf("Encoded content lacks a UTF-16LE BOM")
	}

	path := filepath.Join(t.TempDir(), FileName)
	if err := os.WriteFile(path, []byte(encoded), 0o644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	want := State{Directory: "D:\\Spiele\\Schlachtfeld", FileName: "bf2savefile_ß.sav", Pin: true}
	if diff := cmp.Diff(want, NewStore(path).Load()); diff != "" {
		t.Errorf("Load mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_InvalidUTF8PassesThrough(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	raw := "directory=/saves/\xff\xfe-raw\n"
	if err := os.WriteFile(path, []byte(raw), 0o644); err != nil {
		t.Fatalf("Failed to write state file: %v", err)
	}

	if got := NewStore(path).Load().Directory; got != "/saves/\xff\xfe-raw" {
		t.Errorf("Directory = %q, want raw bytes preserved", got)
	}
}

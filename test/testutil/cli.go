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

package testutil

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"testing"
)

// buildOnce compiles cmd/bf2save into a process-wide temp directory; the
// binary is shared by every test in the run.
var buildOnce = sync.OnceValues(func() (string, error) {
	_, self, _, ok := runtime.Caller(0)
	if !ok {
		return "", errors.New("cannot locate testutil source")
	}
	root := filepath.Join(filepath.Dir(self), "..", "..")

	out, err := os.MkdirTemp("", "bf2save-bin")
	if err != nil {
		return "", err
	}
	binary := filepath.Join(out, "bf2save")
	if runtime.GOOS == "windows" {
		binary += ".exe"
	}

	build := exec.Command("go", "build", "-o", binary, "./cmd/bf2save")
	build.Dir = root
	if log, err := build.CombinedOutput(); err != nil {
		return "", errors.New(err.Error() + ": " + string(log))
	}
	return binary, nil
})

// CLIResult is the outcome of one bf2save invocation.
type CLIResult struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// RunCLI runs the bf2save binary with args, the current environment plus
// env, and stdin as its input.
func RunCLI(t *testing.T, args []string, env map[string]string, stdin string) CLIResult {
	t.Helper()

	binary, err := buildOnce()
	if err != nil {
		t.Fatalf("Failed to build bf2save: %v", err)
	}

	cmd := exec.Command(binary, args...)
	cmd.Env = os.Environ()
	for k, v := range env {
		cmd.Env = append(cmd.Env, k+"="+v)
	}
	cmd.Stdin = strings.NewReader(stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	res := CLIResult{}
	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			t.Fatalf("Failed to run bf2save %v: %v", args, err)
		}
		res.ExitCode = exitErr.ExitCode()
	}
	res.Stdout = stdout.String()
	res.Stderr = stderr.String()
	return res
}

// RequireSuccess fails the test unless the command exited 0.
func (r CLIResult) RequireSuccess(t *testing.T) {
	t.Helper()
	if r.ExitCode != 0 {
		t.Fatalf("bf2save exited %d\nStderr: %s", r.ExitCode, r.Stderr)
	}
}

// RequireExit reports a mismatching exit code.
func (r CLIResult) RequireExit(t *testing.T, code int) {
	t.Helper()
	if r.ExitCode != code {
		t.Errorf("bf2save exited %d, want %d\nStderr: %s", r.ExitCode, code, r.Stderr)
	}
}

// RequireStderr reports a stderr that lacks substr.
func (r CLIResult) RequireStderr(t *testing.T, substr string) {
	t.Helper()
	if !strings.Contains(r.Stderr, substr) {
		t.Errorf("stderr %q does not contain %q", r.Stderr, substr)
	}
}

// StateEnv keeps the binary's state, history and config discovery inside
// dir and turns colors off.
func StateEnv(dir string) map[string]string {
	return map[string]string{
		"HOME":                 dir,
		"USERPROFILE":          dir,
		"BF2SAVE_STATE_FILE":   filepath.Join(dir, "config.txt"),
		"BF2SAVE_HISTORY_FILE": filepath.Join(dir, "history.ndjson"),
		"NO_COLOR":             "1",
	}
}

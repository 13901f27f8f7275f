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
	"bufio"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
)

// ReadNDJSON decodes every non-empty line of r into a generic record
func ReadNDJSON(t *testing.T, r io.Reader) []map[string]interface{} {
	t.Helper()

	var records []map[string]interface{}
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" {
			continue
		}

		var record map[string]interface{}
		if err := json.Unmarshal([]byte(text), &record); err != nil {
			t.Fatalf("Line %d: invalid JSON: %v", line, err)
		}
		records = append(records, record)
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("Error reading NDJSON: %v", err)
	}
	return records
}

// ReadNDJSONFile opens path and decodes it with ReadNDJSON
func ReadNDJSONFile(t *testing.T, path string) []map[string]interface{} {
	t.Helper()

	file, err := os.Open(path)
	if err != nil {
		t.Fatalf("Failed to open NDJSON file: %v", err)
	}
	defer file.Close()

	return ReadNDJSON(t, file)
}

// AssertRecordFields checks that every record carries the required fields
func AssertRecordFields(t *testing.T, records []map[string]interface{}, fields ...string) {
	t.Helper()

	for i, record := range records {
		for _, field := range fields {
			if _, ok := record[field]; !ok {
				t.Errorf("Record %d: missing required field '%s'", i+1, field)
			}
		}
	}
}

// AssertStateFile checks the exact three-line layout of a persisted state file
func AssertStateFile(t *testing.T, path, directory, file string, pin bool) {
	t.Helper()

	pinValue := "0"
	if pin {
		pinValue = "1"
	}
	want := "directory=" + directory + "\nfile=" + file + "\npin=" + pinValue + "\n"
	AssertFileContent(t, path, want)
}

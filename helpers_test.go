// Copyright 2026 SirSeer, LLC
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

package records

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

// writeTestFile creates a file with the given content under dir and
// returns its path.
func writeTestFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write test file: %v", err)
	}
	return path
}

// readTestFile returns the content of path.
func readTestFile(t *testing.T, path string) string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read %s: %v", path, err)
	}
	return string(data)
}

// canonical renders v through encoding/json so values can be compared
// structurally: map keys come out sorted and numeric types collapse to
// their JSON text.
func canonical(t *testing.T, v interface{}) string {
	t.Helper()

	out, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("failed to marshal %v: %v", v, err)
	}
	return string(out)
}

// assertRecordsEqual compares two collections structurally, order
// included.
func assertRecordsEqual(t *testing.T, got, want []Record) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("record count mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		g, w := canonical(t, got[i]), canonical(t, want[i])
		if g != w {
			t.Errorf("record %d mismatch:\ngot:  %s\nwant: %s", i, g, w)
		}
	}
}

// assertNoTempFiles checks that no leftover .tmp files survive in dir.
func assertNoTempFiles(t *testing.T, dir string) {
	t.Helper()

	matches, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	if err != nil {
		t.Fatalf("glob failed: %v", err)
	}
	if len(matches) != 0 {
		t.Errorf("temp files left behind: %v", matches)
	}
}

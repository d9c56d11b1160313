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
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    []Record
	}{
		{
			name:    "json array of objects",
			content: `[{"name":"Alice","age":30},{"name":"Bob","age":25}]`,
			want: []Record{
				{"name": "Alice", "age": 30},
				{"name": "Bob", "age": 25},
			},
		},
		{
			name:    "single json object",
			content: `{"name":"Alice","age":30}`,
			want:    []Record{{"name": "Alice", "age": 30}},
		},
		{
			name:    "indented json array",
			content: "[\n  {\n    \"name\": \"Alice\"\n  },\n  {\n    \"name\": \"Bob\"\n  }\n]",
			want:    []Record{{"name": "Alice"}, {"name": "Bob"}},
		},
		{
			name:    "empty file",
			content: "",
			want:    []Record{},
		},
		{
			name:    "whitespace only file",
			content: "  \n\t\n  ",
			want:    []Record{},
		},
		{
			name:    "empty json array",
			content: `[]`,
			want:    []Record{},
		},
		{
			name:    "jsonl lines",
			content: "{\"name\":\"Alice\"}\n{\"name\":\"Bob\"}\n{\"name\":\"Carol\"}\n",
			want:    []Record{{"name": "Alice"}, {"name": "Bob"}, {"name": "Carol"}},
		},
		{
			name:    "jsonl without trailing newline",
			content: "{\"name\":\"Alice\"}\n{\"name\":\"Bob\"}",
			want:    []Record{{"name": "Alice"}, {"name": "Bob"}},
		},
		{
			name:    "jsonl with blank lines",
			content: "{\"a\":1}\n\n\n{\"b\":2}\n",
			want:    []Record{{"a": 1}, {"b": 2}},
		},
		{
			name:    "jsonl with crlf line endings",
			content: "{\"a\":1}\r\n{\"b\":2}\r\n",
			want:    []Record{{"a": 1}, {"b": 2}},
		},
		{
			name:    "jsonl skips malformed line",
			content: "{\"a\":1}\nnot json at all\n{\"b\":2}\n",
			want:    []Record{{"a": 1}, {"b": 2}},
		},
		{
			name:    "jsonl skips scalar line",
			content: "{\"a\":1}\n5\n{\"b\":2}\n",
			want:    []Record{{"a": 1}, {"b": 2}},
		},
		{
			name:    "jsonl skips null line",
			content: "{\"a\":1}\nnull\n{\"b\":2}\n",
			want:    []Record{{"a": 1}, {"b": 2}},
		},
		{
			name:    "nested values survive",
			content: `[{"name":"Alice","tags":["x","y"],"address":{"city":"Oslo"}}]`,
			want: []Record{
				{"name": "Alice", "tags": []interface{}{"x", "y"}, "address": map[string]interface{}{"city": "Oslo"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, t.TempDir(), "input.json", tt.content)

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load failed: %v", err)
			}
			if got == nil {
				t.Fatal("Load returned a nil collection")
			}
			assertRecordsEqual(t, got, tt.want)
		})
	}
}

func TestLoad_FormatErrors(t *testing.T) {
	tests := []struct {
		name         string
		content      string
		wantContains string
	}{
		{
			name:         "array of scalars",
			content:      `[1,2,3]`,
			wantContains: "element 0",
		},
		{
			name:         "array with one bad element",
			content:      `[{"a":1},5,{"b":2}]`,
			wantContains: "element 1",
		},
		{
			name:         "bare string",
			content:      `"hello"`,
			wantContains: "not an object",
		},
		{
			name:         "bare number",
			content:      `42`,
			wantContains: "not an object",
		},
		{
			name:         "null document",
			content:      `null`,
			wantContains: "not an object",
		},
		{
			name:         "no parseable content",
			content:      "definitely not json\nstill not json\n",
			wantContains: "no parseable records",
		},
		{
			name:         "lines of scalars only",
			content:      "1\n2\n3\n",
			wantContains: "no parseable records",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeTestFile(t, t.TempDir(), "input.json", tt.content)

			_, err := Load(path)
			if err == nil {
				t.Fatal("Load should fail")
			}
			if !errors.Is(err, ErrFormat) {
				t.Errorf("error should match ErrFormat, got %v", err)
			}
			if !strings.Contains(err.Error(), tt.wantContains) {
				t.Errorf("error %q should contain %q", err.Error(), tt.wantContains)
			}
		})
	}
}

func TestLoad_FileNotExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.json")

	_, err := Load(path)
	if err == nil {
		t.Fatal("Load should fail for a missing file")
	}
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("error should match ErrNotFound, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("error %q should name the path", err.Error())
	}
}

func TestLoad_PreservesOrder(t *testing.T) {
	var content strings.Builder
	for i := 0; i < 50; i++ {
		fmt.Fprintf(&content, "{\"id\":%d}\n", i)
	}
	path := writeTestFile(t, t.TempDir(), "ordered.jsonl", content.String())

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(got) != 50 {
		t.Fatalf("record count mismatch: got %d, want 50", len(got))
	}
	for i, record := range got {
		id, ok := record["id"].(float64)
		if !ok || int(id) != i {
			t.Fatalf("record %d out of order: got id %v", i, record["id"])
		}
	}
}

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
	"fmt"
	"path/filepath"
	"strings"
)

// Format selects the on-disk representation of a record collection.
type Format string

const (
	// FormatAuto selects the format from the path extension at call time.
	FormatAuto Format = "auto"

	// FormatJSON stores the collection as a single JSON document.
	FormatJSON Format = "json"

	// FormatJSONL stores one compact JSON object per line.
	FormatJSONL Format = "jsonl"
)

// DetectFormat inspects the extension of path and reports the format a
// FormatAuto operation would use: FormatJSONL for ".jsonl" and ".ndjson"
// (case-insensitive), FormatJSON for everything else. It performs no I/O.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jsonl", ".ndjson":
		return FormatJSONL
	default:
		return FormatJSON
	}
}

// resolveFormat maps a requested format to a concrete one, consulting
// the path extension when the request is FormatAuto or the zero value.
func resolveFormat(path string, format Format) (Format, error) {
	switch format {
	case FormatAuto, "":
		return DetectFormat(path), nil
	case FormatJSON, FormatJSONL:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q (supported: auto, json, jsonl): %w", string(format), ErrFormat)
	}
}

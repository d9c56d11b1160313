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
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"

	"github.com/sirseerhq/sirseer-records/internal/atomicfile"
)

// SaveOptions controls how Save writes a collection.
type SaveOptions struct {
	// Format selects the on-disk representation. FormatAuto and the
	// zero value detect it from the path extension.
	Format Format

	// Indent is the number of spaces per indentation level for JSON
	// documents; values <= 0 write compact JSON. JSONL lines are
	// always compact.
	Indent int

	// Append adds data to the existing file as a single record
	// instead of replacing the file.
	Append bool
}

// DefaultSaveOptions returns the options Save applies when called with
// nil: auto-detected format, two-space indentation, replace mode.
func DefaultSaveOptions() *SaveOptions {
	return &SaveOptions{
		Format: FormatAuto,
		Indent: 2,
	}
}

// Save writes data to path, creating parent directories as needed.
// The format comes from opts.Format, falling back to the path
// extension (see DetectFormat). Passing nil opts means
// DefaultSaveOptions.
//
// In JSON mode data may be any JSON-serializable value, written as a
// single document with opts.Indent indentation. In JSONL mode data
// must be a slice or array whose elements each serialize to a JSON
// object, written one compact line per element. Whole-file writes are
// atomic, so a failed Save never truncates an existing file.
//
// With opts.Append set, data must be a single record; see Append for
// the per-format append semantics.
func Save(path string, data interface{}, opts *SaveOptions) error {
	if opts == nil {
		opts = DefaultSaveOptions()
	}

	format, err := resolveFormat(path, opts.Format)
	if err != nil {
		return err
	}

	if opts.Append {
		if format == FormatJSONL {
			return appendJSONL(path, data)
		}
		return appendJSON(path, data, opts.Indent)
	}
	if format == FormatJSONL {
		return saveJSONL(path, data)
	}
	return saveJSON(path, data, opts.Indent)
}

func saveJSON(path string, data interface{}, indent int) error {
	out, err := marshalDocument(data, indent)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func saveJSONL(path string, data interface{}) error {
	elems, err := collectionElements(data)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	for i, elem := range elems {
		line, err := encodeRecordLine(elem)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		buf.Write(line)
	}

	if err := atomicfile.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// appendJSON adds record to the JSON array document at path and
// rewrites the whole document. A missing file starts a new one-element
// array; an existing file that does not parse as a JSON array fails
// with ErrFormat.
func appendJSON(path string, record interface{}, indent int) error {
	if err := validateRecord(record); err != nil {
		return err
	}

	var elems []interface{}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		var doc interface{}
		if unmarshalErr := json.Unmarshal(data, &doc); unmarshalErr != nil {
			return fmt.Errorf("append target %s does not parse as JSON: %w", path, ErrFormat)
		}
		arr, ok := doc.([]interface{})
		if !ok {
			return fmt.Errorf("append target %s is not a JSON array: %w", path, ErrFormat)
		}
		elems = arr
	case os.IsNotExist(err):
		// Missing target starts a new one-element array.
	default:
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	out, err := marshalDocument(append(elems, record), indent)
	if err != nil {
		return err
	}
	if err := atomicfile.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// appendJSONL adds record to the JSONL file at path as one line,
// creating the file and its parent directories if absent.
func appendJSONL(path string, record interface{}) error {
	line, err := encodeRecordLine(record)
	if err != nil {
		return err
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	// Single write so concurrent appenders cannot interleave partial lines.
	if _, err := file.Write(line); err != nil {
		_ = file.Close()
		return fmt.Errorf("failed to append to %s: %w", path, err)
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// marshalDocument serializes data as one JSON document, indented when
// indent is positive.
func marshalDocument(data interface{}, indent int) ([]byte, error) {
	var out []byte
	var err error
	if indent > 0 {
		out, err = json.MarshalIndent(data, "", strings.Repeat(" ", indent))
	} else {
		out, err = json.Marshal(data)
	}
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNotSerializable)
	}
	return out, nil
}

// encodeRecordLine renders a single record as one compact,
// LF-terminated JSONL line. The serialized form must be a JSON object;
// checking the encoded bytes lets struct values and custom marshalers
// qualify alongside maps.
func encodeRecordLine(record interface{}) ([]byte, error) {
	out, err := json.Marshal(record)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNotSerializable)
	}
	if len(out) == 0 || out[0] != '{' {
		return nil, fmt.Errorf("value of type %T does not encode to a JSON object: %w", record, ErrInvalidData)
	}
	return append(out, '\n'), nil
}

// validateRecord checks that record serializes to a single JSON object.
func validateRecord(record interface{}) error {
	_, err := encodeRecordLine(record)
	return err
}

// collectionElements flattens data into its elements. Only slices and
// arrays qualify as JSONL collections.
func collectionElements(data interface{}) ([]interface{}, error) {
	switch v := data.(type) {
	case []Record:
		elems := make([]interface{}, len(v))
		for i := range v {
			elems[i] = v[i]
		}
		return elems, nil
	case []map[string]interface{}:
		elems := make([]interface{}, len(v))
		for i := range v {
			elems[i] = v[i]
		}
		return elems, nil
	case []interface{}:
		return v, nil
	}

	rv := reflect.ValueOf(data)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, fmt.Errorf("JSONL data must be a slice of records, got %T: %w", data, ErrInvalidData)
	}
	elems := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		elems[i] = rv.Index(i).Interface()
	}
	return elems, nil
}

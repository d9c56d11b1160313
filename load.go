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
	"errors"
	"fmt"
	"io"
	"os"
)

// Load reads the record collection stored at path and returns it in
// file order. The format is detected from the content, not the
// extension: a JSON array of objects or a single JSON object loads as
// a JSON document, anything else is parsed line by line as JSONL.
//
// Empty and whitespace-only files load as an empty collection. In the
// JSONL pass, lines that fail to decode are skipped; the load fails
// with ErrFormat only when no line decodes at all. A missing file
// fails with ErrNotFound.
func Load(path string) ([]Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no record file at %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if len(bytes.TrimSpace(data)) == 0 {
		return []Record{}, nil
	}

	var doc interface{}
	if err := json.Unmarshal(data, &doc); err == nil {
		collection, docErr := documentRecords(doc)
		if docErr != nil {
			return nil, fmt.Errorf("invalid record document in %s: %w", path, docErr)
		}
		return collection, nil
	}

	collection, err := readLenient(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if len(collection) == 0 {
		return nil, fmt.Errorf("no parseable records in %s: %w", path, ErrFormat)
	}
	return collection, nil
}

// documentRecords converts a decoded JSON document into a collection.
// Arrays must hold only objects; a bare object becomes a one-element
// collection; scalars and null are rejected.
func documentRecords(doc interface{}) ([]Record, error) {
	switch v := doc.(type) {
	case []interface{}:
		collection := make([]Record, 0, len(v))
		for i, elem := range v {
			obj, ok := elem.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("array element %d is not a JSON object: %w", i, ErrFormat)
			}
			collection = append(collection, Record(obj))
		}
		return collection, nil
	case map[string]interface{}:
		return []Record{Record(v)}, nil
	default:
		return nil, fmt.Errorf("JSON document is not an object or an array of objects: %w", ErrFormat)
	}
}

// readLenient drains a JSONL stream, dropping undecodable lines.
func readLenient(r io.Reader) ([]Record, error) {
	reader := NewReader(r)
	var collection []Record
	for {
		record, err := reader.Next()
		if err == io.EOF {
			return collection, nil
		}
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			continue
		}
		if err != nil {
			return nil, err
		}
		collection = append(collection, record)
	}
}

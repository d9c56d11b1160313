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
	"bufio"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
)

// Reader consumes a JSONL stream one record at a time. Blank lines are
// skipped. A line that does not decode to a Record yields a *LineError
// and the Reader stays positioned on the following line, so callers
// choose between lenient (keep calling Next) and strict (ReadAll)
// handling.
type Reader struct {
	input     *bufio.Reader
	line      int
	closeFunc func() error
}

// NewReader creates a Reader that consumes records from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{input: bufio.NewReader(r)}
}

// NewFileReader creates a Reader backed by the file at path. A missing
// file fails with ErrNotFound. The caller must call Close when done.
func NewFileReader(path string) (*Reader, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("no record file at %s: %w", path, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}

	return &Reader{
		input:     bufio.NewReader(file),
		closeFunc: file.Close,
	}, nil
}

// Next returns the next record in the stream, or io.EOF once the
// stream is exhausted. A line that does not decode to a JSON object
// returns a *LineError carrying the 1-based line number; subsequent
// calls continue with the following line.
func (r *Reader) Next() (Record, error) {
	for {
		line, err := r.readLine()
		if err != nil {
			return nil, err
		}

		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return nil, &LineError{Line: r.line, Err: err}
		}
		if record == nil {
			return nil, &LineError{Line: r.line, Err: errors.New("JSON value is not an object")}
		}
		return record, nil
	}
}

// ReadAll drains the stream, failing on the first undecodable line.
// An empty stream returns an empty, non-nil collection.
func (r *Reader) ReadAll() ([]Record, error) {
	collection := []Record{}
	for {
		record, err := r.Next()
		if err == io.EOF {
			return collection, nil
		}
		if err != nil {
			return nil, err
		}
		collection = append(collection, record)
	}
}

// Close closes the underlying file if the Reader owns one.
func (r *Reader) Close() error {
	if r.closeFunc != nil {
		return r.closeFunc()
	}
	return nil
}

// readLine reads one physical line of any length, advancing the line
// counter once.
func (r *Reader) readLine() ([]byte, error) {
	var line []byte
	for {
		chunk, isPrefix, err := r.input.ReadLine()
		if err != nil {
			// An unterminated final line still counts once it has bytes.
			if err == io.EOF && len(line) > 0 {
				break
			}
			return nil, err
		}
		line = append(line, chunk...)
		if !isPrefix {
			break
		}
	}
	r.line++
	return line, nil
}

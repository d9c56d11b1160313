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
)

// Sentinel errors for classifying load, save, and append failures.
// Returned errors wrap these with path and context; match with errors.Is.
var (
	// ErrNotFound indicates the input file does not exist.
	ErrNotFound = errors.New("file not found")

	// ErrFormat indicates content that does not parse as a record
	// collection in any supported format, an append target that is not
	// a JSON array, or an unrecognized Format value.
	ErrFormat = errors.New("invalid file format")

	// ErrInvalidData indicates data whose shape does not match the
	// requested save mode, such as a non-object record.
	ErrInvalidData = errors.New("invalid data shape")

	// ErrNotSerializable indicates a value that cannot be represented
	// as JSON.
	ErrNotSerializable = errors.New("value not serializable")
)

// LineError reports a JSONL line that could not be decoded into a
// Record. Line numbers are 1-based and count physical lines, blank
// lines included.
type LineError struct {
	Line int
	Err  error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %v", e.Line, e.Err)
}

// Unwrap returns the underlying decode error.
func (e *LineError) Unwrap() error { return e.Err }

// Is marks every line failure as ErrFormat so callers can classify
// stream errors without unwrapping.
func (e *LineError) Is(target error) bool { return target == ErrFormat }

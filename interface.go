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

// RecordWriter is the interface for streaming record emission. It
// abstracts Writer so callers can substitute other sinks without
// changing the producing code.
type RecordWriter interface {
	// Write emits a single record. The record should reach the
	// destination immediately rather than accumulate in memory.
	Write(record interface{}) error

	// Close releases the underlying resources. It must be called when
	// all writing is complete.
	Close() error
}

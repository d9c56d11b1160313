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

// Package records reads and writes collections of JSON records stored
// as a single JSON document or as JSON Lines (JSONL, one object per
// line, also known as NDJSON).
//
// Load sniffs the content format, so files produced by other tools
// load the same way regardless of extension. Save and Append choose
// the format from the path extension (".jsonl" and ".ndjson" mean
// JSONL) unless an explicit Format is given. Whole-file writes go
// through a temp-file-and-rename sequence, so a failed save never
// leaves a truncated file behind.
//
// Example usage:
//
//	people := []records.Record{
//	    {"name": "Alice", "age": 30},
//	    {"name": "Bob", "age": 25},
//	}
//	if err := records.Save("people.jsonl", people, nil); err != nil {
//	    log.Fatal(err)
//	}
//
//	loaded, err := records.Load("people.jsonl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("loaded %d records\n", len(loaded))
//
// For streams too large to hold in memory, Writer emits records one
// line at a time and Reader consumes them the same way.
//
// Failures are classified by the sentinel errors ErrNotFound,
// ErrFormat, ErrInvalidData, and ErrNotSerializable; match them with
// errors.Is. The path-based operations provide no cross-call locking:
// concurrent writers on the same path synchronize externally.
package records

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

// Append adds one record to the collection at path, detecting the
// format from the extension. JSONL files gain a single compact line;
// JSON files must hold an array, which is extended by one element and
// rewritten with default indentation. Missing files are created along
// with their parent directories.
//
// The record must serialize to a JSON object (ErrInvalidData
// otherwise). To force a format or another indentation, call Save with
// the Append option set.
func Append(path string, record interface{}) error {
	opts := DefaultSaveOptions()
	opts.Append = true
	return Save(path, record, opts)
}

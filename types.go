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

// Record is one logical entry in a collection: a JSON object keyed by
// strings. Values carry the encoding/json defaults for their JSON types
// (float64 for numbers, string, bool, nil, []interface{} for arrays,
// map[string]interface{} for nested objects). Key order is not
// semantically meaningful.
type Record map[string]interface{}

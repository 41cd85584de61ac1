// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package query implements the searches of the ledger CLI.
//
// Every search is a single pass over freshly loaded tables using one matching
// primitive: case-insensitive, unanchored substring containment. A search over
// several columns declares those columns by name; columns missing from the
// loaded schema are skipped, and empty cells never match.
//
// The Engine exposes one method per search domain:
//   - Products: id, supplier or category filter, else keyword over seven columns
//   - Cases: keyword over the tracking and detail tables independently
//   - CaseDetail: case-number lookup in both case tables
//   - Suppliers and Credit: keyword search, or the whole table without one
//   - Summary: row counts plus grouped counts by category and person
package query

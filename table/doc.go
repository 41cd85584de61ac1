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

// Package table is the data contract of the ledger: named, rectangular tables
// whose cells are all text.
//
// Tables are read once from a Source and never mutated afterwards. A Schema
// maps column names to positions so that callers can resolve the columns they
// care about once per table and skip columns that a given workbook revision
// does not carry. An empty cell is treated as absent.
//
// Loader fans table reads out on a bounded worker pool, and Binding decodes
// rows into tagged structs declared in package core.
package table

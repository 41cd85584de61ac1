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

package table

import "strings"

// Schema is the ordered column list of a table.
type Schema struct {
	columns []string
	index   map[string]int
}

// NewSchema builds a schema from header names.
// When a name repeats, lookups resolve to its first position.
func NewSchema(columns []string) *Schema {
	s := &Schema{
		columns: make([]string, len(columns)),
		index:   make(map[string]int, len(columns)),
	}
	copy(s.columns, columns)
	for i, name := range columns {
		if _, exists := s.index[name]; !exists {
			s.index[name] = i
		}
	}
	return s
}

// NormalizeHeader strips embedded newlines and surrounding whitespace from a
// header cell, the way extraction writes column names.
func NormalizeHeader(name string) string {
	name = strings.ReplaceAll(name, "\r", "")
	name = strings.ReplaceAll(name, "\n", "")
	return strings.TrimSpace(name)
}

// Columns returns a copy of the column names in order.
func (s *Schema) Columns() []string {
	out := make([]string, len(s.columns))
	copy(out, s.columns)
	return out
}

// Len returns the number of columns.
func (s *Schema) Len() int {
	return len(s.columns)
}

// Has reports whether the schema declares the column.
func (s *Schema) Has(column string) bool {
	_, ok := s.index[column]
	return ok
}

// Index returns the position of a column.
func (s *Schema) Index(column string) (int, bool) {
	i, ok := s.index[column]
	return i, ok
}

// Resolve returns the positions of the named columns that exist, in the
// order requested. Unknown columns are skipped.
func (s *Schema) Resolve(columns ...string) []int {
	out := make([]int, 0, len(columns))
	for _, name := range columns {
		if i, ok := s.index[name]; ok {
			out = append(out, i)
		}
	}
	return out
}

// Project filters the named columns down to those present, keeping order.
func (s *Schema) Project(columns ...string) []string {
	out := make([]string, 0, len(columns))
	for _, name := range columns {
		if s.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// Missing returns the named columns that the schema does not declare.
func (s *Schema) Missing(columns ...string) []string {
	var out []string
	for _, name := range columns {
		if !s.Has(name) {
			out = append(out, name)
		}
	}
	return out
}

// ColumnContaining returns the first column whose name contains sub.
func (s *Schema) ColumnContaining(sub string) (string, bool) {
	for _, name := range s.columns {
		if strings.Contains(name, sub) {
			return name, true
		}
	}
	return "", false
}

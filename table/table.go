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

import (
	"fmt"
	"strings"

	"github.com/poiesic/ledger/core"
)

// Row is a single record. Values line up with the schema of the table the
// row came from.
type Row struct {
	values []string
}

// Value returns the cell at position i, or "" when out of range.
func (r Row) Value(i int) string {
	if i < 0 || i >= len(r.values) {
		return ""
	}
	return r.values[i]
}

// Values returns a copy of the row's cells.
func (r Row) Values() []string {
	out := make([]string, len(r.values))
	copy(out, r.values)
	return out
}

// Predicate selects rows.
type Predicate func(Row) bool

// Table is an immutable snapshot of one named table.
type Table struct {
	Name   string
	Schema *Schema
	Rows   []Row
}

// New builds a table from a header and records. Records shorter than the
// header are padded with empty cells and longer ones are truncated.
func New(name string, columns []string, records [][]string) *Table {
	schema := NewSchema(columns)
	rows := make([]Row, 0, len(records))
	for _, rec := range records {
		values := make([]string, len(columns))
		copy(values, rec)
		rows = append(rows, Row{values: values})
	}
	return &Table{
		Name:   name,
		Schema: schema,
		Rows:   rows,
	}
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.Rows)
}

// Empty reports whether the table has no rows.
func (t *Table) Empty() bool {
	return len(t.Rows) == 0
}

// Filter returns a table with the same schema holding the rows that satisfy
// pred, in their original order.
func (t *Table) Filter(pred Predicate) *Table {
	var rows []Row
	for _, row := range t.Rows {
		if pred(row) {
			rows = append(rows, row)
		}
	}
	return &Table{
		Name:   t.Name,
		Schema: t.Schema,
		Rows:   rows,
	}
}

// Column returns every cell of a column in row order, or nil when the column
// is absent.
func (t *Table) Column(column string) []string {
	i, ok := t.Schema.Index(column)
	if !ok {
		return nil
	}
	out := make([]string, len(t.Rows))
	for n, row := range t.Rows {
		out[n] = row.Value(i)
	}
	return out
}

// Require returns core.ErrMalformedTable when any named column is absent.
func (t *Table) Require(columns ...string) error {
	missing := t.Schema.Missing(columns...)
	if len(missing) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s lacks column(s) %s", core.ErrMalformedTable, t.Name, strings.Join(missing, ", "))
}

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
	"reflect"
	"strings"
)

// Binding maps the `col` tagged string fields of T onto the columns of one
// schema. Column lookups happen once in Bind; Decode only copies cells.
//
// Tag forms:
//
//	`col:"商品名"`            exact column name
//	`col:"申し送り,contains"` first column whose name contains the text
//
// Fields whose column is absent keep their zero value.
type Binding[T any] struct {
	fields []fieldBinding
}

type fieldBinding struct {
	field  int
	column int
}

// Bind resolves the tagged fields of T against schema.
func Bind[T any](schema *Schema) (*Binding[T], error) {
	typ := reflect.TypeFor[T]()
	if typ.Kind() != reflect.Struct {
		return nil, fmt.Errorf("%w: %v", ErrNotStruct, typ)
	}

	b := &Binding[T]{}
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		tag, ok := f.Tag.Lookup("col")
		if !ok || !f.IsExported() {
			continue
		}
		if f.Type.Kind() != reflect.String {
			return nil, fmt.Errorf("bind %v.%s: tagged field must be a string", typ, f.Name)
		}

		name, opt, _ := strings.Cut(tag, ",")
		column := name
		if opt == "contains" {
			found, ok := schema.ColumnContaining(name)
			if !ok {
				continue
			}
			column = found
		}
		idx, ok := schema.Index(column)
		if !ok {
			continue
		}
		b.fields = append(b.fields, fieldBinding{field: i, column: idx})
	}
	return b, nil
}

// Decode copies the bound cells of row into a new T.
func (b *Binding[T]) Decode(row Row) T {
	var out T
	v := reflect.ValueOf(&out).Elem()
	for _, fb := range b.fields {
		v.Field(fb.field).SetString(row.Value(fb.column))
	}
	return out
}

// DecodeAll decodes every row of t.
func (b *Binding[T]) DecodeAll(t *Table) []T {
	out := make([]T, 0, len(t.Rows))
	for _, row := range t.Rows {
		out = append(out, b.Decode(row))
	}
	return out
}

// Decode binds T to the schema of t and decodes all of its rows.
func Decode[T any](t *Table) ([]T, error) {
	b, err := Bind[T](t.Schema)
	if err != nil {
		return nil, err
	}
	return b.DecodeAll(t), nil
}

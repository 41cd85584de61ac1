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
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/poiesic/ledger/core"
)

const utf8BOM = "\ufeff"

// Source provides named tables.
type Source interface {
	// Load reads the named table.
	// Returns core.ErrTableNotFound if the table does not exist.
	Load(ctx context.Context, name string) (*Table, error)
}

// CSVSource reads tables from <dir>/<name>.csv.
type CSVSource struct {
	dir string
}

var _ Source = (*CSVSource)(nil)

// NewCSVSource creates a source rooted at dir.
func NewCSVSource(dir string) *CSVSource {
	return &CSVSource{dir: dir}
}

// Path returns the file backing a table.
func (s *CSVSource) Path(name string) string {
	return filepath.Join(s.dir, name+".csv")
}

// Load reads and parses the CSV file for name.
func (s *CSVSource) Load(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path := s.Path(name)
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s (%s)", core.ErrTableNotFound, name, path)
		}
		return nil, err
	}
	defer f.Close()

	t, err := ReadCSV(name, f)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return t, nil
}

// ReadCSV parses a table whose first record is the header.
func ReadCSV(name string, r io.Reader) (*Table, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil, fmt.Errorf("%w: %s has no header row", core.ErrMalformedTable, name)
		}
		return nil, err
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], utf8BOM)
	}
	for i := range header {
		header[i] = NormalizeHeader(header[i])
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}
	return New(name, header, records), nil
}

// WriteCSV writes the header and rows of t.
func WriteCSV(w io.Writer, t *Table) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(t.Schema.Columns()); err != nil {
		return err
	}
	for _, row := range t.Rows {
		if err := writer.Write(row.values); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// MemorySource serves tables held in memory.
type MemorySource struct {
	tables map[string]*Table
}

var _ Source = (*MemorySource)(nil)

// NewMemorySource creates a source serving the given tables by name.
func NewMemorySource(tables ...*Table) *MemorySource {
	m := &MemorySource{tables: make(map[string]*Table, len(tables))}
	for _, t := range tables {
		m.tables[t.Name] = t
	}
	return m
}

// Load returns the stored table.
func (m *MemorySource) Load(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	t, ok := m.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", core.ErrTableNotFound, name)
	}
	return t, nil
}

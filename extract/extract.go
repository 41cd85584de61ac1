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

package extract

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/table"
	"github.com/xuri/excelize/v2"
)

// Sheet describes where a table lives in the workbook.
type Sheet struct {
	// Name is the worksheet name.
	Name string

	// Table is the output table name.
	Table string

	// HeaderRow is the zero-based row holding the column names. Rows above
	// it are discarded.
	HeaderRow int

	// MaxColumns keeps only the leftmost columns when positive.
	MaxColumns int

	// RawHeader keeps header cells as found after normalization: blanks
	// stay empty and repeats are not renamed.
	RawHeader bool
}

// Sheets is the workbook layout, in workbook order.
var Sheets = []Sheet{
	{Name: "仕入先マスタ", Table: core.TableSuppliers, HeaderRow: 0},
	{Name: "商品マスタ", Table: core.TableProducts, HeaderRow: 1},
	{Name: "案件番号採番", Table: core.TableCaseNumbers, HeaderRow: 1},
	{Name: "顧客与信管理", Table: core.TableCredit, HeaderRow: 1},
	{Name: "案件明細", Table: core.TableCaseDetails, HeaderRow: 1},
	// The tracking sheet carries two banner rows and a side panel right of
	// column AF.
	{Name: "案件追跡表", Table: core.TableCaseTracking, HeaderRow: 2, MaxColumns: 32, RawHeader: true},
	{Name: "入力ルール用シート", Table: core.TableInputRules, HeaderRow: 0},
}

// Result reports one written table.
type Result struct {
	Table string
	Path  string
	Rows  int
}

// Extractor writes workbook sheets as CSV tables.
type Extractor struct {
	outDir string
	sheets []Sheet
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithSheets replaces the default workbook layout.
func WithSheets(sheets ...Sheet) Option {
	return func(x *Extractor) {
		x.sheets = sheets
	}
}

// WithLogger sets the logger.
func WithLogger(logger *slog.Logger) Option {
	return func(x *Extractor) {
		x.logger = logger
	}
}

// NewExtractor creates an extractor writing into outDir.
func NewExtractor(outDir string, opts ...Option) (*Extractor, error) {
	if outDir == "" {
		return nil, ErrOutputRequired
	}
	x := &Extractor{
		outDir: outDir,
		sheets: Sheets,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(x)
	}
	return x, nil
}

// Extract reads the workbook at path and writes one CSV per sheet. Every
// sheet must exist; a missing one fails with core.ErrSheetNotFound before
// any file is written.
func (x *Extractor) Extract(ctx context.Context, path string) ([]Result, error) {
	wb, err := excelize.OpenFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: workbook %s", core.ErrTableNotFound, path)
		}
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	defer wb.Close()

	tables := make([]*table.Table, 0, len(x.sheets))
	for _, sheet := range x.sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		idx, err := wb.GetSheetIndex(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to look up sheet %s: %w", sheet.Name, err)
		}
		if idx < 0 {
			return nil, fmt.Errorf("%w: %s in %s", core.ErrSheetNotFound, sheet.Name, path)
		}
		rows, err := wb.GetRows(sheet.Name)
		if err != nil {
			return nil, fmt.Errorf("failed to read sheet %s: %w", sheet.Name, err)
		}
		t := Build(sheet, rows)
		x.logger.Debug("read sheet", "sheet", sheet.Name, "table", t.Name, "rows", t.Len(), "columns", t.Schema.Len())
		tables = append(tables, t)
	}

	if err := os.MkdirAll(x.outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", x.outDir, err)
	}
	results := make([]Result, 0, len(tables))
	for _, t := range tables {
		res, err := x.write(t)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

func (x *Extractor) write(t *table.Table) (Result, error) {
	path := filepath.Join(x.outDir, t.Name+".csv")
	f, err := os.Create(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to create %s: %w", path, err)
	}
	if err := table.WriteCSV(f, t); err != nil {
		f.Close()
		return Result{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return Result{}, fmt.Errorf("failed to write %s: %w", path, err)
	}
	x.logger.Info("wrote table", "table", t.Name, "path", path, "rows", t.Len())
	return Result{Table: t.Name, Path: path, Rows: t.Len()}, nil
}

// Build turns raw sheet rows into a table laid out as sheet describes.
func Build(sheet Sheet, rows [][]string) *table.Table {
	var raw []string
	if sheet.HeaderRow < len(rows) {
		raw = rows[sheet.HeaderRow]
	}
	body := [][]string{}
	if sheet.HeaderRow+1 < len(rows) {
		body = rows[sheet.HeaderRow+1:]
	}

	width := len(raw)
	for _, r := range body {
		width = max(width, len(r))
	}
	if sheet.MaxColumns > 0 {
		width = min(width, sheet.MaxColumns)
	}

	header := headerNames(raw, width, sheet.RawHeader)
	records := make([][]string, 0, len(body))
	for _, r := range body {
		if len(r) > width {
			r = r[:width]
		}
		if blank(r) {
			continue
		}
		records = append(records, r)
	}
	return table.New(sheet.Table, header, records)
}

// headerNames normalizes width header cells. Unless raw is set, blanks are
// named by position and repeats get a suffix.
func headerNames(cells []string, width int, raw bool) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := range names {
		name := ""
		if i < len(cells) {
			name = table.NormalizeHeader(cells[i])
		}
		if raw {
			names[i] = name
			continue
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, ok := seen[name]; ok {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n)
		} else {
			seen[name] = 1
		}
		names[i] = name
	}
	return names
}

func blank(row []string) bool {
	for _, v := range row {
		if strings.TrimSpace(v) != "" {
			return false
		}
	}
	return true
}

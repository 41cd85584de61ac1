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

package query

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/table"
)

// Searchable columns per table.
var (
	productSearchColumns = []string{
		core.ColProductName,
		core.ColFeatures,
		core.ColSupplier,
		core.ColMajorCategory,
		core.ColMinorCategory,
		core.ColSerialID,
		core.ColBarcode,
	}

	trackingSearchColumns = []string{
		core.ColCaseNumber,
		core.ColCustomer,
		core.ColSupplier,
		core.ColMerchandise,
		core.ColAssignee,
	}

	detailSearchColumns = []string{
		core.ColCaseNumber,
		core.ColCustomer,
		core.ColSupplier,
		core.ColProductName,
		core.ColProductID,
	}
)

// Engine runs searches over tables read through a loader.
// Every call loads its tables afresh; nothing is cached between calls.
type Engine struct {
	loader *table.Loader
	logger *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) error {
		if logger == nil {
			logger = slog.Default()
		}
		e.logger = logger
		return nil
	}
}

// NewEngine creates a new engine.
func NewEngine(loader *table.Loader, opts ...Option) (*Engine, error) {
	if loader == nil {
		return nil, ErrLoaderRequired
	}

	e := &Engine{
		loader: loader,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(e); err != nil {
			return nil, err
		}
	}

	return e, nil
}

// ProductQuery selects products. At most one mode is active: ID wins over
// Supplier, Supplier over Category, and Category over Keyword.
type ProductQuery struct {
	ID       string
	Supplier string
	Category string
	Keyword  string
}

// filter returns the active value and the columns it is matched against.
// Filter columns are required; keyword columns are not.
func (q ProductQuery) filter() (value string, columns []string, required bool, err error) {
	switch {
	case q.ID != "":
		return q.ID, []string{core.ColSerialID}, true, nil
	case q.Supplier != "":
		return q.Supplier, []string{core.ColSupplier}, true, nil
	case q.Category != "":
		return q.Category, []string{core.ColMajorCategory}, true, nil
	case q.Keyword != "":
		return q.Keyword, productSearchColumns, false, nil
	}
	return "", nil, false, fmt.Errorf("%w: product keyword", core.ErrMissingInput)
}

// Products searches the product master.
func (e *Engine) Products(ctx context.Context, q ProductQuery) (*table.Table, error) {
	value, columns, required, err := q.filter()
	if err != nil {
		return nil, err
	}

	products, err := e.loader.Load(ctx, core.TableProducts)
	if err != nil {
		return nil, err
	}
	if required {
		if err := products.Require(columns...); err != nil {
			return nil, err
		}
	}

	results := products.Filter(NewMatcher(value).Any(products.Schema, columns...))
	e.logger.Debug("product search", "value", value, "columns", columns, "hits", results.Len())
	return results, nil
}

// CaseResult holds the matches of a case search, one table per side.
// Each side is searched independently of the other.
type CaseResult struct {
	Tracking *table.Table
	Details  *table.Table
}

// Empty reports whether neither side matched.
func (r *CaseResult) Empty() bool {
	return r.Tracking.Empty() && r.Details.Empty()
}

// loadCaseTables loads both case tables and checks the shared key column.
func (e *Engine) loadCaseTables(ctx context.Context) (tracking, details *table.Table, err error) {
	tables, err := e.loader.LoadAll(ctx, core.TableCaseTracking, core.TableCaseDetails)
	if err != nil {
		return nil, nil, err
	}
	tracking = tables[core.TableCaseTracking]
	details = tables[core.TableCaseDetails]

	if err := tracking.Require(core.ColCaseNumber); err != nil {
		return nil, nil, err
	}
	if err := details.Require(core.ColCaseNumber); err != nil {
		return nil, nil, err
	}
	return tracking, details, nil
}

// Cases searches case tracking and case details for keyword.
func (e *Engine) Cases(ctx context.Context, keyword string) (*CaseResult, error) {
	if keyword == "" {
		return nil, fmt.Errorf("%w: case keyword", core.ErrMissingInput)
	}

	tracking, details, err := e.loadCaseTables(ctx)
	if err != nil {
		return nil, err
	}

	m := NewMatcher(keyword)
	result := &CaseResult{
		Tracking: tracking.Filter(m.Any(tracking.Schema, trackingSearchColumns...)),
		Details:  details.Filter(m.Any(details.Schema, detailSearchColumns...)),
	}
	e.logger.Debug("case search", "keyword", keyword,
		"tracking_hits", result.Tracking.Len(), "detail_hits", result.Details.Len())
	return result, nil
}

// CaseDetail looks a case number up in both case tables.
func (e *Engine) CaseDetail(ctx context.Context, caseNumber string) (*CaseResult, error) {
	if caseNumber == "" {
		return nil, fmt.Errorf("%w: case number", core.ErrMissingInput)
	}

	tracking, details, err := e.loadCaseTables(ctx)
	if err != nil {
		return nil, err
	}

	m := NewMatcher(caseNumber)
	return &CaseResult{
		Tracking: tracking.Filter(m.Any(tracking.Schema, core.ColCaseNumber)),
		Details:  details.Filter(m.Any(details.Schema, core.ColCaseNumber)),
	}, nil
}

// Listing is the result of a search that falls back to the whole table.
type Listing struct {
	Rows *table.Table
	// All is set when no keyword was given and Rows is the entire table.
	All bool
}

// Suppliers matches keyword against every supplier column.
func (e *Engine) Suppliers(ctx context.Context, keyword string) (*Listing, error) {
	suppliers, err := e.loader.Load(ctx, core.TableSuppliers)
	if err != nil {
		return nil, err
	}
	if keyword == "" {
		return &Listing{Rows: suppliers, All: true}, nil
	}
	return &Listing{Rows: suppliers.Filter(NewMatcher(keyword).AnyColumn(suppliers.Schema))}, nil
}

// Credit matches keyword against the customer name.
func (e *Engine) Credit(ctx context.Context, keyword string) (*Listing, error) {
	credit, err := e.loader.Load(ctx, core.TableCredit)
	if err != nil {
		return nil, err
	}
	if keyword == "" {
		return &Listing{Rows: credit, All: true}, nil
	}
	if err := credit.Require(core.ColCustomer); err != nil {
		return nil, err
	}
	return &Listing{Rows: credit.Filter(NewMatcher(keyword).Any(credit.Schema, core.ColCustomer))}, nil
}

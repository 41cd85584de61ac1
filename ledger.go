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

// Package ledger opens an extracted order-management ledger for searching.
package ledger

import (
	"errors"
	"log/slog"

	"github.com/poiesic/ledger/query"
	"github.com/poiesic/ledger/table"
)

// ErrDataDirRequired is returned by Open when neither a data directory nor
// a source is given.
var ErrDataDirRequired = errors.New("data directory required")

// Ledger ties a table source to a query engine.
type Ledger struct {
	source table.Source
	loader *table.Loader
	engine *query.Engine
	logger *slog.Logger
}

// Option configures a Ledger.
type Option func(*options)

type options struct {
	source      table.Source
	loadWorkers int
	logger      *slog.Logger
}

// WithSource reads tables from src instead of the data directory.
func WithSource(src table.Source) Option {
	return func(o *options) {
		o.source = src
	}
}

// WithLoadWorkers sets how many tables are read concurrently. Zero keeps
// the loader default.
func WithLoadWorkers(n int) Option {
	return func(o *options) {
		o.loadWorkers = n
	}
}

// WithLogger sets the logger handed to the loader and engine.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Open prepares searches over the <table>.csv files in dataDir. No table
// is read until a search runs.
func Open(dataDir string, opts ...Option) (*Ledger, error) {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	if o.source == nil {
		if dataDir == "" {
			return nil, ErrDataDirRequired
		}
		o.source = table.NewCSVSource(dataDir)
	}

	loaderOpts := []table.LoaderOption{table.WithLogger(o.logger)}
	if o.loadWorkers > 0 {
		loaderOpts = append(loaderOpts, table.WithPoolSize(o.loadWorkers))
	}
	loader, err := table.NewLoader(o.source, loaderOpts...)
	if err != nil {
		return nil, err
	}

	engine, err := query.NewEngine(loader, query.WithLogger(o.logger))
	if err != nil {
		loader.Release()
		return nil, err
	}

	return &Ledger{
		source: o.source,
		loader: loader,
		engine: engine,
		logger: o.logger,
	}, nil
}

// Engine returns the query engine.
func (l *Ledger) Engine() *query.Engine {
	return l.engine
}

// Source returns the table source.
func (l *Ledger) Source() table.Source {
	return l.source
}

// Close releases the loader pool.
func (l *Ledger) Close() error {
	l.loader.Release()
	l.logger.Debug("ledger closed")
	return nil
}

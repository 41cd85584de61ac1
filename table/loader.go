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
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Loader reads tables from a Source. Multi-table reads run on a bounded
// worker pool; tables are immutable once loaded so no locking is needed.
type Loader struct {
	source Source
	pool   *ants.Pool
	logger *slog.Logger
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader) error

// WithPoolSize sets the number of concurrent table reads.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) LoaderOption {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		if l.pool != nil {
			l.pool.Release()
		}
		l.pool = pool
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) LoaderOption {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader over source.
func NewLoader(source Source, opts ...LoaderOption) (*Loader, error) {
	if source == nil {
		return nil, ErrSourceRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		source: source,
		pool:   pool,
		logger: slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Load reads a single table.
func (l *Loader) Load(ctx context.Context, name string) (*Table, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	t, err := l.source.Load(ctx, name)
	if err != nil {
		l.logger.Debug("table load failed", "table", name, "err", err)
		return nil, err
	}
	l.logger.Debug("table loaded", "table", name, "rows", t.Len(), "columns", t.Schema.Len())
	return t, nil
}

// LoadAll reads the named tables concurrently and returns them keyed by name.
// When several loads fail, the error of the earliest name in the list wins.
func (l *Loader) LoadAll(ctx context.Context, names ...string) (map[string]*Table, error) {
	tables := make([]*Table, len(names))
	errs := make([]error, len(names))

	var wg sync.WaitGroup
	for i, name := range names {
		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			tables[i], errs[i] = l.Load(ctx, name)
		})
		if err != nil {
			wg.Done()
			errs[i] = err
		}
	}
	wg.Wait()

	out := make(map[string]*Table, len(names))
	for i, name := range names {
		if errs[i] != nil {
			return nil, errs[i]
		}
		out[name] = tables[i]
	}
	return out, nil
}

// Release frees the worker pool. The loader must not be used afterwards.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}

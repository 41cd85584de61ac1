package table

import (
	"context"
	"errors"
	"log/slog"
	"sync/atomic"
	"testing"

	"github.com/poiesic/ledger/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingSource records how many loads it served.
type countingSource struct {
	inner Source
	loads atomic.Int32
}

func (c *countingSource) Load(ctx context.Context, name string) (*Table, error) {
	c.loads.Add(1)
	return c.inner.Load(ctx, name)
}

func testTables() []*Table {
	return []*Table{
		New(core.TableProducts, []string{"商品連番"}, [][]string{{"P-1"}, {"P-2"}}),
		New(core.TableSuppliers, []string{"仕入先名"}, [][]string{{"S-1"}}),
		New(core.TableCredit, []string{"顧客名"}, nil),
	}
}

func TestNewLoader(t *testing.T) {
	src := NewMemorySource(testTables()...)

	t.Run("valid configuration", func(t *testing.T) {
		l, err := NewLoader(src)
		require.NoError(t, err)
		defer l.Release()
		assert.NotNil(t, l.pool)
		assert.NotNil(t, l.logger)
	})

	t.Run("with options", func(t *testing.T) {
		l, err := NewLoader(src, WithPoolSize(3), WithLogger(slog.Default()))
		require.NoError(t, err)
		defer l.Release()
		assert.Equal(t, 3, l.pool.Cap())
	})

	t.Run("pool size below one is clamped", func(t *testing.T) {
		l, err := NewLoader(src, WithPoolSize(0))
		require.NoError(t, err)
		defer l.Release()
		assert.Equal(t, 1, l.pool.Cap())
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		l, err := NewLoader(src, WithLogger(nil))
		require.NoError(t, err)
		defer l.Release()
		assert.NotNil(t, l.logger)
	})

	t.Run("nil source", func(t *testing.T) {
		_, err := NewLoader(nil)
		assert.Equal(t, ErrSourceRequired, err)
	})

	t.Run("failing option", func(t *testing.T) {
		boom := errors.New("boom")
		_, err := NewLoader(src, func(*Loader) error { return boom })
		assert.Equal(t, boom, err)
	})
}

func TestLoader_Load(t *testing.T) {
	ctx := context.Background()
	l, err := NewLoader(NewMemorySource(testTables()...))
	require.NoError(t, err)
	defer l.Release()

	tbl, err := l.Load(ctx, core.TableProducts)
	require.NoError(t, err)
	assert.Equal(t, 2, tbl.Len())

	_, err = l.Load(ctx, core.TableCaseTracking)
	assert.ErrorIs(t, err, core.ErrTableNotFound)
}

func TestLoader_LoadAll(t *testing.T) {
	ctx := context.Background()

	t.Run("loads every table", func(t *testing.T) {
		src := &countingSource{inner: NewMemorySource(testTables()...)}
		l, err := NewLoader(src, WithPoolSize(2))
		require.NoError(t, err)
		defer l.Release()

		tables, err := l.LoadAll(ctx, core.TableProducts, core.TableSuppliers, core.TableCredit)
		require.NoError(t, err)
		require.Len(t, tables, 3)
		assert.Equal(t, 2, tables[core.TableProducts].Len())
		assert.Equal(t, 1, tables[core.TableSuppliers].Len())
		assert.True(t, tables[core.TableCredit].Empty())
		assert.Equal(t, int32(3), src.loads.Load())
	})

	t.Run("returns error of earliest failing name", func(t *testing.T) {
		l, err := NewLoader(NewMemorySource(testTables()...), WithPoolSize(4))
		require.NoError(t, err)
		defer l.Release()

		_, err = l.LoadAll(ctx, core.TableProducts, core.TableCaseDetails, core.TableCaseTracking)
		require.Error(t, err)
		assert.ErrorIs(t, err, core.ErrTableNotFound)
		assert.Contains(t, err.Error(), core.TableCaseDetails)
	})

	t.Run("no names", func(t *testing.T) {
		l, err := NewLoader(NewMemorySource())
		require.NoError(t, err)
		defer l.Release()

		tables, err := l.LoadAll(ctx)
		require.NoError(t, err)
		assert.Empty(t, tables)
	})

	t.Run("cancelled context", func(t *testing.T) {
		l, err := NewLoader(NewMemorySource(testTables()...))
		require.NoError(t, err)
		defer l.Release()

		cctx, cancel := context.WithCancel(ctx)
		cancel()
		_, err = l.LoadAll(cctx, core.TableProducts)
		assert.ErrorIs(t, err, context.Canceled)
	})
}

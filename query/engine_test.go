package query

import (
	"context"
	"log/slog"
	"testing"

	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/table"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productsTable() *table.Table {
	return table.New(core.TableProducts,
		[]string{"商品連番", "大分類", "小分類", "仕入先", "商品名", "商品特徴", "JANコード"},
		[][]string{
			{"P-001", "冷凍食品", "餃子", "山田食品", "冷凍餃子", "肉汁たっぷり", "4901234567890"},
			{"P-002", "調味料", "醤油", "鈴木商事", "濃口醤油", "冷凍不可", "4900000000001"},
			{"P-003", "冷凍食品", "麺", "鈴木商事", "Frozen Udon", "", ""},
			{"P-010", "飲料", "茶", "山田食品", "緑茶", "", "4901111111111"},
		})
}

func trackingTable() *table.Table {
	return table.New(core.TableCaseTracking,
		[]string{"案件番号", "顧客名", "仕入先", "商材", "担当", "見積"},
		[][]string{
			{"C-2024-001", "東京商店", "山田食品", "冷凍餃子", "佐藤", "2024/04/01"},
			{"C-2024-002", "大阪物産", "鈴木商事", "醤油", "田中", ""},
		})
}

func detailsTable() *table.Table {
	return table.New(core.TableCaseDetails,
		[]string{"案件番号", "No", "顧客名", "商品ID", "仕入先", "商品名"},
		[][]string{
			{"C-2024-001", "1", "東京商店", "P-001", "山田食品", "冷凍餃子"},
			{"C-2024-001", "2", "東京商店", "P-010", "山田食品", "緑茶"},
			{"C-2024-002", "1", "大阪物産", "P-002", "鈴木商事", "濃口醤油"},
			{"C-2024-003", "1", "山田屋", "P-003", "鈴木商事", "Frozen Udon"},
		})
}

func suppliersTable() *table.Table {
	return table.New(core.TableSuppliers,
		[]string{"仕入先名", "担当者", "電話番号", "住所"},
		[][]string{
			{"山田食品", "山田太郎", "03-1111-2222", "東京都"},
			{"鈴木商事", "鈴木花子", "06-3333-4444", "大阪府"},
		})
}

func creditTable() *table.Table {
	return table.New(core.TableCredit,
		[]string{"顧客名", "区分", "与信限度額"},
		[][]string{
			{"東京商店", "A", "1000000"},
			{"大阪物産", "B", "500000"},
		})
}

func caseNumbersTable() *table.Table {
	return table.New(core.TableCaseNumbers,
		[]string{"案件番号", "担当者"},
		[][]string{
			{"C-2024-001", "佐藤"},
			{"C-2024-002", "田中"},
			{"C-2024-003", ""},
			{"C-2024-004", "田中"},
			{"C-2024-005", "佐藤"},
			{"C-2024-006", "鈴木"},
		})
}

func allTables() []*table.Table {
	return []*table.Table{
		productsTable(),
		trackingTable(),
		detailsTable(),
		suppliersTable(),
		creditTable(),
		caseNumbersTable(),
	}
}

func newTestEngine(t *testing.T, tables ...*table.Table) *Engine {
	t.Helper()
	loader, err := table.NewLoader(table.NewMemorySource(tables...), table.WithPoolSize(2))
	require.NoError(t, err)
	t.Cleanup(loader.Release)

	engine, err := NewEngine(loader)
	require.NoError(t, err)
	return engine
}

func serials(t *table.Table) []string {
	return t.Column(core.ColSerialID)
}

func TestNewEngine(t *testing.T) {
	loader, err := table.NewLoader(table.NewMemorySource())
	require.NoError(t, err)
	defer loader.Release()

	t.Run("valid configuration", func(t *testing.T) {
		engine, err := NewEngine(loader)
		require.NoError(t, err)
		assert.NotNil(t, engine)
	})

	t.Run("with nil logger falls back to default", func(t *testing.T) {
		engine, err := NewEngine(loader, WithLogger(nil))
		require.NoError(t, err)
		assert.Equal(t, slog.Default(), engine.logger)
	})

	t.Run("nil loader", func(t *testing.T) {
		_, err := NewEngine(nil)
		assert.Equal(t, ErrLoaderRequired, err)
	})
}

func TestEngine_Products(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, allTables()...)

	tests := []struct {
		name  string
		query ProductQuery
		want  []string
	}{
		{
			name:  "id filter is case-insensitive substring",
			query: ProductQuery{ID: "p-00"},
			want:  []string{"P-001", "P-002", "P-003"},
		},
		{
			name:  "id filter beats keyword",
			query: ProductQuery{ID: "P-010", Keyword: "餃子"},
			want:  []string{"P-010"},
		},
		{
			name:  "supplier filter beats category",
			query: ProductQuery{Supplier: "鈴木", Category: "飲料"},
			want:  []string{"P-002", "P-003"},
		},
		{
			name:  "category filter only looks at major category",
			query: ProductQuery{Category: "冷凍"},
			want:  []string{"P-001", "P-003"},
		},
		{
			name:  "keyword searches every product column",
			query: ProductQuery{Keyword: "冷凍"},
			want:  []string{"P-001", "P-002", "P-003"},
		},
		{
			name:  "keyword ignores case",
			query: ProductQuery{Keyword: "frozen udon"},
			want:  []string{"P-003"},
		},
		{
			name:  "keyword matches barcode",
			query: ProductQuery{Keyword: "4901"},
			want:  []string{"P-001", "P-010"},
		},
		{
			name:  "no match",
			query: ProductQuery{Keyword: "ワイン"},
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			results, err := engine.Products(ctx, tt.query)
			require.NoError(t, err)
			assert.Equal(t, tt.want, serials(results))
		})
	}

	t.Run("no filter and no keyword", func(t *testing.T) {
		_, err := engine.Products(ctx, ProductQuery{})
		assert.ErrorIs(t, err, core.ErrMissingInput)
	})

	t.Run("same search twice gives same rows", func(t *testing.T) {
		first, err := engine.Products(ctx, ProductQuery{Keyword: "山田"})
		require.NoError(t, err)
		second, err := engine.Products(ctx, ProductQuery{Keyword: "山田"})
		require.NoError(t, err)
		assert.Equal(t, serials(first), serials(second))
		assert.Equal(t, []string{"P-001", "P-010"}, serials(first))
	})
}

func TestEngine_Products_SchemaDrift(t *testing.T) {
	ctx := context.Background()
	slim := table.New(core.TableProducts,
		[]string{"商品連番", "商品名"},
		[][]string{
			{"P-001", "冷凍餃子"},
			{"P-002", "濃口醤油"},
		})
	engine := newTestEngine(t, slim)

	t.Run("keyword skips absent columns", func(t *testing.T) {
		results, err := engine.Products(ctx, ProductQuery{Keyword: "醤油"})
		require.NoError(t, err)
		assert.Equal(t, []string{"P-002"}, serials(results))
	})

	t.Run("filter on absent column is malformed", func(t *testing.T) {
		_, err := engine.Products(ctx, ProductQuery{Category: "冷凍"})
		assert.ErrorIs(t, err, core.ErrMalformedTable)
	})

	t.Run("missing table", func(t *testing.T) {
		engine := newTestEngine(t)
		_, err := engine.Products(ctx, ProductQuery{Keyword: "x"})
		assert.ErrorIs(t, err, core.ErrTableNotFound)
	})
}

func TestEngine_Cases(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, allTables()...)

	t.Run("both sides match", func(t *testing.T) {
		res, err := engine.Cases(ctx, "山田食品")
		require.NoError(t, err)
		assert.Equal(t, []string{"C-2024-001"}, res.Tracking.Column(core.ColCaseNumber))
		assert.Equal(t, []string{"C-2024-001", "C-2024-001"}, res.Details.Column(core.ColCaseNumber))
		assert.False(t, res.Empty())
	})

	t.Run("only details match", func(t *testing.T) {
		res, err := engine.Cases(ctx, "山田屋")
		require.NoError(t, err)
		assert.True(t, res.Tracking.Empty())
		assert.Equal(t, []string{"山田屋"}, res.Details.Column(core.ColCustomer))
		assert.False(t, res.Empty())
	})

	t.Run("product name only in details", func(t *testing.T) {
		res, err := engine.Cases(ctx, "緑茶")
		require.NoError(t, err)
		assert.True(t, res.Tracking.Empty())
		assert.Equal(t, 1, res.Details.Len())
	})

	t.Run("assignee only in tracking", func(t *testing.T) {
		res, err := engine.Cases(ctx, "田中")
		require.NoError(t, err)
		assert.Equal(t, []string{"C-2024-002"}, res.Tracking.Column(core.ColCaseNumber))
		assert.True(t, res.Details.Empty())
	})

	t.Run("nothing matches", func(t *testing.T) {
		res, err := engine.Cases(ctx, "存在しない")
		require.NoError(t, err)
		assert.True(t, res.Empty())
	})

	t.Run("missing keyword", func(t *testing.T) {
		_, err := engine.Cases(ctx, "")
		assert.ErrorIs(t, err, core.ErrMissingInput)
	})

	t.Run("details without case number column", func(t *testing.T) {
		broken := table.New(core.TableCaseDetails, []string{"顧客名"}, [][]string{{"東京商店"}})
		engine := newTestEngine(t, trackingTable(), broken)
		_, err := engine.Cases(ctx, "東京")
		assert.ErrorIs(t, err, core.ErrMalformedTable)
	})

	t.Run("missing details table", func(t *testing.T) {
		engine := newTestEngine(t, trackingTable())
		_, err := engine.Cases(ctx, "東京")
		assert.ErrorIs(t, err, core.ErrTableNotFound)
	})
}

func TestEngine_CaseDetail(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, allTables()...)

	t.Run("union of tracking and detail rows", func(t *testing.T) {
		res, err := engine.CaseDetail(ctx, "2024-001")
		require.NoError(t, err)
		assert.Equal(t, 1, res.Tracking.Len())
		assert.Equal(t, []string{"1", "2"}, res.Details.Column(core.ColLineNo))
	})

	t.Run("detail rows without tracking row", func(t *testing.T) {
		res, err := engine.CaseDetail(ctx, "c-2024-003")
		require.NoError(t, err)
		assert.True(t, res.Tracking.Empty())
		assert.Equal(t, 1, res.Details.Len())
		assert.False(t, res.Empty())
	})

	t.Run("only case number is searched", func(t *testing.T) {
		res, err := engine.CaseDetail(ctx, "東京商店")
		require.NoError(t, err)
		assert.True(t, res.Empty())
	})

	t.Run("missing case number", func(t *testing.T) {
		_, err := engine.CaseDetail(ctx, "")
		assert.ErrorIs(t, err, core.ErrMissingInput)
	})
}

func TestEngine_Suppliers(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, allTables()...)

	t.Run("no keyword lists every supplier", func(t *testing.T) {
		res, err := engine.Suppliers(ctx, "")
		require.NoError(t, err)
		assert.True(t, res.All)
		assert.Equal(t, 2, res.Rows.Len())
	})

	t.Run("keyword searches every column", func(t *testing.T) {
		res, err := engine.Suppliers(ctx, "大阪")
		require.NoError(t, err)
		assert.False(t, res.All)
		assert.Equal(t, []string{"鈴木商事"}, res.Rows.Column("仕入先名"))

		res, err = engine.Suppliers(ctx, "03-1111")
		require.NoError(t, err)
		assert.Equal(t, []string{"山田食品"}, res.Rows.Column("仕入先名"))
	})

	t.Run("no match", func(t *testing.T) {
		res, err := engine.Suppliers(ctx, "北海道")
		require.NoError(t, err)
		assert.True(t, res.Rows.Empty())
	})
}

func TestEngine_Credit(t *testing.T) {
	ctx := context.Background()
	engine := newTestEngine(t, allTables()...)

	t.Run("no keyword lists every customer", func(t *testing.T) {
		res, err := engine.Credit(ctx, "")
		require.NoError(t, err)
		assert.True(t, res.All)
		assert.Equal(t, 2, res.Rows.Len())
	})

	t.Run("keyword matches customer name", func(t *testing.T) {
		res, err := engine.Credit(ctx, "大阪")
		require.NoError(t, err)
		assert.Equal(t, []string{"大阪物産"}, res.Rows.Column(core.ColCustomer))
	})

	t.Run("other columns are not searched", func(t *testing.T) {
		res, err := engine.Credit(ctx, "500000")
		require.NoError(t, err)
		assert.True(t, res.Rows.Empty())
	})

	t.Run("customer column required", func(t *testing.T) {
		broken := table.New(core.TableCredit, []string{"区分"}, [][]string{{"A"}})
		engine := newTestEngine(t, broken)
		_, err := engine.Credit(ctx, "A")
		assert.ErrorIs(t, err, core.ErrMalformedTable)
	})
}

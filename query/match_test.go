package query

import (
	"testing"

	"github.com/poiesic/ledger/table"
	"github.com/stretchr/testify/assert"
)

func TestMatcher_Matches(t *testing.T) {
	tests := []struct {
		name    string
		keyword string
		value   string
		want    bool
	}{
		{name: "exact", keyword: "冷凍", value: "冷凍", want: true},
		{name: "substring", keyword: "凍食", value: "冷凍食品", want: true},
		{name: "ascii case", keyword: "jan", value: "JANコード", want: true},
		{name: "upper keyword", keyword: "UDON", value: "Frozen Udon", want: true},
		{name: "empty value never matches", keyword: "x", value: "", want: false},
		{name: "no match", keyword: "醤油", value: "味噌", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NewMatcher(tt.keyword).Matches(tt.value))
		})
	}
}

func TestMatcher_Any(t *testing.T) {
	tbl := table.New("t", []string{"a", "b", "c"}, [][]string{
		{"foo", "", "bar"},
		{"", "", ""},
		{"", "FOO", ""},
	})
	m := NewMatcher("foo")

	t.Run("any listed column", func(t *testing.T) {
		got := tbl.Filter(m.Any(tbl.Schema, "a", "b"))
		assert.Equal(t, 2, got.Len())
	})

	t.Run("unknown columns are skipped", func(t *testing.T) {
		got := tbl.Filter(m.Any(tbl.Schema, "zzz", "b"))
		assert.Equal(t, []string{"FOO"}, got.Column("b"))
	})

	t.Run("no resolvable column matches nothing", func(t *testing.T) {
		got := tbl.Filter(m.Any(tbl.Schema, "zzz"))
		assert.True(t, got.Empty())
	})

	t.Run("all columns", func(t *testing.T) {
		got := tbl.Filter(NewMatcher("bar").AnyColumn(tbl.Schema))
		assert.Equal(t, []string{"foo"}, got.Column("a"))
	})
}

package query

import (
	"strings"

	"github.com/poiesic/ledger/table"
	"golang.org/x/text/cases"
)

// Matcher tests cells for case-insensitive containment of a keyword.
// Case folding follows Unicode full case folding, so "ＡＢＣ" matches "ａｂｃ"
// but not "ABC"; width and kana variants are not unified.
type Matcher struct {
	caser  cases.Caser
	needle string
}

// NewMatcher creates a matcher for keyword.
func NewMatcher(keyword string) *Matcher {
	caser := cases.Fold()
	return &Matcher{
		caser:  caser,
		needle: caser.String(keyword),
	}
}

// Matches reports whether value contains the keyword. Empty values never match.
func (m *Matcher) Matches(value string) bool {
	if value == "" {
		return false
	}
	return strings.Contains(m.caser.String(value), m.needle)
}

// Any returns a predicate that is true when any of the named columns matches.
// Columns are resolved against schema once; absent columns are skipped.
func (m *Matcher) Any(schema *table.Schema, columns ...string) table.Predicate {
	positions := schema.Resolve(columns...)
	return func(row table.Row) bool {
		for _, i := range positions {
			if m.Matches(row.Value(i)) {
				return true
			}
		}
		return false
	}
}

// AnyColumn is Any over every column of schema.
func (m *Matcher) AnyColumn(schema *table.Schema) table.Predicate {
	return m.Any(schema, schema.Columns()...)
}

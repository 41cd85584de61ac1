package query

import (
	"context"
	"slices"

	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/table"
)

// SummaryTables are the tables whose row counts a summary reports, in order.
var SummaryTables = []string{
	core.TableProducts,
	core.TableSuppliers,
	core.TableCaseNumbers,
	core.TableCaseDetails,
	core.TableCaseTracking,
	core.TableCredit,
}

// TableCount is the row count of one table.
type TableCount struct {
	Table string
	Rows  int
}

// Group is one distinct value and the number of rows holding it.
type Group struct {
	Key   string
	Count int
}

// Summary is an overview of the loaded tables.
type Summary struct {
	Tables []TableCount

	// Categories groups products by major category. Nil when the column is absent.
	Categories []Group

	// People groups case numbers by responsible person. Nil when the column is absent.
	People []Group
}

// Summary counts rows per table and groups products and cases.
func (e *Engine) Summary(ctx context.Context) (*Summary, error) {
	tables, err := e.loader.LoadAll(ctx, SummaryTables...)
	if err != nil {
		return nil, err
	}

	s := &Summary{Tables: make([]TableCount, 0, len(SummaryTables))}
	for _, name := range SummaryTables {
		s.Tables = append(s.Tables, TableCount{Table: name, Rows: tables[name].Len()})
	}

	if products := tables[core.TableProducts]; products.Schema.Has(core.ColMajorCategory) {
		records, err := table.Decode[core.Product](products)
		if err != nil {
			return nil, err
		}
		categories := make([]string, len(records))
		for i, p := range records {
			categories[i] = p.MajorCategory
		}
		s.Categories = GroupCount(categories)
	}

	if cases := tables[core.TableCaseNumbers]; cases.Schema.Has(core.ColPerson) {
		records, err := table.Decode[core.CaseNumber](cases)
		if err != nil {
			return nil, err
		}
		people := make([]string, len(records))
		for i, c := range records {
			people[i] = c.Person
		}
		s.People = GroupCount(people)
	}
	return s, nil
}

// GroupCount counts distinct non-empty values. Groups are ordered by count,
// highest first; ties keep the order in which values first appear.
func GroupCount(values []string) []Group {
	groups := make([]Group, 0)
	index := make(map[string]int)
	for _, v := range values {
		if v == "" {
			continue
		}
		if i, ok := index[v]; ok {
			groups[i].Count++
			continue
		}
		index[v] = len(groups)
		groups = append(groups, Group{Key: v, Count: 1})
	}

	slices.SortStableFunc(groups, func(a, b Group) int {
		return b.Count - a.Count
	})
	return groups
}

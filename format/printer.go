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

package format

import (
	"fmt"
	"io"

	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/query"
	"github.com/poiesic/ledger/table"
)

const defaultDetailThreshold = 5

// Printer renders search results as text.
type Printer struct {
	w               io.Writer
	maxColumnWidth  int
	detailThreshold int
}

// Option configures a Printer.
type Option func(*Printer)

// WithMaxColumnWidth caps the display width of table cells. Zero disables
// truncation.
func WithMaxColumnWidth(n int) Option {
	return func(p *Printer) {
		p.maxColumnWidth = n
	}
}

// WithDetailThreshold sets how many product hits still get a detail block.
func WithDetailThreshold(n int) Option {
	return func(p *Printer) {
		p.detailThreshold = n
	}
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer, opts ...Option) *Printer {
	p := &Printer{
		w:               w,
		maxColumnWidth:  defaultSpan,
		detailThreshold: defaultDetailThreshold,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Message writes a line of text.
func (p *Printer) Message(msg string) {
	fmt.Fprintln(p.w, msg)
}

// Table writes the listed columns of t; nil columns means all of them.
func (p *Printer) Table(t *table.Table, columns []string) {
	if columns == nil {
		columns = t.Schema.Columns()
	}
	writeTable(p.w, t, columns, p.maxColumnWidth)
}

// Products writes product hits. Small result sets are followed by a detail
// block per product with its features and handover notes.
func (p *Printer) Products(results *table.Table) error {
	if results.Empty() {
		p.Message(NoProducts)
		return nil
	}

	fmt.Fprintf(p.w, "\n商品検索結果: %d件\n\n", results.Len())
	p.Table(results, productColumns)

	if results.Len() > p.detailThreshold {
		return nil
	}
	products, err := table.Decode[core.Product](results)
	if err != nil {
		return err
	}
	for _, prod := range products {
		fmt.Fprintf(p.w, "\n--- %s ---\n", orNA(prod.Name))
		if prod.Features != "" {
			fmt.Fprintf(p.w, "  特徴: %s\n", prod.Features)
		}
		if prod.Notes != "" {
			fmt.Fprintf(p.w, "  申し送り: %s\n", prod.Notes)
		}
	}
	return nil
}

// Cases writes each side of a case search that matched. A side without
// matches is omitted; the no-results message appears only when both are empty.
func (p *Printer) Cases(res *query.CaseResult) {
	if res.Empty() {
		p.Message(NoCases)
		return
	}
	if !res.Tracking.Empty() {
		fmt.Fprintf(p.w, "\n案件追跡: %d件\n\n", res.Tracking.Len())
		p.Table(res.Tracking, trackingColumns)
	}
	if !res.Details.Empty() {
		fmt.Fprintf(p.w, "\n案件明細: %d件\n\n", res.Details.Len())
		p.Table(res.Details, caseLineColumns)
	}
}

// CaseDetail writes a labelled block per tracking row followed by the
// matching line items.
func (p *Printer) CaseDetail(caseNumber string, res *query.CaseResult) error {
	if res.Empty() {
		fmt.Fprintf(p.w, "案件 '%s' が見つかりません\n", caseNumber)
		return nil
	}

	if !res.Tracking.Empty() {
		cases, err := table.Decode[core.CaseTracking](res.Tracking)
		if err != nil {
			return err
		}
		fmt.Fprintln(p.w, "\n案件追跡情報:")
		for _, c := range cases {
			fmt.Fprintf(p.w, "  案件番号: %s\n", orNA(c.CaseNumber))
			fmt.Fprintf(p.w, "  顧客: %s / 仕入先: %s\n", orNA(c.Customer), orNA(c.Supplier))
			fmt.Fprintf(p.w, "  商材: %s / 担当: %s\n", orNA(c.Merchandise), orNA(c.Assignee))
			fmt.Fprintf(p.w, "  支払条件: %s\n", orNA(c.PaymentTerms))
			fmt.Fprintf(p.w, "  見積: %s -> 受注: %s\n", orNA(c.Quoted), orNA(c.Ordered))
			fmt.Fprintf(p.w, "  発注: %s -> 出荷: %s -> 着荷: %s\n", orNA(c.Purchased), orNA(c.Shipped), orNA(c.Arrived))
			fmt.Fprintf(p.w, "  売上計上: %s / 売上入金: %s\n", orNA(c.Recognized), orNA(c.Paid))
			fmt.Fprintln(p.w)
		}
	}

	if !res.Details.Empty() {
		fmt.Fprintf(p.w, "\n明細 (%d行):\n", res.Details.Len())
		p.Table(res.Details, lookupLineColumns)
	}
	return nil
}

// Suppliers writes supplier hits with every column, or the whole table.
func (p *Printer) Suppliers(l *query.Listing) {
	if l.All {
		p.Table(l.Rows, nil)
		return
	}
	if l.Rows.Empty() {
		p.Message(NoSuppliers)
		return
	}
	fmt.Fprintf(p.w, "\n仕入先検索結果: %d件\n\n", l.Rows.Len())
	p.Table(l.Rows, nil)
}

// Credit writes a credit block per customer, or the whole table.
func (p *Printer) Credit(l *query.Listing) error {
	if l.All {
		p.Table(l.Rows, nil)
		return nil
	}
	if l.Rows.Empty() {
		p.Message(NoCredit)
		return nil
	}

	credits, err := table.Decode[core.Credit](l.Rows)
	if err != nil {
		return err
	}
	fmt.Fprint(p.w, "\n与信情報:\n\n")
	for _, c := range credits {
		fmt.Fprintf(p.w, "  顧客名: %s\n", orNA(c.Customer))
		fmt.Fprintf(p.w, "  区分: %s / 調査機関: %s / 評点: %s\n", orNA(c.Class), orNA(c.Agency), orNA(c.Rating))
		fmt.Fprintf(p.w, "  与信限度額: %s / 現在売掛残高: %s\n", orNA(c.Limit), orNA(c.Receivable))
		fmt.Fprintf(p.w, "  残与信枠: %s / 支払条件: %s\n", orNA(c.Remaining), orNA(c.PaymentTerm))
		fmt.Fprintln(p.w)
	}
	return nil
}

// Summary writes table sizes and the grouped counts that are available.
func (p *Printer) Summary(s *query.Summary) {
	fmt.Fprint(p.w, "\nデータサマリー\n\n")
	for _, tc := range s.Tables {
		label, ok := tableLabels[tc.Table]
		if !ok {
			label = tc.Table
		}
		fmt.Fprintf(p.w, "  %s: %d件 (%s.csv)\n", label, tc.Rows, tc.Table)
	}

	if s.Categories != nil {
		fmt.Fprintln(p.w, "\n商品カテゴリ別:")
		for _, g := range s.Categories {
			fmt.Fprintf(p.w, "  %s: %d品\n", g.Key, g.Count)
		}
	}

	if s.People != nil {
		fmt.Fprintln(p.w, "\n担当者別案件数:")
		for _, g := range s.People {
			fmt.Fprintf(p.w, "  %s: %d件\n", g.Key, g.Count)
		}
	}
}

func orNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}

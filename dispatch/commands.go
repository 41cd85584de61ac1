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

package dispatch

import (
	"context"
	"errors"
	"fmt"

	"github.com/poiesic/ledger"
	"github.com/poiesic/ledger/core"
	"github.com/poiesic/ledger/extract"
	"github.com/poiesic/ledger/format"
	"github.com/poiesic/ledger/query"
	"github.com/urfave/cli/v2"
)

// Guidance printed when a command is missing its keyword.
const (
	needKeyword    = "キーワードを指定してください"
	needCaseNumber = "案件番号を指定してください"
)

func (r *runner) commands() []*cli.Command {
	return []*cli.Command{
		{
			Name:            "product",
			Usage:           "Search products by name, features, supplier or category",
			ArgsUsage:       "<keyword> | --id <id> | --supplier <name> | --category <category>",
			SkipFlagParsing: true,
			Action:          r.product,
		},
		{
			Name:            "case",
			Usage:           "Search case tracking and case lines",
			ArgsUsage:       "<keyword>",
			SkipFlagParsing: true,
			Action:          r.cases,
		},
		{
			Name:            "detail",
			Usage:           "Show the tracking record and lines of a case",
			ArgsUsage:       "<case_number>",
			SkipFlagParsing: true,
			Action:          r.detail,
		},
		{
			Name:            "supplier",
			Usage:           "Search suppliers; lists all without a keyword",
			ArgsUsage:       "[keyword]",
			SkipFlagParsing: true,
			Action:          r.supplier,
		},
		{
			Name:            "credit",
			Usage:           "Search customer credit; lists all without a keyword",
			ArgsUsage:       "[keyword]",
			SkipFlagParsing: true,
			Action:          r.credit,
		},
		{
			Name:         "summary",
			Usage:        "Show table sizes and grouped counts",
			Action:       r.summary,
			OnUsageError: usageError,
		},
		{
			Name:         "extract",
			Usage:        "Convert the ledger workbook into CSV tables",
			Action:       r.extract,
			OnUsageError: usageError,
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:    "source",
					Aliases: []string{"s"},
					Usage:   "Path to the workbook (default from LEDGER_SOURCE_FILE)",
				},
			},
		},
	}
}

// parse reads a command's raw arguments, warning about ignored flags.
func (r *runner) parse(c *cli.Context, schema argSchema) (*request, error) {
	req, err := schema.parse(c.Args().Slice())
	if err != nil {
		return nil, err
	}
	for _, name := range req.ignored {
		r.logger.Warn("ignoring unknown flag", "command", c.Command.Name, "flag", "--"+name)
	}
	return req, nil
}

// guide prints msg for a missing-input error and swallows it.
func guide(c *cli.Context, err error, msg string) error {
	if errors.Is(err, core.ErrMissingInput) {
		fmt.Fprintln(c.App.Writer, msg)
		return nil
	}
	return err
}

// search opens the ledger for one command and runs fn against it.
func (r *runner) search(c *cli.Context, fn func(context.Context, *query.Engine, *format.Printer) error) error {
	l, err := ledger.Open(r.cfg.DataDir,
		ledger.WithLoadWorkers(r.cfg.LoadWorkers),
		ledger.WithLogger(r.logger),
	)
	if err != nil {
		return err
	}
	defer l.Close()

	p := format.NewPrinter(c.App.Writer,
		format.WithDetailThreshold(r.cfg.DetailThreshold),
		format.WithMaxColumnWidth(r.cfg.MaxColumnWidth),
	)
	return fn(c.Context, l.Engine(), p)
}

func (r *runner) product(c *cli.Context) error {
	req, err := r.parse(c, productArgs)
	if err != nil {
		return guide(c, err, needKeyword)
	}
	q := query.ProductQuery{
		ID:       req.flag("id"),
		Supplier: req.flag("supplier"),
		Category: req.flag("category"),
		Keyword:  req.keyword(),
	}
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		results, err := e.Products(ctx, q)
		if err != nil {
			return guide(c, err, needKeyword)
		}
		return p.Products(results)
	})
}

func (r *runner) cases(c *cli.Context) error {
	req, err := r.parse(c, keywordArgs)
	if err != nil {
		return guide(c, err, needKeyword)
	}
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		res, err := e.Cases(ctx, req.keyword())
		if err != nil {
			return guide(c, err, needKeyword)
		}
		p.Cases(res)
		return nil
	})
}

func (r *runner) detail(c *cli.Context) error {
	req, err := r.parse(c, keywordArgs)
	if err != nil {
		return guide(c, err, needCaseNumber)
	}
	// The lookup takes a single case number; further tokens are ignored.
	caseNumber := req.first()
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		res, err := e.CaseDetail(ctx, caseNumber)
		if err != nil {
			return guide(c, err, needCaseNumber)
		}
		return p.CaseDetail(caseNumber, res)
	})
}

func (r *runner) supplier(c *cli.Context) error {
	req, err := r.parse(c, keywordArgs)
	if err != nil {
		return err
	}
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		listing, err := e.Suppliers(ctx, req.keyword())
		if err != nil {
			return err
		}
		p.Suppliers(listing)
		return nil
	})
}

func (r *runner) credit(c *cli.Context) error {
	req, err := r.parse(c, keywordArgs)
	if err != nil {
		return err
	}
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		listing, err := e.Credit(ctx, req.keyword())
		if err != nil {
			return err
		}
		return p.Credit(listing)
	})
}

func (r *runner) summary(c *cli.Context) error {
	return r.search(c, func(ctx context.Context, e *query.Engine, p *format.Printer) error {
		s, err := e.Summary(ctx)
		if err != nil {
			return err
		}
		p.Summary(s)
		return nil
	})
}

func (r *runner) extract(c *cli.Context) error {
	source := r.cfg.SourceFile
	if c.IsSet("source") {
		source = c.String("source")
	}

	x, err := extract.NewExtractor(r.cfg.DataDir, extract.WithLogger(r.logger))
	if err != nil {
		return err
	}
	results, err := x.Extract(c.Context, source)
	if err != nil {
		return err
	}
	for _, res := range results {
		fmt.Fprintf(c.App.Writer, "%s.csv: %d rows\n", res.Table, res.Rows)
	}
	fmt.Fprintln(c.App.Writer, "\nAll CSVs generated")
	return nil
}

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
	"fmt"
	"log/slog"

	"github.com/poiesic/ledger/config"
	"github.com/urfave/cli/v2"
)

const description = `Commands:
  product <keyword>            商品名・特徴・仕入先で検索
  product --supplier <name>    仕入先で絞り込み
  product --category <cat>     大分類で絞り込み
  product --id <product_id>    商品連番で検索
  case <keyword>               案件番号・顧客名・商材で検索
  detail <case_number>         案件明細の詳細表示
  supplier [keyword]           仕入先検索
  credit [keyword]             与信情報検索
  summary                      全体サマリー
  extract [--source file]      台帳ブックからCSVを生成`

// runner carries state from the Before hook into command actions.
type runner struct {
	cfg    *config.Config
	logger *slog.Logger
}

// NewApp creates the ledger command line application.
func NewApp() *cli.App {
	r := &runner{
		cfg:    config.DefaultConfig(),
		logger: slog.Default(),
	}
	return &cli.App{
		Name:        "ledger",
		Usage:       "受発注管理台帳 検索CLI",
		UsageText:   "ledger [global options] <command> [keyword...] [--flag value]",
		Description: description,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "data-dir",
				Aliases: []string{"d"},
				Usage:   "Directory holding the extracted CSV tables (default data/processed)",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
			},
			&cli.IntFlag{
				Name:    "workers",
				Aliases: []string{"w"},
				Usage:   "Number of tables to load concurrently",
			},
		},
		Before:       r.setup,
		Action:       r.unknown,
		OnUsageError: usageError,
		Commands:     r.commands(),
	}
}

// setup loads the configuration, lets global flags override it and
// installs the logger.
func (r *runner) setup(c *cli.Context) error {
	var opts []config.Option
	if c.IsSet("data-dir") {
		opts = append(opts, config.WithDataDir(c.String("data-dir")))
	}
	if c.IsSet("log-level") {
		opts = append(opts, config.WithLogLevel(c.String("log-level")))
	}
	if c.IsSet("workers") {
		opts = append(opts, config.WithLoadWorkers(c.Int("workers")))
	}

	cfg, err := config.Load(opts...)
	if err != nil {
		return err
	}

	logger := slog.New(slog.NewTextHandler(c.App.ErrWriter, &slog.HandlerOptions{
		Level: cfg.Level(),
	}))
	slog.SetDefault(logger)

	r.cfg = cfg
	r.logger = logger
	r.logger.Debug("configuration loaded", "data_dir", cfg.DataDir, "workers", cfg.LoadWorkers)
	return nil
}

// unknown handles a missing or unrecognized command by printing usage.
func (r *runner) unknown(c *cli.Context) error {
	if name := c.Args().First(); name != "" {
		fmt.Fprintf(c.App.Writer, "不明なコマンド: %s\n\n", name)
	}
	return cli.ShowAppHelp(c)
}

// usageError reports a malformed command line with the usage text. Like an
// unknown command it is informational and does not fail the run.
func usageError(c *cli.Context, err error, _ bool) error {
	fmt.Fprintf(c.App.Writer, "不正なオプション: %v\n\n", err)
	return cli.ShowAppHelp(c)
}

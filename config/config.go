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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the settings shared by every ledger command.
type Config struct {
	// DataDir is the directory holding the extracted <table>.csv files.
	DataDir string `envconfig:"LEDGER_DATA_DIR" default:"data/processed" validate:"required"`

	// SourceFile is the workbook read by the extract command.
	SourceFile string `envconfig:"LEDGER_SOURCE_FILE" default:"data/raw/受発注管理台帳.xlsx" validate:"required"`

	// LogLevel is one of debug, info, warn or error.
	LogLevel string `envconfig:"LEDGER_LOG_LEVEL" default:"warn" validate:"oneof=debug info warn error"`

	// LoadWorkers sizes the table loading pool. Zero picks a size from the
	// number of CPUs.
	LoadWorkers int `envconfig:"LEDGER_LOAD_WORKERS" default:"0" validate:"gte=0,lte=64"`

	// DetailThreshold is the largest product result set that still gets
	// per-product detail blocks.
	DetailThreshold int `envconfig:"LEDGER_DETAIL_THRESHOLD" default:"5" validate:"gte=0"`

	// MaxColumnWidth caps table cells, in terminal cells. Zero disables it.
	MaxColumnWidth int `envconfig:"LEDGER_MAX_COLUMN_WIDTH" default:"50" validate:"gte=0"`
}

// Option is a functional option for configuring a Config.
type Option func(*Config)

// WithDataDir sets the CSV data directory.
func WithDataDir(dir string) Option {
	return func(c *Config) {
		c.DataDir = dir
	}
}

// WithSourceFile sets the workbook path.
func WithSourceFile(path string) Option {
	return func(c *Config) {
		c.SourceFile = path
	}
}

// WithLogLevel sets the logging level.
func WithLogLevel(level string) Option {
	return func(c *Config) {
		c.LogLevel = level
	}
}

// WithLoadWorkers sets the table loading pool size.
func WithLoadWorkers(n int) Option {
	return func(c *Config) {
		c.LoadWorkers = n
	}
}

// WithDetailThreshold sets the product detail threshold.
func WithDetailThreshold(n int) Option {
	return func(c *Config) {
		c.DetailThreshold = n
	}
}

// WithMaxColumnWidth sets the table cell width cap.
func WithMaxColumnWidth(n int) Option {
	return func(c *Config) {
		c.MaxColumnWidth = n
	}
}

// DefaultConfig returns the configuration used when nothing is set.
func DefaultConfig() *Config {
	return &Config{
		DataDir:         "data/processed",
		SourceFile:      "data/raw/受発注管理台帳.xlsx",
		LogLevel:        "warn",
		DetailThreshold: 5,
		MaxColumnWidth:  50,
	}
}

// NewConfig creates a Config from the defaults and applies opts.
func NewConfig(opts ...Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Load builds a Config from a .env file in the working directory (if
// any), the LEDGER_* environment variables and finally opts, which take
// precedence. The result is validated.
func Load(opts ...Option) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("config: reading .env: %w", err)
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Normalize puts the configuration in canonical form.
func (c *Config) Normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.DataDir != "" {
		c.DataDir = filepath.Clean(c.DataDir)
	}
	if c.SourceFile != "" {
		c.SourceFile = filepath.Clean(c.SourceFile)
	}
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Validate normalizes the configuration and checks it.
func (c *Config) Validate() error {
	c.Normalize()

	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return fmt.Errorf("config: invalid %s %q (%s %s)", fe.Field(), fmt.Sprint(fe.Value()), fe.Tag(), fe.Param())
		}
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Level maps LogLevel to a slog level.
func (c *Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

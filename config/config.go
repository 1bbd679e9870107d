// SPDX-License-Identifier: MIT
// Package config loads the layoffs tool configuration with priority
// env > file > defaults. Files are YAML; a .env file in the working directory
// is read into the environment first when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is the root configuration.
type Config struct {
	Input  Input  `yaml:"input"`
	Report Report `yaml:"report"`
	Log    Log    `yaml:"log"`
}

// Input describes the CSV layout consumed by the loader.
type Input struct {
	// Delimiter is the single-character field separator.
	Delimiter string `yaml:"delimiter" validate:"required"`

	// HasHeader skips the first non-blank line.
	HasHeader bool `yaml:"has_header"`

	// Columns holds zero-based field indexes.
	Columns Columns `yaml:"columns"`
}

// Columns maps record fields to zero-based CSV column indexes.
type Columns struct {
	Company  int `yaml:"company" validate:"gte=0"`
	Industry int `yaml:"industry" validate:"gte=0"`
	Layoffs  int `yaml:"layoffs" validate:"gte=0"`
	Date     int `yaml:"date" validate:"gte=0"`

	// Peer is the second company of a relation row (graph input).
	Peer int `yaml:"peer" validate:"gte=0"`
}

// Report tunes aggregation and rendering.
type Report struct {
	// Workers bounds the per-industry fan-out; 0 means unbounded.
	Workers int `yaml:"workers" validate:"gte=0"`

	// Sorted renders industries and clusters in a deterministic order.
	Sorted bool `yaml:"sorted"`
}

// Log configures the console logger.
type Log struct {
	Debug bool `yaml:"debug"`
}

// Default returns the configuration matching the common layoffs.csv export:
// company,location,industry,total_laid_off,percentage_laid_off,date,...
func Default() Config {
	return Config{
		Input: Input{
			Delimiter: ",",
			HasHeader: true,
			Columns: Columns{
				Company:  0,
				Peer:     1,
				Industry: 2,
				Layoffs:  3,
				Date:     5,
			},
		},
		Report: Report{
			Workers: 0,
			Sorted:  false,
		},
	}
}

// Comma returns the delimiter as a rune.
func (in Input) Comma() rune {
	r, _ := utf8.DecodeRuneInString(in.Delimiter)
	return r
}

// MinFields returns the number of fields a ledger row needs.
func (in Input) MinFields() int {
	c := in.Columns
	return max(c.Company, c.Industry, c.Layoffs, c.Date) + 1
}

// MinEdgeFields returns the number of fields a relation row needs.
func (in Input) MinEdgeFields() int {
	return max(in.Columns.Company, in.Columns.Peer) + 1
}

var validate = validator.New()

// Validate checks struct constraints and the single-rune delimiter.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if utf8.RuneCountInString(c.Input.Delimiter) != 1 {
		return fmt.Errorf("%w: delimiter %q must be a single character", ErrInvalidConfig, c.Input.Delimiter)
	}
	switch c.Input.Comma() {
	case '"', '\r', '\n', utf8.RuneError:
		return fmt.Errorf("%w: delimiter %q is not allowed", ErrInvalidConfig, c.Input.Delimiter)
	}

	return nil
}

// Load builds a Config from defaults, then the YAML file at path (skipped when
// path is empty or the file does not exist), then LAYOFFS_* environment
// variables, and validates the result.
func Load(path string) (Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		if err := loadFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: load %q: %w", path, err)
		}
	}
	loadEnv(&cfg)

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(data, cfg)
}

func loadEnv(cfg *Config) {
	if v, ok := os.LookupEnv("LAYOFFS_DELIMITER"); ok {
		cfg.Input.Delimiter = v
	}
	if v, ok := os.LookupEnv("LAYOFFS_HAS_HEADER"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Input.HasHeader = b
		}
	}
	envInt("LAYOFFS_COMPANY_COLUMN", &cfg.Input.Columns.Company)
	envInt("LAYOFFS_INDUSTRY_COLUMN", &cfg.Input.Columns.Industry)
	envInt("LAYOFFS_LAYOFFS_COLUMN", &cfg.Input.Columns.Layoffs)
	envInt("LAYOFFS_DATE_COLUMN", &cfg.Input.Columns.Date)
	envInt("LAYOFFS_PEER_COLUMN", &cfg.Input.Columns.Peer)
	envInt("LAYOFFS_WORKERS", &cfg.Report.Workers)
	if v, ok := os.LookupEnv("LAYOFFS_SORTED"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Report.Sorted = b
		}
	}
	if v, ok := os.LookupEnv("LAYOFFS_DEBUG"); ok {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Log.Debug = b
		}
	}
}

// envInt overwrites dst when key holds a valid integer.
func envInt(key string, dst *int) {
	if v, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(v); err == nil {
			*dst = i
		}
	}
}

// seehuhn.de/go/daftarhadir - attendance sheets for daily casual workers
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads the settings of the daftar-hadir tools.
//
// Settings are taken from built-in defaults, an optional TOML file, an
// optional .env file and the environment, in this order.  Later sources
// override earlier ones.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/caarlos0/env"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/sirupsen/logrus"

	"seehuhn.de/go/daftarhadir/sheet"
)

// Config holds all settings.
type Config struct {
	Institution string `toml:"institution" env:"DAFTARHADIR_INSTITUTION"`
	City        string `toml:"city" env:"DAFTARHADIR_CITY"`
	Locale      string `toml:"locale" env:"DAFTARHADIR_LOCALE"`

	// TimeZone, if set, is the IANA zone in which timestamps in requests
	// are converted to dates.  Otherwise the offset of each timestamp is
	// used.
	TimeZone string `toml:"time_zone" env:"DAFTARHADIR_TIME_ZONE"`

	OutputDir string `toml:"output_dir" env:"DAFTARHADIR_OUTPUT_DIR"`
	Listen    string `toml:"listen" env:"DAFTARHADIR_LISTEN"`
	LogLevel  string `toml:"log_level" env:"DAFTARHADIR_LOG_LEVEL"`

	// Limits for the HTTP server.  Zero disables a limit.
	MaxBodyBytes int `toml:"max_body_bytes" env:"DAFTARHADIR_MAX_BODY_BYTES"`
	MaxDays      int `toml:"max_days" env:"DAFTARHADIR_MAX_DAYS"`

	Signatories Signatories `toml:"signatories"`
}

// Signatories configures the signature block of the sheet.
// The fields correspond to those of [sheet.Signatories].
type Signatories struct {
	ApproverTitle string `toml:"approver_title" env:"DAFTARHADIR_APPROVER_TITLE"`
	ApproverRole  string `toml:"approver_role" env:"DAFTARHADIR_APPROVER_ROLE"`
	ApproverName  string `toml:"approver_name" env:"DAFTARHADIR_APPROVER_NAME"`
	PayerTitle    string `toml:"payer_title" env:"DAFTARHADIR_PAYER_TITLE"`
	VerifierTitle string `toml:"verifier_title" env:"DAFTARHADIR_VERIFIER_TITLE"`
	PreparerTitle string `toml:"preparer_title" env:"DAFTARHADIR_PREPARER_TITLE"`
	PreparerRole  string `toml:"preparer_role" env:"DAFTARHADIR_PREPARER_ROLE"`
	PreparerName  string `toml:"preparer_name" env:"DAFTARHADIR_PREPARER_NAME"`
}

// Default returns the built-in settings.
func Default() *Config {
	opt := (*sheet.Options)(nil).WithDefaults()
	return &Config{
		Institution: opt.Institution,
		City:        opt.City,
		Locale:      "en",
		OutputDir:   ".",
		Listen:      ":8080",
		LogLevel:    "info",

		MaxBodyBytes: 64 << 10,
		MaxDays:      366,

		Signatories: Signatories(opt.Signatories),
	}
}

// Load reads the settings.
//
// If path is non-empty, the TOML file at path is read; a missing file is
// an error in this case.  If envFile is non-empty and the file exists, the
// variables defined there are added to the environment.  Variables which
// are already set take precedence over the .env file.
func Load(path, envFile string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		err = toml.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
	}

	if envFile != "" {
		err := godotenv.Load(envFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", envFile, err)
		}
	}

	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}
	err = env.Parse(&cfg.Signatories)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

// SheetOptions returns the sheet settings.
func (cfg *Config) SheetOptions() sheet.Options {
	return sheet.Options{
		Institution: cfg.Institution,
		City:        cfg.City,
		Locale:      sheet.MatchLocale(cfg.Locale),
		Signatories: sheet.Signatories(cfg.Signatories),
	}
}

// Location returns the configured time zone, or nil if none is set.
func (cfg *Config) Location() (*time.Location, error) {
	if cfg.TimeZone == "" {
		return nil, nil
	}
	return time.LoadLocation(cfg.TimeZone)
}

// Level returns the configured log level.
// Unknown level names are an error.
func (cfg *Config) Level() (logrus.Level, error) {
	if cfg.LogLevel == "" {
		return logrus.InfoLevel, nil
	}
	return logrus.ParseLevel(cfg.LogLevel)
}

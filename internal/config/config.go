// Package config loads and saves the TOML configuration: the three
// rate parameters, the default date-range bounds and the ledger file.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/derive"
)

const (
	// AppName is the application name used for the config directory
	AppName = "allowance"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// Config represents the application configuration.
type Config struct {
	// InlandRate is the daily per-diem for domestic remote work
	InlandRate float64 `toml:"inland_rate"`
	// ForeignRate is the daily per-diem for foreign remote work
	ForeignRate float64 `toml:"foreign_rate"`
	// KmRate is the travel reimbursement per kilometer
	KmRate float64 `toml:"km_rate"`
	// FromDate is the default range start used when seeding (YYYY-MM-DD)
	FromDate string `toml:"from_date"`
	// ToDate is the default range end used when seeding (YYYY-MM-DD)
	ToDate string `toml:"to_date"`
	// LedgerFile is the default ledger CSV path
	LedgerFile string `toml:"ledger_file"`
}

// DefaultConfig returns a Config with sensible defaults:
// the statutory German home-office/foreign per-diem amounts, the
// common 0.30 per-km rate, and the current calendar month as range.
func DefaultConfig() Config {
	now := time.Now()
	first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	return Config{
		InlandRate:  14.0,
		ForeignRate: 28.0,
		KmRate:      0.30,
		FromDate:    first.Format("2006-01-02"),
		ToDate:      last.Format("2006-01-02"),
		LedgerFile:  "events_with_per_diem_and_travel.csv",
	}
}

// GetConfigPath returns the path to the config file.
// Uses os.UserConfigDir() for cross-platform XDG-compliant config
// directory. Creates the config directory if it doesn't exist.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)

	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// Load reads and validates a config file. Fields missing from the
// file keep their defaults.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("failed to parse config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadOrDefault reads the config file, returning defaults when the
// file does not exist.
func LoadOrDefault(path string) (Config, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Save writes the configuration as TOML.
func Save(path string, cfg Config) error {
	if err := cfg.validate(); err != nil {
		return err
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	return toml.NewEncoder(file).Encode(cfg)
}

// Rates converts the configured float rates into the decimal form the
// derivation engine works with.
func (c Config) Rates() derive.Rates {
	return derive.Rates{
		Inland:  decimal.NewFromFloat(c.InlandRate),
		Foreign: decimal.NewFromFloat(c.ForeignRate),
		Km:      decimal.NewFromFloat(c.KmRate),
	}
}

func (c Config) validate() error {
	if c.InlandRate < 0 {
		return fmt.Errorf("inland_rate must not be negative, got %v", c.InlandRate)
	}
	if c.ForeignRate < 0 {
		return fmt.Errorf("foreign_rate must not be negative, got %v", c.ForeignRate)
	}
	if c.KmRate < 0 {
		return fmt.Errorf("km_rate must not be negative, got %v", c.KmRate)
	}
	return nil
}

// Package service bundles the operations the front ends (CLI commands
// and the TUI) perform against the ledger and the configuration.
package service

import (
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/config"
)

// Services holds all service instances used by the application
type Services struct {
	Ledger *LedgerService
	Config *ConfigService
}

// NewServices creates a new Services instance with the default config path
func NewServices() (*Services, error) {
	configPath, err := config.GetConfigPath()
	if err != nil {
		return nil, err
	}

	cfg, err := config.LoadOrDefault(configPath)
	if err != nil {
		return nil, err
	}

	return NewServicesWithConfig(configPath, cfg), nil
}

// NewServicesWithConfig creates a new Services instance with a custom
// config path and configuration (useful for testing)
func NewServicesWithConfig(configPath string, cfg config.Config) *Services {
	return &Services{
		Ledger: NewLedgerService(cfg),
		Config: NewConfigService(configPath, cfg),
	}
}

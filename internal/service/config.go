package service

import (
	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/config"
)

// ConfigService provides read and update access to the configuration
type ConfigService struct {
	path string
	cfg  config.Config
}

// NewConfigService creates a new ConfigService
func NewConfigService(path string, cfg config.Config) *ConfigService {
	return &ConfigService{path: path, cfg: cfg}
}

// Get returns the current configuration
func (s *ConfigService) Get() config.Config {
	return s.cfg
}

// Path returns the config file location
func (s *ConfigService) Path() string {
	return s.path
}

// Update persists a new configuration and keeps it as the current one
func (s *ConfigService) Update(cfg config.Config) error {
	if err := config.Save(s.path, cfg); err != nil {
		return err
	}
	s.cfg = cfg
	return nil
}

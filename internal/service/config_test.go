package service

import (
	"path/filepath"
	"testing"

	"github.com/kevinveenbirkenbach/de-remote-onsite-allowance-calc/internal/config"
)

func TestConfigService_GetAndPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()

	svc := NewConfigService(path, cfg)
	if svc.Path() != path {
		t.Errorf("Path() = %q, expected %q", svc.Path(), path)
	}
	if svc.Get() != cfg {
		t.Errorf("Get() = %+v, expected %+v", svc.Get(), cfg)
	}
}

func TestConfigService_Update(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	svc := NewConfigService(path, config.DefaultConfig())

	updated := config.DefaultConfig()
	updated.KmRate = 0.42
	if err := svc.Update(updated); err != nil {
		t.Fatalf("Update() returned unexpected error: %v", err)
	}
	if svc.Get().KmRate != 0.42 {
		t.Errorf("Get().KmRate = %v, expected 0.42", svc.Get().KmRate)
	}

	loaded, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load() returned unexpected error: %v", err)
	}
	if loaded.KmRate != 0.42 {
		t.Errorf("persisted KmRate = %v, expected 0.42", loaded.KmRate)
	}
}

func TestConfigService_UpdateRejectsInvalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	original := config.DefaultConfig()
	svc := NewConfigService(path, original)

	bad := original
	bad.InlandRate = -1
	if err := svc.Update(bad); err == nil {
		t.Fatal("Update() expected an error for negative rate")
	}
	if svc.Get() != original {
		t.Error("failed Update() must not replace the current config")
	}
}

func TestNewServicesWithConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg := config.DefaultConfig()
	cfg.LedgerFile = filepath.Join(t.TempDir(), "ledger.csv")

	services := NewServicesWithConfig(path, cfg)
	if services.Ledger == nil || services.Config == nil {
		t.Fatal("services not fully initialized")
	}
	if services.Ledger.File() != cfg.LedgerFile {
		t.Errorf("Ledger.File() = %q", services.Ledger.File())
	}
	if services.Config.Path() != path {
		t.Errorf("Config.Path() = %q", services.Config.Path())
	}
}

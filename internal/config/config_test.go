package config

import (
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test reconstruction defaults
	if cfg.Reconstruction.Selector != "first-k" {
		t.Errorf("expected selector 'first-k', got %s", cfg.Reconstruction.Selector)
	}
	if cfg.Reconstruction.CrossValidate {
		t.Errorf("expected cross_validate disabled by default")
	}
	if cfg.Reconstruction.Strict {
		t.Errorf("expected strict disabled by default")
	}
	if cfg.Reconstruction.Workers != 4 {
		t.Errorf("expected workers 4, got %d", cfg.Reconstruction.Workers)
	}

	// Test output defaults
	if cfg.Output.Format != "text" {
		t.Errorf("expected output format 'text', got %s", cfg.Output.Format)
	}
	if !cfg.Output.Color {
		t.Errorf("expected color enabled by default")
	}

	// Test store defaults
	if cfg.Store.Enabled {
		t.Errorf("expected store disabled by default")
	}
	if cfg.Store.Path != "gosecret.db" {
		t.Errorf("expected store path 'gosecret.db', got %s", cfg.Store.Path)
	}

	// Test logging defaults
	if cfg.Logging.Level != "warn" {
		t.Errorf("expected logging level 'warn', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Output != "stderr" {
		t.Errorf("expected logging output 'stderr', got %s", cfg.Logging.Output)
	}

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should be valid, got: %v", err)
	}
}

func TestApplyOverrides(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{
		LogLevel:     "debug",
		LogFormat:    "json",
		OutputFormat: "json",
		NoColor:      true,
		Selector:     "last-k",
		Workers:      8,
		StorePath:    "/tmp/history.db",
	})

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.Format != "json" {
		t.Errorf("expected log format 'json', got %s", cfg.Logging.Format)
	}
	if cfg.Output.Format != "json" {
		t.Errorf("expected output format 'json', got %s", cfg.Output.Format)
	}
	if cfg.Output.Color {
		t.Errorf("expected color disabled")
	}
	if cfg.Reconstruction.Selector != "last-k" {
		t.Errorf("expected selector 'last-k', got %s", cfg.Reconstruction.Selector)
	}
	if cfg.Reconstruction.Workers != 8 {
		t.Errorf("expected workers 8, got %d", cfg.Reconstruction.Workers)
	}
	if !cfg.Store.Enabled || cfg.Store.Path != "/tmp/history.db" {
		t.Errorf("expected store enabled at /tmp/history.db, got %+v", cfg.Store)
	}
	if cfg.Reconstruction.CrossValidate {
		t.Errorf("cross_validate should be untouched")
	}
}

func TestApplyOverrides_StrictImpliesCrossValidate(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{Strict: true})

	if !cfg.Reconstruction.Strict || !cfg.Reconstruction.CrossValidate {
		t.Errorf("expected strict and cross_validate enabled, got %+v", cfg.Reconstruction)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("unexpected validation error: %v", err)
	}
}

func TestApplyOverrides_ZeroValuesKeepConfig(t *testing.T) {
	cfg := DefaultConfig()
	cfg.ApplyOverrides(Overrides{})

	want := DefaultConfig()
	if *cfg != *want {
		t.Errorf("empty overrides changed config: %+v", cfg)
	}
}

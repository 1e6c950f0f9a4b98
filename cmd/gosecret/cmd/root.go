package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/dbsmedya/gosecret/internal/config"
	"github.com/dbsmedya/gosecret/internal/logger"
)

// Version information (set via ldflags at build time)
var (
	Version = "0.0.1-dev"
	Commit  = "unknown"
)

const defaultConfigFile = "gosecret.yaml"

// CLI flags that override config file values
var (
	cfgFile      string
	logLevel     string
	logFormat    string
	outputFormat string
	noColor      bool
)

var rootCmd = &cobra.Command{
	Use:   "gosecret",
	Short: "Threshold secret reconstruction from base-encoded shares",
	Long: `A CLI tool that recovers the constant term of a polynomial from a
threshold of its points, where each point's value is written in a base
between 2 and 36.

Features:
  - Exact decoding of arbitrarily long digit strings
  - Lagrange interpolation at zero over exact rationals
  - Per-share error isolation with a sufficiency verdict
  - Optional cross-validation of surplus shares
  - Result history in a local database`,
	Version:      Version,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	// Config file flag
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", defaultConfigFile,
		"Path to configuration file (optional unless set explicitly)")

	// Logging overrides
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "",
		"Override log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "",
		"Override log format (json, text)")

	// Output overrides
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "format", "f", "",
		"Override output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable coloured output")
}

// GetConfigFile returns the config file path
func GetConfigFile() string {
	return cfgFile
}

// GetCLIOverrides returns the global flag override values. Commands add
// their own flags on top.
func GetCLIOverrides() config.Overrides {
	return config.Overrides{
		LogLevel:     logLevel,
		LogFormat:    logFormat,
		OutputFormat: outputFormat,
		NoColor:      noColor,
	}
}

// loadConfig reads the config file, applies overrides and validates the
// result. A missing file is only an error when --config was given.
func loadConfig(overrides config.Overrides) (*config.Config, error) {
	configFile := GetConfigFile()

	var (
		cfg *config.Config
		err error
	)
	if rootCmd.PersistentFlags().Changed("config") {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadOptional(configFile)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	cfg.ApplyOverrides(overrides)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setup loads the configuration and builds the logger.
func setup(overrides config.Overrides) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(overrides)
	if err != nil {
		return nil, nil, err
	}

	log, err := logger.New(&cfg.Logging)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	return cfg, log, nil
}

// Package config provides configuration structures and loading for gosecret.
package config

// Config represents the complete application configuration.
type Config struct {
	Reconstruction ReconstructionConfig `yaml:"reconstruction" mapstructure:"reconstruction"`
	Output         OutputConfig         `yaml:"output" mapstructure:"output"`
	Store          StoreConfig          `yaml:"store" mapstructure:"store"`
	Logging        LoggingConfig        `yaml:"logging" mapstructure:"logging"`
}

// ReconstructionConfig controls how secrets are recovered.
type ReconstructionConfig struct {
	Selector      string `yaml:"selector" mapstructure:"selector"`             // first-k or last-k
	CrossValidate bool   `yaml:"cross_validate" mapstructure:"cross_validate"` // check unselected shares
	Strict        bool   `yaml:"strict" mapstructure:"strict"`                 // fail the case on inconsistent shares
	Workers       int    `yaml:"workers" mapstructure:"workers"`               // cases solved in parallel
}

// OutputConfig represents result rendering settings.
type OutputConfig struct {
	Format string `yaml:"format" mapstructure:"format"` // text or json
	Color  bool   `yaml:"color" mapstructure:"color"`
}

// StoreConfig represents the result history store.
type StoreConfig struct {
	Enabled bool   `yaml:"enabled" mapstructure:"enabled"`
	Path    string `yaml:"path" mapstructure:"path"`
}

// LoggingConfig represents logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`   // debug, info, warn, error
	Format string `yaml:"format" mapstructure:"format"` // json or text
	Output string `yaml:"output" mapstructure:"output"` // stdout, stderr, or file path
}

// DefaultConfig returns a Config with sensible default values.
func DefaultConfig() *Config {
	return &Config{
		Reconstruction: ReconstructionConfig{
			Selector:      "first-k",
			CrossValidate: false,
			Strict:        false,
			Workers:       4,
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
		Store: StoreConfig{
			Enabled: false,
			Path:    "gosecret.db",
		},
		Logging: LoggingConfig{
			Level:  "warn",
			Format: "text",
			Output: "stderr",
		},
	}
}

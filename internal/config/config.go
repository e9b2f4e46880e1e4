package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Output formats
const (
	FormatText = "text"
	FormatYAML = "yaml"
	FormatJSON = "json"
	FormatCBOR = "cbor"
)

// Log formats
const (
	LogFormatConsole = "console"
	LogFormatJSON    = "json"
)

// Config represents the arrakis CLI configuration
type Config struct {
	// Logging configuration
	Log LogConfig `yaml:"log"`

	// Random source configuration
	Random RandomConfig `yaml:"random"`

	// Result output configuration
	Output OutputConfig `yaml:"output"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	Level  string `yaml:"level" env:"ARRAKIS_LOG_LEVEL"`
	Format string `yaml:"format" env:"ARRAKIS_LOG_FORMAT"` // "console" or "json"
}

// RandomConfig represents random source configuration
type RandomConfig struct {
	// Seed makes runs reproducible; 0 draws from the process-wide generator
	Seed uint64 `yaml:"seed" env:"ARRAKIS_SEED"`
}

// OutputConfig represents result output configuration
type OutputConfig struct {
	Format string `yaml:"format" env:"ARRAKIS_OUTPUT_FORMAT"` // "text", "yaml", "json" or "cbor"
}

// LoadConfig loads configuration from a YAML file and applies environment overrides
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.ApplyEnv(); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// ApplyEnv overrides fields from ARRAKIS_* environment variables
func (c *Config) ApplyEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("failed to parse environment: %w", err)
	}
	return nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Log.Level == "" {
		return fmt.Errorf("log level is required")
	}

	switch c.Log.Format {
	case LogFormatConsole, LogFormatJSON:
	default:
		return fmt.Errorf("invalid log format: %q", c.Log.Format)
	}

	if err := ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}

	return nil
}

// ValidateOutputFormat checks a result output format name
func ValidateOutputFormat(format string) error {
	switch format {
	case FormatText, FormatYAML, FormatJSON, FormatCBOR:
		return nil
	default:
		return fmt.Errorf("invalid output format: %q", format)
	}
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "info",
			Format: LogFormatConsole,
		},
		Random: RandomConfig{
			Seed: 0,
		},
		Output: OutputConfig{
			Format: FormatText,
		},
	}
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(config *Config, path string) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

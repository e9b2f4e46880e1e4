package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tradeverifyd/arrakis/internal/config"
)

// TestDefaultConfig tests default configuration
func TestDefaultConfig(t *testing.T) {
	t.Run("creates default config", func(t *testing.T) {
		cfg := config.DefaultConfig()

		if cfg == nil {
			t.Fatal("expected non-nil config")
		}

		if cfg.Log.Level == "" {
			t.Error("expected non-empty log level")
		}

		if cfg.Output.Format != config.FormatText {
			t.Errorf("expected text output, got %s", cfg.Output.Format)
		}

		if cfg.Random.Seed != 0 {
			t.Errorf("expected nondeterministic seed, got %d", cfg.Random.Seed)
		}
	})

	t.Run("default config is valid", func(t *testing.T) {
		cfg := config.DefaultConfig()

		err := cfg.Validate()
		if err != nil {
			t.Errorf("default config should be valid: %v", err)
		}
	})
}

// TestConfigValidation tests configuration validation
func TestConfigValidation(t *testing.T) {
	t.Run("rejects empty log level", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Level = ""

		if err := cfg.Validate(); err == nil {
			t.Error("should reject empty log level")
		}
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Format = "xml"

		if err := cfg.Validate(); err == nil {
			t.Error("should reject unknown log format")
		}
	})

	t.Run("rejects unknown output format", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Output.Format = "toml"

		if err := cfg.Validate(); err == nil {
			t.Error("should reject unknown output format")
		}
	})

	t.Run("accepts every output format", func(t *testing.T) {
		for _, format := range []string{config.FormatText, config.FormatYAML, config.FormatJSON, config.FormatCBOR} {
			if err := config.ValidateOutputFormat(format); err != nil {
				t.Errorf("format %s should be valid: %v", format, err)
			}
		}
	})

	t.Run("accepts valid config", func(t *testing.T) {
		cfg := &config.Config{
			Log: config.LogConfig{
				Level:  "debug",
				Format: config.LogFormatJSON,
			},
			Random: config.RandomConfig{
				Seed: 7,
			},
			Output: config.OutputConfig{
				Format: config.FormatYAML,
			},
		}

		if err := cfg.Validate(); err != nil {
			t.Errorf("valid config should pass validation: %v", err)
		}
	})
}

// TestConfigSaveLoad tests saving and loading configuration
func TestConfigSaveLoad(t *testing.T) {
	t.Run("can save and load config", func(t *testing.T) {
		tempDir := t.TempDir()
		configPath := filepath.Join(tempDir, "arrakis.yaml")

		original := config.DefaultConfig()
		original.Random.Seed = 1965
		original.Output.Format = config.FormatJSON

		if err := config.SaveConfig(original, configPath); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Random.Seed != 1965 {
			t.Errorf("seed mismatch: expected 1965, got %d", loaded.Random.Seed)
		}

		if loaded.Output.Format != config.FormatJSON {
			t.Errorf("output format mismatch: expected json, got %s", loaded.Output.Format)
		}

		if loaded.Log.Level != original.Log.Level {
			t.Errorf("log level mismatch")
		}
	})

	t.Run("fills missing sections with defaults", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "partial.yaml")
		_ = os.WriteFile(configPath, []byte("random:\n  seed: 3\n"), 0644)

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Random.Seed != 3 {
			t.Errorf("expected seed 3, got %d", loaded.Random.Seed)
		}
		if loaded.Output.Format != config.FormatText {
			t.Errorf("expected default output format, got %s", loaded.Output.Format)
		}
	})

	t.Run("returns error for non-existent file", func(t *testing.T) {
		_, err := config.LoadConfig("/nonexistent/arrakis.yaml")
		if err == nil {
			t.Error("should return error for non-existent file")
		}
	})

	t.Run("returns error for invalid YAML", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "bad.yaml")

		// Write invalid YAML
		_ = os.WriteFile(configPath, []byte("invalid: yaml: content: [[["), 0644)

		_, err := config.LoadConfig(configPath)
		if err == nil {
			t.Error("should return error for invalid YAML")
		}
	})

	t.Run("returns error for invalid values", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "invalid.yaml")
		_ = os.WriteFile(configPath, []byte("output:\n  format: toml\n"), 0644)

		if _, err := config.LoadConfig(configPath); err == nil {
			t.Error("should return error for invalid output format")
		}
	})
}

// TestConfigEnv tests environment overrides
func TestConfigEnv(t *testing.T) {
	t.Run("overrides file values", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "arrakis.yaml")
		if err := config.SaveConfig(config.DefaultConfig(), configPath); err != nil {
			t.Fatalf("failed to save config: %v", err)
		}

		t.Setenv("ARRAKIS_SEED", "10191")
		t.Setenv("ARRAKIS_OUTPUT_FORMAT", "yaml")
		t.Setenv("ARRAKIS_LOG_LEVEL", "debug")

		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			t.Fatalf("failed to load config: %v", err)
		}

		if loaded.Random.Seed != 10191 {
			t.Errorf("expected seed 10191, got %d", loaded.Random.Seed)
		}
		if loaded.Output.Format != config.FormatYAML {
			t.Errorf("expected yaml output, got %s", loaded.Output.Format)
		}
		if loaded.Log.Level != "debug" {
			t.Errorf("expected debug level, got %s", loaded.Log.Level)
		}
	})

	t.Run("leaves unset values alone", func(t *testing.T) {
		cfg := config.DefaultConfig()
		cfg.Log.Format = config.LogFormatJSON

		if err := cfg.ApplyEnv(); err != nil {
			t.Fatalf("failed to apply env: %v", err)
		}
		if cfg.Log.Format != config.LogFormatJSON {
			t.Errorf("expected json log format, got %s", cfg.Log.Format)
		}
	})

	t.Run("rejects malformed seed", func(t *testing.T) {
		t.Setenv("ARRAKIS_SEED", "not-a-number")

		cfg := config.DefaultConfig()
		if err := cfg.ApplyEnv(); err == nil {
			t.Error("should reject malformed seed")
		}
	})
}

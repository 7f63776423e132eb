package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}
	if cfg.Output.Format != "human" {
		t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "human")
	}
	if cfg.Performance.BufferSize != 4096 {
		t.Errorf("Performance.BufferSize = %d, want 4096", cfg.Performance.BufferSize)
	}
	if cfg.Logging.Enabled {
		t.Error("logging should be disabled by default")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"Valid", func(c *Config) {}, false},
		{"BadOutputFormat", func(c *Config) { c.Output.Format = "xml" }, true},
		{"BufferTooSmall", func(c *Config) { c.Performance.BufferSize = 512 }, true},
		{"NegativeBandwidth", func(c *Config) { c.Performance.BandwidthLimit = -1 }, true},
		{"BadLogFormat", func(c *Config) { c.Logging.Format = "yaml" }, true},
		{"BadLogLevel", func(c *Config) { c.Logging.Level = "trace" }, true},
		{"JSONOutput", func(c *Config) { c.Output.Format = "json" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}

func TestLoadFromFile(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("ValidFile", func(t *testing.T) {
		path := filepath.Join(tempDir, "config.yaml")
		content := `output:
  format: json
  progress: true
performance:
  buffer_size: 65536
logging:
  enabled: true
  format: json
  level: debug
  file: /tmp/hashdiff.log
`
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		if cfg.Output.Format != "json" {
			t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
		}
		if !cfg.Output.Progress {
			t.Error("Output.Progress = false, want true")
		}
		if cfg.Performance.BufferSize != 65536 {
			t.Errorf("Performance.BufferSize = %d, want 65536", cfg.Performance.BufferSize)
		}
		if cfg.Logging.Level != "debug" {
			t.Errorf("Logging.Level = %q, want %q", cfg.Logging.Level, "debug")
		}
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		path := filepath.Join(tempDir, "partial.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: json\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		cfg, err := LoadFromFile(path)
		if err != nil {
			t.Fatalf("LoadFromFile() error = %v", err)
		}

		if cfg.Output.Format != "json" {
			t.Errorf("Output.Format = %q, want %q", cfg.Output.Format, "json")
		}
		if cfg.Performance.BufferSize != 4096 {
			t.Errorf("unset Performance.BufferSize = %d, want default 4096", cfg.Performance.BufferSize)
		}
	})

	t.Run("InvalidValues", func(t *testing.T) {
		path := filepath.Join(tempDir, "invalid.yaml")
		if err := os.WriteFile(path, []byte("output:\n  format: xml\n"), 0644); err != nil {
			t.Fatalf("failed to write config: %v", err)
		}

		if _, err := LoadFromFile(path); err == nil {
			t.Error("LoadFromFile() should reject invalid config")
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		if _, err := LoadFromFile(filepath.Join(tempDir, "missing.yaml")); err == nil {
			t.Error("LoadFromFile() should fail for missing file")
		}
	})
}

func TestSaveToFile(t *testing.T) {
	tempDir := t.TempDir()
	path := filepath.Join(tempDir, "nested", "config.yaml")

	cfg := Default()
	cfg.Output.Format = "json"

	if err := SaveToFile(cfg, path); err != nil {
		t.Fatalf("SaveToFile() error = %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile() error = %v", err)
	}
	if loaded.Output.Format != "json" {
		t.Errorf("round-trip Output.Format = %q, want %q", loaded.Output.Format, "json")
	}
}

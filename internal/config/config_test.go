package config

import (
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if err := cfg.Validate(); err != nil {
		t.Errorf("default config should validate: %v", err)
	}

	if cfg.Generation.MaxTokens != 60 {
		t.Errorf("expected max tokens 60, got %d", cfg.Generation.MaxTokens)
	}

	if cfg.Generation.Temperature != 0.7 {
		t.Errorf("expected temperature 0.7, got %f", cfg.Generation.Temperature)
	}

	if cfg.Generation.RepeatPenalty != 1.2 {
		t.Errorf("expected repeat penalty 1.2, got %f", cfg.Generation.RepeatPenalty)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"unknown backend", func(c *Config) { c.Backend.Name = "vllm" }},
		{"empty model", func(c *Config) { c.Backend.Model = "" }},
		{"zero max tokens", func(c *Config) { c.Generation.MaxTokens = 0 }},
		{"negative temperature", func(c *Config) { c.Generation.Temperature = -0.1 }},
		{"low repeat penalty", func(c *Config) { c.Generation.RepeatPenalty = 0.5 }},
		{"bad send format", func(c *Config) { c.Send.Format = "bmp" }},
		{"bad quality", func(c *Config) { c.Send.Quality = 0 }},
		{"negative max dim", func(c *Config) { c.Send.MaxDim = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Error("expected validation error")
			}
		})
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")

	cfg := Default()
	cfg.Backend.Model = "llava"
	cfg.Send.MaxDim = 1024

	if err := cfg.SaveToFile(path); err != nil {
		t.Fatalf("SaveToFile failed: %v", err)
	}

	loaded, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}

	if loaded.Backend.Model != "llava" {
		t.Errorf("expected model llava, got %q", loaded.Backend.Model)
	}

	if loaded.Send.MaxDim != 1024 {
		t.Errorf("expected max dim 1024, got %d", loaded.Send.MaxDim)
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	if _, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.json")); err == nil {
		t.Error("expected error for missing config file")
	}
}

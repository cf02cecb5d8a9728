package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the application configuration
type Config struct {
	Backend    BackendConfig    `json:"backend"`
	Generation GenerationConfig `json:"generation"`
	Send       SendConfig       `json:"send"`
}

// BackendConfig selects the inference backend and model
type BackendConfig struct {
	Name      string `json:"name"`
	ServerURL string `json:"server_url"`
	Model     string `json:"model"`
}

// GenerationConfig holds the text generation parameters
type GenerationConfig struct {
	MaxTokens     int     `json:"max_tokens"`
	Temperature   float64 `json:"temperature"`
	RepeatPenalty float64 `json:"repeat_penalty"`
}

// SendConfig controls how images are encoded before being sent to the model
type SendConfig struct {
	Format  string `json:"format"`
	MaxDim  int    `json:"max_dim"`
	Quality int    `json:"quality"`
}

// Default returns a configuration with default values
func Default() *Config {
	return &Config{
		Backend: BackendConfig{
			Name:  "llamacpp",
			Model: "openbmb/minicpm-v4.5",
		},
		Generation: GenerationConfig{
			MaxTokens:     60,
			Temperature:   0.7,
			RepeatPenalty: 1.2,
		},
		Send: SendConfig{
			Format:  "jpg",
			MaxDim:  1536,
			Quality: 85,
		},
	}
}

// LoadFromFile loads configuration from a JSON file
func LoadFromFile(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return &config, nil
}

// SaveToFile saves configuration to a JSON file
func (c *Config) SaveToFile(filename string) error {
	// Create directory if it doesn't exist
	dir := filepath.Dir(filename)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Backend.Name != "ollama" && c.Backend.Name != "llamacpp" {
		return fmt.Errorf("backend.name must be 'ollama' or 'llamacpp'")
	}

	if c.Backend.Model == "" {
		return fmt.Errorf("backend.model cannot be empty")
	}

	if c.Generation.MaxTokens < 1 {
		return fmt.Errorf("generation.max_tokens must be positive")
	}

	if c.Generation.Temperature < 0 || c.Generation.Temperature > 2 {
		return fmt.Errorf("generation.temperature must be between 0 and 2")
	}

	if c.Generation.RepeatPenalty < 1 {
		return fmt.Errorf("generation.repeat_penalty must be at least 1")
	}

	if c.Send.Format != "jpg" && c.Send.Format != "png" {
		return fmt.Errorf("send.format must be 'jpg' or 'png'")
	}

	if c.Send.Quality < 1 || c.Send.Quality > 100 {
		return fmt.Errorf("send.quality must be between 1 and 100")
	}

	if c.Send.MaxDim < 0 {
		return fmt.Errorf("send.max_dim cannot be negative")
	}

	return nil
}

// GetConfigPath returns the default configuration file path
func GetConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "./config.json"
	}
	return filepath.Join(home, ".config", "image-captioner", "config.json")
}

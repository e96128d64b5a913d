package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds provider selection, model tuning and API credentials. Settings
// come from an optional YAML file; secrets always come from the environment.
type Config struct {
	Provider    string `yaml:"provider"` // "gemini" (default) or "openai"
	Model       string `yaml:"model"`    // provider default when empty
	MetricsAddr string `yaml:"metrics_addr"`

	GeminiAPIKey    string `yaml:"-"`
	OpenAIAPIKey    string `yaml:"-"`
	GoogleCSEAPIKey string `yaml:"-"`
	GoogleCSEID     string `yaml:"-"`
}

// Load reads the optional YAML file at path (empty path skips it) and then
// pulls credentials from the environment.
func Load(path string) (*Config, error) {
	cfg := &Config{Provider: "gemini"}
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if err := yaml.NewDecoder(f).Decode(cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if cfg.Provider == "" {
			cfg.Provider = "gemini"
		}
	}
	cfg.GeminiAPIKey = os.Getenv("GEMINI_API_KEY")
	cfg.OpenAIAPIKey = os.Getenv("OPENAI_API_KEY")
	cfg.GoogleCSEAPIKey = os.Getenv("GOOGLE_CSE_API_KEY")
	cfg.GoogleCSEID = os.Getenv("GOOGLE_CSE_ID")
	return cfg, nil
}

// Validate checks that the selected provider and the search client have the
// credentials they need.
func (c *Config) Validate() error {
	switch c.Provider {
	case "gemini":
		if c.GeminiAPIKey == "" {
			return errors.New("GEMINI_API_KEY is not set")
		}
	case "openai":
		if c.OpenAIAPIKey == "" {
			return errors.New("OPENAI_API_KEY is not set")
		}
	default:
		return fmt.Errorf("unknown provider %q (want gemini or openai)", c.Provider)
	}
	if c.GoogleCSEAPIKey == "" {
		return errors.New("GOOGLE_CSE_API_KEY is not set")
	}
	if c.GoogleCSEID == "" {
		return errors.New("GOOGLE_CSE_ID is not set")
	}
	return nil
}

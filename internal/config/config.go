package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Port             string `yaml:"port"`
	DatabaseURL      string `yaml:"database_url"`
	OpenAIKey        string `yaml:"openai_api_key"`
	AnalysisProvider string `yaml:"analysis_provider"` // RULES or OPENAI
	ShareTokenSecret string `yaml:"share_token_secret"`
	ShareTTLDays     int    `yaml:"share_ttl_days"`
}

// Load reads configuration from an optional YAML file (CONFIG_FILE,
// default config.yaml) with environment variables taking precedence.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             "8080",
		AnalysisProvider: "RULES",
		ShareTTLDays:     7,
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	if data, err := os.ReadFile(configFile); err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", configFile, err)
		}
	}

	applyEnvOverrides(cfg)

	if cfg.AnalysisProvider != "RULES" && cfg.AnalysisProvider != "OPENAI" {
		return nil, fmt.Errorf("ANALYSIS_PROVIDER must be RULES or OPENAI, got %q", cfg.AnalysisProvider)
	}
	if cfg.AnalysisProvider == "OPENAI" && cfg.OpenAIKey == "" {
		return nil, fmt.Errorf("OPENAI_API_KEY is required when ANALYSIS_PROVIDER is OPENAI")
	}
	if cfg.ShareTTLDays <= 0 {
		return nil, fmt.Errorf("share token TTL must be positive, got %d days", cfg.ShareTTLDays)
	}
	// An empty ShareTokenSecret is allowed; the share endpoints refuse to
	// issue tokens until one is configured.

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PORT"); v != "" {
		cfg.Port = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.DatabaseURL = v
	}
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.OpenAIKey = v
	}
	if v := os.Getenv("ANALYSIS_PROVIDER"); v != "" {
		cfg.AnalysisProvider = v
	}
	if v := os.Getenv("SHARE_TOKEN_SECRET"); v != "" {
		cfg.ShareTokenSecret = v
	}
	if v := os.Getenv("SHARE_TTL_DAYS"); v != "" {
		if days, err := strconv.Atoi(v); err == nil {
			cfg.ShareTTLDays = days
		}
	}
}

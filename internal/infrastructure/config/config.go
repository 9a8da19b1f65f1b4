// Package config provides centralized configuration management.
//
// Configuration can be loaded from:
//  1. YAML file (config.yaml)
//  2. Environment variables (fallback)
//
// Example usage:
//
//	cfg := config.LoadOrEnv()
//	dbPath := cfg.Storage.DatabasePath
//	m := matcher.NewMatcher(cfg.Matching.MatcherConfig())
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"bankmatch/internal/domain/matcher"
)

// Config represents the entire application configuration
type Config struct {
	Matching      MatchingConfig      `yaml:"matching"`
	Storage       StorageConfig       `yaml:"storage"`
	API           APIConfig           `yaml:"api"`
	Observability ObservabilityConfig `yaml:"observability"`
}

// MatchingConfig holds the engine tunables. Zero values mean "use the
// engine default" so a partial YAML section stays valid.
type MatchingConfig struct {
	AmountTolerance          float64 `yaml:"amount_tolerance"`
	DateToleranceDays        int     `yaml:"date_tolerance_days"`
	MinSignificantWordLength int     `yaml:"min_significant_word_length"`
	FuzzyWordLengthCutoff    int     `yaml:"fuzzy_word_length_cutoff"`
	FuzzyThresholdLong       float64 `yaml:"fuzzy_threshold_long"`
	FuzzyThresholdShort      float64 `yaml:"fuzzy_threshold_short"`
	PointsDateMatch          int     `yaml:"points_date_match"`
	PointsNameMatch          int     `yaml:"points_name_match"`
	PointsNullContactBonus   int     `yaml:"points_null_contact_bonus"`
	MinConfidence            float64 `yaml:"min_confidence"`
}

// MatcherConfig converts the YAML section to a matcher.Config, filling
// every unset field from the engine defaults.
func (m MatchingConfig) MatcherConfig() matcher.Config {
	cfg := matcher.DefaultConfig()

	if m.AmountTolerance > 0 {
		cfg.AmountTolerance = m.AmountTolerance
	}
	if m.DateToleranceDays > 0 {
		cfg.DateToleranceDays = m.DateToleranceDays
	}
	if m.MinSignificantWordLength > 0 {
		cfg.MinSignificantWordLength = m.MinSignificantWordLength
	}
	if m.FuzzyWordLengthCutoff > 0 {
		cfg.FuzzyWordLengthCutoff = m.FuzzyWordLengthCutoff
	}
	if m.FuzzyThresholdLong > 0 {
		cfg.FuzzyThresholdLong = m.FuzzyThresholdLong
	}
	if m.FuzzyThresholdShort > 0 {
		cfg.FuzzyThresholdShort = m.FuzzyThresholdShort
	}
	if m.PointsDateMatch > 0 {
		cfg.PointsDateMatch = m.PointsDateMatch
	}
	if m.PointsNameMatch > 0 {
		cfg.PointsNameMatch = m.PointsNameMatch
	}
	if m.PointsNullContactBonus > 0 {
		cfg.PointsNullContactBonus = m.PointsNullContactBonus
	}
	if m.MinConfidence > 0 {
		cfg.MinConfidence = m.MinConfidence
	}

	return cfg
}

// StorageConfig holds database configuration
type StorageConfig struct {
	DatabasePath string `yaml:"database_path"`
}

// APIConfig holds HTTP server configuration
type APIConfig struct {
	Port           int      `yaml:"port"`
	AllowedOrigins []string `yaml:"allowed_origins"`
}

// ObservabilityConfig holds observability settings
type ObservabilityConfig struct {
	Logging LoggingConfig `yaml:"logging"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Load reads and parses the config file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Expand environment variables (e.g., ${BANKMATCH_DB_PATH})
	expanded := os.ExpandEnv(string(data))

	var cfg Config
	if err := yaml.Unmarshal([]byte(expanded), &cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration from environment variables only
func LoadFromEnv() *Config {
	return &Config{
		Storage: StorageConfig{
			DatabasePath: getEnv("BANKMATCH_DB_PATH", "bankmatch.db"),
		},
		API: APIConfig{
			Port:           getEnvInt("BANKMATCH_PORT", 8080),
			AllowedOrigins: []string{"http://localhost:3000", "http://localhost:5173"},
		},
		Observability: ObservabilityConfig{
			Logging: LoggingConfig{
				Level:  getEnv("LOG_LEVEL", "info"),
				Format: getEnv("LOG_FORMAT", "text"),
			},
		},
	}
}

// LoadOrEnv tries to load from config.yaml, falls back to environment variables
func LoadOrEnv() *Config {
	return LoadOrEnvWithPath("config.yaml")
}

// LoadOrEnvWithPath tries to load from the specified path, falls back to
// environment variables
func LoadOrEnvWithPath(path string) *Config {
	if cfg, err := Load(path); err == nil {
		return cfg
	}
	return LoadFromEnv()
}

// getEnv retrieves an environment variable with a fallback default
func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

// getEnvInt retrieves an integer environment variable with a fallback default
func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if result, err := strconv.Atoi(val); err == nil {
			return result
		}
	}
	return fallback
}

// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap/zapcore"
)

// Storage backends and generators accepted by Validate.
const (
	StorageFile   = "file"
	StorageSQLite = "sqlite"
	StorageMemory = "memory"

	GeneratorTemplate = "template"
	GeneratorLLM      = "llm"
)

// Environment variables that override file values.
const (
	EnvDataDir   = "RESUME_BUILDER_DATA_DIR"
	EnvStorage   = "RESUME_BUILDER_STORAGE"
	EnvGenerator = "RESUME_BUILDER_GENERATOR"
	EnvLogLevel  = "RESUME_BUILDER_LOG_LEVEL"
	EnvModel     = "RESUME_BUILDER_MODEL"
	EnvSeed      = "RESUME_BUILDER_SEED"
	EnvAPIKey    = "GEMINI_API_KEY"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or environment overrides.
type Config struct {
	DataDir   string `json:"data_dir,omitempty"`  // Directory holding persisted state
	Storage   string `json:"storage,omitempty"`   // file, sqlite, or memory
	Generator string `json:"generator,omitempty"` // template or llm
	APIKey    string `json:"api_key,omitempty"`   // Gemini API key
	Model     string `json:"model,omitempty"`     // Overrides the default model name
	LogLevel  string `json:"log_level,omitempty"` // debug, info, warn, error
	Verbose   bool   `json:"verbose,omitempty"`

	// Seed populates sample data on first run. Nil means unset.
	Seed *bool `json:"seed,omitempty"`

	PageMarginMM float64 `json:"page_margin_mm,omitempty"`
}

// Defaults returns the configuration used when nothing else is set.
func Defaults() Config {
	seed := true
	dir := ".resume-builder"
	if home, err := os.UserHomeDir(); err == nil {
		dir = filepath.Join(home, ".resume-builder")
	}
	return Config{
		DataDir:      dir,
		Storage:      StorageFile,
		Generator:    GeneratorTemplate,
		LogLevel:     "info",
		Seed:         &seed,
		PageMarginMM: 20,
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Load resolves the effective configuration: environment over file over defaults.
// An empty path skips the file.
func Load(path string) (Config, error) {
	cfg := &Config{}
	if path != "" {
		loaded, err := LoadConfig(path)
		if err != nil {
			return Config{}, err
		}
		cfg = loaded
	}

	if err := cfg.applyEnv(); err != nil {
		return Config{}, err
	}
	merged := cfg.MergeWithDefaults(Defaults())
	if err := merged.Validate(); err != nil {
		return Config{}, err
	}
	return merged, nil
}

func (c *Config) applyEnv() error {
	c.DataDir = getEnvString(EnvDataDir, c.DataDir)
	c.Storage = getEnvString(EnvStorage, c.Storage)
	c.Generator = getEnvString(EnvGenerator, c.Generator)
	c.LogLevel = getEnvString(EnvLogLevel, c.LogLevel)
	c.Model = getEnvString(EnvModel, c.Model)
	c.APIKey = getEnvString(EnvAPIKey, c.APIKey)

	if v, ok := os.LookupEnv(EnvSeed); ok && v != "" {
		seed, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("config error: %s must be a boolean, got %q", EnvSeed, v)
		}
		c.Seed = &seed
	}
	return nil
}

func getEnvString(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// Validate checks that the configuration has valid values.
// Empty fields are accepted; they are filled by MergeWithDefaults.
func (c *Config) Validate() error {
	switch strings.ToLower(c.Storage) {
	case "", StorageFile, StorageSQLite, StorageMemory:
	default:
		return fmt.Errorf("config error: unknown storage %q (want file, sqlite, or memory)", c.Storage)
	}

	switch strings.ToLower(c.Generator) {
	case "", GeneratorTemplate:
	case GeneratorLLM:
		if c.APIKey == "" {
			return fmt.Errorf("config error: generator 'llm' requires an api key (%s)", EnvAPIKey)
		}
	default:
		return fmt.Errorf("config error: unknown generator %q (want template or llm)", c.Generator)
	}

	if c.LogLevel != "" {
		if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("config error: invalid log_level: %w", err)
		}
	}

	if c.PageMarginMM < 0 || c.PageMarginMM > 50 {
		return fmt.Errorf("config error: 'page_margin_mm' must be between 0 and 50")
	}

	return nil
}

// SeedEnabled reports whether sample data should be populated on first run.
func (c Config) SeedEnabled() bool {
	return c.Seed == nil || *c.Seed
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.DataDir == "" {
		result.DataDir = defaults.DataDir
	}
	if result.Storage == "" {
		result.Storage = defaults.Storage
	}
	if result.Generator == "" {
		result.Generator = defaults.Generator
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}
	if result.Seed == nil {
		result.Seed = defaults.Seed
	}
	if result.PageMarginMM == 0 {
		result.PageMarginMM = defaults.PageMarginMM
	}

	result.Storage = strings.ToLower(result.Storage)
	result.Generator = strings.ToLower(result.Generator)

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

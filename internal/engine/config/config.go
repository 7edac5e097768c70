// Package config handles loading and validation of scribe configuration.
package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/irahardianto/scribe/internal/platform/logger"
	"gopkg.in/yaml.v3"
)

// DefaultModel is the Gemini model used when none is configured.
const DefaultModel = "gemini-2.5-pro"

// ErrMissingAPIKey is returned when no API key is configured anywhere.
// Credential resolution happens before any network activity, so callers
// can fail fast with a clear message.
var ErrMissingAPIKey = errors.New(
	"no Gemini API key found. Set gemini_api_key in ~/.config/scribe/config.yaml or the GEMINI_API_KEY environment variable")

// Config holds user-level settings for scribe.
type Config struct {
	Model        string       `yaml:"model"`
	GeminiAPIKey SecretString `yaml:"gemini_api_key"`
}

// Validate checks that the configuration is usable for generation.
func (c *Config) Validate() error {
	if c.GeminiAPIKey.IsEmpty() {
		return ErrMissingAPIKey
	}
	return nil
}

// Loader handles loading configuration from the file system.
type Loader struct {
	fs     FileSystem
	getenv func(string) string
}

// NewLoader creates a new Loader with the given file system.
// Uses os.Getenv for environment variable lookups by default.
func NewLoader(fs FileSystem) *Loader {
	return &Loader{fs: fs, getenv: os.Getenv}
}

// NewLoaderWithEnv creates a Loader with a custom getenv function for testability.
func NewLoaderWithEnv(fs FileSystem, getenv func(string) string) *Loader {
	return &Loader{fs: fs, getenv: getenv}
}

// Load reads configuration from ~/.config/scribe/config.yaml.
// If the file does not exist, default values are returned (not an error).
// Environment variables override file values.
func (l *Loader) Load(ctx context.Context) (*Config, error) {
	home, err := l.fs.UserHomeDir()
	if err != nil {
		// Cannot determine home directory — use defaults.
		cfg := defaultConfig()
		applyEnvOverrides(cfg, l.getenv)
		return cfg, nil
	}
	path := filepath.Join(home, ".config", "scribe", "config.yaml")
	return l.LoadFrom(ctx, path)
}

// LoadFrom reads configuration from a specific path.
// If the file does not exist, default values are returned (not an error).
// Environment variables override file values.
func (l *Loader) LoadFrom(ctx context.Context, path string) (*Config, error) {
	log := logger.FromContext(ctx)
	log.Debug("loading config", "path", path)
	cfg := defaultConfig()

	// [SEC] Clean path
	path = filepath.Clean(path)

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if l.fs.IsNotExist(err) {
			applyEnvOverrides(cfg, l.getenv)
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Model == "" {
		cfg.Model = DefaultModel
	}

	applyEnvOverrides(cfg, l.getenv)

	return cfg, nil
}

// Load reads configuration using the real file system.
func Load(ctx context.Context) (*Config, error) {
	return NewLoader(&RealFileSystem{}).Load(ctx)
}

func defaultConfig() *Config {
	return &Config{
		Model: DefaultModel,
	}
}

// applyEnvOverrides applies environment variables to the config.
// The getenv parameter abstracts os.Getenv for testability.
func applyEnvOverrides(cfg *Config, getenv func(string) string) {
	// A key in the config file wins; the environment is a fallback.
	if cfg.GeminiAPIKey.IsEmpty() {
		if key := getenv("GEMINI_API_KEY"); key != "" {
			cfg.GeminiAPIKey = SecretString(key)
		}
	}

	if model := getenv("SCRIBE_MODEL"); model != "" {
		cfg.Model = model
	}
}

// Package config provides configuration management.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"

	"sms-cost/internal/errors"
	"sms-cost/internal/logging"
)

// Price sources
const (
	SourceOffline = "offline"
	SourceFile    = "file"
	SourceURL     = "url"
)

// Duplicate country policies
const (
	DuplicatesReject   = "reject"
	DuplicatesLastWins = "last-wins"
)

const envPrefix = "SMSCOST_"

// Environment variables read by ApplyEnv
const (
	EnvPriceSource = "SMSCOST_PRICE_SOURCE"
	EnvPriceURL    = "SMSCOST_PRICE_URL"
	EnvPriceFiles  = "SMSCOST_PRICE_FILES"
	EnvStrict      = "SMSCOST_STRICT"
	EnvFallback    = "SMSCOST_OFFLINE_FALLBACK"
	EnvLogLevel    = "SMSCOST_LOG_LEVEL"
	EnvFormat      = "SMSCOST_FORMAT"
)

// Config is the main application configuration
type Config struct {
	// Version is the configuration version
	Version string `json:"version"`

	// Pricing contains pricing configuration
	Pricing PricingConfig `json:"pricing"`

	// Segmentation contains segment counting configuration
	Segmentation SegmentationConfig `json:"segmentation"`

	// Output contains output configuration
	Output OutputConfig `json:"output"`

	// Logging contains logging configuration
	Logging logging.Config `json:"logging"`
}

// PricingConfig contains pricing-related settings
type PricingConfig struct {
	// Source is offline, file or url
	Source string `json:"source"`

	// Files are vendor JSON or HCL override files applied on top of the source, in order
	Files []string `json:"files,omitempty"`

	// URL is the vendor price list endpoint for the url source
	URL string `json:"url,omitempty"`

	// TimeoutSeconds bounds the price list download
	TimeoutSeconds int `json:"timeout_seconds"`

	// OfflineFallback uses the bundled list when the url source fails or is empty
	OfflineFallback bool `json:"offline_fallback"`

	// Strict makes one unpriced message turn the total unpriced
	Strict bool `json:"strict"`

	// Duplicates is the policy for a country priced twice in one source
	Duplicates string `json:"duplicates"`
}

// SegmentationConfig contains segment counting settings
type SegmentationConfig struct {
	// AstralUnits is the UCS-2 cost of a character above U+FFFF
	AstralUnits int `json:"astral_units"`
}

// OutputConfig contains output-related settings
type OutputConfig struct {
	// DefaultFormat is the default output format
	DefaultFormat string `json:"default_format"`

	// ShowDetails shows one row per message
	ShowDetails bool `json:"show_details"`
}

// Default returns a default configuration
func Default() *Config {
	return &Config{
		Version: "1.0",
		Pricing: PricingConfig{
			Source:          SourceOffline,
			TimeoutSeconds:  30,
			OfflineFallback: true,
			Strict:          false,
			Duplicates:      DuplicatesReject,
		},
		Segmentation: SegmentationConfig{
			AstralUnits: 2,
		},
		Output: OutputConfig{
			DefaultFormat: "cli",
			ShowDetails:   true,
		},
		Logging: logging.DefaultConfig(),
	}
}

// DefaultPath returns $HOME/.sms-cost.json
func DefaultPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".sms-cost.json")
}

// Load loads configuration from a file. A missing file yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, errors.Config("failed to read config", err).WithContext("path", path)
	}

	config := Default()
	if err := json.Unmarshal(data, config); err != nil {
		return nil, errors.Config("failed to parse config", err).WithContext("path", path)
	}

	return config, config.Validate()
}

// Save saves configuration to a file
func (c *Config) Save(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// Validate checks enumerated settings
func (c *Config) Validate() error {
	switch c.Pricing.Source {
	case SourceOffline, SourceFile, SourceURL:
	default:
		return errors.Newf(errors.TypeConfig, "unknown price source %q", c.Pricing.Source)
	}
	if c.Pricing.Source == SourceFile && len(c.Pricing.Files) == 0 {
		return errors.New(errors.TypeConfig, "price source file needs at least one file")
	}
	switch c.Pricing.Duplicates {
	case DuplicatesReject, DuplicatesLastWins:
	default:
		return errors.Newf(errors.TypeConfig, "unknown duplicate policy %q", c.Pricing.Duplicates)
	}
	if c.Segmentation.AstralUnits < 1 {
		return errors.Newf(errors.TypeConfig, "astral_units must be at least 1, got %d", c.Segmentation.AstralUnits)
	}
	return nil
}

// LoadDotEnv loads .env style files into the process environment.
// Missing files are skipped; variables already set win.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if _, err := os.Stat(f); os.IsNotExist(err) {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			return errors.Config("failed to load env file", err).WithContext("path", f)
		}
	}
	return nil
}

// ApplyEnv overrides c with SMSCOST_* environment variables
func (c *Config) ApplyEnv() error {
	k := koanf.New(".")
	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return errors.Config("failed to read environment", err)
	}

	if v := k.String("price_source"); v != "" {
		c.Pricing.Source = strings.ToLower(v)
	}
	if v := k.String("price_url"); v != "" {
		c.Pricing.URL = v
	}
	if v := k.String("price_files"); v != "" {
		c.Pricing.Files = nil
		for _, f := range strings.Split(v, ",") {
			if f = strings.TrimSpace(f); f != "" {
				c.Pricing.Files = append(c.Pricing.Files, f)
			}
		}
	}
	if v := k.String("strict"); v != "" {
		strict, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config("invalid "+EnvStrict, err)
		}
		c.Pricing.Strict = strict
	}
	if v := k.String("offline_fallback"); v != "" {
		fallback, err := strconv.ParseBool(v)
		if err != nil {
			return errors.Config("invalid "+EnvFallback, err)
		}
		c.Pricing.OfflineFallback = fallback
	}
	if v := k.String("log_level"); v != "" {
		c.Logging.Level = v
	}
	if v := k.String("format"); v != "" {
		c.Output.DefaultFormat = v
	}
	return c.Validate()
}

// Global configuration instance
var globalConfig = Default()

// Get returns the global configuration
func Get() *Config {
	return globalConfig
}

// Set sets the global configuration
func Set(config *Config) {
	globalConfig = config
}

// Package config holds the settings of the command line tools,
// read from a YAML file, with environment variables as overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// UnitsConfig sets how absolute and font relative units are resolved.
type UnitsConfig struct {
	DPI      float64 `yaml:"dpi"`
	FontSize float64 `yaml:"font_size"` // root font size, in pixels
}

type TextConfig struct {
	Metrics string `yaml:"metrics"` // "face" (Go fonts) or "basic" (fixed 7x13 face)
}

type DecodeConfig struct {
	Mode string `yaml:"mode"` // "ignore" | "warn" | "strict", for unsupported elements
}

type PreviewConfig struct {
	Scale          float64 `yaml:"scale"` // pixels of the PNG preview per user unit
	SelectionColor string  `yaml:"selection_color"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	Source bool   `yaml:"source"`
	File   string `yaml:"file"`
}

// Config is the whole configuration.
// config_version: bump when the structure changes in a backward-incompatible way.
type Config struct {
	ConfigVersion int           `yaml:"config_version"`
	Units         UnitsConfig   `yaml:"units"`
	Text          TextConfig    `yaml:"text"`
	Decode        DecodeConfig  `yaml:"decode"`
	Preview       PreviewConfig `yaml:"preview"`
	Logging       LoggingConfig `yaml:"logging"`
}

// Defaults returns the application defaults.
func Defaults() Config {
	return Config{
		ConfigVersion: 1,
		Units:         UnitsConfig{DPI: 96, FontSize: 16},
		Text:          TextConfig{Metrics: "face"},
		Decode:        DecodeConfig{Mode: "warn"},
		Preview:       PreviewConfig{Scale: 1, SelectionColor: "#1e90ff"},
		Logging:       LoggingConfig{Level: "info", Format: "console"},
	}
}

// Env var names used as overrides.
const (
	EnvDPI            = "SVGEDIT_DPI"
	EnvFontSize       = "SVGEDIT_FONT_SIZE"
	EnvTextMetrics    = "SVGEDIT_TEXT_METRICS"
	EnvDecodeMode     = "SVGEDIT_DECODE_MODE"
	EnvPreviewScale   = "SVGEDIT_PREVIEW_SCALE"
	EnvSelectionColor = "SVGEDIT_SELECTION_COLOR"
	// EnvLogLevel Logging envs
	EnvLogLevel  = "SVGEDIT_LOG_LEVEL"
	EnvLogFormat = "SVGEDIT_LOG_FORMAT"
	EnvLogSource = "SVGEDIT_LOG_SOURCE"
	EnvLogFile   = "SVGEDIT_LOG_FILE"
)

// Load reads the config file at path (if path is not empty), applies
// defaults, and merges environment overrides.
// A missing file is an error, since it has been asked for explicitly.
func Load(path string) (Config, error) {
	cfg := Defaults()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: %w", err)
		}
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("config: invalid file %s: %w", path, err)
		}
		mergeInto(&cfg, &fileCfg)
	}
	applyEnvOverrides(&cfg)
	return cfg, cfg.Validate()
}

// Save writes cfg as YAML.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Validate checks the enumerated and positive values.
func (cfg Config) Validate() error {
	if cfg.Units.DPI <= 0 || cfg.Units.FontSize <= 0 {
		return fmt.Errorf("config: units must be positive (dpi=%g, font_size=%g)", cfg.Units.DPI, cfg.Units.FontSize)
	}
	if cfg.Preview.Scale <= 0 {
		return fmt.Errorf("config: preview scale must be positive, got %g", cfg.Preview.Scale)
	}
	switch cfg.Text.Metrics {
	case "face", "basic":
	default:
		return fmt.Errorf("config: unknown text metrics %q", cfg.Text.Metrics)
	}
	switch cfg.Decode.Mode {
	case "ignore", "warn", "strict":
	default:
		return fmt.Errorf("config: unknown decode mode %q", cfg.Decode.Mode)
	}
	return nil
}

func lower(s string) string { return strings.ToLower(strings.TrimSpace(s)) }

func mergeInto(dst *Config, src *Config) {
	if src.ConfigVersion != 0 {
		dst.ConfigVersion = src.ConfigVersion
	}
	if src.Units.DPI != 0 {
		dst.Units.DPI = src.Units.DPI
	}
	if src.Units.FontSize != 0 {
		dst.Units.FontSize = src.Units.FontSize
	}
	if v := lower(src.Text.Metrics); v != "" {
		dst.Text.Metrics = v
	}
	if v := lower(src.Decode.Mode); v != "" {
		dst.Decode.Mode = v
	}
	if src.Preview.Scale != 0 {
		dst.Preview.Scale = src.Preview.Scale
	}
	if v := strings.TrimSpace(src.Preview.SelectionColor); v != "" {
		dst.Preview.SelectionColor = v
	}
	// logging
	if v := lower(src.Logging.Level); v != "" {
		dst.Logging.Level = v
	}
	if v := lower(src.Logging.Format); v != "" {
		dst.Logging.Format = v
	}
	dst.Logging.Source = src.Logging.Source
	if v := strings.TrimSpace(src.Logging.File); v != "" {
		dst.Logging.File = v
	}
}

func envFloat(key string, dst *float64) {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func applyEnvOverrides(cfg *Config) {
	envFloat(EnvDPI, &cfg.Units.DPI)
	envFloat(EnvFontSize, &cfg.Units.FontSize)
	envFloat(EnvPreviewScale, &cfg.Preview.Scale)
	if v := lower(os.Getenv(EnvTextMetrics)); v != "" {
		cfg.Text.Metrics = v
	}
	if v := lower(os.Getenv(EnvDecodeMode)); v != "" {
		cfg.Decode.Mode = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvSelectionColor)); v != "" {
		cfg.Preview.SelectionColor = v
	}
	// logging overrides
	if v := lower(os.Getenv(EnvLogLevel)); v != "" {
		cfg.Logging.Level = v
	}
	if v := lower(os.Getenv(EnvLogFormat)); v != "" {
		cfg.Logging.Format = v
	}
	if v := lower(os.Getenv(EnvLogSource)); v != "" {
		cfg.Logging.Source = v == "1" || v == "true" || v == "on" || v == "yes"
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		cfg.Logging.File = v
	}
}

package models

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
	yamlv3 "gopkg.in/yaml.v3"

	"latex-for-typora/internal/config"
	"latex-for-typora/internal/logger"
)

// Theme variants accepted by the window.
const (
	ThemeSystem = "system"
	ThemeLight  = "light"
	ThemeDark   = "dark"
)

// Config holds application preferences.
// Precedence (highest to lowest): set flags > LATEX4TYPORA_* env > config file > defaults
type Config struct {
	// Window
	WindowWidth  int    `koanf:"window_width" yaml:"window_width"`
	WindowHeight int    `koanf:"window_height" yaml:"window_height"`
	Theme        string `koanf:"theme" yaml:"theme"` // system, light, dark

	// Behaviour after Convert
	AutoCopy          bool `koanf:"auto_copy" yaml:"auto_copy"`
	StripAfterConvert bool `koanf:"strip_after_convert" yaml:"strip_after_convert"`

	// In-memory action history; never written to disk
	HistoryLimit int `koanf:"history_limit" yaml:"history_limit"`

	// Logging
	LogLevel  string `koanf:"log_level" yaml:"log_level"`
	LogFormat string `koanf:"log_format" yaml:"log_format"` // console, json

	path string
}

func DefaultConfig() *Config {
	return &Config{
		WindowWidth:  config.DefaultWindowWidth,
		WindowHeight: config.DefaultWindowHeight,
		Theme:        ThemeSystem,

		AutoCopy:          false,
		StripAfterConvert: false,

		HistoryLimit: config.DefaultHistoryLimit,

		LogLevel:  config.DefaultLogLevel,
		LogFormat: config.DefaultLogFormat,
	}
}

// DefaultConfigPath is ~/.config/latex-for-typora/config.yaml.
func DefaultConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".config", config.ConfigDir, config.ConfigFile)
}

// ConfigPath returns the file this config was loaded from, or the default path.
func (c *Config) ConfigPath() string {
	if c.path != "" {
		return c.path
	}
	return DefaultConfigPath()
}

// LoadConfig loads the default config file and environment overrides.
func LoadConfig() (*Config, error) {
	return LoadConfigFrom("", nil)
}

// LoadConfigFrom layers defaults, the YAML file at path (the default path
// when empty), LATEX4TYPORA_* environment variables and any flags that were
// explicitly set. A missing file is not an error.
func LoadConfigFrom(path string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")
	def := DefaultConfig()

	if err := k.Load(confmap.Provider(map[string]interface{}{
		"window_width":        def.WindowWidth,
		"window_height":       def.WindowHeight,
		"theme":               def.Theme,
		"auto_copy":           def.AutoCopy,
		"strip_after_convert": def.StripAfterConvert,
		"history_limit":       def.HistoryLimit,
		"log_level":           def.LogLevel,
		"log_format":          def.LogFormat,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	if path == "" {
		path = DefaultConfigPath()
	}
	if _, err := os.Stat(path); err == nil {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", path, err)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("error reading config file %s: %w", path, err)
	}

	// LATEX4TYPORA_LOG_LEVEL -> log_level
	if err := k.Load(env.Provider(config.EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, config.EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			return strings.ReplaceAll(f.Name, "-", "_"), posflag.FlagVal(flags, f)
		}), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	cfg.path = path
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// normalize replaces out-of-range numbers with usable values.
func (c *Config) normalize() {
	if c.WindowWidth < config.MinWindowWidth {
		c.WindowWidth = config.DefaultWindowWidth
	}
	if c.WindowHeight < config.MinWindowHeight {
		c.WindowHeight = config.DefaultWindowHeight
	}
	if c.HistoryLimit <= 0 {
		c.HistoryLimit = config.DefaultHistoryLimit
	}
	if c.HistoryLimit > config.MaxHistoryLimit {
		c.HistoryLimit = config.MaxHistoryLimit
	}
	c.Theme = strings.ToLower(strings.TrimSpace(c.Theme))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
}

// Validate reports settings that cannot be corrected silently.
func (c *Config) Validate() error {
	if _, err := logger.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	switch c.LogFormat {
	case "console", "json":
	default:
		return fmt.Errorf("log_format: unknown format %q", c.LogFormat)
	}
	switch c.Theme {
	case ThemeSystem, ThemeLight, ThemeDark:
	default:
		return fmt.Errorf("theme: unknown theme %q", c.Theme)
	}
	return nil
}

func (c *Config) Save() error {
	configPath := c.ConfigPath()

	// Create directory if it doesn't exist
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	data, err := yamlv3.Marshal(c)
	if err != nil {
		return err
	}

	return os.WriteFile(configPath, data, 0600)
}

// Package config loads quoteloc settings from defaults, an optional yaml
// file, QUOTELOC_* environment variables and command line flags.
package config

import (
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"

	"quoteloc/internal/locate"
	"quoteloc/internal/report"
)

const (
	DefaultColumns = "rune"
	DefaultOutput  = "text"
	DefaultColor   = "auto"

	// EnvPrefix is stripped from environment variables before they become keys.
	EnvPrefix = "QUOTELOC_"
)

// defaultFileNames are looked up in the working directory when no --config is given.
var defaultFileNames = []string{"quoteloc.yaml", "quoteloc.yml"}

// Config holds all settings for one run.
type Config struct {
	Path    string `koanf:"path"`
	Columns string `koanf:"columns"`
	Output  string `koanf:"output"`
	Color   string `koanf:"color"`
	Verbose bool   `koanf:"verbose"`

	// FileUsed is the config file that was read, if any.
	FileUsed string `koanf:"-"`
}

// findConfigFile finds the config file to use.
// Priority: explicit path > quoteloc.yaml > quoteloc.yml
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	for _, name := range defaultFileNames {
		if _, err := os.Stat(name); err == nil {
			return name
		}
	}
	return ""
}

// Load builds the configuration.
// Precedence (highest to lowest): flags > env vars > config file > defaults
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	// 1. Defaults
	if err := k.Load(confmap.Provider(map[string]interface{}{
		"path":    "",
		"columns": DefaultColumns,
		"output":  DefaultOutput,
		"color":   DefaultColor,
		"verbose": false,
	}, "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	// 2. Config file
	fileUsed := findConfigFile(cfgFile)
	if fileUsed != "" {
		if err := k.Load(file.Provider(fileUsed), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", fileUsed, err)
		}
	}

	// 3. Environment: QUOTELOC_COLUMNS -> columns
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	// 4. Flags that were explicitly set
	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed || f.Name == "config" {
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
	cfg.FileUsed = fileUsed

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Validate checks the enumerated settings.
func (c *Config) Validate() error {
	if !slices.Contains(locate.UnitNames(), strings.ToLower(c.Columns)) {
		return fmt.Errorf("columns must be one of %s, got %q", strings.Join(locate.UnitNames(), ", "), c.Columns)
	}
	if !slices.Contains(report.FormatNames(), strings.ToLower(c.Output)) {
		return fmt.Errorf("output must be one of %s, got %q", strings.Join(report.FormatNames(), ", "), c.Output)
	}
	if !slices.Contains(report.ColorNames(), strings.ToLower(c.Color)) {
		return fmt.Errorf("color must be one of %s, got %q", strings.Join(report.ColorNames(), ", "), c.Color)
	}
	return nil
}

// Package config loads and validates RefDock's HCL configuration.
package config

import (
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/hashicorp/hcl/v2/hclsimple"
)

// Defaults for the zero-config mode.
const (
	DefaultListenAddr    = "127.0.0.1:8000"
	DefaultContentDir    = "docs-content"
	DefaultLocale        = "en"
	DefaultTheme         = "light"
	DefaultRegenSchedule = "0 4 * * *"
)

// Config is the top-level application configuration.
type Config struct {
	// ListenAddr is the host:port the HTTP server binds to.
	ListenAddr string `hcl:"listen_addr,optional"`

	// ContentDir is the root of the generated Markdown content, one
	// subdirectory per API id.
	ContentDir string `hcl:"content_dir,optional"`

	// DefaultLocale selects the UI language when the visitor has no
	// preference cookie.
	DefaultLocale string `hcl:"default_locale,optional"`

	// DefaultTheme selects the initial color theme.
	DefaultTheme string `hcl:"default_theme,optional"`

	// DisableSearch turns off the search index and endpoint.
	DisableSearch bool `hcl:"disable_search,optional"`

	// Regen configures the scheduled content regeneration job.
	Regen *RegenConfig `hcl:"regen,block"`
}

// RegenConfig configures the daily content regeneration job.
type RegenConfig struct {
	Enabled bool `hcl:"enabled,optional"`

	// Schedule is a standard cron expression. Only consulted when
	// Enabled is true.
	Schedule string `hcl:"schedule,optional"`
}

// Default returns the zero-config configuration used when no file is
// given, mirroring the simplified serve mode.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load parses and validates an HCL configuration file, filling in
// defaults for unset fields.
func Load(path string) (*Config, error) {
	var cfg Config
	if err := hclsimple.DecodeFile(path, nil, &cfg); err != nil {
		return nil, fmt.Errorf("error decoding config file: %w", err)
	}
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("error validating config file: %w", err)
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.ListenAddr == "" {
		c.ListenAddr = DefaultListenAddr
	}
	if c.ContentDir == "" {
		c.ContentDir = DefaultContentDir
	}
	if c.DefaultLocale == "" {
		c.DefaultLocale = DefaultLocale
	}
	if c.DefaultTheme == "" {
		c.DefaultTheme = DefaultTheme
	}
	if c.Regen == nil {
		c.Regen = &RegenConfig{}
	}
	if c.Regen.Schedule == "" {
		c.Regen.Schedule = DefaultRegenSchedule
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.ListenAddr, validation.Required),
		validation.Field(&c.ContentDir, validation.Required),
		validation.Field(&c.DefaultLocale, validation.In("en", "ko")),
		validation.Field(&c.DefaultTheme, validation.In("light", "dark")),
	)
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/dyluth/products/internal/catalog"
	"gopkg.in/yaml.v3"
)

// DefaultFileName is looked up in the working directory when no config
// path is given.
const DefaultFileName = "products.yml"

// Config represents the top-level products.yml configuration
type Config struct {
	Version    string            `yaml:"version"`
	Validation *ValidationConfig `yaml:"validation,omitempty"`
	Table      *TableConfig      `yaml:"table,omitempty"`
}

// ValidationConfig selects how invalid records in a ledger file are handled
type ValidationConfig struct {
	Policy string `yaml:"policy,omitempty"` // "warn" (default) or "reject"
}

// TableConfig overrides the list/select table layout
type TableConfig struct {
	Headers []string `yaml:"headers,omitempty"` // Exactly 3 when set
	Widths  []int    `yaml:"widths,omitempty"`  // Exactly 3 when set, each >= 1
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	cfg := &Config{Version: "1.0"}
	// Cannot fail: defaults are valid by construction
	_ = cfg.Validate()
	return cfg
}

// Validate performs strict validation on the configuration and fills in
// defaults for omitted sections.
func (c *Config) Validate() error {
	// Required: version
	if c.Version != "1.0" {
		return fmt.Errorf("unsupported version: %s (expected: 1.0)", c.Version)
	}

	if c.Validation == nil {
		c.Validation = &ValidationConfig{}
	}
	switch catalog.Policy(c.Validation.Policy) {
	case "":
		c.Validation.Policy = string(catalog.PolicyWarn)
	case catalog.PolicyWarn, catalog.PolicyReject:
	default:
		return fmt.Errorf("invalid validation.policy: %s (must be 'warn' or 'reject')", c.Validation.Policy)
	}

	defaults := catalog.DefaultLayout()
	if c.Table == nil {
		c.Table = &TableConfig{}
	}
	if len(c.Table.Headers) == 0 {
		c.Table.Headers = defaults.Headers[:]
	}
	if len(c.Table.Widths) == 0 {
		c.Table.Widths = defaults.Widths[:]
	}

	if len(c.Table.Headers) != 3 {
		return fmt.Errorf("table.headers must list exactly 3 headers, got %d", len(c.Table.Headers))
	}
	if len(c.Table.Widths) != 3 {
		return fmt.Errorf("table.widths must list exactly 3 widths, got %d", len(c.Table.Widths))
	}
	for i, w := range c.Table.Widths {
		if w < 1 {
			return fmt.Errorf("table.widths[%d] must be >= 1, got %d", i, w)
		}
	}

	return nil
}

// Policy returns the validation policy for the catalog store.
// Only meaningful after Validate.
func (c *Config) Policy() catalog.Policy {
	return catalog.Policy(c.Validation.Policy)
}

// Layout returns the table layout. Only meaningful after Validate.
func (c *Config) Layout() catalog.Layout {
	var layout catalog.Layout
	copy(layout.Headers[:], c.Table.Headers)
	copy(layout.Widths[:], c.Table.Widths)
	return layout
}

// Load reads and validates products.yml from the specified path
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// Resolve loads the configuration for one invocation. An explicit path must
// exist. Without one, DefaultFileName in the working directory is used if
// present, and built-in defaults otherwise.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}

	if _, err := os.Stat(DefaultFileName); errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return Load(DefaultFileName)
}

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/brettbedarf/treebin/internal/util"
)

// Default configuration constants. See [Config] for field descriptions.
const (
	// DefaultRootName is the name of the namespace root folder; every path
	// starts with it ("/root/...").
	DefaultRootName = "root"

	// DefaultIndexCapacity is the initial slot count of each folder's file
	// index. Indexes grow by doubling as files are added.
	DefaultIndexCapacity = 10

	// DefaultVerbosity maps to info-level logging.
	DefaultVerbosity = 3

	// Verbosity bounds accepted from flags and config files.
	MinVerbosity = 1
	MaxVerbosity = 5
)

// Config contains runtime configuration values for the namespace core.
type Config struct {
	RootName      string        // Name of the root folder (Default "root")
	IndexCapacity int           // Initial file-index slot count per folder (Default 10)
	LogLvl        util.LogLevel // Resolved log level (from verbosity 1..5)
}

// ConfigOverride uses pointer fields to distinguish between unset and zero
// values when loading partial configuration. See [Config] for field
// descriptions. Verbose is the user-facing 1 (error) .. 5 (trace) scale.
type ConfigOverride struct {
	RootName      *string `yaml:"root_name,omitempty" json:"root_name,omitempty"`
	IndexCapacity *int    `yaml:"index_capacity,omitempty" json:"index_capacity,omitempty"`
	Verbose       *int    `yaml:"verbose,omitempty" json:"verbose,omitempty"`
}

// NewDefaultConfig creates a new Config with all default values.
func NewDefaultConfig() *Config {
	return &Config{
		RootName:      DefaultRootName,
		IndexCapacity: DefaultIndexCapacity,
		LogLvl:        VerbosityToLevel(DefaultVerbosity),
	}
}

// NewConfig creates a Config from defaults with the override applied on top.
// A nil override yields pure defaults.
func NewConfig(override *ConfigOverride) *Config {
	cfg := NewDefaultConfig()
	if override != nil {
		cfg.Merge(override)
	}
	return cfg
}

// Merge applies non-nil values from override onto this Config. This allows
// partial configuration updates while preserving existing values.
func (c *Config) Merge(override *ConfigOverride) {
	if override.RootName != nil && *override.RootName != "" {
		c.RootName = *override.RootName
	}
	if override.IndexCapacity != nil && *override.IndexCapacity > 0 {
		c.IndexCapacity = *override.IndexCapacity
	}
	if override.Verbose != nil {
		c.LogLvl = VerbosityToLevel(*override.Verbose)
	}
}

// VerbosityToLevel converts the user-facing 1..5 verbosity scale to a log
// level, clamping out-of-range values.
func VerbosityToLevel(verbose int) util.LogLevel {
	if verbose < MinVerbosity {
		verbose = MinVerbosity
	}
	if verbose > MaxVerbosity {
		verbose = MaxVerbosity
	}
	levels := [5]util.LogLevel{util.ErrorLevel, util.WarnLevel, util.InfoLevel, util.DebugLevel, util.TraceLevel}
	return levels[verbose-1]
}

// LoadConfigOverrideFile loads configuration overrides from a file without
// merging. Supports both YAML (.yaml, .yml) and JSON (.json) formats.
func LoadConfigOverrideFile(path string) (*ConfigOverride, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var override ConfigOverride

	// Determine format by file extension
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	case ".json":
		if err := json.Unmarshal(data, &override); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config file: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown config file extension: %s", path)
	}

	return &override, nil
}

// NewConfigFromFile creates a new Config by merging file overrides with
// defaults.
func NewConfigFromFile(path string) (*Config, error) {
	override, err := LoadConfigOverrideFile(path)
	if err != nil {
		return nil, err
	}
	return NewConfig(override), nil
}

// Package config handles the interpretation of the generator
// configuration in one place: compiled-in defaults, then an optional
// YAML or INI file merged on top, then command-line flags applied by
// the caller.
package config

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"
)

// Config is a simple structure shared across all components, with safe
// and reliable values after NewConfig returns.
type Config struct {
	// Input. Exactly one of InputFile, InputDir and JaegerURL must be
	// set by the time Validate runs.
	InputFile string
	InputDir  string
	JaegerURL string

	// Jaeger API query parameters.
	Service  string
	Lookback string
	Limit    int

	// Output
	OutputDir    string
	DiagramType  string // sequence, component, interfaces, deployment, unified or all
	Format       string // papyrus or magicdraw
	IncludeMarte bool

	// internal telemetry
	StatsdEnabled bool
	StatsdHost    string
	StatsdPort    int

	// logging
	LogLevel string
}

// NewDefaultConfig returns a configuration with the default values.
func NewDefaultConfig() *Config {
	return &Config{
		Lookback: "24h",
		Limit:    20,

		OutputDir:    "output",
		DiagramType:  "all",
		Format:       "papyrus",
		IncludeMarte: true,

		StatsdEnabled: false,
		StatsdHost:    "localhost",
		StatsdPort:    8125,

		LogLevel: "info",
	}
}

// NewConfig creates the Config from the standard config sources. Either
// file may be nil; defaults apply where a source is silent.
func NewConfig(iniConf *File, yamlConf *YamlConfig) (*Config, error) {
	c := NewDefaultConfig()

	if iniConf != nil {
		if err := mergeIniConfig(c, iniConf); err != nil {
			return nil, err
		}
	}
	if yamlConf != nil {
		mergeYamlConfig(c, yamlConf)
	}
	return c, nil
}

// Load reads the configuration file at path, dispatching on its
// extension. A missing file is not an error; the defaults stand.
func Load(path string) (*Config, error) {
	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		yamlConf, err := NewYamlIfExists(path)
		if err != nil {
			return nil, err
		}
		return NewConfig(nil, yamlConf)
	case ".ini", ".conf":
		iniConf, err := NewIniIfExists(path)
		if err != nil {
			return nil, err
		}
		return NewConfig(iniConf, nil)
	default:
		return nil, fmt.Errorf("config: unsupported config file %q, must be .yaml or .ini", path)
	}
}

// Validate checks the cross-field constraints that individual sources
// cannot enforce on their own.
func (c *Config) Validate() error {
	sources := 0
	if c.InputFile != "" {
		sources++
	}
	if c.InputDir != "" {
		sources++
	}
	if c.JaegerURL != "" {
		sources++
	}
	if sources == 0 {
		return errors.New("config: no input source, set one of file, dir or url")
	}
	if sources > 1 {
		return errors.New("config: file, dir and url are mutually exclusive")
	}

	switch c.DiagramType {
	case "all", "sequence", "component", "interfaces", "deployment", "unified":
	default:
		return errors.Errorf("config: unknown diagram type %q", c.DiagramType)
	}

	if c.Limit <= 0 {
		return errors.Errorf("config: limit must be positive, got %d", c.Limit)
	}
	return nil
}

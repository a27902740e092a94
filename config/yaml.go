package config

import (
	"os"

	"github.com/pkg/errors"
	yaml "gopkg.in/yaml.v2"
)

// YamlConfig is a structure used for marshaling the generator.yaml
// configuration file.
type YamlConfig struct {
	InputFile string `yaml:"input_file"`
	InputDir  string `yaml:"input_dir"`
	JaegerURL string `yaml:"jaeger_url"`

	Service  string `yaml:"service"`
	Lookback string `yaml:"lookback"`
	Limit    int    `yaml:"limit"`

	OutputDir    string `yaml:"output_dir"`
	DiagramType  string `yaml:"diagram_type"`
	Format       string `yaml:"format"`
	IncludeMarte *bool  `yaml:"include_marte"`

	LogLevel string `yaml:"log_level"`

	Statsd struct {
		Enabled bool   `yaml:"enabled"`
		Host    string `yaml:"host"`
		Port    int    `yaml:"port"`
	} `yaml:"statsd"`
}

// NewYamlIfExists returns a new YamlConfig if the given configPath
// exists, (nil, nil) otherwise.
func NewYamlIfExists(configPath string) (*YamlConfig, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, nil
	}
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, errors.Wrapf(err, "config: cannot read %s", configPath)
	}
	var yamlConf YamlConfig
	if err := yaml.Unmarshal(content, &yamlConf); err != nil {
		return nil, errors.Wrapf(err, "config: parse error in %s", configPath)
	}
	return &yamlConf, nil
}

func mergeYamlConfig(c *Config, yc *YamlConfig) {
	if yc.InputFile != "" {
		c.InputFile = yc.InputFile
	}
	if yc.InputDir != "" {
		c.InputDir = yc.InputDir
	}
	if yc.JaegerURL != "" {
		c.JaegerURL = yc.JaegerURL
	}
	if yc.Service != "" {
		c.Service = yc.Service
	}
	if yc.Lookback != "" {
		c.Lookback = yc.Lookback
	}
	if yc.Limit > 0 {
		c.Limit = yc.Limit
	}

	if yc.OutputDir != "" {
		c.OutputDir = yc.OutputDir
	}
	if yc.DiagramType != "" {
		c.DiagramType = yc.DiagramType
	}
	if yc.Format != "" {
		c.Format = yc.Format
	}
	// A pointer distinguishes "absent" from an explicit false.
	if yc.IncludeMarte != nil {
		c.IncludeMarte = *yc.IncludeMarte
	}

	if yc.LogLevel != "" {
		c.LogLevel = yc.LogLevel
	}

	c.StatsdEnabled = yc.Statsd.Enabled
	if yc.Statsd.Host != "" {
		c.StatsdHost = yc.Statsd.Host
	}
	if yc.Statsd.Port > 0 {
		c.StatsdPort = yc.Statsd.Port
	}
}

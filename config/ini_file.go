package config

import (
	"fmt"
	"os"

	"github.com/go-ini/ini"
)

// A File is a representation of an ini file with some custom
// convenience methods.
type File struct {
	instance *ini.File
	Path     string
}

// NewIni reads the file in configPath and returns a corresponding
// *File or an error if encountered.
func NewIni(configPath string) (*File, error) {
	config, err := ini.Load(configPath)
	if err != nil {
		return nil, err
	}
	return &File{instance: config, Path: configPath}, nil
}

// NewIniIfExists works like NewIni but returns (nil, nil) when no file
// exists at configPath.
func NewIniIfExists(configPath string) (*File, error) {
	if _, err := os.Stat(configPath); err != nil {
		return nil, nil
	}
	return NewIni(configPath)
}

// Get returns a value from the section/name pair, or an error if it
// can't be found.
func (c *File) Get(section, name string) (string, error) {
	if !c.instance.Section(section).HasKey(name) {
		return "", fmt.Errorf("missing `%s` value in [%s] section", name, section)
	}
	return c.instance.Section(section).Key(name).String(), nil
}

// GetDefault attempts to get the value in section/name, but returns
// the default if one is not found.
func (c *File) GetDefault(section, name string, defaultVal string) string {
	if !c.instance.Section(section).HasKey(name) {
		return defaultVal
	}
	return c.instance.Section(section).Key(name).String()
}

// GetBool returns a truthy config value. 'true' is considered true,
// everything else false.
func (c *File) GetBool(section, name string, defaultVal bool) bool {
	if !c.instance.Section(section).HasKey(name) {
		return defaultVal
	}
	return c.instance.Section(section).Key(name).String() == "true"
}

// GetInt gets an integer value from section/name, or an error if it is
// missing or cannot be converted to an integer.
func (c *File) GetInt(section, name string) (int, error) {
	value, err := c.instance.Section(section).Key(name).Int()
	if err != nil {
		return 0, fmt.Errorf("missing `%s` value in [%s] section", name, section)
	}
	return value, nil
}

// GetIntDefault gets an integer value from section/name, returning
// defaultVal if any kind of error occurs.
func (c *File) GetIntDefault(section, name string, defaultVal int) int {
	value, err := c.GetInt(section, name)
	if err != nil {
		return defaultVal
	}
	return value
}

func mergeIniConfig(c *Config, conf *File) error {
	c.InputFile = conf.GetDefault("input", "file", c.InputFile)
	c.InputDir = conf.GetDefault("input", "dir", c.InputDir)
	c.JaegerURL = conf.GetDefault("input", "jaeger_url", c.JaegerURL)
	c.Service = conf.GetDefault("input", "service", c.Service)
	c.Lookback = conf.GetDefault("input", "lookback", c.Lookback)
	c.Limit = conf.GetIntDefault("input", "limit", c.Limit)

	c.OutputDir = conf.GetDefault("output", "dir", c.OutputDir)
	c.DiagramType = conf.GetDefault("output", "diagram_type", c.DiagramType)
	c.Format = conf.GetDefault("output", "format", c.Format)
	c.IncludeMarte = conf.GetBool("output", "include_marte", c.IncludeMarte)

	c.StatsdEnabled = conf.GetBool("statsd", "enabled", c.StatsdEnabled)
	c.StatsdHost = conf.GetDefault("statsd", "host", c.StatsdHost)
	c.StatsdPort = conf.GetIntDefault("statsd", "port", c.StatsdPort)

	c.LogLevel = conf.GetDefault("main", "log_level", c.LogLevel)
	return nil
}

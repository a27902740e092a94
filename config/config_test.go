package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewDefaultConfig(t *testing.T) {
	assert := assert.New(t)

	c := NewDefaultConfig()
	assert.Equal("24h", c.Lookback)
	assert.Equal(20, c.Limit)
	assert.Equal("output", c.OutputDir)
	assert.Equal("all", c.DiagramType)
	assert.Equal("papyrus", c.Format)
	assert.True(c.IncludeMarte)
	assert.False(c.StatsdEnabled)
	assert.Equal("localhost", c.StatsdHost)
	assert.Equal(8125, c.StatsdPort)
	assert.Equal("info", c.LogLevel)
}

func TestLoadYaml(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "generator.yaml")
	content := `
jaeger_url: http://jaeger:16686
service: frontend
limit: 50
output_dir: /tmp/models
diagram_type: unified
format: magicdraw
include_marte: false
log_level: debug
statsd:
  enabled: true
  host: stats.local
  port: 8126
`
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	assert.NoError(err)
	assert.Equal("http://jaeger:16686", c.JaegerURL)
	assert.Equal("frontend", c.Service)
	assert.Equal(50, c.Limit)
	// Unset keys keep their defaults.
	assert.Equal("24h", c.Lookback)
	assert.Equal("/tmp/models", c.OutputDir)
	assert.Equal("unified", c.DiagramType)
	assert.Equal("magicdraw", c.Format)
	assert.False(c.IncludeMarte)
	assert.Equal("debug", c.LogLevel)
	assert.True(c.StatsdEnabled)
	assert.Equal("stats.local", c.StatsdHost)
	assert.Equal(8126, c.StatsdPort)
}

func TestLoadIni(t *testing.T) {
	assert := assert.New(t)

	path := filepath.Join(t.TempDir(), "generator.ini")
	content := `
[main]
log_level = debug

[input]
dir = /data/traces
limit = 10

[output]
dir = /tmp/models
format = magicdraw
include_marte = false

[statsd]
enabled = true
port = 8126
`
	assert.NoError(os.WriteFile(path, []byte(content), 0o644))

	c, err := Load(path)
	assert.NoError(err)
	assert.Equal("/data/traces", c.InputDir)
	assert.Equal(10, c.Limit)
	assert.Equal("24h", c.Lookback)
	assert.Equal("/tmp/models", c.OutputDir)
	assert.Equal("magicdraw", c.Format)
	assert.False(c.IncludeMarte)
	assert.Equal("debug", c.LogLevel)
	assert.True(c.StatsdEnabled)
	assert.Equal(8126, c.StatsdPort)
	assert.Equal("localhost", c.StatsdHost)
}

func TestLoadMissingFileKeepsDefaults(t *testing.T) {
	assert := assert.New(t)

	c, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.NoError(err)
	assert.Equal("all", c.DiagramType)
}

func TestLoadUnsupportedExtension(t *testing.T) {
	assert := assert.New(t)

	_, err := Load("config.toml")
	assert.Error(err)
}

func TestValidate(t *testing.T) {
	assert := assert.New(t)

	c := NewDefaultConfig()
	assert.Error(c.Validate(), "no input source")

	c.InputFile = "traces.json"
	assert.NoError(c.Validate())

	c.JaegerURL = "http://jaeger:16686"
	assert.Error(c.Validate(), "two input sources")

	c.JaegerURL = ""
	c.DiagramType = "pie-chart"
	assert.Error(c.Validate())

	c.DiagramType = "interfaces"
	c.Limit = 0
	assert.Error(c.Validate())
}

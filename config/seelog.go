package config

import (
	"encoding/xml"
	"strings"

	log "github.com/cihub/seelog"
)

type outputs struct {
	FormatID string `xml:"formatid,attr"`
	Console  string `xml:",innerxml"`
}

type format struct {
	ID     string `xml:"id,attr"`
	Format string `xml:"format,attr"`
}

type formats struct {
	Format format `xml:"format"`
}

type seelog struct {
	XMLName  xml.Name `xml:"seelog"`
	Outputs  outputs  `xml:"outputs,omitempty"`
	Formats  formats  `xml:"formats,omitempty"`
	LogLevel string   `xml:"minlevel,attr"`
}

func newSeelogConfig() seelog {
	return seelog{
		Outputs: outputs{"common", "<console />"},
		Formats: formats{
			format{
				ID:     "common",
				Format: "%Date %Time %LEVEL (%File:%Line) - %Msg%n",
			},
		},
		LogLevel: "info",
	}
}

func (s seelog) String() string {
	b, err := xml.MarshalIndent(s, "", "  ")
	if err != nil {
		return ""
	}
	return string(b)
}

// NewLoggerLevel sets up the global logger at debug or info level.
func NewLoggerLevel(debug bool) error {
	if debug {
		return NewLoggerLevelCustom("debug")
	}
	return NewLoggerLevelCustom("info")
}

// NewLoggerLevelCustom replaces the global logger with one at the given
// level. Unknown levels fall back to info.
func NewLoggerLevelCustom(level string) error {
	cfg := newSeelogConfig()
	ll, ok := log.LogLevelFromString(strings.ToLower(level))
	if !ok {
		ll = log.InfoLvl
	}
	cfg.LogLevel = ll.String()

	l, err := log.LoggerFromConfigAsString(cfg.String())
	if err != nil {
		return err
	}
	log.ReplaceLogger(l)
	return nil
}

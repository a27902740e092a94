// Package statsd wraps the dogstatsd client behind a small interface so
// telemetry stays optional: until Configure succeeds the global Client
// is a nil dogstatsd client, which silently drops every metric.
package statsd

import (
	"fmt"

	"github.com/DataDog/datadog-go/statsd"

	"github.com/HiImLuxifer/UML-Generator/config"
)

// StatsClient represents a client capable of sending stats to some
// stat endpoint.
type StatsClient interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
}

// Client is the global stats client. When a client is configured via
// Configure, that becomes the new global client in the package.
var Client StatsClient = (*statsd.Client)(nil)

// Configure creates a statsd client from the configuration and sets it
// as the global Client. It is a no-op unless telemetry is enabled.
func Configure(conf *config.Config) error {
	if !conf.StatsdEnabled {
		return nil
	}
	client, err := statsd.New(fmt.Sprintf("%s:%d", conf.StatsdHost, conf.StatsdPort))
	if err != nil {
		return err
	}

	Client = client
	return nil
}

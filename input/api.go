package input

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/avast/retry-go"
	log "github.com/cihub/seelog"
	"github.com/pkg/errors"

	"github.com/HiImLuxifer/UML-Generator/model"
)

const (
	defaultLookback = "24h"
	apiTimeout      = 30 * time.Second
	apiRetries      = 3
)

// APIClient fetches traces from a Jaeger query API endpoint.
type APIClient struct {
	BaseURL  string
	Service  string
	Lookback string
	Limit    int

	client *http.Client
}

// NewAPIClient returns a client against the given Jaeger base URL
// (e.g. http://localhost:16686), optionally filtering by service name.
func NewAPIClient(baseURL, service, lookback string, limit int) *APIClient {
	if lookback == "" {
		lookback = defaultLookback
	}
	return &APIClient{
		BaseURL:  strings.TrimRight(baseURL, "/"),
		Service:  service,
		Lookback: lookback,
		Limit:    limit,
		client:   &http.Client{Timeout: apiTimeout},
	}
}

// ReadTraces implements TraceReader. Transient fetch failures are
// retried before giving up.
func (c *APIClient) ReadTraces() ([]*model.Trace, error) {
	query := url.Values{}
	query.Set("limit", strconv.Itoa(c.Limit))
	query.Set("lookback", c.Lookback)
	if c.Service != "" {
		query.Set("service", c.Service)
		log.Debugf("filtering traces by service: %s", c.Service)
	}
	apiURL := c.BaseURL + "/api/traces?" + query.Encode()

	log.Debugf("fetching traces from Jaeger: %s", c.BaseURL)

	var raw []byte
	err := retry.Do(
		func() error {
			var fetchErr error
			raw, fetchErr = c.fetch(apiURL)
			return fetchErr
		},
		retry.Attempts(apiRetries),
		retry.Delay(time.Second),
		retry.LastErrorOnly(true),
	)
	if err != nil {
		return nil, errors.Wrap(err, "input: failed to fetch traces from Jaeger")
	}

	traces, err := parseTraces(raw)
	if err != nil {
		return nil, errors.Wrap(err, "input: invalid Jaeger API response")
	}

	log.Debugf("fetched %d trace(s) from Jaeger API", len(traces))
	return traces, nil
}

func (c *APIClient) fetch(apiURL string) ([]byte, error) {
	resp, err := c.client.Get(apiURL)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}

// Package client talks to a bot-messaging API server over HTTP/JSON and
// runs the long-polling update loop.
//
// Every remote call is a POST to <endpoint>/<method> whose body is the JSON
// array of the call's arguments, the last usually being an object of
// optional arguments. Results come back as JSON and are decoded against the
// schema in package types; values decoded by a Client carry it as their
// back-reference, so conveniences like Message.Reply work directly.
package client

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/reoring/kruto/dispatch"
	"github.com/reoring/kruto/types"
)

// DefaultRetryInterval is the pause after a failed update fetch.
const DefaultRetryInterval = 5 * time.Second

// DefaultChunkSize bounds the chunks a Stream yields.
const DefaultChunkSize = 64 << 10

// Config holds configuration for creating a Client.
type Config struct {
	// Endpoint is the base URL of the API server. A trailing slash is added
	// when missing.
	Endpoint string
	// HTTPClient is used for all requests. If nil, http.DefaultClient is used.
	HTTPClient *http.Client
	// Logger is used for structured logging. If nil, slog.Default() is used.
	Logger *slog.Logger
	// RetryInterval is the wait after a failed fetch. Zero means
	// DefaultRetryInterval.
	RetryInterval time.Duration
	// Sleep waits between retries. It must return early with ctx.Err() when
	// ctx is done. If nil, a timer is used.
	Sleep func(ctx context.Context, d time.Duration) error
	// Registerer receives the client metrics. If nil, they are not exported.
	Registerer prometheus.Registerer
	// ChunkSize is the largest chunk a Stream yields. Zero means
	// DefaultChunkSize.
	ChunkSize int
}

// Client is a connection to one API server. It is safe for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *Metrics
	retry      time.Duration
	sleep      func(context.Context, time.Duration) error
	chunkSize  int

	handlers   *dispatch.Registry[*Client, types.Update]
	dispatcher *dispatch.Dispatcher[*Client, types.Update]
	state      atomic.Int32
}

var _ types.Caller = (*Client)(nil)

// New creates a Client.
func New(config Config) (*Client, error) {
	if config.Endpoint == "" {
		return nil, fmt.Errorf("client: Endpoint is required")
	}
	u, err := url.Parse(config.Endpoint)
	if err != nil {
		return nil, fmt.Errorf("client: invalid Endpoint %q: %w", config.Endpoint, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, fmt.Errorf("client: Endpoint %q must be an http or https URL", config.Endpoint)
	}
	if config.RetryInterval < 0 {
		return nil, fmt.Errorf("client: RetryInterval must not be negative")
	}

	httpClient := config.HTTPClient
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}
	retry := config.RetryInterval
	if retry == 0 {
		retry = DefaultRetryInterval
	}
	sleep := config.Sleep
	if sleep == nil {
		sleep = sleepContext
	}
	chunk := config.ChunkSize
	if chunk <= 0 {
		chunk = DefaultChunkSize
	}
	metrics, err := NewMetrics(config.Registerer)
	if err != nil {
		return nil, fmt.Errorf("client: register metrics: %w", err)
	}

	endpoint := config.Endpoint
	if !strings.HasSuffix(endpoint, "/") {
		endpoint += "/"
	}
	handlers := &dispatch.Registry[*Client, types.Update]{}
	return &Client{
		endpoint:   endpoint,
		httpClient: httpClient,
		logger:     logger,
		metrics:    metrics,
		retry:      retry,
		sleep:      sleep,
		chunkSize:  chunk,
		handlers:   handlers,
		dispatcher: dispatch.New(handlers, logger),
	}, nil
}

// Metrics returns the client counters.
func (c *Client) Metrics() *Metrics { return c.metrics }

// Logger returns the logger the client writes to.
func (c *Client) Logger() *slog.Logger { return c.logger }

func sleepContext(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

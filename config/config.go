// Package config loads the YAML configuration shared by the kruto commands.
package config

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"gopkg.in/yaml.v3"

	"github.com/reoring/kruto/client"
)

// Config is the top-level configuration.
type Config struct {
	// Endpoint is the base URL of the API server. Required.
	Endpoint string `yaml:"endpoint"`

	// RetryInterval is the wait after a failed update fetch, e.g. "5s".
	// Defaults to 5s.
	RetryInterval time.Duration `yaml:"retry_interval"`

	// RequestTimeout bounds each HTTP request. Zero disables the timeout,
	// which long polling usually needs.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// ChunkSize is the largest chunk a download yields.
	ChunkSize int `yaml:"chunk_size"`

	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the slog handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error. Defaults to info.
	Level string `yaml:"level"`
	// Format is text or json. Defaults to text.
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Listen is the address serving /metrics, e.g. ":9090". Empty disables it.
	Listen string `yaml:"listen"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		RetryInterval: client.DefaultRetryInterval,
		ChunkSize:     client.DefaultChunkSize,
		Log:           LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads the file at path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes YAML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && err != io.EOF {
		return nil, fmt.Errorf("config: parse: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Endpoint == "" {
		return fmt.Errorf("config: endpoint is required")
	}
	u, err := url.Parse(c.Endpoint)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("config: endpoint %q must be an absolute http or https URL", c.Endpoint)
	}
	if c.RetryInterval <= 0 {
		return fmt.Errorf("config: retry_interval must be positive, got %s", c.RetryInterval)
	}
	if c.RequestTimeout < 0 {
		return fmt.Errorf("config: request_timeout must not be negative")
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("config: chunk_size must not be negative")
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("config: unknown log format %q (supported: text, json)", c.Log.Format)
	}
	return nil
}

// NewLogger builds the slog logger described by the log section.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, _ := parseLevel(c.Log.Level)
	opts := &slog.HandlerOptions{Level: level}
	if c.Log.Format == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// ClientConfig maps the configuration onto a client.Config.
func (c *Config) ClientConfig(logger *slog.Logger, reg prometheus.Registerer) client.Config {
	cc := client.Config{
		Endpoint:      c.Endpoint,
		Logger:        logger,
		RetryInterval: c.RetryInterval,
		Registerer:    reg,
		ChunkSize:     c.ChunkSize,
	}
	if c.RequestTimeout > 0 {
		cc.HTTPClient = &http.Client{Timeout: c.RequestTimeout}
	}
	return cc
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "", "info":
		return slog.LevelInfo, nil
	case "debug":
		return slog.LevelDebug, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("config: unknown log level %q (supported: debug, info, warn, error)", s)
}

// Command echobot replies to every text message with the same text and to
// anything else with a prompt.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	flag "github.com/spf13/pflag"

	"github.com/reoring/kruto/client"
	"github.com/reoring/kruto/config"
	"github.com/reoring/kruto/dispatch"
	"github.com/reoring/kruto/filters"
	"github.com/reoring/kruto/types"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	endpoint := flag.String("endpoint", "", "API endpoint, overrides the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath, *endpoint)
	if err != nil {
		fatalf("echobot: %v", err)
	}
	logger := cfg.NewLogger(os.Stderr)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if cfg.Metrics.Listen != "" {
		go serveMetrics(logger, cfg.Metrics.Listen, reg)
	}

	c, err := client.New(cfg.ClientConfig(logger, reg))
	if err != nil {
		fatalf("echobot: %v", err)
	}
	register(c)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	if err := c.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("update loop ended", "error", err)
		os.Exit(1)
	}
}

func loadConfig(path, endpoint string) (*config.Config, error) {
	cfg := config.Default()
	if path != "" {
		var err error
		if cfg, err = config.Load(path); err != nil {
			return nil, err
		}
	}
	if endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, cfg.Validate()
}

func register(c *client.Client) {
	c.OnNewMessage(filters.Text, func(ctx context.Context, _ *client.Client, m types.Message) (dispatch.Continuation, error) {
		_, err := m.Base().Reply(ctx, m.(*types.MessageText).Text, nil)
		return dispatch.Continue, err
	})
	c.OnNewMessage(filters.Text.Not(), func(ctx context.Context, _ *client.Client, m types.Message) (dispatch.Continuation, error) {
		_, err := m.Base().Reply(ctx, "Say what", nil)
		return dispatch.Continue, err
	})
}

func serveMetrics(logger *slog.Logger, addr string, reg *prometheus.Registry) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	logger.Info("serving metrics", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

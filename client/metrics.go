package client

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the counters a Client maintains. They are created for every
// client and registered only when Config.Registerer is set.
type Metrics struct {
	Requests        *prometheus.CounterVec
	Polls           prometheus.Counter
	FetchFailures   *prometheus.CounterVec
	Updates         *prometheus.CounterVec
	HandlerFailures prometheus.Counter
	Stops           prometheus.Counter
}

// NewMetrics creates the client counters and registers them on reg when it
// is not nil. Collectors already registered on reg are reused.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		Requests: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kruto",
				Subsystem: "client",
				Name:      "requests_total",
				Help:      "Remote calls by method and outcome",
			},
			[]string{"method", "outcome"},
		),
		Polls: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kruto",
			Subsystem: "poller",
			Name:      "polls_total",
			Help:      "Update batches requested",
		}),
		FetchFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kruto",
				Subsystem: "poller",
				Name:      "fetch_failures_total",
				Help:      "Failed update fetches by error class",
			},
			[]string{"class"},
		),
		Updates: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "kruto",
				Subsystem: "poller",
				Name:      "updates_total",
				Help:      "Updates received by variant",
			},
			[]string{"variant"},
		),
		HandlerFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kruto",
			Subsystem: "dispatch",
			Name:      "handler_failures_total",
			Help:      "Handlers that returned an error or panicked",
		}),
		Stops: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "kruto",
			Subsystem: "dispatch",
			Name:      "stopped_total",
			Help:      "Updates whose propagation was stopped by a handler",
		}),
	}
	if reg == nil {
		return m, nil
	}
	var err error
	if m.Requests, err = register(reg, m.Requests); err != nil {
		return nil, err
	}
	if m.Polls, err = register(reg, m.Polls); err != nil {
		return nil, err
	}
	if m.FetchFailures, err = register(reg, m.FetchFailures); err != nil {
		return nil, err
	}
	if m.Updates, err = register(reg, m.Updates); err != nil {
		return nil, err
	}
	if m.HandlerFailures, err = register(reg, m.HandlerFailures); err != nil {
		return nil, err
	}
	if m.Stops, err = register(reg, m.Stops); err != nil {
		return nil, err
	}
	return m, nil
}

func register[C prometheus.Collector](reg prometheus.Registerer, c C) (C, error) {
	if err := reg.Register(c); err != nil {
		var are prometheus.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(C); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

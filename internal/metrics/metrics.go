// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package metrics exposes the process's prometheus instrumentation: dispatch
// queue depth, per-event counters and durations, and circuit breaker state,
// grounded on cartographus's internal/metrics package and on how
// internal/sync/circuit_breaker.go in that repo names its breaker gauges.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// QueueDepth reports how many events are currently buffered on the
	// network dispatch channel (spec §5: bounded at 500).
	QueueDepth = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "servarr_tui",
		Subsystem: "network",
		Name:      "queue_depth",
		Help:      "Number of backend-events buffered on the dispatch channel.",
	})

	// InFlight is 1 while the dispatch loop is actively processing an event,
	// 0 while idle. Mirrors the state.App.IsLoading flag (spec §4.1).
	InFlight = prometheus.NewGauge(prometheus.GaugeOpts{
		Namespace: "servarr_tui",
		Subsystem: "network",
		Name:      "in_flight",
		Help:      "1 while a backend-event is being processed.",
	})

	// EventsTotal counts dispatched events by backend, kind, and outcome.
	EventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "servarr_tui",
		Subsystem: "network",
		Name:      "events_total",
		Help:      "Backend-events processed, partitioned by backend, kind, and outcome.",
	}, []string{"backend", "kind", "outcome"})

	// EventDuration observes how long each event took end to end.
	EventDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "servarr_tui",
		Subsystem: "network",
		Name:      "event_duration_seconds",
		Help:      "Time to process one backend-event.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"backend", "kind"})

	// CircuitBreakerState is 0=closed, 1=half-open, 2=open, per backend.
	CircuitBreakerState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "servarr_tui",
		Subsystem: "circuit_breaker",
		Name:      "state",
		Help:      "Circuit breaker state per backend (0=closed, 1=half-open, 2=open).",
	}, []string{"backend"})

	// CircuitBreakerConsecutiveFailures tracks the current failure streak.
	CircuitBreakerConsecutiveFailures = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "servarr_tui",
		Subsystem: "circuit_breaker",
		Name:      "consecutive_failures",
		Help:      "Consecutive request failures observed by the breaker.",
	}, []string{"backend"})

	// CircuitBreakerTransitions counts state transitions per backend.
	CircuitBreakerTransitions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "servarr_tui",
		Subsystem: "circuit_breaker",
		Name:      "transitions_total",
		Help:      "Circuit breaker state transitions.",
	}, []string{"backend", "from", "to"})

	// CircuitBreakerRequests counts requests the breaker allowed or rejected.
	CircuitBreakerRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "servarr_tui",
		Subsystem: "circuit_breaker",
		Name:      "requests_total",
		Help:      "Requests seen by the breaker, partitioned by outcome.",
	}, []string{"backend", "outcome"})
)

// Registry is the collector registry the dashboard entrypoint serves on
// /metrics at SERVARR_METRICS_ADDR (default 127.0.0.1:9187); CLI mode does
// not serve it.
var Registry = prometheus.NewRegistry()

func init() {
	Registry.MustRegister(
		QueueDepth,
		InFlight,
		EventsTotal,
		EventDuration,
		CircuitBreakerState,
		CircuitBreakerConsecutiveFailures,
		CircuitBreakerTransitions,
		CircuitBreakerRequests,
	)
}

// BreakerStateValue maps gobreaker's State.String() to the gauge value this
// package uses (0/1/2), matching the ordering gobreaker documents.
func BreakerStateValue(state string) float64 {
	switch state {
	case "closed":
		return 0
	case "half-open":
		return 1
	case "open":
		return 2
	default:
		return -1
	}
}

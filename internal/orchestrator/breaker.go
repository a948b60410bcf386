// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package orchestrator implements spec §4.3: one Dispatch method per backend
// that resolves a backend-event to an HTTP call (or sequence of calls, for
// the fetch-modify-put archetype), wrapped in a circuit breaker per backend,
// grounded on cartographus's internal/sync/circuit_breaker.go.
package orchestrator

import (
	"context"
	"errors"
	"strings"
	"time"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/logging"
	"github.com/tomtom215/servarr-tui/internal/metrics"
	"github.com/tomtom215/servarr-tui/internal/models"
)

// Dispatcher is implemented by each backend's orchestrator, letting
// internal/network hold all three behind one interface.
type Dispatcher interface {
	Dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error)
}

// newBreaker builds a per-backend circuit breaker with the same trip/recover
// thresholds cartographus uses for its Tautulli client, parameterised by
// name so each backend gets its own metrics series.
func newBreaker(name string) *gobreaker.CircuitBreaker[models.Serdeable] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[models.Serdeable](gobreaker.Settings{
		Name:        name,
		MaxRequests: 3,
		Interval:    time.Minute,
		Timeout:     2 * time.Minute,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if counts.Requests < 10 {
				return false
			}
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return failureRatio >= 0.6
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logging.Warn().Str("backend", name).Str("from", from.String()).Str("to", to.String()).
				Msg("circuit breaker state transition")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(metrics.BreakerStateValue(to.String()))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
			if to == gobreaker.StateClosed {
				metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
			}
		},
	})
}

// execute runs fn through the breaker and records the request outcome,
// mirroring cartographus's CircuitBreakerClient.execute.
func execute(name string, cb *gobreaker.CircuitBreaker[models.Serdeable], fn func() (models.Serdeable, error)) (models.Serdeable, error) {
	result, err := cb.Execute(fn)
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
		} else {
			metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
			metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(float64(cb.Counts().ConsecutiveFailures))
		}
		return models.Serdeable{}, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	return result, nil
}

// splitTagLabels turns a comma-separated label list into trimmed,
// lowercased, non-empty labels, the first step of the tag-resolution side
// loop archetype B's edit events run before a PUT (spec §4.3). Lowercasing
// before the BiMap lookup is required so that e.g. "Anime" resolves to an
// existing "anime" tag instead of creating a spurious duplicate.
func splitTagLabels(input string) []string {
	if input == "" {
		return nil
	}
	parts := strings.Split(input, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

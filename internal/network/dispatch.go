// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package network

import (
	"context"
	"errors"
	"time"

	"github.com/tomtom215/servarr-tui/internal/apperr"
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/logging"
	"github.com/tomtom215/servarr-tui/internal/metrics"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/orchestrator"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// Loop is the network dispatch loop of spec §4.2: a suture.Service that
// drains Queue in FIFO order, routes each event to the matching backend's
// orchestrator, and applies the result back into state.App.
type Loop struct {
	Queue  *Queue
	App    *state.App
	Radarr orchestrator.Dispatcher
	Sonarr orchestrator.Dispatcher
	Lidarr orchestrator.Dispatcher
}

// NewLoop builds a dispatch Loop.
func NewLoop(q *Queue, app *state.App, radarr, sonarr, lidarr orchestrator.Dispatcher) *Loop {
	return &Loop{Queue: q, App: app, Radarr: radarr, Sonarr: sonarr, Lidarr: lidarr}
}

// Serve implements suture.Service: it runs until ctx is cancelled, the
// shape cartographus's long-running services (e.g.
// internal/sync/plex_session_poller.go) implement to be supervised.
func (l *Loop) Serve(ctx context.Context) error {
	messages, err := l.Queue.Messages(ctx)
	if err != nil {
		return err
	}
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case msg, ok := <-messages:
			if !ok {
				return nil
			}
			ev, found := l.Queue.Take(msg)
			if found {
				l.process(ctx, ev)
			}
			msg.Ack()
			metrics.QueueDepth.Set(float64(l.Queue.Depth()))
		}
	}
}

// dispatcherFor resolves which backend's orchestrator handles ev.
func (l *Loop) dispatcherFor(b models.Backend) orchestrator.Dispatcher {
	switch b {
	case models.BackendRadarr:
		return l.Radarr
	case models.BackendSonarr:
		return l.Sonarr
	case models.BackendLidarr:
		return l.Lidarr
	default:
		return nil
	}
}

// process runs one event to completion: sets the loading flag, dispatches
// it, applies the result or records the error, and clears the correlation
// context (spec §4.2, §7).
func (l *Loop) process(parent context.Context, ev events.Event) {
	l.App.Lock()
	l.App.IsLoading = true
	cctx, cancel := context.WithCancel(parent)
	l.App.Cancel = cancel
	l.App.Unlock()
	defer cancel()

	ctx, corrID := logging.WithCorrelationID(cctx)
	start := time.Now()
	logger := logging.Ctx(ctx)
	logger.Debug().Str("backend", ev.Backend.String()).Str("kind", string(ev.Kind)).Msg("dispatching backend-event")

	metrics.InFlight.Set(1)
	dispatcher := l.dispatcherFor(ev.Backend)
	var (
		result models.Serdeable
		err    error
	)
	if dispatcher == nil {
		err = apperr.NewLogicError("no orchestrator configured for backend %s", ev.Backend)
	} else {
		result, err = dispatcher.Dispatch(ctx, ev)
	}
	metrics.InFlight.Set(0)
	metrics.EventDuration.WithLabelValues(ev.Backend.String(), string(ev.Kind)).Observe(time.Since(start).Seconds())

	l.App.Lock()
	l.App.IsLoading = false
	l.App.Cancel = nil
	l.App.Unlock()

	if err != nil {
		if errors.Is(err, context.Canceled) {
			metrics.EventsTotal.WithLabelValues(ev.Backend.String(), string(ev.Kind), "cancelled").Inc()
			logger.Debug().Msg("event cancelled")
			return
		}
		metrics.EventsTotal.WithLabelValues(ev.Backend.String(), string(ev.Kind), "error").Inc()
		logger.Err(err).Msg("event failed")
		l.App.SetError(err.Error())
		return
	}

	metrics.EventsTotal.WithLabelValues(ev.Backend.String(), string(ev.Kind), "success").Inc()
	logger.Debug().Str("correlation_id", corrID).Msg("event succeeded")
	Apply(l.App, ev, result)
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package render implements the render/tick loop of spec §2 component H.
// Terminal widget drawing itself is an external collaborator (spec §1's
// Non-goals: "it does not lay out the terminal"); this package owns only
// the cadence — the roughly-60Hz tick, the periodic warm-up re-emission,
// and handing each tick's state snapshot to an injected Draw function.
package render

import (
	"context"
	"time"

	"github.com/tomtom215/servarr-tui/internal/network"
	"github.com/tomtom215/servarr-tui/internal/state"
	"github.com/tomtom215/servarr-tui/internal/warmup"
)

// TickInterval approximates spec §2's "60-ish-per-second" cadence.
const TickInterval = time.Second / 60

// Draw renders the current App snapshot to the terminal. The zero value (a
// nil Draw passed to NewLoop) is replaced with a no-op, which is what the
// CLI front-end effectively runs: a dispatch loop with no render surface.
type Draw func(app *state.App)

// Loop is a suture.Service: the long-lived task spec §9's design note
// describes as cooperating with the network dispatch Loop over the shared
// App and Queue, never by direct call.
type Loop struct {
	App   *state.App
	Queue *network.Queue
	Draw  Draw

	// interval overrides TickInterval; set by tests wanting a faster loop.
	interval time.Duration
}

// NewLoop builds a render Loop at the default cadence.
func NewLoop(app *state.App, queue *network.Queue, draw Draw) *Loop {
	if draw == nil {
		draw = func(*state.App) {}
	}
	return &Loop{App: app, Queue: queue, Draw: draw, interval: TickInterval}
}

// WithInterval overrides the tick cadence, used by tests.
func (l *Loop) WithInterval(d time.Duration) *Loop {
	l.interval = d
	return l
}

// Serve implements suture.Service: it runs until ctx is cancelled, ticking
// at l.interval, emitting warm-up events per spec §4.1/§4.2 when a poll is
// due, and invoking Draw every tick regardless.
func (l *Loop) Serve(ctx context.Context) error {
	interval := l.interval
	if interval <= 0 {
		interval = TickInterval
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			l.Tick()
		}
	}
}

// Tick runs exactly one frame: advance the counters, emit warm-up events if
// due, and draw. Exported so tests (and a hand-rolled event loop driving
// its own select, rather than this Serve's ticker) can step it
// deterministically.
func (l *Loop) Tick() {
	shouldPoll, wasFirstRender := l.App.Tick()
	if shouldPoll {
		route := l.App.CurrentRoute()
		if wasFirstRender {
			for _, ev := range warmup.BootEvents(route.Backend) {
				l.Queue.Enqueue(ev)
			}
		}
		for _, ev := range warmup.BlockEvents(route.Backend, route.Block) {
			l.Queue.Enqueue(ev)
		}
	}
	l.Draw(l.App)
}

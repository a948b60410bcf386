// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package network

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

type fakeDispatcher struct {
	result models.Serdeable
	err    error
}

func (f *fakeDispatcher) Dispatch(_ context.Context, _ events.Event) (models.Serdeable, error) {
	return f.result, f.err
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestLoop_Serve_AppliesSuccessfulDispatchResult(t *testing.T) {
	app := state.New()
	q := NewQueue()
	defer q.Close()

	fake := &fakeDispatcher{result: models.Serdeable{
		Radarr: &models.RadarrResult{Movies: []models.Movie{{ID: 1, Title: "Arrival"}}},
	}}
	loop := NewLoop(q, app, fake, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- loop.Serve(ctx) }()

	if _, err := q.Enqueue(events.New(models.BackendRadarr, events.KindGetMovies)); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	waitFor(t, time.Second, func() bool { return app.Radarr.Movies.Len() == 1 })

	cancel()
	select {
	case err := <-done:
		if err != nil && !errors.Is(err, context.Canceled) {
			t.Fatalf("Serve() returned %v, want context.Canceled", err)
		}
	case <-time.After(time.Second):
		t.Fatalf("Serve() did not return after cancellation")
	}
}

func TestLoop_Serve_DispatchErrorSetsAppError(t *testing.T) {
	app := state.New()
	q := NewQueue()
	defer q.Close()

	fake := &fakeDispatcher{err: errors.New("boom")}
	loop := NewLoop(q, app, fake, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Serve(ctx)

	if _, err := q.Enqueue(events.New(models.BackendRadarr, events.KindGetMovies)); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	waitFor(t, time.Second, func() bool {
		app.Lock()
		defer app.Unlock()
		return app.Error != ""
	})
}

func TestLoop_Serve_NoConfiguredOrchestratorSetsLogicError(t *testing.T) {
	app := state.New()
	q := NewQueue()
	defer q.Close()

	loop := NewLoop(q, app, nil, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go loop.Serve(ctx)

	if _, err := q.Enqueue(events.New(models.BackendRadarr, events.KindGetMovies)); err != nil {
		t.Fatalf("Enqueue() error: %v", err)
	}

	waitFor(t, time.Second, func() bool {
		app.Lock()
		defer app.Unlock()
		return app.Error != ""
	})
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package render

import (
	"context"
	"testing"
	"time"

	"github.com/ThreeDotsLabs/watermill/message"

	"github.com/tomtom215/servarr-tui/internal/network"
	"github.com/tomtom215/servarr-tui/internal/state"
)

func drainEvents(t *testing.T, q *network.Queue, n int) []*message.Message {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msgs, err := q.Messages(ctx)
	if err != nil {
		t.Fatalf("Messages() error: %v", err)
	}
	got := make([]*message.Message, 0, n)
	for len(got) < n {
		select {
		case m := <-msgs:
			m.Ack()
			got = append(got, m)
		case <-ctx.Done():
			t.Fatalf("only received %d/%d expected events before the deadline", len(got), n)
		}
	}
	return got
}

func TestLoop_Tick_FirstTickEmitsBootAndBlockWarmup(t *testing.T) {
	app := state.New()
	q := network.NewQueue()
	defer q.Close()

	var drawn int
	loop := NewLoop(app, q, func(*state.App) { drawn++ })
	loop.Tick()

	msgs := drainEvents(t, q, 1)
	if len(msgs) == 0 {
		t.Fatalf("expected at least one warm-up event on the very first tick")
	}
	if drawn != 1 {
		t.Fatalf("Draw called %d times, want 1", drawn)
	}
}

func TestLoop_Tick_NoPollEmitsNothingButStillDraws(t *testing.T) {
	app := state.New()
	q := network.NewQueue()
	defer q.Close()

	var drawn int
	loop := NewLoop(app, q, func(*state.App) { drawn++ })
	loop.Tick() // consumes first-render

	loop.Tick() // nothing due yet
	if drawn != 2 {
		t.Fatalf("Draw called %d times, want 2", drawn)
	}
}

func TestLoop_Serve_TicksAtTheConfiguredInterval(t *testing.T) {
	app := state.New()
	q := network.NewQueue()
	defer q.Close()

	var drawn int
	loop := NewLoop(app, q, func(*state.App) { drawn++ }).WithInterval(5 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Millisecond)
	defer cancel()
	_ = loop.Serve(ctx)

	if drawn < 2 {
		t.Fatalf("Draw called %d times over 60ms at a 5ms interval, want several", drawn)
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"context"
	"testing"
	"time"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/network"
	"github.com/tomtom215/servarr-tui/internal/state"
)

func newTestContext(t *testing.T) (*Context, func()) {
	t.Helper()
	q := network.NewQueue()
	return &Context{App: state.New(), Queue: q}, func() { q.Close() }
}

// takeOne drains the single event expected on the queue within a short
// deadline, failing the test if nothing arrives; later events are not read.
func takeOne(t *testing.T, c *Context) events.Event {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	msgs, err := c.Queue.Messages(ctx)
	if err != nil {
		t.Fatalf("Messages() error: %v", err)
	}
	select {
	case msg := <-msgs:
		msg.Ack()
		ev, ok := c.Queue.Take(msg)
		if !ok {
			t.Fatalf("Take() could not resolve the delivered message")
		}
		return ev
	case <-ctx.Done():
		t.Fatalf("no event enqueued within the deadline")
		return events.Event{}
	}
}

func TestChain_For_ResolvesMoviesHandlerForMoviesBlocks(t *testing.T) {
	c := NewChain()
	if h := c.For(models.BlockMovies); h == nil {
		t.Fatalf("For(BlockMovies) = nil, want MoviesHandler")
	}
	if h := c.For(models.BlockMovieDetails); h == nil {
		t.Fatalf("For(BlockMovieDetails) = nil, want MoviesHandler")
	}
}

func TestChain_For_UnmappedBlockReturnsNil(t *testing.T) {
	c := NewChain()
	if h := c.For(models.BlockHelp); h != nil {
		t.Fatalf("For(BlockHelp) = %v, want nil", h)
	}
}

func TestChain_Dispatch_TabCyclesActiveTabWithoutTouchingHandler(t *testing.T) {
	c := NewChain()
	ctx, closeQ := newTestContext(t)
	defer closeQ()

	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	before := ctx.App.ActiveTab
	c.Dispatch(ctx, ActionTab, 0)
	if ctx.App.ActiveTab == before {
		t.Fatalf("ActiveTab unchanged after ActionTab: %v", ctx.App.ActiveTab)
	}
}

func TestChain_Dispatch_TabCancelsInFlightRequestWithoutRefresh(t *testing.T) {
	c := NewChain()
	ctx, closeQ := newTestContext(t)
	defer closeQ()

	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	var cancelled bool
	ctx.App.Lock()
	ctx.App.Cancel = func() { cancelled = true }
	ctx.App.Unlock()

	c.Dispatch(ctx, ActionTab, 0)
	if !cancelled {
		t.Fatalf("ActionTab did not cancel the in-flight token")
	}
}

func TestChain_Dispatch_NotReadyDropsEverythingButEsc(t *testing.T) {
	c := NewChain()
	ctx, closeQ := newTestContext(t)
	defer closeQ()

	// Movies handler's IsReady requires a non-empty table; the table starts
	// empty, so HandleSubmit must be dropped silently.
	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	c.Dispatch(ctx, ActionEnter, 0)
	if ctx.App.CurrentRoute().Block != models.BlockMovies {
		t.Fatalf("route changed despite the handler not being ready: %v", ctx.App.CurrentRoute().Block)
	}

	// Esc always works, even while not ready.
	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovieDetails))
	c.Dispatch(ctx, ActionEsc, 0)
	if ctx.App.CurrentRoute().Block != models.BlockMovies {
		t.Fatalf("Esc did not pop back to Movies: %v", ctx.App.CurrentRoute().Block)
	}
}

func TestChain_Dispatch_SubmitOnNonEmptyMoviesDrillsIntoDetails(t *testing.T) {
	c := NewChain()
	ctx, closeQ := newTestContext(t)
	defer closeQ()

	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	ctx.App.Radarr.Movies.SetItems([]models.Movie{{ID: 5, Title: "Arrival"}})

	c.Dispatch(ctx, ActionEnter, 0)
	if ctx.App.CurrentRoute().Block != models.BlockMovieDetails {
		t.Fatalf("route = %v, want BlockMovieDetails", ctx.App.CurrentRoute().Block)
	}

	ev := takeOne(t, ctx)
	if ev.Kind != events.KindGetMovieDetails {
		t.Fatalf("emitted event kind = %v, want KindGetMovieDetails", ev.Kind)
	}
	params, ok := ev.Params.(events.DetailParams)
	if !ok || params.ID != 5 {
		t.Fatalf("emitted event params = %+v, want DetailParams{ID: 5}", ev.Params)
	}
}

func TestChain_Dispatch_DeleteOpensPromptAndSeedsCursor(t *testing.T) {
	c := NewChain()
	ctx, closeQ := newTestContext(t)
	defer closeQ()

	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	ctx.App.Radarr.Movies.SetItems([]models.Movie{{ID: 9, Title: "Arrival"}})

	c.Dispatch(ctx, ActionDelete, 0)
	if ctx.App.CurrentRoute().Block != models.BlockDeleteMoviePrompt {
		t.Fatalf("route = %v, want BlockDeleteMoviePrompt", ctx.App.CurrentRoute().Block)
	}
	if ctx.App.Radarr.DeleteTarget == nil || ctx.App.Radarr.DeleteTarget.ID != 9 {
		t.Fatalf("DeleteTarget = %v, want movie ID 9", ctx.App.Radarr.DeleteTarget)
	}
	if ctx.App.Radarr.PromptCursor == nil {
		t.Fatalf("PromptCursor not seeded for the delete prompt")
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

import (
	"testing"

	"github.com/tomtom215/servarr-tui/internal/models"
)

func TestApp_TickFirstRenderFiresBootSequence(t *testing.T) {
	a := New()
	shouldPoll, wasFirstRender := a.Tick()
	if !shouldPoll || !wasFirstRender {
		t.Fatalf("Tick() = (%v, %v), want (true, true) on the very first tick", shouldPoll, wasFirstRender)
	}
	if a.IsFirstRender {
		t.Fatalf("IsFirstRender still true after the first tick consumed it")
	}
}

func TestApp_TickOnlyFirstRenderOnce(t *testing.T) {
	a := New()
	a.Tick()
	_, wasFirstRender := a.Tick()
	if wasFirstRender {
		t.Fatalf("wasFirstRender = true on the second tick, want false")
	}
}

func TestApp_TickFiresOnTickCountExhausted(t *testing.T) {
	a := New()
	a.Tick() // consume first-render
	for i := 0; i < TicksUntilPoll-1; i++ {
		shouldPoll, _ := a.Tick()
		if shouldPoll {
			t.Fatalf("Tick() fired a poll early, at iteration %d", i)
		}
	}
	shouldPoll, _ := a.Tick()
	if !shouldPoll {
		t.Fatalf("Tick() did not fire once TickCount reached TicksUntilPoll")
	}
	if a.TickCount != 0 {
		t.Fatalf("TickCount = %d, want reset to 0 after a poll fires", a.TickCount)
	}
}

func TestApp_TickFiresOnShouldRefresh(t *testing.T) {
	a := New()
	a.Tick() // consume first-render
	a.ShouldRefresh = true
	shouldPoll, wasFirstRender := a.Tick()
	if !shouldPoll || wasFirstRender {
		t.Fatalf("Tick() = (%v, %v), want (true, false) when ShouldRefresh is set", shouldPoll, wasFirstRender)
	}
	if a.ShouldRefresh {
		t.Fatalf("ShouldRefresh still true after being consumed by Tick")
	}
}

func TestApp_TickFiresOnIsRouting(t *testing.T) {
	a := New()
	a.Tick() // consume first-render
	a.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))
	shouldPoll, wasFirstRender := a.Tick()
	if !shouldPoll || wasFirstRender {
		t.Fatalf("Tick() = (%v, %v), want (true, false) right after a route push", shouldPoll, wasFirstRender)
	}
	if a.IsRouting {
		t.Fatalf("IsRouting still true after being consumed by Tick")
	}
}

func TestApp_TickIsFalseWithNothingDue(t *testing.T) {
	a := New()
	a.Tick() // consume first-render
	shouldPoll, _ := a.Tick()
	if shouldPoll {
		t.Fatalf("Tick() fired with no first-render, no exhausted counter, no refresh, no routing pending")
	}
}

func TestApp_PushPopRouteMarksIsRouting(t *testing.T) {
	a := New()
	a.IsRouting = false
	a.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeries))
	if !a.IsRouting {
		t.Fatalf("PushRoute did not set IsRouting")
	}
	if a.CurrentRoute().Block != models.BlockSeries {
		t.Fatalf("CurrentRoute().Block = %v, want BlockSeries", a.CurrentRoute().Block)
	}

	a.IsRouting = false
	a.PopRoute()
	if !a.IsRouting {
		t.Fatalf("PopRoute did not set IsRouting")
	}
	if a.CurrentRoute().Block != models.BlockTabs {
		t.Fatalf("CurrentRoute().Block = %v, want BlockTabs after popping back to home", a.CurrentRoute().Block)
	}
}

func TestApp_PushRouteCancelsInFlightRequestWithoutRefresh(t *testing.T) {
	a := New()
	var cancelled bool
	a.Cancel = func() { cancelled = true }
	a.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeries))
	if !cancelled {
		t.Fatalf("PushRoute did not cancel the in-flight token when ShouldRefresh was false")
	}
	if a.Cancel != nil {
		t.Fatalf("Cancel still set after being invoked")
	}
}

func TestApp_PushRouteLeavesInFlightRequestRunningOnRefresh(t *testing.T) {
	a := New()
	var cancelled bool
	a.Cancel = func() { cancelled = true }
	a.ShouldRefresh = true
	a.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeries))
	if cancelled {
		t.Fatalf("PushRoute cancelled the in-flight token despite ShouldRefresh being true")
	}
	if a.Cancel == nil {
		t.Fatalf("Cancel cleared despite ShouldRefresh being true")
	}
}

func TestApp_PopRouteCancelsInFlightRequest(t *testing.T) {
	a := New()
	a.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeries))
	var cancelled bool
	a.Cancel = func() { cancelled = true }
	a.PopRoute()
	if !cancelled {
		t.Fatalf("PopRoute did not cancel the in-flight token")
	}
}

func TestApp_PopAndPushRouteCancelsInFlightRequest(t *testing.T) {
	a := New()
	var cancelled bool
	a.Cancel = func() { cancelled = true }
	a.PopAndPushRoute(models.NewRoute(models.BackendLidarr, models.BlockArtists))
	if !cancelled {
		t.Fatalf("PopAndPushRoute did not cancel the in-flight token")
	}
}

func TestApp_SetErrorClearsLoadingAndError(t *testing.T) {
	a := New()
	a.IsLoading = true
	a.SetError("radarr: transport error")
	if a.IsLoading {
		t.Fatalf("IsLoading still true after SetError")
	}
	if a.Error == "" {
		t.Fatalf("Error empty after SetError")
	}
	a.ClearError()
	if a.Error != "" {
		t.Fatalf("Error = %q after ClearError, want empty", a.Error)
	}
}

func TestPromptCursor_NavigatesStepsAndClampsAtBoundaries(t *testing.T) {
	c := NewPromptCursor([]int{1, 2, 3})
	if !c.AtFirst() || c.AtLast() {
		t.Fatalf("cursor should start at the first step")
	}
	c.Prev()
	if !c.AtFirst() {
		t.Fatalf("Prev at the first step should be a no-op")
	}
	c.Next()
	c.Next()
	if !c.AtLast() {
		t.Fatalf("cursor should reach the last step after two Next calls")
	}
	c.Next()
	step, ok := c.Current()
	if !ok || step != 3 {
		t.Fatalf("Current() = (%d, %v), want (3, true); Next past the end should clamp", step, ok)
	}
}

func TestPromptCursor_NilIsSafe(t *testing.T) {
	var c *PromptCursor
	if _, ok := c.Current(); ok {
		t.Fatalf("Current() on a nil cursor reported ok=true")
	}
	if !c.AtFirst() || !c.AtLast() {
		t.Fatalf("a nil cursor should report both AtFirst and AtLast")
	}
	c.Next()
	c.Prev()
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package state holds the process-wide application state of spec §3/§4.1:
// the navigation stack, the three backends' data, the tick counters that
// drive polling, and the flags the render and key-handler loops coordinate
// through. There is exactly one App per process, guarded by one mutex, the
// way cartographus's internal/syncstate.Manager guards its single
// in-memory snapshot.
package state

import (
	"context"
	"sync"

	"github.com/tomtom215/servarr-tui/internal/models"
)

// Polling/scroll cadence constants (spec §4.2, §5).
const (
	// TicksUntilPoll is how many render ticks elapse between automatic
	// background refreshes of the active screen.
	TicksUntilPoll = 400
	// TicksUntilScroll throttles held-key auto-repeat scrolling.
	TicksUntilScroll = 4
)

// App is the single process-wide mutable state tree.
type App struct {
	mu sync.Mutex

	Nav *models.Stack

	Radarr *RadarrData
	Sonarr *SonarrData
	Lidarr *LidarrData

	// ActiveTab cycles Radarr -> Sonarr -> Lidarr via the tab carousel
	// key-handler (spec §4.4).
	ActiveTab models.Backend

	// Counters driving the tick loop (spec §4.2, §5).
	TickCount       int
	TicksUntilPoll  int
	TicksUntilScroll int

	// Flags shared between the render loop, the dispatch loop, and the
	// key-handler chain (spec §4.1, §4.2, §4.4).
	IsLoading    bool
	IsRouting    bool
	IsFirstRender bool
	ShouldRefresh bool
	ShouldIgnoreQuitKey bool
	CLIMode      bool
	IgnoreSpecialKeysForTextboxInput bool

	// PromptConfirm / PromptConfirmAction implement the generic "are you
	// sure?" popup: PromptConfirm is the yes/no cursor position, and
	// PromptConfirmAction is invoked when the key-handler's submit action
	// sees PromptConfirm == true.
	PromptConfirm       bool
	PromptConfirmAction func(ctx context.Context) error

	// Error is the scrollable error banner text (spec §7): set whenever an
	// event fails, each failure overwriting the previous text. Nothing
	// clears it automatically, neither a successful poll nor navigation;
	// only ClearError removes it.
	Error string

	// Cancel cancels the in-flight request's context, invoked by the esc
	// key-handler per spec §4.4's cancellation-token design.
	Cancel context.CancelFunc
}

// New builds an App with a Help screen home route and empty per-backend
// state, mirroring the boot sequence spec §8 describes.
func New() *App {
	home := models.NewRoute(models.BackendNone, models.BlockTabs)
	radarrShared := NewSharedData()
	sonarrShared := NewSharedData()
	lidarrShared := NewSharedData()
	return &App{
		Nav:              models.NewStack(home),
		Radarr:           NewRadarrData(radarrShared),
		Sonarr:           NewSonarrData(sonarrShared),
		Lidarr:           NewLidarrData(lidarrShared),
		ActiveTab:        models.BackendRadarr,
		TicksUntilPoll:   TicksUntilPoll,
		TicksUntilScroll: TicksUntilScroll,
		IsFirstRender:    true,
	}
}

// Lock/Unlock expose the single state mutex to the render, dispatch, and
// key-handler loops, all of which touch App from different goroutines
// (spec §5: exactly one mutex guards all of App).
func (a *App) Lock()   { a.mu.Lock() }
func (a *App) Unlock() { a.mu.Unlock() }

// SharedFor returns the SharedData for a backend.
func (a *App) SharedFor(b models.Backend) *SharedData {
	switch b {
	case models.BackendRadarr:
		return a.Radarr.Shared
	case models.BackendSonarr:
		return a.Sonarr.Shared
	case models.BackendLidarr:
		return a.Lidarr.Shared
	default:
		return nil
	}
}

// PushRoute pushes route onto the navigation stack and marks IsRouting so
// the dispatch loop's cancellation rule (spec §4.2) and the next tick's
// warm-up re-emission (spec §4.1) both see the transition.
func (a *App) PushRoute(route models.Route) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Nav.Push(route)
	a.IsRouting = true
	a.CancelInFlightLocked()
}

// PopRoute pops the navigation stack (a no-op at depth 1) and marks
// IsRouting.
func (a *App) PopRoute() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Nav.Pop()
	a.IsRouting = true
	a.CancelInFlightLocked()
}

// PopAndPushRoute atomically replaces the current route and marks
// IsRouting.
func (a *App) PopAndPushRoute(route models.Route) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Nav.PopAndPush(route)
	a.IsRouting = true
	a.CancelInFlightLocked()
}

// CancelInFlightLocked implements spec §4.2's cancellation rule: entering a
// new block while a long request is running cancels the in-flight token,
// unless the navigation was requested as a refresh of the same screen
// (ShouldRefresh), in which case the request is left to complete (spec §8
// "Cancellation correctness"). Callers must hold a.mu, e.g. via App.Lock.
func (a *App) CancelInFlightLocked() {
	if a.ShouldRefresh {
		return
	}
	if a.Cancel != nil {
		a.Cancel()
		a.Cancel = nil
	}
}

// CurrentRoute returns the top of the navigation stack under lock.
func (a *App) CurrentRoute() models.Route {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Nav.Current()
}

// Tick advances the tick loop's counters (spec §4.2): increments TickCount
// and reports whether this tick should trigger a background poll, and
// whether that poll is the very first render (in which case the render
// loop additionally fires the boot warm-up sequence ahead of the current
// block's own, per spec §8 scenario 1). The render loop calls this once per
// frame; Tick itself resets TickCount on the first render and when the poll
// interval elapses.
func (a *App) Tick() (shouldPoll, wasFirstRender bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.TickCount++
	if a.IsFirstRender {
		a.IsFirstRender = false
		a.TickCount = 0
		return true, true
	}
	if a.TickCount >= TicksUntilPoll {
		a.TickCount = 0
		return true, false
	}
	if a.ShouldRefresh {
		a.ShouldRefresh = false
		return true, false
	}
	if a.IsRouting {
		a.IsRouting = false
		return true, false
	}
	return false, false
}

// SetError records an error banner and clears IsLoading,
// called by the dispatch loop when an event returns a non-cancellation
// error (spec §7).
func (a *App) SetError(msg string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Error = msg
	a.IsLoading = false
}

// ClearError dismisses the error banner.
func (a *App) ClearError() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Error = ""
}

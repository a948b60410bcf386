// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// cycleActiveTab advances App.ActiveTab Radarr -> Sonarr -> Lidarr -> Radarr
// and marks the navigation stack dirty so the next tick re-warms the newly
// active backend's home screen (spec §4.1's transition warm-up rule). Tab
// cycling is global: it works from any screen, which is why Chain.Dispatch
// special-cases ActionTab ahead of the per-block handler lookup.
func cycleActiveTab(app *state.App) {
	app.Lock()
	switch app.ActiveTab {
	case models.BackendRadarr:
		app.ActiveTab = models.BackendSonarr
	case models.BackendSonarr:
		app.ActiveTab = models.BackendLidarr
	default:
		app.ActiveTab = models.BackendRadarr
	}
	app.IsRouting = true
	app.CancelInFlightLocked()
	app.Unlock()
}

// TabsHandler owns the launcher/help screen shown at boot (BlockTabs) and
// the dedicated help overlay (BlockHelp). Both are read-only: Enter from
// BlockTabs drills into the active backend's home list.
type TabsHandler struct{ BaseHandler }

func NewTabsHandler() *TabsHandler { return &TabsHandler{} }

func (h *TabsHandler) Accepts(b models.Block) bool {
	return b == models.BlockTabs || b == models.BlockHelp
}

func (h *TabsHandler) IsReady(app *state.App) bool { return true }

func (h *TabsHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	ctx.App.Unlock()
	ctx.App.PushRoute(models.NewRoute(backend, homeBlockFor(backend)))
}

func (h *TabsHandler) HandleCharKey(ctx *Context, r rune) {
	if Resolve(Key{Rune: r}, false) != ActionChar {
		return
	}
	if r == '?' {
		ctx.App.PushRoute(models.NewRoute(models.BackendNone, models.BlockHelp))
	}
}

// homeBlockFor returns the top-level library list block for a backend.
func homeBlockFor(b models.Backend) models.Block {
	switch b {
	case models.BackendRadarr:
		return models.BlockMovies
	case models.BackendSonarr:
		return models.BlockSeries
	case models.BackendLidarr:
		return models.BlockArtists
	default:
		return models.BlockTabs
	}
}

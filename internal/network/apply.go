// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package network

import (
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// Apply is the response-merging half of spec §4.3's request orchestrator:
// the dispatch loop calls it once an orchestrator method returns
// successfully, folding the decoded Serdeable back into the App tree under
// the state lock. It is kept outside internal/orchestrator because it needs
// to inspect the navigation stack (the sort-prompt and stale-search-result
// invariants below) as well as mutate state — both of which are
// internal/state's job, not a single backend orchestrator's.
func Apply(app *state.App, ev events.Event, result models.Serdeable) {
	app.Lock()
	defer app.Unlock()

	switch ev.Backend {
	case models.BackendRadarr:
		applyRadarr(app, ev, result.Radarr)
	case models.BackendSonarr:
		applySonarr(app, ev, result.Sonarr)
	case models.BackendLidarr:
		applyLidarr(app, ev, result.Lidarr)
	}
}

// onAddScreen reports whether the current route is still one of the given
// blocks for backend b — used to guard the "stale in-flight search response"
// race spec §9's open question calls out: a SearchNew* response must not
// clobber AddSearchResults if the user has already navigated away from the
// add-flow screens.
func onAddScreen(app *state.App, b models.Backend, blocks ...models.Block) bool {
	cur := app.Nav.Current()
	if cur.Backend != b {
		return false
	}
	for _, blk := range blocks {
		if cur.Block == blk {
			return true
		}
	}
	return false
}

// onBlock reports whether the current route is exactly (b, block).
func onBlock(app *state.App, b models.Backend, block models.Block) bool {
	cur := app.Nav.Current()
	return cur.Backend == b && cur.Block == block
}

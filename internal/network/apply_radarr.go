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

func movieByID(a, b models.Movie) bool { return a.ID < b.ID }

// replaceMovie patches one row of items in place by ID, used after an edit
// so the list view reflects the PUT response without waiting for the next
// full GetMovies poll.
func replaceMovie(items []models.Movie, updated models.Movie) []models.Movie {
	out := make([]models.Movie, len(items))
	copy(out, items)
	for i, m := range out {
		if m.ID == updated.ID {
			out[i] = updated
			return out
		}
	}
	return out
}

func applyRadarr(app *state.App, ev events.Event, r *models.RadarrResult) {
	if r == nil {
		return
	}
	d := app.Radarr
	shared := d.Shared

	switch ev.Kind {
	case events.KindGetMovies:
		if onBlock(app, models.BackendRadarr, models.BlockMoviesSortPrompt) {
			return // spec §4.3: don't clobber the in-progress sort selection
		}
		d.Movies.SetItems(r.Movies)
		d.Movies.Sort(movieByID)

	case events.KindSearchNewMovie:
		if !onAddScreen(app, models.BackendRadarr,
			models.BlockAddMovieSearchInput, models.BlockAddMovieSelectMonitor,
			models.BlockAddMovieSelectMinimumAvailability, models.BlockAddMovieSelectQualityProfile,
			models.BlockAddMovieSelectRootFolder, models.BlockAddMovieConfirmPrompt) {
			return // spec §9: stale search response after navigating away
		}
		d.AddSearchResults = r.Movies
		d.AddSelectedIndex = 0
		if len(r.Movies) == 0 {
			app.Nav.PopAndPush(models.NewRoute(models.BackendRadarr, models.BlockAddMovieEmptySearchResults))
		}

	case events.KindGetMovieDetails, events.KindEditMovie:
		if r.Movie != nil {
			d.MovieDetailModal = r.Movie
			d.Movies.SetItems(replaceMovie(d.Movies.AllItems(), *r.Movie))
		}

	case events.KindGetCollections:
		d.Collections.SetItems(r.Collections)

	case events.KindEditCollection:
		if r.Collection != nil {
			d.CollectionDetailModal = r.Collection
		}

	case events.KindGetReleases:
		d.Releases.SetItems(r.Releases)

	case events.KindRefreshMovie, events.KindMoviesSearch, events.KindRefreshMonitoredDownloads, events.KindStartTask:
		shared.QueuedEvents.SetItems(append(shared.QueuedEvents.AllItems(), r.QueuedEvents...))

	case events.KindGetDownloads:
		shared.Downloads.SetItems(r.Downloads)

	case events.KindGetBlocklist:
		shared.Blocklist.SetItems(r.Blocklist)

	case events.KindGetHistory:
		shared.History.SetItems(r.History)

	case events.KindGetIndexers, events.KindEditIndexer:
		shared.Indexers.SetItems(r.Indexers)

	case events.KindTestIndexer, events.KindTestAllIndexers:
		for _, res := range r.IndexerTestResults {
			shared.IndexerTestResults[res.IndexerID] = res
		}

	case events.KindGetTags, events.KindAddTag:
		// The orchestrator already wrote through shared.Tags (same *BiMap
		// instance) before returning; nothing further to merge here.

	case events.KindGetRootFolders, events.KindAddRootFolder:
		shared.RootFolders.SetItems(r.RootFolders)

	case events.KindGetQualityProfiles:
		pairs := make(map[int]string, len(r.QualityProfiles))
		for _, p := range r.QualityProfiles {
			pairs[p.ID] = p.Name
		}
		shared.QualityProfiles.Replace(pairs)

	case events.KindGetTasks:
		shared.Tasks.SetItems(r.Tasks)

	case events.KindGetQueuedEvents:
		shared.QueuedEvents.SetItems(r.QueuedEvents)

	case events.KindGetLogs:
		shared.Logs.SetItems(r.Logs)

	case events.KindGetUpdates:
		shared.Updates.SetItems(r.Updates)

	case events.KindGetDiskSpace:
		shared.DiskSpace = r.DiskSpace

	case events.KindGetStatus:
		shared.Status = r.Status

	case events.KindAddMovie:
		// The library row appears on the next GetMovies warm-up poll; the
		// add-prompt itself is reset by the key-handler on confirm.
	}
}

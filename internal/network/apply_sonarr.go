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

func seriesByID(a, b models.Series) bool { return a.ID < b.ID }

func replaceSeries(items []models.Series, updated models.Series) []models.Series {
	out := make([]models.Series, len(items))
	copy(out, items)
	for i, s := range out {
		if s.ID == updated.ID {
			out[i] = updated
			return out
		}
	}
	return out
}

// mergeEpisodesIntoSeasons groups a flat episode list by season number and
// assigns each group to the matching Season entry, the shape
// GetSeriesDetails' two separate API calls (series + episode list) need to
// be folded back into before the detail modal renders (spec §3 "optional
// detail sub-models").
func mergeEpisodesIntoSeasons(series *models.Series, episodes []models.Episode) {
	bySeason := make(map[int][]models.Episode, len(series.Seasons))
	for _, ep := range episodes {
		bySeason[ep.SeasonNumber] = append(bySeason[ep.SeasonNumber], ep)
	}
	for i := range series.Seasons {
		series.Seasons[i].Episodes = bySeason[series.Seasons[i].SeasonNumber]
	}
}

func applySonarr(app *state.App, ev events.Event, r *models.SonarrResult) {
	if r == nil {
		return
	}
	d := app.Sonarr
	shared := d.Shared

	switch ev.Kind {
	case events.KindGetSeries:
		if onBlock(app, models.BackendSonarr, models.BlockSeriesSortPrompt) {
			return
		}
		d.Series.SetItems(r.Series)
		d.Series.Sort(seriesByID)

	case events.KindSearchNewSeries:
		if !onAddScreen(app, models.BackendSonarr,
			models.BlockAddSeriesSearchInput, models.BlockAddSeriesSelectMonitor,
			models.BlockAddSeriesSelectSeriesType, models.BlockAddSeriesSelectQualityProfile,
			models.BlockAddSeriesSelectRootFolder, models.BlockAddSeriesConfirmPrompt) {
			return
		}
		d.AddSearchResults = r.Series
		d.AddSelectedIndex = 0
		if len(r.Series) == 0 {
			app.Nav.PopAndPush(models.NewRoute(models.BackendSonarr, models.BlockAddSeriesEmptySearchResults))
		}

	case events.KindGetSeriesDetails, events.KindEditSeries:
		if r.OneSeries != nil {
			series := *r.OneSeries
			mergeEpisodesIntoSeasons(&series, r.Episodes)
			d.SeriesDetailModal = &series
			d.Series.SetItems(replaceSeries(d.Series.AllItems(), series))
		}

	case events.KindGetReleases:
		d.Releases.SetItems(r.Releases)

	case events.KindRefreshSeries, events.KindEpisodeSearch, events.KindSeriesSearch,
		events.KindRefreshMonitoredDownloads, events.KindStartTask:
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
		// already written through the shared *BiMap by the orchestrator.

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

	case events.KindAddSeries:
		// row appears on the next GetSeries warm-up poll.
	}
}

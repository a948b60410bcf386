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

func artistByID(a, b models.Artist) bool { return a.ID < b.ID }

func replaceArtist(items []models.Artist, updated models.Artist) []models.Artist {
	out := make([]models.Artist, len(items))
	copy(out, items)
	for i, a := range out {
		if a.ID == updated.ID {
			out[i] = updated
			return out
		}
	}
	return out
}

func applyLidarr(app *state.App, ev events.Event, r *models.LidarrResult) {
	if r == nil {
		return
	}
	d := app.Lidarr
	shared := d.Shared

	switch ev.Kind {
	case events.KindGetArtists:
		if onBlock(app, models.BackendLidarr, models.BlockArtistsSortPrompt) {
			return
		}
		d.Artists.SetItems(r.Artists)
		d.Artists.Sort(artistByID)

	case events.KindSearchNewArtist:
		if !onAddScreen(app, models.BackendLidarr,
			models.BlockAddArtistSearchInput, models.BlockAddArtistSelectMonitor,
			models.BlockAddArtistSelectQualityProfile, models.BlockAddArtistSelectMetadataProfile,
			models.BlockAddArtistSelectRootFolder, models.BlockAddArtistConfirmPrompt) {
			return
		}
		d.AddSearchResults = r.Artists
		d.AddSelectedIndex = 0
		if len(r.Artists) == 0 {
			app.Nav.PopAndPush(models.NewRoute(models.BackendLidarr, models.BlockAddArtistEmptySearchResults))
		}

	case events.KindGetArtistDetails, events.KindEditArtist:
		if r.OneArtist != nil {
			artist := *r.OneArtist
			artist.Albums = r.Albums
			d.ArtistDetailModal = &artist
			d.Artists.SetItems(replaceArtist(d.Artists.AllItems(), artist))
		}

	case events.KindGetReleases:
		d.Releases.SetItems(r.AlbumReleases)

	case events.KindArtistSearch, events.KindRefreshArtist, events.KindRefreshMonitoredDownloads, events.KindStartTask:
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

	case events.KindGetMetadataProfiles:
		pairs := make(map[int]string, len(r.MetadataProfiles))
		for _, p := range r.MetadataProfiles {
			pairs[p.ID] = p.Name
		}
		shared.MetadataProfiles.Replace(pairs)

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

	case events.KindAddArtist:
		// row appears on the next GetArtists warm-up poll.
	}
}

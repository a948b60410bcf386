// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package warmup maps a Route to the backend-events fired to refresh its
// screen (spec §4.1's "on transition, fire the warm-up set" routing rule,
// and spec §4.2's periodic re-emission of the same set). It is split out of
// internal/state and internal/network because it needs both models.Block
// and events.Kind, and neither of those packages may import the other.
package warmup

import (
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
)

// BootEvents is the one-time sequence fired on the very first render (spec
// §8 scenario 1), ahead of the current block's own warm-up set: the
// sidebar/global data every screen of a backend depends on.
func BootEvents(b models.Backend) []events.Event {
	if b == models.BackendNone {
		return nil
	}
	return []events.Event{
		events.New(b, events.KindGetQualityProfiles),
		events.New(b, events.KindGetTags),
		events.New(b, events.KindGetRootFolders),
		events.New(b, events.KindGetDownloads),
		events.New(b, events.KindGetDiskSpace),
		events.New(b, events.KindGetStatus),
	}
}

// BlockEvents is the per-block warm-up set fired whenever block becomes (or
// re-becomes, via periodic poll or an explicit refresh) the current route
// for backend b.
func BlockEvents(b models.Backend, block models.Block) []events.Event {
	switch block {
	// --- Radarr ---
	case models.BlockMovies:
		return []events.Event{
			events.New(b, events.KindGetQualityProfiles),
			events.New(b, events.KindGetTags),
			events.New(b, events.KindGetMovies),
		}
	case models.BlockCollections:
		return []events.Event{events.New(b, events.KindGetCollections)}

	// --- Sonarr ---
	case models.BlockSeries:
		return []events.Event{
			events.New(b, events.KindGetQualityProfiles),
			events.New(b, events.KindGetTags),
			events.New(b, events.KindGetSeries),
		}

	// --- Lidarr ---
	case models.BlockArtists:
		return []events.Event{
			events.New(b, events.KindGetQualityProfiles),
			events.New(b, events.KindGetMetadataProfiles),
			events.New(b, events.KindGetTags),
			events.New(b, events.KindGetArtists),
		}

	// --- Shared screens ---
	case models.BlockDownloads:
		return []events.Event{events.New(b, events.KindGetDownloads)}
	case models.BlockBlocklist:
		return []events.Event{events.New(b, events.KindGetBlocklist)}
	case models.BlockHistory:
		return []events.Event{events.New(b, events.KindGetHistory)}
	case models.BlockIndexers:
		return []events.Event{events.New(b, events.KindGetIndexers)}
	case models.BlockRootFolders:
		return []events.Event{events.New(b, events.KindGetRootFolders)}
	case models.BlockSystem:
		return []events.Event{
			events.New(b, events.KindGetTasks),
			events.New(b, events.KindGetQueuedEvents),
			events.New(b, events.KindGetLogs),
			events.New(b, events.KindGetUpdates),
			events.New(b, events.KindGetDiskSpace),
			events.New(b, events.KindGetStatus),
		}
	default:
		return nil
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

import (
	"time"

	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/table"
	"github.com/tomtom215/servarr-tui/internal/tagmap"
)

// SharedData holds the tables every backend renders identically: downloads,
// blocklist, history, indexers, root folders, and the System screens (spec
// §3's per-backend sub-state plus the SPEC_FULL.md §C System tab).
type SharedData struct {
	Tags            *tagmap.BiMap
	QualityProfiles *tagmap.BiMap
	// MetadataProfiles is only populated for Lidarr (Radarr/Sonarr have no
	// metadata-profile concept), left empty otherwise.
	MetadataProfiles *tagmap.BiMap
	RootFolders     *table.Table[models.RootFolder]
	Downloads       *table.Table[models.QueueItem]
	Blocklist       *table.Table[models.BlocklistItem]
	History         *table.Table[models.HistoryRecord]
	Indexers        *table.Table[models.Indexer]
	Tasks           *table.Table[models.Task]
	QueuedEvents    *table.Table[models.QueuedEvent]
	Logs            *table.Table[models.LogEntry]
	Updates         *table.Table[models.Update]
	DiskSpace       []models.DiskSpace
	Status          *models.SystemStatus

	// IndexerTestResults holds the outcome of the last TestIndexer /
	// TestAllIndexers run, keyed by indexer id, for the TestIndexer /
	// TestAllIndexers popups.
	IndexerTestResults map[int]models.IndexerTestResult

	// HistoryDetailModal holds the record currently shown in the
	// HistoryDetails popup, set when the key-handler opens it.
	HistoryDetailModal *models.HistoryRecord

	// LastPoll records when this backend's warm-up/poll sequence last ran,
	// used only for diagnostics; the actual cadence is driven by App's
	// tick counters, not wall-clock time (spec §4.2).
	LastPoll time.Time
}

// NewSharedData builds a SharedData with every table initialised empty.
func NewSharedData() *SharedData {
	return &SharedData{
		Tags:               tagmap.New(),
		QualityProfiles:     tagmap.New(),
		MetadataProfiles:    tagmap.New(),
		RootFolders:         table.New[models.RootFolder](),
		Downloads:           table.New[models.QueueItem](),
		Blocklist:           table.New[models.BlocklistItem](),
		History:             table.New[models.HistoryRecord](),
		Indexers:            table.New[models.Indexer](),
		Tasks:               table.New[models.Task](),
		QueuedEvents:        table.New[models.QueuedEvent](),
		Logs:                table.New[models.LogEntry](),
		Updates:             table.New[models.Update](),
		IndexerTestResults: make(map[int]models.IndexerTestResult),
	}
}

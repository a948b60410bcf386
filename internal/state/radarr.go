// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

import (
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/table"
)

// RadarrData is Radarr's per-backend sub-state (spec §3).
type RadarrData struct {
	Shared *SharedData

	Movies      *table.Table[models.Movie]
	Collections *table.Table[models.Collection]
	Releases    *table.Table[models.Release]

	// MovieDetailModal / CollectionDetailModal hold the item the
	// MovieDetails/CollectionDetails screen is currently drilled into.
	MovieDetailModal      *models.Movie
	CollectionDetailModal *models.Collection

	// Filter is the current substring filter applied via FilterMovies.
	Filter string

	// Add-movie composition state, populated across the multi-step prompt.
	AddSearchTerm        string
	AddSearchResults     []models.Movie
	AddSelectedIndex     int
	AddMonitored         bool
	AddMinimumAvailability string
	AddQualityProfileID  int
	AddRootFolderPath    string
	AddTagInput          string
	PromptCursor         *PromptCursor

	// Edit/delete composition state.
	EditTarget   *models.Movie
	DeleteTarget *models.Movie
	DeleteFiles  bool
	AddListExclusion bool
}

// NewRadarrData builds an empty RadarrData sharing the given SharedData.
func NewRadarrData(shared *SharedData) *RadarrData {
	return &RadarrData{
		Shared:      shared,
		Movies:      table.New[models.Movie](),
		Collections: table.New[models.Collection](),
		Releases:    table.New[models.Release](),
	}
}

// ResetAddPrompt clears the add-movie composition state, called when the
// add-movie flow is cancelled or completes.
func (d *RadarrData) ResetAddPrompt() {
	d.AddSearchTerm = ""
	d.AddSearchResults = nil
	d.AddSelectedIndex = 0
	d.AddMonitored = false
	d.AddMinimumAvailability = ""
	d.AddQualityProfileID = 0
	d.AddRootFolderPath = ""
	d.AddTagInput = ""
	d.PromptCursor = nil
}

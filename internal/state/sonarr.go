// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

import (
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/table"
)

// SonarrData is Sonarr's per-backend sub-state.
type SonarrData struct {
	Shared *SharedData

	Series   *table.Table[models.Series]
	Releases *table.Table[models.EpisodeRelease]

	SeriesDetailModal  *models.Series
	SeasonDetailModal  *models.Season
	EpisodeDetailModal *models.Episode

	Filter string

	AddSearchTerm       string
	AddSearchResults    []models.Series
	AddSelectedIndex    int
	AddMonitored        bool
	AddSeriesType       string
	AddQualityProfileID int
	AddRootFolderPath   string
	AddTagInput         string
	PromptCursor        *PromptCursor

	EditTarget       *models.Series
	DeleteTarget     *models.Series
	DeleteFiles      bool
	AddListExclusion bool
}

// NewSonarrData builds an empty SonarrData sharing the given SharedData.
func NewSonarrData(shared *SharedData) *SonarrData {
	return &SonarrData{
		Shared:   shared,
		Series:   table.New[models.Series](),
		Releases: table.New[models.EpisodeRelease](),
	}
}

// ResetAddPrompt clears the add-series composition state.
func (d *SonarrData) ResetAddPrompt() {
	d.AddSearchTerm = ""
	d.AddSearchResults = nil
	d.AddSelectedIndex = 0
	d.AddMonitored = false
	d.AddSeriesType = ""
	d.AddQualityProfileID = 0
	d.AddRootFolderPath = ""
	d.AddTagInput = ""
	d.PromptCursor = nil
}

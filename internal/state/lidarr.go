// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package state

import (
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/table"
)

// LidarrData is Lidarr's per-backend sub-state.
type LidarrData struct {
	Shared *SharedData

	Artists  *table.Table[models.Artist]
	Releases *table.Table[models.AlbumRelease]

	ArtistDetailModal *models.Artist
	AlbumDetailModal  *models.Album
	TrackDetailModal  *models.Track

	Filter string

	AddSearchTerm        string
	AddSearchResults     []models.Artist
	AddSelectedIndex     int
	AddMonitored         bool
	AddQualityProfileID  int
	AddMetadataProfileID int
	AddRootFolderPath    string
	AddTagInput          string
	PromptCursor         *PromptCursor

	EditTarget       *models.Artist
	DeleteTarget     *models.Artist
	DeleteAlbumTarget *models.Album
	DeleteFiles      bool
}

// NewLidarrData builds an empty LidarrData sharing the given SharedData.
func NewLidarrData(shared *SharedData) *LidarrData {
	return &LidarrData{
		Shared:   shared,
		Artists:  table.New[models.Artist](),
		Releases: table.New[models.AlbumRelease](),
	}
}

// ResetAddPrompt clears the add-artist composition state.
func (d *LidarrData) ResetAddPrompt() {
	d.AddSearchTerm = ""
	d.AddSearchResults = nil
	d.AddSelectedIndex = 0
	d.AddMonitored = false
	d.AddQualityProfileID = 0
	d.AddMetadataProfileID = 0
	d.AddRootFolderPath = ""
	d.AddTagInput = ""
	d.PromptCursor = nil
}

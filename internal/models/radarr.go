// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

// Movie is Radarr's library item.
type Movie struct {
	ID                  int     `json:"id"`
	TMDBID              int     `json:"tmdbId"`
	Title               string  `json:"title"`
	Year                int     `json:"year"`
	Monitored           bool    `json:"monitored"`
	HasFile             bool    `json:"hasFile"`
	SizeOnDisk          int64   `json:"sizeOnDisk"`
	Runtime             int     `json:"runtime"`
	Status              string  `json:"status"`
	MinimumAvailability string  `json:"minimumAvailability"`
	QualityProfileID    int     `json:"qualityProfileId"`
	Path                string  `json:"path"`
	Tags                []int   `json:"tags"`
	Overview            string  `json:"overview"`
	Ratings             Ratings `json:"-"`
}

// Collection is a Radarr movie collection; edits follow the same
// fetch-modify-put archetype as Movie (SPEC_FULL.md §C).
type Collection struct {
	ID                  int    `json:"id"`
	TMDBID              int    `json:"tmdbId"`
	Title               string `json:"title"`
	Monitored           bool   `json:"monitored"`
	MinimumAvailability string `json:"minimumAvailability"`
	QualityProfileID    int    `json:"qualityProfileId"`
	RootFolderPath      string `json:"rootFolderPath"`
	SearchOnAdd         bool   `json:"searchOnAdd"`
	Movies              []Movie `json:"-"`
}

// Release is one search result for a movie (manual search / add-movie flow).
type Release struct {
	GUID      string `json:"guid"`
	Title     string `json:"title"`
	IndexerID int    `json:"indexerId"`
	Size      int64  `json:"size"`
	Seeders   int    `json:"seeders"`
	Leechers  int    `json:"leechers"`
	Quality   string `json:"quality"`
	Rejected  bool   `json:"rejected"`
}

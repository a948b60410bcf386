// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

// Series is Sonarr's library item.
type Series struct {
	ID               int     `json:"id"`
	TVDBID           int     `json:"tvdbId"`
	Title            string  `json:"title"`
	Year             int     `json:"year"`
	Monitored        bool    `json:"monitored"`
	Status           string  `json:"status"`
	SeriesType       string  `json:"seriesType"`
	SizeOnDisk       int64   `json:"sizeOnDisk"`
	QualityProfileID int     `json:"qualityProfileId"`
	Path             string  `json:"path"`
	Tags             []int   `json:"tags"`
	Overview         string  `json:"overview"`
	Seasons          []Season `json:"seasons"`
	Ratings          Ratings  `json:"-"`
}

// Season is one season of a Series.
type Season struct {
	SeriesID     int       `json:"-"`
	SeasonNumber int       `json:"seasonNumber"`
	Monitored    bool      `json:"monitored"`
	Episodes     []Episode `json:"-"`
}

// Episode is one episode of a Season.
type Episode struct {
	ID            int    `json:"id"`
	SeriesID      int    `json:"seriesId"`
	SeasonNumber  int    `json:"seasonNumber"`
	EpisodeNumber int    `json:"episodeNumber"`
	Title         string `json:"title"`
	Monitored     bool   `json:"monitored"`
	HasFile       bool   `json:"hasFile"`
	AirDate       string `json:"airDateUtc"`
}

// EpisodeRelease is one search result for an episode.
type EpisodeRelease struct {
	GUID      string `json:"guid"`
	Title     string `json:"title"`
	IndexerID int    `json:"indexerId"`
	Size      int64  `json:"size"`
	Seeders   int    `json:"seeders"`
	Leechers  int    `json:"leechers"`
	Quality   string `json:"quality"`
	Rejected  bool   `json:"rejected"`
}

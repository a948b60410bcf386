// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

// Artist is Lidarr's library item.
type Artist struct {
	ID                int     `json:"id"`
	ForeignArtistID    string `json:"foreignArtistId"`
	ArtistName        string  `json:"artistName"`
	Monitored         bool    `json:"monitored"`
	Status            string  `json:"status"`
	SizeOnDisk        int64   `json:"sizeOnDisk"`
	QualityProfileID  int     `json:"qualityProfileId"`
	MetadataProfileID int     `json:"metadataProfileId"`
	Path              string  `json:"path"`
	Tags              []int   `json:"tags"`
	Overview          string  `json:"overview"`
	Albums            []Album `json:"-"`
}

// Album is one release group by an Artist.
type Album struct {
	ID           int     `json:"id"`
	ArtistID     int     `json:"artistId"`
	ForeignAlbumID string `json:"foreignAlbumId"`
	Title        string  `json:"title"`
	ReleaseDate  string  `json:"releaseDate"`
	Monitored    bool    `json:"monitored"`
	Tracks       []Track `json:"-"`
}

// Track is one song on an Album.
type Track struct {
	ID          int    `json:"id"`
	AlbumID     int    `json:"albumId"`
	TrackNumber string `json:"trackNumber"`
	Title       string `json:"title"`
	HasFile     bool   `json:"hasFile"`
	Duration    int    `json:"duration"`
}

// AlbumRelease is one entry of an album's release list. The orchestrator
// drops discography-level entries (Discography == true) before returning
// the list, so only album-level releases reach the UI table (spec §4.3).
type AlbumRelease struct {
	GUID        string `json:"guid"`
	Title       string `json:"title"`
	IndexerID   int    `json:"indexerId"`
	Size        int64  `json:"size"`
	Discography bool   `json:"discography"`
	Quality     string `json:"quality"`
	Rejected    bool   `json:"rejected"`
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

import (
	"fmt"
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

// Tag is a label applied to library items, resolved to/from an id via
// internal/tagmap.BiMap.
type Tag struct {
	ID    int    `json:"id"`
	Label string `json:"label"`
}

// QualityProfile / MetadataProfile: id<->name maps used by
// edit and add prompts.
type QualityProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type MetadataProfile struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RootFolder is a configured library location.
type RootFolder struct {
	ID     int    `json:"id"`
	Path   string `json:"path"`
	Accessible bool `json:"accessible"`
	FreeSpace  int64 `json:"freeSpace"`
}

// DiskSpace reports free/total space for one mount.
type DiskSpace struct {
	Path       string `json:"path"`
	FreeSpace  int64  `json:"freeSpace"`
	TotalSpace int64  `json:"totalSpace"`
}

// FreeSpaceHuman formats FreeSpace as a binary-unit string such as
// "1.5 TiB" (humanize.IBytes), never a bare byte count.
func (d DiskSpace) FreeSpaceHuman() string { return humanize.IBytes(uint64(d.FreeSpace)) }

// Indexer is one configured search indexer.
type Indexer struct {
	ID             int               `json:"id"`
	Name           string            `json:"name"`
	Enabled        bool              `json:"enableRss"`
	Priority       int               `json:"priority"`
	Implementation string            `json:"implementation"`
	Tags           []int             `json:"tags"`
	Fields         []IndexerField    `json:"fields"`
	RawPayload     map[string]any    `json:"-"` // verbatim GET body for fetch-modify-put (spec §4.3 archetype B)
}

// IndexerField is one (name,value) pair inside an indexer's Fields array,
// e.g. seedCriteria.seedRatio.
type IndexerField struct {
	Name  string `json:"name"`
	Value any    `json:"value"`
}

// IndexerTestResult is the per-indexer outcome of TestIndexer/TestAllIndexers
// (spec §4.3 "indexer test, special cases").
type IndexerTestResult struct {
	IndexerID int
	Name      string
	Passed    bool
	Errors    []string
}

// QueueItem is one entry in the Downloads table.
type QueueItem struct {
	ID                      int     `json:"id"`
	MovieID                 int     `json:"movieId,omitempty"`
	SeriesID                int     `json:"seriesId,omitempty"`
	ArtistID                int     `json:"artistId,omitempty"`
	Title                   string  `json:"title"`
	Status                  string  `json:"status"`
	Size                    int64   `json:"size"`
	SizeLeft                int64   `json:"sizeleft"`
	Indexer                 string  `json:"indexer"`
	DownloadClient          string  `json:"downloadClient"`
	OutputPath              string  `json:"outputPath"`
	Protocol                string  `json:"protocol"`
	EstimatedCompletionTime *time.Time `json:"estimatedCompletionTime,omitempty"`
}

// SizeHuman formats Size as a binary-unit string such as "4.2 GiB"
// (humanize.IBytes), never a raw byte count. Detail panes use SizeOnDiskGB.
func (q QueueItem) SizeHuman() string { return humanize.IBytes(uint64(q.Size)) }

// BlocklistItem is one blocked release.
type BlocklistItem struct {
	ID        int       `json:"id"`
	MovieID   int       `json:"movieId,omitempty"`
	SeriesID  int       `json:"seriesId,omitempty"`
	ArtistID  int       `json:"artistId,omitempty"`
	SourceTitle string  `json:"sourceTitle"`
	Indexer   string    `json:"indexer"`
	Date      time.Time `json:"date"`
}

// HistoryRecord is one audit-log entry for a library item.
type HistoryRecord struct {
	ID        int            `json:"id"`
	EventType string         `json:"eventType"`
	Date      time.Time      `json:"date"`
	SourceTitle string       `json:"sourceTitle"`
	Data      map[string]any `json:"data,omitempty"` // raw blob rendered in HistoryDetails
}

// Task is a scheduled job definition shown in the System block.
type Task struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Interval   int       `json:"interval"`
	LastExecution time.Time `json:"lastExecution"`
}

// QueuedEvent is one server-side command queue entry.
type QueuedEvent struct {
	ID     int    `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// LogEntry is one server log line.
type LogEntry struct {
	ID      int       `json:"id"`
	Time    time.Time `json:"time"`
	Level   string    `json:"level"`
	Message string    `json:"message"`
}

// Update is one release-notes entry from the Updates block.
type Update struct {
	Version     string    `json:"version"`
	ReleaseDate time.Time `json:"releaseDate"`
	Installed   bool      `json:"installed"`
	Changes     []string  `json:"changes"`
}

// Ratings holds the three rating-source fields movie/series details render
// per spec §4.3: missing sources render as empty strings, never zero.
type Ratings struct {
	IMDB           *float64
	TMDB           *float64
	RottenTomatoes *int
}

// IMDBDisplay formats the IMDB rating to one decimal, or "" if absent.
func (r Ratings) IMDBDisplay() string {
	if r.IMDB == nil {
		return ""
	}
	return fmt.Sprintf("%.1f", *r.IMDB)
}

// TMDBDisplay formats the TMDB rating as ceil(x*10)%, or "" if absent.
func (r Ratings) TMDBDisplay() string {
	if r.TMDB == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", int(math.Ceil(*r.TMDB*10)))
}

// RottenTomatoesDisplay formats the RT score as an integer percentage, or ""
// if absent.
func (r Ratings) RottenTomatoesDisplay() string {
	if r.RottenTomatoes == nil {
		return ""
	}
	return fmt.Sprintf("%d%%", *r.RottenTomatoes)
}

// SizeOnDiskGB converts a byte count to the GB figure movie/series detail
// panes display (spec §4.3).
func SizeOnDiskGB(bytes int64) float64 {
	return float64(bytes) / (1024 * 1024 * 1024)
}

// RuntimeHuman converts a minute count to an "Xh Ym" string.
func RuntimeHuman(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	if h == 0 {
		return fmt.Sprintf("%dm", m)
	}
	return fmt.Sprintf("%dh %dm", h, m)
}

// SystemStatus is the instance-level info the System block's header shows,
// fetched once at boot (spec §8 scenario 1's warm-up sequence) and on
// refresh of the System screen.
type SystemStatus struct {
	Version    string `json:"version"`
	InstanceName string `json:"instanceName"`
	StartupPath string `json:"startupPath"`
	OSName     string `json:"osName"`
	IsDocker   bool   `json:"isDocker"`
}

// GetStatus derives a library item's download status per spec §4.3:
// Downloaded if hasFile, else Downloading/Awaiting Import if a download
// entry references id, else Missing.
func GetStatus(hasFile bool, downloads []QueueItem, id int, idOf func(QueueItem) int) string {
	if hasFile {
		return "Downloaded"
	}
	for _, d := range downloads {
		if idOf(d) != id {
			continue
		}
		if d.SizeLeft < d.Size {
			return "Downloading"
		}
		return "Awaiting Import"
	}
	return "Missing"
}

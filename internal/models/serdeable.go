// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

// Serdeable is the "any response the backend may return" sum type from
// spec §3: a single value the dispatch loop can carry back from any
// orchestrator method, and the CLI front-end JSON-encodes directly.
//
// Go has no native sum type, so — per spec §9's design note for languages
// without one — this is a tagged struct: Kind names which field is
// populated. Exactly one of the backend arms is non-nil for a given Kind;
// Empty() is the exception, with no Kind and no arm set.
type Serdeable struct {
	Kind   string `json:"kind,omitempty"`
	Radarr *RadarrResult `json:"radarr,omitempty"`
	Sonarr *SonarrResult `json:"sonarr,omitempty"`
	Lidarr *LidarrResult `json:"lidarr,omitempty"`
}

// Empty is the canonical response for a successful deletion (spec §4.5:
// "Successful deletions return an empty object {}").
func Empty() Serdeable { return Serdeable{} }

// RadarrResult is the sum of shapes a Radarr orchestrator method may return.
type RadarrResult struct {
	Movies       []Movie       `json:"movies,omitempty"`
	Movie        *Movie        `json:"movie,omitempty"`
	Collections  []Collection  `json:"collections,omitempty"`
	Collection   *Collection   `json:"collection,omitempty"`
	Releases     []Release     `json:"releases,omitempty"`
	Downloads    []QueueItem   `json:"downloads,omitempty"`
	Blocklist    []BlocklistItem `json:"blocklist,omitempty"`
	History      []HistoryRecord `json:"history,omitempty"`
	Indexers     []Indexer     `json:"indexers,omitempty"`
	Tags         []Tag         `json:"tags,omitempty"`
	RootFolders  []RootFolder  `json:"rootFolders,omitempty"`
	QualityProfiles []QualityProfile `json:"qualityProfiles,omitempty"`
	Tasks        []Task        `json:"tasks,omitempty"`
	QueuedEvents []QueuedEvent `json:"queuedEvents,omitempty"`
	Logs         []LogEntry    `json:"logs,omitempty"`
	Updates      []Update      `json:"updates,omitempty"`
	DiskSpace    []DiskSpace   `json:"diskSpace,omitempty"`
	IndexerTestResults []IndexerTestResult `json:"indexerTestResults,omitempty"`
	Status       *SystemStatus `json:"status,omitempty"`
}

// SonarrResult is the sum of shapes a Sonarr orchestrator method may return.
type SonarrResult struct {
	Series       []Series        `json:"series,omitempty"`
	OneSeries    *Series         `json:"oneSeries,omitempty"`
	Episodes     []Episode       `json:"episodes,omitempty"`
	Releases     []EpisodeRelease `json:"releases,omitempty"`
	Downloads    []QueueItem     `json:"downloads,omitempty"`
	Blocklist    []BlocklistItem `json:"blocklist,omitempty"`
	History      []HistoryRecord `json:"history,omitempty"`
	Indexers     []Indexer       `json:"indexers,omitempty"`
	Tags         []Tag           `json:"tags,omitempty"`
	RootFolders  []RootFolder    `json:"rootFolders,omitempty"`
	QualityProfiles []QualityProfile `json:"qualityProfiles,omitempty"`
	Tasks        []Task          `json:"tasks,omitempty"`
	QueuedEvents []QueuedEvent   `json:"queuedEvents,omitempty"`
	Logs         []LogEntry      `json:"logs,omitempty"`
	Updates      []Update        `json:"updates,omitempty"`
	DiskSpace    []DiskSpace     `json:"diskSpace,omitempty"`
	IndexerTestResults []IndexerTestResult `json:"indexerTestResults,omitempty"`
	Status       *SystemStatus `json:"status,omitempty"`
}

// LidarrResult is the sum of shapes a Lidarr orchestrator method may return.
type LidarrResult struct {
	Artists      []Artist        `json:"artists,omitempty"`
	OneArtist    *Artist         `json:"oneArtist,omitempty"`
	Albums       []Album         `json:"albums,omitempty"`
	AlbumReleases []AlbumRelease `json:"albumReleases,omitempty"`
	Downloads    []QueueItem     `json:"downloads,omitempty"`
	Blocklist    []BlocklistItem `json:"blocklist,omitempty"`
	History      []HistoryRecord `json:"history,omitempty"`
	Indexers     []Indexer       `json:"indexers,omitempty"`
	Tags         []Tag           `json:"tags,omitempty"`
	RootFolders  []RootFolder    `json:"rootFolders,omitempty"`
	QualityProfiles []QualityProfile `json:"qualityProfiles,omitempty"`
	MetadataProfiles []MetadataProfile `json:"metadataProfiles,omitempty"`
	Tasks        []Task          `json:"tasks,omitempty"`
	QueuedEvents []QueuedEvent   `json:"queuedEvents,omitempty"`
	Logs         []LogEntry      `json:"logs,omitempty"`
	Updates      []Update        `json:"updates,omitempty"`
	DiskSpace    []DiskSpace     `json:"diskSpace,omitempty"`
	IndexerTestResults []IndexerTestResult `json:"indexerTestResults,omitempty"`
	Status       *SystemStatus `json:"status,omitempty"`
}

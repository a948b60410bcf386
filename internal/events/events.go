// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package events enumerates the backend-event taxonomy of spec §3/§4.2: one
// operation per network-dispatchable action against a ServArr backend, each
// carrying exactly the parameters needed to build its outbound request.
//
// Go has no tagged-union variant type the way the original design calls for;
// following the sum-type design note in spec §9, Event is a single struct
// with a Kind discriminator and an untyped Params payload that the
// orchestrator type-asserts against the Params struct documented next to
// each Kind constant — the same "tagged interface plus discriminator string"
// shape spec §9 recommends, grounded in cartographus's MediaEvent tagged
// struct (internal/eventprocessor/events.go).
package events

import "github.com/tomtom215/servarr-tui/internal/models"

// Kind names one operation. The same Kind value is reused across backends
// (e.g. GetDownloads) — Event.Backend disambiguates which orchestrator
// receives it.
type Kind string

const (
	// Library (archetype A: pure fetch).
	KindGetMovies  Kind = "GetMovies"
	KindGetSeries  Kind = "GetSeries"
	KindGetArtists Kind = "GetArtists"

	KindGetMovieDetails   Kind = "GetMovieDetails"
	KindGetSeriesDetails  Kind = "GetSeriesDetails"
	KindGetArtistDetails  Kind = "GetArtistDetails"
	KindGetCollections    Kind = "GetCollections"

	// Edit (archetype B: fetch-modify-put).
	KindEditMovie      Kind = "EditMovie"
	KindEditSeries      Kind = "EditSeries"
	KindEditArtist      Kind = "EditArtist"
	KindEditCollection  Kind = "EditCollection"
	KindEditIndexer     Kind = "EditIndexer"

	// Delete.
	KindDeleteMovie      Kind = "DeleteMovie"
	KindDeleteSeries      Kind = "DeleteSeries"
	KindDeleteAlbum       Kind = "DeleteAlbum"
	KindDeleteArtist      Kind = "DeleteArtist"
	KindDeleteDownload    Kind = "DeleteDownload"
	KindDeleteIndexer     Kind = "DeleteIndexer"
	KindDeleteRootFolder  Kind = "DeleteRootFolder"

	// Add.
	KindAddRootFolder Kind = "AddRootFolder"
	KindSearchNewMovie  Kind = "SearchNewMovie"
	KindSearchNewSeries Kind = "SearchNewSeries"
	KindSearchNewArtist Kind = "SearchNewArtist"
	KindAddMovie  Kind = "AddMovie"
	KindAddSeries Kind = "AddSeries"
	KindAddArtist Kind = "AddArtist"

	// Command-post (archetype C).
	KindRefreshMovie               Kind = "RefreshMovie"
	KindMoviesSearch                Kind = "MoviesSearch"
	KindRefreshSeries                Kind = "RefreshSeries"
	KindEpisodeSearch                Kind = "EpisodeSearch"
	KindSeriesSearch                 Kind = "SeriesSearch"
	KindRefreshArtist                Kind = "RefreshArtist"
	KindArtistSearch                 Kind = "ArtistSearch"
	KindRefreshMonitoredDownloads     Kind = "RefreshMonitoredDownloads"
	KindStartTask                     Kind = "StartTask"
	KindDownloadRelease               Kind = "DownloadRelease"

	// Shared reads/writes.
	KindGetDownloads        Kind = "GetDownloads"
	KindGetBlocklist        Kind = "GetBlocklist"
	KindClearBlocklist      Kind = "ClearBlocklist"
	KindGetHistory          Kind = "GetHistory"
	KindGetIndexers         Kind = "GetIndexers"
	KindTestIndexer         Kind = "TestIndexer"
	KindTestAllIndexers     Kind = "TestAllIndexers"
	KindGetTags             Kind = "GetTags"
	KindAddTag              Kind = "AddTag"
	KindGetRootFolders      Kind = "GetRootFolders"
	KindGetQualityProfiles  Kind = "GetQualityProfiles"
	KindGetMetadataProfiles Kind = "GetMetadataProfiles"
	KindGetTasks            Kind = "GetTasks"
	KindGetQueuedEvents     Kind = "GetQueuedEvents"
	KindGetLogs             Kind = "GetLogs"
	KindGetUpdates          Kind = "GetUpdates"
	KindGetDiskSpace        Kind = "GetDiskSpace"
	KindGetStatus           Kind = "GetStatus"
	KindGetReleases         Kind = "GetReleases"
)

// Event is one backend-event on the network queue.
type Event struct {
	Backend models.Backend
	Kind    Kind
	Params  any
}

// New builds an Event with no parameters (most GET/warm-up events).
func New(b models.Backend, k Kind) Event { return Event{Backend: b, Kind: k} }

// WithParams builds a parameterised Event.
func WithParams(b models.Backend, k Kind, params any) Event {
	return Event{Backend: b, Kind: k, Params: params}
}

// --- Parameter structs, one per Kind that needs them ---

type DeleteMovieParams struct {
	ID                 int
	DeleteFiles        bool
	AddListExclusion   bool
}

type DeleteSeriesParams struct {
	ID               int
	DeleteFiles      bool
	AddListExclusion bool
}

type DeleteAlbumParams struct {
	ID          int
	DeleteFiles bool
}

type DeleteArtistParams struct {
	ID               int
	DeleteFiles      bool
	AddListExclusion bool
}

type DeleteDownloadParams struct {
	ID int
}

type DeleteIndexerParams struct {
	ID int
}

type DeleteRootFolderParams struct {
	ID int
}

type AddRootFolderParams struct {
	Path string
}

// EditMovieParams carries only the fields the user explicitly set; nil
// pointers mean "keep the server's current value" per spec §4.3 archetype B.
type EditMovieParams struct {
	ID                  int
	Monitored           *bool
	MinimumAvailability *string
	QualityProfileID    *int
	Path                *string
	TagInput            string // comma-separated labels; "" means keep existing tag ids
	ClearTags           bool
}

type EditSeriesParams struct {
	ID               int
	Monitored        *bool
	SeriesType       *string
	QualityProfileID *int
	Path             *string
	TagInput         string
	ClearTags        bool
}

type EditArtistParams struct {
	ID                int
	Monitored         *bool
	QualityProfileID  *int
	MetadataProfileID *int
	Path              *string
	TagInput          string
	ClearTags         bool
}

type EditCollectionParams struct {
	ID                  int
	Monitored           *bool
	MinimumAvailability *string
	QualityProfileID    *int
	RootFolderPath      *string
	SearchOnAdd         *bool
}

// EditIndexerParams mirrors spec §3's example verbatim.
type EditIndexerParams struct {
	IndexerID int
	Name      *string
	URL       *string
	APIKey    *string
	SeedRatio *string
	Tags      []int
	Priority  *int
	ClearTags bool
}

type SearchNewMovieParams struct{ Term string }
type SearchNewSeriesParams struct{ Term string }
type SearchNewArtistParams struct{ Term string }

type AddMovieParams struct {
	TMDBID              int
	Title               string
	Monitored           bool
	MinimumAvailability string
	QualityProfileID    int
	RootFolderPath      string
	TagInput            string
	SearchOnAdd         bool
}

type AddSeriesParams struct {
	TVDBID           int
	Title            string
	Monitored        bool
	SeriesType       string
	QualityProfileID int
	RootFolderPath   string
	TagInput         string
	SearchOnAdd      bool
}

type AddArtistParams struct {
	ForeignArtistID   string
	ArtistName        string
	Monitored         bool
	QualityProfileID  int
	MetadataProfileID int
	RootFolderPath    string
	TagInput          string
	SearchOnAdd       bool
}

type IDListParams struct{ IDs []int }

type StartTaskParams struct{ Name string }

type DownloadReleaseParams struct {
	GUID      string
	IndexerID int
}

type TestIndexerParams struct{ ID int }

type AddTagParams struct{ Label string }

type DetailParams struct{ ID int }

type HistoryParams struct{ PageSize int }

type GetReleasesParams struct{ ParentID int } // movie/episode/album id

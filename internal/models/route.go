// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package models holds the domain data model shared by every component: the
// route/navigation types (spec §3, §4.1), the per-backend library records,
// and the auxiliary tables (tags, profiles, indexers, history, downloads).
package models

// Backend identifies which ServArr instance a Route/Data belongs to.
type Backend int

const (
	BackendNone Backend = iota
	BackendRadarr
	BackendSonarr
	BackendLidarr
)

func (b Backend) String() string {
	switch b {
	case BackendRadarr:
		return "Radarr"
	case BackendSonarr:
		return "Sonarr"
	case BackendLidarr:
		return "Lidarr"
	default:
		return "None"
	}
}

// Block is a leaf UI screen. The set below is the union of all three
// backends' blocks (spec.md §3 plus the supplemented enumeration in
// SPEC_FULL.md §C); Route.Backend says which ones are meaningful for a given
// route.
type Block int

const (
	BlockNone Block = iota

	// Non-backend screens.
	BlockHelp
	BlockTabs

	// Library / detail.
	BlockMovies
	BlockMovieDetails
	BlockMovieHistory
	BlockFilterMovies
	BlockMoviesSortPrompt
	BlockEditMoviePrompt
	BlockDeleteMoviePrompt
	BlockAddMovieSearchInput
	BlockAddMovieSelectMonitor
	BlockAddMovieSelectMinimumAvailability
	BlockAddMovieSelectQualityProfile
	BlockAddMovieSelectRootFolder
	BlockAddMovieConfirmPrompt
	BlockAddMovieEmptySearchResults
	BlockCollections
	BlockCollectionDetails
	BlockEditCollectionPrompt

	BlockSeries
	BlockSeriesDetails
	BlockSeasonDetails
	BlockEpisodeDetails
	BlockSeriesHistory
	BlockFilterSeries
	BlockSeriesSortPrompt
	BlockEditSeriesPrompt
	BlockDeleteSeriesPrompt
	BlockAddSeriesSearchInput
	BlockAddSeriesSelectMonitor
	BlockAddSeriesSelectSeriesType
	BlockAddSeriesSelectQualityProfile
	BlockAddSeriesSelectRootFolder
	BlockAddSeriesConfirmPrompt
	BlockAddSeriesEmptySearchResults

	BlockArtists
	BlockArtistDetails
	BlockAlbumDetails
	BlockTrackDetails
	BlockArtistHistory
	BlockFilterArtists
	BlockArtistsSortPrompt
	BlockEditArtistPrompt
	BlockDeleteArtistPrompt
	BlockDeleteAlbumPrompt
	BlockAddArtistSearchInput
	BlockAddArtistSelectMonitor
	BlockAddArtistSelectQualityProfile
	BlockAddArtistSelectMetadataProfile
	BlockAddArtistSelectRootFolder
	BlockAddArtistConfirmPrompt
	BlockAddArtistEmptySearchResults

	// Shared across backends.
	BlockDownloads
	BlockDeleteDownloadPrompt
	BlockBlocklist
	BlockBlocklistItemDetails
	BlockClearBlocklistPrompt
	BlockHistory
	BlockHistoryDetails
	BlockIndexers
	BlockIndexerSettings
	BlockEditIndexerPrompt
	BlockDeleteIndexerPrompt
	BlockTestIndexer
	BlockTestAllIndexers
	BlockRootFolders
	BlockAddRootFolderPrompt
	BlockDeleteRootFolderPrompt
	BlockSystem
	BlockLogs
	BlockTasks
	BlockUpdates
	BlockManualSearch
	BlockManualSearchConfirmPrompt
)

// Route identifies what is currently displayed: a backend, a block, and an
// optional sibling "context" block a popup should return to.
type Route struct {
	Backend Backend
	Block   Block
	Context *Block
}

// NewRoute builds a Route with no context.
func NewRoute(b Backend, blk Block) Route { return Route{Backend: b, Block: blk} }

// WithContext returns a copy of r carrying the given context block, used when
// pushing a popup (prompt, sort screen, detail drill-down) on top of r.
func (r Route) WithContext(ctx Block) Route {
	c := ctx
	r.Context = &c
	return r
}

// Stack is the navigation stack of spec §4.1. It always has at least one
// entry after NewStack.
type Stack struct {
	routes []Route
}

// NewStack creates a stack whose sole entry is home.
func NewStack(home Route) *Stack {
	return &Stack{routes: []Route{home}}
}

// Current returns the top of the stack.
func (s *Stack) Current() Route {
	return s.routes[len(s.routes)-1]
}

// Push appends route. It does not touch IsRouting (spec invariant ii):
// state.App.PushRoute sets app.IsRouting = true after calling it.
func (s *Stack) Push(route Route) {
	s.routes = append(s.routes, route)
}

// Pop removes the top entry. A pop that would empty the stack is a no-op
// (invariant iii).
func (s *Stack) Pop() {
	if len(s.routes) <= 1 {
		return
	}
	s.routes = s.routes[:len(s.routes)-1]
}

// PopAndPush atomically replaces the top entry (invariant iv).
func (s *Stack) PopAndPush(route Route) {
	if len(s.routes) == 0 {
		s.routes = []Route{route}
		return
	}
	s.routes[len(s.routes)-1] = route
}

// Len reports the stack depth.
func (s *Stack) Len() int { return len(s.routes) }

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package network

import (
	"testing"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

func TestApply_GetMoviesSkippedDuringSortPrompt(t *testing.T) {
	app := state.New()
	app.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMoviesSortPrompt))

	app.Radarr.Movies.SetItems([]models.Movie{{ID: 1, Title: "existing"}})
	ev := events.New(models.BackendRadarr, events.KindGetMovies)
	result := models.Serdeable{Radarr: &models.RadarrResult{Movies: []models.Movie{{ID: 2, Title: "incoming"}}}}

	Apply(app, ev, result)

	items := app.Radarr.Movies.AllItems()
	if len(items) != 1 || items[0].ID != 1 {
		t.Fatalf("GetMovies response clobbered the in-progress sort-prompt selection: %+v", items)
	}
}

func TestApply_GetMoviesAppliesOutsideSortPrompt(t *testing.T) {
	app := state.New()
	app.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovies))

	ev := events.New(models.BackendRadarr, events.KindGetMovies)
	result := models.Serdeable{Radarr: &models.RadarrResult{Movies: []models.Movie{{ID: 2, Title: "incoming"}}}}
	Apply(app, ev, result)

	items := app.Radarr.Movies.AllItems()
	if len(items) != 1 || items[0].ID != 2 {
		t.Fatalf("GetMovies response not applied on the Movies screen: %+v", items)
	}
}

func TestApply_StaleSearchResultDiscardedAfterNavigatingAway(t *testing.T) {
	app := state.New()
	app.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockAddMovieSearchInput))
	app.PopRoute() // navigate back to Movies before the search response arrives

	ev := events.WithParams(models.BackendRadarr, events.KindSearchNewMovie, events.SearchNewMovieParams{Term: "arrival"})
	result := models.Serdeable{Radarr: &models.RadarrResult{Movies: []models.Movie{{ID: 9, Title: "Arrival"}}}}
	Apply(app, ev, result)

	if app.Radarr.AddSearchResults != nil {
		t.Fatalf("stale search result applied after navigating away: %+v", app.Radarr.AddSearchResults)
	}
}

func TestApply_SearchResultAppliedOnAddScreen(t *testing.T) {
	app := state.New()
	app.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockAddMovieSearchInput))

	ev := events.WithParams(models.BackendRadarr, events.KindSearchNewMovie, events.SearchNewMovieParams{Term: "arrival"})
	result := models.Serdeable{Radarr: &models.RadarrResult{Movies: []models.Movie{{ID: 9, Title: "Arrival"}}}}
	Apply(app, ev, result)

	if len(app.Radarr.AddSearchResults) != 1 || app.Radarr.AddSearchResults[0].ID != 9 {
		t.Fatalf("search result not applied while still on the add-movie screen: %+v", app.Radarr.AddSearchResults)
	}
}

func TestApply_GetStatusMergesIntoSharedData(t *testing.T) {
	app := state.New()
	ev := events.New(models.BackendRadarr, events.KindGetStatus)
	status := models.SystemStatus{Version: "4.7.0", InstanceName: "Radarr"}
	result := models.Serdeable{Radarr: &models.RadarrResult{Status: &status}}
	Apply(app, ev, result)

	if app.Radarr.Shared.Status == nil || app.Radarr.Shared.Status.Version != "4.7.0" {
		t.Fatalf("GetStatus result not merged into SharedData: %+v", app.Radarr.Shared.Status)
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// MoviesHandler owns the Radarr library list and its detail drill-down
// (spec §4.4: readiness requires a non-empty primary table, spec §8's
// "Readiness" rule for list screens).
type MoviesHandler struct{ BaseHandler }

func NewMoviesHandler() *MoviesHandler { return &MoviesHandler{} }

var moviesBlocks = blocks(models.BlockMovies, models.BlockMovieDetails, models.BlockMovieHistory)

func (h *MoviesHandler) Accepts(b models.Block) bool { return moviesBlocks.has(b) }

func (h *MoviesHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.Radarr.Movies.Len() > 0
}

func (h *MoviesHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.Movies.ScrollUp()
}

func (h *MoviesHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.Movies.ScrollDown()
}

func (h *MoviesHandler) HandleHome(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.Movies.Home()
}

func (h *MoviesHandler) HandleEnd(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.Movies.End()
}

// HandleSubmit drills into MovieDetails for the selected row and warms it
// up with GetMovieDetails (spec §4.1's warm-up rule on transition).
func (h *MoviesHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	movie, ok := ctx.App.Radarr.Movies.Selected()
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMovieDetails))
	ctx.Emit(events.WithParams(models.BackendRadarr, events.KindGetMovieDetails, events.DetailParams{ID: movie.ID}))
}

// HandleDelete opens the delete-confirmation prompt (spec §4.4's
// multi-field prompt design), capturing the selected movie as the delete
// target.
func (h *MoviesHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	movie, ok := ctx.App.Radarr.Movies.Selected()
	if ok {
		m := movie
		ctx.App.Radarr.DeleteTarget = &m
		ctx.App.Radarr.DeleteFiles = false
		ctx.App.Radarr.AddListExclusion = false
		ctx.App.Radarr.PromptCursor = state.NewPromptCursor([]int{0, 1, 2})
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockDeleteMoviePrompt))
}

// HandleCharKey resolves the letter bindings meaningful on a movie list:
// 'e' opens the edit prompt, 'a' starts the add-movie flow, 'r' triggers a
// refresh+search command, 's' opens the sort prompt, '/' opens the filter
// input (spec §6).
func (h *MoviesHandler) HandleCharKey(ctx *Context, r rune) {
	switch Resolve(Key{Rune: r}, false) {
	case ActionEdit:
		ctx.App.Lock()
		movie, ok := ctx.App.Radarr.Movies.Selected()
		if ok {
			m := movie
			ctx.App.Radarr.EditTarget = &m
		}
		ctx.App.Unlock()
		if ok {
			ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockEditMoviePrompt))
		}
	case ActionAdd:
		ctx.App.Lock()
		ctx.App.Radarr.ResetAddPrompt()
		ctx.App.Unlock()
		ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockAddMovieSearchInput))
	case ActionRefresh:
		ctx.App.Lock()
		movie, ok := ctx.App.Radarr.Movies.Selected()
		ctx.App.Unlock()
		if ok {
			ctx.Emit(events.WithParams(models.BackendRadarr, events.KindRefreshMovie, events.IDListParams{IDs: []int{movie.ID}}))
			ctx.Emit(events.WithParams(models.BackendRadarr, events.KindMoviesSearch, events.IDListParams{IDs: []int{movie.ID}}))
		}
	case ActionSort:
		ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockMoviesSortPrompt))
	case ActionFilter:
		ctx.App.PushRoute(models.NewRoute(models.BackendRadarr, models.BlockFilterMovies))
	}
}

func (h *MoviesHandler) IgnoreSpecialKeys(app *state.App) bool {
	return app.IgnoreSpecialKeysForTextboxInput
}

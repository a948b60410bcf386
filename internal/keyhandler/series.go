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

// SeriesHandler owns the Sonarr library list and its season/episode
// drill-down, mirroring MoviesHandler's shape for the Sonarr backend.
type SeriesHandler struct{ BaseHandler }

func NewSeriesHandler() *SeriesHandler { return &SeriesHandler{} }

var seriesBlocks = blocks(models.BlockSeries, models.BlockSeriesDetails,
	models.BlockSeasonDetails, models.BlockEpisodeDetails, models.BlockSeriesHistory)

func (h *SeriesHandler) Accepts(b models.Block) bool { return seriesBlocks.has(b) }

func (h *SeriesHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.Sonarr.Series.Len() > 0
}

func (h *SeriesHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.Series.ScrollUp()
}

func (h *SeriesHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.Series.ScrollDown()
}

func (h *SeriesHandler) HandleHome(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.Series.Home()
}

func (h *SeriesHandler) HandleEnd(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.Series.End()
}

func (h *SeriesHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	series, ok := ctx.App.Sonarr.Series.Selected()
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeriesDetails))
	ctx.Emit(events.WithParams(models.BackendSonarr, events.KindGetSeriesDetails, events.DetailParams{ID: series.ID}))
}

func (h *SeriesHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	series, ok := ctx.App.Sonarr.Series.Selected()
	if ok {
		s := series
		ctx.App.Sonarr.DeleteTarget = &s
		ctx.App.Sonarr.DeleteFiles = false
		ctx.App.Sonarr.AddListExclusion = false
		ctx.App.Sonarr.PromptCursor = state.NewPromptCursor([]int{0, 1, 2})
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockDeleteSeriesPrompt))
}

func (h *SeriesHandler) HandleCharKey(ctx *Context, r rune) {
	switch Resolve(Key{Rune: r}, false) {
	case ActionEdit:
		ctx.App.Lock()
		series, ok := ctx.App.Sonarr.Series.Selected()
		if ok {
			s := series
			ctx.App.Sonarr.EditTarget = &s
		}
		ctx.App.Unlock()
		if ok {
			ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockEditSeriesPrompt))
		}
	case ActionAdd:
		ctx.App.Lock()
		ctx.App.Sonarr.ResetAddPrompt()
		ctx.App.Unlock()
		ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockAddSeriesSearchInput))
	case ActionRefresh:
		ctx.App.Lock()
		series, ok := ctx.App.Sonarr.Series.Selected()
		ctx.App.Unlock()
		if ok {
			ctx.Emit(events.WithParams(models.BackendSonarr, events.KindRefreshSeries, events.IDListParams{IDs: []int{series.ID}}))
			ctx.Emit(events.WithParams(models.BackendSonarr, events.KindSeriesSearch, events.IDListParams{IDs: []int{series.ID}}))
		}
	case ActionSort:
		ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockSeriesSortPrompt))
	case ActionFilter:
		ctx.App.PushRoute(models.NewRoute(models.BackendSonarr, models.BlockFilterSeries))
	}
}

func (h *SeriesHandler) IgnoreSpecialKeys(app *state.App) bool {
	return app.IgnoreSpecialKeysForTextboxInput
}

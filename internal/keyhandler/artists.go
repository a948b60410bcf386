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

// ArtistsHandler owns the Lidarr library list and its album/track
// drill-down, mirroring MoviesHandler's shape for the Lidarr backend.
type ArtistsHandler struct{ BaseHandler }

func NewArtistsHandler() *ArtistsHandler { return &ArtistsHandler{} }

var artistsBlocks = blocks(models.BlockArtists, models.BlockArtistDetails,
	models.BlockAlbumDetails, models.BlockTrackDetails, models.BlockArtistHistory)

func (h *ArtistsHandler) Accepts(b models.Block) bool { return artistsBlocks.has(b) }

func (h *ArtistsHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.Lidarr.Artists.Len() > 0
}

func (h *ArtistsHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.Artists.ScrollUp()
}

func (h *ArtistsHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.Artists.ScrollDown()
}

func (h *ArtistsHandler) HandleHome(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.Artists.Home()
}

func (h *ArtistsHandler) HandleEnd(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.Artists.End()
}

func (h *ArtistsHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	artist, ok := ctx.App.Lidarr.Artists.Selected()
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockArtistDetails))
	ctx.Emit(events.WithParams(models.BackendLidarr, events.KindGetArtistDetails, events.DetailParams{ID: artist.ID}))
}

func (h *ArtistsHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	artist, ok := ctx.App.Lidarr.Artists.Selected()
	if ok {
		a := artist
		ctx.App.Lidarr.DeleteTarget = &a
		ctx.App.Lidarr.DeleteFiles = false
		ctx.App.Lidarr.PromptCursor = state.NewPromptCursor([]int{0, 1})
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockDeleteArtistPrompt))
}

func (h *ArtistsHandler) HandleCharKey(ctx *Context, r rune) {
	switch Resolve(Key{Rune: r}, false) {
	case ActionEdit:
		ctx.App.Lock()
		artist, ok := ctx.App.Lidarr.Artists.Selected()
		if ok {
			a := artist
			ctx.App.Lidarr.EditTarget = &a
		}
		ctx.App.Unlock()
		if ok {
			ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockEditArtistPrompt))
		}
	case ActionAdd:
		ctx.App.Lock()
		ctx.App.Lidarr.ResetAddPrompt()
		ctx.App.Unlock()
		ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockAddArtistSearchInput))
	case ActionRefresh:
		ctx.App.Lock()
		artist, ok := ctx.App.Lidarr.Artists.Selected()
		ctx.App.Unlock()
		if ok {
			ctx.Emit(events.WithParams(models.BackendLidarr, events.KindRefreshArtist, events.IDListParams{IDs: []int{artist.ID}}))
			ctx.Emit(events.WithParams(models.BackendLidarr, events.KindArtistSearch, events.IDListParams{IDs: []int{artist.ID}}))
		}
	case ActionSort:
		ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockArtistsSortPrompt))
	case ActionFilter:
		ctx.App.PushRoute(models.NewRoute(models.BackendLidarr, models.BlockFilterArtists))
	}
}

func (h *ArtistsHandler) IgnoreSpecialKeys(app *state.App) bool {
	return app.IgnoreSpecialKeysForTextboxInput
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
)

// deleteFilesRow / addListExclusionRow are the PromptCursor step indices
// shared by the three-row delete prompts (delete-files, add-list-exclusion,
// confirm); the two-row Lidarr variant reuses deleteFilesRow and treats its
// second step as the confirm row.
const (
	deleteFilesRow      = 0
	addListExclusionRow = 1
)

// DeleteMoviePromptHandler drives the multi-field delete prompt for
// Radarr: UP/DOWN walks PromptCursor, ENTER on a toggle row flips that
// policy flag, ENTER on the confirm row posts the delete command directly
// (spec §4.4; unlike the generic yes/no prompts, nothing else would ever
// invoke a deferred action for this route).
type DeleteMoviePromptHandler struct{ BaseHandler }

func NewDeleteMoviePromptHandler() *DeleteMoviePromptHandler { return &DeleteMoviePromptHandler{} }

func (h *DeleteMoviePromptHandler) Accepts(b models.Block) bool {
	return b == models.BlockDeleteMoviePrompt
}

func (h *DeleteMoviePromptHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.PromptCursor.Prev()
}

func (h *DeleteMoviePromptHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Radarr.PromptCursor.Next()
}

func (h *DeleteMoviePromptHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	d := ctx.App.Radarr
	row, _ := d.PromptCursor.Current()
	switch row {
	case deleteFilesRow:
		d.DeleteFiles = !d.DeleteFiles
		ctx.App.Unlock()
		return
	case addListExclusionRow:
		d.AddListExclusion = !d.AddListExclusion
		ctx.App.Unlock()
		return
	}
	target := d.DeleteTarget
	deleteFiles, addListExclusion := d.DeleteFiles, d.AddListExclusion
	d.DeleteTarget = nil
	d.PromptCursor = nil
	ctx.App.Unlock()
	if target == nil {
		return
	}
	ctx.Emit(events.WithParams(models.BackendRadarr, events.KindDeleteMovie, events.DeleteMovieParams{
		ID: target.ID, DeleteFiles: deleteFiles, AddListExclusion: addListExclusion,
	}))
	ctx.App.PopRoute()
}

func (h *DeleteMoviePromptHandler) HandleEsc(ctx *Context) {
	ctx.App.Lock()
	ctx.App.Radarr.DeleteTarget = nil
	ctx.App.Radarr.PromptCursor = nil
	ctx.App.Unlock()
	ctx.App.PopRoute()
}

// DeleteSeriesPromptHandler is DeleteMoviePromptHandler's Sonarr twin.
type DeleteSeriesPromptHandler struct{ BaseHandler }

func NewDeleteSeriesPromptHandler() *DeleteSeriesPromptHandler { return &DeleteSeriesPromptHandler{} }

func (h *DeleteSeriesPromptHandler) Accepts(b models.Block) bool {
	return b == models.BlockDeleteSeriesPrompt
}

func (h *DeleteSeriesPromptHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.PromptCursor.Prev()
}

func (h *DeleteSeriesPromptHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Sonarr.PromptCursor.Next()
}

func (h *DeleteSeriesPromptHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	d := ctx.App.Sonarr
	row, _ := d.PromptCursor.Current()
	switch row {
	case deleteFilesRow:
		d.DeleteFiles = !d.DeleteFiles
		ctx.App.Unlock()
		return
	case addListExclusionRow:
		d.AddListExclusion = !d.AddListExclusion
		ctx.App.Unlock()
		return
	}
	target := d.DeleteTarget
	deleteFiles, addListExclusion := d.DeleteFiles, d.AddListExclusion
	d.DeleteTarget = nil
	d.PromptCursor = nil
	ctx.App.Unlock()
	if target == nil {
		return
	}
	ctx.Emit(events.WithParams(models.BackendSonarr, events.KindDeleteSeries, events.DeleteSeriesParams{
		ID: target.ID, DeleteFiles: deleteFiles, AddListExclusion: addListExclusion,
	}))
	ctx.App.PopRoute()
}

func (h *DeleteSeriesPromptHandler) HandleEsc(ctx *Context) {
	ctx.App.Lock()
	ctx.App.Sonarr.DeleteTarget = nil
	ctx.App.Sonarr.PromptCursor = nil
	ctx.App.Unlock()
	ctx.App.PopRoute()
}

// DeleteAlbumPromptHandler covers both of Lidarr's delete prompts: removing
// an artist (BlockDeleteArtistPrompt, the two-row delete-files/confirm flow
// driven by ArtistsHandler.HandleDelete and Lidarr.DeleteTarget) and
// removing a single album (BlockDeleteAlbumPrompt, Lidarr.DeleteAlbumTarget).
// The two resources are deleted through different endpoints (artist:
// DELETE /artist/{id}, album: DELETE /album/{id}), so confirm dispatches
// KindDeleteArtist or KindDeleteAlbum depending on which block is current.
type DeleteAlbumPromptHandler struct{ BaseHandler }

func NewDeleteAlbumPromptHandler() *DeleteAlbumPromptHandler { return &DeleteAlbumPromptHandler{} }

func (h *DeleteAlbumPromptHandler) Accepts(b models.Block) bool {
	return b == models.BlockDeleteArtistPrompt || b == models.BlockDeleteAlbumPrompt
}

func (h *DeleteAlbumPromptHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.PromptCursor.Prev()
}

func (h *DeleteAlbumPromptHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.Lidarr.PromptCursor.Next()
}

func (h *DeleteAlbumPromptHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	d := ctx.App.Lidarr
	block := ctx.App.CurrentRoute().Block
	row, _ := d.PromptCursor.Current()
	if row == deleteFilesRow {
		d.DeleteFiles = !d.DeleteFiles
		ctx.App.Unlock()
		return
	}
	var ev events.Event
	switch block {
	case models.BlockDeleteArtistPrompt:
		if d.DeleteTarget == nil {
			ctx.App.Unlock()
			return
		}
		ev = events.WithParams(models.BackendLidarr, events.KindDeleteArtist, events.DeleteArtistParams{
			ID: d.DeleteTarget.ID, DeleteFiles: d.DeleteFiles,
		})
	case models.BlockDeleteAlbumPrompt:
		if d.DeleteAlbumTarget == nil {
			ctx.App.Unlock()
			return
		}
		ev = events.WithParams(models.BackendLidarr, events.KindDeleteAlbum, events.DeleteAlbumParams{
			ID: d.DeleteAlbumTarget.ID, DeleteFiles: d.DeleteFiles,
		})
	}
	d.DeleteTarget = nil
	d.DeleteAlbumTarget = nil
	d.PromptCursor = nil
	ctx.App.Unlock()
	ctx.Emit(ev)
	ctx.App.PopRoute()
}

func (h *DeleteAlbumPromptHandler) HandleEsc(ctx *Context) {
	ctx.App.Lock()
	ctx.App.Lidarr.DeleteTarget = nil
	ctx.App.Lidarr.DeleteAlbumTarget = nil
	ctx.App.Lidarr.PromptCursor = nil
	ctx.App.Unlock()
	ctx.App.PopRoute()
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import "github.com/tomtom215/servarr-tui/internal/models"

// Chain holds the compile-time list of Handlers in priority order. Only
// one handler is expected to accept a given block; Dispatch takes the
// first match.
type Chain struct {
	handlers []Handler
}

// NewChain builds the default handler chain: one handler per screen
// category, covering every block the route enum names (spec §3/§C).
// Library list handlers are registered first since they are the most
// common screens; prompts and shared-table screens follow.
func NewChain() *Chain {
	return &Chain{handlers: []Handler{
		NewMoviesHandler(),
		NewSeriesHandler(),
		NewArtistsHandler(),
		NewDownloadsHandler(),
		NewBlocklistHandler(),
		NewHistoryHandler(),
		NewIndexersHandler(),
		NewRootFoldersHandler(),
		NewSystemHandler(),
		NewDeleteMoviePromptHandler(),
		NewDeleteSeriesPromptHandler(),
		NewDeleteAlbumPromptHandler(),
		NewGenericConfirmPromptHandler(),
		NewTabsHandler(),
	}}
}

// For returns the single handler whose Accepts matches block, or nil if
// none do (an unreachable block is a programmer error the caller should
// treat as a no-op rather than panic, since block is trusted input from
// the navigation stack, not user input).
func (c *Chain) For(block models.Block) Handler {
	for _, h := range c.handlers {
		if h.Accepts(block) {
			return h
		}
	}
	return nil
}

// Dispatch routes one resolved Action to the handler accepting the
// current route's block, respecting IsReady the way spec §4.4 requires: a
// handler that isn't ready silently drops the key except for Esc, which
// always works (it is how a stuck loading screen or a stale prompt is
// escaped).
func (c *Chain) Dispatch(ctx *Context, action Action, r rune) {
	if action == ActionTab {
		cycleActiveTab(ctx.App)
		return
	}
	block := ctx.App.CurrentRoute().Block
	h := c.For(block)
	if h == nil {
		return
	}
	if !h.IsReady(ctx.App) && action != ActionEsc {
		return
	}
	switch action {
	case ActionUp:
		h.HandleScrollUp(ctx)
	case ActionDown:
		h.HandleScrollDown(ctx)
	case ActionHome:
		h.HandleHome(ctx)
	case ActionEnd:
		h.HandleEnd(ctx)
	case ActionDelete:
		h.HandleDelete(ctx)
	case ActionLeft:
		h.HandleLeftRight(ctx, true)
	case ActionRight:
		h.HandleLeftRight(ctx, false)
	case ActionEnter:
		h.HandleSubmit(ctx)
	case ActionConfirm:
		h.HandleSubmit(ctx)
	case ActionEsc:
		h.HandleEsc(ctx)
	case ActionChar:
		h.HandleCharKey(ctx, r)
	default:
		h.HandleCharKey(ctx, r)
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"context"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/network"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// Context is the shared environment every handler operates through: the
// global App plus a clonable handle on the network queue (spec §9's
// "cyclic UI references... implement as a context struct passed by
// reference" design note). Handlers never hold a back-reference to the
// dispatcher or to each other.
type Context struct {
	App   *state.App
	Queue *network.Queue
}

// Emit enqueues a backend-event, logging nothing here — internal/network
// and internal/logging own the correlation/log trail once the event is on
// the queue.
func (c *Context) Emit(ev events.Event) {
	_, _ = c.Queue.Enqueue(ev)
}

// Handler is the common contract spec §4.4 describes. Every operation is
// optional in the sense that a handler whose screen has no concept of
// (say) deletion simply implements it as a no-op; Go has no default
// interface methods, so BaseHandler (below) supplies no-op bodies that
// concrete handlers embed and override selectively.
type Handler interface {
	Accepts(block models.Block) bool
	IsReady(app *state.App) bool
	HandleScrollUp(ctx *Context)
	HandleScrollDown(ctx *Context)
	HandleHome(ctx *Context)
	HandleEnd(ctx *Context)
	HandleDelete(ctx *Context)
	HandleLeftRight(ctx *Context, left bool)
	HandleSubmit(ctx *Context)
	HandleEsc(ctx *Context)
	HandleCharKey(ctx *Context, r rune)
	IgnoreSpecialKeys(app *state.App) bool
}

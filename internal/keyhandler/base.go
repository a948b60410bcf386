// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import "github.com/tomtom215/servarr-tui/internal/state"

// BaseHandler supplies no-op bodies for every Handler operation. Concrete
// handlers embed it and override only the operations their screen actually
// supports, the same "implement the interface, override selectively"
// shape cartographus's http.Handler-wrapping middleware chain uses for
// optional behaviour (internal/middleware).
type BaseHandler struct{}

func (BaseHandler) IsReady(app *state.App) bool                { return !app.IsLoading }
func (BaseHandler) HandleScrollUp(ctx *Context)                 {}
func (BaseHandler) HandleScrollDown(ctx *Context)               {}
func (BaseHandler) HandleHome(ctx *Context)                     {}
func (BaseHandler) HandleEnd(ctx *Context)                      {}
func (BaseHandler) HandleDelete(ctx *Context)                   {}
func (BaseHandler) HandleLeftRight(ctx *Context, left bool)     {}
func (BaseHandler) HandleSubmit(ctx *Context)                   {}
func (BaseHandler) HandleEsc(ctx *Context)                      { ctx.App.PopRoute() }
func (BaseHandler) HandleCharKey(ctx *Context, r rune)          {}
func (BaseHandler) IgnoreSpecialKeys(app *state.App) bool       { return false }

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"context"

	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// GenericConfirmPromptHandler drives every simple yes/no confirmation popup
// (spec §4.1's "are you sure?" protocol): LEFT/RIGHT move the cursor between
// No and Yes, ENTER invokes the pending App.PromptConfirmAction only if Yes
// is selected, and Esc always cancels without running it. The screen that
// pushes one of these routes is responsible for arming PromptConfirmAction
// first (mirroring DownloadsHandler.HandleDelete); this handler only reads
// and fires it.
type GenericConfirmPromptHandler struct{ BaseHandler }

func NewGenericConfirmPromptHandler() *GenericConfirmPromptHandler {
	return &GenericConfirmPromptHandler{}
}

var genericConfirmBlocks = blocks(
	models.BlockDeleteDownloadPrompt,
	models.BlockClearBlocklistPrompt,
	models.BlockDeleteIndexerPrompt,
	models.BlockDeleteRootFolderPrompt,
)

func (h *GenericConfirmPromptHandler) Accepts(b models.Block) bool {
	return genericConfirmBlocks.has(b)
}

func (h *GenericConfirmPromptHandler) IsReady(app *state.App) bool { return true }

func (h *GenericConfirmPromptHandler) HandleLeftRight(ctx *Context, left bool) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.PromptConfirm = !left
}

func (h *GenericConfirmPromptHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	confirm := ctx.App.PromptConfirm
	action := ctx.App.PromptConfirmAction
	ctx.App.PromptConfirm = false
	ctx.App.PromptConfirmAction = nil
	ctx.App.Unlock()
	ctx.App.PopRoute()
	if confirm && action != nil {
		_ = action(context.Background())
	}
}

func (h *GenericConfirmPromptHandler) HandleEsc(ctx *Context) {
	ctx.App.Lock()
	ctx.App.PromptConfirm = false
	ctx.App.PromptConfirmAction = nil
	ctx.App.Unlock()
	ctx.App.PopRoute()
}

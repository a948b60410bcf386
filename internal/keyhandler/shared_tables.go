// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package keyhandler

import (
	"context"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/state"
)

// DownloadsHandler is shared across all three backends: the active tab
// (state.App.ActiveTab) selects which backend's SharedData.Downloads table
// is in view (spec §4.4's "Downloads/history/indexers/root-folders
// handlers report not ready when loading or their backing table is
// empty").
type DownloadsHandler struct{ BaseHandler }

func NewDownloadsHandler() *DownloadsHandler { return &DownloadsHandler{} }

func (h *DownloadsHandler) Accepts(b models.Block) bool {
	return b == models.BlockDownloads
}

func (h *DownloadsHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.SharedFor(app.ActiveTab).Downloads.Len() > 0
}

func (h *DownloadsHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Downloads.ScrollUp()
}

func (h *DownloadsHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Downloads.ScrollDown()
}

func (h *DownloadsHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	item, ok := ctx.App.SharedFor(backend).Downloads.Selected()
	if ok {
		ctx.App.PromptConfirm = false
		ev := events.WithParams(backend, events.KindDeleteDownload, events.DeleteDownloadParams{ID: item.ID})
		queue := ctx.Queue
		ctx.App.PromptConfirmAction = func(context.Context) error {
			_, err := queue.Enqueue(ev)
			return err
		}
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(backend, models.BlockDeleteDownloadPrompt))
}

func (h *DownloadsHandler) IgnoreSpecialKeys(app *state.App) bool { return false }

// BlocklistHandler (spec §C: clear-all command backs the CLI's
// clear-blocklist and the 'x' binding in the UI).
type BlocklistHandler struct{ BaseHandler }

func NewBlocklistHandler() *BlocklistHandler { return &BlocklistHandler{} }

func (h *BlocklistHandler) Accepts(b models.Block) bool {
	return b == models.BlockBlocklist || b == models.BlockBlocklistItemDetails
}

func (h *BlocklistHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.SharedFor(app.ActiveTab).Blocklist.Len() > 0
}

func (h *BlocklistHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Blocklist.ScrollUp()
}

func (h *BlocklistHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Blocklist.ScrollDown()
}

func (h *BlocklistHandler) HandleCharKey(ctx *Context, r rune) {
	if Resolve(Key{Rune: r}, false) != ActionDelete {
		return
	}
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	ctx.App.PromptConfirm = false
	ev := events.New(backend, events.KindClearBlocklist)
	queue := ctx.Queue
	ctx.App.PromptConfirmAction = func(context.Context) error {
		_, err := queue.Enqueue(ev)
		return err
	}
	ctx.App.Unlock()
	ctx.App.PushRoute(models.NewRoute(backend, models.BlockClearBlocklistPrompt))
}

// HistoryHandler is read-only: scroll and a detail drill-down into the raw
// record blob (spec §C's HistoryDetails modal).
type HistoryHandler struct{ BaseHandler }

func NewHistoryHandler() *HistoryHandler { return &HistoryHandler{} }

func (h *HistoryHandler) Accepts(b models.Block) bool {
	return b == models.BlockHistory || b == models.BlockHistoryDetails
}

func (h *HistoryHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.SharedFor(app.ActiveTab).History.Len() > 0
}

func (h *HistoryHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).History.ScrollUp()
}

func (h *HistoryHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).History.ScrollDown()
}

func (h *HistoryHandler) HandleSubmit(ctx *Context) {
	ctx.App.Lock()
	shared := ctx.App.SharedFor(ctx.App.ActiveTab)
	rec, ok := shared.History.Selected()
	if ok {
		r := rec
		shared.HistoryDetailModal = &r
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(ctx.App.ActiveTab, models.BlockHistoryDetails))
}

// IndexersHandler handles the Indexers list, edit/delete prompts, and the
// test/test-all actions (spec §4.3's indexer-test special cases).
type IndexersHandler struct{ BaseHandler }

func NewIndexersHandler() *IndexersHandler { return &IndexersHandler{} }

func (h *IndexersHandler) Accepts(b models.Block) bool {
	switch b {
	case models.BlockIndexers, models.BlockIndexerSettings, models.BlockEditIndexerPrompt,
		models.BlockTestIndexer, models.BlockTestAllIndexers:
		return true
	}
	return false
}

func (h *IndexersHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.SharedFor(app.ActiveTab).Indexers.Len() > 0
}

func (h *IndexersHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Indexers.ScrollUp()
}

func (h *IndexersHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).Indexers.ScrollDown()
}

func (h *IndexersHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	idx, ok := ctx.App.SharedFor(backend).Indexers.Selected()
	if ok {
		ctx.App.PromptConfirm = false
		ev := events.WithParams(backend, events.KindDeleteIndexer, events.DeleteIndexerParams{ID: idx.ID})
		queue := ctx.Queue
		ctx.App.PromptConfirmAction = func(context.Context) error {
			_, err := queue.Enqueue(ev)
			return err
		}
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(backend, models.BlockDeleteIndexerPrompt))
}

func (h *IndexersHandler) HandleCharKey(ctx *Context, r rune) {
	switch Resolve(Key{Rune: r}, false) {
	case ActionEdit:
		ctx.App.PushRoute(models.NewRoute(ctx.App.ActiveTab, models.BlockEditIndexerPrompt))
	case ActionTest:
		ctx.App.Lock()
		backend := ctx.App.ActiveTab
		idx, ok := ctx.App.SharedFor(backend).Indexers.Selected()
		ctx.App.Unlock()
		if ok {
			ctx.App.PushRoute(models.NewRoute(backend, models.BlockTestIndexer))
			ctx.Emit(events.WithParams(backend, events.KindTestIndexer, events.TestIndexerParams{ID: idx.ID}))
		}
	}
}

// RootFoldersHandler manages the root-folder list, add, and delete prompts.
type RootFoldersHandler struct{ BaseHandler }

func NewRootFoldersHandler() *RootFoldersHandler { return &RootFoldersHandler{} }

func (h *RootFoldersHandler) Accepts(b models.Block) bool {
	switch b {
	case models.BlockRootFolders, models.BlockAddRootFolderPrompt:
		return true
	}
	return false
}

func (h *RootFoldersHandler) IsReady(app *state.App) bool {
	if app.IsLoading {
		return false
	}
	app.Lock()
	defer app.Unlock()
	return app.SharedFor(app.ActiveTab).RootFolders.Len() > 0
}

func (h *RootFoldersHandler) HandleScrollUp(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).RootFolders.ScrollUp()
}

func (h *RootFoldersHandler) HandleScrollDown(ctx *Context) {
	ctx.App.Lock()
	defer ctx.App.Unlock()
	ctx.App.SharedFor(ctx.App.ActiveTab).RootFolders.ScrollDown()
}

func (h *RootFoldersHandler) HandleDelete(ctx *Context) {
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	rf, ok := ctx.App.SharedFor(backend).RootFolders.Selected()
	if ok {
		ctx.App.PromptConfirm = false
		ev := events.WithParams(backend, events.KindDeleteRootFolder, events.DeleteRootFolderParams{ID: rf.ID})
		queue := ctx.Queue
		ctx.App.PromptConfirmAction = func(context.Context) error {
			_, err := queue.Enqueue(ev)
			return err
		}
	}
	ctx.App.Unlock()
	if !ok {
		return
	}
	ctx.App.PushRoute(models.NewRoute(backend, models.BlockDeleteRootFolderPrompt))
}

func (h *RootFoldersHandler) HandleCharKey(ctx *Context, r rune) {
	if Resolve(Key{Rune: r}, false) == ActionAdd {
		ctx.App.PushRoute(models.NewRoute(ctx.App.ActiveTab, models.BlockAddRootFolderPrompt))
	}
}

// SystemHandler covers Tasks, Logs, Updates and the Queued Events view
// nested under the System block (spec §C's "System tab detail").
type SystemHandler struct{ BaseHandler }

func NewSystemHandler() *SystemHandler { return &SystemHandler{} }

func (h *SystemHandler) Accepts(b models.Block) bool {
	switch b {
	case models.BlockSystem, models.BlockLogs, models.BlockTasks, models.BlockUpdates:
		return true
	}
	return false
}

func (h *SystemHandler) HandleCharKey(ctx *Context, r rune) {
	if Resolve(Key{Rune: r}, false) != ActionUpdate {
		return
	}
	ctx.App.Lock()
	backend := ctx.App.ActiveTab
	task, ok := ctx.App.SharedFor(backend).Tasks.Selected()
	ctx.App.Unlock()
	if ok {
		ctx.Emit(events.WithParams(backend, events.KindStartTask, events.StartTaskParams{Name: task.Name}))
	}
}

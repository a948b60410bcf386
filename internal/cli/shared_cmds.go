// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package cli

import (
	"context"
	"strconv"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
)

// adhocCommands are the ad-hoc commands spec §4.5 lists alongside the
// per-resource add/delete/edit/get/list/refresh verbs, plus the shared
// (non-resource-specific) reads every backend exposes identically.
var adhocCommands = map[string]leafFunc{
	"clear-blocklist":           clearBlocklist,
	"manual-search":             manualSearch,
	"start-task":                startTask,
	"test-indexer":              testIndexer,
	"test-all-indexers":         testAllIndexers,
	"trigger-automatic-search":  triggerAutomaticSearch,
	"download-release":          downloadRelease,
	"downloads":                 getDownloads,
	"blocklist":                 getBlocklist,
	"history":                   getHistory,
	"indexers":                  getIndexers,
	"tags":                      getTags,
	"add-tag":                   addTag,
	"root-folders":              getRootFolders,
	"add-root-folder":           addRootFolder,
	"delete-root-folder":        deleteRootFolder,
	"delete-indexer":            deleteIndexer,
	"edit-indexer":              editIndexer,
	"quality-profiles":          getQualityProfiles,
	"metadata-profiles":         getMetadataProfiles,
	"tasks":                     getTasks,
	"queued-events":             getQueuedEvents,
	"logs":                      getLogs,
	"updates":                   getUpdates,
	"disk-space":                getDiskSpace,
	"delete-download":           deleteDownload,
}

func parseID(args []string) (int, []string, error) {
	if len(args) < 1 {
		return 0, nil, newUsageError("missing id argument")
	}
	id, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, nil, newUsageError("invalid id %q: %v", args[0], err)
	}
	return id, args[1:], nil
}

func getDownloads(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetDownloads))
}

func deleteDownload(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteDownload, events.DeleteDownloadParams{ID: id}))
}

func getBlocklist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetBlocklist))
}

func clearBlocklist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindClearBlocklist))
}

func getHistory(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetHistory))
}

func getIndexers(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetIndexers))
}

func deleteIndexer(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteIndexer, events.DeleteIndexerParams{ID: id}))
}

func editIndexer(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("edit-indexer")
	name := fs.String("name", "", "indexer name")
	url := fs.String("url", "", "indexer url")
	apiKey := fs.String("api-key", "", "indexer api key")
	seedRatio := fs.String("seed-ratio", "", "seed ratio")
	priority := fs.Int("priority", 0, "priority")
	clearTags := fs.Bool("clear-tags", false, "clear all tags")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	opt := newOptionalFlags(fs)
	opt.mark()
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEditIndexer, events.EditIndexerParams{
		IndexerID: id,
		Name:      opt.stringPtr("name", *name),
		URL:       opt.stringPtr("url", *url),
		APIKey:    opt.stringPtr("api-key", *apiKey),
		SeedRatio: opt.stringPtr("seed-ratio", *seedRatio),
		Priority:  opt.intPtr("priority", *priority),
		ClearTags: *clearTags,
	}))
}

func testIndexer(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindTestIndexer, events.TestIndexerParams{ID: id}))
}

func testAllIndexers(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	rt.progress("testing all indexers...")
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindTestAllIndexers))
}

func getTags(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetTags))
}

func addTag(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: add-tag <label>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindAddTag, events.AddTagParams{Label: args[0]}))
}

func getRootFolders(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetRootFolders))
}

func addRootFolder(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: add-root-folder <path>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindAddRootFolder, events.AddRootFolderParams{Path: args[0]}))
}

func deleteRootFolder(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteRootFolder, events.DeleteRootFolderParams{ID: id}))
}

func getQualityProfiles(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetQualityProfiles))
}

func getMetadataProfiles(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetMetadataProfiles))
}

func getTasks(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetTasks))
}

func startTask(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: start-task <name>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindStartTask, events.StartTaskParams{Name: args[0]}))
}

func getQueuedEvents(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetQueuedEvents))
}

func getLogs(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetLogs))
}

func getUpdates(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetUpdates))
}

func getDiskSpace(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetDiskSpace))
}

// manualSearch fetches the release list for a library item (spec §C's
// manual-search flow, backed by KindGetReleases): <resource> <id>.
func manualSearch(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 2 {
		return models.Serdeable{}, newUsageError("usage: manual-search <resource> <id>")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return models.Serdeable{}, newUsageError("invalid id %q: %v", args[1], err)
	}
	rt.progress("searching for releases...")
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindGetReleases, events.GetReleasesParams{ParentID: id}))
}

// downloadRelease grabs a release returned by manual-search.
func downloadRelease(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	fs := newFlagSet("download-release")
	guid := fs.String("guid", "", "release guid")
	indexerID := fs.Int("indexer-id", 0, "indexer id")
	if err := parseFlags(fs, args); err != nil {
		return models.Serdeable{}, err
	}
	if *guid == "" {
		return models.Serdeable{}, newUsageError("--guid is required")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDownloadRelease, events.DownloadReleaseParams{
		GUID: *guid, IndexerID: *indexerID,
	}))
}

// triggerAutomaticSearch maps to each backend's search-command Kind:
// <resource> <id>.
func triggerAutomaticSearch(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 2 {
		return models.Serdeable{}, newUsageError("usage: trigger-automatic-search <resource> <id>")
	}
	id, err := strconv.Atoi(args[1])
	if err != nil {
		return models.Serdeable{}, newUsageError("invalid id %q: %v", args[1], err)
	}
	var kind events.Kind
	switch rt.backend {
	case models.BackendRadarr:
		kind = events.KindMoviesSearch
	case models.BackendSonarr:
		kind = events.KindSeriesSearch
	case models.BackendLidarr:
		kind = events.KindArtistSearch
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, kind, events.IDListParams{IDs: []int{id}}))
}

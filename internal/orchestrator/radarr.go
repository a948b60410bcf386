// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package orchestrator

import (
	"context"
	"fmt"
	"net/http"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/servarr-tui/internal/apperr"
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/httpclient"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/tagmap"
)

// Radarr resolves Radarr backend-events to HTTP calls against a Radarr
// instance.
type Radarr struct {
	client *httpclient.Client
	tags   *tagmap.BiMap
	cb     *gobreaker.CircuitBreaker[models.Serdeable]
}

// NewRadarr builds a Radarr orchestrator sharing the given tag map with the
// rest of the Radarr sub-state.
func NewRadarr(client *httpclient.Client, tags *tagmap.BiMap) *Radarr {
	return &Radarr{client: client, tags: tags, cb: newBreaker("radarr")}
}

// Dispatch resolves one event, circuit-breaker protected.
func (o *Radarr) Dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	return execute("radarr", o.cb, func() (models.Serdeable, error) { return o.dispatch(ctx, ev) })
}

func (o *Radarr) dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	switch ev.Kind {
	case events.KindGetMovies:
		return o.getMovies(ctx)
	case events.KindGetMovieDetails:
		p := ev.Params.(events.DetailParams)
		return o.getMovieDetails(ctx, p.ID)
	case events.KindGetCollections:
		return o.getCollections(ctx)
	case events.KindEditMovie:
		p := ev.Params.(events.EditMovieParams)
		return o.editMovie(ctx, p)
	case events.KindEditCollection:
		p := ev.Params.(events.EditCollectionParams)
		return o.editCollection(ctx, p)
	case events.KindDeleteMovie:
		p := ev.Params.(events.DeleteMovieParams)
		return o.deleteMovie(ctx, p)
	case events.KindSearchNewMovie:
		p := ev.Params.(events.SearchNewMovieParams)
		return o.searchNewMovie(ctx, p.Term)
	case events.KindAddMovie:
		p := ev.Params.(events.AddMovieParams)
		return o.addMovie(ctx, p)
	case events.KindRefreshMovie:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "RefreshMovie", map[string]any{"movieIds": p.IDs})
	case events.KindMoviesSearch:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "MoviesSearch", map[string]any{"movieIds": p.IDs})
	case events.KindRefreshMonitoredDownloads:
		return o.command(ctx, "RefreshMonitoredDownloads", nil)
	case events.KindGetReleases:
		p := ev.Params.(events.GetReleasesParams)
		return o.getReleases(ctx, p.ParentID)
	case events.KindDownloadRelease:
		p := ev.Params.(events.DownloadReleaseParams)
		return o.downloadRelease(ctx, p)
	case events.KindGetDownloads:
		return o.getDownloads(ctx)
	case events.KindDeleteDownload:
		p := ev.Params.(events.DeleteDownloadParams)
		return o.deleteDownload(ctx, p.ID)
	case events.KindGetBlocklist:
		return o.getBlocklist(ctx)
	case events.KindClearBlocklist:
		return o.clearBlocklist(ctx)
	case events.KindGetHistory:
		return o.getHistory(ctx)
	case events.KindGetIndexers:
		return o.getIndexers(ctx)
	case events.KindEditIndexer:
		p := ev.Params.(events.EditIndexerParams)
		return o.editIndexer(ctx, p)
	case events.KindDeleteIndexer:
		p := ev.Params.(events.DeleteIndexerParams)
		return o.deleteIndexer(ctx, p.ID)
	case events.KindTestIndexer:
		p := ev.Params.(events.TestIndexerParams)
		return o.testIndexer(ctx, p.ID)
	case events.KindTestAllIndexers:
		return o.testAllIndexers(ctx)
	case events.KindGetTags:
		return o.getTags(ctx)
	case events.KindAddTag:
		p := ev.Params.(events.AddTagParams)
		return o.addTag(ctx, p.Label)
	case events.KindGetRootFolders:
		return o.getRootFolders(ctx)
	case events.KindAddRootFolder:
		p := ev.Params.(events.AddRootFolderParams)
		return o.addRootFolder(ctx, p.Path)
	case events.KindDeleteRootFolder:
		p := ev.Params.(events.DeleteRootFolderParams)
		return o.deleteRootFolder(ctx, p.ID)
	case events.KindGetQualityProfiles:
		return o.getQualityProfiles(ctx)
	case events.KindGetTasks:
		return o.getTasks(ctx)
	case events.KindGetQueuedEvents:
		return o.getQueuedEvents(ctx)
	case events.KindGetLogs:
		return o.getLogs(ctx)
	case events.KindGetUpdates:
		return o.getUpdates(ctx)
	case events.KindGetDiskSpace:
		return o.getDiskSpace(ctx)
	case events.KindGetStatus:
		return o.getStatus(ctx)
	case events.KindStartTask:
		p := ev.Params.(events.StartTaskParams)
		return o.command(ctx, p.Name, nil)
	default:
		return models.Serdeable{}, apperr.NewLogicError("radarr: unsupported event kind %q", ev.Kind)
	}
}

func radarrResult(r models.RadarrResult) models.Serdeable {
	return models.Serdeable{Kind: "radarr", Radarr: &r}
}

// --- Archetype A: pure fetch ---

func (o *Radarr) getMovies(ctx context.Context) (models.Serdeable, error) {
	var movies []models.Movie
	if err := o.client.Do(ctx, http.MethodGet, "/movie", nil, nil, &movies); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Movies: movies}), nil
}

func (o *Radarr) getMovieDetails(ctx context.Context, id int) (models.Serdeable, error) {
	var movie models.Movie
	if err := o.client.Do(ctx, http.MethodGet, fmt.Sprintf("/movie/%d", id), nil, nil, &movie); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Movie: &movie}), nil
}

func (o *Radarr) getCollections(ctx context.Context) (models.Serdeable, error) {
	var collections []models.Collection
	if err := o.client.Do(ctx, http.MethodGet, "/collection", nil, nil, &collections); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Collections: collections}), nil
}

func (o *Radarr) getReleases(ctx context.Context, movieID int) (models.Serdeable, error) {
	var releases []models.Release
	query := map[string]string{"movieId": fmt.Sprintf("%d", movieID)}
	if err := o.client.Do(ctx, http.MethodGet, "/release", query, nil, &releases); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Releases: releases}), nil
}

func (o *Radarr) getDownloads(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.QueueItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/queue", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Downloads: page.Records}), nil
}

func (o *Radarr) getBlocklist(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.BlocklistItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/blocklist", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Blocklist: page.Records}), nil
}

func (o *Radarr) getHistory(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.HistoryRecord `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/history", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{History: page.Records}), nil
}

func (o *Radarr) getIndexers(ctx context.Context) (models.Serdeable, error) {
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Indexers: indexers}), nil
}

func (o *Radarr) getTags(ctx context.Context) (models.Serdeable, error) {
	var tags []models.Tag
	if err := o.client.Do(ctx, http.MethodGet, "/tag", nil, nil, &tags); err != nil {
		return models.Serdeable{}, err
	}
	pairs := make(map[int]string, len(tags))
	for _, t := range tags {
		pairs[t.ID] = t.Label
	}
	o.tags.Replace(pairs)
	return radarrResult(models.RadarrResult{Tags: tags}), nil
}

func (o *Radarr) getRootFolders(ctx context.Context) (models.Serdeable, error) {
	var folders []models.RootFolder
	if err := o.client.Do(ctx, http.MethodGet, "/rootfolder", nil, nil, &folders); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{RootFolders: folders}), nil
}

func (o *Radarr) getQualityProfiles(ctx context.Context) (models.Serdeable, error) {
	var profiles []models.QualityProfile
	if err := o.client.Do(ctx, http.MethodGet, "/qualityprofile", nil, nil, &profiles); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{QualityProfiles: profiles}), nil
}

func (o *Radarr) getTasks(ctx context.Context) (models.Serdeable, error) {
	var tasks []models.Task
	if err := o.client.Do(ctx, http.MethodGet, "/system/task", nil, nil, &tasks); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Tasks: tasks}), nil
}

func (o *Radarr) getQueuedEvents(ctx context.Context) (models.Serdeable, error) {
	var cmds []models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodGet, "/command", nil, nil, &cmds); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{QueuedEvents: cmds}), nil
}

func (o *Radarr) getLogs(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.LogEntry `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/log", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Logs: page.Records}), nil
}

func (o *Radarr) getUpdates(ctx context.Context) (models.Serdeable, error) {
	var updates []models.Update
	if err := o.client.Do(ctx, http.MethodGet, "/update", nil, nil, &updates); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Updates: updates}), nil
}

func (o *Radarr) getDiskSpace(ctx context.Context) (models.Serdeable, error) {
	var disks []models.DiskSpace
	if err := o.client.Do(ctx, http.MethodGet, "/diskspace", nil, nil, &disks); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{DiskSpace: disks}), nil
}

func (o *Radarr) getStatus(ctx context.Context) (models.Serdeable, error) {
	var status models.SystemStatus
	if err := o.client.Do(ctx, http.MethodGet, "/system/status", nil, nil, &status); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Status: &status}), nil
}

// --- Archetype B: fetch-modify-put ---

func (o *Radarr) editMovie(ctx context.Context, p events.EditMovieParams) (models.Serdeable, error) {
	path := fmt.Sprintf("/movie/%d", p.ID)
	raw, err := o.client.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	if p.Monitored != nil {
		raw["monitored"] = *p.Monitored
	}
	if p.MinimumAvailability != nil {
		raw["minimumAvailability"] = *p.MinimumAvailability
	}
	if p.QualityProfileID != nil {
		raw["qualityProfileId"] = *p.QualityProfileID
	}
	if p.Path != nil {
		raw["path"] = *p.Path
	}
	if p.ClearTags {
		raw["tags"] = []int{}
	} else if p.TagInput != "" {
		ids, err := o.resolveTagLabels(ctx, p.TagInput)
		if err != nil {
			return models.Serdeable{}, err
		}
		raw["tags"] = ids
	}
	if err := o.client.PutRaw(ctx, path, nil, raw); err != nil {
		return models.Serdeable{}, err
	}
	return o.getMovieDetails(ctx, p.ID)
}

func (o *Radarr) editCollection(ctx context.Context, p events.EditCollectionParams) (models.Serdeable, error) {
	path := fmt.Sprintf("/collection/%d", p.ID)
	raw, err := o.client.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	if p.Monitored != nil {
		raw["monitored"] = *p.Monitored
	}
	if p.MinimumAvailability != nil {
		raw["minimumAvailability"] = *p.MinimumAvailability
	}
	if p.QualityProfileID != nil {
		raw["qualityProfileId"] = *p.QualityProfileID
	}
	if p.RootFolderPath != nil {
		raw["rootFolderPath"] = *p.RootFolderPath
	}
	if p.SearchOnAdd != nil {
		raw["searchOnAdd"] = *p.SearchOnAdd
	}
	if err := o.client.PutRaw(ctx, path, nil, raw); err != nil {
		return models.Serdeable{}, err
	}
	var collection models.Collection
	if err := o.client.Do(ctx, http.MethodGet, path, nil, nil, &collection); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Collection: &collection}), nil
}

func (o *Radarr) editIndexer(ctx context.Context, p events.EditIndexerParams) (models.Serdeable, error) {
	path := fmt.Sprintf("/indexer/%d", p.IndexerID)
	raw, err := o.client.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	if p.Name != nil {
		raw["name"] = *p.Name
	}
	if p.Priority != nil {
		raw["priority"] = *p.Priority
	}
	if p.ClearTags {
		raw["tags"] = []int{}
	} else if len(p.Tags) > 0 {
		raw["tags"] = p.Tags
	}
	if fields, ok := raw["fields"].([]any); ok {
		for _, f := range fields {
			field, ok := f.(map[string]any)
			if !ok {
				continue
			}
			switch field["name"] {
			case "baseUrl":
				if p.URL != nil {
					field["value"] = *p.URL
				}
			case "apiKey":
				if p.APIKey != nil {
					field["value"] = *p.APIKey
				}
			case "seedCriteria.seedRatio":
				if p.SeedRatio != nil {
					field["value"] = *p.SeedRatio
				}
			}
		}
	}
	if err := o.client.PutRaw(ctx, path, nil, raw); err != nil {
		return models.Serdeable{}, err
	}
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Indexers: indexers}), nil
}

// --- Delete ---

func (o *Radarr) deleteMovie(ctx context.Context, p events.DeleteMovieParams) (models.Serdeable, error) {
	query := map[string]string{
		"deleteFiles":      boolStr(p.DeleteFiles),
		"addImportExclusion": boolStr(p.AddListExclusion),
	}
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/movie/%d", p.ID), query, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Radarr) deleteDownload(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/queue/%d", id), map[string]string{"removeFromClient": "true"}, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Radarr) deleteIndexer(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/indexer/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Radarr) deleteRootFolder(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/rootfolder/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Radarr) clearBlocklist(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.BlocklistItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/blocklist", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	ids := make([]int, len(page.Records))
	for i, r := range page.Records {
		ids[i] = r.ID
	}
	if err := o.client.Do(ctx, http.MethodDelete, "/blocklist/bulk", nil, map[string]any{"ids": ids}, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

// --- Add ---

func (o *Radarr) searchNewMovie(ctx context.Context, term string) (models.Serdeable, error) {
	var movies []models.Movie
	if err := o.client.Do(ctx, http.MethodGet, "/movie/lookup", map[string]string{"term": term}, nil, &movies); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Movies: movies}), nil
}

func (o *Radarr) addMovie(ctx context.Context, p events.AddMovieParams) (models.Serdeable, error) {
	tagIDs, err := o.resolveTagLabels(ctx, p.TagInput)
	if err != nil {
		return models.Serdeable{}, err
	}
	payload := map[string]any{
		"tmdbId":              p.TMDBID,
		"title":               p.Title,
		"monitored":           p.Monitored,
		"minimumAvailability": p.MinimumAvailability,
		"qualityProfileId":    p.QualityProfileID,
		"rootFolderPath":      p.RootFolderPath,
		"tags":                tagIDs,
		"addOptions":          map[string]any{"searchForMovie": p.SearchOnAdd},
	}
	var movie models.Movie
	if err := o.client.Do(ctx, http.MethodPost, "/movie", nil, payload, &movie); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{Movie: &movie}), nil
}

func (o *Radarr) addRootFolder(ctx context.Context, path string) (models.Serdeable, error) {
	var folder models.RootFolder
	if err := o.client.Do(ctx, http.MethodPost, "/rootfolder", nil, map[string]any{"path": path}, &folder); err != nil {
		return models.Serdeable{}, err
	}
	return o.getRootFolders(ctx)
}

func (o *Radarr) addTag(ctx context.Context, label string) (models.Serdeable, error) {
	var tag models.Tag
	if err := o.client.Do(ctx, http.MethodPost, "/tag", nil, map[string]any{"label": label}, &tag); err != nil {
		return models.Serdeable{}, err
	}
	o.tags.Insert(tag.ID, tag.Label)
	return radarrResult(models.RadarrResult{Tags: []models.Tag{tag}}), nil
}

// --- Archetype C: command-post ---

func (o *Radarr) command(ctx context.Context, name string, params map[string]any) (models.Serdeable, error) {
	body := map[string]any{"name": name}
	for k, v := range params {
		body[k] = v
	}
	var queued models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodPost, "/command", nil, body, &queued); err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{QueuedEvents: []models.QueuedEvent{queued}}), nil
}

func (o *Radarr) downloadRelease(ctx context.Context, p events.DownloadReleaseParams) (models.Serdeable, error) {
	body := map[string]any{"guid": p.GUID, "indexerId": p.IndexerID}
	if err := o.client.Do(ctx, http.MethodPost, "/release", nil, body, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Radarr) testIndexer(ctx context.Context, id int) (models.Serdeable, error) {
	detail, err := o.client.DoRaw(ctx, http.MethodGet, fmt.Sprintf("/indexer/%d", id), nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	body, err := o.client.PostIgnoreStatus(ctx, "/indexer/test", detail)
	if err != nil {
		return models.Serdeable{}, err
	}
	errs := indexerTestErrors(body)
	res := models.IndexerTestResult{IndexerID: id, Passed: len(errs) == 0, Errors: errs}
	return radarrResult(models.RadarrResult{IndexerTestResults: []models.IndexerTestResult{res}}), nil
}

func (o *Radarr) testAllIndexers(ctx context.Context) (models.Serdeable, error) {
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	names := make(map[int]string, len(indexers))
	for _, idx := range indexers {
		names[idx.ID] = idx.Name
	}
	body, err := o.client.PostIgnoreStatus(ctx, "/indexer/testall", nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	return radarrResult(models.RadarrResult{IndexerTestResults: indexerTestAllResults(body, names)}), nil
}

// resolveTagLabels maps comma-separated labels to ids, creating any unknown
// label via AddTag first (spec §4.3 tag-resolution side loop).
func (o *Radarr) resolveTagLabels(ctx context.Context, input string) ([]int, error) {
	labels := splitTagLabels(input)
	ids := make([]int, 0, len(labels))
	for _, label := range labels {
		if id, ok := o.tags.GetByRight(label); ok {
			ids = append(ids, id)
			continue
		}
		result, err := o.addTag(ctx, label)
		if err != nil {
			return nil, err
		}
		ids = append(ids, result.Radarr.Tags[0].ID)
	}
	return ids, nil
}

func boolStr(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

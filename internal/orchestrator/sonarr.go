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

// Sonarr resolves Sonarr backend-events to HTTP calls against a Sonarr
// instance. The indexer edit PUT always carries ?forceSave=true (spec §4.3
// archetype B note); the series edit PUT does not.
type Sonarr struct {
	client *httpclient.Client
	tags   *tagmap.BiMap
	cb     *gobreaker.CircuitBreaker[models.Serdeable]
}

func NewSonarr(client *httpclient.Client, tags *tagmap.BiMap) *Sonarr {
	return &Sonarr{client: client, tags: tags, cb: newBreaker("sonarr")}
}

func (o *Sonarr) Dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	return execute("sonarr", o.cb, func() (models.Serdeable, error) { return o.dispatch(ctx, ev) })
}

func (o *Sonarr) dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	switch ev.Kind {
	case events.KindGetSeries:
		return o.getSeries(ctx)
	case events.KindGetSeriesDetails:
		p := ev.Params.(events.DetailParams)
		return o.getSeriesDetails(ctx, p.ID)
	case events.KindEditSeries:
		p := ev.Params.(events.EditSeriesParams)
		return o.editSeries(ctx, p)
	case events.KindDeleteSeries:
		p := ev.Params.(events.DeleteSeriesParams)
		return o.deleteSeries(ctx, p)
	case events.KindSearchNewSeries:
		p := ev.Params.(events.SearchNewSeriesParams)
		return o.searchNewSeries(ctx, p.Term)
	case events.KindAddSeries:
		p := ev.Params.(events.AddSeriesParams)
		return o.addSeries(ctx, p)
	case events.KindRefreshSeries:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "RefreshSeries", map[string]any{"seriesIds": p.IDs})
	case events.KindSeriesSearch:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "SeriesSearch", map[string]any{"seriesIds": p.IDs})
	case events.KindEpisodeSearch:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "EpisodeSearch", map[string]any{"episodeIds": p.IDs})
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
		return models.Serdeable{}, apperr.NewLogicError("sonarr: unsupported event kind %q", ev.Kind)
	}
}

func sonarrResult(r models.SonarrResult) models.Serdeable {
	return models.Serdeable{Kind: "sonarr", Sonarr: &r}
}

func (o *Sonarr) getSeries(ctx context.Context) (models.Serdeable, error) {
	var series []models.Series
	if err := o.client.Do(ctx, http.MethodGet, "/series", nil, nil, &series); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Series: series}), nil
}

func (o *Sonarr) getSeriesDetails(ctx context.Context, id int) (models.Serdeable, error) {
	var series models.Series
	if err := o.client.Do(ctx, http.MethodGet, fmt.Sprintf("/series/%d", id), nil, nil, &series); err != nil {
		return models.Serdeable{}, err
	}
	var episodes []models.Episode
	if err := o.client.Do(ctx, http.MethodGet, "/episode", map[string]string{"seriesId": fmt.Sprintf("%d", id)}, nil, &episodes); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{OneSeries: &series, Episodes: episodes}), nil
}

func (o *Sonarr) getReleases(ctx context.Context, episodeID int) (models.Serdeable, error) {
	var releases []models.EpisodeRelease
	query := map[string]string{"episodeId": fmt.Sprintf("%d", episodeID)}
	if err := o.client.Do(ctx, http.MethodGet, "/release", query, nil, &releases); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Releases: releases}), nil
}

func (o *Sonarr) getDownloads(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.QueueItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/queue", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Downloads: page.Records}), nil
}

func (o *Sonarr) getBlocklist(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.BlocklistItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/blocklist", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Blocklist: page.Records}), nil
}

func (o *Sonarr) getHistory(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.HistoryRecord `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/history", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{History: page.Records}), nil
}

func (o *Sonarr) getIndexers(ctx context.Context) (models.Serdeable, error) {
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Indexers: indexers}), nil
}

func (o *Sonarr) getTags(ctx context.Context) (models.Serdeable, error) {
	var tags []models.Tag
	if err := o.client.Do(ctx, http.MethodGet, "/tag", nil, nil, &tags); err != nil {
		return models.Serdeable{}, err
	}
	pairs := make(map[int]string, len(tags))
	for _, t := range tags {
		pairs[t.ID] = t.Label
	}
	o.tags.Replace(pairs)
	return sonarrResult(models.SonarrResult{Tags: tags}), nil
}

func (o *Sonarr) getRootFolders(ctx context.Context) (models.Serdeable, error) {
	var folders []models.RootFolder
	if err := o.client.Do(ctx, http.MethodGet, "/rootfolder", nil, nil, &folders); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{RootFolders: folders}), nil
}

func (o *Sonarr) getQualityProfiles(ctx context.Context) (models.Serdeable, error) {
	var profiles []models.QualityProfile
	if err := o.client.Do(ctx, http.MethodGet, "/qualityprofile", nil, nil, &profiles); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{QualityProfiles: profiles}), nil
}

func (o *Sonarr) getTasks(ctx context.Context) (models.Serdeable, error) {
	var tasks []models.Task
	if err := o.client.Do(ctx, http.MethodGet, "/system/task", nil, nil, &tasks); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Tasks: tasks}), nil
}

func (o *Sonarr) getQueuedEvents(ctx context.Context) (models.Serdeable, error) {
	var cmds []models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodGet, "/command", nil, nil, &cmds); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{QueuedEvents: cmds}), nil
}

func (o *Sonarr) getLogs(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.LogEntry `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/log", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Logs: page.Records}), nil
}

func (o *Sonarr) getUpdates(ctx context.Context) (models.Serdeable, error) {
	var updates []models.Update
	if err := o.client.Do(ctx, http.MethodGet, "/update", nil, nil, &updates); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Updates: updates}), nil
}

func (o *Sonarr) getDiskSpace(ctx context.Context) (models.Serdeable, error) {
	var disks []models.DiskSpace
	if err := o.client.Do(ctx, http.MethodGet, "/diskspace", nil, nil, &disks); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{DiskSpace: disks}), nil
}

func (o *Sonarr) getStatus(ctx context.Context) (models.Serdeable, error) {
	var status models.SystemStatus
	if err := o.client.Do(ctx, http.MethodGet, "/system/status", nil, nil, &status); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Status: &status}), nil
}

func (o *Sonarr) editSeries(ctx context.Context, p events.EditSeriesParams) (models.Serdeable, error) {
	path := fmt.Sprintf("/series/%d", p.ID)
	raw, err := o.client.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	if p.Monitored != nil {
		raw["monitored"] = *p.Monitored
	}
	if p.SeriesType != nil {
		raw["seriesType"] = *p.SeriesType
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
	return o.getSeriesDetails(ctx, p.ID)
}

func (o *Sonarr) editIndexer(ctx context.Context, p events.EditIndexerParams) (models.Serdeable, error) {
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
	// Sonarr's indexer PUT silently ignores edits unless forceSave is set.
	if err := o.client.PutRaw(ctx, path, map[string]string{"forceSave": "true"}, raw); err != nil {
		return models.Serdeable{}, err
	}
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Indexers: indexers}), nil
}

func (o *Sonarr) deleteSeries(ctx context.Context, p events.DeleteSeriesParams) (models.Serdeable, error) {
	query := map[string]string{
		"deleteFiles":        boolStr(p.DeleteFiles),
		"addImportListExclusion": boolStr(p.AddListExclusion),
	}
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/series/%d", p.ID), query, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Sonarr) deleteDownload(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/queue/%d", id), map[string]string{"removeFromClient": "true"}, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Sonarr) deleteIndexer(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/indexer/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Sonarr) deleteRootFolder(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/rootfolder/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Sonarr) clearBlocklist(ctx context.Context) (models.Serdeable, error) {
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

func (o *Sonarr) searchNewSeries(ctx context.Context, term string) (models.Serdeable, error) {
	var series []models.Series
	if err := o.client.Do(ctx, http.MethodGet, "/series/lookup", map[string]string{"term": term}, nil, &series); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{Series: series}), nil
}

func (o *Sonarr) addSeries(ctx context.Context, p events.AddSeriesParams) (models.Serdeable, error) {
	tagIDs, err := o.resolveTagLabels(ctx, p.TagInput)
	if err != nil {
		return models.Serdeable{}, err
	}
	payload := map[string]any{
		"tvdbId":           p.TVDBID,
		"title":            p.Title,
		"monitored":        p.Monitored,
		"seriesType":       p.SeriesType,
		"qualityProfileId": p.QualityProfileID,
		"rootFolderPath":   p.RootFolderPath,
		"tags":             tagIDs,
		"addOptions":       map[string]any{"searchForMissingEpisodes": p.SearchOnAdd},
	}
	var series models.Series
	if err := o.client.Do(ctx, http.MethodPost, "/series", nil, payload, &series); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{OneSeries: &series}), nil
}

func (o *Sonarr) addRootFolder(ctx context.Context, path string) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodPost, "/rootfolder", nil, map[string]any{"path": path}, nil); err != nil {
		return models.Serdeable{}, err
	}
	return o.getRootFolders(ctx)
}

func (o *Sonarr) addTag(ctx context.Context, label string) (models.Serdeable, error) {
	var tag models.Tag
	if err := o.client.Do(ctx, http.MethodPost, "/tag", nil, map[string]any{"label": label}, &tag); err != nil {
		return models.Serdeable{}, err
	}
	o.tags.Insert(tag.ID, tag.Label)
	return sonarrResult(models.SonarrResult{Tags: []models.Tag{tag}}), nil
}

func (o *Sonarr) command(ctx context.Context, name string, params map[string]any) (models.Serdeable, error) {
	body := map[string]any{"name": name}
	for k, v := range params {
		body[k] = v
	}
	var queued models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodPost, "/command", nil, body, &queued); err != nil {
		return models.Serdeable{}, err
	}
	return sonarrResult(models.SonarrResult{QueuedEvents: []models.QueuedEvent{queued}}), nil
}

func (o *Sonarr) downloadRelease(ctx context.Context, p events.DownloadReleaseParams) (models.Serdeable, error) {
	body := map[string]any{"guid": p.GUID, "indexerId": p.IndexerID}
	if err := o.client.Do(ctx, http.MethodPost, "/release", nil, body, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Sonarr) testIndexer(ctx context.Context, id int) (models.Serdeable, error) {
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
	return sonarrResult(models.SonarrResult{IndexerTestResults: []models.IndexerTestResult{res}}), nil
}

func (o *Sonarr) testAllIndexers(ctx context.Context) (models.Serdeable, error) {
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
	return sonarrResult(models.SonarrResult{IndexerTestResults: indexerTestAllResults(body, names)}), nil
}

func (o *Sonarr) resolveTagLabels(ctx context.Context, input string) ([]int, error) {
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
		ids = append(ids, result.Sonarr.Tags[0].ID)
	}
	return ids, nil
}

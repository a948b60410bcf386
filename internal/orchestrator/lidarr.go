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

// Lidarr resolves Lidarr backend-events to HTTP calls against a Lidarr
// instance (API v1, not v3 — spec §6).
type Lidarr struct {
	client *httpclient.Client
	tags   *tagmap.BiMap
	cb     *gobreaker.CircuitBreaker[models.Serdeable]
}

func NewLidarr(client *httpclient.Client, tags *tagmap.BiMap) *Lidarr {
	return &Lidarr{client: client, tags: tags, cb: newBreaker("lidarr")}
}

func (o *Lidarr) Dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	return execute("lidarr", o.cb, func() (models.Serdeable, error) { return o.dispatch(ctx, ev) })
}

func (o *Lidarr) dispatch(ctx context.Context, ev events.Event) (models.Serdeable, error) {
	switch ev.Kind {
	case events.KindGetArtists:
		return o.getArtists(ctx)
	case events.KindGetArtistDetails:
		p := ev.Params.(events.DetailParams)
		return o.getArtistDetails(ctx, p.ID)
	case events.KindEditArtist:
		p := ev.Params.(events.EditArtistParams)
		return o.editArtist(ctx, p)
	case events.KindDeleteAlbum:
		p := ev.Params.(events.DeleteAlbumParams)
		return o.deleteAlbum(ctx, p)
	case events.KindDeleteArtist:
		p := ev.Params.(events.DeleteArtistParams)
		return o.deleteArtist(ctx, p)
	case events.KindSearchNewArtist:
		p := ev.Params.(events.SearchNewArtistParams)
		return o.searchNewArtist(ctx, p.Term)
	case events.KindAddArtist:
		p := ev.Params.(events.AddArtistParams)
		return o.addArtist(ctx, p)
	case events.KindRefreshArtist:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "RefreshArtist", map[string]any{"artistIds": p.IDs})
	case events.KindArtistSearch:
		p := ev.Params.(events.IDListParams)
		return o.command(ctx, "ArtistSearch", map[string]any{"artistIds": p.IDs})
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
	case events.KindGetMetadataProfiles:
		return o.getMetadataProfiles(ctx)
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
		return models.Serdeable{}, apperr.NewLogicError("lidarr: unsupported event kind %q", ev.Kind)
	}
}

func lidarrResult(r models.LidarrResult) models.Serdeable {
	return models.Serdeable{Kind: "lidarr", Lidarr: &r}
}

func (o *Lidarr) getArtists(ctx context.Context) (models.Serdeable, error) {
	var artists []models.Artist
	if err := o.client.Do(ctx, http.MethodGet, "/artist", nil, nil, &artists); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Artists: artists}), nil
}

func (o *Lidarr) getArtistDetails(ctx context.Context, id int) (models.Serdeable, error) {
	var artist models.Artist
	if err := o.client.Do(ctx, http.MethodGet, fmt.Sprintf("/artist/%d", id), nil, nil, &artist); err != nil {
		return models.Serdeable{}, err
	}
	var albums []models.Album
	if err := o.client.Do(ctx, http.MethodGet, "/album", map[string]string{"artistId": fmt.Sprintf("%d", id)}, nil, &albums); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{OneArtist: &artist, Albums: albums}), nil
}

// getReleases fetches album releases and drops discography-level entries,
// which are not a single release a user can download (spec §4.3's Lidarr
// release-filtering rule, grounded in SPEC_FULL.md §C).
func (o *Lidarr) getReleases(ctx context.Context, albumID int) (models.Serdeable, error) {
	var releases []models.AlbumRelease
	query := map[string]string{"albumId": fmt.Sprintf("%d", albumID)}
	if err := o.client.Do(ctx, http.MethodGet, "/release", query, nil, &releases); err != nil {
		return models.Serdeable{}, err
	}
	filtered := make([]models.AlbumRelease, 0, len(releases))
	for _, r := range releases {
		if r.Discography {
			continue
		}
		filtered = append(filtered, r)
	}
	return lidarrResult(models.LidarrResult{AlbumReleases: filtered}), nil
}

func (o *Lidarr) getDownloads(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.QueueItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/queue", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Downloads: page.Records}), nil
}

func (o *Lidarr) getBlocklist(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.BlocklistItem `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/blocklist", nil, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Blocklist: page.Records}), nil
}

func (o *Lidarr) getHistory(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.HistoryRecord `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/history", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{History: page.Records}), nil
}

func (o *Lidarr) getIndexers(ctx context.Context) (models.Serdeable, error) {
	var indexers []models.Indexer
	if err := o.client.Do(ctx, http.MethodGet, "/indexer", nil, nil, &indexers); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Indexers: indexers}), nil
}

func (o *Lidarr) getTags(ctx context.Context) (models.Serdeable, error) {
	var tags []models.Tag
	if err := o.client.Do(ctx, http.MethodGet, "/tag", nil, nil, &tags); err != nil {
		return models.Serdeable{}, err
	}
	pairs := make(map[int]string, len(tags))
	for _, t := range tags {
		pairs[t.ID] = t.Label
	}
	o.tags.Replace(pairs)
	return lidarrResult(models.LidarrResult{Tags: tags}), nil
}

func (o *Lidarr) getRootFolders(ctx context.Context) (models.Serdeable, error) {
	var folders []models.RootFolder
	if err := o.client.Do(ctx, http.MethodGet, "/rootfolder", nil, nil, &folders); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{RootFolders: folders}), nil
}

func (o *Lidarr) getQualityProfiles(ctx context.Context) (models.Serdeable, error) {
	var profiles []models.QualityProfile
	if err := o.client.Do(ctx, http.MethodGet, "/qualityprofile", nil, nil, &profiles); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{QualityProfiles: profiles}), nil
}

func (o *Lidarr) getMetadataProfiles(ctx context.Context) (models.Serdeable, error) {
	var profiles []models.MetadataProfile
	if err := o.client.Do(ctx, http.MethodGet, "/metadataprofile", nil, nil, &profiles); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{MetadataProfiles: profiles}), nil
}

func (o *Lidarr) getTasks(ctx context.Context) (models.Serdeable, error) {
	var tasks []models.Task
	if err := o.client.Do(ctx, http.MethodGet, "/system/task", nil, nil, &tasks); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Tasks: tasks}), nil
}

func (o *Lidarr) getQueuedEvents(ctx context.Context) (models.Serdeable, error) {
	var cmds []models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodGet, "/command", nil, nil, &cmds); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{QueuedEvents: cmds}), nil
}

func (o *Lidarr) getLogs(ctx context.Context) (models.Serdeable, error) {
	var page struct {
		Records []models.LogEntry `json:"records"`
	}
	if err := o.client.Do(ctx, http.MethodGet, "/log", map[string]string{"pageSize": "500"}, nil, &page); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Logs: page.Records}), nil
}

func (o *Lidarr) getUpdates(ctx context.Context) (models.Serdeable, error) {
	var updates []models.Update
	if err := o.client.Do(ctx, http.MethodGet, "/update", nil, nil, &updates); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Updates: updates}), nil
}

func (o *Lidarr) getDiskSpace(ctx context.Context) (models.Serdeable, error) {
	var disks []models.DiskSpace
	if err := o.client.Do(ctx, http.MethodGet, "/diskspace", nil, nil, &disks); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{DiskSpace: disks}), nil
}

func (o *Lidarr) getStatus(ctx context.Context) (models.Serdeable, error) {
	var status models.SystemStatus
	if err := o.client.Do(ctx, http.MethodGet, "/system/status", nil, nil, &status); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Status: &status}), nil
}

func (o *Lidarr) editArtist(ctx context.Context, p events.EditArtistParams) (models.Serdeable, error) {
	path := fmt.Sprintf("/artist/%d", p.ID)
	raw, err := o.client.DoRaw(ctx, http.MethodGet, path, nil)
	if err != nil {
		return models.Serdeable{}, err
	}
	if p.Monitored != nil {
		raw["monitored"] = *p.Monitored
	}
	if p.QualityProfileID != nil {
		raw["qualityProfileId"] = *p.QualityProfileID
	}
	if p.MetadataProfileID != nil {
		raw["metadataProfileId"] = *p.MetadataProfileID
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
	return o.getArtistDetails(ctx, p.ID)
}

func (o *Lidarr) editIndexer(ctx context.Context, p events.EditIndexerParams) (models.Serdeable, error) {
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
	return lidarrResult(models.LidarrResult{Indexers: indexers}), nil
}

func (o *Lidarr) deleteAlbum(ctx context.Context, p events.DeleteAlbumParams) (models.Serdeable, error) {
	query := map[string]string{"deleteFiles": boolStr(p.DeleteFiles)}
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/album/%d", p.ID), query, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) deleteArtist(ctx context.Context, p events.DeleteArtistParams) (models.Serdeable, error) {
	query := map[string]string{
		"deleteFiles":            boolStr(p.DeleteFiles),
		"addImportListExclusion": boolStr(p.AddListExclusion),
	}
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/artist/%d", p.ID), query, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) deleteDownload(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/queue/%d", id), map[string]string{"removeFromClient": "true"}, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) deleteIndexer(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/indexer/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) deleteRootFolder(ctx context.Context, id int) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodDelete, fmt.Sprintf("/rootfolder/%d", id), nil, nil, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) clearBlocklist(ctx context.Context) (models.Serdeable, error) {
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

func (o *Lidarr) searchNewArtist(ctx context.Context, term string) (models.Serdeable, error) {
	var artists []models.Artist
	if err := o.client.Do(ctx, http.MethodGet, "/artist/lookup", map[string]string{"term": term}, nil, &artists); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{Artists: artists}), nil
}

func (o *Lidarr) addArtist(ctx context.Context, p events.AddArtistParams) (models.Serdeable, error) {
	tagIDs, err := o.resolveTagLabels(ctx, p.TagInput)
	if err != nil {
		return models.Serdeable{}, err
	}
	payload := map[string]any{
		"foreignArtistId":   p.ForeignArtistID,
		"artistName":        p.ArtistName,
		"monitored":         p.Monitored,
		"qualityProfileId":  p.QualityProfileID,
		"metadataProfileId": p.MetadataProfileID,
		"rootFolderPath":    p.RootFolderPath,
		"tags":              tagIDs,
		"addOptions":        map[string]any{"searchForMissingAlbums": p.SearchOnAdd},
	}
	var artist models.Artist
	if err := o.client.Do(ctx, http.MethodPost, "/artist", nil, payload, &artist); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{OneArtist: &artist}), nil
}

func (o *Lidarr) addRootFolder(ctx context.Context, path string) (models.Serdeable, error) {
	if err := o.client.Do(ctx, http.MethodPost, "/rootfolder", nil, map[string]any{"path": path}, nil); err != nil {
		return models.Serdeable{}, err
	}
	return o.getRootFolders(ctx)
}

func (o *Lidarr) addTag(ctx context.Context, label string) (models.Serdeable, error) {
	var tag models.Tag
	if err := o.client.Do(ctx, http.MethodPost, "/tag", nil, map[string]any{"label": label}, &tag); err != nil {
		return models.Serdeable{}, err
	}
	o.tags.Insert(tag.ID, tag.Label)
	return lidarrResult(models.LidarrResult{Tags: []models.Tag{tag}}), nil
}

func (o *Lidarr) command(ctx context.Context, name string, params map[string]any) (models.Serdeable, error) {
	body := map[string]any{"name": name}
	for k, v := range params {
		body[k] = v
	}
	var queued models.QueuedEvent
	if err := o.client.Do(ctx, http.MethodPost, "/command", nil, body, &queued); err != nil {
		return models.Serdeable{}, err
	}
	return lidarrResult(models.LidarrResult{QueuedEvents: []models.QueuedEvent{queued}}), nil
}

func (o *Lidarr) downloadRelease(ctx context.Context, p events.DownloadReleaseParams) (models.Serdeable, error) {
	body := map[string]any{"guid": p.GUID, "indexerId": p.IndexerID}
	if err := o.client.Do(ctx, http.MethodPost, "/release", nil, body, nil); err != nil {
		return models.Serdeable{}, err
	}
	return models.Empty(), nil
}

func (o *Lidarr) testIndexer(ctx context.Context, id int) (models.Serdeable, error) {
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
	return lidarrResult(models.LidarrResult{IndexerTestResults: []models.IndexerTestResult{res}}), nil
}

func (o *Lidarr) testAllIndexers(ctx context.Context) (models.Serdeable, error) {
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
	return lidarrResult(models.LidarrResult{IndexerTestResults: indexerTestAllResults(body, names)}), nil
}

func (o *Lidarr) resolveTagLabels(ctx context.Context, input string) ([]int, error) {
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
		ids = append(ids, result.Lidarr.Tags[0].ID)
	}
	return ids, nil
}

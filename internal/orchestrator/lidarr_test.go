// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package orchestrator

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"testing"

	"github.com/goccy/go-json"

	"github.com/tomtom215/servarr-tui/internal/config"
	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/httpclient"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/tagmap"
)

func newTestLidarr(t *testing.T, handler http.Handler) (*Lidarr, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	u, err := url.Parse(srv.URL)
	if err != nil {
		t.Fatalf("parse test server URL: %v", err)
	}
	port, err := strconv.Atoi(u.Port())
	if err != nil {
		t.Fatalf("parse test server port: %v", err)
	}
	cfg := &config.BackendConfig{Host: u.Hostname(), Port: port, APIToken: "test-token"}
	client := httpclient.New("lidarr", cfg, httpclient.V1)
	return NewLidarr(client, tagmap.New()), srv
}

func TestLidarr_GetArtists_FetchArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artist", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 4, "artistName": "Radiohead"}})
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendLidarr, events.KindGetArtists))
	if err != nil {
		t.Fatalf("Dispatch(GetArtists) error: %v", err)
	}
	if result.Lidarr == nil || len(result.Lidarr.Artists) != 1 || result.Lidarr.Artists[0].ArtistName != "Radiohead" {
		t.Fatalf("unexpected result: %+v", result.Lidarr)
	}
}

func TestLidarr_EditArtist_FetchModifyPutRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artist/4", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 4, "artistName": "Radiohead", "monitored": false})
		case http.MethodPut:
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			if body["monitored"] != true {
				t.Fatalf("PUT body did not apply Monitored override: %+v", body)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 4, "artistName": "Radiohead", "monitored": true})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})
	mux.HandleFunc("/api/v1/album", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	})
	o, _ := newTestLidarr(t, mux)

	monitored := true
	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindEditArtist, events.EditArtistParams{
		ID: 4, Monitored: &monitored,
	}))
	if err != nil {
		t.Fatalf("Dispatch(EditArtist) error: %v", err)
	}
	if result.Lidarr == nil || result.Lidarr.OneArtist == nil || !result.Lidarr.OneArtist.Monitored {
		t.Fatalf("edited artist not reflected in result: %+v", result.Lidarr)
	}
}

func TestLidarr_ArtistSearch_CommandPostArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/command", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "ArtistSearch" {
			t.Fatalf("command name = %v, want ArtistSearch", body["name"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "ArtistSearch", "status": "queued"})
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindArtistSearch, events.IDListParams{IDs: []int{4}}))
	if err != nil {
		t.Fatalf("Dispatch(ArtistSearch) error: %v", err)
	}
	if result.Lidarr == nil || len(result.Lidarr.QueuedEvents) != 1 {
		t.Fatalf("expected one queued event, got: %+v", result.Lidarr)
	}
}

func TestLidarr_DeleteAlbum_ReturnsEmptySerdeable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/album/11", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Query().Get("deleteFiles") != "true" {
			t.Fatalf("deleteFiles query param missing or wrong: %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindDeleteAlbum, events.DeleteAlbumParams{
		ID: 11, DeleteFiles: true,
	}))
	if err != nil {
		t.Fatalf("Dispatch(DeleteAlbum) error: %v", err)
	}
	if result.Radarr != nil || result.Sonarr != nil || result.Lidarr != nil {
		t.Fatalf("expected models.Empty(), got: %+v", result)
	}
}

func TestLidarr_DeleteArtist_HitsArtistResourceNotAlbum(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/artist/9", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Query().Get("deleteFiles") != "true" {
			t.Fatalf("deleteFiles query param missing or wrong: %q", r.URL.RawQuery)
		}
		if r.URL.Query().Get("addImportListExclusion") != "true" {
			t.Fatalf("addImportListExclusion query param missing or wrong: %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("/api/v1/album/9", func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("DeleteArtist must not hit the album resource")
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindDeleteArtist, events.DeleteArtistParams{
		ID: 9, DeleteFiles: true, AddListExclusion: true,
	}))
	if err != nil {
		t.Fatalf("Dispatch(DeleteArtist) error: %v", err)
	}
	if result.Radarr != nil || result.Sonarr != nil || result.Lidarr != nil {
		t.Fatalf("expected models.Empty(), got: %+v", result)
	}
}

func TestLidarr_GetReleases_FiltersOutDiscographyEntries(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/release", func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("albumId") != "11" {
			t.Fatalf("albumId query param = %q, want 11", r.URL.Query().Get("albumId"))
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"guid": "a", "discography": false},
			{"guid": "b", "discography": true},
		})
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindGetReleases, events.GetReleasesParams{ParentID: 11}))
	if err != nil {
		t.Fatalf("Dispatch(GetReleases) error: %v", err)
	}
	if result.Lidarr == nil || len(result.Lidarr.AlbumReleases) != 1 || result.Lidarr.AlbumReleases[0].GUID != "a" {
		t.Fatalf("discography release not filtered out: %+v", result.Lidarr)
	}
}

func TestLidarr_AddArtist_ResolvesUnknownTagByCreatingIt(t *testing.T) {
	var sawAddTag bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/tag", func(w http.ResponseWriter, r *http.Request) {
		sawAddTag = true
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 2, "label": "favorites"})
	})
	mux.HandleFunc("/api/v1/artist", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		tags, _ := body["tags"].([]any)
		if len(tags) != 1 || int(tags[0].(float64)) != 2 {
			t.Fatalf("tags in add-artist payload = %v, want [2]", body["tags"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 4, "artistName": "Radiohead"})
	})
	o, _ := newTestLidarr(t, mux)

	_, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindAddArtist, events.AddArtistParams{
		ForeignArtistID: "abc-123", ArtistName: "Radiohead", TagInput: "favorites",
	}))
	if err != nil {
		t.Fatalf("Dispatch(AddArtist) error: %v", err)
	}
	if !sawAddTag {
		t.Fatalf("resolveTagLabels did not create the unknown tag via AddTag")
	}
}

func TestLidarr_TestIndexer_PostsDetailBodyAndParsesArrayErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/indexer/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "Headphones"})
	})
	mux.HandleFunc("/api/v1/indexer/test", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["id"] != float64(3) {
			t.Fatalf("test body = %v, want the GET detail posted verbatim", body)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"errorMessage": "api key invalid"}})
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendLidarr, events.KindTestIndexer, events.TestIndexerParams{ID: 3}))
	if err != nil {
		t.Fatalf("Dispatch(TestIndexer) error: %v", err)
	}
	res := result.Lidarr.IndexerTestResults[0]
	if res.Passed || len(res.Errors) != 1 || res.Errors[0] != "api key invalid" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestLidarr_TestAllIndexers_PostsTestAllAndMergesNames(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v1/indexer", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "Headphones"}})
	})
	mux.HandleFunc("/api/v1/indexer/testall", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "isValid": true, "validationFailures": []any{}}})
	})
	o, _ := newTestLidarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendLidarr, events.KindTestAllIndexers))
	if err != nil {
		t.Fatalf("Dispatch(TestAllIndexers) error: %v", err)
	}
	results := result.Lidarr.IndexerTestResults
	if len(results) != 1 || results[0].Name != "Headphones" || !results[0].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}
}

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

// newTestRadarr points a Radarr orchestrator at an httptest.Server faking the
// Radarr v3 API surface.
func newTestRadarr(t *testing.T, handler http.Handler) (*Radarr, *httptest.Server) {
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
	client := httpclient.New("radarr", cfg, httpclient.V3)
	return NewRadarr(client, tagmap.New()), srv
}

func TestRadarr_GetMovies_FetchArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		if r.Header.Get("X-Api-Key") != "test-token" {
			t.Fatalf("X-Api-Key header missing or wrong: %q", r.Header.Get("X-Api-Key"))
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "title": "Arrival"}})
	})
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendRadarr, events.KindGetMovies))
	if err != nil {
		t.Fatalf("Dispatch(GetMovies) error: %v", err)
	}
	if result.Radarr == nil || len(result.Radarr.Movies) != 1 || result.Radarr.Movies[0].Title != "Arrival" {
		t.Fatalf("unexpected result: %+v", result.Radarr)
	}
}

func TestRadarr_EditMovie_FetchModifyPutRoundTrip(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{
				"id": 7, "title": "Arrival", "monitored": false, "qualityProfileId": 1,
			})
		case http.MethodPut:
			var body map[string]any
			if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
				t.Fatalf("decode PUT body: %v", err)
			}
			if body["title"] != "Arrival" {
				t.Fatalf("PUT body dropped the unmodified title field: %+v", body)
			}
			if body["monitored"] != true {
				t.Fatalf("PUT body did not apply the Monitored override: %+v", body)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "title": "Arrival", "monitored": true})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})
	o, _ := newTestRadarr(t, mux)

	monitored := true
	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindEditMovie, events.EditMovieParams{
		ID: 7, Monitored: &monitored,
	}))
	if err != nil {
		t.Fatalf("Dispatch(EditMovie) error: %v", err)
	}
	if result.Radarr == nil || result.Radarr.Movie == nil || !result.Radarr.Movie.Monitored {
		t.Fatalf("edited movie not reflected in result: %+v", result.Radarr)
	}
}

func TestRadarr_Command_CommandPostArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/command", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "RefreshMovie" {
			t.Fatalf("command name = %v, want RefreshMovie", body["name"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 99, "name": "RefreshMovie", "status": "queued"})
	})
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindRefreshMovie, events.IDListParams{IDs: []int{7}}))
	if err != nil {
		t.Fatalf("Dispatch(RefreshMovie) error: %v", err)
	}
	if result.Radarr == nil || len(result.Radarr.QueuedEvents) != 1 {
		t.Fatalf("expected one queued event, got: %+v", result.Radarr)
	}
}

func TestRadarr_DeleteMovie_ReturnsEmptySerdeable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/movie/7", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s, want DELETE", r.Method)
		}
		if r.URL.Query().Get("deleteFiles") != "true" {
			t.Fatalf("deleteFiles query param missing or wrong: %q", r.URL.RawQuery)
		}
		w.WriteHeader(http.StatusOK)
	})
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindDeleteMovie, events.DeleteMovieParams{
		ID: 7, DeleteFiles: true,
	}))
	if err != nil {
		t.Fatalf("Dispatch(DeleteMovie) error: %v", err)
	}
	if result.Radarr != nil || result.Sonarr != nil || result.Lidarr != nil {
		t.Fatalf("expected models.Empty(), got: %+v", result)
	}
}

func TestRadarr_AddMovie_ResolvesUnknownTagByCreatingIt(t *testing.T) {
	var sawAddTag bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/tag", func(w http.ResponseWriter, r *http.Request) {
		sawAddTag = true
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["label"] != "4k" {
			t.Fatalf("tag label = %v, want 4k", body["label"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 5, "label": "4k"})
	})
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		tags, _ := body["tags"].([]any)
		if len(tags) != 1 || int(tags[0].(float64)) != 5 {
			t.Fatalf("tags in add-movie payload = %v, want [5]", body["tags"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "title": "Arrival"})
	})
	o, _ := newTestRadarr(t, mux)

	_, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindAddMovie, events.AddMovieParams{
		TMDBID: 42, Title: "Arrival", TagInput: "4k",
	}))
	if err != nil {
		t.Fatalf("Dispatch(AddMovie) error: %v", err)
	}
	if !sawAddTag {
		t.Fatalf("resolveTagLabels did not create the unknown tag via AddTag")
	}
}

func TestRadarr_AddMovie_TagLabelResolutionIsCaseInsensitive(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/tag", func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("AddTag called for a label that already exists under a different case")
	})
	mux.HandleFunc("/api/v3/movie", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		tags, _ := body["tags"].([]any)
		if len(tags) != 1 || int(tags[0].(float64)) != 5 {
			t.Fatalf("tags in add-movie payload = %v, want [5]", body["tags"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "title": "Arrival"})
	})
	o, _ := newTestRadarr(t, mux)
	o.tags.Insert(5, "4k")

	_, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindAddMovie, events.AddMovieParams{
		TMDBID: 42, Title: "Arrival", TagInput: " 4K ",
	}))
	if err != nil {
		t.Fatalf("Dispatch(AddMovie) error: %v", err)
	}
}

func TestRadarr_TestIndexer_PostsDetailBodyAndParsesArrayErrors(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/indexer/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "NZBgeek"})
	})
	mux.HandleFunc("/api/v3/indexer/test", func(w http.ResponseWriter, r *http.Request) {
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
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindTestIndexer, events.TestIndexerParams{ID: 3}))
	if err != nil {
		t.Fatalf("Dispatch(TestIndexer) error: %v", err)
	}
	if len(result.Radarr.IndexerTestResults) != 1 {
		t.Fatalf("expected one result, got: %+v", result.Radarr)
	}
	res := result.Radarr.IndexerTestResults[0]
	if res.Passed {
		t.Fatalf("expected Passed=false when the array response carries an error")
	}
	if len(res.Errors) != 1 || res.Errors[0] != "api key invalid" {
		t.Fatalf("errors = %+v, want [\"api key invalid\"]", res.Errors)
	}
}

func TestRadarr_TestIndexer_ObjectResponseMeansPassed(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/indexer/3", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "name": "NZBgeek"})
	})
	mux.HandleFunc("/api/v3/indexer/test", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3})
	})
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendRadarr, events.KindTestIndexer, events.TestIndexerParams{ID: 3}))
	if err != nil {
		t.Fatalf("Dispatch(TestIndexer) error: %v", err)
	}
	res := result.Radarr.IndexerTestResults[0]
	if !res.Passed || len(res.Errors) != 0 {
		t.Fatalf("expected Passed=true with no errors, got: %+v", res)
	}
}

func TestRadarr_TestAllIndexers_PostsTestAllAndMergesNames(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/indexer", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "name": "NZBgeek"},
			{"id": 2, "name": "Drunken Slug"},
		})
	})
	mux.HandleFunc("/api/v3/indexer/testall", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]map[string]any{
			{"id": 1, "isValid": true, "validationFailures": []any{}},
			{"id": 2, "isValid": false, "validationFailures": []map[string]any{
				{"propertyName": "apiKey", "errorMessage": "invalid"},
			}},
		})
	})
	o, _ := newTestRadarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendRadarr, events.KindTestAllIndexers))
	if err != nil {
		t.Fatalf("Dispatch(TestAllIndexers) error: %v", err)
	}
	results := result.Radarr.IndexerTestResults
	if len(results) != 2 {
		t.Fatalf("expected 2 results, got: %+v", results)
	}
	byID := map[int]struct {
		name   string
		passed bool
	}{}
	for _, r := range results {
		byID[r.IndexerID] = struct {
			name   string
			passed bool
		}{r.Name, r.Passed}
	}
	if byID[1].name != "NZBgeek" || !byID[1].passed {
		t.Fatalf("indexer 1 mismerged: %+v", byID[1])
	}
	if byID[2].name != "Drunken Slug" || byID[2].passed {
		t.Fatalf("indexer 2 mismerged: %+v", byID[2])
	}
}

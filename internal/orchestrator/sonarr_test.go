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

func newTestSonarr(t *testing.T, handler http.Handler) (*Sonarr, *httptest.Server) {
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
	client := httpclient.New("sonarr", cfg, httpclient.V3)
	return NewSonarr(client, tagmap.New()), srv
}

func TestSonarr_GetSeries_FetchArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Fatalf("method = %s, want GET", r.Method)
		}
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 3, "title": "The Wire"}})
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendSonarr, events.KindGetSeries))
	if err != nil {
		t.Fatalf("Dispatch(GetSeries) error: %v", err)
	}
	if result.Sonarr == nil || len(result.Sonarr.Series) != 1 || result.Sonarr.Series[0].Title != "The Wire" {
		t.Fatalf("unexpected result: %+v", result.Sonarr)
	}
}

func TestSonarr_EditSeries_FetchModifyPutRoundTripClearsTags(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/series/3", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "title": "The Wire", "tags": []int{1, 2}})
		case http.MethodPut:
			if r.URL.Query().Get("forceSave") != "" {
				t.Fatalf("forceSave query param should not be set on series edit: %q", r.URL.RawQuery)
			}
			var body map[string]any
			_ = json.NewDecoder(r.Body).Decode(&body)
			tags, _ := body["tags"].([]any)
			if len(tags) != 0 {
				t.Fatalf("tags not cleared: %+v", body["tags"])
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "title": "The Wire", "tags": []int{}})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})
	mux.HandleFunc("/api/v3/episode", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{})
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindEditSeries, events.EditSeriesParams{
		ID: 3, ClearTags: true,
	}))
	if err != nil {
		t.Fatalf("Dispatch(EditSeries) error: %v", err)
	}
	if result.Sonarr == nil || result.Sonarr.OneSeries == nil || len(result.Sonarr.OneSeries.Tags) != 0 {
		t.Fatalf("edited series not reflected in result: %+v", result.Sonarr)
	}
}

func TestSonarr_EditIndexer_PutAlwaysCarriesForceSave(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/indexer/7", func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "NZBgeek", "tags": []int{1}, "fields": []any{}})
		case http.MethodPut:
			if r.URL.Query().Get("forceSave") != "true" {
				t.Fatalf("forceSave query param missing: %q", r.URL.RawQuery)
			}
			_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "NZBgeek", "tags": []int{1}})
		default:
			t.Fatalf("unexpected method %s", r.Method)
		}
	})
	mux.HandleFunc("/api/v3/indexer", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 7, "name": "NZBgeek"}})
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindEditIndexer, events.EditIndexerParams{
		IndexerID: 7,
	}))
	if err != nil {
		t.Fatalf("Dispatch(EditIndexer) error: %v", err)
	}
	if result.Sonarr == nil || len(result.Sonarr.Indexers) != 1 {
		t.Fatalf("edited indexer not reflected in result: %+v", result.Sonarr)
	}
}

func TestSonarr_SeriesSearch_CommandPostArchetype(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/command", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		if body["name"] != "SeriesSearch" {
			t.Fatalf("command name = %v, want SeriesSearch", body["name"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1, "name": "SeriesSearch", "status": "queued"})
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindSeriesSearch, events.IDListParams{IDs: []int{3}}))
	if err != nil {
		t.Fatalf("Dispatch(SeriesSearch) error: %v", err)
	}
	if result.Sonarr == nil || len(result.Sonarr.QueuedEvents) != 1 {
		t.Fatalf("expected one queued event, got: %+v", result.Sonarr)
	}
}

func TestSonarr_DeleteSeries_ReturnsEmptySerdeable(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/series/3", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodDelete {
			t.Fatalf("method = %s, want DELETE", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindDeleteSeries, events.DeleteSeriesParams{ID: 3}))
	if err != nil {
		t.Fatalf("Dispatch(DeleteSeries) error: %v", err)
	}
	if result.Radarr != nil || result.Sonarr != nil || result.Lidarr != nil {
		t.Fatalf("expected models.Empty(), got: %+v", result)
	}
}

func TestSonarr_AddSeries_ResolvesUnknownTagByCreatingIt(t *testing.T) {
	var sawAddTag bool
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/tag", func(w http.ResponseWriter, r *http.Request) {
		sawAddTag = true
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 9, "label": "anime"})
	})
	mux.HandleFunc("/api/v3/series", func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		_ = json.NewDecoder(r.Body).Decode(&body)
		tags, _ := body["tags"].([]any)
		if len(tags) != 1 || int(tags[0].(float64)) != 9 {
			t.Fatalf("tags in add-series payload = %v, want [9]", body["tags"])
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 3, "title": "The Wire"})
	})
	o, _ := newTestSonarr(t, mux)

	_, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindAddSeries, events.AddSeriesParams{
		TVDBID: 77, Title: "The Wire", TagInput: "anime",
	}))
	if err != nil {
		t.Fatalf("Dispatch(AddSeries) error: %v", err)
	}
	if !sawAddTag {
		t.Fatalf("resolveTagLabels did not create the unknown tag via AddTag")
	}
}

func TestSonarr_TestIndexer_PostsDetailBodyAndParsesArrayErrors(t *testing.T) {
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
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.WithParams(models.BackendSonarr, events.KindTestIndexer, events.TestIndexerParams{ID: 3}))
	if err != nil {
		t.Fatalf("Dispatch(TestIndexer) error: %v", err)
	}
	res := result.Sonarr.IndexerTestResults[0]
	if res.Passed || len(res.Errors) != 1 || res.Errors[0] != "api key invalid" {
		t.Fatalf("unexpected result: %+v", res)
	}
}

func TestSonarr_TestAllIndexers_PostsTestAllAndMergesNames(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/v3/indexer", func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "name": "NZBgeek"}})
	})
	mux.HandleFunc("/api/v3/indexer/testall", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Fatalf("method = %s, want POST", r.Method)
		}
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode([]map[string]any{{"id": 1, "isValid": true, "validationFailures": []any{}}})
	})
	o, _ := newTestSonarr(t, mux)

	result, err := o.Dispatch(context.Background(), events.New(models.BackendSonarr, events.KindTestAllIndexers))
	if err != nil {
		t.Fatalf("Dispatch(TestAllIndexers) error: %v", err)
	}
	results := result.Sonarr.IndexerTestResults
	if len(results) != 1 || results[0].Name != "NZBgeek" || !results[0].Passed {
		t.Fatalf("unexpected results: %+v", results)
	}
}

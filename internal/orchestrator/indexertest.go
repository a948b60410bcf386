// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package orchestrator

import (
	"fmt"
	"strconv"

	"github.com/tomtom215/servarr-tui/internal/models"
)

// indexerTestErrors parses the response body of POST /indexer/test,
// deliberately read regardless of HTTP status (spec §4.3 "indexer test,
// special cases"): an object response means the test passed (no error
// text); an array response carries one or more failure objects, each
// concatenated from its errorMessage field.
func indexerTestErrors(body any) []string {
	arr, ok := body.([]any)
	if !ok {
		return nil
	}
	var errs []string
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if msg, ok := m["errorMessage"].(string); ok && msg != "" {
			errs = append(errs, msg)
		}
	}
	return errs
}

// indexerTestAllResults parses the response body of POST /indexer/testall
// (also read regardless of HTTP status): an array of
// {id, isValid, validationFailures: [{propertyName, errorMessage}]},
// matched against the indexer id/name table fetched alongside it.
func indexerTestAllResults(body any, names map[int]string) []models.IndexerTestResult {
	arr, _ := body.([]any)
	results := make([]models.IndexerTestResult, 0, len(arr))
	for _, item := range arr {
		m, ok := item.(map[string]any)
		if !ok {
			continue
		}
		id := intFromAny(m["id"])
		isValid, _ := m["isValid"].(bool)
		var errs []string
		if failures, ok := m["validationFailures"].([]any); ok {
			for _, f := range failures {
				fm, ok := f.(map[string]any)
				if !ok {
					continue
				}
				prop, _ := fm["propertyName"].(string)
				msg, _ := fm["errorMessage"].(string)
				errs = append(errs, fmt.Sprintf("Failure for field '%s': %s", prop, msg))
			}
		}
		results = append(results, models.IndexerTestResult{
			IndexerID: id,
			Name:      names[id],
			Passed:    isValid,
			Errors:    errs,
		})
	}
	return results
}

func intFromAny(v any) int {
	switch n := v.(type) {
	case float64:
		return int(n)
	case int:
		return n
	case string:
		i, _ := strconv.Atoi(n)
		return i
	default:
		return 0
	}
}

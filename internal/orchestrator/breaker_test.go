// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package orchestrator

import (
	"reflect"
	"testing"
)

func TestSplitTagLabels_TrimsAndLowercases(t *testing.T) {
	got := splitTagLabels(" Anime, 4K ,documentary")
	want := []string{"anime", "4k", "documentary"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitTagLabels(...) = %v, want %v", got, want)
	}
}

func TestSplitTagLabels_DropsEmptyEntries(t *testing.T) {
	got := splitTagLabels("anime,, ,4k")
	want := []string{"anime", "4k"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("splitTagLabels(...) = %v, want %v", got, want)
	}
}

func TestSplitTagLabels_EmptyInputReturnsNil(t *testing.T) {
	if got := splitTagLabels(""); got != nil {
		t.Fatalf("splitTagLabels(\"\") = %v, want nil", got)
	}
}

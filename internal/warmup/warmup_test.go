// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package warmup

import (
	"testing"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
)

func TestBootEvents_NoneBackendIsEmpty(t *testing.T) {
	if got := BootEvents(models.BackendNone); got != nil {
		t.Fatalf("BootEvents(BackendNone) = %v, want nil", got)
	}
}

func TestBootThenBlockEvents_MatchesBootSequenceScenario(t *testing.T) {
	// spec §8 scenario 1: the exact boot-sequence event order for Radarr
	// landing on the Movies screen.
	got := append(BootEvents(models.BackendRadarr), BlockEvents(models.BackendRadarr, models.BlockMovies)...)
	want := []events.Kind{
		events.KindGetQualityProfiles,
		events.KindGetTags,
		events.KindGetRootFolders,
		events.KindGetDownloads,
		events.KindGetDiskSpace,
		events.KindGetStatus,
		events.KindGetQualityProfiles,
		events.KindGetTags,
		events.KindGetMovies,
	}
	if len(got) != len(want) {
		t.Fatalf("len(sequence) = %d, want %d: %v", len(got), len(want), got)
	}
	for i, ev := range got {
		if ev.Backend != models.BackendRadarr {
			t.Fatalf("event %d backend = %v, want Radarr", i, ev.Backend)
		}
		if ev.Kind != want[i] {
			t.Fatalf("event %d kind = %v, want %v", i, ev.Kind, want[i])
		}
	}
}

func TestBlockEvents_UnmappedBlockReturnsNil(t *testing.T) {
	if got := BlockEvents(models.BackendRadarr, models.BlockHelp); got != nil {
		t.Fatalf("BlockEvents(BlockHelp) = %v, want nil", got)
	}
}

func TestBlockEvents_SystemIncludesStatusAndDiskSpace(t *testing.T) {
	got := BlockEvents(models.BackendLidarr, models.BlockSystem)
	hasStatus, hasDisk := false, false
	for _, ev := range got {
		if ev.Kind == events.KindGetStatus {
			hasStatus = true
		}
		if ev.Kind == events.KindGetDiskSpace {
			hasDisk = true
		}
	}
	if !hasStatus || !hasDisk {
		t.Fatalf("System warm-up set missing GetStatus/GetDiskSpace: %v", got)
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package tagmap

import "testing"

func TestBiMap_ReplaceThenLookupBothDirections(t *testing.T) {
	m := New()
	m.Replace(map[int]string{1: "anime", 2: "4k"})

	if label, ok := m.GetByLeft(1); !ok || label != "anime" {
		t.Fatalf("GetByLeft(1) = %q, %v; want anime, true", label, ok)
	}
	if id, ok := m.GetByRight("4k"); !ok || id != 2 {
		t.Fatalf("GetByRight(4k) = %d, %v; want 2, true", id, ok)
	}
	if _, ok := m.GetByLeft(99); ok {
		t.Fatalf("GetByLeft(99) reported ok=true for an unknown id")
	}
}

func TestBiMap_ReplaceDropsStalePairs(t *testing.T) {
	m := New()
	m.Replace(map[int]string{1: "anime"})
	m.Replace(map[int]string{2: "4k"})

	if _, ok := m.GetByLeft(1); ok {
		t.Fatalf("stale id 1 still resolves after Replace with a disjoint set")
	}
	if _, ok := m.GetByRight("anime"); ok {
		t.Fatalf("stale label anime still resolves after Replace with a disjoint set")
	}
	if m.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", m.Len())
	}
}

func TestBiMap_InsertAddsNewTagAllocatedByServer(t *testing.T) {
	m := New()
	m.Replace(map[int]string{1: "anime"})
	m.Insert(2, "documentary")

	if label, ok := m.GetByLeft(2); !ok || label != "documentary" {
		t.Fatalf("GetByLeft(2) = %q, %v; want documentary, true", label, ok)
	}
	if m.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", m.Len())
	}
}

func TestBiMap_SnapshotIsACopy(t *testing.T) {
	m := New()
	m.Replace(map[int]string{1: "anime"})
	snap := m.Snapshot()
	snap[2] = "mutated-after-the-fact"

	if _, ok := m.GetByLeft(2); ok {
		t.Fatalf("mutating the Snapshot result leaked back into the BiMap")
	}
}

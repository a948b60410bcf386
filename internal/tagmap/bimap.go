// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package tagmap implements the bidirectional id<->label relation spec §9
// calls for (tags, and the id<->name profile maps): two inner maps kept in
// lockstep, small enough that a linear Add is fine. The shape mirrors the
// generic container style cartographus uses for its cache package
// (internal/cache/lru.go), adapted here to a bidirectional map instead of an
// eviction-ordered one.
package tagmap

import "sync"

// BiMap relates an integer id to a string label in both directions.
type BiMap struct {
	mu      sync.RWMutex
	byID    map[int]string
	byLabel map[string]int
}

// New creates an empty BiMap.
func New() *BiMap {
	return &BiMap{byID: make(map[int]string), byLabel: make(map[string]int)}
}

// Replace atomically swaps the contents, used when GetTags/GetTags-equivalent
// fetches return the authoritative server-side set.
func (m *BiMap) Replace(pairs map[int]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID = make(map[int]string, len(pairs))
	m.byLabel = make(map[string]int, len(pairs))
	for id, label := range pairs {
		m.byID[id] = label
		m.byLabel[label] = id
	}
}

// Insert adds or updates a single pair, used when AddTag returns a freshly
// allocated id.
func (m *BiMap) Insert(id int, label string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.byID[id] = label
	m.byLabel[label] = id
}

// GetByLeft looks up the label for an id.
func (m *BiMap) GetByLeft(id int) (string, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.byID[id]
	return v, ok
}

// GetByRight looks up the id for a label.
func (m *BiMap) GetByRight(label string) (int, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.byLabel[label]
	return v, ok
}

// Len reports the number of pairs.
func (m *BiMap) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.byID)
}

// Snapshot returns a copy of the id->label map, e.g. for rendering a tag
// picker.
func (m *BiMap) Snapshot() map[int]string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make(map[int]string, len(m.byID))
	for k, v := range m.byID {
		out[k] = v
	}
	return out
}

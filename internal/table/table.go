// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package table implements the stateful table container described in
// spec §3: the ubiquitous per-screen list with an optional filtered view, a
// selected index, pagination, and a sort-ascending flag. Every library,
// downloads, history, indexer, and profile list in internal/state is a
// Table[E].
//
// All operations are total: an empty table never panics (spec invariant v),
// grounded in the generic-helper style cartographus uses for its circuit
// breaker cast helper (internal/sync/circuit_breaker.go's castResult[T any]).
package table

// Comparator orders two elements of E; Table.Sort uses it when set, else the
// Table falls back to the order items already arrived in.
type Comparator[E any] func(a, b E) bool

// Table is the generic stateful list container of spec §3.
type Table[E any] struct {
	items      []E
	filtered   []E
	filtering  bool
	selected   int
	pageStart  int
	sortAsc    bool
	comparator Comparator[E]
}

// New creates an empty table, ascending by default.
func New[E any]() *Table[E] {
	return &Table[E]{sortAsc: true}
}

// SetItems replaces the backing items, preserving the current selection when
// the new length still covers it (invariant iv), and preserves the sort
// direction and comparator (invariant ii). Filtering is cleared: callers that
// want to keep a filter active must reapply it via Filter after SetItems.
func (t *Table[E]) SetItems(items []E) {
	t.items = items
	t.filtered = nil
	t.filtering = false
	if len(items) == 0 {
		t.selected = 0
		return
	}
	if t.selected >= len(items) {
		t.selected = len(items) - 1
	}
	if t.comparator != nil {
		t.Sort(t.comparator)
	}
}

// Items returns the active view: the filtered slice if a filter is applied,
// else the full item list.
func (t *Table[E]) Items() []E {
	if t.filtering {
		return t.filtered
	}
	return t.items
}

// AllItems returns the unfiltered backing list (used by the apply merge
// helpers, which replace or append rows on the full list whatever filter is
// active).
func (t *Table[E]) AllItems() []E { return t.items }

// Len reports the length of the active view.
func (t *Table[E]) Len() int { return len(t.Items()) }

// Selected returns the currently selected element and whether one exists.
func (t *Table[E]) Selected() (E, bool) {
	var zero E
	items := t.Items()
	if len(items) == 0 || t.selected < 0 || t.selected >= len(items) {
		return zero, false
	}
	return items[t.selected], true
}

// SelectedIndex reports the current selection (always < Len() when Len() > 0,
// per spec invariant i).
func (t *Table[E]) SelectedIndex() int { return t.selected }

// Select moves the selection to i if it is in range; out-of-range indices are
// a no-op (per spec §8's "selecting an out-of-range index is a no-op").
func (t *Table[E]) Select(i int) {
	if i < 0 || i >= t.Len() {
		return
	}
	t.selected = i
}

// ScrollDown advances the selection by one, clamped at the end (invariant
// iii).
func (t *Table[E]) ScrollDown() {
	if n := t.Len(); n > 0 && t.selected < n-1 {
		t.selected++
	}
}

// ScrollUp retreats the selection by one, clamped at the start.
func (t *Table[E]) ScrollUp() {
	if t.selected > 0 {
		t.selected--
	}
}

// Home moves the selection to the first row.
func (t *Table[E]) Home() { t.selected = 0 }

// End moves the selection to the last row.
func (t *Table[E]) End() {
	if n := t.Len(); n > 0 {
		t.selected = n - 1
	} else {
		t.selected = 0
	}
}

// PageDown advances the selection by step rows, clamped at the end.
func (t *Table[E]) PageDown(step int) {
	n := t.Len()
	if n == 0 {
		return
	}
	t.selected += step
	if t.selected >= n {
		t.selected = n - 1
	}
}

// PageUp retreats the selection by step rows, clamped at the start.
func (t *Table[E]) PageUp(step int) {
	t.selected -= step
	if t.selected < 0 {
		t.selected = 0
	}
}

// SortAscending reports the current sort direction.
func (t *Table[E]) SortAscending() bool { return t.sortAsc }

// ToggleSortDirection flips the ascending flag. SetItems leaves the flag
// as it is, so a later fetch for the same table keeps the direction last
// chosen.
func (t *Table[E]) ToggleSortDirection() { t.sortAsc = !t.sortAsc }

// SetSortAscending sets the ascending flag explicitly.
func (t *Table[E]) SetSortAscending(asc bool) { t.sortAsc = asc }

// Sort orders items in place using cmp, reversing the result when sortAsc is
// false, and remembers cmp as the active comparator (invariant ii).
func (t *Table[E]) Sort(cmp Comparator[E]) {
	t.comparator = cmp
	items := t.items
	// Simple insertion sort: tables here are small (hundreds of rows at
	// most) and this keeps Comparator a plain less-than predicate without
	// pulling in sort.Slice's reflection-based swapper for generics.
	for i := 1; i < len(items); i++ {
		for j := i; j > 0; j-- {
			less := cmp(items[j], items[j-1])
			if !t.sortAsc {
				less = cmp(items[j-1], items[j])
			}
			if !less {
				break
			}
			items[j], items[j-1] = items[j-1], items[j]
		}
	}
}

// Filter applies keep to the backing items and stores the result as the
// active view; len(filtered) <= len(items) always holds (spec §8 "filter
// monotonicity").
func (t *Table[E]) Filter(keep func(E) bool) {
	out := make([]E, 0, len(t.items))
	for _, it := range t.items {
		if keep(it) {
			out = append(out, it)
		}
	}
	t.filtered = out
	t.filtering = true
	if t.selected >= len(out) {
		t.selected = 0
	}
}

// ClearFilter removes any active filter and returns to the full item list.
func (t *Table[E]) ClearFilter() {
	t.filtering = false
	t.filtered = nil
}

// Filtering reports whether a filter is currently applied.
func (t *Table[E]) Filtering() bool { return t.filtering }

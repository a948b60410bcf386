// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package models

import "testing"

func TestStack_PopAtDepthOneIsNoOp(t *testing.T) {
	s := NewStack(NewRoute(BackendRadarr, BlockMovies))
	s.Pop()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1 after popping a depth-1 stack", s.Len())
	}
	if s.Current().Block != BlockMovies {
		t.Fatalf("Current().Block = %v, want BlockMovies", s.Current().Block)
	}
}

func TestStack_PushThenPopReturnsToPrevious(t *testing.T) {
	home := NewRoute(BackendRadarr, BlockMovies)
	s := NewStack(home)
	s.Push(NewRoute(BackendRadarr, BlockMovieDetails))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}
	if s.Current().Block != BlockMovieDetails {
		t.Fatalf("Current().Block = %v, want BlockMovieDetails", s.Current().Block)
	}
	s.Pop()
	if s.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", s.Len())
	}
	if s.Current() != home {
		t.Fatalf("Current() = %+v, want original home route %+v", s.Current(), home)
	}
}

func TestStack_PopAndPushReplacesTopAtomically(t *testing.T) {
	s := NewStack(NewRoute(BackendRadarr, BlockMovies))
	s.Push(NewRoute(BackendRadarr, BlockMoviesSortPrompt))
	s.PopAndPush(NewRoute(BackendRadarr, BlockMovies))
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2 (PopAndPush replaces, does not grow or shrink depth)", s.Len())
	}
	if s.Current().Block != BlockMovies {
		t.Fatalf("Current().Block = %v, want BlockMovies", s.Current().Block)
	}
}

func TestRoute_WithContextCarriesSiblingBlock(t *testing.T) {
	r := NewRoute(BackendRadarr, BlockMoviesSortPrompt).WithContext(BlockMovies)
	if r.Context == nil || *r.Context != BlockMovies {
		t.Fatalf("Context = %v, want pointer to BlockMovies", r.Context)
	}
}

func TestBackend_String(t *testing.T) {
	cases := map[Backend]string{
		BackendNone:   "None",
		BackendRadarr: "Radarr",
		BackendSonarr: "Sonarr",
		BackendLidarr: "Lidarr",
	}
	for b, want := range cases {
		if got := b.String(); got != want {
			t.Fatalf("Backend(%d).String() = %q, want %q", b, got, want)
		}
	}
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package cli

import (
	"context"

	"github.com/tomtom215/servarr-tui/internal/events"
	"github.com/tomtom215/servarr-tui/internal/models"
)

// dispatchRadarr resolves the verb+resource grammar `radarr <verb>
// <resource> [flags]` to a leaf, or nil if unrecognised. search-new-movie
// is a flat ad-hoc verb (`radarr search-new-movie <term>`), not a
// resource-scoped one, so it is handled before the resource split.
func dispatchRadarr(verb string) leafFunc {
	return func(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
		if verb == "search-new-movie" {
			return searchNewMovie(ctx, rt, args)
		}
		if len(args) < 1 {
			return models.Serdeable{}, newUsageError("usage: radarr %s <resource> [flags]", verb)
		}
		resource, rest := args[0], args[1:]
		switch {
		case verb == "get" && resource == "movies":
			return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetMovies))
		case verb == "list" && resource == "movies":
			return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetMovies))
		case verb == "get" && resource == "movie":
			id, _, err := parseID(rest)
			if err != nil {
				return models.Serdeable{}, err
			}
			return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindGetMovieDetails, events.DetailParams{ID: id}))
		case verb == "get" && resource == "collections":
			return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetCollections))
		case verb == "edit" && resource == "collection":
			return editRadarrCollection(ctx, rt, rest)
		case verb == "delete" && resource == "movie":
			return deleteRadarrMovie(ctx, rt, rest)
		case verb == "edit" && resource == "movie":
			return editRadarrMovie(ctx, rt, rest)
		case verb == "add" && resource == "movie":
			return addRadarrMovie(ctx, rt, rest)
		case verb == "refresh" && resource == "movie":
			return refreshRadarrMovie(ctx, rt, rest)
		}
		return models.Serdeable{}, newUsageError("unknown radarr command: %s %s", verb, resource)
	}
}

func deleteRadarrMovie(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("delete movie")
	deleteFiles := fs.Bool("delete-files", false, "delete files from disk")
	addExclusion := fs.Bool("exclude", false, "add to list exclusion")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteMovie, events.DeleteMovieParams{
		ID: id, DeleteFiles: *deleteFiles, AddListExclusion: *addExclusion,
	}))
}

func editRadarrMovie(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("edit movie")
	monitored := fs.Bool("monitored", false, "monitored")
	minAvail := fs.String("minimum-availability", "", "minimum availability")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	path := fs.String("path", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	clearTags := fs.Bool("clear-tags", false, "clear all tags")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	opt := newOptionalFlags(fs)
	opt.mark()
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEditMovie, events.EditMovieParams{
		ID:                  id,
		Monitored:           opt.boolPtr("monitored", *monitored),
		MinimumAvailability: opt.stringPtr("minimum-availability", *minAvail),
		QualityProfileID:    opt.intPtr("quality-profile", *qualityProfile),
		Path:                opt.stringPtr("path", *path),
		TagInput:            *tags,
		ClearTags:           *clearTags,
	}))
}

func addRadarrMovie(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	fs := newFlagSet("add movie")
	tmdbID := fs.Int("tmdb-id", 0, "TMDB id")
	title := fs.String("title", "", "title")
	monitored := fs.Bool("monitored", true, "monitored")
	minAvail := fs.String("minimum-availability", "released", "minimum availability")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	rootFolder := fs.String("root-folder", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	search := fs.Bool("search", false, "search on add")
	if err := parseFlags(fs, args); err != nil {
		return models.Serdeable{}, err
	}
	if *tmdbID == 0 {
		return models.Serdeable{}, newUsageError("--tmdb-id is required")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindAddMovie, events.AddMovieParams{
		TMDBID: *tmdbID, Title: *title, Monitored: *monitored, MinimumAvailability: *minAvail,
		QualityProfileID: *qualityProfile, RootFolderPath: *rootFolder, TagInput: *tags, SearchOnAdd: *search,
	}))
}

func refreshRadarrMovie(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindRefreshMovie, events.IDListParams{IDs: []int{id}}))
}

func editRadarrCollection(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("edit collection")
	monitored := fs.Bool("monitored", false, "monitored")
	minAvail := fs.String("minimum-availability", "", "minimum availability")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	rootFolder := fs.String("root-folder", "", "root folder path")
	searchOnAdd := fs.Bool("search-on-add", false, "search on add")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	opt := newOptionalFlags(fs)
	opt.mark()
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEditCollection, events.EditCollectionParams{
		ID:                  id,
		Monitored:           opt.boolPtr("monitored", *monitored),
		MinimumAvailability: opt.stringPtr("minimum-availability", *minAvail),
		QualityProfileID:    opt.intPtr("quality-profile", *qualityProfile),
		RootFolderPath:      opt.stringPtr("root-folder", *rootFolder),
		SearchOnAdd:         opt.boolPtr("search-on-add", *searchOnAdd),
	}))
}

func searchNewMovie(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: radarr search-new-movie <term>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindSearchNewMovie, events.SearchNewMovieParams{Term: args[0]}))
}

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

func dispatchSonarr(verb string) leafFunc {
	return func(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
		if verb == "search-new-series" {
			return searchNewSeries(ctx, rt, args)
		}
		if len(args) < 1 {
			return models.Serdeable{}, newUsageError("usage: sonarr %s <resource> [flags]", verb)
		}
		resource, rest := args[0], args[1:]
		switch {
		case (verb == "get" || verb == "list") && resource == "series" && len(rest) == 0:
			return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetSeries))
		case verb == "get" && resource == "series":
			id, _, err := parseID(rest)
			if err != nil {
				return models.Serdeable{}, err
			}
			return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindGetSeriesDetails, events.DetailParams{ID: id}))
		case verb == "delete" && resource == "series":
			return deleteSonarrSeries(ctx, rt, rest)
		case verb == "edit" && resource == "series":
			return editSonarrSeries(ctx, rt, rest)
		case verb == "add" && resource == "series":
			return addSonarrSeries(ctx, rt, rest)
		case verb == "refresh" && resource == "series":
			return refreshSonarrSeries(ctx, rt, rest)
		case verb == "search" && resource == "episodes":
			return episodeSearch(ctx, rt, rest)
		}
		return models.Serdeable{}, newUsageError("unknown sonarr command: %s %s", verb, resource)
	}
}

func deleteSonarrSeries(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("delete series")
	deleteFiles := fs.Bool("delete-files", false, "delete files from disk")
	addExclusion := fs.Bool("exclude", false, "add to list exclusion")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteSeries, events.DeleteSeriesParams{
		ID: id, DeleteFiles: *deleteFiles, AddListExclusion: *addExclusion,
	}))
}

func editSonarrSeries(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("edit series")
	monitored := fs.Bool("monitored", false, "monitored")
	seriesType := fs.String("series-type", "", "series type")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	path := fs.String("path", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	clearTags := fs.Bool("clear-tags", false, "clear all tags")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	opt := newOptionalFlags(fs)
	opt.mark()
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEditSeries, events.EditSeriesParams{
		ID:               id,
		Monitored:        opt.boolPtr("monitored", *monitored),
		SeriesType:       opt.stringPtr("series-type", *seriesType),
		QualityProfileID: opt.intPtr("quality-profile", *qualityProfile),
		Path:             opt.stringPtr("path", *path),
		TagInput:         *tags,
		ClearTags:        *clearTags,
	}))
}

func addSonarrSeries(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	fs := newFlagSet("add series")
	tvdbID := fs.Int("tvdb-id", 0, "TVDB id")
	title := fs.String("title", "", "title")
	monitored := fs.Bool("monitored", true, "monitored")
	seriesType := fs.String("series-type", "standard", "series type")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	rootFolder := fs.String("root-folder", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	search := fs.Bool("search", false, "search on add")
	if err := parseFlags(fs, args); err != nil {
		return models.Serdeable{}, err
	}
	if *tvdbID == 0 {
		return models.Serdeable{}, newUsageError("--tvdb-id is required")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindAddSeries, events.AddSeriesParams{
		TVDBID: *tvdbID, Title: *title, Monitored: *monitored, SeriesType: *seriesType,
		QualityProfileID: *qualityProfile, RootFolderPath: *rootFolder, TagInput: *tags, SearchOnAdd: *search,
	}))
}

func refreshSonarrSeries(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindRefreshSeries, events.IDListParams{IDs: []int{id}}))
}

func episodeSearch(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: sonarr search episodes <id...>")
	}
	ids := make([]int, 0, len(args))
	for _, a := range args {
		id, _, err := parseID([]string{a})
		if err != nil {
			return models.Serdeable{}, err
		}
		ids = append(ids, id)
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEpisodeSearch, events.IDListParams{IDs: ids}))
}

func searchNewSeries(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: sonarr search-new-series <term>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindSearchNewSeries, events.SearchNewSeriesParams{Term: args[0]}))
}

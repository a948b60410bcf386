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

func dispatchLidarr(verb string) leafFunc {
	return func(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
		if verb == "search-new-artist" {
			return searchNewArtist(ctx, rt, args)
		}
		if len(args) < 1 {
			return models.Serdeable{}, newUsageError("usage: lidarr %s <resource> [flags]", verb)
		}
		resource, rest := args[0], args[1:]
		switch {
		case (verb == "get" || verb == "list") && resource == "artists" && len(rest) == 0:
			return rt.dispatcher.Dispatch(ctx, events.New(rt.backend, events.KindGetArtists))
		case verb == "get" && resource == "artist":
			id, _, err := parseID(rest)
			if err != nil {
				return models.Serdeable{}, err
			}
			return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindGetArtistDetails, events.DetailParams{ID: id}))
		case verb == "edit" && resource == "artist":
			return editLidarrArtist(ctx, rt, rest)
		case verb == "add" && resource == "artist":
			return addLidarrArtist(ctx, rt, rest)
		case verb == "refresh" && resource == "artist":
			return refreshLidarrArtist(ctx, rt, rest)
		case verb == "delete" && resource == "album":
			return deleteLidarrAlbum(ctx, rt, rest)
		case verb == "delete" && resource == "artist":
			return deleteLidarrArtist(ctx, rt, rest)
		}
		return models.Serdeable{}, newUsageError("unknown lidarr command: %s %s", verb, resource)
	}
}

func editLidarrArtist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("edit artist")
	monitored := fs.Bool("monitored", false, "monitored")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	metadataProfile := fs.Int("metadata-profile", 0, "metadata profile id")
	path := fs.String("path", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	clearTags := fs.Bool("clear-tags", false, "clear all tags")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	opt := newOptionalFlags(fs)
	opt.mark()
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindEditArtist, events.EditArtistParams{
		ID:                id,
		Monitored:         opt.boolPtr("monitored", *monitored),
		QualityProfileID:  opt.intPtr("quality-profile", *qualityProfile),
		MetadataProfileID: opt.intPtr("metadata-profile", *metadataProfile),
		Path:              opt.stringPtr("path", *path),
		TagInput:          *tags,
		ClearTags:         *clearTags,
	}))
}

func addLidarrArtist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	fs := newFlagSet("add artist")
	foreignID := fs.String("foreign-artist-id", "", "MusicBrainz artist id")
	name := fs.String("name", "", "artist name")
	monitored := fs.Bool("monitored", true, "monitored")
	qualityProfile := fs.Int("quality-profile", 0, "quality profile id")
	metadataProfile := fs.Int("metadata-profile", 0, "metadata profile id")
	rootFolder := fs.String("root-folder", "", "root folder path")
	tags := fs.String("tags", "", "comma-separated tag labels")
	search := fs.Bool("search", false, "search on add")
	if err := parseFlags(fs, args); err != nil {
		return models.Serdeable{}, err
	}
	if *foreignID == "" {
		return models.Serdeable{}, newUsageError("--foreign-artist-id is required")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindAddArtist, events.AddArtistParams{
		ForeignArtistID: *foreignID, ArtistName: *name, Monitored: *monitored,
		QualityProfileID: *qualityProfile, MetadataProfileID: *metadataProfile,
		RootFolderPath: *rootFolder, TagInput: *tags, SearchOnAdd: *search,
	}))
}

func refreshLidarrArtist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, _, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindRefreshArtist, events.IDListParams{IDs: []int{id}}))
}

func deleteLidarrAlbum(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("delete album")
	deleteFiles := fs.Bool("delete-files", false, "delete files from disk")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteAlbum, events.DeleteAlbumParams{
		ID: id, DeleteFiles: *deleteFiles,
	}))
}

func deleteLidarrArtist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	id, rest, err := parseID(args)
	if err != nil {
		return models.Serdeable{}, err
	}
	fs := newFlagSet("delete artist")
	deleteFiles := fs.Bool("delete-files", false, "delete files from disk")
	addExclusion := fs.Bool("exclude", false, "add to list exclusion")
	if err := parseFlags(fs, rest); err != nil {
		return models.Serdeable{}, err
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindDeleteArtist, events.DeleteArtistParams{
		ID: id, DeleteFiles: *deleteFiles, AddListExclusion: *addExclusion,
	}))
}

func searchNewArtist(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error) {
	if len(args) < 1 {
		return models.Serdeable{}, newUsageError("usage: lidarr search-new-artist <term>")
	}
	return rt.dispatcher.Dispatch(ctx, events.WithParams(rt.backend, events.KindSearchNewArtist, events.SearchNewArtistParams{Term: args[0]}))
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package cli

import (
	"io"

	"github.com/goccy/go-json"

	"github.com/tomtom215/servarr-tui/internal/models"
)

// printResult pretty-prints a Serdeable as JSON (spec §4.5: "pretty-prints
// the returned serdeable as JSON, and exits"). Successful deletions arrive
// as models.Empty(), which encodes to "{}" per the grammar.
func printResult(w io.Writer, result models.Serdeable) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

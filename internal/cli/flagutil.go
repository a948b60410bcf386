// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

package cli

import (
	"bytes"
	"flag"
)

// newFlagSet builds a FlagSet that reports parse errors through the normal
// error-return path instead of flag's default os.Exit(2), so CLI parse
// failures become ordinary usageError values (spec §4.5: "human-readable
// error on parse failure").
func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(&bytes.Buffer{})
	return fs
}

func parseFlags(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return newUsageError("%s: %v", fs.Name(), err)
	}
	return nil
}

// optionalBool/optionalInt/optionalString build the nil-means-keep-existing
// pointer params the edit events use (spec §4.3 archetype B): the flag is
// only applied when explicitly passed, detected via flag.Visit after Parse.
type optionalFlags struct {
	fs   *flag.FlagSet
	seen map[string]bool
}

func newOptionalFlags(fs *flag.FlagSet) *optionalFlags {
	return &optionalFlags{fs: fs, seen: make(map[string]bool)}
}

// mark must be called once Parse has run; it records which flags were
// explicitly set.
func (o *optionalFlags) mark() {
	o.fs.Visit(func(f *flag.Flag) { o.seen[f.Name] = true })
}

func (o *optionalFlags) boolPtr(name string, v bool) *bool {
	if !o.seen[name] {
		return nil
	}
	return &v
}

func (o *optionalFlags) intPtr(name string, v int) *int {
	if !o.seen[name] {
		return nil
	}
	return &v
}

func (o *optionalFlags) stringPtr(name string, v string) *string {
	if !o.seen[name] {
		return nil
	}
	return &v
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package cli implements the alternative front-end of spec §4.5: a
// subcommand tree that builds the same events.Event values the UI's
// key-handler chain emits, dispatches them synchronously against the same
// orchestrators, and prints the returned Serdeable as JSON. It shares
// internal/config, internal/httpclient, and internal/orchestrator with the
// UI entirely; the only thing it never touches is internal/state or
// internal/keyhandler.
//
// The subcommand shape (flag.NewFlagSet per leaf, a switch-based router per
// noun) follows Aureuma-si/tools/silexa's cmdApp/cmdStack dispatch tree.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/tomtom215/servarr-tui/internal/config"
	"github.com/tomtom215/servarr-tui/internal/httpclient"
	"github.com/tomtom215/servarr-tui/internal/models"
	"github.com/tomtom215/servarr-tui/internal/orchestrator"
	"github.com/tomtom215/servarr-tui/internal/tagmap"
)

// requestTimeout bounds every CLI-issued request; the UI instead relies on
// the cancellation-token/navigation design of spec §5, which has no
// meaning for a one-shot process.
const requestTimeout = 60 * time.Second

// Registry holds one Dispatcher per configured backend, built once at
// startup and shared by every subcommand in this process.
type Registry struct {
	Radarr orchestrator.Dispatcher
	Sonarr orchestrator.Dispatcher
	Lidarr orchestrator.Dispatcher
}

// BuildRegistry wires a Dispatcher for every backend present in cfg. A nil
// entry means that backend was not configured (spec §6: at least one must
// be; any combination of the three is allowed).
func BuildRegistry(cfg *config.Config) *Registry {
	reg := &Registry{}
	if cfg.Radarr != nil {
		reg.Radarr = orchestrator.NewRadarr(httpclient.New("radarr", cfg.Radarr, httpclient.V3), tagmap.New())
	}
	if cfg.Sonarr != nil {
		reg.Sonarr = orchestrator.NewSonarr(httpclient.New("sonarr", cfg.Sonarr, httpclient.V3), tagmap.New())
	}
	if cfg.Lidarr != nil {
		reg.Lidarr = orchestrator.NewLidarr(httpclient.New("lidarr", cfg.Lidarr, httpclient.V1), tagmap.New())
	}
	return reg
}

// dispatcherFor resolves which Dispatcher a backend name selects, and
// reports ExitUsage if that backend was not configured or the name is
// unrecognised.
func (r *Registry) dispatcherFor(name string) (orchestrator.Dispatcher, models.Backend, error) {
	switch name {
	case "radarr":
		if r.Radarr == nil {
			return nil, models.BackendNone, fmt.Errorf("radarr is not configured")
		}
		return r.Radarr, models.BackendRadarr, nil
	case "sonarr":
		if r.Sonarr == nil {
			return nil, models.BackendNone, fmt.Errorf("sonarr is not configured")
		}
		return r.Sonarr, models.BackendSonarr, nil
	case "lidarr":
		if r.Lidarr == nil {
			return nil, models.BackendNone, fmt.Errorf("lidarr is not configured")
		}
		return r.Lidarr, models.BackendLidarr, nil
	default:
		return nil, models.BackendNone, fmt.Errorf("unknown backend %q (want radarr, sonarr, or lidarr)", name)
	}
}

// Exit codes (spec §4.5): 0 success, non-zero for parse error or
// network/HTTP failure.
const (
	ExitOK    = 0
	ExitUsage = 2
	ExitError = 1
)

// Run parses argv (excluding the program name) and executes the matching
// subcommand, writing JSON results to stdout and errors to stderr. It never
// calls os.Exit itself so tests can inspect the returned code.
func Run(args []string, stdout, stderr io.Writer, reg *Registry) int {
	if len(args) < 1 {
		fmt.Fprintln(stderr, "usage: servarr-tui <radarr|sonarr|lidarr> <command> [args] [flags]")
		return ExitUsage
	}
	backendName := args[0]
	dispatcher, backend, err := reg.dispatcherFor(backendName)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return ExitUsage
	}
	if len(args) < 2 {
		fmt.Fprintf(stderr, "usage: servarr-tui %s <add|delete|edit|get|list|refresh|...> <resource> [flags]\n", backendName)
		return ExitUsage
	}

	rt := &runtime{
		backend:    backend,
		dispatcher: dispatcher,
		stdout:     stdout,
		stderr:     stderr,
	}

	cmd, rest := args[1], args[2:]
	if fn, ok := adhocCommands[cmd]; ok {
		return rt.run(fn, rest)
	}
	switch backend {
	case models.BackendRadarr:
		return rt.run(dispatchRadarr(cmd), rest)
	case models.BackendSonarr:
		return rt.run(dispatchSonarr(cmd), rest)
	case models.BackendLidarr:
		return rt.run(dispatchLidarr(cmd), rest)
	}
	fmt.Fprintf(stderr, "unknown command %q for %s\n", cmd, backendName)
	return ExitUsage
}

// leafFunc is one subcommand leaf: given the remaining args, it either
// returns a result to print or an error to report.
type leafFunc func(ctx context.Context, rt *runtime, args []string) (models.Serdeable, error)

// runtime is passed to every leaf so it can issue the request and, for
// long-running commands, print a progress line first (spec §4.5).
type runtime struct {
	backend    models.Backend
	dispatcher orchestrator.Dispatcher
	stdout     io.Writer
	stderr     io.Writer
}

func (rt *runtime) run(fn leafFunc, args []string) int {
	if fn == nil {
		fmt.Fprintln(rt.stderr, "unknown command")
		return ExitUsage
	}
	ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
	defer cancel()
	result, err := fn(ctx, rt, args)
	if err != nil {
		if _, ok := err.(usageError); ok {
			fmt.Fprintln(rt.stderr, err)
			return ExitUsage
		}
		fmt.Fprintln(rt.stderr, err)
		return ExitError
	}
	if err := printResult(rt.stdout, result); err != nil {
		fmt.Fprintln(rt.stderr, err)
		return ExitError
	}
	return ExitOK
}

// progress prints a single progress line to stderr, used by commands spec
// §4.5 calls out as long-running (manual-search, test-all-indexers).
func (rt *runtime) progress(msg string) {
	fmt.Fprintln(rt.stderr, msg)
}

// usageError marks a leaf's argument-parsing failure as an exit-2 condition
// rather than a network failure (exit 1).
type usageError struct{ msg string }

func (e usageError) Error() string { return e.msg }

func newUsageError(format string, args ...any) error {
	return usageError{msg: fmt.Sprintf(format, args...)}
}

// Main is the process entry point cmd/servarr-tui's CLI mode calls.
func Main(args []string, reg *Registry) int {
	return Run(args, os.Stdout, os.Stderr, reg)
}

// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Command servarr-tui is the entry point for both front-ends spec §1
// describes: an interactive dashboard (component H/G wired under a suture
// supervisor) and a one-shot CLI (component I). Argv with a recognised
// backend name as its first element runs in CLI mode and exits; anything
// else boots the dashboard's network dispatch and render/tick loops and
// runs until a shutdown signal arrives.
//
// Actual terminal input and widget rendering are external collaborators
// (spec §1's Non-goals: "it does not lay out the terminal") and are not
// implemented here; the render loop's Draw hook is where that layer plugs
// in.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/thejerf/suture/v4"
	"github.com/thejerf/sutureslog"

	"github.com/tomtom215/servarr-tui/internal/cli"
	"github.com/tomtom215/servarr-tui/internal/config"
	"github.com/tomtom215/servarr-tui/internal/httpclient"
	"github.com/tomtom215/servarr-tui/internal/logging"
	"github.com/tomtom215/servarr-tui/internal/metrics"
	"github.com/tomtom215/servarr-tui/internal/network"
	"github.com/tomtom215/servarr-tui/internal/orchestrator"
	"github.com/tomtom215/servarr-tui/internal/render"
	"github.com/tomtom215/servarr-tui/internal/state"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

// knownBackends gates the CLI/dashboard dispatch: argv[0] naming one of
// these (or "help"/"-h"/"--help") runs the one-shot CLI front-end instead
// of booting the dashboard.
var knownBackends = map[string]bool{"radarr": true, "sonarr": true, "lidarr": true}

func run(args []string) int {
	if len(args) > 0 && (knownBackends[args[0]] || args[0] == "help" || args[0] == "-h" || args[0] == "--help") {
		return runCLI(args)
	}
	return runDashboard(args)
}

func runCLI(args []string) int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return cli.ExitError
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: os.Stderr})
	reg := cli.BuildRegistry(cfg)
	return cli.Main(args, reg)
}

func runDashboard(_ []string) int {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	logging.Init(logging.Config{Level: cfg.Logging.Level, Format: cfg.Logging.Format, Output: os.Stderr})
	logging.Info().Str("config", cfg.String()).Msg("starting servarr-tui dashboard")

	app := state.New()
	queue := network.NewQueue()
	defer queue.Close()

	var radarrDisp, sonarrDisp, lidarrDisp orchestrator.Dispatcher
	if cfg.Radarr != nil {
		radarrDisp = orchestrator.NewRadarr(httpclient.New("radarr", cfg.Radarr, httpclient.V3), app.Radarr.Shared.Tags)
	}
	if cfg.Sonarr != nil {
		sonarrDisp = orchestrator.NewSonarr(httpclient.New("sonarr", cfg.Sonarr, httpclient.V3), app.Sonarr.Shared.Tags)
	}
	if cfg.Lidarr != nil {
		lidarrDisp = orchestrator.NewLidarr(httpclient.New("lidarr", cfg.Lidarr, httpclient.V1), app.Lidarr.Shared.Tags)
	}

	dispatchLoop := network.NewLoop(queue, app, radarrDisp, sonarrDisp, lidarrDisp)
	renderLoop := render.NewLoop(app, queue, nil)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	slogLogger := logging.NewSlogLogger()
	handler := &sutureslog.Handler{Logger: slogLogger}
	sup := suture.New("servarr-tui", suture.Spec{EventHook: handler.MustHook()})
	sup.Add(dispatchLoop)
	sup.Add(renderLoop)

	metricsSrv := newMetricsServer()
	sup.Add(metricsSrv)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		logging.Info().Str("signal", sig.String()).Msg("received shutdown signal")
		cancel()
	}()

	errCh := sup.ServeBackground(ctx)
	select {
	case <-ctx.Done():
		logging.Info().Msg("shutting down")
	case err := <-errCh:
		if err != nil && !errors.Is(err, context.Canceled) {
			logging.Error().Err(err).Msg("supervisor exited with error")
			return 1
		}
	}
	return 0
}

// metricsServer exposes metrics.Registry on /metrics, supervised alongside
// the dispatch/render loops so a scrape endpoint survives restarts the same
// way cartographus wires its HTTPServerService.
type metricsServer struct {
	addr string
}

func newMetricsServer() *metricsServer {
	addr := os.Getenv("SERVARR_METRICS_ADDR")
	if addr == "" {
		addr = "127.0.0.1:9187"
	}
	return &metricsServer{addr: addr}
}

func (m *metricsServer) Serve(ctx context.Context) error {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: m.addr, Handler: mux}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		return ctx.Err()
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

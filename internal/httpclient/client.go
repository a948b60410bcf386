// servarr-tui - Terminal dashboard and CLI for Radarr, Sonarr, and Lidarr
// Copyright 2026 tomtom215
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/servarr-tui

// Package httpclient is the HTTP client adapter of spec §2 component A: it
// knows the API key, base URL, and TLS configuration for one ServArr
// instance and issues a typed request, returning a decoded response or a
// typed apperr. It is deliberately thin — spec §1 treats the precise
// on-wire JSON shapes as an external concern; this package only implements
// the transport envelope spec §6 describes (X-Api-Key header, /api/vN
// prefix, JSON bodies).
package httpclient

import (
	"bytes"
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/time/rate"

	"github.com/tomtom215/servarr-tui/internal/apperr"
	"github.com/tomtom215/servarr-tui/internal/config"
)

// maxErrorBodySize bounds how much of a non-2xx body is read for diagnostics.
const maxErrorBodySize = 64 * 1024

// APIVersion is the URL version segment for a backend ("v3" for
// Radarr/Sonarr, "v1" for Lidarr, per spec §6).
type APIVersion string

const (
	V3 APIVersion = "v3"
	V1 APIVersion = "v1"
)

// Client issues requests against one ServArr instance.
type Client struct {
	backendName string
	baseURL     string
	apiKey      string
	version     APIVersion
	http        *http.Client
	limiter     *rate.Limiter
}

// New builds a Client for a configured backend. version selects the API
// path prefix (spec §6); limiter guards against hammering the instance
// during the 400-tick poll (SPEC_FULL.md §B).
func New(backendName string, cfg *config.BackendConfig, version APIVersion) *Client {
	transport := &http.Transport{}
	if cfg.SSLCertPath != "" {
		transport.TLSClientConfig = &tls.Config{MinVersion: tls.VersionTLS12}
	}
	return &Client{
		backendName: backendName,
		baseURL:     cfg.BaseURL(),
		apiKey:      cfg.APIToken,
		version:     version,
		http:        &http.Client{Transport: transport, Timeout: 30 * time.Second},
		limiter:     rate.NewLimiter(rate.Every(100*time.Millisecond), 10),
	}
}

// Do issues method against path (e.g. "/movie/1") with an optional JSON body,
// decoding a 2xx JSON response into out. A nil out discards the body (used
// for DELETE and command-post calls that return {}).
func (c *Client) Do(ctx context.Context, method, path string, query map[string]string, body any, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err // context cancellation, not an apperr (spec §7)
	}

	url := fmt.Sprintf("%s/api/%s%s", c.baseURL, c.version, path)
	if len(query) > 0 {
		q := "?"
		first := true
		for k, v := range query {
			if !first {
				q += "&"
			}
			q += k + "=" + v
			first = false
		}
		url += q
	}

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return &apperr.DecodeError{Backend: c.backendName, Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return &apperr.TransportError{Backend: c.backendName, Err: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return &apperr.TransportError{Backend: c.backendName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		errBody := readBodyForError(resp.Body)
		return &apperr.HTTPError{
			Backend: c.backendName, Method: method, URL: url,
			StatusCode: resp.StatusCode, Body: string(errBody),
		}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	dec := json.NewDecoder(resp.Body)
	if err := dec.Decode(out); err != nil {
		return &apperr.DecodeError{Backend: c.backendName, Err: err}
	}
	return nil
}

// DoRaw behaves like Do but returns the raw decoded payload as
// map[string]any, used by the fetch-modify-put archetype (spec §4.3) which
// must preserve every field of the GET body verbatim, including ones this
// package's typed models do not know about.
func (c *Client) DoRaw(ctx context.Context, method, path string, query map[string]string) (map[string]any, error) {
	var raw map[string]any
	if err := c.Do(ctx, method, path, query, nil, &raw); err != nil {
		return nil, err
	}
	return raw, nil
}

// PutRaw sends a raw payload verbatim (the merged GET body of an edit
// operation).
func (c *Client) PutRaw(ctx context.Context, path string, query map[string]string, payload map[string]any) error {
	return c.Do(ctx, http.MethodPut, path, query, payload, nil)
}

// PostIgnoreStatus POSTs body and decodes whatever JSON the response
// carries regardless of status code, returning it as a map[string]any or
// []any. The indexer-test endpoints (spec §4.3) deliberately return a
// validation-failure body on a non-2xx response that the caller must still
// parse, unlike every other outbound call in this package.
func (c *Client) PostIgnoreStatus(ctx context.Context, path string, body any) (any, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err // context cancellation, not an apperr (spec §7)
	}

	url := fmt.Sprintf("%s/api/%s%s", c.baseURL, c.version, path)

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return nil, &apperr.DecodeError{Backend: c.backendName, Err: err}
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, reader)
	if err != nil {
		return nil, &apperr.TransportError{Backend: c.backendName, Err: err}
	}
	req.Header.Set("X-Api-Key", c.apiKey)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, &apperr.TransportError{Backend: c.backendName, Err: err}
	}
	defer resp.Body.Close()

	var result any
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, &apperr.DecodeError{Backend: c.backendName, Err: err}
	}
	return result, nil
}

func readBodyForError(r io.Reader) []byte {
	limited := io.LimitReader(r, maxErrorBodySize)
	body, err := io.ReadAll(limited)
	if err != nil {
		return []byte("(failed to read response body)")
	}
	if len(body) == maxErrorBodySize {
		return append(body, []byte("... (truncated)")...)
	}
	return body
}

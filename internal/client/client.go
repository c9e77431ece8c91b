package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/http/requestutil"
	"github.com/preston-bernstein/court-score-service/internal/metrics"
)

// Config controls how the client reaches the score service.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	// Name labels push metrics, e.g. "controller" or "display".
	Name     string
	Recorder *metrics.Recorder
}

// Client reads and merges the shared match state over HTTP. It keeps the
// last entity tag so unchanged polls are answered with 304 and served from
// the cached snapshot.
type Client struct {
	baseURL    string
	httpClient httpDoer
	name       string
	recorder   *metrics.Recorder

	mu       sync.Mutex
	etag     string
	cached   match.MatchState
	hasCache bool
}

// New constructs a Client with the provided configuration.
func New(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		name:       cfg.Name,
		recorder:   cfg.Recorder,
	}
}

// Name returns the client label used in logs and metrics.
func (c *Client) Name() string {
	return c.name
}

// Read fetches the full authoritative state.
func (c *Client) Read(ctx context.Context) (match.MatchState, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+scorePath, nil)
	if err != nil {
		return match.MatchState{}, err
	}
	req.Header.Set("Accept", "application/json")

	c.mu.Lock()
	etag, hasCache := c.etag, c.hasCache
	c.mu.Unlock()
	if etag != "" && hasCache {
		req.Header.Set("If-None-Match", etag)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return match.MatchState{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotModified && hasCache {
		c.mu.Lock()
		defer c.mu.Unlock()
		return c.cached.Clone(), nil
	}
	if resp.StatusCode != http.StatusOK {
		return match.MatchState{}, statusError(http.MethodGet, resp)
	}

	var state match.MatchState
	if err := json.NewDecoder(resp.Body).Decode(&state); err != nil {
		return match.MatchState{}, fmt.Errorf("score GET: decode: %w", err)
	}

	c.mu.Lock()
	c.etag = resp.Header.Get("ETag")
	c.cached = state.Clone()
	c.hasCache = true
	c.mu.Unlock()
	return state, nil
}

// Merge sends delta to be merged into the authoritative state. Empty
// deltas are not sent.
func (c *Client) Merge(ctx context.Context, delta match.Delta) error {
	if delta.Empty() {
		return nil
	}
	start := time.Now()
	err := c.post(ctx, delta)
	c.recorder.RecordPush(c.name, time.Since(start), err)
	return err
}

func (c *Client) post(ctx context.Context, delta match.Delta) error {
	body, err := json.Marshal(delta)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+scorePath, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(requestutil.HeaderRequestID, requestutil.NewRequestID())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return statusError(http.MethodPost, resp)
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

func statusError(method string, resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	msg := strings.TrimSpace(string(raw))
	var payload struct {
		Error string `json:"error"`
	}
	if json.Unmarshal(raw, &payload) == nil && payload.Error != "" {
		msg = payload.Error
	}
	return &StatusError{Method: method, StatusCode: resp.StatusCode, Message: msg}
}

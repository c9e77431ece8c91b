package client

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL     = "http://localhost:3000"
	defaultHTTPTimeout = 5 * time.Second
	scorePath          = "/score"
	maxErrorBody       = 512
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}

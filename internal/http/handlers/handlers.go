package handlers

import (
	"errors"
	"log/slog"
	nethttp "net/http"
	"strings"

	"github.com/preston-bernstein/court-score-service/internal/app/score"
	"github.com/preston-bernstein/court-score-service/internal/domain/match"
	"github.com/preston-bernstein/court-score-service/internal/logging"
)

// DefaultMaxDeltaBytes caps POST /score bodies when no limit is configured.
const DefaultMaxDeltaBytes int64 = 64 << 10

// Handler wires HTTP routes to the score service.
type Handler struct {
	svc          *score.Service
	logger       *slog.Logger
	maxBodyBytes int64
}

// NewHandler constructs a Handler. A non-positive maxBodyBytes uses DefaultMaxDeltaBytes.
func NewHandler(svc *score.Service, logger *slog.Logger, maxBodyBytes int64) *Handler {
	if maxBodyBytes <= 0 {
		maxBodyBytes = DefaultMaxDeltaBytes
	}
	return &Handler{
		svc:          svc,
		logger:       logger,
		maxBodyBytes: maxBodyBytes,
	}
}

func (h *Handler) ServeHTTP(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.URL.Path {
	case "/health":
		h.Health(w, r)
	case "/ready":
		h.Ready(w, r)
	case "/score":
		h.Score(w, r)
	default:
		writeError(w, r, nethttp.StatusNotFound, "not found", h.logger)
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if err := r.Context().Err(); err != nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, statusBody{Status: "ok"}, h.logger)
}

// Ready reports readiness once the store is in place.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if r.Method != nethttp.MethodGet {
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
		return
	}
	if h.svc == nil {
		writeError(w, r, nethttp.StatusServiceUnavailable, "store not initialised", h.logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, statusBody{Status: "ready"}, h.logger)
}

// Score serves the authoritative state on GET and merges deltas on POST.
func (h *Handler) Score(w nethttp.ResponseWriter, r *nethttp.Request) {
	switch r.Method {
	case nethttp.MethodGet:
		h.readScore(w, r)
	case nethttp.MethodPost:
		h.mergeScore(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		writeError(w, r, nethttp.StatusMethodNotAllowed, "method not allowed", h.logger)
	}
}

func (h *Handler) readScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	state, fp := h.svc.Snapshot()
	etag := `"` + fp + `"`
	w.Header().Set("ETag", etag)
	w.Header().Set("Cache-Control", "no-cache")

	if fp != "" && etagMatches(r.Header.Get("If-None-Match"), etag) {
		w.WriteHeader(nethttp.StatusNotModified)
		return
	}
	writeJSON(w, nethttp.StatusOK, state, loggerFromContext(r, h.logger))
}

func (h *Handler) mergeScore(w nethttp.ResponseWriter, r *nethttp.Request) {
	logger := loggerFromContext(r, h.logger)
	body := nethttp.MaxBytesReader(w, r.Body, h.maxBodyBytes)
	defer body.Close()

	delta, err := match.DecodeDelta(body)
	if err != nil {
		var tooLarge *nethttp.MaxBytesError
		msg := err.Error()
		if errors.As(err, &tooLarge) {
			msg = "request body too large"
		}
		logging.Warn(logger, "score delta malformed", slog.Any(logging.FieldError, err))
		writeError(w, r, nethttp.StatusBadRequest, msg, logger)
		return
	}

	if _, err := h.svc.Apply(r.Context(), delta); err != nil {
		writeError(w, r, nethttp.StatusBadRequest, err.Error(), logger)
		return
	}
	writeJSON(w, nethttp.StatusOK, mergeBody{Success: true}, logger)
}

func etagMatches(header, etag string) bool {
	if header == "" {
		return false
	}
	for _, candidate := range strings.Split(header, ",") {
		candidate = strings.TrimSpace(candidate)
		candidate = strings.TrimPrefix(candidate, "W/")
		if candidate == etag || candidate == "*" {
			return true
		}
	}
	return false
}

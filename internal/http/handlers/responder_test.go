package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/preston-bernstein/court-score-service/internal/logging"
	"github.com/preston-bernstein/court-score-service/internal/testutil"
)

func decodeErrorBody(t *testing.T, rr *httptest.ResponseRecorder) errorBody {
	t.Helper()
	var body errorBody
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode error body %q: %v", rr.Body.String(), err)
	}
	return body
}

func TestWriteErrorIncludesHeaderRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodPost, "/score", nil)
	req.Header.Set("X-Request-ID", "court-left-7")

	rr := testutil.ServeRequest(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusBadRequest, "invalid delta", logger)
	}), req)

	testutil.AssertStatus(t, rr, http.StatusBadRequest)
	if got := rr.Header().Get("Content-Type"); got != "application/json" {
		t.Fatalf("expected content type json, got %s", got)
	}
	body := decodeErrorBody(t, rr)
	if body.Error != "invalid delta" || body.RequestID != "court-left-7" {
		t.Fatalf("unexpected error body %+v", body)
	}
}

func TestWriteErrorGeneratesRequestIDForBadHeader(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/score", nil)
	req.Header.Set("X-Request-ID", "not a valid id")

	writeError(rr, req, http.StatusBadRequest, "boom", nil)

	body := decodeErrorBody(t, rr)
	if body.RequestID == "" || body.RequestID == "not a valid id" {
		t.Fatalf("expected a generated request id, got %q", body.RequestID)
	}
}

func TestLoggerFromContext(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	req := httptest.NewRequest(http.MethodGet, "/score", nil)
	req = req.WithContext(logging.WithLogger(context.Background(), logger))

	if got := loggerFromContext(req, nil); got != logger {
		t.Fatalf("expected context logger")
	}
	if got := loggerFromContext(nil, logger); got != logger {
		t.Fatalf("expected fallback logger for nil request")
	}
}

func TestWriteJSONLogsEncodeError(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := testutil.Serve(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, make(chan int), logger)
	}), http.MethodGet, "/score", nil)

	testutil.AssertStatus(t, rr, http.StatusOK)
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected logger to record encode error, got %s", buf.String())
	}
}

func TestWriteJSONMergeBody(t *testing.T) {
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, mergeBody{Success: true}, nil)
	if got := strings.TrimSpace(rr.Body.String()); got != `{"success":true}` {
		t.Fatalf("unexpected merge body %s", got)
	}
}

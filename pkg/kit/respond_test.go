package kit

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestWriteError_NestedEnvelope(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/items", nil)

	WriteError(w, r, http.StatusNotFound, "item not found", map[string]any{"name": "Ghost Item"})

	if w.Code != http.StatusNotFound {
		t.Fatalf("status=%d want=404", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content-type=%q", ct)
	}

	var body struct {
		Error struct {
			Message string         `json:"message"`
			Details map[string]any `json:"details"`
		} `json:"error"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v body=%s", err, w.Body.String())
	}
	if body.Error.Message != "item not found" {
		t.Fatalf("message=%q", body.Error.Message)
	}
	if body.Error.Details["name"] != "Ghost Item" {
		t.Fatalf("details=%v", body.Error.Details)
	}
}

func TestWriteJSON_UnencodableValue(t *testing.T) {
	w := httptest.NewRecorder()

	WriteJSON(w, http.StatusOK, map[string]any{"bad": func() {}})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status=%d want=500", w.Code)
	}
}

func TestLogging_LevelTracksStatus(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	mw := Logging(zap.New(core))

	serve := func(status int) {
		h := mw(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/items", nil))
	}

	serve(http.StatusOK)
	serve(http.StatusInternalServerError)

	entries := logs.All()
	if len(entries) != 2 {
		t.Fatalf("entries=%d want=2", len(entries))
	}
	if entries[0].Level != zap.InfoLevel {
		t.Fatalf("2xx level=%v want=info", entries[0].Level)
	}
	if entries[1].Level != zap.ErrorLevel {
		t.Fatalf("5xx level=%v want=error", entries[1].Level)
	}
}

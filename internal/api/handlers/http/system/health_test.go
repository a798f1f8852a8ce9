package system_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"log/slog"

	"github.com/platanus-hack/platanus-hack-25-team-41/internal/api/handlers/http/system"
)

type fakePinger struct {
	err error
}

func (f fakePinger) Ping(ctx context.Context) error { return f.err }

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestSystemHealth_AllDependenciesUp(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), map[string]system.Pinger{
		"postgres": fakePinger{},
		"redis":    fakePinger{},
	})

	rec := httptest.NewRecorder()
	h.SystemHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "ok" {
		t.Fatalf("expected status ok, got %q", body.Status)
	}
	if body.Dependencies["postgres"] != "ok" || body.Dependencies["redis"] != "ok" {
		t.Fatalf("unexpected dependencies: %+v", body.Dependencies)
	}
}

func TestSystemHealth_DependencyDown(t *testing.T) {
	t.Parallel()

	h := system.NewHandler(newTestLogger(), map[string]system.Pinger{
		"postgres": fakePinger{},
		"redis":    fakePinger{err: errors.New("connection refused")},
	})

	rec := httptest.NewRecorder()
	h.SystemHealth(rec, httptest.NewRequest(http.MethodGet, "/api/health", nil))

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}

	var body struct {
		Status       string            `json:"status"`
		Dependencies map[string]string `json:"dependencies"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if body.Status != "degraded" {
		t.Fatalf("expected status degraded, got %q", body.Status)
	}
	if body.Dependencies["redis"] != "connection refused" {
		t.Fatalf("expected redis failure surfaced, got %+v", body.Dependencies)
	}
}

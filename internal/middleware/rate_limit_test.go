package middleware

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"runtime"
	"testing"
	"time"

	"log/slog"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(bytes.NewBuffer(nil), &slog.HandlerOptions{Level: slog.LevelError}))
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestLimit_BurstExhaustionReturns429(t *testing.T) {
	t.Parallel()

	h := Limit(1, 2, time.Minute, newTestLogger())(okHandler())

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/sightings/recent", nil)
		req.RemoteAddr = "10.0.0.1:5000"
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)
		codes = append(codes, rr.Code)
	}

	if codes[0] != http.StatusOK || codes[1] != http.StatusOK {
		t.Fatalf("expected the burst to pass, got %v", codes)
	}
	if codes[2] != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after burst, got %v", codes)
	}
}

func TestLimit_BucketsArePerIP(t *testing.T) {
	t.Parallel()

	h := Limit(1, 1, time.Minute, newTestLogger())(okHandler())

	first := httptest.NewRequest(http.MethodGet, "/", nil)
	first.RemoteAddr = "10.0.0.1:5000"
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, first)
	if rr.Code != http.StatusOK {
		t.Fatalf("first caller should pass, got %d", rr.Code)
	}

	drained := httptest.NewRequest(http.MethodGet, "/", nil)
	drained.RemoteAddr = "10.0.0.1:5001"
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, drained)
	if rr.Code != http.StatusTooManyRequests {
		t.Fatalf("same IP should be limited, got %d", rr.Code)
	}

	other := httptest.NewRequest(http.MethodGet, "/", nil)
	other.RemoteAddr = "10.0.0.2:5000"
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, other)
	if rr.Code != http.StatusOK {
		t.Fatalf("a different IP gets its own bucket, got %d", rr.Code)
	}
}

func TestIPLimiter_SweepEvictsIdleVisitors(t *testing.T) {
	t.Parallel()

	l := &ipLimiter{
		visitors:  make(map[string]*visitor),
		limit:     1,
		burst:     1,
		ttl:       time.Minute,
		lastSweep: time.Now(),
	}

	l.allow("10.0.0.1")
	l.allow("10.0.0.2")

	l.mu.Lock()
	l.visitors["10.0.0.1"].lastSeen = time.Now().Add(-2 * time.Minute)
	l.lastSweep = time.Now().Add(-2 * sweepInterval)
	l.mu.Unlock()

	l.allow("10.0.0.3")

	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.visitors["10.0.0.1"]; ok {
		t.Fatalf("idle visitor should have been evicted")
	}
	if _, ok := l.visitors["10.0.0.2"]; !ok {
		t.Fatalf("recent visitor must survive the sweep")
	}
	if _, ok := l.visitors["10.0.0.3"]; !ok {
		t.Fatalf("current visitor must be tracked")
	}
}

func TestLimit_StartsNoBackgroundGoroutine(t *testing.T) {
	before := runtime.NumGoroutine()

	for i := 0; i < 20; i++ {
		Limit(1, 1, time.Minute, newTestLogger())
	}
	runtime.Gosched()

	after := runtime.NumGoroutine()
	if after > before+2 {
		t.Fatalf("goroutine count grew from %d to %d after building limiters", before, after)
	}
}

func TestClientIP(t *testing.T) {
	t.Parallel()

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = "192.168.1.10:3456"
	if got := clientIP(r); got != "192.168.1.10" {
		t.Fatalf("expected port stripped, got %q", got)
	}

	r.RemoteAddr = "weird-proxy-value"
	if got := clientIP(r); got != "weird-proxy-value" {
		t.Fatalf("expected raw addr fallback, got %q", got)
	}
}

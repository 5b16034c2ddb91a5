package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"fantasy-squad-service/internal/testutil"
)

func TestLoggingMiddlewarePropagatesRequestID(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()

	var seenID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seenID = RequestIDFromContext(r.Context())
		w.WriteHeader(http.StatusTeapot)
	})

	handler := LoggingMiddleware(logger, nil, next)
	req := httptest.NewRequest("GET", "/squad", nil)
	req.Header.Set("X-Request-ID", "req-42")
	rec := httptest.NewRecorder()

	handler.ServeHTTP(rec, req)

	if seenID != "req-42" {
		t.Fatalf("expected request ID in context, got %q", seenID)
	}
	if got := rec.Header().Get("X-Request-ID"); got != "req-42" {
		t.Fatalf("expected request ID echoed, got %q", got)
	}
	logged := buf.String()
	if !strings.Contains(logged, "request complete") {
		t.Fatalf("expected completion log, got %q", logged)
	}
	if !strings.Contains(logged, "status_code=418") {
		t.Fatalf("expected captured status, got %q", logged)
	}
}

func TestLoggingMiddlewareGeneratesRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	handler := LoggingMiddleware(logger, nil, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Header().Get("X-Request-ID") == "" {
		t.Fatalf("expected generated request ID header")
	}
}

func TestNormalizePathCollapsesPlayerIDs(t *testing.T) {
	cases := map[string]string{
		"/players/123":         "/players/{id}",
		"/players/123/details": "/players/{id}",
		"/players":             "/players",
		"/squad":               "/squad",
	}
	for in, want := range cases {
		if got := normalizePath(in); got != want {
			t.Fatalf("normalizePath(%q): expected %q, got %q", in, want, got)
		}
	}
}

package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	var seen string
	handler := CorrelationID(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = CorrelationCtx(r.Context())
	}))

	t.Run("generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

		echoed := rec.Header().Get(CorrelationIDHeader)
		if echoed == "" {
			t.Fatalf("no correlation id echoed in response header")
		}
		if seen != echoed {
			t.Errorf("context id = %q, header id = %q, want identical", seen, echoed)
		}
	})

	t.Run("client id preserved", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/", nil)
		req.Header.Set(CorrelationIDHeader, "client-chosen")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		if seen != "client-chosen" {
			t.Errorf("context id = %q, want client-chosen", seen)
		}
		if got := rec.Header().Get(CorrelationIDHeader); got != "client-chosen" {
			t.Errorf("echoed id = %q, want client-chosen", got)
		}
	})
}

func TestCorrelationCtx_Untagged(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	if got := CorrelationCtx(req.Context()); got != "" {
		t.Errorf("CorrelationCtx() on untagged context = %q, want empty", got)
	}
}

func TestLogging_PassesThrough(t *testing.T) {
	handler := Logging("/quiet")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("body"))
	}))

	for _, path := range []string{"/quiet", "/loud"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest("GET", path, nil))

		if rec.Code != http.StatusTeapot {
			t.Errorf("GET %s status = %d, want %d", path, rec.Code, http.StatusTeapot)
		}
		if rec.Body.String() != "body" {
			t.Errorf("GET %s body = %q, want untouched", path, rec.Body.String())
		}
	}
}

func TestRecover(t *testing.T) {
	handler := Recover(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest("GET", "/", nil))

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want 500", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "internal server error") {
		t.Errorf("body = %q, want an error envelope", rec.Body.String())
	}
}

package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/disruptops/cognitocache/internal/api/presenter"
	"github.com/disruptops/cognitocache/internal/cache"
	"github.com/disruptops/cognitocache/internal/config"
	"github.com/disruptops/cognitocache/internal/core"
	"github.com/disruptops/cognitocache/internal/resolver"
)

type fakeAuth struct {
	token string
	err   error
}

func (f *fakeAuth) Authenticate(_ context.Context, _ core.CredentialSet) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.token, nil
}

func newTestServer(auth core.Authenticator) *Server {
	cfg := &config.Config{Defaults: config.Defaults{Region: "us-east-1"}}
	res := resolver.New(cache.NewMemory(), auth)
	return NewServer(cfg, res)
}

func TestHandleResolve(t *testing.T) {
	tests := []struct {
		name       string
		auth       *fakeAuth
		body       string
		wantStatus int
		wantValue  string
		wantFailed bool
	}{
		{
			name:       "success",
			auth:       &fakeAuth{token: "tok123"},
			body:       `{"username":"jdoe","password":"hunter2","client_id":"abc","user_pool_id":"us-east-1_XYZ"}`,
			wantStatus: http.StatusOK,
			wantValue:  "tok123",
		},
		{
			name:       "authentication failure is a successful call",
			auth:       &fakeAuth{err: errors.New("Incorrect username or password.")},
			body:       `{"username":"jdoe","password":"wrong","client_id":"abc","user_pool_id":"us-east-1_XYZ"}`,
			wantStatus: http.StatusOK,
			wantValue:  "Incorrect username or password.",
			wantFailed: true,
		},
		{
			name:       "missing field",
			auth:       &fakeAuth{token: "tok123"},
			body:       `{"password":"hunter2","client_id":"abc","user_pool_id":"us-east-1_XYZ"}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "empty body",
			auth:       &fakeAuth{token: "tok123"},
			body:       "",
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestServer(tt.auth)

			req := httptest.NewRequest("POST", ResolveTokenRoute, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			srv.Routes().ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (body: %s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if rec.Header().Get("X-Correlation-ID") == "" {
				t.Errorf("missing correlation id header")
			}
			if tt.wantStatus != http.StatusOK {
				var errResp presenter.ErrorResponse
				if err := json.NewDecoder(rec.Body).Decode(&errResp); err != nil {
					t.Fatalf("decoding error response: %v", err)
				}
				if errResp.CorrelationID != rec.Header().Get("X-Correlation-ID") {
					t.Errorf("error body correlation id = %q, want header value %q",
						errResp.CorrelationID, rec.Header().Get("X-Correlation-ID"))
				}
				return
			}

			var result resolver.Resolution
			if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
				t.Fatalf("decoding response: %v", err)
			}
			if result.Value != tt.wantValue {
				t.Errorf("value = %q, want %q", result.Value, tt.wantValue)
			}
			if result.Failed != tt.wantFailed {
				t.Errorf("failed = %v, want %v", result.Failed, tt.wantFailed)
			}
		})
	}
}

func TestHandleHealth(t *testing.T) {
	srv := newTestServer(&fakeAuth{token: "tok"})

	req := httptest.NewRequest("GET", HealthCheckRoute, nil)
	rec := httptest.NewRecorder()
	srv.Routes().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}

package server

import (
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pickem-crew/pickem-dashboard/internal/backend"
	"github.com/pickem-crew/pickem-dashboard/internal/config"
)

// newTestStack starts a fake backend API and a dashboard server routing to it.
func newTestStack(t *testing.T, backendHandler http.HandlerFunc) *Server {
	t.Helper()

	backendServer := httptest.NewServer(backendHandler)
	t.Cleanup(backendServer.Close)

	cfg := &config.Config{
		Environment:  "test",
		Host:         "127.0.0.1",
		Port:         3000,
		LogLevel:     "error",
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
		APIBaseURL:   backendServer.URL,
		CacheTTL:     60 * time.Second,

		MaxRequestBytes: 65536,
	}

	discard := slog.New(slog.NewTextHandler(io.Discard, nil))

	srv, err := NewServer(cfg, discard)
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	return srv
}

// sessionCookie builds a session cookie for an account with the given role
func sessionCookie(t *testing.T, role string) *http.Cookie {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   "account-1",
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(30 * time.Minute)),
	})
	signed, err := token.SignedString([]byte("test-key"))
	if err != nil {
		t.Fatalf("failed to sign test token: %v", err)
	}

	details := backend.AccessTokenDetails{
		AccessToken: signed,
		TokenType:   "Bearer",
		ExpiresIn:   1800,
		AccountID:   "account-1",
		Username:    "sam",
		Role:        role,
	}
	detailsJSON, _ := json.Marshal(details)

	return &http.Cookie{
		Name:  config.SessionCookieName,
		Value: base64.StdEncoding.EncodeToString(detailsJSON),
	}
}

func TestDataLoaderRequiresAuth(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called for unauthenticated requests")
	})

	r := httptest.NewRequest(http.MethodGet, "/ui-api/leaderboard?season=2025", nil)
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusUnauthorized {
		t.Errorf("status = %d, want %d", w.Code, http.StatusUnauthorized)
	}
}

func TestLeaderboardLoader(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/leaderboard/season/2025" {
			t.Errorf("backend path = %q, want /api/leaderboard/season/2025", r.URL.Path)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Error("bearer token not forwarded to backend")
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"season":"2025","entries":[{"rank":1,"username":"sam","wins":10,"losses":3,"pushes":1,"roi":0.18,"streak":4}]}`))
	})

	r := httptest.NewRequest(http.MethodGet, "/ui-api/leaderboard?season=2025", nil)
	r.AddCookie(sessionCookie(t, "player"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var board backend.Leaderboard
	if err := json.Unmarshal(w.Body.Bytes(), &board); err != nil {
		t.Fatalf("response is not valid leaderboard JSON: %v", err)
	}
	if len(board.Entries) != 1 || board.Entries[0].Username != "sam" {
		t.Errorf("unexpected leaderboard payload: %+v", board)
	}
}

func TestLeaderboardRequiresSeason(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called without a season")
	})

	r := httptest.NewRequest(http.MethodGet, "/ui-api/leaderboard", nil)
	r.AddCookie(sessionCookie(t, "player"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadRequest)
	}
}

func TestBackendErrorRendersErrorState(t *testing.T) {
	var calls int
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusInternalServerError)
	})

	r := httptest.NewRequest(http.MethodGet, "/ui-api/analytics/roi-trends", nil)
	r.AddCookie(sessionCookie(t, "player"))
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	// one retry against the backend, then a visible error state
	if calls != 2 {
		t.Errorf("backend calls = %d, want 2", calls)
	}
	if w.Code != http.StatusBadGateway {
		t.Errorf("status = %d, want %d", w.Code, http.StatusBadGateway)
	}
	var errResp struct {
		ErrorCode string `json:"error_code"`
		Message   string `json:"message"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
		t.Fatalf("error response is not JSON: %v", err)
	}
	if errResp.ErrorCode != "backend_error" {
		t.Errorf("error_code = %q, want %q", errResp.ErrorCode, "backend_error")
	}
}

func TestBatchGradeAuthorization(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		body       string
		wantStatus int
	}{
		{
			name:       "player is rejected",
			role:       "player",
			body:       `{"grades":[{"pick_id":"p1","result":"win"}]}`,
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "commissioner succeeds",
			role:       "commissioner",
			body:       `{"grades":[{"pick_id":"p1","result":"win"}]}`,
			wantStatus: http.StatusOK,
		},
		{
			name:       "empty grades rejected",
			role:       "commissioner",
			body:       `{"grades":[]}`,
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "invalid result rejected",
			role:       "commissioner",
			body:       `{"grades":[{"pick_id":"p1","result":"tie"}]}`,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/api/admin/batch-grade" {
					t.Errorf("backend path = %q, want /api/admin/batch-grade", r.URL.Path)
				}
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"graded":1}`))
			})

			r := httptest.NewRequest(http.MethodPost, "/ui-api/admin/batch-grade", strings.NewReader(tt.body))
			r.Header.Set("Content-Type", "application/json")
			r.AddCookie(sessionCookie(t, tt.role))
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, r)

			if w.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d (body %s)", w.Code, tt.wantStatus, w.Body.String())
			}
		})
	}
}

func TestOversizedRequestBodyRejected(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("backend should not be called for an oversized request")
	})

	// one byte over the configured limit
	body := strings.Repeat("a", 65536+1)

	tests := []struct {
		name string
		path string
		auth bool
	}{
		{name: "login", path: "/login"},
		{name: "submit pick", path: "/ui-api/picks", auth: true},
		{name: "batch grade", path: "/ui-api/admin/batch-grade", auth: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, tt.path, strings.NewReader(body))
			r.Header.Set("Content-Type", "application/json")
			if tt.auth {
				r.AddCookie(sessionCookie(t, "commissioner"))
			}
			w := httptest.NewRecorder()
			srv.Router().ServeHTTP(w, r)

			if w.Code != http.StatusRequestEntityTooLarge {
				t.Fatalf("status = %d, want %d", w.Code, http.StatusRequestEntityTooLarge)
			}
			var errResp struct {
				ErrorCode string `json:"error_code"`
			}
			if err := json.Unmarshal(w.Body.Bytes(), &errResp); err != nil {
				t.Fatalf("error response is not JSON: %v", err)
			}
			if errResp.ErrorCode != "request_too_large" {
				t.Errorf("error_code = %q, want %q", errResp.ErrorCode, "request_too_large")
			}
		})
	}
}

func TestLoginSetsAuthCookies(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/auth/login" {
			t.Errorf("backend path = %q, want /api/v1/auth/login", r.URL.Path)
		}
		http.SetCookie(w, &http.Cookie{
			Name:   config.RefreshTokenCookieName,
			Value:  "refresh-value",
			MaxAge: 3600,
		})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"token123","token_type":"Bearer","expires_in":1800,"account_id":"account-1","username":"sam","role":"player"}`))
	})

	r := httptest.NewRequest(http.MethodPost, "/login", strings.NewReader(`{"email":"sam@example.com","password":"hunter2hunter"}`))
	r.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	srv.Router().ServeHTTP(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d (body %s)", w.Code, http.StatusOK, w.Body.String())
	}

	var gotSession, gotRefresh bool
	for _, c := range w.Result().Cookies() {
		switch c.Name {
		case config.SessionCookieName:
			gotSession = true
		case config.RefreshTokenCookieName:
			gotRefresh = c.Value == "refresh-value"
		}
	}
	if !gotSession {
		t.Error("session cookie not set after login")
	}
	if !gotRefresh {
		t.Error("refresh token cookie not forwarded after login")
	}

	// the response body must not leak the access token
	if strings.Contains(w.Body.String(), "token123") {
		t.Error("access token leaked in login response body")
	}
}

func TestHealthEndpoints(t *testing.T) {
	srv := newTestStack(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/health" {
			t.Errorf("backend path = %q, want /api/health", r.URL.Path)
		}
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	for _, path := range []string{"/health/live", "/health/ready"} {
		r := httptest.NewRequest(http.MethodGet, path, nil)
		w := httptest.NewRecorder()
		srv.Router().ServeHTTP(w, r)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

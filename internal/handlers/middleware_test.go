package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fluento/internal/security"
)

func TestRequireUserWithBearerToken(t *testing.T) {
	issuer := security.NewTokenIssuer("test-secret", time.Hour)
	token, err := issuer.Issue("user-42", time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var gotUID string
	handler := NewMiddleware(issuer).RequireUser(func(w http.ResponseWriter, r *http.Request) {
		gotUID = UserUIDFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/user/stats", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if gotUID != "user-42" {
		t.Fatalf("expected uid user-42 in context, got %q", gotUID)
	}
}

func TestRequireUserWithHeaderFallback(t *testing.T) {
	var gotUID string
	handler := NewMiddleware(security.NewTokenIssuer("test-secret", time.Hour)).RequireUser(func(w http.ResponseWriter, r *http.Request) {
		gotUID = UserUIDFromContext(r.Context())
	})

	req := httptest.NewRequest("GET", "/user/stats", nil)
	req.Header.Set("X-User-UID", "gateway-user")
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
	if gotUID != "gateway-user" {
		t.Fatalf("expected uid gateway-user, got %q", gotUID)
	}
}

func TestRequireUserRejectsAnonymous(t *testing.T) {
	handler := NewMiddleware(security.NewTokenIssuer("test-secret", time.Hour)).RequireUser(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	recorder := httptest.NewRecorder()
	handler(recorder, httptest.NewRequest("GET", "/user/stats", nil))

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}

func TestRequireUserRejectsBadToken(t *testing.T) {
	handler := NewMiddleware(security.NewTokenIssuer("test-secret", time.Hour)).RequireUser(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler should not run")
	})

	req := httptest.NewRequest("GET", "/user/stats", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	recorder := httptest.NewRecorder()

	handler(recorder, req)

	if recorder.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401, got %d", recorder.Code)
	}
}

func TestCORSAllowsConfiguredOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.example.com"}, next)

	req := httptest.NewRequest("GET", "/word/daily", nil)
	req.Header.Set("Origin", "https://app.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "https://app.example.com" {
		t.Fatalf("expected origin echoed back, got %q", got)
	}
}

func TestCORSIgnoresUnknownOrigin(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := CORS([]string{"https://app.example.com"}, next)

	req := httptest.NewRequest("GET", "/word/daily", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "" {
		t.Fatalf("expected no CORS header for unknown origin, got %q", got)
	}
}

func TestCORSHandlesPreflight(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("preflight must not reach the handler")
	})
	handler := CORS([]string{"*"}, next)

	req := httptest.NewRequest("OPTIONS", "/user/stats", nil)
	req.Header.Set("Origin", "https://anywhere.example.com")
	recorder := httptest.NewRecorder()

	handler.ServeHTTP(recorder, req)

	if recorder.Code != http.StatusNoContent {
		t.Fatalf("expected status 204, got %d", recorder.Code)
	}
	if got := recorder.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Fatalf("expected wildcard origin, got %q", got)
	}
}

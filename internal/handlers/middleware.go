package handlers

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"fluento/internal/security"
)

type contextKey string

const userUIDKey contextKey = "userUID"

// Middleware bundles the cross-cutting request handling
type Middleware struct {
	tokens *security.TokenIssuer
}

// NewMiddleware creates the middleware set
func NewMiddleware(tokens *security.TokenIssuer) *Middleware {
	return &Middleware{tokens: tokens}
}

// RequireUser resolves the caller's identity and stores the user UID in the
// request context. Identity comes from a Bearer access token, or from the
// X-User-UID header when a trusted gateway terminates authentication
// upstream. Requests without either are rejected.
func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := ""

		if auth := r.Header.Get("Authorization"); strings.HasPrefix(auth, "Bearer ") {
			verified, err := m.tokens.Verify(strings.TrimPrefix(auth, "Bearer "))
			if err != nil {
				respondWithError(w, http.StatusUnauthorized, "Invalid access token", "", nil)
				return
			}
			uid = verified
		} else if header := strings.TrimSpace(r.Header.Get("X-User-UID")); header != "" {
			uid = header
		}

		if uid == "" {
			respondWithError(w, http.StatusUnauthorized, "Authentication required", "", nil)
			return
		}

		ctx := context.WithValue(r.Context(), userUIDKey, uid)
		next(w, r.WithContext(ctx))
	}
}

// UserUIDFromContext returns the authenticated user UID, or empty
func UserUIDFromContext(ctx context.Context) string {
	uid, _ := ctx.Value(userUIDKey).(string)
	return uid
}

// Logging wraps a handler with request logging
func Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("%s %s %s", r.Method, r.URL.Path, time.Since(start))
	})
}

// CORS applies the configured cross-origin policy. An allowed origin of
// "*" opens the API to any origin.
func CORS(origins []string, next http.Handler) http.Handler {
	allowAll := false
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" && (allowAll || allowed[origin]) {
			if allowAll {
				w.Header().Set("Access-Control-Allow-Origin", "*")
			} else {
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Set("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-User-UID")
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

package auth

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
)

type contextKey struct{}

// Subject returns the verified user ID stored by the middleware, or ""
// on an unauthenticated request.
func Subject(ctx context.Context) string {
	subject, _ := ctx.Value(contextKey{}).(string)
	return subject
}

// ContextWithSubject is exported for handler tests that bypass the
// middleware.
func ContextWithSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, contextKey{}, subject)
}

// Middleware enforces Authorization: Bearer <token> and injects the
// verified subject into the request context.
type Middleware struct {
	verifier Verifier
	logger   *slog.Logger
}

func NewMiddleware(verifier Verifier, logger *slog.Logger) *Middleware {
	return &Middleware{verifier: verifier, logger: logger}
}

func (m *Middleware) RequireUser(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			m.unauthorized(w, "no token provided")
			return
		}

		subject, err := m.verifier.Verify(r.Context(), token)
		if err != nil {
			m.logger.Warn("token verification failed", "error", err)
			m.unauthorized(w, "invalid token")
			return
		}

		next(w, r.WithContext(ContextWithSubject(r.Context(), subject)))
	}
}

func (m *Middleware) unauthorized(w http.ResponseWriter, reason string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	if err := json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized: " + reason}); err != nil {
		m.logger.Error("failed to encode error response", "error", err)
	}
}

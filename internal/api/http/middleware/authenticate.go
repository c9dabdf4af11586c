package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/cookie"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// SessionResolver maps a presented session token to an active user.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (model.User, error)
}

// Authenticate resolves the session token and injects the user into the
// request context.
type Authenticate struct {
	resolver       SessionResolver
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewAuthenticate creates a new Authenticate middleware instance.
func NewAuthenticate(resolver SessionResolver, contextManager model.ContextManager, logger *logger.Logger) *Authenticate {
	return &Authenticate{resolver: resolver, contextManager: contextManager, logger: logger}
}

// Require rejects the request with 401 unless it carries a valid session.
// The cookie wins over the Authorization header.
func (m *Authenticate) Require(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, err := m.resolver.Resolve(r.Context(), tokenFromRequest(r))
		if err != nil {
			status := response.Error(w, err)
			if status >= http.StatusInternalServerError {
				m.logger.Error("Authenticate middleware: failed to resolve session",
					"path", r.URL.Path,
					"error", err.Error())
			}
			return
		}

		ctx := m.contextManager.SetUserToContext(r.Context(), user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func tokenFromRequest(r *http.Request) string {
	if token := cookie.Session(r); token != "" {
		return token
	}

	header := r.Header.Get("Authorization")
	scheme, token, ok := strings.Cut(header, " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return ""
	}
	return strings.TrimSpace(token)
}

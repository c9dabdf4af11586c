package context

import (
	"context"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

type contextKey struct{}

// userKey is the request context key holding the authenticated user.
var userKey = contextKey{}

// Manager stores and retrieves the authenticated user on a request context.
type Manager struct{}

var _ model.ContextManager = (*Manager)(nil)

// NewManager creates a new context manager instance.
func NewManager() *Manager {
	return &Manager{}
}

// SetUserToContext returns a copy of ctx carrying user.
func (m *Manager) SetUserToContext(ctx context.Context, user model.User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// GetUserFromContext returns the user set by SetUserToContext.
func (m *Manager) GetUserFromContext(ctx context.Context) (model.User, bool) {
	user, ok := ctx.Value(userKey).(model.User)
	return user, ok
}

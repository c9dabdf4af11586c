package context

import (
	stdctx "context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/testutil"
)

func TestManager_SetAndGetUser(t *testing.T) {
	m := NewManager()
	user := testutil.MakeUser("a@example.com", model.RoleUser)
	ctx := m.SetUserToContext(stdctx.Background(), user)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, user, got)
}

func TestManager_GetUser_NotFound(t *testing.T) {
	m := NewManager()
	_, ok := m.GetUserFromContext(stdctx.Background())
	assert.False(t, ok)
}

func TestManager_SetUser_Overrides(t *testing.T) {
	m := NewManager()
	first := testutil.MakeUser("a@example.com", model.RoleUser)
	second := testutil.MakeUser("b@example.com", model.RoleAdmin)

	ctx := m.SetUserToContext(stdctx.Background(), first)
	ctx = m.SetUserToContext(ctx, second)

	got, ok := m.GetUserFromContext(ctx)
	assert.True(t, ok)
	assert.Equal(t, second.Email, got.Email)
}

func TestManager_IgnoresForeignValue(t *testing.T) {
	m := NewManager()
	ctx := stdctx.WithValue(stdctx.Background(), struct{ name string }{"user"}, "not-a-user")
	_, ok := m.GetUserFromContext(ctx)
	assert.False(t, ok)
}

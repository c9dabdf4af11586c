package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Role is the authorization level of a user.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleUser || r == RoleAdmin
}

// UserStore defines persistence operations for users.
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (User, error)
	GetByID(ctx context.Context, id uuid.UUID) (User, error)
	Create(ctx context.Context, user User) (User, error)
	SetRole(ctx context.Context, email string, role Role) (User, error)
}

// User represents a stored user identity.
type User struct {
	ID               uuid.UUID
	Email            string
	PasswordHash     *string
	GoogleID         *string
	FullName         *string
	Role             Role
	IsActive         bool
	IsVerified       bool
	ResetToken       *string
	ResetTokenExpiry *time.Time
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// DisplayName returns the full name or an empty string when it is unset.
func (u User) DisplayName() string {
	if u.FullName == nil {
		return ""
	}
	return *u.FullName
}

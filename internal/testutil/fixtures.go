package testutil

import (
	"time"

	"github.com/google/uuid"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

// MakeUser returns an active user with the given email and role.
func MakeUser(email string, role model.Role) model.User {
	name := "User " + email
	return model.User{
		ID:        uuid.New(),
		Email:     email,
		FullName:  &name,
		Role:      role,
		IsActive:  true,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// MakeReview returns a non-deleted review owned by ownerID.
func MakeReview(id int64, ownerID uuid.UUID, className string) model.Review {
	return model.Review{
		ID:         id,
		ClassName:  className,
		ReviewText: "ดี",
		Rating:     4,
		CreatedAt:  time.Now(),
		OwnerID:    ownerID,
	}
}

// Ptr returns a pointer to v.
func Ptr[T any](v T) *T {
	return &v
}

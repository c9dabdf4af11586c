// Package access holds the authorization predicates applied to reviews.
package access

import "github.com/ThanakornKaingam/LannaVegWedNew/internal/model"

// IsOwner reports whether user owns review.
func IsOwner(user model.User, review model.Review) bool {
	return user.ID == review.OwnerID
}

// IsAdmin reports whether user carries the admin role.
func IsAdmin(user model.User) bool {
	return user.Role == model.RoleAdmin
}

// CanMutate reports whether user may delete review.
func CanMutate(user model.User, review model.Review) bool {
	return IsOwner(user, review) || IsAdmin(user)
}

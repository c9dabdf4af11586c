package model

import (
	"context"
	"time"

	"github.com/google/uuid"
)

const (
	MinRating = 1
	MaxRating = 5

	// UnknownOwnerName is projected into listings when the owning user
	// cannot be resolved.
	UnknownOwnerName = "Unknown"
)

// ValidRating reports whether rating is within [MinRating, MaxRating].
func ValidRating(rating int) bool {
	return rating >= MinRating && rating <= MaxRating
}

// ReviewStore defines persistence operations for reviews.
type ReviewStore interface {
	Create(ctx context.Context, review Review) (Review, error)
	// GetByID returns the review regardless of its soft-delete flag.
	GetByID(ctx context.Context, id int64) (Review, error)
	// Mutate locks the non-deleted review for the duration of fn and persists
	// whatever fn leaves in the struct. An error from fn rolls back.
	Mutate(ctx context.Context, id int64, fn func(review *Review) error) (Review, error)
	// List returns non-deleted reviews newest first.
	List(ctx context.Context, filter ReviewFilter) ([]ReviewView, error)
}

// Review represents a stored review.
type Review struct {
	ID         int64
	ClassName  string
	ReviewText string
	Rating     int
	PlaceName  *string
	Latitude   *float64
	Longitude  *float64
	IsDeleted  bool
	CreatedAt  time.Time
	OwnerID    uuid.UUID
}

// ReviewView is a review joined with its owner's display name.
// OwnerName is nil when the owner row could not be resolved.
type ReviewView struct {
	Review
	OwnerName *string
}

// ReviewFilter narrows a review listing. A zero Limit means unbounded.
type ReviewFilter struct {
	OwnerID   *uuid.UUID
	ClassName *string
	Offset    int
	Limit     int
}

// CreateReviewParams contains parameters to create a review.
type CreateReviewParams struct {
	ClassName  string
	ReviewText string
	Rating     int
}

// ContentPatch is a partial update of review text and rating.
type ContentPatch struct {
	Rating     Optional[int]    `json:"rating"`
	ReviewText Optional[string] `json:"review_text"`
}

// LocationPatch replaces the whole location of a review; absent and null
// fields both clear the stored value.
type LocationPatch struct {
	Latitude  Optional[float64] `json:"latitude"`
	Longitude Optional[float64] `json:"longitude"`
	PlaceName Optional[string]  `json:"place_name"`
}

// ReviewItem is the public projection of a review in listings.
type ReviewItem struct {
	ID         int64     `json:"id"`
	ClassName  string    `json:"class_name"`
	ReviewText string    `json:"review_text"`
	Rating     int       `json:"rating"`
	Username   string    `json:"username"`
	CreatedAt  time.Time `json:"created_at"`
	Latitude   *float64  `json:"latitude"`
	Longitude  *float64  `json:"longitude"`
	PlaceName  *string   `json:"place_name"`
}

package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/access"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Review implements the review lifecycle: create, edit, relocate, soft
// delete and the public listings.
type Review struct {
	reviewStore model.ReviewStore
	catalog     model.SpeciesCatalog
	logger      *logger.Logger
}

func NewReview(
	reviewStore model.ReviewStore,
	catalog model.SpeciesCatalog,
	logger *logger.Logger,
) *Review {
	return &Review{
		reviewStore: reviewStore,
		catalog:     catalog,
		logger:      logger,
	}
}

// Create stores a new review owned by user and returns its id.
func (s *Review) Create(ctx context.Context, params model.CreateReviewParams, user model.User) (int64, error) {
	if !model.ValidRating(params.Rating) {
		return 0, apierror.NewErrInvalidRating(params.Rating)
	}
	if _, ok := s.catalog.Lookup(params.ClassName); !ok {
		return 0, apierror.NewErrUnknownClass(params.ClassName)
	}

	review, err := s.reviewStore.Create(ctx, model.Review{
		ClassName:  params.ClassName,
		ReviewText: params.ReviewText,
		Rating:     params.Rating,
		OwnerID:    user.ID,
	})
	if err != nil {
		return 0, fmt.Errorf("failed to create review: %w", err)
	}

	s.logger.Info("Review service: review created",
		"review_id", review.ID,
		"user_id", user.ID,
		"class_name", review.ClassName)

	return review.ID, nil
}

// UpdateContent applies the present, non-null fields of patch. Only the
// owner may edit.
func (s *Review) UpdateContent(ctx context.Context, id int64, patch model.ContentPatch, user model.User) error {
	_, err := s.reviewStore.Mutate(ctx, id, func(review *model.Review) error {
		if !access.IsOwner(user, *review) {
			return apierror.NewErrForbidden()
		}

		if patch.Rating.IsSet() {
			rating := *patch.Rating.Value
			if !model.ValidRating(rating) {
				return apierror.NewErrInvalidRating(rating)
			}
			review.Rating = rating
		}
		if patch.ReviewText.IsSet() {
			review.ReviewText = *patch.ReviewText.Value
		}

		return nil
	})
	if err != nil {
		return s.mutationError(id, "update content", err)
	}

	s.logger.Info("Review service: review updated",
		"review_id", id,
		"user_id", user.ID)

	return nil
}

// UpdateLocation overwrites all three location fields; absent and null
// values clear them. Only the owner may relocate.
func (s *Review) UpdateLocation(ctx context.Context, id int64, patch model.LocationPatch, user model.User) error {
	_, err := s.reviewStore.Mutate(ctx, id, func(review *model.Review) error {
		if !access.IsOwner(user, *review) {
			return apierror.NewErrForbidden()
		}

		review.Latitude = patch.Latitude.Value
		review.Longitude = patch.Longitude.Value
		review.PlaceName = patch.PlaceName.Value

		return nil
	})
	if err != nil {
		return s.mutationError(id, "update location", err)
	}

	s.logger.Info("Review service: review location updated",
		"review_id", id,
		"user_id", user.ID)

	return nil
}

// Delete soft-deletes the review. The owner or an admin may delete.
func (s *Review) Delete(ctx context.Context, id int64, user model.User) error {
	_, err := s.reviewStore.Mutate(ctx, id, func(review *model.Review) error {
		if !access.CanMutate(user, *review) {
			return apierror.NewErrForbidden()
		}

		review.IsDeleted = true

		return nil
	})
	if err != nil {
		return s.mutationError(id, "delete", err)
	}

	s.logger.Info("Review service: review deleted",
		"review_id", id,
		"user_id", user.ID,
		"as_admin", access.IsAdmin(user))

	return nil
}

// ListAll returns one page of live reviews, newest first. limit is capped at
// MaxPageSize; a zero limit yields an empty page.
func (s *Review) ListAll(ctx context.Context, skip, limit int) ([]model.ReviewItem, error) {
	if skip < 0 {
		return nil, apierror.NewErrInvalidRequest("skip must not be negative")
	}
	if limit < 0 {
		return nil, apierror.NewErrInvalidRequest("limit must not be negative")
	}
	if limit == 0 {
		return []model.ReviewItem{}, nil
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}

	return s.list(ctx, model.ReviewFilter{Offset: skip, Limit: limit})
}

// ListMine returns every live review owned by user.
func (s *Review) ListMine(ctx context.Context, user model.User) ([]model.ReviewItem, error) {
	return s.list(ctx, model.ReviewFilter{OwnerID: &user.ID})
}

// ListByClass returns every live review of the given label.
func (s *Review) ListByClass(ctx context.Context, className string) ([]model.ReviewItem, error) {
	return s.list(ctx, model.ReviewFilter{ClassName: &className})
}

func (s *Review) list(ctx context.Context, filter model.ReviewFilter) ([]model.ReviewItem, error) {
	views, err := s.reviewStore.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}

	items := make([]model.ReviewItem, 0, len(views))
	for _, v := range views {
		items = append(items, toReviewItem(v))
	}

	return items, nil
}

func (s *Review) mutationError(id int64, op string, err error) error {
	if errors.Is(err, model.ErrNotFound) {
		return apierror.NewErrReviewNotFound(id)
	}
	if _, ok := apierror.As(err); ok {
		return err
	}

	s.logger.Error("Review service: mutation failed",
		"review_id", id,
		"op", op,
		"error", err.Error())

	return fmt.Errorf("failed to %s review: %w", op, err)
}

func toReviewItem(v model.ReviewView) model.ReviewItem {
	username := model.UnknownOwnerName
	if v.OwnerName != nil {
		username = *v.OwnerName
	}

	return model.ReviewItem{
		ID:         v.ID,
		ClassName:  v.ClassName,
		ReviewText: v.ReviewText,
		Rating:     v.Rating,
		Username:   username,
		CreatedAt:  v.CreatedAt,
		Latitude:   v.Latitude,
		Longitude:  v.Longitude,
		PlaceName:  v.PlaceName,
	}
}

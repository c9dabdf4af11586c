package handler

import (
	"context"
	"net/http"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/api/http/response"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/apierror"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/logger"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
	"github.com/ThanakornKaingam/LannaVegWedNew/internal/service"
)

// ReviewService defines review lifecycle operations.
type ReviewService interface {
	Create(ctx context.Context, params model.CreateReviewParams, user model.User) (int64, error)
	UpdateContent(ctx context.Context, id int64, patch model.ContentPatch, user model.User) error
	UpdateLocation(ctx context.Context, id int64, patch model.LocationPatch, user model.User) error
	Delete(ctx context.Context, id int64, user model.User) error
	ListAll(ctx context.Context, skip, limit int) ([]model.ReviewItem, error)
	ListMine(ctx context.Context, user model.User) ([]model.ReviewItem, error)
	ListByClass(ctx context.Context, className string) ([]model.ReviewItem, error)
}

// Review handles the /reviews endpoints.
type Review struct {
	service        ReviewService
	contextManager model.ContextManager
	logger         *logger.Logger
}

// NewReview creates a new Review handler.
func NewReview(service ReviewService, contextManager model.ContextManager, logger *logger.Logger) *Review {
	return &Review{
		service:        service,
		contextManager: contextManager,
		logger:         logger,
	}
}

type createReviewRequest struct {
	ClassName  string `json:"class_name"`
	ReviewText string `json:"review_text"`
	Rating     int    `json:"rating"`
}

type createReviewResponse struct {
	ReviewID int64 `json:"review_id"`
}

// Create posts a review as the authenticated user.
func (h *Review) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	var req createReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	id, err := h.service.Create(r.Context(), model.CreateReviewParams{
		ClassName:  req.ClassName,
		ReviewText: req.ReviewText,
		Rating:     req.Rating,
	}, user)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.JSON(w, http.StatusOK, createReviewResponse{ReviewID: id})
}

// UpdateContent changes rating and text of the caller's review.
func (h *Review) UpdateContent(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := int64Param(r, "review_id")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	var patch model.ContentPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if err := h.service.UpdateContent(r.Context(), id, patch, user); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.Message(w, "Review updated successfully")
}

// UpdateLocation overwrites the location of the caller's review.
func (h *Review) UpdateLocation(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := int64Param(r, "review_id")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	var patch model.LocationPatch
	if err := decodeJSON(w, r, &patch); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if err := h.service.UpdateLocation(r.Context(), id, patch, user); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.Message(w, "Location updated successfully")
}

// Delete soft-deletes a review owned by the caller, or any review for admins.
func (h *Review) Delete(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	id, err := int64Param(r, "review_id")
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	if err := h.service.Delete(r.Context(), id, user); err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	response.Message(w, "Review deleted successfully")
}

// ListAll returns one page of every visible review.
func (h *Review) ListAll(w http.ResponseWriter, r *http.Request) {
	skip, err := intQuery(r, "skip", 0)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	limit, err := intQuery(r, "limit", service.DefaultPageSize)
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}

	items, err := h.service.ListAll(r.Context(), skip, limit)
	h.writeList(w, r, items, err)
}

// ListMine returns the caller's reviews.
func (h *Review) ListMine(w http.ResponseWriter, r *http.Request) {
	user, ok := h.user(w, r)
	if !ok {
		return
	}

	items, err := h.service.ListMine(r.Context(), user)
	h.writeList(w, r, items, err)
}

// ListByClass returns reviews of one species label.
func (h *Review) ListByClass(w http.ResponseWriter, r *http.Request) {
	items, err := h.service.ListByClass(r.Context(), stringParam(r, "class_name"))
	h.writeList(w, r, items, err)
}

func (h *Review) writeList(w http.ResponseWriter, r *http.Request, items []model.ReviewItem, err error) {
	if err != nil {
		handleError(w, r, h.logger, err)
		return
	}
	if items == nil {
		items = []model.ReviewItem{}
	}
	response.JSON(w, http.StatusOK, items)
}

func (h *Review) user(w http.ResponseWriter, r *http.Request) (model.User, bool) {
	user, ok := h.contextManager.GetUserFromContext(r.Context())
	if !ok {
		handleError(w, r, h.logger, apierror.NewErrMissingCredentials())
	}
	return user, ok
}

package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/ThanakornKaingam/LannaVegWedNew/internal/model"
)

var _ model.ReviewStore = (*ReviewRepository)(nil)

// notDeleted is the single liveness predicate shared by every read path.
const notDeleted = `r.is_deleted = FALSE`

const reviewColumns = `r.id, r.class_name, r.review_text, r.rating, r.place_name, r.latitude, r.longitude,
			  r.is_deleted, r.created_at, r.user_id`

type ReviewRepository struct {
	db *Connection
}

func NewReviewRepository(db *Connection) *ReviewRepository {
	return &ReviewRepository{
		db: db,
	}
}

func (r *ReviewRepository) Create(ctx context.Context, review model.Review) (model.Review, error) {
	query := `INSERT INTO reviews AS r (class_name, review_text, rating, place_name, latitude, longitude, user_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7)
			  RETURNING ` + reviewColumns

	saved, err := scanReview(r.db.QueryRowContext(ctx, query,
		review.ClassName, review.ReviewText, review.Rating,
		review.PlaceName, review.Latitude, review.Longitude, review.OwnerID,
	))
	if err != nil {
		return model.Review{}, fmt.Errorf("failed to create review: %w", err)
	}

	return saved, nil
}

func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (model.Review, error) {
	query := `SELECT ` + reviewColumns + `
			  FROM reviews r WHERE r.id = $1`

	review, err := scanReview(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.Review{}, model.ErrNotFound
		}
		return model.Review{}, fmt.Errorf("failed to get review by id: %w", err)
	}

	return review, nil
}

// Mutate locks the live row, hands a copy to fn and writes the mutable
// columns back in the same transaction.
func (r *ReviewRepository) Mutate(ctx context.Context, id int64, fn func(review *model.Review) error) (model.Review, error) {
	var result model.Review

	err := r.db.inTx(ctx, func(tx *sql.Tx) error {
		query := `SELECT ` + reviewColumns + `
				  FROM reviews r WHERE r.id = $1 AND ` + notDeleted + `
				  FOR UPDATE`

		review, err := scanReview(tx.QueryRowContext(ctx, query, id))
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return model.ErrNotFound
			}
			return fmt.Errorf("failed to lock review: %w", err)
		}

		if err := fn(&review); err != nil {
			return err
		}

		update := `UPDATE reviews SET review_text = $2, rating = $3, place_name = $4,
				   latitude = $5, longitude = $6, is_deleted = $7
				   WHERE id = $1`
		if _, err := tx.ExecContext(ctx, update,
			id, review.ReviewText, review.Rating, review.PlaceName,
			review.Latitude, review.Longitude, review.IsDeleted,
		); err != nil {
			return fmt.Errorf("failed to update review: %w", err)
		}

		result = review
		return nil
	})
	if err != nil {
		return model.Review{}, err
	}

	return result, nil
}

func (r *ReviewRepository) List(ctx context.Context, filter model.ReviewFilter) ([]model.ReviewView, error) {
	var (
		conds = []string{notDeleted}
		args  []any
	)
	if filter.OwnerID != nil {
		args = append(args, *filter.OwnerID)
		conds = append(conds, fmt.Sprintf("r.user_id = $%d", len(args)))
	}
	if filter.ClassName != nil {
		args = append(args, *filter.ClassName)
		conds = append(conds, fmt.Sprintf("r.class_name = $%d", len(args)))
	}

	query := `SELECT ` + reviewColumns + `, u.full_name
			  FROM reviews r LEFT JOIN users u ON u.id = r.user_id
			  WHERE ` + strings.Join(conds, " AND ") + `
			  ORDER BY r.created_at DESC, r.id DESC`

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if filter.Offset > 0 {
		args = append(args, filter.Offset)
		query += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	defer rows.Close()

	views := make([]model.ReviewView, 0)
	for rows.Next() {
		var v model.ReviewView
		if err := rows.Scan(
			&v.ID, &v.ClassName, &v.ReviewText, &v.Rating, &v.PlaceName, &v.Latitude, &v.Longitude,
			&v.IsDeleted, &v.CreatedAt, &v.OwnerID, &v.OwnerName,
		); err != nil {
			return nil, fmt.Errorf("failed to scan review: %w", err)
		}
		views = append(views, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate reviews: %w", err)
	}

	return views, nil
}

func scanReview(row *sql.Row) (model.Review, error) {
	var review model.Review
	err := row.Scan(
		&review.ID, &review.ClassName, &review.ReviewText, &review.Rating,
		&review.PlaceName, &review.Latitude, &review.Longitude,
		&review.IsDeleted, &review.CreatedAt, &review.OwnerID,
	)
	return review, err
}

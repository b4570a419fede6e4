package review

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type Repository interface {
	Create(ctx context.Context, r *models.Review) error

	// List returns one page of reviews, newest first, and the total count.
	List(ctx context.Context, offset, limit int) ([]models.Review, int64, error)

	// ListAll returns every review, newest first.
	ListAll(ctx context.Context) ([]models.Review, error)

	// SetApproval returns ErrReviewNotFound when the review is absent.
	SetApproval(ctx context.Context, id string, approved bool) (*models.Review, error)

	// Delete returns ErrReviewNotFound when nothing was deleted.
	Delete(ctx context.Context, id string) error
}

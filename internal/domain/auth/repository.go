package auth

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type UserRepository interface {
	// FindByEmail returns ErrUserNotFound when no user has the email.
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	FindByID(ctx context.Context, id string) (*models.User, error)

	// EnsureUser inserts the user unless one with the same email exists
	// and returns the stored row.
	EnsureUser(ctx context.Context, user *models.User) (*models.User, error)
}

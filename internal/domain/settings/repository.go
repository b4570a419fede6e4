package settings

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type Repository interface {
	// GetOrCreate inserts defaults under DefaultID unless a row already
	// exists, then returns the stored row. Safe under concurrent first
	// access.
	GetOrCreate(ctx context.Context, defaults models.Settings) (*models.Settings, error)

	// Update assigns the given columns on the singleton row.
	Update(ctx context.Context, columns map[string]any) (*models.Settings, error)
}

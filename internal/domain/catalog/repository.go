package catalog

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type Repository interface {
	// -------- Store --------
	GetStore(ctx context.Context, id string) (*models.Store, error)

	// ListStores returns every store newest first, with only the
	// translation for language preloaded.
	ListStores(ctx context.Context, language string) ([]models.Store, error)

	// CreateStore inserts the store and its first translation in one
	// transaction.
	CreateStore(ctx context.Context, store *models.Store, first *models.StoreTranslation) error

	// DeleteStore removes the store and all its translations. Returns
	// ErrStoreNotFound when nothing was deleted.
	DeleteStore(ctx context.Context, id string) error

	// -------- Translation --------

	// UpsertTranslation inserts or updates the row keyed by
	// (store_id, language) in a single statement and returns the stored
	// row.
	UpsertTranslation(ctx context.Context, tr *models.StoreTranslation) (*models.StoreTranslation, error)

	FindTranslations(ctx context.Context, storeIDs []string, language string) ([]models.StoreTranslation, error)
}

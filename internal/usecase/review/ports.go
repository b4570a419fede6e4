package review

import (
	"context"

	"github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

// StoreLookup is the part of the catalog reviews depend on.
type StoreLookup interface {
	Exists(ctx context.Context, storeID string) error
	Resolve(ctx context.Context, storeID, language string) (catalog.Resolution, error)
	ResolveMany(ctx context.Context, storeIDs []string, language string) (map[string]catalog.Resolution, error)
}

// SettingsSource loads the moderation settings.
type SettingsSource interface {
	Load(ctx context.Context) (*models.Settings, error)
}

// Uploader stores an export object under key.
type Uploader interface {
	Upload(ctx context.Context, key string, body []byte) error
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/settings"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type SettingsGormRepository struct {
	db *gorm.DB
}

func NewSettingsGormRepository(db *gorm.DB) *SettingsGormRepository {
	return &SettingsGormRepository{db: db}
}

func (r *SettingsGormRepository) GetOrCreate(
	ctx context.Context,
	defaults models.Settings,
) (*models.Settings, error) {

	db := r.db.WithContext(ctx)

	row := defaults
	row.ID = domain.DefaultID

	// insert-if-absent keyed on the primary key; losers of a concurrent
	// first access fall through to the read
	if err := db.
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&row).Error; err != nil {
		return nil, err
	}

	var s models.Settings
	if err := db.First(&s, "id = ?", domain.DefaultID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *SettingsGormRepository) Update(
	ctx context.Context,
	columns map[string]any,
) (*models.Settings, error) {

	if _, err := r.GetOrCreate(ctx, domain.Defaults()); err != nil {
		return nil, err
	}

	db := r.db.WithContext(ctx)

	if len(columns) > 0 {
		if err := db.Model(&models.Settings{}).
			Where("id = ?", domain.DefaultID).
			Updates(columns).Error; err != nil {
			return nil, err
		}
	}

	var s models.Settings
	if err := db.First(&s, "id = ?", domain.DefaultID).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

// Compile-time check
var _ domain.Repository = (*SettingsGormRepository)(nil)

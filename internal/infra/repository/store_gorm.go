package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/catalog"
	"github.com/BruksfildServices01/feedback-hub/internal/httperr"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type StoreGormRepository struct {
	db *gorm.DB
}

func NewStoreGormRepository(db *gorm.DB) *StoreGormRepository {
	return &StoreGormRepository{db: db}
}

// --------------------------------------------------
// Store
// --------------------------------------------------

func (r *StoreGormRepository) GetStore(
	ctx context.Context,
	id string,
) (*models.Store, error) {

	var store models.Store
	if err := r.db.WithContext(ctx).First(&store, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}
	return &store, nil
}

func (r *StoreGormRepository) ListStores(
	ctx context.Context,
	language string,
) ([]models.Store, error) {

	var stores []models.Store
	if err := r.db.WithContext(ctx).
		Preload("Translations", "language = ?", language).
		Order("created_at DESC").
		Order("id DESC").
		Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

func (r *StoreGormRepository) CreateStore(
	ctx context.Context,
	store *models.Store,
	first *models.StoreTranslation,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Create(store).Error; err != nil {
			return err
		}

		first.StoreID = store.ID
		if err := tx.Create(first).Error; err != nil {
			return err
		}

		store.Translations = []models.StoreTranslation{*first}
		return nil
	})
}

func (r *StoreGormRepository) DeleteStore(
	ctx context.Context,
	id string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("store_id = ?", id).
			Delete(&models.StoreTranslation{}).Error; err != nil {
			return err
		}

		res := tx.Where("id = ?", id).Delete(&models.Store{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrStoreNotFound
		}
		return nil
	})
}

// --------------------------------------------------
// Translation
// --------------------------------------------------

func (r *StoreGormRepository) UpsertTranslation(
	ctx context.Context,
	tr *models.StoreTranslation,
) (*models.StoreTranslation, error) {

	db := r.db.WithContext(ctx)

	if err := db.
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "store_id"}, {Name: "language"}},
			DoUpdates: clause.AssignmentColumns([]string{"name", "location", "updated_at"}),
		}).
		Create(tr).Error; err != nil {

		if httperr.IsForeignKeyViolation(err) {
			return nil, domain.ErrStoreNotFound
		}
		return nil, err
	}

	// the insert may have turned into an update of an existing row whose
	// id differs from tr.ID
	var stored models.StoreTranslation
	if err := db.
		Where("store_id = ? AND language = ?", tr.StoreID, tr.Language).
		First(&stored).Error; err != nil {
		return nil, err
	}

	return &stored, nil
}

func (r *StoreGormRepository) FindTranslations(
	ctx context.Context,
	storeIDs []string,
	language string,
) ([]models.StoreTranslation, error) {

	if len(storeIDs) == 0 {
		return nil, nil
	}

	var trs []models.StoreTranslation
	if err := r.db.WithContext(ctx).
		Where("store_id IN ? AND language = ?", storeIDs, language).
		Find(&trs).Error; err != nil {
		return nil, err
	}
	return trs, nil
}

// Compile-time check
var _ domain.Repository = (*StoreGormRepository)(nil)

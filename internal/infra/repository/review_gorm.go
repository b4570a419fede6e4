package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/feedback-hub/internal/domain/review"
	"github.com/BruksfildServices01/feedback-hub/internal/models"
)

type ReviewGormRepository struct {
	db *gorm.DB
}

func NewReviewGormRepository(db *gorm.DB) *ReviewGormRepository {
	return &ReviewGormRepository{db: db}
}

func (r *ReviewGormRepository) Create(
	ctx context.Context,
	rv *models.Review,
) error {
	return r.db.WithContext(ctx).Create(rv).Error
}

func (r *ReviewGormRepository) List(
	ctx context.Context,
	offset int,
	limit int,
) ([]models.Review, int64, error) {

	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Review{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var reviews []models.Review
	if err := db.
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Offset(offset).
		Find(&reviews).Error; err != nil {
		return nil, 0, err
	}

	return reviews, total, nil
}

func (r *ReviewGormRepository) ListAll(
	ctx context.Context,
) ([]models.Review, error) {

	var reviews []models.Review
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Order("id DESC").
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

func (r *ReviewGormRepository) SetApproval(
	ctx context.Context,
	id string,
	approved bool,
) (*models.Review, error) {

	db := r.db.WithContext(ctx)

	res := db.Model(&models.Review{}).
		Where("id = ?", id).
		Update("is_approved", approved)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, domain.ErrReviewNotFound
	}

	var rv models.Review
	if err := db.First(&rv, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrReviewNotFound
		}
		return nil, err
	}
	return &rv, nil
}

func (r *ReviewGormRepository) Delete(
	ctx context.Context,
	id string,
) error {

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Review{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrReviewNotFound
	}
	return nil
}

// Compile-time check
var _ domain.Repository = (*ReviewGormRepository)(nil)

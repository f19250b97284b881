package repository

import (
	"context"
	"time"

	"fyyur/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ShowRepository interface {
	GetByID(ctx context.Context, id int64) (*models.Show, error)
	ListStartingAfter(ctx context.Context, after time.Time) ([]models.Show, error)
	Create(ctx context.Context, s *models.Show) error
	Delete(ctx context.Context, id int64) error
}

type showRepository struct {
	db *gorm.DB
}

func NewShowRepository(db *gorm.DB) ShowRepository {
	return &showRepository{db: db}
}

func (r *showRepository) GetByID(ctx context.Context, id int64) (*models.Show, error) {
	var s models.Show
	if err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		First(&s, id).Error; err != nil {
		return nil, translateError("get show", err)
	}
	return &s, nil
}

// ListStartingAfter returns shows starting strictly after the given instant,
// earliest first, with venue and artist loaded.
func (r *showRepository) ListStartingAfter(ctx context.Context, after time.Time) ([]models.Show, error) {
	var list []models.Show
	if err := r.db.WithContext(ctx).
		Preload("Venue").
		Preload("Artist").
		Where("start_time > ?", after).
		Order("start_time asc").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, translateError("list shows", err)
	}
	return list, nil
}

func (r *showRepository) Create(ctx context.Context, s *models.Show) error {
	return translateError("create show", r.db.WithContext(ctx).Omit(clause.Associations).Create(s).Error)
}

func (r *showRepository) Delete(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&models.Show{}, id)
	if result.Error != nil {
		return translateError("delete show", result.Error)
	}
	if result.RowsAffected == 0 {
		return translateError("delete show", gorm.ErrRecordNotFound)
	}
	return nil
}

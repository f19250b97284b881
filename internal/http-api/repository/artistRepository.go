package repository

import (
	"context"

	"fyyur/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ArtistRepository interface {
	GetAll(ctx context.Context) ([]models.Artist, error)
	GetByID(ctx context.Context, id int64) (*models.Artist, error)
	SearchByName(ctx context.Context, term string) ([]models.Artist, error)
	CountShows(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, a *models.Artist) error
	Update(ctx context.Context, a *models.Artist) error
	Delete(ctx context.Context, id int64) error
}

type artistRepository struct {
	db *gorm.DB
}

func NewArtistRepository(db *gorm.DB) ArtistRepository {
	return &artistRepository{db: db}
}

func (r *artistRepository) GetAll(ctx context.Context) ([]models.Artist, error) {
	var list []models.Artist
	if err := r.db.WithContext(ctx).Order("id asc").Find(&list).Error; err != nil {
		return nil, translateError("get artists", err)
	}
	return list, nil
}

// GetByID loads an artist with its shows (ordered by start time) and each show's venue.
func (r *artistRepository) GetByID(ctx context.Context, id int64) (*models.Artist, error) {
	var a models.Artist
	if err := r.db.WithContext(ctx).
		Preload("Shows", orderByStartTime).
		Preload("Shows.Venue").
		First(&a, id).Error; err != nil {
		return nil, translateError("get artist", err)
	}
	return &a, nil
}

// SearchByName performs a case-insensitive substring match on name.
// An empty term matches every artist.
func (r *artistRepository) SearchByName(ctx context.Context, term string) ([]models.Artist, error) {
	var list []models.Artist
	if err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(term)).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, translateError("search artists", err)
	}
	return list, nil
}

func (r *artistRepository) CountShows(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Where("artist_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, translateError("count artist shows", err)
	}
	return n, nil
}

func (r *artistRepository) Create(ctx context.Context, a *models.Artist) error {
	return translateError("create artist", r.db.WithContext(ctx).Omit(clause.Associations).Create(a).Error)
}

func (r *artistRepository) Update(ctx context.Context, a *models.Artist) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError("update artist", tx.Error)
	}
	// a row deleted since it was loaded stays deleted
	result := tx.Model(a).Select("*").Omit(clause.Associations).Updates(a)
	if result.Error != nil {
		tx.Rollback()
		return translateError("update artist", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return translateError("update artist", gorm.ErrRecordNotFound)
	}
	return translateError("update artist", tx.Commit().Error)
}

func (r *artistRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError("delete artist", tx.Error)
	}
	result := tx.Delete(&models.Artist{}, id)
	if result.Error != nil {
		tx.Rollback()
		return translateError("delete artist", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return translateError("delete artist", gorm.ErrRecordNotFound)
	}
	return translateError("delete artist", tx.Commit().Error)
}

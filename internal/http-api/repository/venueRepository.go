package repository

import (
	"context"
	"strings"

	"fyyur/internal/http-api/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type VenueRepository interface {
	GetAll(ctx context.Context) ([]models.Venue, error)
	GetByID(ctx context.Context, id int64) (*models.Venue, error)
	SearchByName(ctx context.Context, term string) ([]models.Venue, error)
	CountShows(ctx context.Context, id int64) (int64, error)
	Create(ctx context.Context, v *models.Venue) error
	Update(ctx context.Context, v *models.Venue) error
	Delete(ctx context.Context, id int64) error
}

type venueRepository struct {
	db *gorm.DB
}

func NewVenueRepository(db *gorm.DB) VenueRepository {
	return &venueRepository{db: db}
}

// GetAll returns every venue in id order with its shows loaded.
func (r *venueRepository) GetAll(ctx context.Context) ([]models.Venue, error) {
	var list []models.Venue
	if err := r.db.WithContext(ctx).
		Preload("Shows").
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, translateError("get venues", err)
	}
	return list, nil
}

// GetByID loads a venue with its shows (ordered by start time) and each show's artist.
func (r *venueRepository) GetByID(ctx context.Context, id int64) (*models.Venue, error) {
	var v models.Venue
	if err := r.db.WithContext(ctx).
		Preload("Shows", orderByStartTime).
		Preload("Shows.Artist").
		First(&v, id).Error; err != nil {
		return nil, translateError("get venue", err)
	}
	return &v, nil
}

// SearchByName performs a case-insensitive substring match on name.
// An empty term matches every venue.
func (r *venueRepository) SearchByName(ctx context.Context, term string) ([]models.Venue, error) {
	var list []models.Venue
	if err := r.db.WithContext(ctx).
		Preload("Shows").
		Where("LOWER(name) LIKE ? ESCAPE '\\'", likePattern(term)).
		Order("id asc").
		Find(&list).Error; err != nil {
		return nil, translateError("search venues", err)
	}
	return list, nil
}

func (r *venueRepository) CountShows(ctx context.Context, id int64) (int64, error) {
	var n int64
	if err := r.db.WithContext(ctx).
		Model(&models.Show{}).
		Where("venue_id = ?", id).
		Count(&n).Error; err != nil {
		return 0, translateError("count venue shows", err)
	}
	return n, nil
}

func (r *venueRepository) Create(ctx context.Context, v *models.Venue) error {
	// GORM will populate v.ID
	return translateError("create venue", r.db.WithContext(ctx).Omit(clause.Associations).Create(v).Error)
}

func (r *venueRepository) Update(ctx context.Context, v *models.Venue) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError("update venue", tx.Error)
	}
	// a row deleted since it was loaded stays deleted
	result := tx.Model(v).Select("*").Omit(clause.Associations).Updates(v)
	if result.Error != nil {
		tx.Rollback()
		return translateError("update venue", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return translateError("update venue", gorm.ErrRecordNotFound)
	}
	return translateError("update venue", tx.Commit().Error)
}

func (r *venueRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return translateError("delete venue", tx.Error)
	}
	result := tx.Delete(&models.Venue{}, id)
	if result.Error != nil {
		tx.Rollback()
		return translateError("delete venue", result.Error)
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return translateError("delete venue", gorm.ErrRecordNotFound)
	}
	return translateError("delete venue", tx.Commit().Error)
}

func orderByStartTime(db *gorm.DB) *gorm.DB {
	return db.Order("start_time asc")
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern lower-cases the term and escapes LIKE wildcards so it matches literally.
func likePattern(term string) string {
	return "%" + likeEscaper.Replace(strings.ToLower(term)) + "%"
}
